package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  Status
	}{
		{"PENDING", StatusPending},
		{"confirmed", StatusConfirmed},
		{"Preparing", StatusPreparing},
		{" READY ", StatusReady},
		{"out_for_delivery", StatusOutForDelivery},
		{"DELIVERED", StatusDelivered},
		{"CANCELLED", StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus_Unknown(t *testing.T) {
	for _, input := range []string{"", "SHIPPED", "pending state"} {
		_, err := ParseStatus(input)
		assert.ErrorIs(t, err, ErrUnknownStatus)
	}
}

func TestStatus_DisplayName(t *testing.T) {
	assert.Equal(t, "Pending", StatusPending.DisplayName())
	assert.Equal(t, "Ready for Pickup", StatusReady.DisplayName())
	assert.Equal(t, "Out for Delivery", StatusOutForDelivery.DisplayName())
	assert.Equal(t, "UNKNOWN", Status("UNKNOWN").DisplayName())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusOutForDelivery} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}
