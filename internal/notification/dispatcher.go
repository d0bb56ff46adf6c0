package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
)

// Dispatcher consumes lifecycle events and delivers a simulated
// notification per event. There is no real transport; delivery is a log
// line followed by a fixed artificial delay.
type Dispatcher struct {
	sendDelay time.Duration
}

func NewDispatcher(sendDelay time.Duration) *Dispatcher {
	return &Dispatcher{sendDelay: sendDelay}
}

// HandleEvent processes one message from the notification queue. Errors
// are returned to the consumer loop so the broker's redelivery applies.
func (d *Dispatcher) HandleEvent(ctx context.Context, key, value []byte) error {
	var event order.Event
	if err := json.Unmarshal(value, &event); err != nil {
		log.Printf("[Notifier] Failed to unmarshal event: %v", err)
		return err
	}

	log.Printf("[Notifier] Received event: OrderId=%d, EventType=%s, Status=%s",
		event.OrderID, event.EventType, event.Status)

	message := Message(event)
	log.Printf("[Notifier] NOTIFICATION TO %s: %s", event.CustomerEmail, message)

	// Simulated send; the pause only slows this one consumer.
	time.Sleep(d.sendDelay)
	return nil
}
