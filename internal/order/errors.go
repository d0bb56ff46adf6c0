package order

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
	ErrInvalidTransition   = errors.New("order cannot be cancelled from its current status")
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrInvalidRequest      = errors.New("invalid order request")

	// ErrRelayFailure means the status change was persisted but the
	// lifecycle event could not be published. The order record and the
	// notification stream disagree until the next status change.
	ErrRelayFailure = errors.New("failed to publish order event")
)
