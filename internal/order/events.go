package order

import "time"

// EventOrderStatusUpdated tags the lifecycle event emitted once per
// status change.
const EventOrderStatusUpdated = "ORDER_STATUS_UPDATED"

// Event is an immutable fact describing an order's status change. It is
// published for asynchronous consumption and never persisted.
type Event struct {
	OrderID       int64     `json:"orderId"`
	Status        Status    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerName  string    `json:"customerName"`
	EventType     string    `json:"eventType"`
}
