package intake

import (
	"context"
	"encoding/json"
	"log"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
)

// OrderCreator validates and persists new orders.
type OrderCreator interface {
	Create(ctx context.Context, req order.Request) (*order.Order, error)
}

// Worker consumes queued order requests and persists them through the
// lifecycle engine.
type Worker struct {
	orders OrderCreator
}

func NewWorker(orders OrderCreator) *Worker {
	return &Worker{orders: orders}
}

// HandleMessage processes one order request from the intake queue. Errors
// are returned to the consumer loop so the broker's redelivery applies.
func (w *Worker) HandleMessage(ctx context.Context, key, value []byte) error {
	var req order.Request
	if err := json.Unmarshal(value, &req); err != nil {
		log.Printf("[OrderWorker] Failed to unmarshal order request: %v", err)
		return err
	}

	log.Printf("[OrderWorker] Received order request for customer %s", req.CustomerEmail)

	o, err := w.orders.Create(ctx, req)
	if err != nil {
		log.Printf("[OrderWorker] Failed to process order request for %s: %v", req.CustomerEmail, err)
		return err
	}

	log.Printf("[OrderWorker] Order processed and saved with id %d", o.ID)
	return nil
}
