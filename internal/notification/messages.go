package notification

import (
	"fmt"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
)

// Message renders the customer-facing text for a lifecycle event.
func Message(e order.Event) string {
	name := e.CustomerName
	id := e.OrderID

	switch e.Status {
	case order.StatusPending:
		return fmt.Sprintf("Hi %s! We've received your order #%d and it's waiting to be confirmed.",
			name, id)

	case order.StatusConfirmed:
		return fmt.Sprintf("Hi %s! Your order #%d has been confirmed and is being prepared. Thank you for choosing us!",
			name, id)

	case order.StatusPreparing:
		return fmt.Sprintf("Hi %s! Your order #%d is now being prepared by our kitchen team. We'll notify you when it's ready!",
			name, id)

	case order.StatusReady:
		return fmt.Sprintf("Hi %s! Your order #%d is ready for pickup/delivery! Our driver will be with you soon.",
			name, id)

	case order.StatusOutForDelivery:
		return fmt.Sprintf("Hi %s! Your order #%d is out for delivery! It should arrive within 10-15 minutes.",
			name, id)

	case order.StatusDelivered:
		return fmt.Sprintf("Hi %s! Your order #%d has been delivered! We hope you enjoy your meal. Please rate your experience!",
			name, id)

	case order.StatusCancelled:
		return fmt.Sprintf("Hi %s, we're sorry to inform you that your order #%d has been cancelled. You will receive a full refund within 3-5 business days.",
			name, id)

	default:
		return fmt.Sprintf("Hi %s! There's an update on your order #%d. Current status: %s",
			name, id, e.Status)
	}
}
