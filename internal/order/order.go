package order

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/shopspring/decimal"
)

// Order is a customer order with its line items. Orders are created once
// per accepted request and afterwards mutated only through status changes;
// they are never deleted.
type Order struct {
	ID                    int64           `json:"orderId"`
	CustomerName          string          `json:"customerName"`
	CustomerEmail         string          `json:"customerEmail"`
	CustomerPhone         string          `json:"customerPhone"`
	DeliveryAddress       string          `json:"deliveryAddress"`
	Status                Status          `json:"status"`
	TotalAmount           decimal.Decimal `json:"totalAmount"`
	Lines                 []Line          `json:"orderItems"`
	CreatedAt             time.Time       `json:"createdAt"`
	UpdatedAt             time.Time       `json:"updatedAt"`
	EstimatedDeliveryTime *time.Time      `json:"estimatedDeliveryTime,omitempty"`
}

// Line is one menu item within an order. UnitPrice is a snapshot of the
// catalog price at order time; later catalog changes never affect it.
type Line struct {
	ID                  int64           `json:"id"`
	MenuItemID          int64           `json:"menuItemId"`
	MenuItemName        string          `json:"menuItemName"`
	Quantity            int             `json:"quantity"`
	UnitPrice           decimal.Decimal `json:"unitPrice"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
	SpecialInstructions string          `json:"specialInstructions,omitempty"`
}

// Request is an inbound order placement request.
type Request struct {
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Items           []LineRequest `json:"orderItems"`
}

// LineRequest is one requested line within an order placement request.
type LineRequest struct {
	MenuItemID          int64  `json:"menuItemId"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Validate checks the request is well-formed.
func (r Request) Validate() error {
	if r.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidRequest)
	}
	if r.CustomerEmail == "" {
		return fmt.Errorf("%w: customer email is required", ErrInvalidRequest)
	}
	if _, err := mail.ParseAddress(r.CustomerEmail); err != nil {
		return fmt.Errorf("%w: valid email is required", ErrInvalidRequest)
	}
	if r.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidRequest)
	}
	if r.DeliveryAddress == "" {
		return fmt.Errorf("%w: delivery address is required", ErrInvalidRequest)
	}
	if len(r.Items) == 0 {
		return fmt.Errorf("%w: order must have at least one item", ErrInvalidRequest)
	}
	for _, item := range r.Items {
		if item.MenuItemID <= 0 {
			return fmt.Errorf("%w: menu item id is required", ErrInvalidRequest)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive", ErrInvalidRequest)
		}
	}
	return nil
}
