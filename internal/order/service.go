package order

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/menu"
)

// Store is the persistence layer for orders.
type Store interface {
	// Create persists the order and its lines atomically, filling in
	// generated ids.
	Create(ctx context.Context, o *Order) error
	Get(ctx context.Context, id int64) (*Order, error)
	ByCustomerEmail(ctx context.Context, email string) ([]Order, error)
	ByStatus(ctx context.Context, status Status) ([]Order, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	// SetStatus persists the order's status, updated-at and estimated
	// delivery time.
	SetStatus(ctx context.Context, o *Order) error
}

// Catalog resolves menu items referenced by order lines.
type Catalog interface {
	Get(ctx context.Context, id int64) (*menu.Item, error)
}

// EventPublisher hands a payload to the outbound message channel. The
// call blocks until the channel accepts the payload or errors; no retry
// is applied here.
type EventPublisher interface {
	Publish(ctx context.Context, key string, payload any) error
}

// Service is the order lifecycle engine. It validates and persists new
// orders, applies status transitions and emits one lifecycle event per
// transition.
type Service struct {
	orders    Store
	catalog   Catalog
	publisher EventPublisher
	now       func() time.Time
}

func NewService(orders Store, catalog Catalog, publisher EventPublisher) *Service {
	return &Service{
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
		now:       time.Now,
	}
}

// Create validates the request against the catalog, prices each line from
// the item's current price and persists the order in status PENDING.
func (s *Service) Create(ctx context.Context, req Request) (*Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	lines := make([]Line, 0, len(req.Items))
	total := decimal.Zero

	for _, ir := range req.Items {
		item, err := s.catalog.Get(ctx, ir.MenuItemID)
		if err != nil {
			return nil, fmt.Errorf("menu item %d: %w", ir.MenuItemID, err)
		}
		if !item.Available {
			return nil, fmt.Errorf("%s: %w", item.Name, ErrMenuItemUnavailable)
		}

		lineTotal := item.Price.Mul(decimal.NewFromInt(int64(ir.Quantity)))
		lines = append(lines, Line{
			MenuItemID:          item.ID,
			MenuItemName:        item.Name,
			Quantity:            ir.Quantity,
			UnitPrice:           item.Price,
			TotalPrice:          lineTotal,
			SpecialInstructions: ir.SpecialInstructions,
		})
		total = total.Add(lineTotal)
	}

	now := s.now()
	o := &Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Status:          StatusPending,
		TotalAmount:     total,
		Lines:           lines,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Create(ctx, o); err != nil {
		return nil, err
	}

	log.Printf("[Order] Created order %d for customer %s, total %s", o.ID, o.CustomerEmail, o.TotalAmount)
	return o, nil
}

// Get returns a single order with its lines.
func (s *Service) Get(ctx context.Context, id int64) (*Order, error) {
	return s.orders.Get(ctx, id)
}

// ByCustomerEmail returns the customer's orders, most recent first.
func (s *Service) ByCustomerEmail(ctx context.Context, email string) ([]Order, error) {
	return s.orders.ByCustomerEmail(ctx, email)
}

// ByStatus returns orders in the given status, most recent first.
func (s *Service) ByStatus(ctx context.Context, status Status) ([]Order, error) {
	return s.orders.ByStatus(ctx, status)
}

// Pending returns orders awaiting confirmation, most recent first.
func (s *Service) Pending(ctx context.Context) ([]Order, error) {
	return s.orders.ByStatus(ctx, StatusPending)
}

// UpdateStatus sets the order's status unconditionally, adjusts the
// estimated delivery time from a fixed per-status offset and publishes a
// lifecycle event. The persist and the publish are not atomic: a publish
// failure surfaces as ErrRelayFailure with the new status already stored.
func (s *Service) UpdateStatus(ctx context.Context, id int64, newStatus Status) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := o.Status
	now := s.now()
	o.Status = newStatus
	o.UpdatedAt = now

	switch newStatus {
	case StatusConfirmed:
		eta := now.Add(40 * time.Minute)
		o.EstimatedDeliveryTime = &eta
	case StatusPreparing:
		eta := now.Add(25 * time.Minute)
		o.EstimatedDeliveryTime = &eta
	case StatusReady:
		eta := now.Add(15 * time.Minute)
		o.EstimatedDeliveryTime = &eta
	case StatusOutForDelivery:
		eta := now.Add(10 * time.Minute)
		o.EstimatedDeliveryTime = &eta
	case StatusDelivered, StatusCancelled:
		o.EstimatedDeliveryTime = nil
	}

	if err := s.orders.SetStatus(ctx, o); err != nil {
		return nil, err
	}
	log.Printf("[Order] Order %d status updated from %s to %s", o.ID, oldStatus, newStatus)

	event := Event{
		OrderID:       o.ID,
		Status:        o.Status,
		Timestamp:     now,
		CustomerEmail: o.CustomerEmail,
		CustomerName:  o.CustomerName,
		EventType:     EventOrderStatusUpdated,
	}
	if err := s.publisher.Publish(ctx, strconv.FormatInt(o.ID, 10), event); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRelayFailure, err)
	}

	return o, nil
}

// Cancel moves the order to CANCELLED unless it is already terminal.
func (s *Service) Cancel(ctx context.Context, id int64) (*Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status.IsTerminal() {
		return nil, fmt.Errorf("cannot cancel order in status %s: %w", o.Status, ErrInvalidTransition)
	}
	return s.UpdateStatus(ctx, id, StatusCancelled)
}

// Statistics holds one count per order status. Each count is computed
// independently; the set is not an atomic snapshot.
type Statistics struct {
	PendingCount        int64 `json:"pendingCount"`
	ConfirmedCount      int64 `json:"confirmedCount"`
	PreparingCount      int64 `json:"preparingCount"`
	ReadyCount          int64 `json:"readyCount"`
	OutForDeliveryCount int64 `json:"outForDeliveryCount"`
	DeliveredCount      int64 `json:"deliveredCount"`
	CancelledCount      int64 `json:"cancelledCount"`
}

// Statistics returns the number of orders per status.
func (s *Service) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{}
	targets := map[Status]*int64{
		StatusPending:        &stats.PendingCount,
		StatusConfirmed:      &stats.ConfirmedCount,
		StatusPreparing:      &stats.PreparingCount,
		StatusReady:          &stats.ReadyCount,
		StatusOutForDelivery: &stats.OutForDeliveryCount,
		StatusDelivered:      &stats.DeliveredCount,
		StatusCancelled:      &stats.CancelledCount,
	}
	for _, status := range Statuses {
		count, err := s.orders.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		*targets[status] = count
	}
	return stats, nil
}
