package menu

import (
	"context"
	"errors"
	"log"
)

var (
	ErrItemNotFound = errors.New("menu item not found")
	ErrInvalidName  = errors.New("name is required")
	ErrInvalidPrice = errors.New("price must be positive")
)

// Store is the persistence layer for menu items.
type Store interface {
	Get(ctx context.Context, id int64) (*Item, error)
	ListAvailable(ctx context.Context) ([]Item, error)
	ByCategory(ctx context.Context, category string) ([]Item, error)
	Search(ctx context.Context, term string) ([]Item, error)
	Create(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}

// Service exposes catalog operations over a Store.
type Service struct {
	items Store
}

func NewService(items Store) *Service {
	return &Service{items: items}
}

// Get returns a single menu item by id.
func (s *Service) Get(ctx context.Context, id int64) (*Item, error) {
	return s.items.Get(ctx, id)
}

// ListAvailable returns every item currently on the menu.
func (s *Service) ListAvailable(ctx context.Context) ([]Item, error) {
	return s.items.ListAvailable(ctx)
}

// ByCategory returns available items in the given category.
func (s *Service) ByCategory(ctx context.Context, category string) ([]Item, error) {
	return s.items.ByCategory(ctx, category)
}

// Search returns available items whose name contains the term,
// case-insensitively.
func (s *Service) Search(ctx context.Context, term string) ([]Item, error) {
	return s.items.Search(ctx, term)
}

// Create adds a new menu item.
func (s *Service) Create(ctx context.Context, item *Item) (*Item, error) {
	if err := validate(item); err != nil {
		return nil, err
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	log.Printf("[Menu] Created menu item %d (%s)", item.ID, item.Name)
	return item, nil
}

// Update replaces the mutable fields of an existing item.
func (s *Service) Update(ctx context.Context, id int64, updated *Item) (*Item, error) {
	if err := validate(updated); err != nil {
		return nil, err
	}
	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = updated.Name
	existing.Description = updated.Description
	existing.Price = updated.Price
	existing.Category = updated.Category
	existing.Available = updated.Available

	if err := s.items.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Delete takes an item off the menu. The row is kept so existing orders
// keep a valid reference.
func (s *Service) Delete(ctx context.Context, id int64) error {
	existing, err := s.items.Get(ctx, id)
	if err != nil {
		return err
	}

	existing.Available = false
	if err := s.items.Update(ctx, existing); err != nil {
		return err
	}
	log.Printf("[Menu] Menu item %d (%s) marked unavailable", existing.ID, existing.Name)
	return nil
}

func validate(item *Item) error {
	if item.Name == "" {
		return ErrInvalidName
	}
	if !item.Price.IsPositive() {
		return ErrInvalidPrice
	}
	return nil
}
