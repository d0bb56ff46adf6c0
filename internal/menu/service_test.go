package menu

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	nextID int64
	items  map[int64]*Item
}

func newMemStore() *memStore {
	return &memStore{items: make(map[int64]*Item)}
}

func (s *memStore) Get(ctx context.Context, id int64) (*Item, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (s *memStore) ListAvailable(ctx context.Context) ([]Item, error) {
	var out []Item
	for _, item := range s.items {
		if item.Available {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memStore) ByCategory(ctx context.Context, category string) ([]Item, error) {
	var out []Item
	for _, item := range s.items {
		if item.Available && item.Category == category {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memStore) Search(ctx context.Context, term string) ([]Item, error) {
	var out []Item
	for _, item := range s.items {
		if item.Available && strings.Contains(strings.ToLower(item.Name), strings.ToLower(term)) {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (s *memStore) Create(ctx context.Context, item *Item) error {
	s.nextID++
	item.ID = s.nextID
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func (s *memStore) Update(ctx context.Context, item *Item) error {
	if _, ok := s.items[item.ID]; !ok {
		return ErrItemNotFound
	}
	copied := *item
	s.items[item.ID] = &copied
	return nil
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedItem(t *testing.T, svc *Service, name, category string, price string, available bool) *Item {
	t.Helper()
	item, err := svc.Create(context.Background(), &Item{
		Name:      name,
		Price:     dec(price),
		Category:  category,
		Available: available,
	})
	require.NoError(t, err)
	return item
}

func TestService_Create_Success(t *testing.T) {
	svc := NewService(newMemStore())

	item, err := svc.Create(context.Background(), &Item{
		Name:        "Margherita Pizza",
		Description: "Tomato, mozzarella, basil",
		Price:       dec("9.00"),
		Category:    "Pizza",
		Available:   true,
	})

	require.NoError(t, err)
	assert.NotZero(t, item.ID)
	assert.Equal(t, "Margherita Pizza", item.Name)
}

func TestService_Create_Invalid(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()

	_, err := svc.Create(ctx, &Item{Name: "", Price: dec("9.00")})
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = svc.Create(ctx, &Item{Name: "Free Pizza", Price: dec("0")})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, &Item{Name: "Negative Pizza", Price: dec("-1.00")})
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestService_Update_Success(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()
	item := seedItem(t, svc, "Margherita Pizza", "Pizza", "9.00", true)

	updated, err := svc.Update(ctx, item.ID, &Item{
		Name:      "Margherita Pizza",
		Price:     dec("10.50"),
		Category:  "Pizza",
		Available: true,
	})

	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(dec("10.50")))
	assert.Equal(t, item.ID, updated.ID)
}

func TestService_Update_NotFound(t *testing.T) {
	svc := NewService(newMemStore())

	_, err := svc.Update(context.Background(), 42, &Item{Name: "Ghost", Price: dec("1.00")})

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_Delete_SoftDelete(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()
	item := seedItem(t, svc, "Margherita Pizza", "Pizza", "9.00", true)

	require.NoError(t, svc.Delete(ctx, item.ID))

	// Still retrievable by id, but off the menu.
	stored, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.False(t, stored.Available)

	available, err := svc.ListAvailable(ctx)
	require.NoError(t, err)
	assert.Empty(t, available)
}

func TestService_Delete_NotFound(t *testing.T) {
	svc := NewService(newMemStore())

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_ByCategory_ExcludesUnavailable(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()
	seedItem(t, svc, "Margherita Pizza", "Pizza", "9.00", true)
	seedItem(t, svc, "Quattro Formaggi", "Pizza", "11.00", false)
	seedItem(t, svc, "Garlic Bread", "Sides", "5.50", true)

	items, err := svc.ByCategory(ctx, "Pizza")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
}

func TestService_Search_CaseInsensitive(t *testing.T) {
	svc := NewService(newMemStore())
	ctx := context.Background()
	seedItem(t, svc, "Margherita Pizza", "Pizza", "9.00", true)
	seedItem(t, svc, "Pepperoni Pizza", "Pizza", "10.00", true)
	seedItem(t, svc, "Garlic Bread", "Sides", "5.50", true)

	items, err := svc.Search(ctx, "pizza")

	require.NoError(t, err)
	assert.Len(t, items, 2)
}
