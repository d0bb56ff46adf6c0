package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/menu"
)

// MenuStore implements menu.Store on PostgreSQL.
type MenuStore struct {
	db *sql.DB
}

func NewMenuStore(db *sql.DB) *MenuStore {
	return &MenuStore{db: db}
}

const menuColumns = "id, name, description, price, category, available"

func (ms *MenuStore) Get(ctx context.Context, id int64) (*menu.Item, error) {
	row := ms.db.QueryRowContext(ctx,
		"SELECT "+menuColumns+" FROM menu_items WHERE id = $1", id)

	var item menu.Item
	err := row.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, menu.ErrItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (ms *MenuStore) ListAvailable(ctx context.Context) ([]menu.Item, error) {
	return ms.query(ctx,
		"SELECT "+menuColumns+" FROM menu_items WHERE available ORDER BY category, name")
}

func (ms *MenuStore) ByCategory(ctx context.Context, category string) ([]menu.Item, error) {
	return ms.query(ctx,
		"SELECT "+menuColumns+" FROM menu_items WHERE available AND category = $1 ORDER BY name",
		category)
}

func (ms *MenuStore) Search(ctx context.Context, term string) ([]menu.Item, error) {
	return ms.query(ctx,
		"SELECT "+menuColumns+" FROM menu_items WHERE available AND name ILIKE '%' || $1 || '%' ORDER BY name",
		term)
}

func (ms *MenuStore) Create(ctx context.Context, item *menu.Item) error {
	return ms.db.QueryRowContext(ctx,
		`INSERT INTO menu_items (name, description, price, category, available)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		item.Name, item.Description, item.Price, item.Category, item.Available,
	).Scan(&item.ID)
}

func (ms *MenuStore) Update(ctx context.Context, item *menu.Item) error {
	res, err := ms.db.ExecContext(ctx,
		`UPDATE menu_items
		 SET name = $2, description = $3, price = $4, category = $5, available = $6
		 WHERE id = $1`,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Available)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return menu.ErrItemNotFound
	}
	return nil
}

func (ms *MenuStore) query(ctx context.Context, q string, args ...any) ([]menu.Item, error) {
	rows, err := ms.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []menu.Item
	for rows.Next() {
		var item menu.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Category, &item.Available); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
