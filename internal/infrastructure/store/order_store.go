package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MOzil-10/Ozil-s-Food-Nest/internal/order"
)

// OrderStore implements order.Store on PostgreSQL.
type OrderStore struct {
	db *sql.DB
}

func NewOrderStore(db *sql.DB) *OrderStore {
	return &OrderStore{db: db}
}

const orderColumns = `id, customer_name, customer_email, customer_phone, delivery_address,
	status, total_amount, created_at, updated_at, estimated_delivery_time`

// Create inserts the order and its lines in one transaction.
func (os *OrderStore) Create(ctx context.Context, o *order.Order) error {
	tx, err := os.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (customer_name, customer_email, customer_phone, delivery_address,
			status, total_amount, created_at, updated_at, estimated_delivery_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.DeliveryAddress,
		o.Status, o.TotalAmount, o.CreatedAt, o.UpdatedAt, nullTime(o.EstimatedDeliveryTime),
	).Scan(&o.ID)
	if err != nil {
		return err
	}

	for i := range o.Lines {
		line := &o.Lines[i]
		err = tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, menu_item_id, menu_item_name, quantity,
				unit_price, total_price, special_instructions)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 RETURNING id`,
			o.ID, line.MenuItemID, line.MenuItemName, line.Quantity,
			line.UnitPrice, line.TotalPrice, line.SpecialInstructions,
		).Scan(&line.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (os *OrderStore) Get(ctx context.Context, id int64) (*order.Order, error) {
	row := os.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id)

	o, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, order.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if o.Lines, err = os.loadLines(ctx, o.ID); err != nil {
		return nil, err
	}
	return o, nil
}

func (os *OrderStore) ByCustomerEmail(ctx context.Context, email string) ([]order.Order, error) {
	return os.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE customer_email = $1 ORDER BY created_at DESC",
		email)
}

func (os *OrderStore) ByStatus(ctx context.Context, status order.Status) ([]order.Order, error) {
	return os.queryOrders(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE status = $1 ORDER BY created_at DESC",
		status)
}

func (os *OrderStore) CountByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := os.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM orders WHERE status = $1", status).Scan(&count)
	return count, err
}

func (os *OrderStore) SetStatus(ctx context.Context, o *order.Order) error {
	res, err := os.db.ExecContext(ctx,
		`UPDATE orders
		 SET status = $2, updated_at = $3, estimated_delivery_time = $4
		 WHERE id = $1`,
		o.ID, o.Status, o.UpdatedAt, nullTime(o.EstimatedDeliveryTime))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return order.ErrOrderNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var eta sql.NullTime
	err := row.Scan(&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone, &o.DeliveryAddress,
		&o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt, &eta)
	if err != nil {
		return nil, err
	}
	if eta.Valid {
		o.EstimatedDeliveryTime = &eta.Time
	}
	return &o, nil
}

func (os *OrderStore) queryOrders(ctx context.Context, q string, args ...any) ([]order.Order, error) {
	rows, err := os.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].Lines, err = os.loadLines(ctx, orders[i].ID); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (os *OrderStore) loadLines(ctx context.Context, orderID int64) ([]order.Line, error) {
	rows, err := os.db.QueryContext(ctx,
		`SELECT id, menu_item_id, menu_item_name, quantity, unit_price, total_price, special_instructions
		 FROM order_items
		 WHERE order_id = $1
		 ORDER BY id`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []order.Line
	for rows.Next() {
		var line order.Line
		if err := rows.Scan(&line.ID, &line.MenuItemID, &line.MenuItemName, &line.Quantity,
			&line.UnitPrice, &line.TotalPrice, &line.SpecialInstructions); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
