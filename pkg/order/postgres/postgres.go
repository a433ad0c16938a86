// Package postgres persists orders in PostgreSQL across an orders table
// and an order_items table.
package postgres

import (
	"context"
	"database/sql"
	"time"

	"cartflow/pkg/order"
)

// Repository persists orders in PostgreSQL.
type Repository struct {
	db *sql.DB
}

// New creates a PostgreSQL repository.
func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Bootstrap creates the order tables when they do not exist yet.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			unit_price NUMERIC(12,2) NOT NULL,
			quantity INT NOT NULL
		)`)
	return err
}

// Create inserts the order and its items in one transaction.
func (r *Repository) Create(ctx context.Context, o order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "INSERT INTO orders (id,created_at) VALUES ($1,$2)", o.ID, o.CreatedAt); err != nil {
		return err
	}
	for _, it := range o.Items {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO order_items (order_id,name,unit_price,quantity) VALUES ($1,$2,$3,$4)",
			o.ID, it.Name, it.UnitPrice, it.Quantity); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Get retrieves an order and its items by ID.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	var o order.Order
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, "SELECT id,created_at FROM orders WHERE id=$1", id).Scan(&o.ID, &createdAt)
	if err == sql.ErrNoRows {
		return order.Order{}, order.ErrNotFound
	}
	if err != nil {
		return order.Order{}, err
	}
	o.CreatedAt = createdAt

	rows, err := r.db.QueryContext(ctx, "SELECT name,unit_price,quantity FROM order_items WHERE order_id=$1", id)
	if err != nil {
		return order.Order{}, err
	}
	defer rows.Close()
	for rows.Next() {
		var it order.Item
		if err := rows.Scan(&it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return order.Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

// List fetches all orders with their items.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT o.id, o.created_at, i.name, i.unit_price, i.quantity
		FROM orders o JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at, o.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	index := map[string]int{}
	for rows.Next() {
		var id string
		var createdAt time.Time
		var it order.Item
		if err := rows.Scan(&id, &createdAt, &it.Name, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		i, ok := index[id]
		if !ok {
			orders = append(orders, order.Order{ID: id, CreatedAt: createdAt})
			i = len(orders) - 1
			index[id] = i
		}
		orders[i].Items = append(orders[i].Items, it)
	}
	return orders, rows.Err()
}

// Delete removes an order by ID; items go with it via the cascade.
func (r *Repository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM orders WHERE id=$1", id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return order.ErrNotFound
	}
	return nil
}
