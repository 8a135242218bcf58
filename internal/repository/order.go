package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/order"
)

const (
	orderColumns = `id, user_id, full_name, email, phone, discount_code, lines, total, status, created_at`

	createOrderSQL = `INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	getOrderSQL = `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	// Ties on created_at fall back to insertion order.
	listOrdersSQL = `SELECT ` + orderColumns + ` FROM orders
		WHERE ($1 = '' OR email = $1)
		ORDER BY created_at DESC, seq DESC
		OFFSET $2 LIMIT $3`

	updateOrderStatusSQL = `UPDATE orders SET status = $2 WHERE id = $1 RETURNING ` + orderColumns

	completedStatsSQL = `SELECT count(*), COALESCE(sum(total), 0) FROM orders WHERE status = $1`
)

var _ order.Repository = (*OrderRepository)(nil)

// OrderRepository implements order.Repository backed by PostgreSQL.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository returns an OrderRepository that uses the given pool.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Create persists a new order. The lines are serialized to JSON for storage
// in the JSONB column.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	linesJSON, err := json.Marshal(o.Lines)
	if err != nil {
		return fmt.Errorf("marshaling order lines: %w", err)
	}

	_, err = conn(ctx, r.pool).Exec(ctx, createOrderSQL,
		o.ID, o.UserID, o.Contact.FullName, o.Contact.Email, o.Contact.Phone,
		o.DiscountCode, linesJSON, o.Total, string(o.Status), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating order %q: %w", o.ID, err)
	}

	return nil
}

// FindByID returns a single order.
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, getOrderSQL, id)
	if err != nil {
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	return collectOrder(rows, id)
}

// FindMany returns a page of orders, newest first.
func (r *OrderRepository) FindMany(ctx context.Context, f order.ListFilter) ([]order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listOrdersSQL, f.Email, f.Offset, f.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	return pgx.CollectRows(rows, scanOrder)
}

// UpdateStatus overwrites the status and returns the updated order.
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, updateOrderStatusSQL, id, string(status))
	if err != nil {
		return nil, fmt.Errorf("updating order %q: %w", id, err)
	}
	return collectOrder(rows, id)
}

// CompletedStats counts completed orders and sums their totals.
func (r *OrderRepository) CompletedStats(ctx context.Context) (order.Stats, error) {
	var (
		st      order.Stats
		revenue decimal.Decimal
	)
	err := conn(ctx, r.pool).QueryRow(ctx, completedStatsSQL, string(order.StatusCompleted)).Scan(&st.Count, &revenue)
	if err != nil {
		return order.Stats{}, fmt.Errorf("computing completed stats: %w", err)
	}
	st.Revenue = revenue
	return st, nil
}

func collectOrder(rows pgx.Rows, id string) (*order.Order, error) {
	o, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrNotFound
		}
		return nil, fmt.Errorf("getting order %q: %w", id, err)
	}
	return &o, nil
}

func scanOrder(row pgx.CollectableRow) (order.Order, error) {
	var (
		o         order.Order
		linesJSON []byte
		status    string
	)
	err := row.Scan(
		&o.ID, &o.UserID, &o.Contact.FullName, &o.Contact.Email, &o.Contact.Phone,
		&o.DiscountCode, &linesJSON, &o.Total, &status, &o.CreatedAt,
	)
	if err != nil {
		return o, err
	}
	o.Status = order.Status(status)
	if err := json.Unmarshal(linesJSON, &o.Lines); err != nil {
		return o, fmt.Errorf("unmarshaling lines of %q: %w", o.ID, err)
	}
	return o, nil
}
