package repository

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/xenking/storefront/internal/domain/discount"
)

const (
	discountColumns = `id, code, value, usage_count, usage_limit, created_at`

	insertDiscountSQL = `INSERT INTO discounts (` + discountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	updateDiscountSQL = `UPDATE discounts SET code = $2, value = $3, usage_limit = $4 WHERE id = $1`

	deleteDiscountSQL = `DELETE FROM discounts WHERE id = $1`

	getDiscountByIDSQL   = `SELECT ` + discountColumns + ` FROM discounts WHERE id = $1`
	getDiscountByCodeSQL = `SELECT ` + discountColumns + ` FROM discounts WHERE code = $1`
	listDiscountsSQL     = `SELECT ` + discountColumns + ` FROM discounts ORDER BY created_at DESC, code`

	incrementDiscountUsageSQL = `UPDATE discounts SET usage_count = usage_count + 1
		WHERE code = $1 AND usage_count < usage_limit`
)

var _ discount.Repository = (*DiscountRepository)(nil)

// DiscountRepository implements discount.Repository backed by PostgreSQL.
type DiscountRepository struct {
	pool *pgxpool.Pool
}

// NewDiscountRepository returns a DiscountRepository that uses the given pool.
func NewDiscountRepository(pool *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{pool: pool}
}

// Create inserts a discount. A taken code yields discount.ErrDuplicateCode.
func (r *DiscountRepository) Create(ctx context.Context, d *discount.Discount) error {
	_, err := conn(ctx, r.pool).Exec(ctx, insertDiscountSQL,
		d.ID, d.Code, d.Value, d.UsageCount, d.UsageLimit, d.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return discount.ErrDuplicateCode
		}
		return fmt.Errorf("creating discount %q: %w", d.Code, err)
	}
	return nil
}

// Update overwrites code, value and usage limit. The usage count is only
// changed through IncrementUsage.
func (r *DiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, updateDiscountSQL, d.ID, d.Code, d.Value, d.UsageLimit)
	if err != nil {
		if isUniqueViolation(err) {
			return discount.ErrDuplicateCode
		}
		return fmt.Errorf("updating discount %q: %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return discount.ErrNotFound
	}
	return nil
}

// Delete removes a discount.
func (r *DiscountRepository) Delete(ctx context.Context, id string) error {
	tag, err := conn(ctx, r.pool).Exec(ctx, deleteDiscountSQL, id)
	if err != nil {
		return fmt.Errorf("deleting discount %q: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return discount.ErrNotFound
	}
	return nil
}

// FindByID returns a discount by id.
func (r *DiscountRepository) FindByID(ctx context.Context, id string) (*discount.Discount, error) {
	return r.findOne(ctx, getDiscountByIDSQL, id)
}

// FindByCode returns a discount by its normalized code.
func (r *DiscountRepository) FindByCode(ctx context.Context, code string) (*discount.Discount, error) {
	return r.findOne(ctx, getDiscountByCodeSQL, code)
}

func (r *DiscountRepository) findOne(ctx context.Context, sql, arg string) (*discount.Discount, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, sql, arg)
	if err != nil {
		return nil, fmt.Errorf("finding discount %q: %w", arg, err)
	}
	d, err := pgx.CollectExactlyOneRow(rows, scanDiscount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, discount.ErrNotFound
		}
		return nil, fmt.Errorf("finding discount %q: %w", arg, err)
	}
	return &d, nil
}

// List returns all discounts, newest first.
func (r *DiscountRepository) List(ctx context.Context) ([]discount.Discount, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, listDiscountsSQL)
	if err != nil {
		return nil, fmt.Errorf("listing discounts: %w", err)
	}
	return pgx.CollectRows(rows, scanDiscount)
}

// IncrementUsage adds one use to code while usage_count < usage_limit.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, code string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, incrementDiscountUsageSQL, code)
	if err != nil {
		return false, fmt.Errorf("incrementing usage of %q: %w", code, err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanDiscount(row pgx.CollectableRow) (discount.Discount, error) {
	var d discount.Discount
	err := row.Scan(&d.ID, &d.Code, &d.Value, &d.UsageCount, &d.UsageLimit, &d.CreatedAt)
	return d, err
}
