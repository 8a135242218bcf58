package discount

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

// CodeLength is the fixed length of a discount code.
const CodeLength = 5

var (
	// ErrNotFound is returned when no discount matches the id or code.
	ErrNotFound = errors.New("discount not found")
	// ErrDuplicateCode is returned when creating or renaming a discount to a
	// code that is already taken.
	ErrDuplicateCode = errors.New("discount code already exists")
	// ErrExhausted is returned when a discount has no uses left.
	ErrExhausted = errors.New("discount code exhausted")
)

// ValidationError reports a malformed discount field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Discount is a flat-amount deduction consumable up to UsageLimit times.
type Discount struct {
	ID         string
	Code       string
	Value      decimal.Decimal
	UsageCount int
	UsageLimit int
	CreatedAt  time.Time
}

// Exhausted reports whether the discount has no uses left.
func (d *Discount) Exhausted() bool {
	return d.UsageCount >= d.UsageLimit
}

// Apply subtracts the discount value from total, flooring at zero.
func (d *Discount) Apply(total decimal.Decimal) decimal.Decimal {
	out := total.Sub(d.Value)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

// NormalizeCode trims whitespace and upper-cases a code. Lookups and
// uniqueness are case-insensitive.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Repository provides discount persistence.
type Repository interface {
	Create(ctx context.Context, d *Discount) error
	Update(ctx context.Context, d *Discount) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Discount, error)
	// FindByCode expects an already normalized code.
	FindByCode(ctx context.Context, code string) (*Discount, error)
	List(ctx context.Context) ([]Discount, error)
	// IncrementUsage atomically adds one use while the limit allows it.
	// It reports false when the code is unknown or already exhausted.
	IncrementUsage(ctx context.Context, code string) (bool, error)
}
