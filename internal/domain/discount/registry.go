package discount

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateRequest holds the input for creating a discount.
type CreateRequest struct {
	Code       string
	Value      decimal.Decimal
	UsageLimit int
}

// UpdateRequest holds a partial discount update. Nil fields are untouched.
type UpdateRequest struct {
	Code       *string
	Value      *decimal.Decimal
	UsageLimit *int
}

// Registry validates discount writes and exposes lookups used at checkout.
type Registry struct {
	repo Repository
	now  func() time.Time
}

// NewRegistry creates a Registry backed by repo.
func NewRegistry(repo Repository) *Registry {
	return &Registry{repo: repo, now: time.Now}
}

// Create validates and stores a new discount with zero usage.
func (r *Registry) Create(ctx context.Context, req CreateRequest) (*Discount, error) {
	code, err := validateCode(req.Code)
	if err != nil {
		return nil, err
	}
	if err := validateValue(req.Value); err != nil {
		return nil, err
	}
	if err := validateLimit(req.UsageLimit); err != nil {
		return nil, err
	}

	if _, err := r.repo.FindByCode(ctx, code); err == nil {
		return nil, ErrDuplicateCode
	} else if !errors.Is(err, ErrNotFound) {
		return nil, errors.Wrap(err, "check code")
	}

	d := &Discount{
		ID:         uuid.New().String(),
		Code:       code,
		Value:      req.Value,
		UsageLimit: req.UsageLimit,
		CreatedAt:  r.now(),
	}
	if err := r.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update re-validates every present field and stores the result.
func (r *Registry) Update(ctx context.Context, id string, req UpdateRequest) (*Discount, error) {
	d, err := r.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		code, err := validateCode(*req.Code)
		if err != nil {
			return nil, err
		}
		if code != d.Code {
			if _, err := r.repo.FindByCode(ctx, code); err == nil {
				return nil, ErrDuplicateCode
			} else if !errors.Is(err, ErrNotFound) {
				return nil, errors.Wrap(err, "check code")
			}
		}
		d.Code = code
	}
	if req.Value != nil {
		if err := validateValue(*req.Value); err != nil {
			return nil, err
		}
		d.Value = *req.Value
	}
	if req.UsageLimit != nil {
		if err := validateLimit(*req.UsageLimit); err != nil {
			return nil, err
		}
		if *req.UsageLimit < d.UsageCount {
			return nil, &ValidationError{Field: "usageLimit", Reason: "must not be below current usage count"}
		}
		d.UsageLimit = *req.UsageLimit
	}

	if err := r.repo.Update(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Delete hard-deletes a discount. Orders referencing its code keep it.
func (r *Registry) Delete(ctx context.Context, id string) error {
	return r.repo.Delete(ctx, id)
}

// FindByID returns a discount by id.
func (r *Registry) FindByID(ctx context.Context, id string) (*Discount, error) {
	return r.repo.FindByID(ctx, id)
}

// FindByCode returns a discount by code, ignoring case and surrounding
// whitespace.
func (r *Registry) FindByCode(ctx context.Context, code string) (*Discount, error) {
	code = NormalizeCode(code)
	if code == "" {
		return nil, ErrNotFound
	}
	return r.repo.FindByCode(ctx, code)
}

// List returns all discounts, newest first.
func (r *Registry) List(ctx context.Context) ([]Discount, error) {
	return r.repo.List(ctx)
}

// IncrementUsage records one use of code. Unknown codes are a no-op; the
// returned flag is false when nothing was recorded.
func (r *Registry) IncrementUsage(ctx context.Context, code string) (bool, error) {
	code = NormalizeCode(code)
	if code == "" {
		return false, nil
	}
	ok, err := r.repo.IncrementUsage(ctx, code)
	if err != nil {
		return false, errors.Wrapf(err, "increment usage of %q", code)
	}
	return ok, nil
}

func validateCode(raw string) (string, error) {
	code := NormalizeCode(raw)
	if code == "" {
		return "", &ValidationError{Field: "code", Reason: "must not be empty"}
	}
	if len([]rune(code)) != CodeLength {
		return "", &ValidationError{Field: "code", Reason: "must be exactly 5 characters"}
	}
	return code, nil
}

func validateValue(v decimal.Decimal) error {
	if v.IsNegative() {
		return &ValidationError{Field: "discountValue", Reason: "must not be negative"}
	}
	return nil
}

func validateLimit(limit int) error {
	if limit < 1 {
		return &ValidationError{Field: "usageLimit", Reason: "must be at least 1"}
	}
	return nil
}
