package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationError reports a malformed catalog write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Transactor runs fn inside a single store transaction. Repository calls
// made with the context passed to fn join that transaction.
type Transactor interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// VariantInput describes a variant in create and update requests. An empty
// ID on update creates a new variant.
type VariantInput struct {
	ID    string
	Name  string
	Price decimal.Decimal
	Stock int
}

// CreateRequest holds the input for creating a product.
type CreateRequest struct {
	Title       string
	Description string
	Category    string
	Brand       string
	ImageURLs   []string
	Variants    []VariantInput
}

// UpdateRequest holds a partial product update. Nil fields are untouched;
// a non-nil Variants slice replaces the variant set.
type UpdateRequest struct {
	Title       *string
	Description *string
	Category    *string
	Brand       *string
	ImageURLs   []string
	Variants    []VariantInput
}

// RatingRequest holds the input for rating a product.
type RatingRequest struct {
	UserID   string
	UserName string
	Score    int
	Comment  string
}

// Catalog owns product writes and keeps brand/category counters in step
// with them.
type Catalog struct {
	repo Repository
	tx   Transactor
	now  func() time.Time
}

// NewCatalog creates a Catalog.
func NewCatalog(repo Repository, tx Transactor) *Catalog {
	return &Catalog{repo: repo, tx: tx, now: time.Now}
}

// slugAttempts bounds both the numbered candidates tried for a slug and the
// retries after losing a slug race to a concurrent write.
const slugAttempts = 5

// Get returns a product with its variants and ratings.
func (c *Catalog) Get(ctx context.Context, id string) (*Product, error) {
	return c.repo.GetProduct(ctx, id)
}

// GetBySlug returns the product published under slug.
func (c *Catalog) GetBySlug(ctx context.Context, slug string) (*Product, error) {
	return c.repo.GetProductBySlug(ctx, strings.ToLower(strings.TrimSpace(slug)))
}

// availableSlug derives a slug from title that no product other than id
// uses: the plain slug first, then "-2", "-3" and so on.
func (c *Catalog) availableSlug(ctx context.Context, title, id string) (string, error) {
	base := Slug(title)
	if base == "" {
		base = "product"
	}
	for i := 1; i <= slugAttempts; i++ {
		candidate := base
		if i > 1 {
			candidate = fmt.Sprintf("%s-%d", base, i)
		}
		p, err := c.repo.GetProductBySlug(ctx, candidate)
		switch {
		case errors.Is(err, ErrProductNotFound):
			return candidate, nil
		case err != nil:
			return "", errors.Wrap(err, "check slug")
		case p.ID == id:
			return candidate, nil
		}
	}
	return base + "-" + strings.SplitN(id, "-", 2)[0], nil
}

// writeWithSlug runs fn in a transaction, retrying when a concurrent write
// took the slug fn picked.
func (c *Catalog) writeWithSlug(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		err = c.tx.InTx(ctx, fn)
		if !errors.Is(err, ErrDuplicateSlug) {
			return err
		}
	}
	return err
}

// Brands lists brand counters, most used first.
func (c *Catalog) Brands(ctx context.Context) ([]Counter, error) {
	return c.repo.ListBrands(ctx)
}

// Categories lists category counters, most used first.
func (c *Catalog) Categories(ctx context.Context) ([]Counter, error) {
	return c.repo.ListCategories(ctx)
}

// Create validates and persists a new product, then bumps its brand and
// category counters.
func (c *Catalog) Create(ctx context.Context, req CreateRequest) (*Product, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if len(req.Variants) == 0 {
		return nil, &ValidationError{Field: "variants", Reason: "at least one variant required"}
	}

	p := &Product{
		ID:              uuid.New().String(),
		Title:           title,
		NormalizedTitle: Normalize(title),
		Description:     req.Description,
		Category:        strings.TrimSpace(req.Category),
		Brand:           strings.TrimSpace(req.Brand),
		ImageURLs:       req.ImageURLs,
		CreatedAt:       c.now(),
	}
	for _, in := range req.Variants {
		v, err := newVariant(p.ID, in)
		if err != nil {
			return nil, err
		}
		p.Variants = append(p.Variants, v)
	}

	err := c.writeWithSlug(ctx, func(ctx context.Context) error {
		slug, err := c.availableSlug(ctx, p.Title, p.ID)
		if err != nil {
			return err
		}
		p.Slug = slug
		if err := c.repo.CreateProduct(ctx, p); err != nil {
			return errors.Wrap(err, "create product")
		}
		return c.moveCounters(ctx, "", "", p.Brand, p.Category)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Update applies a partial update. Variants with an ID must already belong
// to the product; their sold counters are preserved.
func (c *Catalog) Update(ctx context.Context, id string, req UpdateRequest) (*Product, error) {
	var updated *Product
	err := c.writeWithSlug(ctx, func(ctx context.Context) error {
		p, err := c.repo.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		oldBrand, oldCategory := p.Brand, p.Category

		if req.Title != nil {
			title := strings.TrimSpace(*req.Title)
			if title == "" {
				return &ValidationError{Field: "title", Reason: "must not be empty"}
			}
			p.Title = title
			p.NormalizedTitle = Normalize(title)
			if p.Slug, err = c.availableSlug(ctx, title, p.ID); err != nil {
				return err
			}
		}
		if req.Description != nil {
			p.Description = *req.Description
		}
		if req.Category != nil {
			p.Category = strings.TrimSpace(*req.Category)
		}
		if req.Brand != nil {
			p.Brand = strings.TrimSpace(*req.Brand)
		}
		if req.ImageURLs != nil {
			p.ImageURLs = req.ImageURLs
		}
		if req.Variants != nil {
			variants, err := mergeVariants(p, req.Variants)
			if err != nil {
				return err
			}
			p.Variants = variants
		}

		if err := c.repo.UpdateProduct(ctx, p); err != nil {
			return errors.Wrap(err, "update product")
		}
		if err := c.moveCounters(ctx, oldBrand, oldCategory, p.Brand, p.Category); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a product with all its variants and releases its counters.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	return c.tx.InTx(ctx, func(ctx context.Context) error {
		p, err := c.repo.GetProduct(ctx, id)
		if err != nil {
			return err
		}
		if err := c.repo.DeleteProduct(ctx, id); err != nil {
			return errors.Wrap(err, "delete product")
		}
		return c.moveCounters(ctx, p.Brand, p.Category, "", "")
	})
}

// Rate attaches a rating to a product.
func (c *Catalog) Rate(ctx context.Context, productID string, req RatingRequest) (*Product, error) {
	if req.Score < 1 || req.Score > 5 {
		return nil, &ValidationError{Field: "score", Reason: "must be between 1 and 5"}
	}
	if _, err := c.repo.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	r := &Rating{
		ID:        uuid.New().String(),
		ProductID: productID,
		UserID:    req.UserID,
		UserName:  req.UserName,
		Score:     req.Score,
		Comment:   req.Comment,
		CreatedAt: c.now(),
	}
	if err := c.repo.AddRating(ctx, r); err != nil {
		return nil, errors.Wrap(err, "add rating")
	}
	return c.repo.GetProduct(ctx, productID)
}

// moveCounters decrements the old brand/category and increments the new
// ones when they differ. Empty titles are not counted.
func (c *Catalog) moveCounters(ctx context.Context, oldBrand, oldCategory, newBrand, newCategory string) error {
	if oldBrand != newBrand {
		if oldBrand != "" {
			if err := c.repo.AdjustBrand(ctx, oldBrand, -1); err != nil {
				return errors.Wrapf(err, "decrement brand %q", oldBrand)
			}
		}
		if newBrand != "" {
			if err := c.repo.AdjustBrand(ctx, newBrand, 1); err != nil {
				return errors.Wrapf(err, "increment brand %q", newBrand)
			}
		}
	}
	if oldCategory != newCategory {
		if oldCategory != "" {
			if err := c.repo.AdjustCategory(ctx, oldCategory, -1); err != nil {
				return errors.Wrapf(err, "decrement category %q", oldCategory)
			}
		}
		if newCategory != "" {
			if err := c.repo.AdjustCategory(ctx, newCategory, 1); err != nil {
				return errors.Wrapf(err, "increment category %q", newCategory)
			}
		}
	}
	return nil
}

func newVariant(productID string, in VariantInput) (Variant, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Variant{}, &ValidationError{Field: "variant.name", Reason: "must not be empty"}
	}
	if in.Price.IsNegative() {
		return Variant{}, &ValidationError{Field: "variant.price", Reason: "must not be negative"}
	}
	if in.Stock < 0 {
		return Variant{}, &ValidationError{Field: "variant.stock", Reason: "must not be negative"}
	}
	return Variant{
		ID:        uuid.New().String(),
		ProductID: productID,
		Name:      name,
		Price:     in.Price,
		Stock:     in.Stock,
	}, nil
}

func mergeVariants(p *Product, inputs []VariantInput) ([]Variant, error) {
	if len(inputs) == 0 {
		return nil, &ValidationError{Field: "variants", Reason: "at least one variant required"}
	}
	existing := make(map[string]Variant, len(p.Variants))
	for _, v := range p.Variants {
		existing[v.ID] = v
	}

	out := make([]Variant, 0, len(inputs))
	for _, in := range inputs {
		v, err := newVariant(p.ID, in)
		if err != nil {
			return nil, err
		}
		if in.ID != "" {
			cur, ok := existing[in.ID]
			if !ok {
				return nil, errors.Wrapf(ErrVariantNotFound, "variant %s", in.ID)
			}
			v.ID = cur.ID
			v.Sold = cur.Sold
		}
		out = append(out, v)
	}
	return out, nil
}
