package product

import (
	"context"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound is returned when a requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrVariantNotFound is returned when a requested variant does not exist.
	ErrVariantNotFound = errors.New("variant not found")
	// ErrInsufficientStock is returned by Sell when the variant has fewer
	// units in stock than requested. Stock and sold counters are unchanged.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned by Sell for non-positive quantities.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")
	// ErrDuplicateSlug is returned when a product write collides with the
	// slug of another product.
	ErrDuplicateSlug = errors.New("slug already in use")
)

// Product is the unit of catalog identity. Variants are owned by exactly
// one product and are removed together with it.
type Product struct {
	ID              string
	Title           string
	NormalizedTitle string
	Slug            string
	Description     string
	Category        string
	Brand           string
	ImageURLs       []string
	Variants        []Variant
	Ratings         []Rating
	CreatedAt       time.Time
}

// FirstImage returns the first image URL or an empty string.
func (p *Product) FirstImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// Variant is a purchasable SKU of a product.
type Variant struct {
	ID        string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Stock     int
	Sold      int
}

// Rating is a buyer review attached to a product.
type Rating struct {
	ID        string
	ProductID string
	UserID    string
	UserName  string
	Score     int
	Comment   string
	CreatedAt time.Time
}

// Counter is a denormalized product count for a brand or category title.
type Counter struct {
	Title        string
	ProductCount int
}

// Inventory exposes stock lookups and the atomic decrement-on-sale.
type Inventory interface {
	GetVariant(ctx context.Context, id string) (*Variant, error)
	// GetVariants returns the variants matching ids. Unknown ids are
	// silently absent from the result.
	GetVariants(ctx context.Context, ids []string) ([]Variant, error)
	// Sell decrements stock and increments sold by quantity in a single
	// compare-and-decrement step and returns the updated variant. On
	// ErrInsufficientStock the returned variant carries the current stock.
	Sell(ctx context.Context, id string, quantity int) (*Variant, error)
}

// Repository is the full catalog persistence contract.
type Repository interface {
	Inventory

	GetProduct(ctx context.Context, id string) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]Product, error)
	// CreateProduct and UpdateProduct return ErrDuplicateSlug when p.Slug
	// belongs to another product.
	CreateProduct(ctx context.Context, p *Product) error
	// UpdateProduct overwrites product fields and replaces the variant set:
	// variants present in p are upserted, the rest are deleted.
	UpdateProduct(ctx context.Context, p *Product) error
	DeleteProduct(ctx context.Context, id string) error
	AddRating(ctx context.Context, r *Rating) error

	// AdjustBrand and AdjustCategory move the product count of title by
	// delta. A first-seen title is created, and counts never go below zero.
	AdjustBrand(ctx context.Context, title string, delta int) error
	AdjustCategory(ctx context.Context, title string, delta int) error
	ListBrands(ctx context.Context) ([]Counter, error)
	ListCategories(ctx context.Context) ([]Counter, error)
	// RecountCounters recomputes brand and category counts from products
	// and returns the counters whose stored value was corrected.
	RecountCounters(ctx context.Context) ([]Correction, error)
}

// Correction describes a counter fixed by reconciliation.
type Correction struct {
	Kind  string // "brand" or "category"
	Title string
	Was   int
	Now   int
}
