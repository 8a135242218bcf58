package order

import (
	"context"
	"fmt"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"

	"github.com/xenking/storefront/internal/domain/product"
)

// ErrEmptyItems is returned for a cart without items.
var ErrEmptyItems = errors.New("items required")

// InvalidQuantityError indicates a cart item has a non-positive quantity.
type InvalidQuantityError struct {
	VariantID string
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be greater than 0 for variant %s", e.VariantID)
}

// VariantNotFoundError indicates a requested variant does not exist.
type VariantNotFoundError struct {
	VariantID string
}

func (e *VariantNotFoundError) Error() string {
	return fmt.Sprintf("variant %s not found", e.VariantID)
}

func (e *VariantNotFoundError) Unwrap() error { return product.ErrVariantNotFound }

// ProductNotFoundError indicates the parent product of a variant is missing.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product %s not found", e.ProductID)
}

func (e *ProductNotFoundError) Unwrap() error { return product.ErrProductNotFound }

// Item is one requested (variant, quantity) pair.
type Item struct {
	VariantID string
	Quantity  int
}

// Catalog is the read side of the product store the resolver joins against.
type Catalog interface {
	GetVariants(ctx context.Context, ids []string) ([]product.Variant, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]product.Product, error)
}

// Resolver turns cart items into priced, display-ready lines.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a Resolver.
func NewResolver(catalog Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolved is the resolver output: lines in request order plus the variants
// they were priced from, keyed by variant id.
type Resolved struct {
	Lines    []Line
	Variants map[string]product.Variant
}

// Resolve validates items and builds one line per item, preserving order.
// It performs reads only.
func (r *Resolver) Resolve(ctx context.Context, items []Item) (*Resolved, error) {
	if len(items) == 0 {
		return nil, ErrEmptyItems
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, &InvalidQuantityError{VariantID: item.VariantID}
		}
		ids = append(ids, item.VariantID)
	}

	variants, err := r.catalog.GetVariants(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "get variants")
	}
	byID := make(map[string]product.Variant, len(variants))
	productIDs := make([]string, 0, len(variants))
	for _, v := range variants {
		byID[v.ID] = v
		productIDs = append(productIDs, v.ProductID)
	}
	for _, item := range items {
		if _, ok := byID[item.VariantID]; !ok {
			return nil, &VariantNotFoundError{VariantID: item.VariantID}
		}
	}

	products, err := r.catalog.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return nil, errors.Wrap(err, "get products")
	}
	productByID := make(map[string]*product.Product, len(products))
	for i := range products {
		productByID[products[i].ID] = &products[i]
	}

	lines := make([]Line, len(items))
	for i, item := range items {
		v := byID[item.VariantID]
		p, ok := productByID[v.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: v.ProductID}
		}
		lines[i] = Line{
			ProductID:   p.ID,
			VariantID:   v.ID,
			DisplayName: p.Title + " - " + v.Name,
			ImageURL:    p.FirstImage(),
			Quantity:    item.Quantity,
			Price:       v.Price,
		}
	}

	return &Resolved{Lines: lines, Variants: byID}, nil
}

// Total sums quantity × unit price over lines. Preview and commit both
// price through this function.
func Total(lines []Line) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}
