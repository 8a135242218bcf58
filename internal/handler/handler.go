// Package handler implements the storefront API on top of the ogen server.
package handler

import (
	"context"
	"strings"

	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/oas"
)

// Compile-time check ensuring Handler satisfies the ogen Handler interface.
var _ oas.Handler = (*Handler)(nil)

// Orders is the order engine as used by the HTTP layer.
type Orders interface {
	CalculateCart(ctx context.Context, req order.Request) (*order.Preview, error)
	Create(ctx context.Context, req order.Request) (*order.Order, error)
	UpdateStatus(ctx context.Context, id string, status order.Status) (*order.Order, error)
	FindByID(ctx context.Context, id string) (*order.Order, error)
	FindMany(ctx context.Context, f order.ListFilter) ([]order.Order, error)
	CompletedStats(ctx context.Context) (order.Stats, error)
}

// Catalog is the product service as used by the HTTP layer.
type Catalog interface {
	Get(ctx context.Context, id string) (*product.Product, error)
	GetBySlug(ctx context.Context, slug string) (*product.Product, error)
	Brands(ctx context.Context) ([]product.Counter, error)
	Categories(ctx context.Context) ([]product.Counter, error)
	Create(ctx context.Context, req product.CreateRequest) (*product.Product, error)
	Update(ctx context.Context, id string, req product.UpdateRequest) (*product.Product, error)
	Delete(ctx context.Context, id string) error
	Rate(ctx context.Context, productID string, req product.RatingRequest) (*product.Product, error)
}

// Discounts is the discount registry as used by the HTTP layer.
type Discounts interface {
	Create(ctx context.Context, req discount.CreateRequest) (*discount.Discount, error)
	Update(ctx context.Context, id string, req discount.UpdateRequest) (*discount.Discount, error)
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*discount.Discount, error)
	FindByCode(ctx context.Context, code string) (*discount.Discount, error)
	List(ctx context.Context) ([]discount.Discount, error)
}

// HandlerConfig holds non-dependency configuration for the Handler.
type HandlerConfig struct {
	// ImageBaseURL is prepended to relative image paths in responses.
	// When empty, image paths are returned as stored.
	ImageBaseURL string
}

// Handler implements the ogen-generated Handler interface, delegating to the
// order engine, the catalog and the discount registry.
type Handler struct {
	oas.UnimplementedHandler

	orders       Orders
	catalog      Catalog
	discounts    Discounts
	imageBaseURL string
}

// NewHandler constructs a Handler with the required domain dependencies.
func NewHandler(cfg HandlerConfig, orders Orders, catalog Catalog, discounts Discounts) *Handler {
	return &Handler{
		orders:       orders,
		catalog:      catalog,
		discounts:    discounts,
		imageBaseURL: strings.TrimSuffix(cfg.ImageBaseURL, "/"),
	}
}

// resolveImageURL prepends the configured base URL to relative paths.
func (h *Handler) resolveImageURL(path string) string {
	if h.imageBaseURL == "" || path == "" {
		return path
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return h.imageBaseURL + "/" + strings.TrimPrefix(path, "/")
}
