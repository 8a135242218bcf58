// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
)

// Handler handles operations described by OpenAPI v3 specification.
type Handler interface {
	// CalculateCart implements calculateCart operation.
	//
	// Preview a cart without side effects.
	//
	// POST /orders/calculate
	CalculateCart(ctx context.Context, req *OrderRequest) (*Order, error)
	// CreateDiscount implements createDiscount operation.
	//
	// Create a discount.
	//
	// POST /discounts
	CreateDiscount(ctx context.Context, req *DiscountInput) (*Discount, error)
	// CreateOrder implements createOrder operation.
	//
	// Validates the cart, decrements stock, consumes one discount use and persists the order in a single
	// transaction.
	//
	// POST /orders
	CreateOrder(ctx context.Context, req *OrderRequest) (*Order, error)
	// CreateProduct implements createProduct operation.
	//
	// Create a product.
	//
	// POST /products
	CreateProduct(ctx context.Context, req *ProductInput) (*Product, error)
	// DeleteDiscount implements deleteDiscount operation.
	//
	// Delete a discount.
	//
	// DELETE /discounts/{id}
	DeleteDiscount(ctx context.Context, params DeleteDiscountParams) error
	// DeleteProduct implements deleteProduct operation.
	//
	// Delete a product.
	//
	// DELETE /products/{id}
	DeleteProduct(ctx context.Context, params DeleteProductParams) error
	// GetCompletedOrderCount implements getCompletedOrderCount operation.
	//
	// Number of completed orders.
	//
	// GET /orders/dashboard/count
	GetCompletedOrderCount(ctx context.Context) (int, error)
	// GetCompletedOrderRevenue implements getCompletedOrderRevenue operation.
	//
	// Revenue of completed orders.
	//
	// GET /orders/dashboard/revenue
	GetCompletedOrderRevenue(ctx context.Context) (float64, error)
	// GetDiscount implements getDiscount operation.
	//
	// Get a discount.
	//
	// GET /discounts/{id}
	GetDiscount(ctx context.Context, params GetDiscountParams) (*Discount, error)
	// GetDiscountByCode implements getDiscountByCode operation.
	//
	// Get a discount by code.
	//
	// GET /discounts/code/{code}
	GetDiscountByCode(ctx context.Context, params GetDiscountByCodeParams) (*Discount, error)
	// GetOrder implements getOrder operation.
	//
	// Get an order.
	//
	// GET /orders/{id}
	GetOrder(ctx context.Context, params GetOrderParams) (*Order, error)
	// GetProduct implements getProduct operation.
	//
	// Get a product.
	//
	// GET /products/{id}
	GetProduct(ctx context.Context, params GetProductParams) (*Product, error)
	// GetProductBySlug implements getProductBySlug operation.
	//
	// Get a product by its slug.
	//
	// GET /products/by-slug/{slug}
	GetProductBySlug(ctx context.Context, params GetProductBySlugParams) (*Product, error)
	// ListBrands implements listBrands operation.
	//
	// Brands with their product counts.
	//
	// GET /brands
	ListBrands(ctx context.Context) ([]Counter, error)
	// ListCategories implements listCategories operation.
	//
	// Categories with their product counts.
	//
	// GET /categories
	ListCategories(ctx context.Context) ([]Counter, error)
	// ListDiscounts implements listDiscounts operation.
	//
	// List discounts.
	//
	// GET /discounts
	ListDiscounts(ctx context.Context) ([]Discount, error)
	// ListOrders implements listOrders operation.
	//
	// List orders, newest first.
	//
	// GET /orders
	ListOrders(ctx context.Context, params ListOrdersParams) ([]Order, error)
	// RateProduct implements rateProduct operation.
	//
	// Rate a product.
	//
	// POST /products/{id}/ratings
	RateProduct(ctx context.Context, req *RatingInput, params RateProductParams) (*Product, error)
	// UpdateDiscount implements updateDiscount operation.
	//
	// Partially update a discount.
	//
	// PATCH /discounts/{id}
	UpdateDiscount(ctx context.Context, req *DiscountUpdate, params UpdateDiscountParams) (*Discount, error)
	// UpdateOrderStatus implements updateOrderStatus operation.
	//
	// Overwrite the status of an order.
	//
	// PATCH /orders/status
	UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate) (*Order, error)
	// UpdateProduct implements updateProduct operation.
	//
	// Partially update a product.
	//
	// PATCH /products/{id}
	UpdateProduct(ctx context.Context, req *ProductUpdate, params UpdateProductParams) (*Product, error)
	// NewError creates *ErrorStatusCode from error returned by handler.
	//
	// Used for common default response.
	NewError(ctx context.Context, err error) *ErrorStatusCode
}

// Server implements http server based on OpenAPI v3 specification and
// calls Handler to handle requests.
type Server struct {
	h   Handler
	sec SecurityHandler
	baseServer
}

// NewServer creates new Server.
func NewServer(h Handler, sec SecurityHandler, opts ...ServerOption) (*Server, error) {
	s, err := newServerConfig(opts...).baseServer()
	if err != nil {
		return nil, err
	}
	return &Server{
		h:          h,
		sec:        sec,
		baseServer: s,
	}, nil
}
