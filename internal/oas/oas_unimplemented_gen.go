// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"

	ht "github.com/ogen-go/ogen/http"
)

// UnimplementedHandler is no-op Handler which returns http.ErrNotImplemented.
type UnimplementedHandler struct{}

var _ Handler = UnimplementedHandler{}

// CalculateCart implements calculateCart operation.
//
// Preview a cart without side effects.
//
// POST /orders/calculate
func (UnimplementedHandler) CalculateCart(ctx context.Context, req *OrderRequest) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateDiscount implements createDiscount operation.
//
// Create a discount.
//
// POST /discounts
func (UnimplementedHandler) CreateDiscount(ctx context.Context, req *DiscountInput) (r *Discount, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateOrder implements createOrder operation.
//
// Validates the cart, decrements stock, consumes one discount use and persists the order in a single
// transaction.
//
// POST /orders
func (UnimplementedHandler) CreateOrder(ctx context.Context, req *OrderRequest) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// CreateProduct implements createProduct operation.
//
// Create a product.
//
// POST /products
func (UnimplementedHandler) CreateProduct(ctx context.Context, req *ProductInput) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// DeleteDiscount implements deleteDiscount operation.
//
// Delete a discount.
//
// DELETE /discounts/{id}
func (UnimplementedHandler) DeleteDiscount(ctx context.Context, params DeleteDiscountParams) error {
	return ht.ErrNotImplemented
}

// DeleteProduct implements deleteProduct operation.
//
// Delete a product.
//
// DELETE /products/{id}
func (UnimplementedHandler) DeleteProduct(ctx context.Context, params DeleteProductParams) error {
	return ht.ErrNotImplemented
}

// GetCompletedOrderCount implements getCompletedOrderCount operation.
//
// Number of completed orders.
//
// GET /orders/dashboard/count
func (UnimplementedHandler) GetCompletedOrderCount(ctx context.Context) (r int, _ error) {
	return r, ht.ErrNotImplemented
}

// GetCompletedOrderRevenue implements getCompletedOrderRevenue operation.
//
// Revenue of completed orders.
//
// GET /orders/dashboard/revenue
func (UnimplementedHandler) GetCompletedOrderRevenue(ctx context.Context) (r float64, _ error) {
	return r, ht.ErrNotImplemented
}

// GetDiscount implements getDiscount operation.
//
// Get a discount.
//
// GET /discounts/{id}
func (UnimplementedHandler) GetDiscount(ctx context.Context, params GetDiscountParams) (r *Discount, _ error) {
	return r, ht.ErrNotImplemented
}

// GetDiscountByCode implements getDiscountByCode operation.
//
// Get a discount by code.
//
// GET /discounts/code/{code}
func (UnimplementedHandler) GetDiscountByCode(ctx context.Context, params GetDiscountByCodeParams) (r *Discount, _ error) {
	return r, ht.ErrNotImplemented
}

// GetOrder implements getOrder operation.
//
// Get an order.
//
// GET /orders/{id}
func (UnimplementedHandler) GetOrder(ctx context.Context, params GetOrderParams) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProduct implements getProduct operation.
//
// Get a product.
//
// GET /products/{id}
func (UnimplementedHandler) GetProduct(ctx context.Context, params GetProductParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// GetProductBySlug implements getProductBySlug operation.
//
// Get a product by its slug.
//
// GET /products/by-slug/{slug}
func (UnimplementedHandler) GetProductBySlug(ctx context.Context, params GetProductBySlugParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// ListBrands implements listBrands operation.
//
// Brands with their product counts.
//
// GET /brands
func (UnimplementedHandler) ListBrands(ctx context.Context) (r []Counter, _ error) {
	return r, ht.ErrNotImplemented
}

// ListCategories implements listCategories operation.
//
// Categories with their product counts.
//
// GET /categories
func (UnimplementedHandler) ListCategories(ctx context.Context) (r []Counter, _ error) {
	return r, ht.ErrNotImplemented
}

// ListDiscounts implements listDiscounts operation.
//
// List discounts.
//
// GET /discounts
func (UnimplementedHandler) ListDiscounts(ctx context.Context) (r []Discount, _ error) {
	return r, ht.ErrNotImplemented
}

// ListOrders implements listOrders operation.
//
// List orders, newest first.
//
// GET /orders
func (UnimplementedHandler) ListOrders(ctx context.Context, params ListOrdersParams) (r []Order, _ error) {
	return r, ht.ErrNotImplemented
}

// RateProduct implements rateProduct operation.
//
// Rate a product.
//
// POST /products/{id}/ratings
func (UnimplementedHandler) RateProduct(ctx context.Context, req *RatingInput, params RateProductParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateDiscount implements updateDiscount operation.
//
// Partially update a discount.
//
// PATCH /discounts/{id}
func (UnimplementedHandler) UpdateDiscount(ctx context.Context, req *DiscountUpdate, params UpdateDiscountParams) (r *Discount, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateOrderStatus implements updateOrderStatus operation.
//
// Overwrite the status of an order.
//
// PATCH /orders/status
func (UnimplementedHandler) UpdateOrderStatus(ctx context.Context, req *OrderStatusUpdate) (r *Order, _ error) {
	return r, ht.ErrNotImplemented
}

// UpdateProduct implements updateProduct operation.
//
// Partially update a product.
//
// PATCH /products/{id}
func (UnimplementedHandler) UpdateProduct(ctx context.Context, req *ProductUpdate, params UpdateProductParams) (r *Product, _ error) {
	return r, ht.ErrNotImplemented
}

// NewError creates *ErrorStatusCode from error returned by handler.
//
// Used for common default response.
func (UnimplementedHandler) NewError(ctx context.Context, err error) (r *ErrorStatusCode) {
	r = new(ErrorStatusCode)
	return r
}
