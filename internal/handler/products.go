package handler

import (
	"context"

	"github.com/xenking/storefront/internal/oas"
)

func (h *Handler) GetProduct(ctx context.Context, params oas.GetProductParams) (*oas.Product, error) {
	p, err := h.catalog.Get(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	resp := h.productToOAS(p)
	return &resp, nil
}

// GetProductBySlug serves the storefront's human-readable product URLs.
func (h *Handler) GetProductBySlug(ctx context.Context, params oas.GetProductBySlugParams) (*oas.Product, error) {
	p, err := h.catalog.GetBySlug(ctx, params.Slug)
	if err != nil {
		return nil, err
	}
	resp := h.productToOAS(p)
	return &resp, nil
}

func (h *Handler) CreateProduct(ctx context.Context, req *oas.ProductInput) (*oas.Product, error) {
	p, err := h.catalog.Create(ctx, productCreateRequest(req))
	if err != nil {
		return nil, err
	}
	resp := h.productToOAS(p)
	return &resp, nil
}

func (h *Handler) UpdateProduct(ctx context.Context, req *oas.ProductUpdate, params oas.UpdateProductParams) (*oas.Product, error) {
	p, err := h.catalog.Update(ctx, params.ID, productUpdateRequest(req))
	if err != nil {
		return nil, err
	}
	resp := h.productToOAS(p)
	return &resp, nil
}

func (h *Handler) DeleteProduct(ctx context.Context, params oas.DeleteProductParams) error {
	return h.catalog.Delete(ctx, params.ID)
}

func (h *Handler) RateProduct(ctx context.Context, req *oas.RatingInput, params oas.RateProductParams) (*oas.Product, error) {
	p, err := h.catalog.Rate(ctx, params.ID, ratingRequest(req))
	if err != nil {
		return nil, err
	}
	resp := h.productToOAS(p)
	return &resp, nil
}

func (h *Handler) ListBrands(ctx context.Context) ([]oas.Counter, error) {
	cs, err := h.catalog.Brands(ctx)
	if err != nil {
		return nil, err
	}
	return countersToOAS(cs), nil
}

func (h *Handler) ListCategories(ctx context.Context) ([]oas.Counter, error) {
	cs, err := h.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}
	return countersToOAS(cs), nil
}
