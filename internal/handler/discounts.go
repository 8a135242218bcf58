package handler

import (
	"context"

	"github.com/xenking/storefront/internal/oas"
)

func (h *Handler) ListDiscounts(ctx context.Context) ([]oas.Discount, error) {
	ds, err := h.discounts.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]oas.Discount, len(ds))
	for i := range ds {
		out[i] = discountToOAS(&ds[i])
	}
	return out, nil
}

func (h *Handler) CreateDiscount(ctx context.Context, req *oas.DiscountInput) (*oas.Discount, error) {
	d, err := h.discounts.Create(ctx, discountCreateRequest(req))
	if err != nil {
		return nil, err
	}
	resp := discountToOAS(d)
	return &resp, nil
}

func (h *Handler) GetDiscount(ctx context.Context, params oas.GetDiscountParams) (*oas.Discount, error) {
	d, err := h.discounts.FindByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	resp := discountToOAS(d)
	return &resp, nil
}

func (h *Handler) GetDiscountByCode(ctx context.Context, params oas.GetDiscountByCodeParams) (*oas.Discount, error) {
	d, err := h.discounts.FindByCode(ctx, params.Code)
	if err != nil {
		return nil, err
	}
	resp := discountToOAS(d)
	return &resp, nil
}

func (h *Handler) UpdateDiscount(ctx context.Context, req *oas.DiscountUpdate, params oas.UpdateDiscountParams) (*oas.Discount, error) {
	d, err := h.discounts.Update(ctx, params.ID, discountUpdateRequest(req))
	if err != nil {
		return nil, err
	}
	resp := discountToOAS(d)
	return &resp, nil
}

func (h *Handler) DeleteDiscount(ctx context.Context, params oas.DeleteDiscountParams) error {
	return h.discounts.Delete(ctx, params.ID)
}
