package handler

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/oas"
)

// CreateOrder commits an order. Contact fields are required.
func (h *Handler) CreateOrder(ctx context.Context, req *oas.OrderRequest) (*oas.Order, error) {
	r := orderRequest(req)
	switch {
	case r.Contact.FullName == "":
		return nil, invalid("fullName is required")
	case r.Contact.Email == "":
		return nil, invalid("email is required")
	case r.Contact.Phone == "":
		return nil, invalid("phoneNum is required")
	}

	o, err := h.orders.Create(ctx, r)
	if err != nil {
		return nil, err
	}
	resp := h.orderToOAS(viewOf(o))
	return &resp, nil
}

// CalculateCart prices a cart without reserving stock or discount uses.
func (h *Handler) CalculateCart(ctx context.Context, req *oas.OrderRequest) (*oas.Order, error) {
	p, err := h.orders.CalculateCart(ctx, orderRequest(req))
	if err != nil {
		return nil, err
	}
	resp := h.orderToOAS(previewView(p))
	return &resp, nil
}

// ListOrders serves ?start=&count=&email= with defaults 0 and 10.
func (h *Handler) ListOrders(ctx context.Context, params oas.ListOrdersParams) ([]oas.Order, error) {
	orders, err := h.orders.FindMany(ctx, order.ListFilter{
		Email:  params.Email.Or(""),
		Offset: params.Start.Or(0),
		Limit:  params.Count.Or(10),
	})
	if err != nil {
		return nil, err
	}

	out := make([]oas.Order, len(orders))
	for i := range orders {
		out[i] = h.orderToOAS(viewOf(&orders[i]))
	}
	return out, nil
}

func (h *Handler) GetOrder(ctx context.Context, params oas.GetOrderParams) (*oas.Order, error) {
	o, err := h.orders.FindByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	resp := h.orderToOAS(viewOf(o))
	return &resp, nil
}

func (h *Handler) UpdateOrderStatus(ctx context.Context, req *oas.OrderStatusUpdate) (*oas.Order, error) {
	if req.ID == "" {
		return nil, invalid("id is required")
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	o, err := h.orders.UpdateStatus(ctx, req.ID, status)
	if err != nil {
		return nil, err
	}
	zctx.From(ctx).Info("Order status updated",
		zap.String("order_id", o.ID),
		zap.String("status", string(o.Status)),
	)
	resp := h.orderToOAS(viewOf(o))
	return &resp, nil
}

func (h *Handler) GetCompletedOrderCount(ctx context.Context) (int, error) {
	stats, err := h.orders.CompletedStats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Count, nil
}

func (h *Handler) GetCompletedOrderRevenue(ctx context.Context) (float64, error) {
	stats, err := h.orders.CompletedStats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Revenue.InexactFloat64(), nil
}
