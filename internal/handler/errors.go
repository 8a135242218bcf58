package handler

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/oas"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

// badRequest reports a request that decoded but is incomplete.
type badRequest struct {
	msg string
}

func (e *badRequest) Error() string { return e.msg }

func invalid(msg string) error { return &badRequest{msg: msg} }

// statusOf maps the domain error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	var (
		bad       *badRequest
		prodInval *product.ValidationError
		discInval *discount.ValidationError
		qtyInval  *order.InvalidQuantityError
	)
	switch {
	case errors.Is(err, auth.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, discount.ErrDuplicateCode),
		errors.Is(err, product.ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, product.ErrVariantNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrNotFound),
		errors.Is(err, discount.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &bad),
		errors.As(err, &prodInval),
		errors.As(err, &discInval),
		errors.As(err, &qtyInval),
		errors.Is(err, product.ErrInsufficientStock),
		errors.Is(err, product.ErrInvalidQuantity),
		errors.Is(err, discount.ErrExhausted),
		errors.Is(err, order.ErrEmptyItems),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPage):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorResponse picks the status and client message for err. Client errors
// echo their message; anything else is logged and hidden behind a generic
// 500.
func errorResponse(ctx context.Context, err error) (int, string) {
	var secErr *ogenerrors.SecurityError
	if errors.As(err, &secErr) {
		if errors.Is(err, auth.ErrUnauthorized) || errors.Is(err, ogenerrors.ErrSecurityRequirementIsNotSatisfied) {
			return http.StatusUnauthorized, "unauthorized"
		}
		zctx.From(ctx).Error("API key lookup failed", zap.Error(err))
		return http.StatusInternalServerError, "internal server error"
	}

	status := statusOf(err)
	if status == http.StatusInternalServerError {
		// Request decoding and parameter errors raised by the generated server.
		if code := ogenerrors.ErrorCode(err); code < http.StatusInternalServerError {
			return code, err.Error()
		}
		zctx.From(ctx).Error("Request failed", zap.Error(err))
		return status, "internal server error"
	}
	return status, err.Error()
}

// NewError renders errors returned by operations and the security handler.
func (h *Handler) NewError(ctx context.Context, err error) *oas.ErrorStatusCode {
	status, msg := errorResponse(ctx, err)
	return &oas.ErrorStatusCode{
		StatusCode: status,
		Response: oas.Error{
			Code:    status,
			Message: msg,
		},
	}
}

// ErrorHandler renders errors the generated server raises before an
// operation runs, such as malformed bodies and parameters.
func ErrorHandler(ctx context.Context, w http.ResponseWriter, _ *http.Request, err error) {
	status, msg := errorResponse(ctx, err)
	httpmiddleware.WriteError(w, status, msg)
}
