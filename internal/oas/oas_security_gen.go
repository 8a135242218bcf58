// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/ogenerrors"
)

// SecurityHandler is handler for security parameters.
type SecurityHandler interface {
	// HandleAPIKey handles api_key security.
	HandleAPIKey(ctx context.Context, operationName OperationName, t APIKey) (context.Context, error)
}

func findAuthorization(h http.Header, prefix string) (string, bool) {
	v, ok := h["Authorization"]
	if !ok {
		return "", false
	}
	for _, vv := range v {
		scheme, value, ok := strings.Cut(vv, " ")
		if !ok || !strings.EqualFold(scheme, prefix) {
			continue
		}
		return value, true
	}
	return "", false
}

// operationRolesAPIKey is a private map storing roles per operation.
var operationRolesAPIKey = map[string][]string{
	CreateDiscountOperation:           []string{},
	CreateProductOperation:            []string{},
	DeleteDiscountOperation:           []string{},
	DeleteProductOperation:            []string{},
	GetCompletedOrderCountOperation:   []string{},
	GetCompletedOrderRevenueOperation: []string{},
	GetDiscountOperation:              []string{},
	GetDiscountByCodeOperation:        []string{},
	ListDiscountsOperation:            []string{},
	UpdateDiscountOperation:           []string{},
	UpdateOrderStatusOperation:        []string{},
	UpdateProductOperation:            []string{},
}

// GetRolesForAPIKey returns the required roles for the given operation.
//
// This is useful for authorization scenarios where you need to know which roles
// are required for an operation.
//
// Example:
//
//	requiredRoles := GetRolesForAPIKey(AddPetOperation)
//
// Returns nil if the operation has no role requirements or if the operation is unknown.
func GetRolesForAPIKey(operation string) []string {
	roles, ok := operationRolesAPIKey[operation]
	if !ok {
		return nil
	}
	// Return a copy to prevent external modification
	result := make([]string, len(roles))
	copy(result, roles)
	return result
}

func (s *Server) securityAPIKey(ctx context.Context, operationName OperationName, req *http.Request) (context.Context, bool, error) {
	var t APIKey
	const parameterName = "api_key"
	value := req.Header.Get(parameterName)
	if value == "" {
		return ctx, false, nil
	}
	t.APIKey = value
	t.Roles = operationRolesAPIKey[operationName]
	rctx, err := s.sec.HandleAPIKey(ctx, operationName, t)
	if errors.Is(err, ogenerrors.ErrSkipServerSecurity) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	return rctx, true, err
}

// SecuritySource is provider of security values (tokens, passwords, etc.).
type SecuritySource interface {
	// APIKey provides api_key security value.
	APIKey(ctx context.Context, operationName OperationName) (APIKey, error)
}

func (s *Client) securityAPIKey(ctx context.Context, operationName OperationName, req *http.Request) error {
	t, err := s.sec.APIKey(ctx, operationName)
	if err != nil {
		return errors.Wrap(err, "security source \"APIKey\"")
	}
	req.Header.Set("api_key", t.APIKey)
	return nil
}
