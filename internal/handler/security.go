package handler

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/oas"
)

// HeaderAPIKey carries the admin API key.
const HeaderAPIKey = "api_key"

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// Authorizer validates an API key against a required scope.
type Authorizer interface {
	Authorize(ctx context.Context, key, scope string) (*auth.APIKeyInfo, error)
}

// SecurityHandler guards the admin operations. Every secured operation
// requires a key holding the admin scope.
type SecurityHandler struct {
	authz Authorizer
}

// NewSecurityHandler creates a SecurityHandler backed by authz.
func NewSecurityHandler(authz Authorizer) *SecurityHandler {
	return &SecurityHandler{authz: authz}
}

// HandleAPIKey authorizes the api_key header and tags the request logger
// with the key name.
func (s *SecurityHandler) HandleAPIKey(ctx context.Context, _ oas.OperationName, t oas.APIKey) (context.Context, error) {
	info, err := s.authz.Authorize(ctx, t.APIKey, auth.ScopeAdmin)
	if err != nil {
		return ctx, err
	}
	return zctx.With(ctx, zap.String("api_key", info.Name)), nil
}
