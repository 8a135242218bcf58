package auth

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapRepo map[string]*APIKeyInfo

func (m mapRepo) FindByHash(_ context.Context, hash string) (*APIKeyInfo, error) {
	info, ok := m[hash]
	if !ok {
		return nil, ErrUnauthorized
	}
	return info, nil
}

func TestAuthenticator(t *testing.T) {
	pepper := []byte("pepper")
	hash := HashKey("secret-key", pepper)
	repo := mapRepo{
		hash:       {ID: "admin", KeyHash: hash, Name: "Admin", Scopes: []string{"admin"}},
		"badhash!": {ID: "broken", KeyHash: "zz"},
	}
	a := NewAuthenticator(repo, pepper)

	info, err := a.Authenticate(context.Background(), "secret-key")
	require.NoError(t, err)
	assert.Equal(t, "admin", info.ID)
	assert.True(t, info.HasScope("admin"))
	assert.False(t, info.HasScope("create_order"))

	for _, key := range []string{"", "wrong-key"} {
		_, err := a.Authenticate(context.Background(), key)
		require.ErrorIs(t, err, ErrUnauthorized)
	}

	_, err = NewAuthenticator(repo, []byte("other")).Authenticate(context.Background(), "secret-key")
	require.ErrorIs(t, err, ErrUnauthorized)
}

type failingRepo struct{}

func (failingRepo) FindByHash(context.Context, string) (*APIKeyInfo, error) {
	return nil, errors.New("connection refused")
}

func TestAuthenticator_LookupFailure(t *testing.T) {
	_, err := NewAuthenticator(failingRepo{}, nil).Authenticate(context.Background(), "secret-key")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAuthorize(t *testing.T) {
	pepper := []byte("pepper")
	repo := mapRepo{
		HashKey("admin-key", pepper): {ID: "admin", KeyHash: HashKey("admin-key", pepper), Scopes: []string{ScopeAdmin}},
		HashKey("order-key", pepper): {ID: "orders", KeyHash: HashKey("order-key", pepper), Scopes: []string{"create_order"}},
	}
	a := NewAuthenticator(repo, pepper)

	info, err := a.Authorize(context.Background(), "admin-key", ScopeAdmin)
	require.NoError(t, err)
	assert.Equal(t, "admin", info.ID)

	_, err = a.Authorize(context.Background(), "order-key", ScopeAdmin)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = a.Authorize(context.Background(), "unknown", ScopeAdmin)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestHashKey(t *testing.T) {
	a := HashKey("k", []byte("p"))
	assert.Len(t, a, 64)
	assert.Equal(t, a, HashKey("k", []byte("p")))
	assert.NotEqual(t, a, HashKey("k", []byte("q")))
}
