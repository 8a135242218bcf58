package reconcile

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/storefront/internal/domain/product"
)

type fakeRecounter struct {
	calls atomic.Int32
	fixed []product.Correction
	err   error
}

func (f *fakeRecounter) RecountCounters(context.Context) ([]product.Correction, error) {
	f.calls.Add(1)
	return f.fixed, f.err
}

func TestRunOnce(t *testing.T) {
	f := &fakeRecounter{fixed: []product.Correction{{Kind: "brand", Title: "Acme", Was: 3, Now: 2}}}
	got, err := New(f, "").RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, f.fixed, got)

	f.err = errors.New("db down")
	_, err = New(f, "").RunOnce(context.Background())
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	f := &fakeRecounter{}
	r := New(f, "@every 1s")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return f.calls.Load() > 0 }, 5*time.Second, 50*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_InvalidSchedule(t *testing.T) {
	err := New(&fakeRecounter{}, "not a schedule").Run(context.Background())
	require.Error(t, err)
}
