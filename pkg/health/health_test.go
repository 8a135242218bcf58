package health

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func get(t *testing.T, h *Health, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	h.Register(mux)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLivez(t *testing.T) {
	h := New()
	h.Add(Check{Name: "goroutines", Kind: Liveness, Func: GoroutineCountCheck(1 << 20)})

	rec := get(t, h, "/livez")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz_Gate(t *testing.T) {
	h := New()
	h.Add(Check{Name: "postgres", Kind: Readiness, Func: PingCheck(stubPinger{})})

	rec := get(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"_gate":"service is not ready"}}`, rec.Body.String())
	assert.False(t, h.Ready())

	h.SetReady(true)
	rec = get(t, h, "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, h.Ready())
}

func TestThresholds(t *testing.T) {
	h := New()
	h.SetReady(true)
	p := &stubPinger{err: errors.New("connection refused")}
	h.Add(Check{Name: "postgres", Kind: Readiness, Func: func(ctx context.Context) error { return p.Ping(ctx) }, SuccessThreshold: 2})
	s := h.checks[0]
	ctx := context.Background()

	s.observe(ctx)
	s.observe(ctx)
	assert.True(t, h.Ready(), "two failures stay below the threshold")

	s.observe(ctx)
	assert.False(t, h.Ready())
	rec := get(t, h, "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy","checks":{"postgres":"connection refused"}}`, rec.Body.String())

	p.err = nil
	s.observe(ctx)
	assert.False(t, h.Ready(), "one success is below the recovery threshold")
	s.observe(ctx)
	assert.True(t, h.Ready())
}

func TestLivenessIgnoresReadiness(t *testing.T) {
	h := New()
	h.Add(Check{Name: "postgres", Kind: Readiness, Func: PingCheck(stubPinger{err: errors.New("down")}), FailureThreshold: 1})
	h.checks[0].observe(context.Background())

	assert.Equal(t, http.StatusOK, get(t, h, "/livez").Code)
}

func TestRun(t *testing.T) {
	h := New()
	var calls atomic.Int32
	h.Add(Check{Name: "count", Kind: Liveness, Func: func(context.Context) error {
		calls.Add(1)
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, 10*time.Millisecond) }()

	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestCheckTimeout(t *testing.T) {
	h := New()
	h.Add(Check{
		Name:             "slow",
		Kind:             Readiness,
		Timeout:          10 * time.Millisecond,
		FailureThreshold: 1,
		Func: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})
	h.SetReady(true)
	h.checks[0].observe(context.Background())
	assert.False(t, h.Ready())
}

func TestGoroutineCountCheck(t *testing.T) {
	require.Error(t, GoroutineCountCheck(0)(context.Background()))
}
