// Package health serves liveness and readiness probes for the API server.
//
// Registered checks are polled in the background. A check flips to failing
// after FailureThreshold consecutive errors and back to passing after
// SuccessThreshold consecutive successes, so a single slow ping does not
// take the instance out of rotation.
package health

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-faster/jx"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CheckFunc returns nil when the checked component is usable.
type CheckFunc func(ctx context.Context) error

// Kind tells which probe a check contributes to.
type Kind int

const (
	Liveness Kind = iota
	Readiness
)

// Check describes a registered probe check.
type Check struct {
	Name    string
	Kind    Kind
	Timeout time.Duration
	Func    CheckFunc

	// Defaults: 3 failures, 1 success.
	FailureThreshold int
	SuccessThreshold int
}

type state struct {
	Check

	passing atomic.Bool
	lastErr atomic.Pointer[error]

	// Touched only by the polling goroutine.
	fails int
	oks   int
}

func (s *state) observe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	err := s.Func(ctx)
	s.lastErr.Store(&err)
	if err != nil {
		s.oks = 0
		s.fails++
		if s.fails >= s.FailureThreshold && s.passing.Swap(false) {
			zctx.From(ctx).Warn("Health check failing", zap.String("check", s.Name), zap.Error(err))
		}
		return
	}
	s.fails = 0
	s.oks++
	if s.oks >= s.SuccessThreshold && !s.passing.Swap(true) {
		zctx.From(ctx).Info("Health check recovered", zap.String("check", s.Name))
	}
}

func (s *state) failure() string {
	if s.passing.Load() {
		return ""
	}
	if p := s.lastErr.Load(); p != nil && *p != nil {
		return (*p).Error()
	}
	return "check is failing"
}

// Health aggregates checks and the manual readiness gate.
type Health struct {
	ready atomic.Bool

	mu     sync.RWMutex
	checks []*state
}

// New creates a Health that reports not ready until SetReady(true).
func New() *Health {
	return &Health{}
}

// Add registers a check. Checks start passing. Add must be called before Run.
func (h *Health) Add(c Check) {
	if c.Timeout <= 0 {
		c.Timeout = time.Second
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 3
	}
	if c.SuccessThreshold <= 0 {
		c.SuccessThreshold = 1
	}
	s := &state{Check: c}
	s.passing.Store(true)

	h.mu.Lock()
	h.checks = append(h.checks, s)
	h.mu.Unlock()
}

// SetReady opens or closes the readiness gate. It is closed during startup
// and again at the start of graceful shutdown.
func (h *Health) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports whether the gate is open and every readiness check passes.
func (h *Health) Ready() bool {
	return h.ready.Load() && len(h.failures(Readiness)) == 0
}

// Run polls every check at interval until ctx is done.
func (h *Health) Run(ctx context.Context, interval time.Duration) error {
	h.mu.RLock()
	checks := append([]*state(nil), h.checks...)
	h.mu.RUnlock()

	g, ctx := errgroup.WithContext(ctx)
	for _, s := range checks {
		g.Go(func() error {
			t := time.NewTicker(interval)
			defer t.Stop()
			for {
				s.observe(ctx)
				select {
				case <-ctx.Done():
					return nil
				case <-t.C:
				}
			}
		})
	}
	return g.Wait()
}

func (h *Health) failures(kind Kind) map[string]string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make(map[string]string)
	for _, s := range h.checks {
		if s.Kind != kind {
			continue
		}
		if msg := s.failure(); msg != "" {
			out[s.Name] = msg
		}
	}
	return out
}

// Register mounts GET /livez and GET /readyz on mux.
func (h *Health) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /livez", h.live)
	mux.HandleFunc("GET /readyz", h.readyz)
}

func (h *Health) live(w http.ResponseWriter, _ *http.Request) {
	write(w, h.failures(Liveness))
}

func (h *Health) readyz(w http.ResponseWriter, _ *http.Request) {
	failures := h.failures(Readiness)
	if !h.ready.Load() {
		failures["_gate"] = "service is not ready"
	}
	write(w, failures)
}

// write renders {"status":"ok"} or {"status":"unhealthy","checks":{...}}.
func write(w http.ResponseWriter, failures map[string]string) {
	var e jx.Encoder
	status := http.StatusOK
	e.ObjStart()
	e.FieldStart("status")
	if len(failures) == 0 {
		e.Str("ok")
	} else {
		status = http.StatusServiceUnavailable
		e.Str("unhealthy")

		names := make([]string, 0, len(failures))
		for name := range failures {
			names = append(names, name)
		}
		sort.Strings(names)
		e.FieldStart("checks")
		e.ObjStart()
		for _, name := range names {
			e.FieldStart(name)
			e.Str(failures[name])
		}
		e.ObjEnd()
	}
	e.ObjEnd()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}
