package httpmiddleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-faster/sdk/zctx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestWrap_Order(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Wrap(okHandler(), mark("outer"), mark("inner"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusConflict, "discount code already exists")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"code":409,"message":"discount code already exists"}`, rec.Body.String())
}

func TestRecovery(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":500,"message":"internal server error"}`, rec.Body.String())
}

func TestRecovery_AbortHandler(t *testing.T) {
	h := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))
	assert.Panics(t, func() {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "Generated", incoming: "", keep: false},
		{name: "Reused", incoming: "abc-123", keep: true},
		{name: "TooLong", incoming: strings.Repeat("a", 129), keep: false},
		{name: "ControlChars", incoming: "bad\nid", keep: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(HeaderRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, seen)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
			}
		})
	}
}

func TestInjectLogger_LogRequests(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	lg := zap.New(core)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		zctx.From(r.Context()).Info("inside")
		w.WriteHeader(http.StatusNotFound)
	})

	h := Wrap(mux, RequestID(), InjectLogger(lg), LogRequests(nil))
	req := httptest.NewRequest(http.MethodGet, "/api/orders/o-1", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	h.ServeHTTP(httptest.NewRecorder(), req)

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	assert.Equal(t, "req-1", inside[0].ContextMap()["request_id"])

	served := logs.FilterMessage("Request rejected").All()
	require.Len(t, served, 1)
	fields := served[0].ContextMap()
	assert.Equal(t, "GET /api/orders/{id}", fields["route"])
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
}

func TestLogRequests_Unmatched(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))

	h := LogRequests(nil)(http.NewServeMux())
	req := httptest.NewRequest(http.MethodGet, "/nope", nil).WithContext(ctx)
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "unmatched", entries[0].ContextMap()["route"])
}

type fakeRoute string

func (r fakeRoute) PathPattern() string { return string(r) }

func TestMakeRouteFinder(t *testing.T) {
	lookup := func(withPrefix bool) func(method, path string) (fakeRoute, bool) {
		return func(method, path string) (fakeRoute, bool) {
			want := "/orders/o-1"
			if withPrefix {
				want = "/api/orders/o-1"
			}
			if method == http.MethodGet && path == want {
				return "/orders/{id}", true
			}
			return "", false
		}
	}

	for _, withPrefix := range []bool{true, false} {
		find := MakeRouteFinder("/api", lookup(withPrefix))

		got, ok := find(httptest.NewRequest(http.MethodGet, "/api/orders/o-1", nil))
		require.True(t, ok)
		assert.Equal(t, "GET /api/orders/{id}", got)

		_, ok = find(httptest.NewRequest(http.MethodDelete, "/api/orders/o-1", nil))
		assert.False(t, ok)
		_, ok = find(httptest.NewRequest(http.MethodGet, "/livez", nil))
		assert.False(t, ok)
	}
}

func TestLogRequests_RouteFinder(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := zctx.Base(context.Background(), zap.New(core))
	find := func(r *http.Request) (string, bool) {
		if r.URL.Path == "/api/products/p1" {
			return "GET /api/products/{id}", true
		}
		return "", false
	}

	mux := http.NewServeMux()
	mux.Handle("GET /livez", okHandler())
	h := LogRequests(find)(mux)

	for _, path := range []string{"/api/products/p1", "/livez"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx))
	}

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "GET /api/products/{id}", entries[0].ContextMap()["route"])
	assert.Equal(t, "GET /livez", entries[1].ContextMap()["route"])
}

func TestRateLimit(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := RateLimit(ctx, RateLimitConfig{
		Max:    2,
		Window: time.Minute,
		Match:  func(r *http.Request) bool { return r.Method == http.MethodPost },
	})(okHandler())

	send := func(method, ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/api/orders", nil)
		req.RemoteAddr = ip + ":5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, send(http.MethodPost, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodPost, "10.0.0.1").Code)

	rec := send(http.MethodPost, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	// Other clients and unmatched requests are unaffected.
	assert.Equal(t, http.StatusOK, send(http.MethodPost, "10.0.0.2").Code)
	assert.Equal(t, http.StatusOK, send(http.MethodGet, "10.0.0.1").Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	h := RateLimit(context.Background(), RateLimitConfig{})(okHandler())
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestLimiter_WindowResets(t *testing.T) {
	l := &limiter{cfg: RateLimitConfig{Max: 1, Window: time.Second}, windows: map[string]*window{}}
	now := time.Now()

	_, _, ok := l.allow("a", now)
	require.True(t, ok)
	_, _, ok = l.allow("a", now.Add(500*time.Millisecond))
	require.False(t, ok)
	_, _, ok = l.allow("a", now.Add(time.Second))
	require.True(t, ok)

	l.evict(now.Add(3 * time.Second))
	assert.Empty(t, l.windows)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1", clientIP(req))

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", clientIP(req))
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://shop.example.com"}, "api_key")(okHandler())

	t.Run("AllowedOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})
	t.Run("Preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/orders", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "api_key")
	})
	t.Run("ForeignOrigin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/brands", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestStatusRecorder_ImplicitOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	_, err := rec.Write([]byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.status)
	assert.Equal(t, 5, rec.bytes)
}
