package httpmiddleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RouteFinder resolves the route pattern serving r.
type RouteFinder func(r *http.Request) (string, bool)

// MakeRouteFinder adapts the route lookup of a generated server mounted
// under prefix. Patterns are reported as "METHOD prefix/pattern".
func MakeRouteFinder[R interface{ PathPattern() string }](prefix string, find func(method, path string) (R, bool)) RouteFinder {
	return func(r *http.Request) (string, bool) {
		path, ok := strings.CutPrefix(r.URL.Path, prefix)
		if !ok {
			return "", false
		}
		// Lookups may or may not expect the mount prefix.
		route, found := find(r.Method, r.URL.Path)
		if !found {
			route, found = find(r.Method, path)
		}
		if !found {
			return "", false
		}
		return r.Method + " " + prefix + route.PathPattern(), true
	}
}

// route returns the pattern that served r, or "unmatched". The ServeMux
// records its pattern on the request it was given, so this is only
// meaningful after the inner handler returned.
func route(r *http.Request, find RouteFinder) string {
	if find != nil {
		if pattern, ok := find(r); ok {
			return pattern
		}
	}
	if r.Pattern != "" {
		return r.Pattern
	}
	return "unmatched"
}

// LogRequests logs one line per request after it completes.
func LogRequests(find RouteFinder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			lg := zctx.From(r.Context())
			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("route", route(r, find)),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Int("bytes", rec.bytes),
				zap.Duration("duration", time.Since(start)),
			}
			switch {
			case status >= 500:
				lg.Error("Request failed", fields...)
			case status >= 400:
				lg.Info("Request rejected", fields...)
			default:
				lg.Debug("Request served", fields...)
			}
		})
	}
}

// Instrument wraps the handler with otelhttp using the given providers.
func Instrument(service string, tp trace.TracerProvider, mp metric.MeterProvider) Middleware {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, service,
			otelhttp.WithTracerProvider(tp),
			otelhttp.WithMeterProvider(mp),
		)
	}
}

// Labeler renames the active span after the matched route and tags it with
// http.route. It must run inside Instrument.
func Labeler(find RouteFinder) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			pattern := route(r, find)
			if pattern == "unmatched" {
				return
			}
			span := trace.SpanFromContext(r.Context())
			span.SetName(pattern)
			span.SetAttributes(attribute.String("http.route", pattern))
			if l, ok := otelhttp.LabelerFromContext(r.Context()); ok {
				l.Add(attribute.String("http.route", pattern))
			}
		})
	}
}
