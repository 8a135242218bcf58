package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xenking/storefront/internal/domain/auth"
	"github.com/xenking/storefront/internal/domain/discount"
	"github.com/xenking/storefront/internal/domain/order"
	"github.com/xenking/storefront/internal/domain/product"
	"github.com/xenking/storefront/internal/handler"
	"github.com/xenking/storefront/internal/notify"
	"github.com/xenking/storefront/internal/oas"
	"github.com/xenking/storefront/internal/reconcile"
	"github.com/xenking/storefront/internal/repository"
	"github.com/xenking/storefront/pkg/health"
	"github.com/xenking/storefront/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server and the reconciler,
// and handles graceful shutdown. It is the single wiring point for the
// application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return errors.Wrap(err, "create db pool")
	}
	defer pool.Close()

	if err := repository.RunMigrations(ctx, pool); err != nil {
		return errors.Wrap(err, "run migrations")
	}

	// Repositories.
	tx := repository.NewTxManager(pool)
	productRepo := repository.NewProductRepository(pool)
	discountRepo := repository.NewDiscountRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	apikeyRepo := repository.NewAPIKeyRepository(pool)

	// Notifications.
	var sender notify.Sender = notify.LogSender{}
	if cfg.SMTP.Host != "" {
		sender = notify.NewSMTPSender(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		lg.Warn("SMTP host not configured, order confirmations are only logged")
	}
	dispatcher, err := notify.NewDispatcher(sender, notify.Options{
		Workers:       cfg.Notify.Workers,
		QueueSize:     cfg.Notify.Queue,
		Timeout:       cfg.Notify.Timeout,
		MeterProvider: m.MeterProvider(),
	})
	if err != nil {
		return errors.Wrap(err, "create notification dispatcher")
	}
	defer func() {
		if err := dispatcher.Close(cfg.Graceful.ShutdownTimeout); err != nil {
			lg.Warn("Notification dispatcher did not drain", zap.Error(err))
		}
	}()

	// Domain services.
	catalog := product.NewCatalog(productRepo, tx)
	registry := discount.NewRegistry(discountRepo)
	orderService, err := order.NewService(
		order.NewResolver(productRepo),
		productRepo,
		registry,
		orderRepo,
		tx,
		dispatcher,
		order.Options{
			TracerProvider: m.TracerProvider(),
			MeterProvider:  m.MeterProvider(),
		},
	)
	if err != nil {
		return errors.Wrap(err, "create order service")
	}
	authn := auth.NewAuthenticator(apikeyRepo, []byte(cfg.APIKeyPepper))
	reconciler := reconcile.New(productRepo, cfg.Reconcile.Schedule)

	// Health checks.
	healthSvc := health.New()
	healthSvc.Add(health.Check{
		Name:    "postgres",
		Kind:    health.Readiness,
		Timeout: 5 * time.Second,
		Func:    health.PingCheck(pool),
	})
	healthSvc.Add(health.Check{
		Name: "goroutines",
		Kind: health.Liveness,
		Func: health.GoroutineCountCheck(10000),
	})

	// API server.
	h := handler.NewHandler(handler.HandlerConfig{ImageBaseURL: cfg.ImageBaseURL}, orderService, catalog, registry)
	oasServer, err := oas.NewServer(h, handler.NewSecurityHandler(authn),
		oas.WithPathPrefix("/api"),
		oas.WithTracerProvider(m.TracerProvider()),
		oas.WithMeterProvider(m.MeterProvider()),
		oas.WithErrorHandler(handler.ErrorHandler),
		oas.WithNotFound(func(w http.ResponseWriter, _ *http.Request) {
			httpmiddleware.WriteError(w, http.StatusNotFound, "not found")
		}),
	)
	if err != nil {
		return errors.Wrap(err, "create api server")
	}
	routeFinder := httpmiddleware.MakeRouteFinder("/api", oasServer.FindRoute)

	// Mux: health endpoints and API routes on one server.
	mux := http.NewServeMux()
	healthSvc.Register(mux)
	mux.Handle("/api/", oasServer)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(mux,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(cfg.CORS.Origins, handler.HeaderAPIKey),
			httpmiddleware.RateLimit(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
				Match:  isCheckout,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.Instrument("storefront-api", m.TracerProvider(), m.MeterProvider()),
			httpmiddleware.Labeler(routeFinder),
			httpmiddleware.LogRequests(routeFinder),
		),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return healthSvc.Run(gctx, 10*time.Second)
	})
	g.Go(func() error {
		return reconciler.Run(gctx)
	})
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		healthSvc.SetReady(false)
		if ctx.Err() != nil {
			// Regular shutdown: give load balancers time to observe readiness.
			lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
			time.Sleep(cfg.Graceful.ReadinessDelay)
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		if err := server.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "shutdown")
		}
		return nil
	})

	healthSvc.SetReady(true)
	return g.Wait()
}

// isCheckout selects the order commit and preview endpoints for rate limiting.
func isCheckout(r *http.Request) bool {
	return r.Method == http.MethodPost &&
		(r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/calculate")
}
