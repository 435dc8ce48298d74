package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/raghavan83/staffregistry/internal/adapter/postgres"
	employeerepo "github.com/raghavan83/staffregistry/internal/adapter/postgres/employee"
	revisionrepo "github.com/raghavan83/staffregistry/internal/adapter/postgres/revision"
	"github.com/raghavan83/staffregistry/internal/auth"
	"github.com/raghavan83/staffregistry/internal/config"
	employeesvc "github.com/raghavan83/staffregistry/internal/service/employee"
	"github.com/raghavan83/staffregistry/internal/transport/middleware"
	"github.com/raghavan83/staffregistry/internal/transport/rest"
	"github.com/raghavan83/staffregistry/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires the service stack, and serves HTTP until the context
// is cancelled. Shutdown drains in-flight requests up to the configured
// timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("addr", cfg.Server.Addr()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := employeesvc.NewService(
		logger,
		employeerepo.New(pool),
		revisionrepo.New(pool),
		postgres.NewTxManager(pool),
		employeesvc.SearchLimits{
			Default: cfg.Registry.SearchDefaultLimit,
			Max:     cfg.Registry.SearchMaxLimit,
		},
	)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	mux := http.NewServeMux()
	rest.NewEmployeeHandler(svc, logger).Register(mux)

	health := rest.NewHealthHandler(pool, BuildVersion())
	mux.HandleFunc("GET /health", health.Health)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /live", health.Live)

	// Actor runs before Logger so access logs carry the resolved identity.
	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(cfg.CORS),
		middleware.Origin,
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Actor(tokens), middleware.Logger(logger))

	handler := middleware.Chain(mws...)(mux)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
