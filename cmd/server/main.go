// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, opens the configured todo store, starts the HTTP
// server, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/todo-tracker/internal/adapters/http"
	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/todo-tracker/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/todo-tracker/internal/adapters/postgres"
	"github.com/jsamuelsen11/todo-tracker/internal/adapters/sqlite"
	"github.com/jsamuelsen11/todo-tracker/internal/app"
	"github.com/jsamuelsen11/todo-tracker/internal/platform/config"
	"github.com/jsamuelsen11/todo-tracker/internal/platform/health"
	"github.com/jsamuelsen11/todo-tracker/internal/platform/logging"
	"github.com/jsamuelsen11/todo-tracker/internal/platform/telemetry"
	"github.com/jsamuelsen11/todo-tracker/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// todoStore is the storage contract main wires: a repository that can also
// report its health. Both the sqlite and postgres adapters satisfy it.
type todoStore interface {
	ports.TodoRepository
	ports.HealthChecker
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// A store that cannot be opened is fatal.
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Driver, err)
	}
	defer closeStore()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, store)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store)

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// openStore opens the todo store named by the storage config. The returned
// func releases the store's connections; it is safe to call exactly once.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (todoStore, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		repo, err := sqlite.Open(cfg.Storage.DSN)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := repo.Close(); err != nil {
				logger.Error("closing sqlite store", slog.Any("error", err))
			}
		}
		return repo, closer, nil

	case config.DriverPostgres:
		pool, err := postgres.OpenPool(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewRepository(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, repo.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Storage.Driver)
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[todoStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTodoService(store, logger, metrics), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.TodoHandler, error) {
		svc := do.MustInvoke[ports.TodoService](i)
		return handlers.NewTodoHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		todoH := do.MustInvoke[*handlers.TodoHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(todoH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
