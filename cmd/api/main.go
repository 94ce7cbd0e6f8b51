package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/youbeemuhwan/commercial/docs/swagger"
	"github.com/youbeemuhwan/commercial/pkg/app"
	"github.com/youbeemuhwan/commercial/pkg/auth"
	"github.com/youbeemuhwan/commercial/pkg/config"
	"github.com/youbeemuhwan/commercial/pkg/database"
	"github.com/youbeemuhwan/commercial/pkg/httpx"
	"github.com/youbeemuhwan/commercial/pkg/logger"
	"github.com/youbeemuhwan/commercial/pkg/redisconn"
	"github.com/youbeemuhwan/commercial/pkg/storage"
	"github.com/youbeemuhwan/commercial/pkg/telemetry"
	itemApi "github.com/youbeemuhwan/commercial/services/item/application/api"
)

const shutdownTimeout = 30 * time.Second

// @title			Commercial Catalog API
// @version		1.0
// @description	Item catalog with thumbnail and detail images.
// @contact.name	API Support
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	// Crash reporting is optional.
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	a, closeApp, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeApp()

	maxUpload, err := cfg.MaxUploadBytes()
	if err != nil {
		return err
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
			MaxBodyBytes:       maxUpload,
		},
		httpx.Middlewares{
			Recovery: logger.Recovery(log),
			Sentry:   telemetry.SentryMiddleware(),
			Tracing:  otelhttp.NewMiddleware(cfg.ServiceName),
			Logging:  logger.Middleware(log, "/health", "/metrics"),
		},
	)
	r.Get("/health", httpx.HealthHandler(httpx.HealthChecks{
		Database: a.Db,
		Redis:    a.Redis,
		Storage:  a.Storage,
	}))
	r.Get("/metrics", tel.MetricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, a)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)
	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "auth_required", cfg.AuthRequired)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// newApplication connects every shared dependency. The returned func
// releases them in reverse order.
func newApplication(ctx context.Context, cfg *config.Config, log logger.Logger) (*app.Application, func(), error) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	closers = append(closers, pool.Close)
	log.Info("database pool connected")

	redisClient, err := redisconn.New(ctx, cfg.RedisURL)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	closers = append(closers, redisClient.Close)
	log.Info("redis connected")

	files, err := storage.New(cfg.FileDir, log)
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("prepare file storage: %w", err)
	}

	sessionStore := auth.NewSessionStore(redisClient.Redis(), auth.SessionOptions{
		AuthKey:       []byte(cfg.SessionAuthKey),
		EncryptionKey: []byte(cfg.SessionEncryptionKey),
		Secure:        cfg.Environment == config.EnvProduction,
		MaxAge:        cfg.SessionMaxAge,
	})

	return &app.Application{
		Config:       cfg,
		Db:           pool,
		Logger:       log,
		Redis:        redisClient,
		SessionStore: sessionStore,
		Storage:      files,
	}, closeAll, nil
}

// registerRoutes mounts all service routes under /api.
func registerRoutes(r chi.Router, a *app.Application) {
	itemApi.ItemRoutes(r, a)
}
