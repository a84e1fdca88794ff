package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"docstyle/docs"
	"docstyle/internal/analyzer"
	"docstyle/internal/config"
	"docstyle/internal/database"
	"docstyle/internal/database/migration"
	handlers "docstyle/internal/http/handler"
	"docstyle/internal/http/middleware"
	"docstyle/internal/llm"
	"docstyle/internal/logging"
	"docstyle/internal/metrics"
	"docstyle/internal/otel"
	"docstyle/internal/parser"
	"docstyle/internal/service"
	"docstyle/internal/status"
	"docstyle/internal/storage"
	"docstyle/internal/stylegen"
)

const shutdownTimeout = 10 * time.Second

// @title Document Styling API
// @version 1.0
// @description Upload documents, classify their content and generate matching visual styles.
// @BasePath /
func main() {
	cfg := config.Load()
	logger := logging.New(os.Stdout, cfg.Location())
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server_exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register http metrics: %w", err)
	}
	pipeMetrics, err := metrics.NewPipeline(reg)
	if err != nil {
		return fmt.Errorf("register pipeline metrics: %w", err)
	}

	objStore, err := newStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	store, checks, closeStore, err := newStatusStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init status store: %w", err)
	}
	defer closeStore()

	var chat llm.ChatModel
	aiConfigured := cfg.AI.APIKey != ""
	if aiConfigured {
		chat, err = llm.NewChatModel(ctx, cfg.AI)
		if err != nil {
			return fmt.Errorf("init chat model: %w", err)
		}
	} else {
		logger.Warn("ai_not_configured", slog.String("hint", "set OPENAI_API_KEY to enable /analyze and /visual-specs"))
	}

	svc := service.NewPipelineService(service.Deps{
		Storage:        objStore,
		Parser:         parser.New(),
		Analyzer:       analyzer.New(chat, analyzer.WithLogger(logger), analyzer.WithMetrics(pipeMetrics)),
		Designer:       stylegen.New(chat, stylegen.WithLogger(logger), stylegen.WithMetrics(pipeMetrics)),
		Tracker:        status.NewTracker(store),
		Quota:          llm.NewQuota(cfg.AI.RatePerMin, cfg.AI.Burst),
		Metrics:        pipeMetrics,
		Logger:         logger,
		AIConfigured:   aiConfigured,
		MaxUploadBytes: cfg.Upload.MaxBytes,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		// Oversized uploads must reach the service so they get the validation error.
		BodyLimit: int(2 * cfg.Upload.MaxBytes),
	})

	app.Use(middleware.RequestID())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == middleware.MetricsPath
	})))
	app.Use(middleware.Logger(cfg.Location()))
	app.Use(promMW.Handler())

	app.Get(middleware.MetricsPath, middleware.MetricsHandler(reg))
	handlers.RegisterRoutes(app, svc, checks...)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server_started",
			slog.String("addr", ":"+cfg.Port),
			slog.String("storage_backend", cfg.Upload.Backend),
			slog.String("status_backend", cfg.Status.Backend),
			slog.Bool("ai_configured", aiConfigured),
		)
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("server_shutting_down")
	return app.ShutdownWithTimeout(shutdownTimeout)
}

func newStorage(ctx context.Context, cfg *config.AppConfig) (storage.Storage, error) {
	switch cfg.Upload.Backend {
	case "local":
		return storage.NewLocal(cfg.Upload.Dir)
	case "minio":
		return storage.NewMinIO(ctx, cfg.MinIO)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Upload.Backend)
	}
}

func newStatusStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (status.Store, []handlers.Pinger, func(), error) {
	noop := func() {}

	switch cfg.Status.Backend {
	case "memory":
		return status.NewMemoryStore(cfg.Status.TTL), nil, noop, nil
	case "redis":
		client, err := status.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, noop, err
		}
		ping := handlers.PingFunc(func(ctx context.Context) error { return client.Ping(ctx).Err() })
		return status.NewRedisStore(client, cfg.Status.TTL), []handlers.Pinger{ping}, func() { _ = client.Close() }, nil
	case "postgres":
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			return nil, nil, noop, err
		}
		if err := migration.EnsureMigrated(ctx, db, logger, cfg.Database.Host); err != nil {
			return nil, nil, noop, errors.Join(err, db.Close())
		}
		return status.NewPostgresStore(db), []handlers.Pinger{db}, closeDB(db), nil
	default:
		return nil, nil, noop, fmt.Errorf("unknown status backend %q", cfg.Status.Backend)
	}
}

func closeDB(db *sql.DB) func() {
	return func() { _ = db.Close() }
}
