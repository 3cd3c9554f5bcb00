package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gedapi/internal/assistant/openai"
	"gedapi/internal/config"
	handlers "gedapi/internal/http/handler"
	"gedapi/internal/http/middleware"
	"gedapi/internal/otel"
	"gedapi/internal/repository/memory"
	"gedapi/internal/seed"
	"gedapi/internal/service"
	"gedapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logger := newLogger(cfg.LogLevel)

	// Initialize tracing; shutdown flushes pending spans
	shutdownTracing, err := otel.Init(context.Background(), time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Seed the in-memory stores; all mutations are lost on restart
	docRepo := memory.NewDocumentMemory(seed.Documents())
	userRepo := memory.NewUserMemory(seed.Users())
	historyRepo := memory.NewHistoryMemory(seed.History())
	categoryRepo := memory.NewCategoryMemory(seed.Categories())

	// Object storage is optional: without an endpoint the service runs
	// metadata-only and documents keep whatever URL they carry.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
		logger.Info("object storage configured", "endpoint", cfg.MinIO.Endpoint, "bucket", cfg.MinIO.Bucket)
	} else {
		logger.Info("object storage not configured, running metadata-only")
	}

	// The assistant degrades to canned fallbacks when the endpoint is
	// unreachable or the key is missing, so it is always constructed.
	asst := openai.New(cfg.Assistant, logger)

	svcs := handlers.Services{
		Documents:  service.NewDocumentService(docRepo, userRepo, historyRepo, categoryRepo, objStore, asst),
		Users:      service.NewUserService(userRepo),
		History:    service.NewHistoryService(historyRepo),
		Categories: service.NewCategoryService(categoryRepo),
		Stats:      service.NewStatsService(docRepo, historyRepo),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	// Prometheus request counting plus the /metrics scrape endpoint
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMW, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, svcs)

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
