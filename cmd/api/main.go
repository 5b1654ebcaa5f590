// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Kiosk HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire the generation pipeline, storage and HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taibuivan/kiosk/data"
	"github.com/taibuivan/kiosk/internal/api"
	"github.com/taibuivan/kiosk/internal/core/magazine"
	"github.com/taibuivan/kiosk/internal/core/moderation"
	"github.com/taibuivan/kiosk/internal/llm"
	"github.com/taibuivan/kiosk/internal/media"
	"github.com/taibuivan/kiosk/internal/platform/config"
	"github.com/taibuivan/kiosk/internal/platform/constants"
	"github.com/taibuivan/kiosk/internal/platform/middleware"
	"github.com/taibuivan/kiosk/internal/platform/migration"
	pgstore "github.com/taibuivan/kiosk/internal/platform/postgres"
	redisstore "github.com/taibuivan/kiosk/internal/platform/redis"
	"github.com/taibuivan/kiosk/internal/platform/sec"
	"github.com/taibuivan/kiosk/internal/render"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "kiosk"))
	slog.SetDefault(log)

	log.Info("[Kiosk] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "kiosk"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.String("llm_provider", cfg.LLM.Provider),
		slog.Bool("rehost_images", cfg.RehostImages),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the process; stops background limiter cleanup.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, pgstore.Options{MaxConns: cfg.DatabaseMaxConns}, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis ──────────────────────────────────────────────────────────
	rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
	must(log, err, "connect to redis")
	defer func() {
		log.Info("closing redis client")
		if cerr := rdb.Close(); cerr != nil {
			log.Error("redis close error", slog.Any("error", cerr))
		}
	}()

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, migration.Source{
		Path:     cfg.MigrationPath,
		Embedded: data.Migrations,
		Dir:      data.MigrationsDir,
	}, log), "run migrations")

	// ── 6. Token Verification ─────────────────────────────────────────────
	verifier, err := sec.NewTokenVerifierFromFile(cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "load jwt public key")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
		CheckCache: func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		},
	}, log)

	// ── 8. Generation Pipeline ────────────────────────────────────────────
	generator, err := llm.New(llm.Settings{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	must(log, err, "initialize text generator")
	if cfg.IsProduction() && cfg.LLM.Provider == llm.ProviderMock {
		log.Warn("mock_generator_in_production")
	}

	assembler := magazine.NewAssembler(
		magazine.NewRequestor(generator),
		magazine.NewSeeder(cfg.ImageBaseURL),
		moderation.NewGate(),
		log,
	)

	// ── 9. Storage & Media ────────────────────────────────────────────────
	magazineRepository := magazine.NewCachedRepository(magazine.NewRecordRepository(pool), rdb, cfg.CacheTTL, log)

	var (
		rehoster     magazine.ImageRehoster
		mediaHandler *media.Handler
	)
	if cfg.RehostImages {
		blobRepository := media.NewBlobRepository(pool, cfg.MediaPublicURL)
		rehoster = media.NewRehoster(media.NewHTTPFetcher(nil, 0), blobRepository, cfg.MediaPublicURL, cfg.RehostConcurrency, log)
		mediaHandler = media.NewHandler(blobRepository)
	}

	magazineService := magazine.NewService(assembler, rehoster, magazineRepository, log)
	magazineHandler := magazine.NewHandler(magazineService, render.Magazine,
		middleware.GenerationLimit(appCtx, constants.GenerationPerMinute, constants.GenerationBurst),
	)

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Magazine:  magazineHandler,
		Media:     mediaHandler,
	}

	server := api.NewServer(appCtx, cfg, log, verifier, handlers)

	// ── 11. Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
