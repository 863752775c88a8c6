// Copyright (c) 2026 Newsdesk. All rights reserved.
// Author: eng@newsdeskhq.com

// Command api is the entry point for the Planning API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis.
//  5. Run database migrations (idempotent).
//  6. Wire domain services and HTTP handlers.
//  7. Schedule the expiry sweep.
//  8. Start HTTP server with graceful shutdown.
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

	"github.com/newsdeskhq/planning-api/internal/api"
	"github.com/newsdeskhq/planning-api/internal/core/contact"
	"github.com/newsdeskhq/planning-api/internal/core/location"
	"github.com/newsdeskhq/planning-api/internal/core/profile"
	"github.com/newsdeskhq/planning-api/internal/planning/assignment"
	"github.com/newsdeskhq/planning-api/internal/planning/event"
	"github.com/newsdeskhq/planning-api/internal/planning/expiry"
	"github.com/newsdeskhq/planning-api/internal/planning/item"
	"github.com/newsdeskhq/planning-api/internal/platform/config"
	"github.com/newsdeskhq/planning-api/internal/platform/constants"
	"github.com/newsdeskhq/planning-api/internal/platform/migration"
	pgstore "github.com/newsdeskhq/planning-api/internal/platform/postgres"
	redisstore "github.com/newsdeskhq/planning-api/internal/platform/redis"
	"github.com/newsdeskhq/planning-api/internal/platform/sec"
	"github.com/newsdeskhq/planning-api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Application context lives until shutdown; it stops the rate limiter
	// cleanup loop and other background workers.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
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
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTPrivKeyPath, cfg.JWTPubKeyPath, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckCache: func() error {
			return redisstore.Ping(context.Background(), rdb)
		},
	}, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	userRepository := auth.NewPostgresUserRepository(pool)
	sessionRepository := auth.NewCachedSessionRepository(auth.NewPostgresSessionRepository(pool), rdb)
	authService := auth.NewService(userRepository, sessionRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	profileRepository := profile.NewPostgresRepository(pool)
	profileService := profile.NewService(profileRepository, log)
	profileHandler := profile.NewHandler(profileService)

	contactRepository := contact.NewPostgresRepository(pool)
	contactService := contact.NewService(contactRepository, log)
	contactHandler := contact.NewHandler(contactService)

	locationRepository := location.NewPostgresRepository(pool)
	locationService := location.NewService(locationRepository, log)
	locationHandler := location.NewHandler(locationService)

	eventRepository := event.NewPostgresRepository(pool)
	editSessions := event.NewRedisSessionRepository(rdb)
	eventService := event.NewService(eventRepository, editSessions, profileService, log)
	eventHandler := event.NewHandler(eventService)

	itemRepository := item.NewPostgresRepository(pool)
	itemService := item.NewService(itemRepository, profileService, log)
	itemHandler := item.NewHandler(itemService)

	assignmentRepository := assignment.NewPostgresRepository(pool)
	assignmentService := assignment.NewService(assignmentRepository, itemRepository, log)
	assignmentHandler := assignment.NewHandler(assignmentService)

	// ── 9. Expiry Sweep ───────────────────────────────────────────────────
	sweeper := expiry.NewSweeper(map[string]expiry.Expirer{
		"events": eventRepository,
		"items":  itemRepository,
	}, cfg.ExpiryDays, log)
	must(log, sweeper.Start(cfg.ExpirySweepSpec), "schedule expiry sweep")
	defer sweeper.Stop()

	// ── 10. HTTP Server ───────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:   liveness,
		Readiness:  readiness,
		Auth:       authHandler,
		Event:      eventHandler,
		Item:       itemHandler,
		Assignment: assignmentHandler,
		Profile:    profileHandler,
		Contact:    contactHandler,
		Location:   locationHandler,
	}

	server := api.NewServer(appCtx, cfg, log, jwtSvc, handlers)

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
