// Package main is the entry point for the tour-booking API server.
// Its sole responsibility is wiring dependencies together and starting the
// server. No business logic belongs here.
//
// Every external dependency is optional at startup: a missing DATABASE_URL
// degrades storage endpoints to 503, a missing bot token turns notifications
// into no-ops, and a missing admin token closes the admin surface. The
// process itself always comes up.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/adlertours/backend/internal/config"
	"github.com/adlertours/backend/internal/database"
	"github.com/adlertours/backend/internal/domain"
	"github.com/adlertours/backend/internal/handler"
	"github.com/adlertours/backend/internal/notify"
	"github.com/adlertours/backend/internal/repo"
	"github.com/adlertours/backend/internal/service"
	"github.com/adlertours/backend/migrations"
)

func main() {
	cfg := config.Load()

	// --- Logger -----------------------------------------------------------
	// log/slog is the stdlib structured logger. The JSON handler writes
	// machine-readable output suitable for log aggregators.
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	// --- Database ---------------------------------------------------------
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		logger.Warn("DATABASE_URL not set; storage endpoints will answer 503")
	case err != nil:
		logger.Error("failed to create database pool", "error", err)
		os.Exit(1)
	default:
		defer pool.Close()
		if err := pool.Ping(ctx); err != nil {
			// Keep running: the pool reconnects lazily and requests surface
			// the failure with diagnostic detail.
			logger.Warn("database not reachable at startup", "error", err)
		} else {
			logger.Info("database connection established")
		}
		if err := runMigrations(ctx, cfg.DatabaseURL); err != nil {
			logger.Error("migrations failed", "error", err)
		}
	}

	// --- Wiring -----------------------------------------------------------
	var (
		tourRepo    repo.TourRepo
		bookingRepo repo.BookingRepo
		pinger      handler.Pinger
	)
	if pool != nil {
		tourRepo = repo.NewTourRepo(pool)
		bookingRepo = repo.NewBookingRepo(pool)
		pinger = pool
	}

	notifier := notify.NewTelegram(cfg.BotToken, cfg.ManagerChatID, logger)
	if cfg.WebhookURL != "" {
		if err := notifier.RegisterWebhook(ctx, cfg.WebhookURL); err != nil {
			logger.Warn("telegram webhook registration failed; inbound commands disabled", "error", err)
		}
	}

	tourSvc := service.NewTourService(tourRepo)
	bookingSvc := service.NewBookingService(bookingRepo, notifier, logger)
	server := handler.NewServer(tourSvc, bookingSvc, notifier, pinger, logger)

	router := handler.NewRouter(server, handler.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		AdminToken:  cfg.AdminToken,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

// runMigrations applies all pending embedded migrations.
// goose needs database/sql, so a short-lived pgx stdlib connection is used
// instead of the pgxpool the application runs on.
func runMigrations(ctx context.Context, databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	if _, err := provider.Up(ctx); err != nil {
		return err
	}
	return nil
}
