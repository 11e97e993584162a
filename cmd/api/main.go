package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/repository"
	"github.com/passgen/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	src, err := crypto.SourceByName(cfg.RandomSource)
	if err != nil {
		slog.Error("invalid random source", "error", err)
		os.Exit(1)
	}
	slog.Info("random source selected", "source", cfg.RandomSource)

	routes := handler.Routes{
		RateLimit:     middleware.NewIPRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Handler,
		PageRateLimit: middleware.NewIPRateLimiter(ctx, cfg.PageRateLimitRPS, cfg.PageRateLimitBurst).Handler,
		JWTSecret:     cfg.JWTSecret,
		TokenMaxAge:   cfg.JWTExpiry,
	}

	// Presets need MySQL; generation works without it.
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, preset routes disabled", "error", err)
		routes.Generator = service.NewGeneratorService(src, nil)
	} else {
		defer db.Close()
		if err := repository.Migrate(ctx, db); err != nil {
			slog.Error("migrating presets schema", "error", err)
			os.Exit(1)
		}
		routes.Presets = service.NewPresetService(repository.NewPresetRepository(db))
		routes.Generator = service.NewGeneratorService(src, routes.Presets)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
