package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/landing/internal/adapter/httpserver"
	"github.com/pscheid92/landing/internal/adapter/metrics"
	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/landing"
	"github.com/pscheid92/landing/internal/platform/config"
	"github.com/pscheid92/landing/internal/platform/logging"
	"github.com/pscheid92/landing/internal/platform/version"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func runGracefulShutdown(srv *httpserver.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func logSite(site *domain.SiteConfig) {
	presentation := landing.Resolve(site)
	slog.Info("Site configuration loaded",
		"environment", presentation.NormalizedEnvironment,
		"author", presentation.DisplayAuthor,
		"theme", presentation.ThemeClass.Label())

	if presentation.ThemeClass == domain.ThemeNone {
		slog.Warn("Unrecognized environment, page will render without a theme",
			"environment", presentation.NormalizedEnvironment)
	}
}

func main() {
	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "version", version.Get().Version, "port", cfg.Port)

	site := cfg.Site()
	logSite(site)

	srv, err := httpserver.NewServer(cfg, site, metrics.NewRegistry(), clockwork.NewRealClock(), nil)
	if err != nil {
		slog.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	done := runGracefulShutdown(srv)

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
