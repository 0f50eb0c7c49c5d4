package httpserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/landing/internal/adapter/metrics"
	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/landing"
	"github.com/pscheid92/landing/internal/platform/config"
	apperrors "github.com/pscheid92/landing/internal/platform/errors"
)

type Server struct {
	echo   *echo.Echo
	config *config.Config

	// Read once at startup and never modified, so handlers share it without locking.
	site *domain.SiteConfig

	templates   *template.Template
	registry    *prometheus.Registry
	httpMetrics *metrics.HTTPMetrics
	pageMetrics *metrics.LandingMetrics

	healthChecks []HealthCheck
	clock        clockwork.Clock
	startTime    time.Time
}

func NewServer(cfg *config.Config, site *domain.SiteConfig, registry *prometheus.Registry, clock clockwork.Clock, healthChecks []HealthCheck) (*Server, error) {
	templates, err := landing.ParseTemplates()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	srv := &Server{
		echo:        e,
		config:      cfg,
		site:        site,
		templates:   templates,
		registry:    registry,
		httpMetrics: metrics.NewHTTPMetrics(registry),
		pageMetrics: metrics.NewLandingMetrics(registry),
		clock:       clock,
		startTime:   clock.Now(),
	}
	srv.healthChecks = append([]HealthCheck{{Name: "templates", Check: srv.checkTemplates}}, healthChecks...)

	srv.registerRoutes()

	return srv, nil
}

func (s *Server) Start() error {
	slog.Info("Starting server", "port", s.config.Port)
	if err := s.echo.Start(":" + s.config.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}

func (s *Server) renderTemplate(c echo.Context, name string, data any) error {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return apperrors.InternalError("failed to render page", err).WithField("template", name)
	}
	if err := c.HTMLBlob(http.StatusOK, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to send HTML response: %w", err)
	}
	return nil
}

func (s *Server) checkTemplates(_ context.Context) error {
	if s.templates == nil || s.templates.Lookup(landing.PageTemplate) == nil {
		return errors.New("landing page template not loaded")
	}
	return nil
}
