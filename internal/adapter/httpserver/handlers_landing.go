package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/landing"
)

func (s *Server) handleLanding(c echo.Context) error {
	presentation := landing.Resolve(s.site)

	if err := s.renderTemplate(c, landing.PageTemplate, landing.Page{Presentation: presentation}); err != nil {
		s.pageMetrics.RecordFailure()
		return err
	}
	s.pageMetrics.RecordRender(presentation.ThemeClass)
	return nil
}

func (s *Server) handlePresentation(c echo.Context) error {
	if err := c.JSON(http.StatusOK, landing.Resolve(s.site)); err != nil {
		return fmt.Errorf("failed to write presentation response: %w", err)
	}
	return nil
}

// handleConfigScript exposes the injected settings as window.ENV_CONFIG for
// front-end bundles that read it directly. Only supplied keys are emitted.
func (s *Server) handleConfigScript(c echo.Context) error {
	site := s.site
	if site == nil {
		site = &domain.SiteConfig{}
	}

	payload, err := json.Marshal(site)
	if err != nil {
		return fmt.Errorf("failed to encode site config: %w", err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	script := "window.ENV_CONFIG = " + string(payload) + ";\n"
	if err := c.Blob(http.StatusOK, "application/javascript; charset=utf-8", []byte(script)); err != nil {
		return fmt.Errorf("failed to write config script: %w", err)
	}
	return nil
}
