package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthOK(_ context.Context) error { return nil }

func healthErr(msg string) func(context.Context) error {
	return func(_ context.Context) error { return errors.New(msg) }
}

func TestHandleStartup(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/health/startup")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestHandleStartup_TemplatesMissing(t *testing.T) {
	srv := newTestServer(t)
	srv.templates = nil

	rec := serve(srv, http.MethodGet, "/health/startup")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"failed_check":"templates"`)
	assert.Contains(t, rec.Body.String(), `"error":"landing page template not loaded"`)
}

func TestHandleLiveness(t *testing.T) {
	clock := clockwork.NewFakeClock()
	srv := newTestServer(t, withClock(clock))
	clock.Advance(90 * time.Second)

	rec := serve(srv, http.MethodGet, "/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.InDelta(t, 90.0, resp["uptime"], 0.001)
}

func TestHandleReadiness_AllHealthy(t *testing.T) {
	srv := newTestServer(t, withHealthChecks(HealthCheck{Name: "site_config", Check: healthOK}))

	rec := serve(srv, http.MethodGet, "/health/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ready"}`, rec.Body.String())
}

func TestHandleReadiness_ExtraCheckFails(t *testing.T) {
	srv := newTestServer(t, withHealthChecks(
		HealthCheck{Name: "site_config", Check: healthErr("site config file unreadable")},
	))

	rec := serve(srv, http.MethodGet, "/health/ready")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"unhealthy"`)
	assert.Contains(t, rec.Body.String(), `"failed_check":"site_config"`)
	assert.Contains(t, rec.Body.String(), `"error":"site config file unreadable"`)
}

func TestHandleReadiness_ReportsFirstFailure(t *testing.T) {
	srv := newTestServer(t, withHealthChecks(
		HealthCheck{Name: "first", Check: healthErr("first down")},
		HealthCheck{Name: "second", Check: healthErr("second down")},
	))

	rec := serve(srv, http.MethodGet, "/health/ready")

	assert.Contains(t, rec.Body.String(), `"failed_check":"first"`)
	assert.NotContains(t, rec.Body.String(), "second")
}

func TestHandleVersion(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/version")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "dev", resp["version"])
	assert.NotEmpty(t, resp["go_version"])
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	serve(srv, http.MethodGet, "/")

	rec := serve(srv, http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `landing_page_renders_total{theme="red"} 1`)
	assert.Contains(t, rec.Body.String(), `landing_http_requests_total{method="GET",route="/",status_code="200"} 1`)
	assert.NotContains(t, rec.Body.String(), `route="/metrics"`)
}
