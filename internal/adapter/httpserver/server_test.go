package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/landing/internal/domain"
	"github.com/pscheid92/landing/internal/platform/config"
	"github.com/stretchr/testify/require"
)

type testServerOptions struct {
	site         *domain.SiteConfig
	cfg          *config.Config
	clock        *clockwork.FakeClock
	healthChecks []HealthCheck
}

func withSite(site *domain.SiteConfig) func(*testServerOptions) {
	return func(o *testServerOptions) { o.site = site }
}

func withRateLimit(perSecond float64, burst int) func(*testServerOptions) {
	return func(o *testServerOptions) {
		o.cfg.RateLimitPerSecond = perSecond
		o.cfg.RateLimitBurst = burst
	}
}

func withClock(clock *clockwork.FakeClock) func(*testServerOptions) {
	return func(o *testServerOptions) { o.clock = clock }
}

func withHealthChecks(checks ...HealthCheck) func(*testServerOptions) {
	return func(o *testServerOptions) { o.healthChecks = checks }
}

func newTestServer(t *testing.T, opts ...func(*testServerOptions)) *Server {
	t.Helper()

	o := &testServerOptions{
		cfg:   &config.Config{Port: "8080", RateLimitPerSecond: 1000, RateLimitBurst: 1000},
		clock: clockwork.NewFakeClock(),
	}
	for _, opt := range opts {
		opt(o)
	}

	srv, err := NewServer(o.cfg, o.site, prometheus.NewRegistry(), o.clock, o.healthChecks)
	require.NoError(t, err)
	return srv
}

// serve runs a request through the full middleware and routing stack.
func serve(srv *Server, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.echo.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestNewServer_RegistersTemplateCheckFirst(t *testing.T) {
	srv := newTestServer(t, withHealthChecks(HealthCheck{Name: "extra", Check: healthOK}))

	require.Len(t, srv.healthChecks, 2)
	require.Equal(t, "templates", srv.healthChecks[0].Name)
	require.Equal(t, "extra", srv.healthChecks[1].Name)
}

func TestUnknownRouteIsNotFound(t *testing.T) {
	srv := newTestServer(t)

	rec := serve(srv, http.MethodGet, "/dashboard")

	require.Equal(t, http.StatusNotFound, rec.Code)
}
