// Package httpserver serves the course landing page, its JSON and script
// views of the injected configuration, and the operational endpoints
// (health probes, version, metrics) on echo.
package httpserver
