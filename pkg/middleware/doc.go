// Package middleware provides HTTP middleware for sdom servers:
// Prometheus request metrics and OpenTelemetry tracing.
//
// Both are standard net/http middleware and compose with any chi router:
//
//	r := chi.NewRouter()
//	r.Use(middleware.Metrics())
//	r.Use(middleware.Tracing())
package middleware
