// Package server serves the current root document over HTTP.
//
// The server is a thin collaborator around the document engine: it renders
// the current root document on GET /, serves static assets from the
// document's ephemeral directory and any configured asset directories under
// /_static/, notifies connected browsers over a WebSocket when a reload is
// requested, and exposes Prometheus metrics on /metrics.
//
// The live-update diff/patch protocol is intentionally not part of this
// package; the WebSocket endpoint here only carries reload notifications.
package server
