package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sdom-dev/sdom/pkg/document"
	"github.com/sdom-dev/sdom/pkg/middleware"
)

// Config configures the document server.
type Config struct {
	// Host is the address to bind (default "localhost").
	Host string

	// Port is the port to listen on (default 8888).
	Port int

	// StaticDirs are extra directories searched for /_static/ assets,
	// after the current document's tempdir.
	StaticDirs []string

	// EnableMetrics mounts the Prometheus /metrics endpoint and request
	// metrics middleware (default true via New).
	EnableMetrics bool

	// EnableTracing adds the OpenTelemetry tracing middleware.
	EnableTracing bool

	// Logger receives server diagnostics (default slog.Default).
	Logger *slog.Logger
}

// Server serves documents produced by a Directory.
type Server struct {
	directory *document.Directory
	config    Config
	logger    *slog.Logger
	reload    *ReloadNotifier
	router    chi.Router
	http      *http.Server
}

// New creates a server for the given directory. A nil directory uses the
// process-wide default directory.
func New(dir *document.Directory, config Config) *Server {
	if dir == nil {
		dir = document.Default()
	}
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.Port == 0 {
		config.Port = 8888
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		directory: dir,
		config:    config,
		logger:    logger.With("component", "server"),
		reload:    NewReloadNotifier(logger),
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	if s.config.EnableMetrics {
		r.Use(middleware.Metrics())
	}
	if s.config.EnableTracing {
		r.Use(middleware.Tracing())
	}

	r.Get("/", s.handleRoot)
	r.Get("/_static/*", s.handleStatic)
	r.Get("/_reload", s.reload.HandleWebSocket)
	if s.config.EnableMetrics {
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// Handler returns the server's HTTP handler, for mounting into a larger
// router or for tests.
func (s *Server) Handler() http.Handler { return s.router }

// Reload asks every connected browser to reload the page.
func (s *Server) Reload() { s.reload.NotifyReload() }

// handleRoot serializes the current root document.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	doc := s.directory.Get()
	if doc == nil {
		http.Error(w, "no document", http.StatusServiceUnavailable)
		return
	}

	start := time.Now()
	html := doc.Build()
	observeBuild(time.Since(start))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := fmt.Fprint(w, html); err != nil {
		s.logger.Warn("failed to write document", "error", err)
	}
}

// handleStatic serves an asset from the document tempdir or the configured
// static directories, first match wins.
func (s *Server) handleStatic(w http.ResponseWriter, r *http.Request) {
	rel := strings.TrimPrefix(r.URL.Path, "/_static/")
	rel = filepath.Clean("/" + rel) // collapse any ../ traversal
	rel = strings.TrimPrefix(rel, "/")

	dirs := make([]string, 0, len(s.config.StaticDirs)+1)
	if doc := s.directory.Get(); doc != nil && doc.Tempdir() != "" {
		dirs = append(dirs, doc.Tempdir())
	}
	dirs = append(dirs, s.config.StaticDirs...)

	for _, dir := range dirs {
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
	}
	http.NotFound(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	s.http = &http.Server{
		Addr:         s.Addr(),
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	s.logger.Info("serving documents", "addr", s.Addr())
	err := s.http.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
