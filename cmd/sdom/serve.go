package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/sdom-dev/sdom/internal/config"
	"github.com/sdom-dev/sdom/pkg/document"
	"github.com/sdom-dev/sdom/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		port       int
		host       string
		debug      bool
		autoreload bool
		title      string
		staticDirs []string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the current root document",
		Long: `Serve the process-wide root document over HTTP.

A default document is created on first request if none has been set.
Static assets are served under /_static/ from the document's tempdir
and any extra directories given with --static.

Examples:
  sdom serve
  sdom serve --port=8080 --autoreload
  sdom serve --static=./assets`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, host, debug, autoreload, title, staticDirs)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from sdom.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from sdom.json)")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug mode (implies autoreload)")
	cmd.Flags().BoolVar(&autoreload, "autoreload", false, "Enable browser autoreload")
	cmd.Flags().StringVar(&title, "title", "", "Document title")
	cmd.Flags().StringSliceVar(&staticDirs, "static", nil, "Extra static asset directories")

	return cmd
}

func runServe(port int, host string, debug, autoreload bool, title string, staticDirs []string) error {
	opts := config.LoadOrDefaults()
	if port != 0 {
		opts.Port = port
	}
	if host != "" {
		opts.Host = host
	}
	opts.Debug = opts.Debug || debug
	opts.Autoreload = opts.Autoreload || autoreload
	config.SetCurrent(opts)

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	dir := document.NewDirectory(logger)
	doc, err := dir.CreateDocument(document.Options{
		Title: title,
		WSURL: fmt.Sprintf("ws://%s:%d/_reload", opts.Host, opts.Port),
	})
	if err != nil {
		return err
	}
	dir.Set(doc)

	srv := server.New(dir, server.Config{
		Host:          opts.Host,
		Port:          opts.Port,
		StaticDirs:    staticDirs,
		EnableMetrics: true,
		Logger:        logger,
	})

	// Graceful shutdown on SIGINT/SIGTERM.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		doc.Close()
		return err
	case <-stop:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	shutdownErr := srv.Shutdown(ctx)
	if err := doc.Close(); err != nil {
		logger.Warn("failed to release document resources", "error", err)
	}
	return shutdownErr
}
