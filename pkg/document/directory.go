package document

import (
	"log/slog"
	"sync"

	"github.com/sdom-dev/sdom/internal/config"
	"github.com/sdom-dev/sdom/pkg/dom"
)

// Directory produces fully-configured documents and owns the process-wide
// "current root document" slot. Every document created through a Directory
// shares its identity registry, which preserves cross-document id shadowing
// while keeping the dependency explicit.
type Directory struct {
	mu       sync.RWMutex
	current  *Document
	registry *dom.Registry
	logger   *slog.Logger
}

// NewDirectory creates a directory with its own shared identity registry.
func NewDirectory(logger *slog.Logger) *Directory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Directory{
		registry: dom.NewRegistry(),
		logger:   logger.With("component", "directory"),
	}
}

// Registry returns the identity registry shared by this directory's
// documents.
func (dir *Directory) Registry() *dom.Registry { return dir.registry }

// CreateDocument builds a document against the directory's shared registry,
// filling unset bootstrap fields from the process-wide defaults. The caller
// owns the returned document; placing it in the current slot does not
// transfer ownership.
func (dir *Directory) CreateDocument(opts Options) (*Document, error) {
	defaults := config.Current()

	if opts.MessageWait == nil {
		opts.MessageWait = Float64(defaults.MessageWait)
	}
	if opts.LogLevel == nil && defaults.LogLevel != "" {
		opts.LogLevel = defaults.LogLevel
	}
	if opts.LogPrefix == "" {
		opts.LogPrefix = defaults.LogPrefix
	}
	if !opts.LogConsole {
		opts.LogConsole = defaults.LogConsole
	}
	if opts.ReloadWait == nil && defaults.ReloadWait > 0 {
		opts.ReloadWait = Float64(defaults.ReloadWait)
	}
	if opts.WSURL == "" {
		opts.WSURL = defaults.WSURL
	}
	if opts.IncludeRuntime == nil {
		opts.IncludeRuntime = Bool(true)
	}
	if opts.Logger == nil {
		opts.Logger = dir.logger
	}

	doc, err := New(dir.registry, opts)
	if err != nil {
		return nil, err
	}
	dir.logger.Debug("document created",
		"title", doc.Title(),
		"tempdir", doc.Tempdir())
	return doc, nil
}

// Get returns the current root document, creating a default one on first
// use.
func (dir *Directory) Get() *Document {
	dir.mu.RLock()
	doc := dir.current
	dir.mu.RUnlock()
	if doc != nil {
		return doc
	}

	dir.mu.Lock()
	defer dir.mu.Unlock()
	if dir.current == nil {
		doc, err := dir.CreateDocument(Options{})
		if err != nil {
			// A document without its tempdir is still serviceable;
			// never fail the read path over scratch storage.
			dir.logger.Error("failed to create default document", "error", err)
			doc, _ = New(dir.registry, Options{IncludeRuntime: Bool(true)})
		}
		dir.current = doc
	}
	return dir.current
}

// Set replaces the current root document. The previous occupant is not
// disposed; disposal stays with whoever owns it.
func (dir *Directory) Set(doc *Document) {
	dir.mu.Lock()
	dir.current = doc
	dir.mu.Unlock()
}

// SetApp inserts root as the first child of the current root document's
// body, in front of the runtime placeholder script.
func (dir *Directory) SetApp(root *dom.Node) {
	dir.Get().Body().Prepend(root)
}

var (
	defaultDirectory     *Directory
	defaultDirectoryOnce sync.Once
)

// Default returns the process-wide directory, created on first use.
func Default() *Directory {
	defaultDirectoryOnce.Do(func() {
		defaultDirectory = NewDirectory(nil)
	})
	return defaultDirectory
}

// Get returns the process-wide current root document.
func Get() *Document { return Default().Get() }

// Set replaces the process-wide current root document.
func Set(doc *Document) { Default().Set(doc) }

// SetApp mounts root as the application element of the process-wide current
// root document.
func SetApp(root *dom.Node) { Default().SetApp(root) }

// CreateDocument builds a document through the process-wide directory.
func CreateDocument(opts Options) (*Document, error) {
	return Default().CreateDocument(opts)
}
