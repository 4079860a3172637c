package document

import (
	"log/slog"

	"github.com/sdom-dev/sdom/pkg/dom"
)

// Options configure a new Document. The zero value is usable: every field
// falls back to a process-wide or built-in default.
//
// Pointer fields distinguish "unset" from an explicit zero; use the Bool
// and Float64 helpers for literals.
type Options struct {
	// Doctype is the doctype name (default "html").
	Doctype string

	// Title is the document title (default "W-DOM").
	Title string

	// Charset is the document charset (default "utf-8").
	Charset string

	// NewElement overrides the element constructor used by CreateElement
	// for tags without a registered custom element (default dom.NewElement).
	NewElement func(tag string) *dom.Node

	// Autoreload enables the client autoreload script. Unset falls back to
	// the process-wide autoreload/debug default at serialization time.
	Autoreload *bool

	// ReloadWait is how long the client waits before reloading, in
	// seconds. Only used when autoreload is enabled.
	ReloadWait *float64

	// MessageWait is the client message send interval in seconds. Unset
	// falls back to the process default when the factory creates the
	// document.
	MessageWait *float64

	// LogLevel is the client log level. A string is emitted quoted, a
	// number bare; other types are accepted permissively and formatted
	// with their default representation.
	LogLevel any

	// LogPrefix is prepended to client log output.
	LogPrefix string

	// LogConsole mirrors client log output to the browser console.
	LogConsole bool

	// WSURL is the live-update transport URL. Empty omits the declaration.
	WSURL string

	// IncludeRuntime appends the client runtime library script as the last
	// head child (default true when created through a Directory).
	IncludeRuntime *bool

	// Logger receives lifecycle diagnostics (default slog.Default).
	Logger *slog.Logger
}

// Bool returns a pointer to v, for use in Options literals.
func Bool(v bool) *bool { return &v }

// Float64 returns a pointer to v, for use in Options literals.
func Float64(v float64) *float64 { return &v }
