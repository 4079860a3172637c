package document

import "github.com/sdom-dev/sdom/internal/errors"

// A theme supplies static resources for a document through up to four
// optional capabilities. A theme must implement at least one.

// StylesheetProvider supplies stylesheet references, appended to the head
// as <link rel="stylesheet"> elements in order.
type StylesheetProvider interface {
	Stylesheets() []string
}

// ScriptProvider supplies script references, appended to the body as
// <script src> elements in order.
type ScriptProvider interface {
	Scripts() []string
}

// HeaderProvider supplies raw HTML fragments appended to the head in order.
type HeaderProvider interface {
	Headers() []string
}

// CustomElementProvider supplies custom element definitions registered with
// the document's window context.
type CustomElementProvider interface {
	CustomElements() []CustomElementDef
}

// ErrInvalidTheme is returned by RegisterTheme for a collaborator exposing
// none of the four recognized capabilities.
var ErrInvalidTheme = errors.New(errors.CodeInvalidTheme)

// RegisterTheme applies a theme to the document. Each capability the theme
// implements is consumed in order; a theme implementing none of them is an
// invalid collaborator.
func (d *Document) RegisterTheme(theme any) error {
	stylesheets, hasStylesheets := theme.(StylesheetProvider)
	scripts, hasScripts := theme.(ScriptProvider)
	headers, hasHeaders := theme.(HeaderProvider)
	elements, hasElements := theme.(CustomElementProvider)

	if !hasStylesheets && !hasScripts && !hasHeaders && !hasElements {
		return ErrInvalidTheme
	}

	if hasStylesheets {
		for _, href := range stylesheets.Stylesheets() {
			d.AddStylesheet(href)
		}
	}
	if hasScripts {
		for _, src := range scripts.Scripts() {
			d.AddScript(src)
		}
	}
	if hasHeaders {
		for _, header := range headers.Headers() {
			d.AddHeader(header)
		}
	}
	if hasElements {
		for _, def := range elements.CustomElements() {
			d.window.CustomElements.Define(def)
		}
	}
	return nil
}
