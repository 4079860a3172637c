package document

import (
	"sync"

	"github.com/sdom-dev/sdom/pkg/dom"
)

// Window is the document's window-equivalent context. It carries the
// custom element definitions registered for this document.
type Window struct {
	document *Document

	// CustomElements holds the custom element definitions consulted by
	// Document.CreateElement.
	CustomElements *CustomElementRegistry
}

func newWindow(d *Document) *Window {
	return &Window{document: d, CustomElements: newCustomElementRegistry()}
}

// Document returns the window's document.
func (w *Window) Document() *Document { return w.document }

// CustomElementDef describes a custom element type: a name, the built-in
// tag it extends (empty for autonomous elements), and a constructor.
type CustomElementDef struct {
	Name    string
	Extends string
	New     func() *dom.Node
}

type customElementKey struct {
	name    string
	extends string
}

// CustomElementRegistry maps custom element names to their definitions.
// Safe for concurrent use.
type CustomElementRegistry struct {
	mu   sync.RWMutex
	defs map[customElementKey]CustomElementDef
}

func newCustomElementRegistry() *CustomElementRegistry {
	return &CustomElementRegistry{defs: make(map[customElementKey]CustomElementDef)}
}

// Define registers a custom element definition, replacing any previous
// definition with the same name and extends pair.
func (r *CustomElementRegistry) Define(def CustomElementDef) {
	r.mu.Lock()
	r.defs[customElementKey{name: def.Name, extends: def.Extends}] = def
	r.mu.Unlock()
}

// Get returns the definition for the given name and extends pair.
func (r *CustomElementRegistry) Get(name, extends string) (CustomElementDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.defs[customElementKey{name: name, extends: extends}]
	return def, ok
}

// Len reports the number of registered definitions.
func (r *CustomElementRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.defs)
}
