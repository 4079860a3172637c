package document

import (
	"log/slog"

	"github.com/sdom-dev/sdom/internal/config"
	"github.com/sdom-dev/sdom/pkg/dom"
	"github.com/sdom-dev/sdom/pkg/render"
)

// Document is a server-resident HTML document: a doctype and a single
// <html> tree, a window context, a bootstrap configuration, and an
// ephemeral working directory.
//
// A Document's tree is not internally synchronized; drive each document
// from one goroutine. Distinct documents may be used concurrently.
type Document struct {
	doctype *dom.Node
	root    *dom.Node // <html>
	head    *dom.Node
	body    *dom.Node

	charsetMeta      *dom.Node
	titleElement     *dom.Node
	autoreloadScript *dom.Node // head placeholder, rewritten on every Build
	bodyScript       *dom.Node // body placeholder for the client runtime

	window     *Window
	registry   *dom.Registry
	newElement func(tag string) *dom.Node

	bootstrap bootstrapConfig
	injected  []*dom.Node // scripts owned by the bootstrap injector

	// The injectable scripts are allocated once so their identity
	// attributes stay stable across rebuilds.
	logScriptEl     *dom.Node
	wsScriptEl      *dom.Node
	runtimeScriptEl *dom.Node

	resource resource
	logger   *slog.Logger
}

// New creates a document with the canonical skeleton:
//
//	<!DOCTYPE ...>
//	<html>
//	  <head><meta charset> <title> <script(autoreload)></head>
//	  <body><script(runtime placeholder)></body>
//	</html>
//
// The head and body children are laid out in exactly this order; consumers
// match the serialized output structurally. reg is the identity registry
// the document's elements register into; nil allocates a private one.
//
// New allocates the document's ephemeral directory. The caller owns the
// document and should Close it; if the document is dropped without Close,
// the directory is still reclaimed eventually, best effort.
func New(reg *dom.Registry, opts Options) (*Document, error) {
	if reg == nil {
		reg = dom.NewRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	doctype := opts.Doctype
	if doctype == "" {
		doctype = config.DefaultDoctype
	}
	title := opts.Title
	if title == "" {
		title = config.DefaultTitle
	}
	charset := opts.Charset
	if charset == "" {
		charset = config.DefaultCharset
	}

	d := &Document{
		registry:   reg,
		newElement: opts.NewElement,
		logger:     logger.With("component", "document"),
		bootstrap: bootstrapConfig{
			autoreload:     opts.Autoreload,
			reloadWait:     opts.ReloadWait,
			messageWait:    opts.MessageWait,
			logLevel:       opts.LogLevel,
			logPrefix:      opts.LogPrefix,
			logConsole:     opts.LogConsole,
			wsURL:          opts.WSURL,
			includeRuntime: opts.IncludeRuntime != nil && *opts.IncludeRuntime,
		},
	}
	if d.newElement == nil {
		d.newElement = dom.NewElement
	}
	d.window = newWindow(d)

	if err := d.resource.open(d); err != nil {
		return nil, err
	}

	d.doctype = dom.NewDoctype(doctype)
	d.doctype.Adopt(d, reg)

	d.root = dom.NewElement("html")
	d.root.Adopt(d, reg)
	d.head = d.root.AppendChild(dom.NewElement("head"))
	d.charsetMeta = d.head.AppendChild(dom.NewElement("meta"))
	d.charsetMeta.SetAttr("charset", charset)
	d.titleElement = d.head.AppendChild(dom.NewElement("title"))
	d.titleElement.SetTextContent(title)
	d.autoreloadScript = d.head.AppendChild(dom.NewElement("script"))
	d.body = d.root.AppendChild(dom.NewElement("body"))
	d.bodyScript = d.body.AppendChild(dom.NewElement("script"))

	d.logScriptEl = dom.NewElement("script")
	d.wsScriptEl = dom.NewElement("script")
	d.runtimeScriptEl = dom.NewElement("script")
	d.runtimeScriptEl.SetAttr("src", RuntimeScriptPath)

	return d, nil
}

// Root returns the <html> element.
func (d *Document) Root() *dom.Node { return d.root }

// Head returns the <head> element.
func (d *Document) Head() *dom.Node { return d.head }

// Body returns the <body> element.
func (d *Document) Body() *dom.Node { return d.body }

// DefaultView returns the document's window context.
func (d *Document) DefaultView() *Window { return d.window }

// Registry returns the identity registry shared by this document.
func (d *Document) Registry() *dom.Registry { return d.registry }

// Tempdir returns the document's ephemeral working directory. Collaborators
// may use it for scratch storage for the life of the document.
func (d *Document) Tempdir() string { return d.resource.dir }

// Title returns the document title.
func (d *Document) Title() string { return d.titleElement.TextContent() }

// SetTitle sets the document title.
func (d *Document) SetTitle(title string) { d.titleElement.SetTextContent(title) }

// Charset returns the document charset.
func (d *Document) Charset() string {
	charset, _ := d.charsetMeta.Attr("charset")
	return charset
}

// SetCharset sets the document charset.
func (d *Document) SetCharset(charset string) { d.charsetMeta.SetAttr("charset", charset) }

// CreateElement creates a detached element. A custom element registered for
// the tag takes precedence over the document's default constructor.
func (d *Document) CreateElement(tag string) *dom.Node {
	if def, ok := d.window.CustomElements.Get(tag, ""); ok {
		return def.New()
	}
	return d.newElement(tag)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *dom.Node { return dom.NewText(text) }

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) *dom.Node { return dom.NewComment(text) }

// GetElementByID returns this document's element with the given public id.
// An id registered by another document's element reads as not found.
func (d *Document) GetElementByID(id string) (*dom.Node, bool) {
	return d.registry.ResolveOwned(dom.NamespaceID, id, d)
}

// GetElementByNodeID returns this document's element with the given
// internal correlation id.
func (d *Document) GetElementByNodeID(id string) (*dom.Node, bool) {
	return d.registry.ResolveOwned(dom.NamespaceNode, id, d)
}

// AddScript appends a script reference to the body.
func (d *Document) AddScript(src string) {
	s := dom.NewElement("script")
	s.SetAttr("src", src)
	d.body.AppendChild(s)
}

// AddScriptHead appends a script reference to the head.
func (d *Document) AddScriptHead(src string) {
	s := dom.NewElement("script")
	s.SetAttr("src", src)
	d.head.AppendChild(s)
}

// AddStylesheet appends a stylesheet link to the head.
func (d *Document) AddStylesheet(href string) {
	l := dom.NewElement("link")
	l.SetAttr("rel", "stylesheet")
	l.SetAttr("href", href)
	d.head.AppendChild(l)
}

// AddHeader appends a raw HTML fragment to the head.
func (d *Document) AddHeader(header string) {
	d.head.AppendChild(dom.NewRaw(header))
}

// Build serializes the document. It recomposes the bootstrap scripts from
// the current configuration, then concatenates the document's children in
// order with no separators. Build performs no network or disk I/O.
func (d *Document) Build() string {
	d.refreshBootstrap()
	return render.Fragment([]*dom.Node{d.doctype, d.root})
}

// Close releases the document's ephemeral directory. It is safe to call
// more than once; release happens exactly once, and a directory that
// already vanished counts as released.
func (d *Document) Close() error {
	return d.resource.close(d.logger)
}
