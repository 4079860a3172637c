package dom

import (
	"strings"

	"github.com/google/uuid"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement Kind = iota // <div>, <script>, etc.
	KindText                // Plain text node
	KindRaw                 // Raw HTML (not escaped on output)
	KindComment             // <!-- ... -->
	KindDoctype             // <!DOCTYPE ...>
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindComment:
		return "Comment"
	case KindDoctype:
		return "Doctype"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. Attributes keep their insertion order so that
// repeated serialization of an unchanged tree is byte-identical.
type Attr struct {
	Key   string
	Value string
}

// Node is a mutable document tree node.
//
// A Node is not safe for concurrent mutation; a document's tree must be
// driven from a single goroutine. Distinct documents may be mutated
// concurrently because the only state they share is the Registry.
type Node struct {
	// Kind discriminates the node type. Immutable after creation.
	Kind Kind

	// Tag is the element tag name (or the doctype name for KindDoctype).
	Tag string

	// Text is the content of text, raw and comment nodes.
	Text string

	// NodeID is the internal correlation id, assigned at creation for
	// elements and never changed.
	NodeID string

	attrs    []Attr
	children []*Node
	parent   *Node

	// owner is the document this node belongs to, nil while detached.
	// Held as an opaque reference so the tree does not depend on the
	// document package.
	owner any
	reg   *Registry
}

// NewElement creates a detached element node with the given tag.
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: tag, NodeID: uuid.NewString()}
}

// NewText creates a text node. Its content is escaped on serialization.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewRaw creates a raw HTML node. Its content is emitted verbatim.
// Use with caution - can lead to XSS if content is user-provided.
func NewRaw(html string) *Node {
	return &Node{Kind: KindRaw, Text: html}
}

// NewComment creates a comment node.
func NewComment(text string) *Node {
	return &Node{Kind: KindComment, Text: text}
}

// NewDoctype creates a doctype node, e.g. NewDoctype("html").
func NewDoctype(name string) *Node {
	return &Node{Kind: KindDoctype, Tag: name}
}

// Parent returns the parent node, or nil for a detached or root node.
func (n *Node) Parent() *Node { return n.parent }

// Owner returns the owning document, or nil while the node is detached.
// The concrete type lives in the document package; the registry compares
// owners by identity only.
func (n *Node) Owner() any { return n.owner }

// Registry returns the identity registry this node registers into, or nil.
func (n *Node) Registry() *Registry { return n.reg }

// Children returns the child nodes in order. The returned slice is the
// node's own backing store and must not be mutated by the caller.
func (n *Node) Children() []*Node { return n.children }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[len(n.children)-1]
}

// AppendChild adds child as the last child of n, detaching it from any
// previous parent. The child adopts n's owning document and registry.
func (n *Node) AppendChild(child *Node) *Node {
	child.detach()
	child.parent = n
	n.children = append(n.children, child)
	child.Adopt(n.owner, n.reg)
	return child
}

// Prepend inserts child as the first child of n.
func (n *Node) Prepend(child *Node) *Node {
	child.detach()
	child.parent = n
	n.children = append([]*Node{child}, n.children...)
	child.Adopt(n.owner, n.reg)
	return child
}

// InsertBefore inserts child immediately before ref. If ref is nil or not a
// child of n, child is appended.
func (n *Node) InsertBefore(child, ref *Node) *Node {
	if ref == nil {
		return n.AppendChild(child)
	}
	idx := n.indexOf(ref)
	if idx < 0 {
		return n.AppendChild(child)
	}
	child.detach()
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[idx+1:], n.children[idx:])
	n.children[idx] = child
	child.Adopt(n.owner, n.reg)
	return child
}

// RemoveChild removes child from n. The removed subtree is released from its
// owning document; stale registry bindings lapse on their own because they
// are weak. Returns the removed child, or nil if it was not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	idx := n.indexOf(child)
	if idx < 0 {
		return nil
	}
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	child.release()
	return child
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// detach removes n from its current parent without touching ownership.
// Used when a node is being moved inside the same operation.
func (n *Node) detach() {
	if n.parent == nil {
		return
	}
	p := n.parent
	if idx := p.indexOf(n); idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	n.parent = nil
}

// Adopt binds n and its whole subtree to the given owning document and
// identity registry, registering element identities as it goes. Registration
// is last-writer-wins: re-adopting an id already bound elsewhere shadows the
// previous binding.
func (n *Node) Adopt(owner any, reg *Registry) {
	n.owner = owner
	n.reg = reg
	if reg != nil && n.Kind == KindElement {
		if n.NodeID != "" {
			reg.Register(NamespaceNode, n.NodeID, n)
		}
		if id, ok := n.Attr("id"); ok {
			reg.Register(NamespaceID, id, n)
		}
	}
	for _, c := range n.children {
		c.Adopt(owner, reg)
	}
}

// release clears ownership for n and its subtree. Registry entries are left
// in place; they lapse once the nodes become unreachable, and owner-filtered
// lookups stop matching immediately.
func (n *Node) release() {
	n.owner = nil
	n.reg = nil
	for _, c := range n.children {
		c.release()
	}
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Attrs returns the attributes in insertion order. The returned slice is the
// node's own backing store and must not be mutated by the caller.
func (n *Node) Attrs() []Attr { return n.attrs }

// SetAttr sets the named attribute, keeping the position of an existing key.
// Setting "id" registers the node under the public identity namespace.
func (n *Node) SetAttr(key, value string) {
	found := false
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs[i].Value = value
			found = true
			break
		}
	}
	if !found {
		n.attrs = append(n.attrs, Attr{Key: key, Value: value})
	}
	if key == "id" && n.reg != nil && n.Kind == KindElement {
		n.reg.Register(NamespaceID, value, n)
	}
}

// RemoveAttr removes the named attribute if present.
func (n *Node) RemoveAttr(key string) {
	for i := range n.attrs {
		if n.attrs[i].Key == key {
			n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
			return
		}
	}
}

// ID returns the public id attribute, or "".
func (n *Node) ID() string {
	id, _ := n.Attr("id")
	return id
}

// SetID sets the public id attribute.
func (n *Node) SetID(id string) { n.SetAttr("id", id) }

// TextContent returns the concatenated text of n and its descendants.
// Raw and comment nodes do not contribute.
func (n *Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// SetTextContent replaces the children of an element with a single text
// node, or clears them when text is empty. For text, raw and comment nodes
// it replaces the content directly.
func (n *Node) SetTextContent(text string) {
	switch n.Kind {
	case KindText, KindRaw, KindComment:
		n.Text = text
		return
	}
	for _, c := range n.children {
		c.parent = nil
		c.release()
	}
	n.children = n.children[:0]
	if text != "" {
		n.AppendChild(NewText(text))
	}
}
