package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdom-dev/sdom/pkg/dom"
)

// NodeIDAttr is the attribute carrying an element's internal correlation id
// in serialized output. The client runtime uses it to address elements.
const NodeIDAttr = "data-sdom-id"

// HTML returns the serialized form of n and its subtree.
func HTML(n *dom.Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// Children returns the concatenated serialization of a node's children, in
// child order, with no separators.
func Children(n *dom.Node) string {
	var b strings.Builder
	for _, c := range n.Children() {
		writeNode(&b, c)
	}
	return b.String()
}

// Fragment returns the concatenated serialization of the given nodes.
func Fragment(nodes []*dom.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		writeNode(&b, n)
	}
	return b.String()
}

// Write serializes n to w.
func Write(w io.Writer, n *dom.Node) error {
	_, err := io.WriteString(w, HTML(n))
	return err
}

// writeNode dispatches on node kind.
func writeNode(b *strings.Builder, n *dom.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case dom.KindElement:
		writeElement(b, n)
	case dom.KindText:
		b.WriteString(escapeHTML(n.Text))
	case dom.KindRaw:
		b.WriteString(n.Text)
	case dom.KindComment:
		b.WriteString("<!--")
		b.WriteString(n.Text)
		b.WriteString("-->")
	case dom.KindDoctype:
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Tag)
		b.WriteString(">")
	}
}

// writeElement renders an element with its attributes and children.
func writeElement(b *strings.Builder, n *dom.Node) {
	tag := n.Tag

	b.WriteByte('<')
	b.WriteString(tag)

	for _, a := range n.Attrs() {
		writeAttr(b, a)
	}

	// Identity attribute last, matching the skeleton the client expects.
	if n.NodeID != "" {
		fmt.Fprintf(b, ` %s="%s"`, NodeIDAttr, escapeAttr(n.NodeID))
	}

	if isVoidElement(tag) {
		b.WriteByte('>')
		return
	}
	b.WriteByte('>')

	raw := isRawTextElement(tag)
	for _, c := range n.Children() {
		if raw && c.Kind == dom.KindText {
			b.WriteString(c.Text)
			continue
		}
		writeNode(b, c)
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// writeAttr renders a single attribute.
func writeAttr(b *strings.Builder, a dom.Attr) {
	if isBooleanAttr(a.Key) && (a.Value == "" || a.Value == "true") {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		return
	}
	fmt.Fprintf(b, ` %s="%s"`, a.Key, escapeAttr(a.Value))
}
