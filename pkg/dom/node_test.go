package dom

import "testing"

func TestNewElementAssignsNodeID(t *testing.T) {
	a := NewElement("div")
	b := NewElement("div")
	if a.NodeID == "" {
		t.Fatal("NewElement() assigned empty NodeID")
	}
	if a.NodeID == b.NodeID {
		t.Error("NewElement() assigned the same NodeID to two elements")
	}
}

func TestAppendChild(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("span"))
	b := parent.AppendChild(NewText("hello"))

	children := parent.Children()
	if len(children) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(children))
	}
	if children[0] != a || children[1] != b {
		t.Error("children out of order after AppendChild")
	}
	if a.Parent() != parent {
		t.Error("child parent not set")
	}
	if parent.FirstChild() != a || parent.LastChild() != b {
		t.Error("FirstChild/LastChild mismatch")
	}
}

func TestAppendChildMovesNode(t *testing.T) {
	from := NewElement("div")
	to := NewElement("div")
	child := from.AppendChild(NewElement("span"))

	to.AppendChild(child)

	if len(from.Children()) != 0 {
		t.Error("child still attached to previous parent")
	}
	if child.Parent() != to {
		t.Error("child parent not updated after move")
	}
}

func TestPrepend(t *testing.T) {
	parent := NewElement("body")
	first := parent.AppendChild(NewElement("script"))
	app := parent.Prepend(NewElement("div"))

	children := parent.Children()
	if len(children) != 2 {
		t.Fatalf("len(Children()) = %d, want 2", len(children))
	}
	if children[0] != app || children[1] != first {
		t.Error("Prepend did not insert at position zero")
	}
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("a"))
	c := parent.AppendChild(NewElement("c"))
	b := parent.InsertBefore(NewElement("b"), c)

	children := parent.Children()
	if len(children) != 3 {
		t.Fatalf("len(Children()) = %d, want 3", len(children))
	}
	if children[0] != a || children[1] != b || children[2] != c {
		t.Error("InsertBefore placed the child at the wrong position")
	}
}

func TestInsertBeforeNilRefAppends(t *testing.T) {
	parent := NewElement("div")
	a := parent.AppendChild(NewElement("a"))
	b := parent.InsertBefore(NewElement("b"), nil)

	children := parent.Children()
	if children[0] != a || children[1] != b {
		t.Error("InsertBefore(nil) did not append")
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewElement("div")
	child := parent.AppendChild(NewElement("span"))

	removed := parent.RemoveChild(child)
	if removed != child {
		t.Errorf("RemoveChild() = %p, want %p", removed, child)
	}
	if len(parent.Children()) != 0 {
		t.Error("child still present after RemoveChild")
	}
	if child.Parent() != nil {
		t.Error("removed child still has a parent")
	}
}

func TestRemoveChildNotAChild(t *testing.T) {
	parent := NewElement("div")
	stranger := NewElement("span")
	if got := parent.RemoveChild(stranger); got != nil {
		t.Errorf("RemoveChild(stranger) = %p, want nil", got)
	}
}

func TestAdoptRegistersSubtree(t *testing.T) {
	reg := NewRegistry()
	owner := &struct{}{}

	root := NewElement("div")
	child := root.AppendChild(NewElement("span"))
	child.SetID("inner")

	root.Adopt(owner, reg)

	if got, ok := reg.Resolve(NamespaceNode, root.NodeID); !ok || got != root {
		t.Error("root not registered under its NodeID")
	}
	if got, ok := reg.Resolve(NamespaceNode, child.NodeID); !ok || got != child {
		t.Error("descendant not registered under its NodeID")
	}
	if got, ok := reg.Resolve(NamespaceID, "inner"); !ok || got != child {
		t.Error("descendant id attribute not registered")
	}
	if child.Owner() != owner {
		t.Error("descendant owner not set")
	}
}

func TestAppendChildAdoptsIntoParentDocument(t *testing.T) {
	reg := NewRegistry()
	owner := &struct{}{}

	root := NewElement("div")
	root.Adopt(owner, reg)

	child := NewElement("span")
	child.SetID("late")
	root.AppendChild(child)

	if child.Owner() != owner {
		t.Error("appended child did not adopt the parent's owner")
	}
	if got, ok := reg.ResolveOwned(NamespaceID, "late", owner); !ok || got != child {
		t.Error("appended child's id not resolvable under the parent's owner")
	}
}

func TestRemoveChildReleasesOwnership(t *testing.T) {
	reg := NewRegistry()
	owner := &struct{}{}

	root := NewElement("div")
	root.Adopt(owner, reg)
	child := root.AppendChild(NewElement("span"))
	child.SetID("gone")

	root.RemoveChild(child)

	if child.Owner() != nil {
		t.Error("removed child still owned")
	}
	// The stale binding stops matching owner-filtered lookups immediately.
	if _, ok := reg.ResolveOwned(NamespaceID, "gone", owner); ok {
		t.Error("detached element still resolvable through its old owner")
	}
}

func TestSetAttrKeepsPosition(t *testing.T) {
	n := NewElement("div")
	n.SetAttr("class", "a")
	n.SetAttr("title", "b")
	n.SetAttr("class", "c")

	attrs := n.Attrs()
	if len(attrs) != 2 {
		t.Fatalf("len(Attrs()) = %d, want 2", len(attrs))
	}
	if attrs[0].Key != "class" || attrs[0].Value != "c" {
		t.Errorf("attrs[0] = %v, want class=c in first position", attrs[0])
	}
}

func TestSetAttrIDRegisters(t *testing.T) {
	reg := NewRegistry()
	owner := &struct{}{}
	n := NewElement("div")
	n.Adopt(owner, reg)

	n.SetAttr("id", "main")

	if got, ok := reg.Resolve(NamespaceID, "main"); !ok || got != n {
		t.Error("setting id on an owned element did not register it")
	}
	if n.ID() != "main" {
		t.Errorf("ID() = %q, want %q", n.ID(), "main")
	}
}

func TestRemoveAttr(t *testing.T) {
	n := NewElement("div")
	n.SetAttr("class", "a")
	n.RemoveAttr("class")
	if _, ok := n.Attr("class"); ok {
		t.Error("attribute still present after RemoveAttr")
	}
}

func TestTextContent(t *testing.T) {
	n := NewElement("p")
	n.AppendChild(NewText("hello "))
	em := n.AppendChild(NewElement("em"))
	em.AppendChild(NewText("world"))
	n.AppendChild(NewComment("ignored"))

	if got := n.TextContent(); got != "hello world" {
		t.Errorf("TextContent() = %q, want %q", got, "hello world")
	}
}

func TestSetTextContent(t *testing.T) {
	n := NewElement("title")
	n.AppendChild(NewElement("span"))
	n.SetTextContent("Hello")

	children := n.Children()
	if len(children) != 1 {
		t.Fatalf("len(Children()) = %d, want 1", len(children))
	}
	if children[0].Kind != KindText || children[0].Text != "Hello" {
		t.Errorf("child = %v %q, want text node %q", children[0].Kind, children[0].Text, "Hello")
	}

	n.SetTextContent("")
	if len(n.Children()) != 0 {
		t.Error("SetTextContent(\"\") left children behind")
	}
}
