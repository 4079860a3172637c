// Package dom provides the server-resident document object model for sdom.
//
// Unlike a diff-based virtual DOM, this tree is the authoritative document:
// it lives on the server for the life of a page, is mutated in place, and is
// serialized to HTML whenever a client needs the current state.
//
// # Core Types
//
// Node is the single node type, discriminated by Kind (element, text, raw
// HTML, comment, doctype). Elements carry a tag name, an insertion-ordered
// attribute list, child nodes, and a back-reference to their owning document.
//
// # Identity
//
// Every element is assigned an internal correlation id at creation. Elements
// attached to a document register both that id and their public HTML id
// attribute (if any) in the document's Registry. Registry bindings are weak:
// registration never keeps an element alive, and lapsed bindings read as
// not-found.
package dom
