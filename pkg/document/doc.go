// Package document implements the document lifecycle engine: skeleton
// construction, per-document ephemeral resources, bootstrap script
// composition, theme registration, and the process-wide current root
// document slot.
//
// A Document owns exactly one tree (doctype plus a single <html> element
// with one <head> and one <body>) and an ephemeral working directory.
// Many documents may be live in one process; they share an identity
// registry through the Directory that created them, which is the only
// cross-document state.
//
// Serialization is driven by Build: it recomposes the bootstrap scripts
// from the document's configuration and flattens the tree to HTML. Calling
// Build twice without intervening mutation yields identical output.
package document
