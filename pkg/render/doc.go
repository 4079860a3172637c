// Package render serializes a dom tree to HTML text.
//
// Serialization is deterministic: attributes are emitted in insertion order,
// internal correlation ids are rendered as data-sdom-id attributes, and two
// renders of an unchanged tree produce byte-identical output. No network or
// disk I/O occurs during rendering.
package render
