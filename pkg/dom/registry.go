package dom

import (
	"sync"
	"weak"
)

// Namespace selects one of the registry's independent identity spaces.
// The two spaces never collide even when their id strings coincide.
type Namespace uint8

const (
	// NamespaceID is the public identity space, backed by the HTML id
	// attribute.
	NamespaceID Namespace = iota

	// NamespaceNode is the internal correlation-id space used to address
	// individual elements from the client runtime.
	NamespaceNode
)

// String returns the string representation of the Namespace.
func (ns Namespace) String() string {
	switch ns {
	case NamespaceID:
		return "id"
	case NamespaceNode:
		return "node"
	default:
		return "unknown"
	}
}

type registryKey struct {
	ns Namespace
	id string
}

// Registry maps identity strings to the element currently holding them,
// across every document that shares the registry.
//
// Bindings are weak: a registered element is not kept alive by its entry,
// and a lapsed entry reads as not-found. Registration is last-writer-wins;
// registering an id that is already bound, even by another document's
// element, silently shadows the previous binding.
//
// A Registry is safe for concurrent use. It is the only mutable state
// shared between documents.
type Registry struct {
	mu      sync.RWMutex
	entries map[registryKey]weak.Pointer[Node]
}

// NewRegistry creates an empty identity registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[registryKey]weak.Pointer[Node])}
}

// Register binds id to n in the given namespace, overwriting any existing
// binding for that key.
func (r *Registry) Register(ns Namespace, id string, n *Node) {
	if id == "" || n == nil {
		return
	}
	r.mu.Lock()
	r.entries[registryKey{ns: ns, id: id}] = weak.Make(n)
	r.mu.Unlock()
}

// Unregister drops the binding for id in the given namespace, if any.
// Dropping a binding is never required for correctness; it only releases
// the map entry early.
func (r *Registry) Unregister(ns Namespace, id string) {
	r.mu.Lock()
	delete(r.entries, registryKey{ns: ns, id: id})
	r.mu.Unlock()
}

// Resolve returns the element currently bound to id in the given namespace.
// Absence is an expected condition, not an error: the second return value is
// false when the id is unbound or the binding has lapsed.
func (r *Registry) Resolve(ns Namespace, id string) (*Node, bool) {
	key := registryKey{ns: ns, id: id}

	r.mu.RLock()
	ptr, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}

	n := ptr.Value()
	if n == nil {
		// The element was collected; prune the dead entry unless a
		// concurrent writer already rebound the key.
		r.mu.Lock()
		if cur, ok := r.entries[key]; ok && cur == ptr {
			delete(r.entries, key)
		}
		r.mu.Unlock()
		return nil, false
	}
	return n, true
}

// ResolveOwned is Resolve restricted to elements owned by the given
// document. An id bound to another document's element reads as not-found.
func (r *Registry) ResolveOwned(ns Namespace, id string, owner any) (*Node, bool) {
	n, ok := r.Resolve(ns, id)
	if !ok || owner == nil || n.Owner() != owner {
		return nil, false
	}
	return n, true
}

// Len reports the number of bindings currently stored, including bindings
// whose element may already have lapsed. Intended for metrics.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
