package model

import (
	"sync"

	"github.com/fedikit/fedikit/uri"
)

// AnyRootURI is the sentinel "abstract entity root" used when a
// caller (e.g. ResolveRefs) wants to accept any registered concrete
// type rather than a specific one.
const AnyRootURI uri.URI = ""

// classInfo is one entry in the global vocabulary registry, populated
// at package-init time by every vocab type via Register.
type classInfo struct {
	typeURI  uri.URI
	parent   uri.URI
	abstract bool
	new      func() Entity
	depth    int
}

var (
	registryMu sync.RWMutex
	registry   = map[uri.URI]*classInfo{}
)

// Register adds a vocabulary class to the global registry. parent is
// the type URI of the immediate superclass, or AnyRootURI if this
// class has none. abstract classes can never be the resolved @type of
// a parsed document. newFunc constructs a zero-value instance of the
// class, used by Parse.
//
// Register must only be called from package-init time; the registry
// is read-only once request handling begins.
func Register(typeURI, parent uri.URI, abstract bool, newFunc func() Entity) {
	registryMu.Lock()
	defer registryMu.Unlock()
	depth := 0
	if parent != AnyRootURI {
		if p, ok := registry[parent]; ok {
			depth = p.depth + 1
		}
	}
	registry[typeURI] = &classInfo{typeURI: typeURI, parent: parent, abstract: abstract, new: newFunc, depth: depth}
}

// IsSubtypeOf reports whether typeURI names a class that is root or a
// (possibly indirect) subclass of root. AnyRootURI matches everything.
func IsSubtypeOf(typeURI, root uri.URI) bool {
	if root == AnyRootURI {
		return true
	}
	registryMu.RLock()
	defer registryMu.RUnlock()
	for u := typeURI; u != AnyRootURI; {
		if u == root {
			return true
		}
		info, ok := registry[u]
		if !ok {
			return false
		}
		u = info.parent
	}
	return false
}

// findMostSpecific searches the registry for the most-specific
// concrete class among candidateTypeURIs that is a subtype of root.
// "Most specific" is the candidate with
// the deepest registered ancestor chain.
func findMostSpecific(candidateTypeURIs []uri.URI, root uri.URI) (func() Entity, uri.URI, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	var best *classInfo
	for _, u := range candidateTypeURIs {
		info, ok := registry[u]
		if !ok || info.abstract {
			continue
		}
		if !isSubtypeOfLocked(info.typeURI, root) {
			continue
		}
		if best == nil || info.depth > best.depth {
			best = info
		}
	}
	if best == nil {
		return nil, "", false
	}
	return best.new, best.typeURI, true
}

func isSubtypeOfLocked(typeURI, root uri.URI) bool {
	if root == AnyRootURI {
		return true
	}
	for u := typeURI; u != AnyRootURI; {
		if u == root {
			return true
		}
		info, ok := registry[u]
		if !ok {
			return false
		}
		u = info.parent
	}
	return false
}

// Lookup returns a fresh zero-value instance of typeURI's class, if
// registered and concrete. Abstract classes report ok=false since
// they can never be constructed.
func Lookup(typeURI uri.URI) (Entity, bool) {
	registryMu.RLock()
	info, ok := registry[typeURI]
	registryMu.RUnlock()
	if !ok || info.abstract {
		return nil, false
	}
	return info.new(), true
}
