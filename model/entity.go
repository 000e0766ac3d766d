// Package model implements the declarative, descriptor-driven
// ActivityStreams entity model: property descriptors, the Entity base
// type every vocabulary class embeds, the global subclass registry,
// JSON-LD serialization/parsing, and lazily-resolved entity
// references.
package model

import (
	"encoding/json"
	"sort"

	"github.com/fedikit/fedikit/uri"
)

// Entity is implemented by every concrete (or abstract) vocabulary
// class. TypeURI is immutable and fixed by the concrete class;
// Descriptors returns the full, inherited set of property descriptors
// for the class so generic code (serialization, parsing, resolve_refs)
// never needs a type switch.
type Entity interface {
	TypeURI() uri.URI
	Base() *Embed
	Descriptors() []Property
}

// Item is one element of a slot: a scalar value (string, bool, int, or
// one of the uri package's scalar types), an Entity, or a *Ref.
type Item interface{}

// Embed is embedded by every vocabulary struct. It stores the id slot,
// the per-property value slots, and the extra map. Embed is
// never constructed directly by application code; vocabulary
// constructors initialize it.
type Embed struct {
	typeURI uri.URI
	context interface{}
	id      uri.URI
	values  map[uri.URI][]Item
	extra   map[uri.URI]json.RawMessage
}

// NewBase initializes a Embed for a concrete class with the given type
// URI and default JSON-LD context (a URI string, []interface{} of
// such, or an inline context object). Vocabulary
// constructors call this first.
func NewBase(typeURI uri.URI, defaultContext interface{}) Embed {
	return Embed{
		typeURI: typeURI,
		context: defaultContext,
		values:  make(map[uri.URI][]Item),
		extra:   make(map[uri.URI]json.RawMessage),
	}
}

// TypeURI returns the class's immutable type URI.
func (b *Embed) TypeURI() uri.URI { return b.typeURI }

// DefaultContext returns the class's default JSON-LD context value,
// used when serializing in compacted mode.
func (b *Embed) DefaultContext() interface{} { return b.context }

// Base returns b itself, satisfying the Entity interface for types
// that embed Embed directly (concrete vocabulary structs override this
// by simply promoting the method).
func (b *Embed) Base() *Embed { return b }

// ID returns the entity's id property, or the empty URI if unset.
func (b *Embed) ID() uri.URI { return b.id }

// SetID sets the id property.
func (b *Embed) SetID(id uri.URI) { b.id = id }

// slot returns the raw item sequence stored at propertyURI, or nil.
func (b *Embed) slot(propertyURI uri.URI) []Item { return b.values[propertyURI] }

// setSlot replaces the item sequence stored at propertyURI.
func (b *Embed) setSlot(propertyURI uri.URI, items []Item) {
	if b.values == nil {
		b.values = make(map[uri.URI][]Item)
	}
	b.values[propertyURI] = items
}

// appendSlot appends items to whatever is already stored at propertyURI.
func (b *Embed) appendSlot(propertyURI uri.URI, items ...Item) {
	b.setSlot(propertyURI, append(b.slot(propertyURI), items...))
}

// Extra returns the raw JSON-LD value stashed for a property URI this
// class does not recognize, and whether one was stashed.
func (b *Embed) Extra(propertyURI uri.URI) (json.RawMessage, bool) {
	v, ok := b.extra[propertyURI]
	return v, ok
}

// SetExtra stashes a raw JSON-LD value for an unrecognized property.
func (b *Embed) SetExtra(propertyURI uri.URI, raw json.RawMessage) {
	if b.extra == nil {
		b.extra = make(map[uri.URI]json.RawMessage)
	}
	b.extra[propertyURI] = raw
}

// ExtraURIs returns the keys of the extra map, sorted, for
// deterministic hashing/serialization.
func (b *Embed) ExtraURIs() []uri.URI {
	uris := make([]uri.URI, 0, len(b.extra))
	for u := range b.extra {
		uris = append(uris, u)
	}
	sort.Slice(uris, func(i, j int) bool { return uris[i] < uris[j] })
	return uris
}

// Equal reports whether two entities have the same
// concrete type, the same values under per-property equality, and the
// same extra.
// Equality is delegated to Equal because Item values may themselves be
// Entities, Refs, or scalars with their own Equal methods.
func Equal(a, b Entity) bool {
	if a.TypeURI() != b.TypeURI() {
		return false
	}
	ab, bb := a.Base(), b.Base()
	if ab.id != bb.id {
		return false
	}
	if len(ab.values) != len(bb.values) {
		return false
	}
	for k, av := range ab.values {
		bv, ok := bb.values[k]
		if !ok || !itemsEqual(av, bv) {
			return false
		}
	}
	if len(ab.extra) != len(bb.extra) {
		return false
	}
	for k, av := range ab.extra {
		bv, ok := bb.extra[k]
		if !ok || string(av) != string(bv) {
			return false
		}
	}
	return true
}

func itemsEqual(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !itemEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func itemEqual(a, b Item) bool {
	switch av := a.(type) {
	case *Ref:
		bv, ok := b.(*Ref)
		return ok && av.Equal(bv)
	case Entity:
		bv, ok := b.(Entity)
		return ok && Equal(av, bv)
	case uri.LanguageString:
		bv, ok := b.(uri.LanguageString)
		return ok && av.Equal(bv)
	case uri.Timestamp:
		bv, ok := b.(uri.Timestamp)
		return ok && av.Equal(bv)
	case uri.Duration:
		bv, ok := b.(uri.Duration)
		return ok && av.Equal(bv)
	default:
		return a == b
	}
}
