package model

import (
	"fmt"

	"github.com/fedikit/fedikit/uri"
)

// SetSingular replaces the slot at p's own URI (not its subproperties)
// with a single item, or clears it when item is nil. Vocabulary
// setters use this for "first value" properties.
func SetSingular(b *Embed, p Property, item Item) {
	if item == nil {
		b.setSlot(p.URI(), nil)
		return
	}
	b.setSlot(p.URI(), []Item{item})
}

// AddPlural appends items to the slot at p's own URI. Vocabulary
// setters use this for "all values" properties.
func AddPlural(b *Embed, p Property, items ...Item) {
	b.appendSlot(p.URI(), items...)
}

// SetPlural replaces the entire slot at p's own URI.
func SetPlural(b *Embed, p Property, items []Item) {
	b.setSlot(p.URI(), items)
}

// ReadSingular is a typed convenience wrapper for descriptors of kind
// KindSingular: it returns the first value and whether one was set.
func ReadSingular(b *Embed, p Property) (Item, bool) {
	v := p.Read(b)
	if v == nil {
		return nil, false
	}
	return v, true
}

// ReadPlural is a typed convenience wrapper for descriptors of kind
// KindPlural.
func ReadPlural(b *Embed, p Property) []Item {
	v := p.Read(b)
	items, _ := v.([]Item)
	return items
}

// ReadID is a typed convenience wrapper for the id descriptor.
func ReadID(b *Embed) uri.URI { return b.ID() }

// Apply sets named properties on e generically, the dynamic
// counterpart to the vocab package's typed setters. A name that is not
// declared on e's class fails with ErrNoSuchProperty; two names
// targeting the same property URI (e.g. a singular and its plural
// view) fail with ErrDuplicateProperty. Values for plural properties
// must be []Item; the id property takes a uri.URI.
func Apply(e Entity, values map[string]Item) error {
	base := e.Base()
	seen := make(map[uri.URI]string, len(values))
	for name, value := range values {
		p, ok := FindProperty(e, name)
		if !ok {
			return fmt.Errorf("model: apply: %w: %q", ErrNoSuchProperty, name)
		}
		if prev, dup := seen[p.URI()]; dup {
			return fmt.Errorf("model: apply: %w: %q and %q both target %s", ErrDuplicateProperty, prev, name, p.URI())
		}
		seen[p.URI()] = name

		switch p.Kind() {
		case KindID:
			u, ok := value.(uri.URI)
			if !ok {
				return fmt.Errorf("model: apply: id must be a uri.URI, got %T", value)
			}
			base.SetID(u)
		case KindSingular:
			SetSingular(base, p, value)
		case KindPlural:
			items, ok := value.([]Item)
			if !ok {
				return fmt.Errorf("model: apply: %q must be a []Item, got %T", name, value)
			}
			SetPlural(base, p, items)
		}
	}
	return nil
}

// FindProperty returns the descriptor named name on e's class, if any.
// It lets generic code (e.g. the federation request adapter) read a
// property off an arbitrary Entity without importing the vocab
// package's concrete types.
func FindProperty(e Entity, name string) (Property, bool) {
	for _, d := range e.Descriptors() {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}
