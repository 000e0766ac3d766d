package model

import (
	"context"
	"fmt"

	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/uri"
)

// Kind distinguishes the three property cardinalities.
type Kind int

const (
	// KindID marks the single id property; its slot is a URI, not a
	// sequence, and it has no subproperties.
	KindID Kind = iota
	// KindSingular exposes the first value written at its URI (and
	// its subproperties) as a single value.
	KindSingular
	// KindPlural exposes every value written at its URI (and its
	// subproperties) as a sequence.
	KindPlural
)

// ScalarKind names one of the scalar value types a property's
// value-type-expression may allow.
type ScalarKind int

const (
	ScalarNone ScalarKind = iota
	ScalarString
	ScalarBool
	ScalarInt
	ScalarURI
	ScalarMediaType
	ScalarLanguageTag
	ScalarLanguageString
	ScalarDuration
	ScalarTimestamp
)

// TypeExpr describes one allowed shape for a property's value: either
// a scalar kind, or an entity alternative rooted at EntityRoot (the
// concrete subtype is resolved dynamically against the registry at
// parse time). A property whose value may be
// one of several shapes (e.g. Object or Link) declares one TypeExpr
// per alternative, in declaration order; ties among candidates are
// broken by that order.
type TypeExpr struct {
	Scalar     ScalarKind
	EntityRoot uri.URI
}

// Union is a convenience constructor for a property's type expression
// when it accepts any of several alternatives.
func Union(exprs ...TypeExpr) []TypeExpr { return exprs }

// Property is a declarative descriptor for one named attribute of an
// entity type.
type Property interface {
	// Name is the property's Go-facing identifier, e.g. "attributedTo"
	// or the plural "attributedTos".
	Name() string
	Kind() Kind
	URI() uri.URI
	Subproperties() []uri.URI
	Types() []TypeExpr

	// Read extracts this property's current value from e: for
	// KindID, a uri.URI; for KindSingular, the first non-reference
	// Item found across the URI and its subproperties (or nil); for
	// KindPlural, a []Item concatenating all non-reference Items
	// across the URI and its subproperties, in declaration order.
	// *Ref items are skipped: an unresolved reference never
	// satisfies a read.
	Read(b *Embed) interface{}

	// CheckSlot reports whether the items currently stored at this
	// property's URI match this descriptor's cardinality, used to
	// choose which of several aliasing names (e.g. singular vs.
	// plural view of the same URI) best describes the current value
	// for debug rendering.
	CheckSlot(items []Item) bool

	// ParseJSONLD decodes nodeValues (the expanded JSON-LD array
	// found at this property's URI) into item(s) ready for storage.
	ParseJSONLD(ctx context.Context, nodeValues []interface{}, loader jsonld.DocumentLoader) ([]Item, error)
}

type baseProperty struct {
	name           string
	uri            uri.URI
	subproperties  []uri.URI
	types          []TypeExpr
}

func (p baseProperty) Name() string            { return p.name }
func (p baseProperty) URI() uri.URI             { return p.uri }
func (p baseProperty) Subproperties() []uri.URI { return p.subproperties }
func (p baseProperty) Types() []TypeExpr        { return p.types }

// uris returns the declared URI followed by subproperty URIs, which
// is the fold order for reads.
func (p baseProperty) uris() []uri.URI {
	out := make([]uri.URI, 0, len(p.subproperties)+1)
	out = append(out, p.uri)
	out = append(out, p.subproperties...)
	return out
}

// Option configures a property descriptor at construction time.
type Option func(*baseProperty)

// WithSubproperties declares additional property URIs to fold in when
// reading this property, so a query for the declared URI also
// surfaces values written under a more specific one (reading
// attributedTo also yields actor values).
func WithSubproperties(uris ...uri.URI) Option {
	return func(p *baseProperty) { p.subproperties = append(p.subproperties, uris...) }
}

// --- id property ---

type idProperty struct{ baseProperty }

// NewIDProperty declares the id property. There must be exactly one
// per concrete class, and it never takes subproperties.
func NewIDProperty() Property {
	return idProperty{baseProperty{name: "id", uri: "@id", types: []TypeExpr{{Scalar: ScalarURI}}}}
}

func (p idProperty) Kind() Kind { return KindID }

func (p idProperty) Read(b *Embed) interface{} { return b.ID() }

func (p idProperty) CheckSlot(items []Item) bool { return true }

func (p idProperty) ParseJSONLD(ctx context.Context, nodeValues []interface{}, loader jsonld.DocumentLoader) ([]Item, error) {
	return nil, fmt.Errorf("model: id property is not parsed via ParseJSONLD")
}

// --- singular / plural shared machinery ---

type singularProperty struct{ baseProperty }

// NewSingularProperty declares a property exposing the first value
// written at propertyURI (after folding in subproperties) as a single
// value.
func NewSingularProperty(name string, propertyURI uri.URI, types []TypeExpr, opts ...Option) Property {
	p := baseProperty{name: name, uri: propertyURI, types: types}
	for _, opt := range opts {
		opt(&p)
	}
	return singularProperty{p}
}

func (p singularProperty) Kind() Kind { return KindSingular }

func (p singularProperty) CheckSlot(items []Item) bool { return len(items) == 1 }

// Read returns the first non-reference item found scanning this
// property's URI then its subproperties' URIs, in declaration order,
// or nil if none is set. Subproperty fold: reading attributedTo also
// sees values written under actor when actor is declared as its
// subproperty. *Ref items are skipped.
func (p singularProperty) Read(b *Embed) interface{} {
	for _, u := range p.uris() {
		for _, item := range b.slot(u) {
			if _, ok := item.(*Ref); ok {
				continue
			}
			return item
		}
	}
	return nil
}

func (p singularProperty) ParseJSONLD(ctx context.Context, nodeValues []interface{}, loader jsonld.DocumentLoader) ([]Item, error) {
	items, err := parseItemsGeneric(ctx, p.types, nodeValues, loader)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items[:1], nil
}

type pluralProperty struct{ baseProperty }

// NewPluralProperty declares a property exposing every value written
// at propertyURI (after folding in subproperties) as a sequence.
func NewPluralProperty(name string, propertyURI uri.URI, types []TypeExpr, opts ...Option) Property {
	p := baseProperty{name: name, uri: propertyURI, types: types}
	for _, opt := range opts {
		opt(&p)
	}
	return pluralProperty{p}
}

func (p pluralProperty) Kind() Kind { return KindPlural }

func (p pluralProperty) CheckSlot(items []Item) bool { return len(items) != 1 }

// Read concatenates the non-reference items across this property's
// URI and its subproperties, in declaration order. *Ref items are
// skipped.
func (p pluralProperty) Read(b *Embed) interface{} {
	var out []Item
	for _, u := range p.uris() {
		for _, item := range b.slot(u) {
			if _, ok := item.(*Ref); ok {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

func (p pluralProperty) ParseJSONLD(ctx context.Context, nodeValues []interface{}, loader jsonld.DocumentLoader) ([]Item, error) {
	return parseItemsGeneric(ctx, p.types, nodeValues, loader)
}
