package model

import (
	"context"
	"fmt"

	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/uri"
)

// Ref is a lightweight placeholder for an entity whose full
// representation has not been fetched. Equality and hash are by URI
// alone.
type Ref struct {
	URI uri.URI
}

// NewRef builds a Ref for u.
func NewRef(u uri.URI) *Ref { return &Ref{URI: u} }

// Equal reports whether two refs denote the same URI.
func (r *Ref) Equal(o *Ref) bool { return r.URI == o.URI }

func (r *Ref) String() string { return fmt.Sprintf("Ref(%s)", r.URI) }

// Load dereferences the ref via loader, expands the resulting
// document, and parses it against target.
func (r *Ref) Load(ctx context.Context, target uri.URI, loader jsonld.DocumentLoader) (Entity, error) {
	doc, err := loader.LoadDocument(ctx, string(r.URI))
	if err != nil {
		return nil, fmt.Errorf("model: loading ref %s: %w", r.URI, err)
	}
	expanded, err := jsonld.Expand(ctx, doc.Document, jsonld.Options{Loader: loader})
	if err != nil {
		return nil, fmt.Errorf("model: expanding ref %s: %w", r.URI, err)
	}
	if len(expanded) == 0 {
		return nil, fmt.Errorf("model: ref %s expanded to no nodes", r.URI)
	}
	return Parse(ctx, target, expanded[0], loader)
}

// ResolveRefs walks entity's declared properties (or, when names is
// non-empty, only the named subset) and replaces every Ref item in
// place with the entity loaded from it, resolved against the abstract
// root (any registered type). An unknown property name fails with
// ErrNoSuchProperty.
func ResolveRefs(ctx context.Context, e Entity, names []string, loader jsonld.DocumentLoader) error {
	descriptors := e.Descriptors()
	byName := make(map[string]Property, len(descriptors))
	for _, d := range descriptors {
		byName[d.Name()] = d
	}

	targets := descriptors
	if len(names) > 0 {
		targets = make([]Property, 0, len(names))
		for _, n := range names {
			d, ok := byName[n]
			if !ok {
				return fmt.Errorf("model: resolve_refs: %w: %q", ErrNoSuchProperty, n)
			}
			targets = append(targets, d)
		}
	}

	base := e.Base()
	for _, d := range targets {
		if d.Kind() == KindID {
			continue
		}
		items := base.slot(d.URI())
		changed := false
		resolved := make([]Item, len(items))
		for i, item := range items {
			ref, ok := item.(*Ref)
			if !ok {
				resolved[i] = item
				continue
			}
			loaded, err := ref.Load(ctx, AnyRootURI, loader)
			if err != nil {
				return err
			}
			resolved[i] = loaded
			changed = true
		}
		if changed {
			base.setSlot(d.URI(), resolved)
		}
	}
	return nil
}
