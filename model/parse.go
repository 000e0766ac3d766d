package model

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/uri"
)

// rawJSONFor re-marshals an already-decoded JSON value back into a
// json.RawMessage for storage in an entity's extra map, preserving
// vocabulary extensions unknown to this build.
func rawJSONFor(v interface{}) (json.RawMessage, error) {
	return json.Marshal(v)
}

// Parse converts an already-expanded JSON-LD node (as produced by
// jsonld.Expand) into a typed entity: resolve its @type
// against target and the global registry, then fill in every declared
// property from the node's values, stashing anything unrecognized
// into extra.
func Parse(ctx context.Context, target uri.URI, node interface{}, loader jsonld.DocumentLoader) (Entity, error) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("model: parse: expanded node is not an object")
	}

	typeURIs := stringsAt(m["@type"])
	newFunc, _, ok := findMostSpecific(typeURIs, target)
	if !ok {
		return nil, fmt.Errorf("model: parse %s: %w: @type %v", target, ErrUnknownType, typeURIs)
	}

	entity := newFunc()
	base := entity.Base()

	if id, ok := m["@id"].(string); ok {
		base.SetID(uri.URI(id))
	}

	byURI := make(map[uri.URI][]Property)
	for _, d := range entity.Descriptors() {
		if d.Kind() == KindID {
			continue
		}
		byURI[d.URI()] = append(byURI[d.URI()], d)
	}

	for key, raw := range m {
		if key == "@type" || key == "@id" {
			continue
		}
		propertyURI := uri.URI(key)
		candidates := byURI[propertyURI]
		if len(candidates) == 0 {
			rawJSON, err := rawJSONFor(raw)
			if err == nil {
				base.SetExtra(propertyURI, rawJSON)
			}
			continue
		}
		values := arrayAt(raw)
		if err := parseIntoCandidates(ctx, base, candidates, values, loader); err != nil {
			// A type mismatch never aborts the whole entity: once
			// every aliasing candidate has been tried and failed,
			// the raw value is stashed under extra instead.
			if errors.Is(err, errTypeMismatch) {
				rawJSON, rawErr := rawJSONFor(raw)
				if rawErr == nil {
					base.SetExtra(propertyURI, rawJSON)
				}
				continue
			}
			return nil, err
		}
	}

	return entity, nil
}

// parseIntoCandidates tries plural candidates before singular ones,
// storing the first success and
// falling back to extra only if every candidate fails outright.
func parseIntoCandidates(ctx context.Context, base *Embed, candidates []Property, values []interface{}, loader jsonld.DocumentLoader) error {
	ordered := make([]Property, len(candidates))
	copy(ordered, candidates)
	// Plural before singular.
	for i := 1; i < len(ordered); i++ {
		if ordered[i].Kind() == KindPlural && ordered[i-1].Kind() != KindPlural {
			ordered[i], ordered[i-1] = ordered[i-1], ordered[i]
		}
	}

	for _, p := range ordered {
		items, err := p.ParseJSONLD(ctx, values, loader)
		if err != nil {
			continue
		}
		switch p.Kind() {
		case KindPlural:
			SetPlural(base, p, items)
		case KindSingular:
			if len(items) > 0 {
				SetSingular(base, p, items[0])
			}
		}
		return nil
	}
	return fmt.Errorf("model: %w: no candidate matched property %s", errTypeMismatch, candidates[0].URI())
}

// parseItemsGeneric performs the per-item dispatch: a bare
// {"@id":...} node yields a Ref; otherwise each declared TypeExpr
// alternative is tried in order, accepting the first success. An
// element that matches no alternative is skipped rather than failing
// the whole property; only a candidate that parses none of a
// non-empty array is reported as a type mismatch so
// parseIntoCandidates moves on to the next aliasing candidate.
func parseItemsGeneric(ctx context.Context, types []TypeExpr, values []interface{}, loader jsonld.DocumentLoader) ([]Item, error) {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		item, ok := parseOneItem(ctx, types, v, loader)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	if len(values) > 0 && len(items) == 0 {
		return nil, fmt.Errorf("model: %w", errTypeMismatch)
	}
	return items, nil
}

func parseOneItem(ctx context.Context, types []TypeExpr, v interface{}, loader jsonld.DocumentLoader) (Item, bool) {
	// The @id-only shape always wins over any type check.
	if refURI, ok := jsonld.IsRefNode(v); ok {
		return NewRef(refURI), true
	}
	for _, t := range types {
		if t.Scalar != ScalarNone {
			if scalar, ok := decodeScalarByKind(t.Scalar, v); ok {
				return scalar, true
			}
			continue
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		entity, err := Parse(ctx, t.EntityRoot, m, loader)
		if err != nil {
			continue
		}
		return entity, true
	}
	return nil, false
}

func decodeScalarByKind(kind ScalarKind, node interface{}) (Item, bool) {
	switch kind {
	case ScalarString:
		if s, ok := jsonld.DecodeString(node); ok {
			return s, true
		}
		return nil, false
	case ScalarBool:
		if b, ok := jsonld.DecodeBool(node); ok {
			return b, true
		}
		return nil, false
	case ScalarInt:
		if n, ok := jsonld.DecodeInt(node); ok {
			return n, true
		}
		return nil, false
	case ScalarURI:
		if u, ok := jsonld.DecodeURI(node); ok {
			return u, true
		}
		return nil, false
	case ScalarMediaType:
		if s, ok := jsonld.DecodeString(node); ok {
			return uri.MediaType(s), true
		}
		return nil, false
	case ScalarLanguageTag:
		if s, ok := jsonld.DecodeString(node); ok {
			return uri.NewLanguageTag(s), true
		}
		return nil, false
	case ScalarLanguageString:
		if ls, ok := jsonld.DecodeLanguageString(node); ok {
			return ls, true
		}
		if s, ok := jsonld.DecodeString(node); ok {
			return uri.NewLanguageString(s, ""), true
		}
		return nil, false
	case ScalarDuration:
		if d, ok := jsonld.DecodeDuration(node); ok {
			return d, true
		}
		return nil, false
	case ScalarTimestamp:
		if t, ok := jsonld.DecodeTimestamp(node); ok {
			return t, true
		}
		return nil, false
	default:
		return nil, false
	}
}

func stringsAt(v interface{}) []uri.URI {
	switch vv := v.(type) {
	case string:
		return []uri.URI{uri.URI(vv)}
	case []interface{}:
		out := make([]uri.URI, 0, len(vv))
		for _, e := range vv {
			if s, ok := e.(string); ok {
				out = append(out, uri.URI(s))
			}
		}
		return out
	default:
		return nil
	}
}

func arrayAt(v interface{}) []interface{} {
	switch vv := v.(type) {
	case []interface{}:
		return vv
	default:
		return []interface{}{vv}
	}
}
