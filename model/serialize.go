package model

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fedikit/fedikit/jsonld"
)

// Serialize builds a raw JSON-LD document
// from e's values and extra properties, then either runs it through the
// expansion algorithm (expand=true) or compact it against e's default
// context (expand=false).
func Serialize(ctx context.Context, e Entity, expand bool, loader jsonld.DocumentLoader) (interface{}, error) {
	raw, err := rawDocument(ctx, e, loader)
	if err != nil {
		return nil, err
	}
	opts := jsonld.Options{Loader: loader}
	if expand {
		out, err := jsonld.Expand(ctx, raw, opts)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
	return jsonld.Compact(ctx, raw, e.Base().DefaultContext(), opts)
}

// rawDocument builds the absolute-IRI-keyed document for e without
// running the JSON-LD algorithm.
func rawDocument(ctx context.Context, e Entity, loader jsonld.DocumentLoader) (map[string]interface{}, error) {
	base := e.Base()
	doc := map[string]interface{}{"@type": string(e.TypeURI())}

	if id := base.ID(); !id.IsZero() {
		doc["@id"] = string(id)
	}

	for _, d := range e.Descriptors() {
		if d.Kind() == KindID {
			continue
		}
		items := base.slot(d.URI())
		if len(items) == 0 {
			continue
		}
		nodes := make([]interface{}, 0, len(items))
		for _, item := range items {
			node, err := itemToNode(ctx, item, loader)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		}
		doc[string(d.URI())] = nodes
	}

	for _, u := range base.ExtraURIs() {
		raw, _ := base.Extra(u)
		var v interface{}
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("model: serialize: decoding extra %s: %w", u, err)
		}
		doc[string(u)] = v
	}

	return doc, nil
}

func itemToNode(ctx context.Context, item Item, loader jsonld.DocumentLoader) (interface{}, error) {
	switch v := item.(type) {
	case *Ref:
		return map[string]interface{}{"@id": string(v.URI)}, nil
	case Entity:
		return rawDocument(ctx, v, loader)
	default:
		return jsonld.EncodeScalar(v)
	}
}
