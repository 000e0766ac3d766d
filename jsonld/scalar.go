package jsonld

import (
	"fmt"

	"github.com/fedikit/fedikit/uri"
)

// EncodeScalar converts a Go scalar value into its JSON-LD value-node
// representation:
//
//	string | bool            -> {"@value": v}
//	int                       -> {"@value": v, "@type": xsd:nonNegativeInteger, or xsd:integer when v < 0}
//	uri.Timestamp             -> {"@value": iso, "@type": xsd:dateTime}
//	uri.LanguageTag           -> {"@value": normalized}
//	uri.LanguageString        -> {"@value": text, "@language": tag}
//	uri.Duration              -> {"@value": iso-duration}
//	uri.URI                   -> {"@value": uri}
func EncodeScalar(v interface{}) (map[string]interface{}, error) {
	switch val := v.(type) {
	case string:
		return map[string]interface{}{"@value": val}, nil
	case bool:
		return map[string]interface{}{"@value": val}, nil
	case int:
		t := uri.XSDInteger
		if val >= 0 {
			t = uri.XSDNonNegativeInteger
		}
		return map[string]interface{}{"@value": val, "@type": string(t)}, nil
	case uri.Timestamp:
		return map[string]interface{}{
			"@value": val.String(),
			"@type":  string(uri.XSDDateTime),
		}, nil
	case uri.LanguageTag:
		return map[string]interface{}{"@value": val.String()}, nil
	case uri.LanguageString:
		node := map[string]interface{}{"@value": val.Text}
		// An empty tag means "language unknown"; @language must be a
		// valid BCP-47 tag, so the key is omitted entirely.
		if val.Tag != "" {
			node["@language"] = val.Tag.String()
		}
		return node, nil
	case uri.Duration:
		return map[string]interface{}{"@value": val.String()}, nil
	case uri.URI:
		return map[string]interface{}{"@value": val.String()}, nil
	default:
		return nil, fmt.Errorf("jsonld: cannot encode scalar of type %T", v)
	}
}

// scalarNode is the shape a JSON-LD value node decodes into before a
// target type is picked.
type scalarNode struct {
	Value    interface{}
	Language string
	Type     string
}

func asScalarNode(node interface{}) (scalarNode, bool) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return scalarNode{}, false
	}
	v, hasValue := m["@value"]
	if !hasValue {
		return scalarNode{}, false
	}
	sn := scalarNode{Value: v}
	if lang, ok := m["@language"].(string); ok {
		sn.Language = lang
	}
	if typ, ok := m["@type"].(string); ok {
		sn.Type = typ
	}
	return sn, true
}

// DecodeString decodes a JSON-LD value node into a plain string.
func DecodeString(node interface{}) (string, bool) {
	sn, ok := asScalarNode(node)
	if !ok {
		return "", false
	}
	s, ok := sn.Value.(string)
	return s, ok
}

// DecodeBool decodes a JSON-LD value node into a bool.
func DecodeBool(node interface{}) (bool, bool) {
	sn, ok := asScalarNode(node)
	if !ok {
		return false, false
	}
	b, ok := sn.Value.(bool)
	return b, ok
}

// DecodeInt decodes a JSON-LD value node into an int.
func DecodeInt(node interface{}) (int, bool) {
	sn, ok := asScalarNode(node)
	if !ok {
		return 0, false
	}
	switch n := sn.Value.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}

// DecodeURI decodes a JSON-LD value node into a uri.URI.
func DecodeURI(node interface{}) (uri.URI, bool) {
	sn, ok := asScalarNode(node)
	if !ok {
		return "", false
	}
	s, ok := sn.Value.(string)
	if !ok {
		return "", false
	}
	return uri.URI(s), true
}

// DecodeLanguageString decodes a JSON-LD value node into a
// uri.LanguageString. It succeeds only when @language is present;
// callers should fall back to DecodeString otherwise.
func DecodeLanguageString(node interface{}) (uri.LanguageString, bool) {
	sn, ok := asScalarNode(node)
	if !ok || sn.Language == "" {
		return uri.LanguageString{}, false
	}
	s, ok := sn.Value.(string)
	if !ok {
		return uri.LanguageString{}, false
	}
	return uri.NewLanguageString(s, sn.Language), true
}

// DecodeTimestamp decodes an xsd:dateTime-tagged value node.
func DecodeTimestamp(node interface{}) (uri.Timestamp, bool) {
	sn, ok := asScalarNode(node)
	if !ok || sn.Type != string(uri.XSDDateTime) {
		return uri.Timestamp{}, false
	}
	s, ok := sn.Value.(string)
	if !ok {
		return uri.Timestamp{}, false
	}
	ts, err := uri.ParseTimestamp(s)
	if err != nil {
		return uri.Timestamp{}, false
	}
	return ts, true
}

// DecodeDuration decodes a JSON-LD value node into a uri.Duration.
func DecodeDuration(node interface{}) (uri.Duration, bool) {
	sn, ok := asScalarNode(node)
	if !ok {
		return uri.Duration{}, false
	}
	s, ok := sn.Value.(string)
	if !ok {
		return uri.Duration{}, false
	}
	d, err := uri.ParseDuration(s)
	if err != nil {
		return uri.Duration{}, false
	}
	return d, true
}

// IsRefNode reports whether node is a bare {"@id": ...} JSON-LD node
// with no other properties, the shape that identifies an entity
// reference rather than an inline entity.
func IsRefNode(node interface{}) (uri.URI, bool) {
	m, ok := node.(map[string]interface{})
	if !ok {
		return "", false
	}
	id, ok := m["@id"].(string)
	if !ok {
		return "", false
	}
	for k := range m {
		if k != "@id" {
			return "", false
		}
	}
	return uri.URI(id), true
}
