// Package uri defines the scalar value types shared across the fedikit
// entity model: URIs, media types, language tags and strings, durations
// and timestamps. All of them are immutable value types compared by
// plain equality.
package uri

import (
	"fmt"
	"strings"
)

// URI is an opaque absolute URI. Equality is string equality.
type URI string

// String implements fmt.Stringer.
func (u URI) String() string { return string(u) }

// IsZero reports whether u is the empty URI.
func (u URI) IsZero() bool { return u == "" }

// MediaType is an opaque IANA media type, e.g. "application/ld+json".
type MediaType string

func (m MediaType) String() string { return string(m) }

// Well-known XSD datatype URIs used by the scalar codec (see jsonld
// package) to tag numeric and temporal @value nodes.
const (
	XSDInteger            URI = "http://www.w3.org/2001/XMLSchema#integer"
	XSDNonNegativeInteger URI = "http://www.w3.org/2001/XMLSchema#nonNegativeInteger"
	XSDDateTime           URI = "http://www.w3.org/2001/XMLSchema#dateTime"
)

// LanguageTag is a BCP-47 normalized language tag. Equality is on the
// normalized form, so two tags built from differently-cased input
// compare equal once normalized.
type LanguageTag string

// NewLanguageTag normalizes raw into BCP-47 casing: the primary
// language subtag lowercase, a 4-letter script subtag title-case, and
// a region subtag uppercase. It does not validate the tag against the
// IANA subtag registry; fedikit only needs consistent comparison, not
// full conformance checking.
func NewLanguageTag(raw string) LanguageTag {
	parts := strings.Split(raw, "-")
	for i, p := range parts {
		switch {
		case i == 0:
			parts[i] = strings.ToLower(p)
		case len(p) == 4:
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		case len(p) == 2:
			parts[i] = strings.ToUpper(p)
		default:
			parts[i] = strings.ToLower(p)
		}
	}
	return LanguageTag(strings.Join(parts, "-"))
}

func (t LanguageTag) String() string { return string(t) }

// LanguageString pairs text with the language it is written in.
// Equality requires both the text and the tag to match.
type LanguageString struct {
	Text string
	Tag  LanguageTag
}

// NewLanguageString builds a LanguageString, normalizing tag.
func NewLanguageString(text, tag string) LanguageString {
	return LanguageString{Text: text, Tag: NewLanguageTag(tag)}
}

func (s LanguageString) String() string {
	if s.Tag == "" {
		return s.Text
	}
	return fmt.Sprintf("%s@%s", s.Text, s.Tag)
}

// Equal reports whether two LanguageStrings are the same text in the
// same normalized language.
func (s LanguageString) Equal(o LanguageString) bool {
	return s.Text == o.Text && s.Tag == o.Tag
}
