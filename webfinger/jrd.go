// Package webfinger implements the RFC 7033 JSON Resource Descriptor
// (JRD) response shape used by the /.well-known/webfinger endpoint.
package webfinger

import "encoding/json"

// Link is one entry in a JRD's links array.
type Link struct {
	Rel        string            `json:"rel"`
	Type       string            `json:"type,omitempty"`
	Href       string            `json:"href,omitempty"`
	Titles     map[string]string `json:"titles,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// ResourceDescriptor is a JRD: the WebFinger response body. The key
// order (subject, aliases, properties, links) is load-bearing and is
// guaranteed by Go struct field declaration order plus encoding/json.
type ResourceDescriptor struct {
	Subject    string            `json:"subject"`
	Aliases    []string          `json:"aliases,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
	Links      []Link            `json:"links,omitempty"`
}

// MarshalJSON is defined explicitly so the field order invariant is
// documented at the call site; it marshals an alias of the same
// struct, so the key order still follows the field declaration order.
func (r ResourceDescriptor) MarshalJSON() ([]byte, error) {
	type alias ResourceDescriptor
	return json.Marshal(alias(r))
}

// ContentType is the media type WebFinger responses are served with.
const ContentType = "application/jrd+json"
