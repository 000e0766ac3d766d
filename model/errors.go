package model

import "errors"

// The type-mismatch error is intentionally unexported machinery: it
// drives the try-next-candidate loop in ParseJSONLD and must never
// escape Parse.
var (
	// ErrUnknownType is returned when a JSON-LD document's @type is
	// not recognized for the requested target class.
	ErrUnknownType = errors.New("model: unknown type")
	// ErrNoSuchProperty is returned for a construction-time unknown
	// keyword, or a resolve_refs call naming an undeclared property.
	ErrNoSuchProperty = errors.New("model: no such property")
	// ErrDuplicateProperty is returned when two keyword arguments at
	// construction time target the same property URI.
	ErrDuplicateProperty = errors.New("model: duplicate property")

	errTypeMismatch = errors.New("model: type mismatch")
)
