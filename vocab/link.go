package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

var (
	propHref     = model.NewSingularProperty("href", as("href"), model.Union(model.TypeExpr{Scalar: model.ScalarURI}))
	propRel      = model.NewPluralProperty("rel", as("rel"), model.Union(model.TypeExpr{Scalar: model.ScalarString}))
	propLinkMediaType = model.NewSingularProperty("mediaType", as("mediaType"), model.Union(model.TypeExpr{Scalar: model.ScalarMediaType}))
	propLinkName  = model.NewSingularProperty("name", as("name"), langString)
	propLinkNames = model.NewPluralProperty("names", as("name"), langString)
	propHreflang  = model.NewSingularProperty("hreflang", as("hreflang"), model.Union(model.TypeExpr{Scalar: model.ScalarLanguageTag}))
	propHeight    = model.NewSingularProperty("height", as("height"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propWidth     = model.NewSingularProperty("width", as("width"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propLinkPreview  = model.NewSingularProperty("preview", as("preview"), objectOrLink)
	propLinkPreviews = model.NewPluralProperty("previews", as("preview"), objectOrLink)
)

var linkProperties = []model.Property{
	propID, propHref, propRel, propLinkMediaType, propLinkName, propLinkNames,
	propHreflang, propHeight, propWidth, propLinkPreview, propLinkPreviews,
}

// Link is a distinct root vocabulary class representing a qualified
// reference to a resource.
type Link struct {
	base model.Base
}

// NewLink constructs a zero-value Link.
func NewLink() *Link {
	return &Link{base: model.NewBase(LinkTypeURI, DefaultContext)}
}

// Base implements model.Entity.
func (l *Link) Base() *model.Base { return &l.base }

// Descriptors implements model.Entity.
func (l *Link) Descriptors() []model.Property { return linkProperties }

// SetHref sets the link's target URI.
func (l *Link) SetHref(u uri.URI) { model.SetSingular(&l.base, propHref, u) }

// Href returns the link's target URI, if set.
func (l *Link) Href() (uri.URI, bool) {
	v, ok := model.ReadSingular(&l.base, propHref)
	if !ok {
		return "", false
	}
	u, ok := v.(uri.URI)
	return u, ok
}

// AddRel adds a link relation.
func (l *Link) AddRel(rel string) { model.AddPlural(&l.base, propRel, rel) }

// Rel returns the link's relations.
func (l *Link) Rel() []string {
	items := model.ReadPlural(&l.base, propRel)
	out := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// SetMediaType sets the link's media type.
func (l *Link) SetMediaType(mt uri.MediaType) { model.SetSingular(&l.base, propLinkMediaType, mt) }

// MediaType returns the link's media type, if set.
func (l *Link) MediaType() (uri.MediaType, bool) {
	v, ok := model.ReadSingular(&l.base, propLinkMediaType)
	if !ok {
		return "", false
	}
	mt, ok := v.(uri.MediaType)
	return mt, ok
}

// SetName sets the link's display name in the given language (tag may
// be empty).
func (l *Link) SetName(text, tag string) {
	model.SetSingular(&l.base, propLinkName, uri.NewLanguageString(text, tag))
}

// Name returns the link's display name, if set.
func (l *Link) Name() (uri.LanguageString, bool) {
	v, ok := model.ReadSingular(&l.base, propLinkName)
	if !ok {
		return uri.LanguageString{}, false
	}
	ls, ok := v.(uri.LanguageString)
	return ls, ok
}
