package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

// plainObjectSubtype is shared by every Object subtype in this file
// that adds no properties of its own (Note, Article, Document, Image,
// Audio, Video, Page, Event): they differ from Object only in their
// type URI, so they can share Object's descriptor set. Profile embeds
// it too but overrides Descriptors to add describes.
type plainObjectSubtype struct {
	base model.Base
}

func newPlainObjectSubtype(typeURI uri.URI) plainObjectSubtype {
	return plainObjectSubtype{base: model.NewBase(typeURI, DefaultContext)}
}

// Base implements model.Entity.
func (o *plainObjectSubtype) Base() *model.Base { return &o.base }

// Descriptors implements model.Entity.
func (o *plainObjectSubtype) Descriptors() []model.Property { return objectProperties }

// SetName sets the name in the given language (tag may be empty).
func (o *plainObjectSubtype) SetName(text, tag string) {
	model.SetSingular(&o.base, propName, uri.NewLanguageString(text, tag))
}

// SetContent sets the content in the given language.
func (o *plainObjectSubtype) SetContent(text, tag string) {
	model.SetSingular(&o.base, propContent, uri.NewLanguageString(text, tag))
}

// SetSummary sets the summary in the given language.
func (o *plainObjectSubtype) SetSummary(text, tag string) {
	model.SetSingular(&o.base, propSummary, uri.NewLanguageString(text, tag))
}

// SetPublished sets the published timestamp.
func (o *plainObjectSubtype) SetPublished(t uri.Timestamp) {
	model.SetSingular(&o.base, propPublished, t)
}

// SetAttributedTo sets the attributed-to actor or link.
func (o *plainObjectSubtype) SetAttributedTo(item model.Item) {
	model.SetSingular(&o.base, propAttributedTo, item)
}

// AttributedTo returns the attributed-to value, if set.
func (o *plainObjectSubtype) AttributedTo() (model.Item, bool) {
	return model.ReadSingular(&o.base, propAttributedTo)
}

// AttributedTos returns every attributed-to value, including those
// written under the actor subproperty.
func (o *plainObjectSubtype) AttributedTos() []model.Item {
	return model.ReadPlural(&o.base, propAttributedTos)
}

// AddTo appends to-addressing targets.
func (o *plainObjectSubtype) AddTo(items ...model.Item) { model.AddPlural(&o.base, propTo, items...) }

// To returns the object's to-addressing targets.
func (o *plainObjectSubtype) To() []model.Item { return model.ReadPlural(&o.base, propTo) }

// AddCc appends cc-addressing targets.
func (o *plainObjectSubtype) AddCc(items ...model.Item) { model.AddPlural(&o.base, propCc, items...) }

// Cc returns the object's cc-addressing targets.
func (o *plainObjectSubtype) Cc() []model.Item { return model.ReadPlural(&o.base, propCc) }

// Note represents a short written note, typically the payload of a
// Create activity in ActivityPub (a "post" / "toot" / "status").
type Note struct{ plainObjectSubtype }

// NewNote constructs a Note.
func NewNote() *Note { return &Note{newPlainObjectSubtype(NoteTypeURI)} }

// Article represents a multi-paragraph written work.
type Article struct{ plainObjectSubtype }

// NewArticle constructs an Article.
func NewArticle() *Article { return &Article{newPlainObjectSubtype(ArticleTypeURI)} }

// Document represents a document of any kind.
type Document struct{ plainObjectSubtype }

// NewDocument constructs a Document.
func NewDocument() *Document { return &Document{newPlainObjectSubtype(DocumentTypeURI)} }

// Image represents an image document.
type Image struct{ plainObjectSubtype }

// NewImage constructs an Image.
func NewImage() *Image { return &Image{newPlainObjectSubtype(ImageTypeURI)} }

// Audio represents an audio document.
type Audio struct{ plainObjectSubtype }

// NewAudio constructs an Audio.
func NewAudio() *Audio { return &Audio{newPlainObjectSubtype(AudioTypeURI)} }

// Video represents a video document.
type Video struct{ plainObjectSubtype }

// NewVideo constructs a Video.
func NewVideo() *Video { return &Video{newPlainObjectSubtype(VideoTypeURI)} }

// Page represents a Web page.
type Page struct{ plainObjectSubtype }

// NewPage constructs a Page.
func NewPage() *Page { return &Page{newPlainObjectSubtype(PageTypeURI)} }

// Event represents an event that occurs at a certain time and place.
type Event struct{ plainObjectSubtype }

// NewEvent constructs an Event.
func NewEvent() *Event { return &Event{newPlainObjectSubtype(EventTypeURI)} }

// Profile represents a "rich profile" wrapping another object
// (typically an Actor) with additional descriptive metadata.
type Profile struct {
	plainObjectSubtype
}

var propDescribes = model.NewSingularProperty("describes", as("describes"), model.Union(model.TypeExpr{EntityRoot: ObjectTypeURI}))

var profileProperties = append(append([]model.Property{}, objectProperties...), propDescribes)

// NewProfile constructs a Profile.
func NewProfile() *Profile {
	return &Profile{plainObjectSubtype{base: model.NewBase(ProfileTypeURI, DefaultContext)}}
}

// Descriptors implements model.Entity (overrides the embedded one to
// add Describes).
func (p *Profile) Descriptors() []model.Property { return profileProperties }

// SetDescribes sets the object the profile describes.
func (p *Profile) SetDescribes(item model.Item) { model.SetSingular(&p.base, propDescribes, item) }

// Place represents a physical or logical location.
var (
	propLatitude  = model.NewSingularProperty("latitude", as("latitude"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propLongitude = model.NewSingularProperty("longitude", as("longitude"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propRadius    = model.NewSingularProperty("radius", as("radius"), model.Union(model.TypeExpr{Scalar: model.ScalarInt}))
	propUnits     = model.NewSingularProperty("units", as("units"), model.Union(model.TypeExpr{Scalar: model.ScalarString}))
)

var placeProperties = append(append([]model.Property{}, objectProperties...),
	propLatitude, propLongitude, propRadius, propUnits)

// Place represents a physical or logical location.
type Place struct {
	base model.Base
}

// NewPlace constructs a Place.
func NewPlace() *Place { return &Place{base: model.NewBase(PlaceTypeURI, DefaultContext)} }

// Base implements model.Entity.
func (p *Place) Base() *model.Base { return &p.base }

// Descriptors implements model.Entity.
func (p *Place) Descriptors() []model.Property { return placeProperties }

// Relationship describes a relationship between two individuals.
var (
	propSubject      = model.NewSingularProperty("subject", as("subject"), objectOrLink)
	propRelationship = model.NewSingularProperty("relationship", as("relationship"), model.Union(model.TypeExpr{EntityRoot: ObjectTypeURI}))
)

var relationshipProperties = append(append([]model.Property{}, objectProperties...),
	propSubject, propObject, propRelationship)

// Relationship describes a relationship between two individuals (or
// between an individual and an object).
type Relationship struct {
	base model.Base
}

// NewRelationship constructs a Relationship.
func NewRelationship() *Relationship {
	return &Relationship{base: model.NewBase(RelationshipTypeURI, DefaultContext)}
}

// Base implements model.Entity.
func (r *Relationship) Base() *model.Base { return &r.base }

// Descriptors implements model.Entity.
func (r *Relationship) Descriptors() []model.Property { return relationshipProperties }

// Tombstone represents a deleted object, retaining its former type.
var (
	propFormerType = model.NewSingularProperty("formerType", as("formerType"), objectOrLink)
	propDeleted    = model.NewSingularProperty("deleted", as("deleted"), model.Union(model.TypeExpr{Scalar: model.ScalarTimestamp}))
)

var tombstoneProperties = append(append([]model.Property{}, objectProperties...),
	propFormerType, propDeleted)

// Tombstone represents a deleted object, retaining its former type and
// deletion time, per ActivityPub's recommended deletion marker.
type Tombstone struct {
	base model.Base
}

// NewTombstone constructs a Tombstone.
func NewTombstone() *Tombstone { return &Tombstone{base: model.NewBase(TombstoneTypeURI, DefaultContext)} }

// Base implements model.Entity.
func (t *Tombstone) Base() *model.Base { return &t.base }

// Descriptors implements model.Entity.
func (t *Tombstone) Descriptors() []model.Property { return tombstoneProperties }

// SetFormerType records the object's type before deletion.
func (t *Tombstone) SetFormerType(item model.Item) { model.SetSingular(&t.base, propFormerType, item) }

// SetDeleted records the deletion time.
func (t *Tombstone) SetDeleted(ts uri.Timestamp) { model.SetSingular(&t.base, propDeleted, ts) }

// Mention is a Link subtype specialized for referencing an actor
// within the content of a post.
type Mention struct {
	Link
}

// NewMention constructs a Mention.
func NewMention() *Mention {
	return &Mention{Link: Link{base: model.NewBase(MentionTypeURI, DefaultContext)}}
}
