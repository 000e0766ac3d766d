package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

// objectOrLink is the recurring Object|Link union most Object
// properties accept.
var objectOrLink = model.Union(
	model.TypeExpr{EntityRoot: ObjectTypeURI},
	model.TypeExpr{EntityRoot: LinkTypeURI},
)

var langString = model.Union(model.TypeExpr{Scalar: model.ScalarLanguageString})

// Object-level property descriptors, shared by every Object subclass.
var (
	propID           = model.NewIDProperty()
	propAttachment   = model.NewSingularProperty("attachment", as("attachment"), objectOrLink)
	propAttachments  = model.NewPluralProperty("attachments", as("attachment"), objectOrLink)
	propAttributedTo = model.NewSingularProperty("attributedTo", as("attributedTo"), objectOrLink,
		model.WithSubproperties(as("actor")))
	propAttributedTos = model.NewPluralProperty("attributedTos", as("attributedTo"), objectOrLink,
		model.WithSubproperties(as("actor")))
	propAudience  = model.NewSingularProperty("audience", as("audience"), objectOrLink)
	propAudiences = model.NewPluralProperty("audiences", as("audience"), objectOrLink)
	propContent   = model.NewSingularProperty("content", as("content"), langString)
	propContents  = model.NewPluralProperty("contents", as("content"), langString)
	propContext   = model.NewSingularProperty("context", as("context"), objectOrLink)
	propContexts  = model.NewPluralProperty("contexts", as("context"), objectOrLink)
	propName      = model.NewSingularProperty("name", as("name"), langString)
	propNames     = model.NewPluralProperty("names", as("name"), langString)
	propEndTime   = model.NewSingularProperty("endTime", as("endTime"), model.Union(model.TypeExpr{Scalar: model.ScalarTimestamp}))
	propStartTime = model.NewSingularProperty("startTime", as("startTime"), model.Union(model.TypeExpr{Scalar: model.ScalarTimestamp}))
	propPublished = model.NewSingularProperty("published", as("published"), model.Union(model.TypeExpr{Scalar: model.ScalarTimestamp}))
	propUpdated   = model.NewSingularProperty("updated", as("updated"), model.Union(model.TypeExpr{Scalar: model.ScalarTimestamp}))
	propDuration  = model.NewSingularProperty("duration", as("duration"), model.Union(model.TypeExpr{Scalar: model.ScalarDuration}))
	propIcon      = model.NewSingularProperty("icon", as("icon"), objectOrLink)
	propIcons     = model.NewPluralProperty("icons", as("icon"), objectOrLink)
	propImage     = model.NewSingularProperty("image", as("image"), objectOrLink)
	propImages    = model.NewPluralProperty("images", as("image"), objectOrLink)
	propInReplyTo = model.NewSingularProperty("inReplyTo", as("inReplyTo"), objectOrLink)
	propInReplyTos = model.NewPluralProperty("inReplyTos", as("inReplyTo"), objectOrLink)
	propLocation   = model.NewSingularProperty("location", as("location"), objectOrLink)
	propLocations  = model.NewPluralProperty("locations", as("location"), objectOrLink)
	propMediaType  = model.NewSingularProperty("mediaType", as("mediaType"), model.Union(model.TypeExpr{Scalar: model.ScalarMediaType}))
	propPreview    = model.NewSingularProperty("preview", as("preview"), objectOrLink)
	propPreviews   = model.NewPluralProperty("previews", as("preview"), objectOrLink)
	propReplies    = model.NewSingularProperty("replies", as("replies"), model.Union(model.TypeExpr{EntityRoot: CollectionTypeURI}))
	propSensitive  = model.NewSingularProperty("sensitive", as("sensitive"), model.Union(model.TypeExpr{Scalar: model.ScalarBool}))
	propSource     = model.NewSingularProperty("source", as("source"), model.Union(model.TypeExpr{EntityRoot: ObjectTypeURI}))
	propSummary    = model.NewSingularProperty("summary", as("summary"), langString)
	propSummaries  = model.NewPluralProperty("summaries", as("summary"), langString)
	propTag        = model.NewSingularProperty("tag", as("tag"), objectOrLink)
	propTags       = model.NewPluralProperty("tags", as("tag"), objectOrLink)
	propTo         = model.NewPluralProperty("to", as("to"), objectOrLink)
	propBto        = model.NewPluralProperty("bto", as("bto"), objectOrLink)
	propCc         = model.NewPluralProperty("cc", as("cc"), objectOrLink)
	propBcc        = model.NewPluralProperty("bcc", as("bcc"), objectOrLink)
	propURL        = model.NewSingularProperty("url", as("url"), model.Union(
		model.TypeExpr{Scalar: model.ScalarURI},
		model.TypeExpr{EntityRoot: LinkTypeURI},
	))
	propURLs = model.NewPluralProperty("urls", as("url"), model.Union(
		model.TypeExpr{Scalar: model.ScalarURI},
		model.TypeExpr{EntityRoot: LinkTypeURI},
	))
	propLikes  = model.NewSingularProperty("likes", as("likes"), model.Union(model.TypeExpr{EntityRoot: CollectionTypeURI}))
	propShares = model.NewSingularProperty("shares", as("shares"), model.Union(model.TypeExpr{EntityRoot: CollectionTypeURI}))
)

// objectProperties is the full Object-level descriptor set; every
// vocabulary subclass's Descriptors() starts from this slice.
var objectProperties = []model.Property{
	propID, propAttachment, propAttachments, propAttributedTo, propAttributedTos,
	propAudience, propAudiences, propContent, propContents, propContext, propContexts,
	propName, propNames, propEndTime, propStartTime, propPublished, propUpdated,
	propDuration, propIcon, propIcons, propImage, propImages, propInReplyTo, propInReplyTos,
	propLocation, propLocations, propMediaType, propPreview, propPreviews, propReplies,
	propSensitive, propSource, propSummary, propSummaries, propTag, propTags,
	propTo, propBto, propCc, propBcc, propURL, propURLs, propLikes, propShares,
}

// Object is the base type for most ActivityStreams vocabulary classes.
type Object struct {
	base model.Base
}

// NewObject constructs a zero-value Object. Application code typically
// constructs a more specific subtype (Note, Person, ...) instead.
func NewObject() *Object {
	return &Object{base: model.NewBase(ObjectTypeURI, DefaultContext)}
}

// Base implements model.Entity.
func (o *Object) Base() *model.Base { return &o.base }

// Descriptors implements model.Entity.
func (o *Object) Descriptors() []model.Property { return objectProperties }

// --- typed accessors (a representative subset; the remaining
// properties follow the identical Read/SetSingular/AddPlural pattern
// and are added by subtypes as needed) ---

// Name returns the object's singular name, if set.
func (o *Object) Name() (uri.LanguageString, bool) {
	v, ok := model.ReadSingular(&o.base, propName)
	if !ok {
		return uri.LanguageString{}, false
	}
	ls, ok := v.(uri.LanguageString)
	return ls, ok
}

// SetName sets the object's name in the given language (tag may be empty).
func (o *Object) SetName(text, tag string) {
	model.SetSingular(&o.base, propName, uri.NewLanguageString(text, tag))
}

// SetContent sets the object's content in the given language.
func (o *Object) SetContent(text, tag string) {
	model.SetSingular(&o.base, propContent, uri.NewLanguageString(text, tag))
}

// SetSummary sets the object's summary in the given language.
func (o *Object) SetSummary(text, tag string) {
	model.SetSingular(&o.base, propSummary, uri.NewLanguageString(text, tag))
}

// SetPublished sets the object's published timestamp.
func (o *Object) SetPublished(t uri.Timestamp) {
	model.SetSingular(&o.base, propPublished, t)
}

// SetUpdated sets the object's updated timestamp.
func (o *Object) SetUpdated(t uri.Timestamp) {
	model.SetSingular(&o.base, propUpdated, t)
}

func (o *Object) AttributedTo() (model.Item, bool) {
	return model.ReadSingular(&o.base, propAttributedTo)
}

func (o *Object) AttributedTos() []model.Item {
	return model.ReadPlural(&o.base, propAttributedTos)
}

func (o *Object) SetAttributedTo(item model.Item) {
	model.SetSingular(&o.base, propAttributedTo, item)
}

func (o *Object) To() []model.Item  { return model.ReadPlural(&o.base, propTo) }
func (o *Object) Cc() []model.Item  { return model.ReadPlural(&o.base, propCc) }
func (o *Object) AddTo(items ...model.Item)  { model.AddPlural(&o.base, propTo, items...) }
func (o *Object) AddCc(items ...model.Item)  { model.AddPlural(&o.base, propCc, items...) }

func (o *Object) SetURL(u model.Item) { model.SetSingular(&o.base, propURL, u) }

func (o *Object) SetSensitive(b bool) { model.SetSingular(&o.base, propSensitive, b) }
