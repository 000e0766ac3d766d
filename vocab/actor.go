package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

var (
	propInbox     = model.NewSingularProperty("inbox", as("inbox"), model.Union(model.TypeExpr{Scalar: model.ScalarURI}))
	propOutbox    = model.NewSingularProperty("outbox", as("outbox"), model.Union(model.TypeExpr{Scalar: model.ScalarURI}))
	propFollowing = model.NewSingularProperty("following", as("following"), objectOrLink)
	propFollowers = model.NewSingularProperty("followers", as("followers"), objectOrLink)
	propLiked     = model.NewSingularProperty("liked", as("liked"), objectOrLink)
	propStreams   = model.NewPluralProperty("streams", as("streams"), objectOrLink)
	propPreferredUsername = model.NewSingularProperty("preferredUsername", as("preferredUsername"), langString)
	propEndpoints = model.NewSingularProperty("endpoints", as("endpoints"), model.Union(model.TypeExpr{EntityRoot: ObjectTypeURI}))
	propManuallyApprovesFollowers = model.NewSingularProperty("manuallyApprovesFollowers", as("manuallyApprovesFollowers"), model.Union(model.TypeExpr{Scalar: model.ScalarBool}))
)

var actorOwnProperties = []model.Property{
	propInbox, propOutbox, propFollowing, propFollowers, propLiked, propStreams,
	propPreferredUsername, propEndpoints, propManuallyApprovesFollowers,
}

var actorProperties = append(append([]model.Property{}, objectProperties...), actorOwnProperties...)

// Actor is the abstract base for Person/Service/Application/Group/
// Organization. It can never itself be the @type of a concrete
// document; only its concrete subtypes are registered as
// constructible.
type Actor struct {
	base model.Base
}

// Base implements model.Entity.
func (a *Actor) Base() *model.Base { return &a.base }

// Descriptors implements model.Entity.
func (a *Actor) Descriptors() []model.Property { return actorProperties }

// SetInbox sets the actor's inbox URI.
func (a *Actor) SetInbox(u uri.URI) { model.SetSingular(&a.base, propInbox, u) }

// Inbox returns the actor's inbox URI, if set.
func (a *Actor) Inbox() (uri.URI, bool) {
	v, ok := model.ReadSingular(&a.base, propInbox)
	if !ok {
		return "", false
	}
	u, ok := v.(uri.URI)
	return u, ok
}

// SetOutbox sets the actor's outbox URI.
func (a *Actor) SetOutbox(u uri.URI) { model.SetSingular(&a.base, propOutbox, u) }

// Outbox returns the actor's outbox URI, if set.
func (a *Actor) Outbox() (uri.URI, bool) {
	v, ok := model.ReadSingular(&a.base, propOutbox)
	if !ok {
		return "", false
	}
	u, ok := v.(uri.URI)
	return u, ok
}

// SetPreferredUsername sets the actor's handle.
func (a *Actor) SetPreferredUsername(name string) {
	model.SetSingular(&a.base, propPreferredUsername, uri.NewLanguageString(name, ""))
}

// PreferredUsername returns the actor's handle, if set.
func (a *Actor) PreferredUsername() (string, bool) {
	v, ok := model.ReadSingular(&a.base, propPreferredUsername)
	if !ok {
		return "", false
	}
	ls, ok := v.(uri.LanguageString)
	if !ok {
		return "", false
	}
	return ls.Text, true
}

// SetName sets the actor's display name in the given language.
func (a *Actor) SetName(text, tag string) {
	model.SetSingular(&a.base, propName, uri.NewLanguageString(text, tag))
}

// SetSummary sets the actor's bio/summary in the given language.
func (a *Actor) SetSummary(text, tag string) {
	model.SetSingular(&a.base, propSummary, uri.NewLanguageString(text, tag))
}

// SetPublished sets the actor's account-creation timestamp.
func (a *Actor) SetPublished(t uri.Timestamp) {
	model.SetSingular(&a.base, propPublished, t)
}

// newActor is shared by every concrete Actor subtype constructor.
// Actor itself has no public constructor; it is only ever embedded.
func newActor(typeURI uri.URI) Actor {
	return Actor{base: model.NewBase(typeURI, DefaultContext)}
}

// Person is a concrete Actor subtype representing an individual.
type Person struct{ Actor }

// NewPerson constructs a Person.
func NewPerson() *Person { return &Person{Actor: newActor(PersonTypeURI)} }

// Service is a concrete Actor subtype representing a service (e.g. a bot).
type Service struct{ Actor }

// NewService constructs a Service.
func NewService() *Service { return &Service{Actor: newActor(ServiceTypeURI)} }

// Application is a concrete Actor subtype representing a software application.
type Application struct{ Actor }

// NewApplication constructs an Application.
func NewApplication() *Application { return &Application{Actor: newActor(ApplicationTypeURI)} }

// Group is a concrete Actor subtype representing a formal or informal group.
type Group struct{ Actor }

// NewGroup constructs a Group.
func NewGroup() *Group { return &Group{Actor: newActor(GroupTypeURI)} }

// Organization is a concrete Actor subtype representing an organization.
type Organization struct{ Actor }

// NewOrganization constructs an Organization.
func NewOrganization() *Organization { return &Organization{Actor: newActor(OrganizationTypeURI)} }
