package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

var (
	propActor   = model.NewSingularProperty("actor", as("actor"), objectOrLink)
	propActors  = model.NewPluralProperty("actors", as("actor"), objectOrLink)
	propObject  = model.NewSingularProperty("object", as("object"), objectOrLink)
	propObjects = model.NewPluralProperty("objects", as("object"), objectOrLink)
	propTarget  = model.NewSingularProperty("target", as("target"), objectOrLink)
	propTargets = model.NewPluralProperty("targets", as("target"), objectOrLink)
	propResult  = model.NewSingularProperty("result", as("result"), objectOrLink)
	propResults = model.NewPluralProperty("results", as("result"), objectOrLink)
	propOrigin  = model.NewSingularProperty("origin", as("origin"), objectOrLink)
	propOrigins = model.NewPluralProperty("origins", as("origin"), objectOrLink)
	propInstrument  = model.NewSingularProperty("instrument", as("instrument"), objectOrLink)
	propInstruments = model.NewPluralProperty("instruments", as("instrument"), objectOrLink)
)

// activityOwnProperties are the properties Activity adds on top of
// Object.
var activityOwnProperties = []model.Property{
	propActor, propActors, propObject, propObjects, propTarget, propTargets,
	propResult, propResults, propOrigin, propOrigins, propInstrument, propInstruments,
}

var activityProperties = append(append([]model.Property{}, objectProperties...), activityOwnProperties...)

// Activity is the base type for all actions performed by actors
// against or with objects.
type Activity struct {
	base model.Base
}

// Base implements model.Entity.
func (a *Activity) Base() *model.Base { return &a.base }

func newActivity(typeURI uri.URI) *Activity {
	return &Activity{base: model.NewBase(typeURI, DefaultContext)}
}

// Descriptors implements model.Entity.
func (a *Activity) Descriptors() []model.Property { return activityProperties }

// SetActor sets the activity's actor.
func (a *Activity) SetActor(item model.Item) { model.SetSingular(&a.base, propActor, item) }

// Actor returns the activity's actor, if set.
func (a *Activity) Actor() (model.Item, bool) { return model.ReadSingular(&a.base, propActor) }

// SetObject sets the activity's object.
func (a *Activity) SetObject(item model.Item) { model.SetSingular(&a.base, propObject, item) }

// Object returns the activity's object, if set.
func (a *Activity) Object() (model.Item, bool) { return model.ReadSingular(&a.base, propObject) }

// SetTarget sets the activity's target.
func (a *Activity) SetTarget(item model.Item) { model.SetSingular(&a.base, propTarget, item) }

// SetPublished sets the activity's published timestamp.
func (a *Activity) SetPublished(t uri.Timestamp) {
	model.SetSingular(&a.base, propPublished, t)
}

// Generic constructors for the concrete Activity subtypes named in
// the ActivityPub Create/Update/Delete/Follow/Accept/... family. Each
// is a distinct registered type so parsing resolves @type precisely,
// but none adds properties beyond Activity's.

// NewCreate constructs a Create activity.
func NewCreate() *Activity { return newActivity(CreateTypeURI) }

// NewUpdate constructs an Update activity.
func NewUpdate() *Activity { return newActivity(UpdateTypeURI) }

// NewDelete constructs a Delete activity.
func NewDelete() *Activity { return newActivity(DeleteTypeURI) }

// NewFollow constructs a Follow activity.
func NewFollow() *Activity { return newActivity(FollowTypeURI) }

// NewAccept constructs an Accept activity.
func NewAccept() *Activity { return newActivity(AcceptTypeURI) }

// NewReject constructs a Reject activity.
func NewReject() *Activity { return newActivity(RejectTypeURI) }

// NewTentativeAccept constructs a TentativeAccept activity.
func NewTentativeAccept() *Activity { return newActivity(TentativeAcceptTypeURI) }

// NewTentativeReject constructs a TentativeReject activity.
func NewTentativeReject() *Activity { return newActivity(TentativeRejectTypeURI) }

// NewUndo constructs an Undo activity.
func NewUndo() *Activity { return newActivity(UndoTypeURI) }

// NewLike constructs a Like activity.
func NewLike() *Activity { return newActivity(LikeTypeURI) }

// NewAnnounce constructs an Announce activity.
func NewAnnounce() *Activity { return newActivity(AnnounceTypeURI) }

// NewAdd constructs an Add activity.
func NewAdd() *Activity { return newActivity(AddTypeURI) }

// NewRemove constructs a Remove activity.
func NewRemove() *Activity { return newActivity(RemoveTypeURI) }

// NewBlock constructs a Block activity.
func NewBlock() *Activity { return newActivity(BlockTypeURI) }

// NewFlag constructs a Flag activity.
func NewFlag() *Activity { return newActivity(FlagTypeURI) }

// NewIgnore constructs an Ignore activity.
func NewIgnore() *Activity { return newActivity(IgnoreTypeURI) }

// NewInvite constructs an Invite activity.
func NewInvite() *Activity { return newActivity(InviteTypeURI) }

// NewJoin constructs a Join activity.
func NewJoin() *Activity { return newActivity(JoinTypeURI) }

// NewLeave constructs a Leave activity.
func NewLeave() *Activity { return newActivity(LeaveTypeURI) }

// NewMove constructs a Move activity.
func NewMove() *Activity { return newActivity(MoveTypeURI) }

// NewGenericActivity constructs a plain Activity (the abstract
// Activity type is registered concrete here for simplicity, unlike
// Actor, since the vocabulary does not forbid a bare Activity @type).
func NewGenericActivity() *Activity { return newActivity(ActivityTypeURI) }
