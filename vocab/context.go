// Package vocab implements the ActivityStreams vocabulary schema on
// top of model's declarative descriptors: Object, Link, the Activity
// family, the Collection family, and the Actor family.
package vocab

import "github.com/fedikit/fedikit/uri"

// Namespace is the ActivityStreams 2.0 vocabulary namespace.
const Namespace = "https://www.w3.org/ns/activitystreams#"

// ContextURI is the default JSON-LD context for every vocabulary type
// declared in this package, unless overridden.
const ContextURI uri.URI = "https://www.w3.org/ns/activitystreams"

// DefaultContext is ContextURI as a plain string, the shape the
// JSON-LD compaction algorithm expects for a context value. Every
// vocabulary type's model.NewBase call uses this.
var DefaultContext interface{} = string(ContextURI)

// PublicURI is the special "as:Public" collection URI used to address
// an activity to everyone.
const PublicURI uri.URI = "https://www.w3.org/ns/activitystreams#Public"

func as(name string) uri.URI { return uri.URI(Namespace + name) }

// Type URIs for every vocabulary class declared in this package.
var (
	ObjectTypeURI                 = as("Object")
	LinkTypeURI                   = as("Link")
	ActivityTypeURI               = as("Activity")
	IntransitiveActivityTypeURI   = as("IntransitiveActivity")
	QuestionTypeURI                = as("Question")
	ArriveTypeURI                  = as("Arrive")
	TravelTypeURI                  = as("Travel")
	CreateTypeURI                  = as("Create")
	UpdateTypeURI                  = as("Update")
	DeleteTypeURI                  = as("Delete")
	FollowTypeURI                  = as("Follow")
	AcceptTypeURI                  = as("Accept")
	RejectTypeURI                  = as("Reject")
	TentativeAcceptTypeURI         = as("TentativeAccept")
	TentativeRejectTypeURI         = as("TentativeReject")
	UndoTypeURI                    = as("Undo")
	LikeTypeURI                    = as("Like")
	AnnounceTypeURI                = as("Announce")
	AddTypeURI                     = as("Add")
	RemoveTypeURI                  = as("Remove")
	BlockTypeURI                   = as("Block")
	FlagTypeURI                    = as("Flag")
	IgnoreTypeURI                  = as("Ignore")
	InviteTypeURI                  = as("Invite")
	JoinTypeURI                    = as("Join")
	LeaveTypeURI                   = as("Leave")
	MoveTypeURI                    = as("Move")
	CollectionTypeURI              = as("Collection")
	OrderedCollectionTypeURI       = as("OrderedCollection")
	CollectionPageTypeURI          = as("CollectionPage")
	OrderedCollectionPageTypeURI   = as("OrderedCollectionPage")
	ActorTypeURI                   = as("Actor") // abstract; never a concrete @type
	PersonTypeURI                  = as("Person")
	ServiceTypeURI                 = as("Service")
	ApplicationTypeURI             = as("Application")
	GroupTypeURI                   = as("Group")
	OrganizationTypeURI            = as("Organization")
	NoteTypeURI                    = as("Note")
	ArticleTypeURI                 = as("Article")
	DocumentTypeURI                = as("Document")
	ImageTypeURI                   = as("Image")
	AudioTypeURI                   = as("Audio")
	VideoTypeURI                   = as("Video")
	PageTypeURI                    = as("Page")
	EventTypeURI                   = as("Event")
	PlaceTypeURI                   = as("Place")
	ProfileTypeURI                 = as("Profile")
	RelationshipTypeURI            = as("Relationship")
	TombstoneTypeURI               = as("Tombstone")
	MentionTypeURI                  = as("Mention")
)
