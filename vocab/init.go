package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

func registerActivity(typeURI uri.URI, ctor func() *Activity) {
	model.Register(typeURI, ActivityTypeURI, false, func() model.Entity { return ctor() })
}

// init populates the global vocabulary registry (model.Register) once
// at package load; the registry is read-shared afterwards.
func init() {
	model.Register(ObjectTypeURI, model.AnyRootURI, false, func() model.Entity { return NewObject() })
	model.Register(LinkTypeURI, model.AnyRootURI, false, func() model.Entity { return NewLink() })
	model.Register(MentionTypeURI, LinkTypeURI, false, func() model.Entity { return NewMention() })

	model.Register(ActivityTypeURI, ObjectTypeURI, false, func() model.Entity { return NewGenericActivity() })
	registerActivity(CreateTypeURI, NewCreate)
	registerActivity(UpdateTypeURI, NewUpdate)
	registerActivity(DeleteTypeURI, NewDelete)
	registerActivity(FollowTypeURI, NewFollow)
	registerActivity(AcceptTypeURI, NewAccept)
	registerActivity(RejectTypeURI, NewReject)
	registerActivity(TentativeAcceptTypeURI, NewTentativeAccept)
	registerActivity(TentativeRejectTypeURI, NewTentativeReject)
	registerActivity(UndoTypeURI, NewUndo)
	registerActivity(LikeTypeURI, NewLike)
	registerActivity(AnnounceTypeURI, NewAnnounce)
	registerActivity(AddTypeURI, NewAdd)
	registerActivity(RemoveTypeURI, NewRemove)
	registerActivity(BlockTypeURI, NewBlock)
	registerActivity(FlagTypeURI, NewFlag)
	registerActivity(IgnoreTypeURI, NewIgnore)
	registerActivity(InviteTypeURI, NewInvite)
	registerActivity(JoinTypeURI, NewJoin)
	registerActivity(LeaveTypeURI, NewLeave)
	registerActivity(MoveTypeURI, NewMove)

	model.Register(IntransitiveActivityTypeURI, ActivityTypeURI, true, func() model.Entity { return newIntransitive(IntransitiveActivityTypeURI) })
	model.Register(ArriveTypeURI, IntransitiveActivityTypeURI, false, func() model.Entity { return NewArrive() })
	model.Register(TravelTypeURI, IntransitiveActivityTypeURI, false, func() model.Entity { return NewTravel() })
	model.Register(QuestionTypeURI, IntransitiveActivityTypeURI, false, func() model.Entity { return NewQuestion() })

	model.Register(CollectionTypeURI, ObjectTypeURI, false, func() model.Entity { return NewCollection() })
	model.Register(OrderedCollectionTypeURI, CollectionTypeURI, false, func() model.Entity { return NewOrderedCollection() })
	model.Register(CollectionPageTypeURI, CollectionTypeURI, false, func() model.Entity { return NewCollectionPage() })
	model.Register(OrderedCollectionPageTypeURI, OrderedCollectionTypeURI, false, func() model.Entity { return NewOrderedCollectionPage() })

	// Actor is abstract: it is registered so IsSubtypeOf(Person, Actor)
	// resolves correctly, but it is never constructed; its Entity
	// constructor is deliberately unreachable because
	// findMostSpecific skips abstract classInfo entries.
	model.Register(ActorTypeURI, ObjectTypeURI, true, func() model.Entity { return nil })
	model.Register(PersonTypeURI, ActorTypeURI, false, func() model.Entity { return NewPerson() })
	model.Register(ServiceTypeURI, ActorTypeURI, false, func() model.Entity { return NewService() })
	model.Register(ApplicationTypeURI, ActorTypeURI, false, func() model.Entity { return NewApplication() })
	model.Register(GroupTypeURI, ActorTypeURI, false, func() model.Entity { return NewGroup() })
	model.Register(OrganizationTypeURI, ActorTypeURI, false, func() model.Entity { return NewOrganization() })

	model.Register(NoteTypeURI, ObjectTypeURI, false, func() model.Entity { return NewNote() })
	model.Register(ArticleTypeURI, ObjectTypeURI, false, func() model.Entity { return NewArticle() })
	model.Register(DocumentTypeURI, ObjectTypeURI, false, func() model.Entity { return NewDocument() })
	model.Register(ImageTypeURI, DocumentTypeURI, false, func() model.Entity { return NewImage() })
	model.Register(AudioTypeURI, DocumentTypeURI, false, func() model.Entity { return NewAudio() })
	model.Register(VideoTypeURI, DocumentTypeURI, false, func() model.Entity { return NewVideo() })
	model.Register(PageTypeURI, DocumentTypeURI, false, func() model.Entity { return NewPage() })
	model.Register(EventTypeURI, ObjectTypeURI, false, func() model.Entity { return NewEvent() })
	model.Register(ProfileTypeURI, ObjectTypeURI, false, func() model.Entity { return NewProfile() })
	model.Register(PlaceTypeURI, ObjectTypeURI, false, func() model.Entity { return NewPlace() })
	model.Register(RelationshipTypeURI, ObjectTypeURI, false, func() model.Entity { return NewRelationship() })
	model.Register(TombstoneTypeURI, ObjectTypeURI, false, func() model.Entity { return NewTombstone() })
}
