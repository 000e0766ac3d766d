package vocab

import (
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
)

// intransitiveOwnProperties mirrors activityOwnProperties minus
// object/objects: an IntransitiveActivity's subject is implicit in
// actor, per the ActivityStreams vocabulary.
var intransitiveOwnProperties = []model.Property{
	propActor, propActors, propTarget, propTargets,
	propResult, propResults, propOrigin, propOrigins, propInstrument, propInstruments,
}

var intransitiveProperties = append(append([]model.Property{}, objectProperties...), intransitiveOwnProperties...)

// IntransitiveActivity is an Activity that has no object, e.g. Arrive
// and Travel.
type IntransitiveActivity struct {
	base model.Base
}

func newIntransitive(typeURI uri.URI) *IntransitiveActivity {
	return &IntransitiveActivity{base: model.NewBase(typeURI, DefaultContext)}
}

// Base implements model.Entity.
func (a *IntransitiveActivity) Base() *model.Base { return &a.base }

// Descriptors implements model.Entity.
func (a *IntransitiveActivity) Descriptors() []model.Property { return intransitiveProperties }

// NewArrive constructs an Arrive activity.
func NewArrive() *IntransitiveActivity { return newIntransitive(ArriveTypeURI) }

// NewTravel constructs a Travel activity.
func NewTravel() *IntransitiveActivity { return newIntransitive(TravelTypeURI) }

var (
	propOneOf = model.NewPluralProperty("oneOf", as("oneOf"), objectOrLink)
	propAnyOf = model.NewPluralProperty("anyOf", as("anyOf"), objectOrLink)
	propClosed = model.NewSingularProperty("closed", as("closed"), model.Union(
		model.TypeExpr{Scalar: model.ScalarBool},
		model.TypeExpr{Scalar: model.ScalarTimestamp},
		model.TypeExpr{EntityRoot: ObjectTypeURI},
		model.TypeExpr{EntityRoot: LinkTypeURI},
	))
)

var questionProperties = append(append([]model.Property{}, intransitiveProperties...), propOneOf, propAnyOf, propClosed)

// Question represents a question being asked, typically an ActivityPub
// poll, with either exclusive (oneOf) or inclusive (anyOf) options.
type Question struct {
	base model.Base
}

// NewQuestion constructs a Question.
func NewQuestion() *Question {
	return &Question{base: model.NewBase(QuestionTypeURI, DefaultContext)}
}

// Base implements model.Entity.
func (q *Question) Base() *model.Base { return &q.base }

// Descriptors implements model.Entity.
func (q *Question) Descriptors() []model.Property { return questionProperties }

// AddOneOf adds an exclusive poll option.
func (q *Question) AddOneOf(items ...model.Item) { model.AddPlural(&q.base, propOneOf, items...) }

// AddAnyOf adds an inclusive poll option.
func (q *Question) AddAnyOf(items ...model.Item) { model.AddPlural(&q.base, propAnyOf, items...) }
