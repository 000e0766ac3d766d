// Package federation implements the server registry and request
// adapter state machine that binds user-supplied dispatcher callables
// to the fediverse endpoints (WebFinger, actor documents, outbox
// collections).
package federation

import (
	"context"

	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/routemap"
)

// ActorDispatcher resolves a local handle to an actor entity. ok=false
// (with a nil error) means "no such actor"; a non-nil error is a
// dispatcher failure.
type ActorDispatcher func(ctx context.Context, handle string) (actor model.Entity, ok bool, err error)

// OutboxPage is one page of an actor's outbox.
type OutboxPage struct {
	Items      []model.Entity
	PrevCursor *string
	NextCursor *string
}

// OutboxDispatcher yields a page of an actor's outbox. cursor is nil
// for the first (unpaginated) page.
type OutboxDispatcher func(ctx context.Context, handle string, cursor *string) (page *OutboxPage, ok bool, err error)

// OutboxCounter reports the total item count of an actor's outbox.
type OutboxCounter func(ctx context.Context, handle string) (total int, ok bool, err error)

// CursorSupplier reports the first or last page cursor of an actor's
// outbox.
type CursorSupplier func(ctx context.Context, handle string) (cursor string, ok bool, err error)

// Endpoint names used both as routemap endpoint ids and as map keys
// into the server's registered handles.
const (
	EndpointWebFinger = "webfinger"
	EndpointActor     = "actor"
	EndpointOutbox    = "outbox"
)

// Server holds the optional dispatcher handles. Registration functions
// are the only way these handles are set; a second registration for
// the same role replaces the previous one. It is effectively immutable
// once request handling begins; Clone produces an independent writable
// copy.
type Server struct {
	routes *routemap.Map

	actorDispatcher  ActorDispatcher
	outboxDispatcher OutboxDispatcher
	outboxCounter    OutboxCounter
	outboxFirst      CursorSupplier
	outboxLast       CursorSupplier
}

// NewServer returns a Server with the WebFinger endpoint
// pre-registered.
func NewServer() *Server {
	s := &Server{routes: routemap.New()}
	must(s.routes.AddRule(routemap.Rule{
		Pattern:  "/.well-known/webfinger",
		Endpoint: EndpointWebFinger,
		Methods:  []string{"GET"},
	}))
	return s
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

var (
	defaultActorPattern  = "/actors/<handle>"
	defaultOutboxPattern = "/actors/<handle>/outbox"
)

// RegisterActorDispatcher sets the actor dispatcher and adds its URL
// pattern to the route map under the "actor" endpoint name.
func (s *Server) RegisterActorDispatcher(d ActorDispatcher) error {
	s.actorDispatcher = d
	return s.routes.ReplaceRule(routemap.Rule{
		Pattern:  defaultActorPattern,
		Endpoint: EndpointActor,
		Methods:  []string{"GET"},
	})
}

// RegisterOutboxDispatcher sets the outbox dispatcher and adds its URL
// pattern to the route map under the "outbox" endpoint name.
func (s *Server) RegisterOutboxDispatcher(d OutboxDispatcher) error {
	s.outboxDispatcher = d
	return s.routes.ReplaceRule(routemap.Rule{
		Pattern:  defaultOutboxPattern,
		Endpoint: EndpointOutbox,
		Methods:  []string{"GET"},
	})
}

// RegisterOutboxCounter sets the outbox item-count supplier.
func (s *Server) RegisterOutboxCounter(c OutboxCounter) { s.outboxCounter = c }

// RegisterOutboxFirstCursor sets the outbox first-page cursor supplier.
func (s *Server) RegisterOutboxFirstCursor(c CursorSupplier) { s.outboxFirst = c }

// RegisterOutboxLastCursor sets the outbox last-page cursor supplier.
func (s *Server) RegisterOutboxLastCursor(c CursorSupplier) { s.outboxLast = c }

// Routes returns the server's route map, for binding to a request's
// decoded scheme/host/script-root.
func (s *Server) Routes() *routemap.Map { return s.routes }

// Clone returns an independent Server with the same handles and a
// copy of the rule set (but no bindings).
func (s *Server) Clone() *Server {
	return &Server{
		routes:           s.routes.Clone(),
		actorDispatcher:  s.actorDispatcher,
		outboxDispatcher: s.outboxDispatcher,
		outboxCounter:    s.outboxCounter,
		outboxFirst:      s.outboxFirst,
		outboxLast:       s.outboxLast,
	}
}
