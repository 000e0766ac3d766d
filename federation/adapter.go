package federation

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/routemap"
	"github.com/fedikit/fedikit/uri"
	"github.com/fedikit/fedikit/vocab"
	"github.com/fedikit/fedikit/webfinger"
)

// RequestAdapter drives the per-request state machine: Decode
// (performed by the caller into a Request), Negotiate, Match, then the
// per-endpoint flow and JSON-LD rendering.
type RequestAdapter struct {
	Server *Server
	Loader jsonld.DocumentLoader
	Hooks  Hooks
}

// NewRequestAdapter returns a RequestAdapter with the default
// plain-text error hooks.
func NewRequestAdapter(server *Server, loader jsonld.DocumentLoader) *RequestAdapter {
	return &RequestAdapter{Server: server, Loader: loader, Hooks: defaultHooks()}
}

// Handle runs req through the full state machine and returns the
// response to send.
func (a *RequestAdapter) Handle(ctx context.Context, req Request) Response {
	if !negotiate(req.Header.Get("Accept")) {
		return a.Hooks.NotAcceptable(req)
	}

	adapter := a.Server.Routes().Bind(req.Scheme, req.Host, req.ScriptRoot)
	pathInfo := stripScriptRoot(req.Path, req.ScriptRoot)
	endpoint, args, err := adapter.Match(req.Method, pathInfo)
	switch {
	case err == routemap.ErrMethodNotAllowed:
		return a.Hooks.MethodNotAllowed(req)
	case err == routemap.ErrNotRouted:
		return a.Hooks.NotFound(req)
	case err != nil:
		slog.Error("federation: route match failed", "path", pathInfo, "error", err)
		return a.Hooks.NotFound(req)
	}

	switch endpoint {
	case EndpointWebFinger:
		return a.webFingerFlow(ctx, req, adapter)
	case EndpointActor:
		return a.actorFlow(ctx, req, args["handle"])
	case EndpointOutbox:
		return a.outboxFlow(ctx, req, args["handle"], adapter)
	default:
		return a.Hooks.NotFound(req)
	}
}

func stripScriptRoot(path, scriptRoot string) string {
	scriptRoot = strings.TrimSuffix(scriptRoot, "/")
	if scriptRoot == "" {
		return path
	}
	return strings.TrimPrefix(path, scriptRoot)
}

var webFingerResourceRe = regexp.MustCompile(`^acct:([^@]+)@(.+)$`)

// webFingerFlow answers acct: resource lookups with a JRD document.
func (a *RequestAdapter) webFingerFlow(ctx context.Context, req Request, adapter *routemap.Adapter) Response {
	query, _ := url.ParseQuery(req.RawQuery)
	resource := query.Get("resource")
	if resource == "" {
		return textResponse(http.StatusBadRequest, "Missing resource parameter")
	}

	m := webFingerResourceRe.FindStringSubmatch(resource)
	if m == nil || m[2] != req.Host {
		return a.Hooks.NotFound(req)
	}
	handle := m[1]

	if a.Server.actorDispatcher == nil {
		return a.Hooks.NotFound(req)
	}
	actor, ok, err := a.Server.actorDispatcher(ctx, handle)
	if err != nil {
		return a.dispatcherError(req, "actor", err)
	}
	if !ok {
		return a.Hooks.NotFound(req)
	}

	actorURL, err := adapter.Build(EndpointActor, map[string]interface{}{"handle": handle})
	if err != nil {
		return a.dispatcherError(req, "build actor url", err)
	}

	jrd := webfinger.ResourceDescriptor{
		Subject: resource,
		Aliases: []string{actorURL},
		Links: []webfinger.Link{
			{Rel: "self", Type: "application/activity+json", Href: actorURL},
		},
	}
	jrd.Links = append(jrd.Links, webFingerURLLinks(actor)...)

	body, err := json.Marshal(jrd)
	if err != nil {
		return a.dispatcherError(req, "marshal jrd", err)
	}
	h := make(http.Header)
	h.Set("Content-Type", webfinger.ContentType)
	return Response{Status: http.StatusOK, Header: h, Body: body}
}

// webFingerURLLinks builds one JRD link per value of actor's "urls"
// property.
func webFingerURLLinks(actor model.Entity) []webfinger.Link {
	prop, ok := model.FindProperty(actor, "urls")
	if !ok {
		return nil
	}
	items, _ := prop.Read(actor.Base()).([]model.Item)
	var links []webfinger.Link
	for _, item := range items {
		if link, ok := item.(*vocab.Link); ok {
			rel := "http://webfinger.net/rel/profile-page"
			if rels := link.Rel(); len(rels) > 0 {
				rel = rels[0]
			}
			href, _ := link.Href()
			mt, _ := link.MediaType()
			jrdLink := webfinger.Link{Rel: rel, Href: string(href), Type: string(mt)}
			// A Link's name may carry host-application markup (e.g. an
			// <em>-highlighted profile label); JRD titles are plain
			// text, so it is projected down via PlainText rather than
			// passed through verbatim.
			if name, ok := link.Name(); ok {
				tag := name.Tag.String()
				if tag == "" {
					tag = "und"
				}
				jrdLink.Titles = map[string]string{tag: vocab.PlainText(name.Text)}
			}
			links = append(links, jrdLink)
			continue
		}
		if u, ok := item.(uri.URI); ok {
			links = append(links, webfinger.Link{
				Rel:  "http://webfinger.net/rel/profile-page",
				Href: string(u),
				Type: "application/activity+json",
			})
			continue
		}
		if ref, ok := item.(*model.Ref); ok {
			links = append(links, webfinger.Link{
				Rel:  "http://webfinger.net/rel/profile-page",
				Href: string(ref.URI),
				Type: "application/activity+json",
			})
		}
	}
	return links
}

// actorFlow renders the actor document for a local handle.
func (a *RequestAdapter) actorFlow(ctx context.Context, req Request, handle string) Response {
	if a.Server.actorDispatcher == nil {
		return a.Hooks.NotFound(req)
	}
	actor, ok, err := a.Server.actorDispatcher(ctx, handle)
	if err != nil {
		return a.dispatcherError(req, "actor", err)
	}
	if !ok {
		return a.Hooks.NotFound(req)
	}
	return a.renderCompacted(ctx, req, actor)
}

// outboxFlow renders either the outbox index (no cursor) or one page
// of it (cursor present).
func (a *RequestAdapter) outboxFlow(ctx context.Context, req Request, handle string, adapter *routemap.Adapter) Response {
	if a.Server.outboxDispatcher == nil {
		return a.Hooks.NotFound(req)
	}
	query, _ := url.ParseQuery(req.RawQuery)
	cursor, hasCursor := firstValue(query, "cursor")

	outboxURL, err := adapter.Build(EndpointOutbox, map[string]interface{}{"handle": handle})
	if err != nil {
		return a.dispatcherError(req, "build outbox url", err)
	}

	if hasCursor {
		return a.outboxPageResponse(ctx, req, handle, cursor, outboxURL)
	}
	return a.outboxIndexResponse(ctx, req, handle, outboxURL)
}

func firstValue(q url.Values, key string) (string, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

func (a *RequestAdapter) outboxIndexResponse(ctx context.Context, req Request, handle, outboxURL string) Response {
	var firstCursor, lastCursor string
	var hasFirst, hasLast, hasTotal bool
	var total int

	if a.Server.outboxFirst != nil {
		c, ok, err := a.Server.outboxFirst(ctx, handle)
		if err != nil {
			return a.dispatcherError(req, "outbox first cursor", err)
		}
		firstCursor, hasFirst = c, ok
	}
	if a.Server.outboxLast != nil {
		c, ok, err := a.Server.outboxLast(ctx, handle)
		if err != nil {
			return a.dispatcherError(req, "outbox last cursor", err)
		}
		lastCursor, hasLast = c, ok
	}
	if a.Server.outboxCounter != nil {
		n, ok, err := a.Server.outboxCounter(ctx, handle)
		if err != nil {
			return a.dispatcherError(req, "outbox counter", err)
		}
		total, hasTotal = n, ok
	}

	collection := vocab.NewOrderedCollection()
	if hasTotal {
		collection.SetTotalItems(total)
	}

	if !hasFirst {
		page, ok, err := a.Server.outboxDispatcher(ctx, handle, nil)
		if err != nil {
			return a.dispatcherError(req, "outbox", err)
		}
		if !ok {
			return a.Hooks.NotFound(req)
		}
		collection.AddOrderedItems(itemsOf(page.Items)...)
		return a.renderCompacted(ctx, req, collection)
	}

	collection.SetFirst(uri.URI(outboxURL + "?cursor=" + routemap.EncodeQueryValue(firstCursor)))
	if hasLast {
		collection.SetLast(uri.URI(outboxURL + "?cursor=" + routemap.EncodeQueryValue(lastCursor)))
	}
	return a.renderCompacted(ctx, req, collection)
}

func (a *RequestAdapter) outboxPageResponse(ctx context.Context, req Request, handle, cursor, outboxURL string) Response {
	page, ok, err := a.Server.outboxDispatcher(ctx, handle, &cursor)
	if err != nil {
		return a.dispatcherError(req, "outbox", err)
	}
	if !ok {
		return a.Hooks.NotFound(req)
	}

	pageEntity := vocab.NewOrderedCollectionPage()
	if page.PrevCursor != nil {
		pageEntity.SetPrev(uri.URI(outboxURL + "?cursor=" + routemap.EncodeQueryValue(*page.PrevCursor)))
	}
	if page.NextCursor != nil {
		pageEntity.SetNext(uri.URI(outboxURL + "?cursor=" + routemap.EncodeQueryValue(*page.NextCursor)))
	}
	pageEntity.AddOrderedItems(itemsOf(page.Items)...)
	return a.renderCompacted(ctx, req, pageEntity)
}

func itemsOf(entities []model.Entity) []model.Item {
	items := make([]model.Item, len(entities))
	for i, e := range entities {
		items[i] = e
	}
	return items
}

// renderCompacted serializes e as compacted JSON-LD with the
// ActivityStreams profile content type.
func (a *RequestAdapter) renderCompacted(ctx context.Context, req Request, e model.Entity) Response {
	doc, err := model.Serialize(ctx, e, false, a.Loader)
	if err != nil {
		return a.dispatcherError(req, "serialize", err)
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return a.dispatcherError(req, "marshal", err)
	}
	h := make(http.Header)
	h.Set("Content-Type", ActivityStreamsProfileType)
	return Response{Status: http.StatusOK, Header: h, Body: body}
}

// dispatcherError logs and maps an unexpected dispatcher/loader/codec
// failure to a 500.
func (a *RequestAdapter) dispatcherError(req Request, stage string, err error) Response {
	slog.Error("federation: request failed", "stage", stage, "path", req.Path, "error", err)
	return textResponse(http.StatusInternalServerError, "Internal Server Error")
}
