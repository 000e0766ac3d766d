// fedikit-demo is a worked example host application for the fedikit
// toolkit: a single local actor that serves WebFinger discovery, an
// actor document, and a paginated outbox of notes it authors itself,
// backed by the store package. It exists to exercise every piece of
// the toolkit end to end.
//
// Usage:
//
//	export FEDIKIT_DOMAIN=fedikit.example
//	./fedikit-demo
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/fedikit/fedikit/federation"
	"github.com/fedikit/fedikit/internal/config"
	"github.com/fedikit/fedikit/internal/store"
	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
	"github.com/fedikit/fedikit/vocab"
)

const demoHandle = "demo"

func main() {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	slog.Info("starting fedikit-demo")

	cfg := config.Load()
	slog.Info("config loaded", "domain", cfg.Domain, "database", cfg.DatabaseURL)

	db, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open store", "error", err, "url", cfg.DatabaseURL)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		slog.Error("store migration failed", "error", err)
		os.Exit(1)
	}

	if err := seedDemoActor(db); err != nil {
		slog.Error("failed to seed demo actor", "error", err)
		os.Exit(1)
	}

	httpLoader := jsonld.NewHTTPLoader()
	httpLoader.Client.Timeout = cfg.LoaderTimeout
	loader := jsonld.NewCachingLoader(httpLoader, cfg.LoaderCacheTTL)

	srv := federation.NewServer()
	dispatchers := &demoDispatchers{cfg: cfg, store: db}
	if err := srv.RegisterActorDispatcher(dispatchers.actor); err != nil {
		slog.Error("failed to register actor dispatcher", "error", err)
		os.Exit(1)
	}
	if err := srv.RegisterOutboxDispatcher(dispatchers.outbox); err != nil {
		slog.Error("failed to register outbox dispatcher", "error", err)
		os.Exit(1)
	}
	srv.RegisterOutboxCounter(dispatchers.outboxCount)
	srv.RegisterOutboxFirstCursor(dispatchers.outboxFirstCursor)
	srv.RegisterOutboxLastCursor(dispatchers.outboxLastCursor)

	adapter := federation.NewRequestAdapter(srv, loader)
	handler := federation.NewHandler(adapter, cfg.ScriptRoot)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutCtx); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("listening", "addr", httpServer.Addr, "domain", cfg.Domain)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
	}

	slog.Info("fedikit-demo stopped")
}

// seedDemoActor ensures the single demo actor and a first note exist,
// so a fresh deployment has something to federate immediately.
func seedDemoActor(db *store.Store) error {
	_, ok, err := db.GetActor(demoHandle)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	now := uri.NewTimestamp(time.Now()).String()
	if err := db.CreateActor(store.Actor{
		Handle:    demoHandle,
		Name:      "Fedikit Demo",
		Summary:   "A worked example actor built on the fedikit toolkit.",
		Published: now,
	}); err != nil {
		return err
	}
	_, err = db.AddNote(demoHandle, "Hello, fediverse. This is the fedikit-demo actor's first note.", now)
	return err
}

// demoDispatchers implements the federation.Server's dispatcher
// callable signatures against the store package.
type demoDispatchers struct {
	cfg   *config.Config
	store *store.Store
}

func (d *demoDispatchers) baseURL(path string) uri.URI {
	return uri.URI("https://" + d.cfg.Domain + d.cfg.ScriptRoot + path)
}

func (d *demoDispatchers) actor(ctx context.Context, handle string) (model.Entity, bool, error) {
	a, ok, err := d.store.GetActor(handle)
	if err != nil || !ok {
		return nil, ok, err
	}

	actorURL := d.baseURL("/actors/" + handle)
	person := vocab.NewPerson()
	person.SetID(actorURL)
	person.SetPreferredUsername(handle)
	person.SetName(a.Name, "")
	person.SetSummary(a.Summary, "")
	person.SetInbox(d.baseURL("/actors/" + handle + "/inbox"))
	person.SetOutbox(d.baseURL("/actors/" + handle + "/outbox"))
	if ts, err := uri.ParseTimestamp(a.Published); err == nil {
		person.SetPublished(ts)
	}
	return person, true, nil
}

func (d *demoDispatchers) outbox(ctx context.Context, handle string, cursor *string) (*federation.OutboxPage, bool, error) {
	if _, ok, err := d.store.GetActor(handle); err != nil || !ok {
		return nil, ok, err
	}

	afterSeq := -1
	if cursor != nil {
		seq, err := decodeCursor(*cursor)
		if err != nil {
			return nil, false, nil
		}
		afterSeq = seq
	}

	notes, hasMore, err := d.store.NotesPage(handle, afterSeq, d.cfg.OutboxPageSize)
	if err != nil {
		return nil, false, err
	}

	items := make([]model.Entity, len(notes))
	for i, n := range notes {
		items[i] = d.noteToActivity(handle, n)
	}

	page := &federation.OutboxPage{Items: items}
	if len(notes) > 0 {
		last := notes[len(notes)-1].Seq
		if hasMore {
			next := encodeCursor(last)
			page.NextCursor = &next
		}
		if afterSeq >= 0 {
			prev := encodeCursor(afterSeq)
			page.PrevCursor = &prev
		}
	}
	return page, true, nil
}

func (d *demoDispatchers) noteToActivity(handle string, n store.Note) model.Entity {
	actorURL := d.baseURL("/actors/" + handle)
	noteURL := d.baseURL("/objects/" + n.ID)

	note := vocab.NewNote()
	note.SetID(noteURL)
	note.SetAttributedTo(actorURL)
	note.SetContent(n.Content, "")
	if ts, err := uri.ParseTimestamp(n.Published); err == nil {
		note.SetPublished(ts)
	}

	create := vocab.NewCreate()
	create.SetID(d.baseURL("/activities/" + n.ID))
	create.SetActor(actorURL)
	create.SetObject(note)
	if ts, err := uri.ParseTimestamp(n.Published); err == nil {
		create.SetPublished(ts)
	}
	return create
}

func (d *demoDispatchers) outboxCount(ctx context.Context, handle string) (int, bool, error) {
	if _, ok, err := d.store.GetActor(handle); err != nil || !ok {
		return 0, ok, err
	}
	n, err := d.store.CountNotes(handle)
	return n, true, err
}

// outboxFirstCursor points at the page holding the most recently
// published notes: store.NotesPage's "seq < afterSeq" filter needs
// afterSeq one past the highest seq to include everything.
func (d *demoDispatchers) outboxFirstCursor(ctx context.Context, handle string) (string, bool, error) {
	seq, ok, err := d.store.LastSeq(handle)
	if err != nil || !ok {
		return "", ok, err
	}
	return encodeCursor(seq + 1), true, nil
}

// outboxLastCursor points at the terminal (empty) page below the
// oldest note, the convention this demo uses to mark "no more pages".
func (d *demoDispatchers) outboxLastCursor(ctx context.Context, handle string) (string, bool, error) {
	seq, ok, err := d.store.FirstSeq(handle)
	if err != nil || !ok {
		return "", ok, err
	}
	return encodeCursor(seq), true, nil
}

// encodeCursor and decodeCursor turn a note sequence number into the
// opaque cursor string the federation package's outbox paging
// contract expects. The cursor means "items with seq < the decoded
// value", matching store.NotesPage's afterSeq parameter.
func encodeCursor(seq int) string { return strconv.Itoa(seq) }

func decodeCursor(cursor string) (int, error) {
	seq, err := strconv.Atoi(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor %q: %w", cursor, err)
	}
	return seq, nil
}
