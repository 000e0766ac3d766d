package vocab_test

import (
	"testing"

	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/vocab"
)

func TestPersonIsActorDescriptors(t *testing.T) {
	p := vocab.NewPerson()
	p.SetID("https://example.com/actors/alice")
	p.SetPreferredUsername("alice")
	p.SetInbox("https://example.com/actors/alice/inbox")
	p.SetOutbox("https://example.com/actors/alice/outbox")

	if got, ok := p.PreferredUsername(); !ok || got != "alice" {
		t.Errorf("PreferredUsername() = (%q, %v), want (%q, true)", got, ok, "alice")
	}
	if _, ok := model.FindProperty(p, "inbox"); !ok {
		t.Error("expected Person to declare inbox via the embedded Actor descriptor set")
	}
	if _, ok := model.FindProperty(p, "content"); !ok {
		t.Error("expected Person to inherit Object-level descriptors like content")
	}
}

func TestActorIsAbstract(t *testing.T) {
	// Actor can never be the resolved @type of a parsed document,
	// only its concrete subtypes (Person, Service, ...).
	if _, ok := model.Lookup(vocab.ActorTypeURI); ok {
		t.Error("expected Actor to be unregistered as a constructible type")
	}
	if _, ok := model.Lookup(vocab.PersonTypeURI); !ok {
		t.Error("expected Person to be constructible")
	}
}

func TestNoteDescriptorsIncludeObjectAndAttributedTo(t *testing.T) {
	n := vocab.NewNote()
	for _, name := range []string{"content", "attributedTo", "published", "summary"} {
		if _, ok := model.FindProperty(n, name); !ok {
			t.Errorf("expected Note to declare property %q", name)
		}
	}
}

func TestActivityActorObjectRoundTrip(t *testing.T) {
	create := vocab.NewCreate()
	create.SetID("https://example.com/activities/1")

	alice := vocab.NewPerson()
	alice.SetID("https://example.com/actors/alice")
	create.SetActor(alice)

	note := vocab.NewNote()
	note.SetID("https://example.com/objects/1")
	note.SetContent("hi", "en")
	create.SetObject(note)

	actor, ok := create.Actor()
	if !ok {
		t.Fatal("expected actor to be set")
	}
	person, ok := actor.(*vocab.Person)
	if !ok || person.ID() != "https://example.com/actors/alice" {
		t.Errorf("actor = %#v, want alice", actor)
	}

	obj, ok := create.Object()
	if !ok {
		t.Fatal("expected object to be set")
	}
	gotNote, ok := obj.(*vocab.Note)
	if !ok || !model.Equal(gotNote, note) {
		t.Errorf("object = %#v, want the attached note", obj)
	}
}

func TestOrderedCollectionPaging(t *testing.T) {
	page := vocab.NewOrderedCollectionPage()
	page.SetID("https://example.com/actors/alice/outbox?cursor=5")
	page.SetPartOf("https://example.com/actors/alice/outbox")
	page.SetNext("https://example.com/actors/alice/outbox?cursor=1")

	a := vocab.NewNote()
	a.SetID("https://example.com/objects/1")
	page.AddOrderedItems(a)

	items, ok := model.FindProperty(page, "orderedItems")
	if !ok {
		t.Fatal("expected orderedItems to be declared")
	}
	got := model.ReadPlural(page.Base(), items)
	if len(got) != 1 {
		t.Fatalf("expected 1 ordered item, got %d", len(got))
	}
}

func TestPlainTextStripsMarkup(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"paragraphs", "<p>hello</p><p>world</p>", "hello\n\nworld"},
		{"br", "line one<br>line two", "line one\nline two"},
		{"script stripped", "keep<script>evil()</script>me", "keepme"},
		{"entities", "Q&amp;A", "Q&A"},
	}
	for _, c := range cases {
		if got := vocab.PlainText(c.in); got != c.want {
			t.Errorf("%s: PlainText(%q) = %q, want %q", c.name, c.in, got, c.want)
		}
	}
}
