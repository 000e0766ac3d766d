package model_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fedikit/fedikit/jsonld"
	"github.com/fedikit/fedikit/model"
	"github.com/fedikit/fedikit/uri"
	"github.com/fedikit/fedikit/vocab"
)

// noNetworkLoader fails any attempt to dereference a remote document,
// so tests that accidentally depend on network access fail loudly
// instead of hanging or silently passing.
type noNetworkLoader struct{}

func (noNetworkLoader) LoadDocument(ctx context.Context, url string) (*jsonld.RemoteDocument, error) {
	return nil, errors.New("unexpected remote document load: " + url)
}

func TestEntityEqual(t *testing.T) {
	ts := uri.NewTimestamp(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	a := vocab.NewNote()
	a.SetID("https://example.com/objects/1")
	a.SetContent("hello", "en")
	a.SetPublished(ts)

	b := vocab.NewNote()
	b.SetID("https://example.com/objects/1")
	b.SetContent("hello", "en")
	b.SetPublished(ts)

	if !model.Equal(a, b) {
		t.Errorf("expected equal notes to compare equal")
	}

	c := vocab.NewNote()
	c.SetID("https://example.com/objects/1")
	c.SetContent("goodbye", "en")
	c.SetPublished(ts)

	if model.Equal(a, c) {
		t.Errorf("expected differently-worded notes to compare unequal")
	}
}

func TestSerializeExpandParseRoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := uri.NewTimestamp(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))

	note := vocab.NewNote()
	note.SetID("https://example.com/objects/1")
	note.SetContent("hello, fediverse", "en")
	note.SetAttributedTo(model.NewRef("https://example.com/actors/alice"))
	note.SetPublished(ts)

	expanded, err := model.Serialize(ctx, note, true, noNetworkLoader{})
	if err != nil {
		t.Fatalf("Serialize(expand=true): %v", err)
	}
	nodes, ok := expanded.([]interface{})
	if !ok || len(nodes) != 1 {
		t.Fatalf("expected a single expanded node, got %#v", expanded)
	}

	parsed, err := model.Parse(ctx, vocab.NoteTypeURI, nodes[0], noNetworkLoader{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if !model.Equal(note, parsed) {
		t.Errorf("round-tripped entity does not equal the original:\norig:   %s\nparsed: %s",
			model.Repr(note), model.Repr(parsed))
	}
}

// asContextLoader serves an in-memory stand-in for the ActivityStreams
// context document so compaction never needs network access.
type asContextLoader struct{}

var asContextDoc = map[string]interface{}{
	"@context": map[string]interface{}{
		"@vocab": "https://www.w3.org/ns/activitystreams#",
		"id":     "@id",
		"type":   "@type",
	},
}

func (asContextLoader) LoadDocument(ctx context.Context, url string) (*jsonld.RemoteDocument, error) {
	if url == "https://www.w3.org/ns/activitystreams" {
		return &jsonld.RemoteDocument{URL: url, Document: asContextDoc}, nil
	}
	return nil, errors.New("unexpected remote document load: " + url)
}

func TestSerializeCompactParseRoundTrip(t *testing.T) {
	ctx := context.Background()
	loader := asContextLoader{}

	note := vocab.NewNote()
	note.SetID("https://example.com/objects/9")
	note.SetContent("compacted round trip", "en")
	note.SetPublished(uri.NewTimestamp(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)))

	compacted, err := model.Serialize(ctx, note, false, loader)
	if err != nil {
		t.Fatalf("Serialize(expand=false): %v", err)
	}

	expanded, err := jsonld.Expand(ctx, compacted, jsonld.Options{Loader: loader})
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(expanded) != 1 {
		t.Fatalf("expected a single expanded node, got %#v", expanded)
	}
	parsed, err := model.Parse(ctx, vocab.NoteTypeURI, expanded[0], loader)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !model.Equal(note, parsed) {
		t.Errorf("compacted round trip mismatch:\norig:   %s\nparsed: %s",
			model.Repr(note), model.Repr(parsed))
	}
}

func TestApply(t *testing.T) {
	note := vocab.NewNote()
	err := model.Apply(note, map[string]model.Item{
		"id":      uri.URI("https://example.com/objects/10"),
		"content": uri.NewLanguageString("hello", "en"),
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if note.ID() != "https://example.com/objects/10" {
		t.Errorf("ID = %s", note.ID())
	}

	if err := model.Apply(note, map[string]model.Item{"notAProperty": "x"}); !errors.Is(err, model.ErrNoSuchProperty) {
		t.Errorf("expected ErrNoSuchProperty, got %v", err)
	}

	err = model.Apply(note, map[string]model.Item{
		"content":  uri.NewLanguageString("one", "en"),
		"contents": []model.Item{uri.NewLanguageString("two", "en")},
	})
	if !errors.Is(err, model.ErrDuplicateProperty) {
		t.Errorf("expected ErrDuplicateProperty for aliasing names, got %v", err)
	}
}

func TestParseResolvesMostSpecificType(t *testing.T) {
	node := map[string]interface{}{
		"@type": []interface{}{string(vocab.NoteTypeURI)},
		"@id":   "https://example.com/objects/2",
	}
	e, err := model.Parse(context.Background(), model.AnyRootURI, node, noNetworkLoader{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if e.TypeURI() != vocab.NoteTypeURI {
		t.Errorf("resolved type = %s, want %s", e.TypeURI(), vocab.NoteTypeURI)
	}
}

func TestParseUnknownTypeFails(t *testing.T) {
	node := map[string]interface{}{
		"@type": "https://example.com/ns#TotallyUnknownType",
	}
	_, err := model.Parse(context.Background(), model.AnyRootURI, node, noNetworkLoader{})
	if !errors.Is(err, model.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestParseStashesUnrecognizedPropertiesAsExtra(t *testing.T) {
	node := map[string]interface{}{
		"@type": string(vocab.NoteTypeURI),
		"@id":   "https://example.com/objects/3",
		"https://example.com/ns#customField": []interface{}{
			map[string]interface{}{"@value": "custom value"},
		},
	}
	e, err := model.Parse(context.Background(), vocab.NoteTypeURI, node, noNetworkLoader{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw, ok := e.Base().Extra("https://example.com/ns#customField")
	if !ok {
		t.Fatal("expected custom field to be stashed in extra")
	}
	if string(raw) == "" {
		t.Error("expected non-empty extra payload")
	}
}

func TestSubpropertyFold(t *testing.T) {
	// attributedTo declares "actor" as a subproperty: a value written
	// at the "actor" slot must still surface as attributedTo's value
	// when read.
	actorProp := model.NewSingularProperty("actor", "https://www.w3.org/ns/activitystreams#actor",
		model.Union(model.TypeExpr{EntityRoot: model.AnyRootURI}))

	bob := vocab.NewPerson()
	bob.SetID("https://example.com/actors/bob")

	note := vocab.NewNote()
	note.SetID("https://example.com/objects/4")
	model.SetSingular(note.Base(), actorProp, bob)

	prop, ok := model.FindProperty(note, "attributedTo")
	if !ok {
		t.Fatal("expected Note to declare an attributedTo property")
	}
	got, ok := model.ReadSingular(note.Base(), prop)
	if !ok {
		t.Fatal("expected attributedTo to be populated via the actor subproperty fold")
	}
	person, ok := got.(*vocab.Person)
	if !ok {
		t.Fatalf("expected a *vocab.Person, got %T", got)
	}
	if person.ID() != "https://example.com/actors/bob" {
		t.Errorf("attributedTo = %s, want %s", person.ID(), "https://example.com/actors/bob")
	}
}

func TestReadSkipsReferences(t *testing.T) {
	// Unresolved *model.Ref items must be skipped by reads, not
	// surfaced, until they are resolved via ResolveRefs.
	note := vocab.NewNote()
	note.SetID("https://example.com/objects/5")
	note.SetAttributedTo(model.NewRef("https://example.com/actors/alice"))

	if _, ok := note.AttributedTo(); ok {
		t.Error("expected AttributedTo to skip an unresolved Ref and report absent")
	}

	note.AddTo(model.NewRef("https://example.com/actors/alice"), uri.URI("https://example.com/actors/bob"))
	to := note.To()
	if len(to) != 1 {
		t.Fatalf("expected To() to skip the Ref and keep only the resolved item, got %v", to)
	}
	if to[0] != uri.URI("https://example.com/actors/bob") {
		t.Errorf("To()[0] = %v, want bob", to[0])
	}
}

func TestParseRetainsPartialResultOnMalformedArrayElement(t *testing.T) {
	// One bad element among otherwise-valid siblings must not fail
	// the whole parse; the candidate keeps its partial result.
	node := map[string]interface{}{
		"@type": string(vocab.NoteTypeURI),
		"@id":   "https://example.com/objects/6",
		"https://www.w3.org/ns/activitystreams#content": []interface{}{
			map[string]interface{}{"@value": "hello", "@language": "en"},
			map[string]interface{}{"@value": 42}, // neither a language string nor a plain string
		},
	}
	e, err := model.Parse(context.Background(), vocab.NoteTypeURI, node, noNetworkLoader{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	prop, ok := model.FindProperty(e, "contents")
	if !ok {
		t.Fatal("expected Note to declare a contents property")
	}
	items := model.ReadPlural(e.Base(), prop)
	if len(items) != 1 {
		t.Fatalf("expected the malformed element to be dropped and the good one kept, got %v", items)
	}
	ls, ok := items[0].(uri.LanguageString)
	if !ok || ls.Text != "hello" {
		t.Errorf("expected the surviving item to be %q, got %#v", "hello", items[0])
	}
}

func TestParseFallsBackToExtraWhenEveryCandidateFails(t *testing.T) {
	// Once every aliasing candidate for a known property URI has
	// failed outright, the raw value is stashed in extra instead of
	// aborting the entity's parse.
	node := map[string]interface{}{
		"@type": string(vocab.NoteTypeURI),
		"@id":   "https://example.com/objects/7",
		"https://www.w3.org/ns/activitystreams#content": []interface{}{
			map[string]interface{}{"@value": 42},
			map[string]interface{}{"@value": true},
		},
	}
	e, err := model.Parse(context.Background(), vocab.NoteTypeURI, node, noNetworkLoader{})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	raw, ok := e.Base().Extra("https://www.w3.org/ns/activitystreams#content")
	if !ok {
		t.Fatal("expected the wholly-unparseable content array to be stashed in extra")
	}
	if string(raw) == "" {
		t.Error("expected non-empty extra payload")
	}
}

func TestFindProperty(t *testing.T) {
	note := vocab.NewNote()
	if _, ok := model.FindProperty(note, "content"); !ok {
		t.Error("expected to find the content property on Note")
	}
	if _, ok := model.FindProperty(note, "doesNotExist"); ok {
		t.Error("expected not to find an undeclared property")
	}
}

func TestResolveRefs(t *testing.T) {
	actorDoc := map[string]interface{}{
		"@type": string(vocab.PersonTypeURI),
		"@id":   "https://example.com/actors/carol",
	}
	loader := jsonld.DocumentLoaderFunc(func(ctx context.Context, url string) (*jsonld.RemoteDocument, error) {
		if url != "https://example.com/actors/carol" {
			return nil, errors.New("unexpected URL " + url)
		}
		return &jsonld.RemoteDocument{URL: url, Document: actorDoc}, nil
	})

	note := vocab.NewNote()
	note.SetID("https://example.com/objects/5")
	note.SetAttributedTo(model.NewRef("https://example.com/actors/carol"))

	if err := model.ResolveRefs(context.Background(), note, []string{"attributedTo"}, loader); err != nil {
		t.Fatalf("ResolveRefs: %v", err)
	}

	prop, ok := model.FindProperty(note, "attributedTo")
	if !ok {
		t.Fatal("expected Note to declare an attributedTo property")
	}
	got, ok := model.ReadSingular(note.Base(), prop)
	if !ok {
		t.Fatal("expected attributedTo to remain set after resolution")
	}
	person, ok := got.(model.Entity)
	if !ok || person.TypeURI() != vocab.PersonTypeURI {
		t.Errorf("expected attributedTo to resolve to a Person, got %#v", got)
	}
}

func TestResolveRefsUnknownProperty(t *testing.T) {
	note := vocab.NewNote()
	err := model.ResolveRefs(context.Background(), note, []string{"notAProperty"}, noNetworkLoader{})
	if !errors.Is(err, model.ErrNoSuchProperty) {
		t.Errorf("expected ErrNoSuchProperty, got %v", err)
	}
}
