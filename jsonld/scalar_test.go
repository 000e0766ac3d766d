package jsonld

import (
	"testing"
	"time"

	"github.com/fedikit/fedikit/uri"
)

func TestEncodeDecodeStringRoundTrip(t *testing.T) {
	node, err := EncodeScalar("hello")
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeString(node)
	if !ok || got != "hello" {
		t.Errorf("DecodeString(%v) = (%q, %v), want (%q, true)", node, got, ok, "hello")
	}
}

func TestEncodeDecodeBoolRoundTrip(t *testing.T) {
	node, err := EncodeScalar(true)
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeBool(node)
	if !ok || !got {
		t.Errorf("DecodeBool(%v) = (%v, %v), want (true, true)", node, got, ok)
	}
}

func TestEncodeDecodeIntRoundTrip(t *testing.T) {
	cases := []int{0, 5, -3}
	for _, n := range cases {
		node, err := EncodeScalar(n)
		if err != nil {
			t.Fatalf("EncodeScalar(%d): %v", n, err)
		}
		got, ok := DecodeInt(node)
		if !ok || got != n {
			t.Errorf("DecodeInt(%v) = (%d, %v), want (%d, true)", node, got, ok, n)
		}
	}
}

func TestEncodeDecodeURIRoundTrip(t *testing.T) {
	u := uri.URI("https://example.com/actor")
	node, err := EncodeScalar(u)
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeURI(node)
	if !ok || got != u {
		t.Errorf("DecodeURI(%v) = (%q, %v), want (%q, true)", node, got, ok, u)
	}
}

func TestEncodeDecodeLanguageStringRoundTrip(t *testing.T) {
	ls := uri.NewLanguageString("bonjour", "fr")
	node, err := EncodeScalar(ls)
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeLanguageString(node)
	if !ok || !got.Equal(ls) {
		t.Errorf("DecodeLanguageString(%v) = (%+v, %v), want (%+v, true)", node, got, ok, ls)
	}

	// DecodeLanguageString must fail on an untagged node so callers
	// fall back to the plain-string decode.
	if _, ok := DecodeLanguageString(map[string]interface{}{"@value": "no lang"}); ok {
		t.Error("DecodeLanguageString should fail when @language is absent")
	}
}

func TestEncodeDecodeTimestampRoundTrip(t *testing.T) {
	ts := uri.NewTimestamp(time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC))
	node, err := EncodeScalar(ts)
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeTimestamp(node)
	if !ok || !got.Equal(ts) {
		t.Errorf("DecodeTimestamp(%v) = (%v, %v), want (%v, true)", node, got, ok, ts)
	}
}

func TestEncodeDecodeDurationRoundTrip(t *testing.T) {
	d, err := uri.ParseDuration("PT1H30M")
	if err != nil {
		t.Fatalf("ParseDuration: %v", err)
	}
	node, err := EncodeScalar(d)
	if err != nil {
		t.Fatalf("EncodeScalar: %v", err)
	}
	got, ok := DecodeDuration(node)
	if !ok || !got.Equal(d) {
		t.Errorf("DecodeDuration(%v) = (%+v, %v), want (%+v, true)", node, got, ok, d)
	}
}

func TestEncodeScalarRejectsUnknownType(t *testing.T) {
	if _, err := EncodeScalar(struct{}{}); err == nil {
		t.Error("expected error encoding an unsupported scalar type")
	}
}

func TestIsRefNode(t *testing.T) {
	cases := []struct {
		name string
		node interface{}
		want bool
	}{
		{"bare ref", map[string]interface{}{"@id": "https://example.com/x"}, true},
		{"ref with extra key", map[string]interface{}{"@id": "https://example.com/x", "name": "x"}, false},
		{"no id", map[string]interface{}{"name": "x"}, false},
		{"not a map", "https://example.com/x", false},
	}
	for _, c := range cases {
		_, ok := IsRefNode(c.node)
		if ok != c.want {
			t.Errorf("%s: IsRefNode(%v) ok = %v, want %v", c.name, c.node, ok, c.want)
		}
	}
}
