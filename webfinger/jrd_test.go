package webfinger_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/fedikit/fedikit/webfinger"
)

func TestResourceDescriptorFieldOrder(t *testing.T) {
	jrd := webfinger.ResourceDescriptor{
		Subject: "acct:alice@example.com",
		Aliases: []string{"https://example.com/actors/alice"},
		Links: []webfinger.Link{
			{Rel: "self", Type: "application/activity+json", Href: "https://example.com/actors/alice"},
		},
	}
	body, err := json.Marshal(jrd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(body)
	subjIdx := strings.Index(s, `"subject"`)
	aliasesIdx := strings.Index(s, `"aliases"`)
	linksIdx := strings.Index(s, `"links"`)
	if subjIdx < 0 || aliasesIdx < 0 || linksIdx < 0 {
		t.Fatalf("expected subject/aliases/links keys in %s", s)
	}
	if !(subjIdx < aliasesIdx && aliasesIdx < linksIdx) {
		t.Errorf("expected field order subject < aliases < links, got %s", s)
	}
}

func TestResourceDescriptorOmitsEmptyFields(t *testing.T) {
	jrd := webfinger.ResourceDescriptor{Subject: "acct:bob@example.com"}
	body, err := json.Marshal(jrd)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(body)
	for _, key := range []string{"aliases", "properties", "links"} {
		if strings.Contains(s, `"`+key+`"`) {
			t.Errorf("expected %q to be omitted when empty, got %s", key, s)
		}
	}
}

func TestLinkOmitsEmptyFields(t *testing.T) {
	body, err := json.Marshal(webfinger.Link{Rel: "self"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(body)
	for _, key := range []string{"type", "href", "titles", "properties"} {
		if strings.Contains(s, `"`+key+`"`) {
			t.Errorf("expected %q to be omitted when empty, got %s", key, s)
		}
	}
	if !strings.Contains(s, `"rel":"self"`) {
		t.Errorf("expected rel to be present, got %s", s)
	}
}
