package uri

import "testing"

func TestURIIsZero(t *testing.T) {
	cases := []struct {
		u    URI
		want bool
	}{
		{"", true},
		{"https://example.com/actor", false},
	}
	for _, c := range cases {
		if got := c.u.IsZero(); got != c.want {
			t.Errorf("URI(%q).IsZero() = %v, want %v", c.u, got, c.want)
		}
	}
}

func TestNewLanguageTag(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"en-US", "en-US"},
		{"en-us", "en-US"},
		{"zh-Hans", "zh-Hans"},
		{"zh-hans-CN", "zh-Hans-CN"},
	}
	for _, c := range cases {
		if got := string(NewLanguageTag(c.in)); got != c.want {
			t.Errorf("NewLanguageTag(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLanguageStringEqual(t *testing.T) {
	a := NewLanguageString("hello", "en")
	b := NewLanguageString("hello", "EN")
	c := NewLanguageString("hello", "fr")
	d := NewLanguageString("bye", "en")

	if !a.Equal(b) {
		t.Errorf("expected %+v to equal %+v (tag case-insensitive)", a, b)
	}
	if a.Equal(c) {
		t.Errorf("expected %+v to differ from %+v", a, c)
	}
	if a.Equal(d) {
		t.Errorf("expected %+v to differ from %+v", a, d)
	}
}
