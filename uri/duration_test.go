package uri

import (
	"testing"
	"time"
)

func TestParseDurationRoundTrip(t *testing.T) {
	cases := []string{
		"P1Y2M3DT4H5M6S",
		"PT1H30M",
		"P1W",
		"P0D",
	}
	for _, s := range cases {
		d, err := ParseDuration(s)
		if err != nil {
			t.Fatalf("ParseDuration(%q): %v", s, err)
		}
		got := d.String()
		d2, err := ParseDuration(got)
		if err != nil {
			t.Fatalf("ParseDuration(%q) (round trip of %q): %v", got, s, err)
		}
		if !d.Equal(d2) {
			t.Errorf("round trip mismatch: %q -> %+v -> %q -> %+v", s, d, got, d2)
		}
	}
}

func TestParseDurationRejectsMissingPrefix(t *testing.T) {
	if _, err := ParseDuration("1Y"); err == nil {
		t.Error("expected error for duration missing P prefix")
	}
}

func TestParseDurationZero(t *testing.T) {
	d, err := ParseDuration("P")
	if err != nil {
		t.Fatalf("ParseDuration(%q): %v", "P", err)
	}
	if got := d.String(); got != "PT0S" {
		t.Errorf("zero duration String() = %q, want %q", got, "PT0S")
	}
}

func TestTimestampParseAndEqual(t *testing.T) {
	ts, err := ParseTimestamp("2024-01-02T03:04:05Z")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	other := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("x", 0)))
	if !ts.Equal(other) {
		t.Errorf("expected %v to equal %v", ts, other)
	}
	if got := ts.String(); got != "2024-01-02T03:04:05Z" {
		t.Errorf("String() = %q, want %q", got, "2024-01-02T03:04:05Z")
	}
}

func TestTimestampParseError(t *testing.T) {
	if _, err := ParseTimestamp("not-a-timestamp"); err == nil {
		t.Error("expected error for invalid timestamp")
	}
}
