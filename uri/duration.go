package uri

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration is an ISO-8601 duration value (e.g. "PT1H30M"). It is kept
// as a component breakdown rather than a raw string, so equality does
// not depend on formatting; components are not rebalanced, so "PT60M"
// and "PT1H" compare unequal.
type Duration struct {
	Years, Months, Weeks, Days   int
	Hours, Minutes               int
	Seconds                      float64
}

// ParseDuration parses an ISO-8601 duration string such as "P1Y2M3DT4H5M6S".
func ParseDuration(s string) (Duration, error) {
	var d Duration
	if !strings.HasPrefix(s, "P") {
		return d, fmt.Errorf("uri: invalid duration %q: missing P prefix", s)
	}
	rest := s[1:]
	datePart, timePart, hasTime := strings.Cut(rest, "T")
	if err := parseDurationFields(datePart, map[byte]*int{
		'Y': &d.Years, 'M': &d.Months, 'W': &d.Weeks, 'D': &d.Days,
	}, nil); err != nil {
		return d, fmt.Errorf("uri: invalid duration %q: %w", s, err)
	}
	if hasTime {
		if err := parseDurationFields(timePart, map[byte]*int{
			'H': &d.Hours, 'M': &d.Minutes,
		}, &d.Seconds); err != nil {
			return d, fmt.Errorf("uri: invalid duration %q: %w", s, err)
		}
	}
	return d, nil
}

func parseDurationFields(s string, ints map[byte]*int, seconds *float64) error {
	num := strings.Builder{}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9' || c == '.':
			num.WriteByte(c)
		case c == 'S' && seconds != nil:
			v, err := strconv.ParseFloat(num.String(), 64)
			if err != nil {
				return err
			}
			*seconds = v
			num.Reset()
		default:
			target, ok := ints[c]
			if !ok {
				return fmt.Errorf("unexpected duration designator %q", c)
			}
			v, err := strconv.Atoi(num.String())
			if err != nil {
				return err
			}
			*target = v
			num.Reset()
		}
	}
	return nil
}

// String renders the duration back into ISO-8601 form.
func (d Duration) String() string {
	var b strings.Builder
	b.WriteByte('P')
	writeIntDesignator(&b, d.Years, 'Y')
	writeIntDesignator(&b, d.Months, 'M')
	writeIntDesignator(&b, d.Weeks, 'W')
	writeIntDesignator(&b, d.Days, 'D')
	if d.Hours != 0 || d.Minutes != 0 || d.Seconds != 0 {
		b.WriteByte('T')
		writeIntDesignator(&b, d.Hours, 'H')
		writeIntDesignator(&b, d.Minutes, 'M')
		if d.Seconds != 0 {
			s := strconv.FormatFloat(d.Seconds, 'f', -1, 64)
			b.WriteString(s)
			b.WriteByte('S')
		}
	}
	if b.Len() == 1 {
		b.WriteString("T0S")
	}
	return b.String()
}

func writeIntDesignator(b *strings.Builder, v int, designator byte) {
	if v == 0 {
		return
	}
	b.WriteString(strconv.Itoa(v))
	b.WriteByte(designator)
}

// Equal compares two durations component-wise.
func (d Duration) Equal(o Duration) bool { return d == o }

// Timestamp is an instant with timezone, represented as ISO-8601.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalizing to UTC the way ActivityStreams
// dateTime values are conventionally rendered.
func NewTimestamp(t time.Time) Timestamp { return Timestamp{t.UTC()} }

// ParseTimestamp parses an RFC3339 (ISO-8601 compatible) instant.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("uri: invalid timestamp %q: %w", s, err)
	}
	return NewTimestamp(t), nil
}

// String renders the timestamp as RFC3339 / ISO-8601.
func (t Timestamp) String() string { return t.Time.Format(time.RFC3339) }

// Equal reports whether two timestamps denote the same instant.
func (t Timestamp) Equal(o Timestamp) bool { return t.Time.Equal(o.Time) }
