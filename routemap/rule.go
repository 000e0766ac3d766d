// Package routemap implements a pattern-to-endpoint route map with
// typed placeholders and host/scheme-bound reverse URL building.
// It is independent of any HTTP router library: the named-route
// reverse builder needs the bound scheme/host/script root, which
// mux-style routers do not carry.
package routemap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Converter names a placeholder's type, which constrains what it
// matches and how a captured string round-trips back into a URL.
type Converter int

const (
	// ConverterString matches one path segment (no slashes).
	ConverterString Converter = iota
	// ConverterInt matches one or more decimal digits.
	ConverterInt
)

func (c Converter) pattern() string {
	switch c {
	case ConverterInt:
		return `[0-9]+`
	default:
		return `[^/]+`
	}
}

// placeholder is one `<name>` or `<type:name>` segment parsed out of a
// rule's path pattern.
type placeholder struct {
	name      string
	converter Converter
}

var placeholderRe = regexp.MustCompile(`<(?:([a-zA-Z]+):)?([a-zA-Z_][a-zA-Z0-9_]*)>`)

// Rule binds one path pattern to an endpoint id, optionally restricted
// to a set of HTTP methods (empty/nil means "any method").
type Rule struct {
	Pattern  string
	Endpoint string
	Methods  []string

	compiled     *regexp.Regexp
	placeholders []placeholder
}

// compile parses r.Pattern's placeholders and builds the matching
// regexp; it is idempotent and safe to call more than once.
func (r *Rule) compile() error {
	if r.compiled != nil {
		return nil
	}
	var b strings.Builder
	b.WriteByte('^')
	last := 0
	for _, loc := range placeholderRe.FindAllStringSubmatchIndex(r.Pattern, -1) {
		b.WriteString(regexp.QuoteMeta(r.Pattern[last:loc[0]]))
		typeName := ""
		if loc[2] >= 0 {
			typeName = r.Pattern[loc[2]:loc[3]]
		}
		name := r.Pattern[loc[4]:loc[5]]
		conv := ConverterString
		if typeName == "int" {
			conv = ConverterInt
		} else if typeName != "" && typeName != "string" {
			return fmt.Errorf("routemap: unknown placeholder type %q in %q", typeName, r.Pattern)
		}
		r.placeholders = append(r.placeholders, placeholder{name: name, converter: conv})
		b.WriteString("(" + conv.pattern() + ")")
		last = loc[1]
	}
	b.WriteString(regexp.QuoteMeta(r.Pattern[last:]))
	b.WriteByte('$')
	re, err := regexp.Compile(b.String())
	if err != nil {
		return fmt.Errorf("routemap: compiling pattern %q: %w", r.Pattern, err)
	}
	r.compiled = re
	return nil
}

// matches reports whether path matches this rule's pattern, returning
// the captured placeholder values by name.
func (r *Rule) matches(path string) (map[string]string, bool) {
	m := r.compiled.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	args := make(map[string]string, len(r.placeholders))
	for i, p := range r.placeholders {
		args[p.name] = m[i+1]
	}
	return args, true
}

// allowsMethod reports whether method is permitted by this rule (no
// restriction means every method is allowed).
func (r *Rule) allowsMethod(method string) bool {
	if len(r.Methods) == 0 {
		return true
	}
	for _, m := range r.Methods {
		if strings.EqualFold(m, method) {
			return true
		}
	}
	return false
}

// build substitutes args into the rule's pattern, validating each
// placeholder's converter.
func (r *Rule) build(args map[string]string) (string, error) {
	var b strings.Builder
	last := 0
	for i, loc := range placeholderRe.FindAllStringIndex(r.Pattern, -1) {
		b.WriteString(r.Pattern[last:loc[0]])
		p := r.placeholders[i]
		v, ok := args[p.name]
		if !ok {
			return "", fmt.Errorf("routemap: missing argument %q for endpoint %q", p.name, r.Endpoint)
		}
		if p.converter == ConverterInt {
			if _, err := strconv.Atoi(v); err != nil {
				return "", fmt.Errorf("routemap: argument %q for endpoint %q must be an integer, got %q", p.name, r.Endpoint, v)
			}
		}
		b.WriteString(v)
		last = loc[1]
	}
	b.WriteString(r.Pattern[last:])
	return b.String(), nil
}
