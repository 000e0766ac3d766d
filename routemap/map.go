package routemap

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrNotRouted is returned when no rule's pattern matches the request
// path.
var ErrNotRouted = errors.New("routemap: not routed")

// ErrMethodNotAllowed is returned when a rule's pattern matches the
// path but not the request method.
var ErrMethodNotAllowed = errors.New("routemap: method not allowed")

// Map holds an ordered list of rules. Rules are matched in the order
// they were added: first-match-wins on path.
type Map struct {
	rules []*Rule
}

// New returns an empty Map.
func New() *Map { return &Map{} }

// AddRule appends a rule, compiling its pattern immediately so a bad
// pattern fails fast at registration time rather than at first match.
func (m *Map) AddRule(r Rule) error {
	rule := r
	if err := rule.compile(); err != nil {
		return err
	}
	m.rules = append(m.rules, &rule)
	return nil
}

// ReplaceRule replaces the existing rule for r's endpoint id, or
// appends r if no rule with that endpoint exists yet. Registration
// paths use this so re-registering a dispatcher swaps its pattern in
// place instead of shadowing it.
func (m *Map) ReplaceRule(r Rule) error {
	rule := r
	if err := rule.compile(); err != nil {
		return err
	}
	for i, existing := range m.rules {
		if existing.Endpoint == rule.Endpoint {
			m.rules[i] = &rule
			return nil
		}
	}
	m.rules = append(m.rules, &rule)
	return nil
}

// Bind attaches a Map to a concrete scheme/host/script-root, producing
// an Adapter used to match requests and build absolute URLs.
func (m *Map) Bind(scheme, host, scriptRoot string) *Adapter {
	return &Adapter{m: m, scheme: scheme, host: host, scriptRoot: strings.TrimSuffix(scriptRoot, "/")}
}

// Clone returns a Map with an independent copy of the rule slice (but
// sharing compiled rule state, which is immutable once built).
func (m *Map) Clone() *Map {
	out := &Map{rules: make([]*Rule, len(m.rules))}
	copy(out.rules, m.rules)
	return out
}

// Adapter is a Map bound to a specific scheme, host and script root.
type Adapter struct {
	m          *Map
	scheme     string
	host       string
	scriptRoot string
}

// Match resolves pathInfo (relative to the script root) and method to
// an endpoint id and its captured arguments. If some rule matches the
// path but rejects the method, ErrMethodNotAllowed is returned; if no
// rule matches the path at all, ErrNotRouted is returned.
func (a *Adapter) Match(method, pathInfo string) (endpoint string, args map[string]string, err error) {
	pathMatched := false
	for _, r := range a.m.rules {
		captured, ok := r.matches(pathInfo)
		if !ok {
			continue
		}
		pathMatched = true
		if !r.allowsMethod(method) {
			continue
		}
		return r.Endpoint, captured, nil
	}
	if pathMatched {
		return "", nil, ErrMethodNotAllowed
	}
	return "", nil, ErrNotRouted
}

// Build constructs an absolute external URL for endpoint, substituting
// args into its first matching rule's pattern and honoring the
// adapter's bound scheme, host, and script root.
func (a *Adapter) Build(endpoint string, args map[string]interface{}) (string, error) {
	for _, r := range a.m.rules {
		if r.Endpoint != endpoint {
			continue
		}
		strArgs := make(map[string]string, len(args))
		for k, v := range args {
			strArgs[k] = stringifyArg(v)
		}
		path, err := r.build(strArgs)
		if err != nil {
			return "", err
		}
		return a.scheme + "://" + a.host + a.scriptRoot + path, nil
	}
	return "", fmt.Errorf("routemap: no rule registered for endpoint %q", endpoint)
}

func stringifyArg(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}

// EncodeQueryValue URL-encodes a value for embedding in a query
// string, used when building cursor-bearing outbox page links.
func EncodeQueryValue(v string) string { return url.QueryEscape(v) }
