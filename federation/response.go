package federation

import "net/http"

// Request is the minimal HTTP transport abstraction the request
// adapter consumes: scheme, host, script root, method, path, raw query
// string, and case-insensitive headers. http.go's binding fills this
// in from an *http.Request.
type Request struct {
	Scheme     string
	Host       string
	ScriptRoot string
	Method     string
	Path       string
	RawQuery   string
	Header     http.Header
	RemoteAddr string
}

// Response is the adapter's output: a status, headers, and a body.
// No streaming is required by the contract.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// textResponse builds a plain-text response, the shape used for the
// 400/404/405/406 defaults.
func textResponse(status int, body string) Response {
	h := make(http.Header)
	h.Set("Content-Type", "text/plain; charset=utf-8")
	return Response{Status: status, Header: h, Body: []byte(body)}
}

// ActivityStreamsProfileType is the content type used for actor and
// collection responses.
const ActivityStreamsProfileType = `application/ld+json; profile="https://www.w3.org/ns/activitystreams"`

// Hooks lets a host application override the default error responses,
// e.g. to serve an HTML 404 page for paths outside the federation
// surface.
type Hooks struct {
	NotFound         func(req Request) Response
	MethodNotAllowed func(req Request) Response
	NotAcceptable    func(req Request) Response
}

func defaultHooks() Hooks {
	return Hooks{
		NotFound:         func(Request) Response { return textResponse(http.StatusNotFound, "Not Found") },
		MethodNotAllowed: func(Request) Response { return textResponse(http.StatusMethodNotAllowed, "Method Not Allowed") },
		NotAcceptable:    func(Request) Response { return textResponse(http.StatusNotAcceptable, "Not Acceptable") },
	}
}

// acceptableMediaTypes are the media types negotiate treats as
// acceptable JSON-LD responses.
var acceptableMediaTypes = []string{"application/ld+json", "application/activity+json", "application/json"}

// negotiate reports whether the request can accept a JSON-LD response:
// true if the Accept header is empty, or lists any of the three JSON-LD
// media types (ignoring q-values and other parameters).
func negotiate(accept string) bool {
	if accept == "" {
		return true
	}
	for _, part := range splitCommaList(accept) {
		for _, mt := range acceptableMediaTypes {
			if part == mt {
				return true
			}
		}
	}
	return false
}

func splitCommaList(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			out = append(out, trimMediaType(s[start:i]))
			start = i + 1
		}
	}
	return out
}

// trimMediaType strips leading/trailing whitespace and any ";
// parameter" suffix (e.g. ";q=0.9") from one Accept-header element.
func trimMediaType(s string) string {
	for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
		s = s[1:]
	}
	end := len(s)
	for i, c := range s {
		if c == ';' {
			end = i
			break
		}
	}
	s = s[:end]
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		s = s[:len(s)-1]
	}
	return s
}
