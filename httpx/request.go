package httpx

// Request is a generic HTTP request, parameterized over its body type so
// the same shape serves an outgoing request still carrying a Go-side Body
// and a decoded incoming request (spec.md §3.5).
type Request[B any] struct {
	Method    string
	Scheme    string // defaults to SchemeHTTPS when empty, per spec.md §4.6
	Authority string
	Path      string // path and query combined, as the wire sends it
	Headers   *Header
	Body      B
}

// NewRequest returns a request with an empty header set.
func NewRequest[B any](method, path string, body B) *Request[B] {
	return &Request[B]{Method: method, Path: path, Headers: NewHeader(), Body: body}
}
