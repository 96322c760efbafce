package httpx

// Response is a generic HTTP response, parameterized over its body type
// the same way Request is (spec.md §3.5).
type Response[B any] struct {
	Status  uint16
	Headers *Header
	Body    B
}

// NewResponse returns a response with an empty header set.
func NewResponse[B any](status uint16, body B) *Response[B] {
	return &Response[B]{Status: status, Headers: NewHeader(), Body: body}
}
