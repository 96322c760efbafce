package httpx

import (
	"strings"

	"github.com/badu/wstd/runtime"
)

// Mux is a path-based request router, adapted from the teacher's ServeMux
// shape (a map of patterns to handlers, longest-match wins) but without its
// sync.RWMutex: a guest instance runs single-threaded and cooperatively, so
// no lock is needed on the pattern table (spec.md §5).
type Mux struct {
	entries map[string]Handler
}

// NewMux returns an empty router.
func NewMux() *Mux {
	return &Mux{entries: make(map[string]Handler)}
}

// Handle registers handler for pattern. A pattern ending in "/" matches
// that path and everything under it; any other pattern matches exactly.
func (m *Mux) Handle(pattern string, handler Handler) {
	m.entries[pattern] = handler
}

// Handler returns the registered handler for pathAndQuery (query string, if
// any, is ignored for matching), preferring the longest matching pattern —
// the same precedence rule the teacher's ServeMux uses.
func (m *Mux) Handler(pathAndQuery string) (Handler, bool) {
	path := pathAndQuery
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if h, ok := m.entries[path]; ok {
		return h, true
	}
	var best Handler
	bestLen := -1
	for pattern, h := range m.entries {
		if !strings.HasSuffix(pattern, "/") {
			continue
		}
		if strings.HasPrefix(path, pattern) && len(pattern) > bestLen {
			best, bestLen = h, len(pattern)
		}
	}
	return best, bestLen >= 0
}

// ServeHandler adapts the Mux into a Handler, suitable for passing to Serve
// directly: a request whose path matches no pattern gets a 404.
func (m *Mux) ServeHandler() Handler {
	return func(y *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
		h, ok := m.Handler(req.Path)
		if !ok {
			return NewResponse(404, FromString("not found\n")), nil
		}
		return h(y, req)
	}
}
