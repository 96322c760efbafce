package httpx

import "strconv"

// BodyHint is the size estimate the body engine derives from headers or a
// frame source's own report (spec.md §3.4, §4.5.4's "Size hint").
type BodyHint struct {
	length uint64
	known  bool
}

// UnknownBodyHint is the hint used when no size estimate is available.
var UnknownBodyHint = BodyHint{}

// BodyHintFromContentLength reports an exact size.
func BodyHintFromContentLength(n uint64) BodyHint {
	return BodyHint{length: n, known: true}
}

// BodyHintFromHeaders reads Content-Length out of h, if present and
// parseable. A present-but-unparseable value is an error per spec.md §7's
// InvalidContentLength kind; an absent header is simply UnknownBodyHint.
func BodyHintFromHeaders(h *Header) (BodyHint, error) {
	v := h.Get("Content-Length")
	if v == "" {
		return UnknownBodyHint, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return UnknownBodyHint, invalidContentLength(v)
	}
	return BodyHintFromContentLength(n), nil
}

// ContentLength returns the hinted length and whether one is known.
func (h BodyHint) ContentLength() (uint64, bool) { return h.length, h.known }
