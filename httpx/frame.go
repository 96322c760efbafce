package httpx

import "github.com/badu/wstd/runtime"

// Frame is one unit of body transmission: either a chunk of data or a
// trailer field set, never both (spec.md §4.5.4's GLOSSARY "Frame").
type Frame struct {
	data     []byte
	trailers *Header
}

// DataFrame wraps a chunk of body data.
func DataFrame(b []byte) Frame { return Frame{data: b} }

// TrailerFrame wraps a trailer field set.
func TrailerFrame(h *Header) Frame { return Frame{trailers: h} }

// IsTrailers reports whether this is a trailer frame.
func (f Frame) IsTrailers() bool { return f.trailers != nil }

// Data returns this frame's data, if it is a data frame.
func (f Frame) Data() []byte { return f.data }

// Trailers returns this frame's trailer set, if it is a trailer frame.
func (f Frame) Trailers() *Header { return f.trailers }

// FrameSource is a pull-based generator of Frames for an Adapted body
// (spec.md §3.4, §4.5.1 "any frame-producing async body"). It returns
// ok == false once exhausted; a non-nil error aborts the send with
// context, per §4.5.3 case 3.
type FrameSource func(y *runtime.Yielder) (frame Frame, ok bool, err error)
