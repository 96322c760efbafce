// Package streams mirrors the generated bindings for `wasi:io/streams`.
//
// `InputStream`/`OutputStream` are the two byte-stream resources the whole
// async surface is built on (spec.md §6.1). `StreamError` is the variant the
// host uses to distinguish "the stream closed" from "the last operation on
// it failed", carrying a host-owned debug string in the latter case.
package streams

import (
	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/io/poll"
)

// InputStream is an owned handle to a host input-stream resource.
type InputStream uint32

// OutputStream is an owned handle to a host output-stream resource.
type OutputStream uint32

// Error is the opaque host error-context resource attached to a failed
// stream operation.
type Error uint32

//go:wasmimport wasi:io/error@0.2.0 [method]error.to-debug-string
//go:noescape
func (e Error) ToDebugString() string

// StreamErrorKind distinguishes the two StreamError variants.
type StreamErrorKind uint8

const (
	// StreamErrorKindClosed means the stream has reached its end; this is
	// a normal, expected condition and carries no debug string.
	StreamErrorKindClosed StreamErrorKind = iota
	// StreamErrorKindLastOperationFailed means the previous operation on
	// this stream produced a host-side failure, described by Err.
	StreamErrorKindLastOperationFailed
)

// StreamError is the error variant returned by every streams.go operation.
type StreamError struct {
	Kind StreamErrorKind
	Err  Error
}

// Closed reports whether this error is the Closed variant.
func (e StreamError) Closed() bool { return e.Kind == StreamErrorKindClosed }

// LastOperationFailed reports whether this error is the
// LastOperationFailed variant, returning its payload.
func (e StreamError) LastOperationFailed() (Error, bool) {
	return e.Err, e.Kind == StreamErrorKindLastOperationFailed
}

// Subscribe creates a pollable which becomes ready when this stream is
// ready for reading.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]input-stream.subscribe
//go:noescape
func (s InputStream) Subscribe() poll.Pollable

// Read performs a non-blocking read of at most n bytes.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]input-stream.read
//go:noescape
func (s InputStream) Read(n uint64) cm.Result[cm.List[byte], cm.List[byte], StreamError]

// ResourceDrop releases the host-side resource backing this handle.
//
//go:wasmimport wasi:io/streams@0.2.0 [resource-drop]input-stream
//go:noescape
func (s InputStream) ResourceDrop()

// Subscribe creates a pollable which becomes ready when this stream is
// ready for writing.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]output-stream.subscribe
//go:noescape
func (s OutputStream) Subscribe() poll.Pollable

// CheckWrite reports how many bytes may currently be written without
// blocking.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]output-stream.check-write
//go:noescape
func (s OutputStream) CheckWrite() cm.Result[uint64, uint64, StreamError]

// Write issues a single non-blocking write. The caller must have already
// confirmed via CheckWrite that len(contents) bytes may be accepted.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]output-stream.write
//go:noescape
func (s OutputStream) Write(contents cm.List[byte]) cm.Result[struct{}, struct{}, StreamError]

// Flush starts a non-blocking flush; the stream's pollable becomes ready
// once the flush has completed.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]output-stream.flush
//go:noescape
func (s OutputStream) Flush() cm.Result[struct{}, struct{}, StreamError]

// Splice moves up to n bytes directly from src into this output stream
// without round-tripping through guest memory.
//
//go:wasmimport wasi:io/streams@0.2.0 [method]output-stream.splice
//go:noescape
func (s OutputStream) Splice(src InputStream, n uint64) cm.Result[uint64, uint64, StreamError]

// ResourceDrop releases the host-side resource backing this handle.
//
//go:wasmimport wasi:io/streams@0.2.0 [resource-drop]output-stream
//go:noescape
func (s OutputStream) ResourceDrop()
