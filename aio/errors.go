package aio

import (
	"errors"
	"io"
)

// errEOF is returned by Read once the underlying input stream has closed.
// This is Go's convention (io.EOF), not the crate's Ok(0): a Go io.Reader
// signals end of stream through an error, never through a silent zero
// return, so Read adapts the original's "Ok(0) means closed" contract to it.
var errEOF = io.EOF

// ErrClosed is returned by Write/Flush once the underlying output stream
// has closed for writing.
var ErrClosed = errors.New("aio: stream closed")
