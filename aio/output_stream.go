package aio

import (
	"fmt"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/io/streams"
	"github.com/badu/wstd/runtime"
)

// AsyncOutputStream wraps a wasi:io/streams output-stream resource.
type AsyncOutputStream struct {
	stream streams.OutputStream
	sub    *runtime.AsyncPollable
}

// NewAsyncOutputStream takes ownership of stream.
func NewAsyncOutputStream(stream streams.OutputStream) *AsyncOutputStream {
	return &AsyncOutputStream{stream: stream}
}

func (a *AsyncOutputStream) subscription() runtime.AsyncPollable {
	if a.sub == nil {
		sub := runtime.Current().Schedule(a.stream.Subscribe())
		a.sub = &sub
	}
	return *a.sub
}

func (a *AsyncOutputStream) ready(y *runtime.Yielder) {
	y.Await(a.subscription().WaitFor())
}

// Close drops the subscription and the underlying stream resource.
func (a *AsyncOutputStream) Close() {
	if a.sub != nil {
		a.sub.Close()
	}
	a.stream.ResourceDrop()
}

// Write awaits write readiness and performs at most one host write,
// returning how much of buf was accepted. Callers that need the whole
// buffer written should use WriteAll.
func (a *AsyncOutputStream) Write(y *runtime.Yielder, buf []byte) (int, error) {
	for {
		checkRes := a.stream.CheckWrite()
		if checkRes.IsErr() {
			return 0, a.writeErr(checkRes.Err())
		}
		avail := *checkRes.OK()
		if avail == 0 {
			a.ready(y)
			continue
		}
		writable := len(buf)
		if avail < uint64(writable) {
			writable = int(avail)
		}
		writeRes := a.stream.Write(cm.ToList(buf[:writable]))
		if writeRes.IsErr() {
			return 0, a.writeErr(writeRes.Err())
		}
		return writable, nil
	}
}

// WriteAll repeatedly calls Write until all of buf has been accepted.
func (a *AsyncOutputStream) WriteAll(y *runtime.Yielder, buf []byte) error {
	for len(buf) > 0 {
		n, err := a.Write(y, buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// Flush initiates a flush and awaits its completion.
func (a *AsyncOutputStream) Flush(y *runtime.Yielder) error {
	res := a.stream.Flush()
	if res.IsErr() {
		return a.writeErr(res.Err())
	}
	a.ready(y)
	return nil
}

func (a *AsyncOutputStream) writeErr(streamErr streams.StreamError) error {
	if streamErr.Closed() {
		return ErrClosed
	}
	hostErr, _ := streamErr.LastOperationFailed()
	return fmt.Errorf("aio: write: %s", hostErr.ToDebugString())
}
