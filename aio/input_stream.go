package aio

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/badu/wstd/internal/wasip2/io/streams"
	"github.com/badu/wstd/runtime"
)

// maxEmptyReadRetries bounds the "ready but read returned nothing" loop in
// Read and Chunks. The host is allowed to report readiness without
// guaranteeing a nonempty read, so a handful of empty reads in a row is
// normal; this guards against a misbehaving host spinning the task forever.
const maxEmptyReadRetries = 1000

// AsyncInputStream wraps a wasi:io/streams input-stream resource, exposing
// reads that suspend on the current task's Yielder instead of blocking the
// instance (spec.md §4.3).
type AsyncInputStream struct {
	stream streams.InputStream
	sub    *runtime.AsyncPollable
}

// NewAsyncInputStream takes ownership of stream.
func NewAsyncInputStream(stream streams.InputStream) *AsyncInputStream {
	return &AsyncInputStream{stream: stream}
}

func (a *AsyncInputStream) subscription() runtime.AsyncPollable {
	if a.sub == nil {
		sub := runtime.Current().Schedule(a.stream.Subscribe())
		a.sub = &sub
	}
	return *a.sub
}

func (a *AsyncInputStream) ready(y *runtime.Yielder) {
	y.Await(a.subscription().WaitFor())
}

// Close drops the subscription and the underlying stream resource.
func (a *AsyncInputStream) Close() {
	if a.sub != nil {
		a.sub.Close()
	}
	a.stream.ResourceDrop()
}

// Read awaits read readiness and then performs one host read, copying into
// buf. A zero-length host read does not mean end of stream —
// wasi:io/streams readiness only promises a read attempt won't block, not
// that it will return data — so Read awaits readiness and reads again until
// bytes, a stream-closed error or a host failure arrives. After
// maxEmptyReadRetries empty reads in a row it gives up and returns an error.
func (a *AsyncInputStream) Read(y *runtime.Yielder, buf []byte) (int, error) {
	for empty := 0; ; {
		a.ready(y)
		res := a.stream.Read(uint64(len(buf)))
		if res.IsErr() {
			streamErr := res.Err()
			if streamErr.Closed() {
				// errEOF (io.EOF) is this package's closed signal, standing in
				// for the crate's Ok(0); callers must check for it with
				// errors.Is, not treat every non-nil error as fatal.
				return 0, errEOF
			}
			hostErr, _ := streamErr.LastOperationFailed()
			return 0, fmt.Errorf("aio: read: %s", hostErr.ToDebugString())
		}
		data := res.OK().Slice()
		if len(data) == 0 {
			empty++
			if empty >= maxEmptyReadRetries {
				logger.Warn("aio: read stayed ready with no data past retry bound", zap.Int("retries", empty))
				return 0, fmt.Errorf("aio: read: exceeded %d empty reads while stream reported ready", maxEmptyReadRetries)
			}
			continue
		}
		return copy(buf, data), nil
	}
}

// CopyTo moves the entire remainder of this stream into w using the host's
// splice operation, never round-tripping the bytes through guest memory
// (spec.md §4.3, §4.4).
func (a *AsyncInputStream) CopyTo(y *runtime.Yielder, w *AsyncOutputStream) (uint64, error) {
	var written uint64
	for {
		a.ready(y)
		w.ready(y)
		res := w.stream.Splice(a.stream, maxSpliceLen)
		if res.IsErr() {
			streamErr := res.Err()
			if streamErr.Closed() {
				return written, nil
			}
			hostErr, _ := streamErr.LastOperationFailed()
			return written, fmt.Errorf("aio: copy: %s", hostErr.ToDebugString())
		}
		written += *res.OK()
	}
}

const maxSpliceLen = ^uint64(0)
