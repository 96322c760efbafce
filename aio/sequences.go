package aio

import (
	"fmt"
	"iter"

	"github.com/badu/wstd/runtime"
)

// defaultChunkSize is the chunk size Chunks uses when the caller doesn't
// need a specific one (mirrors the crate's AsyncInputStream::into_stream).
const defaultChunkSize = 8 * 1024

// Chunks turns this stream into a lazy sequence of up-to-chunkSize byte
// slices, suspending the calling task between chunks exactly like Read
// does. Iteration stops, with no error, once the stream closes; a host
// failure surfaces as the sequence's final (nil, err) pair.
func (a *AsyncInputStream) Chunks(y *runtime.Yielder, chunkSize int) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		empty := 0
		for {
			a.ready(y)
			res := a.stream.Read(uint64(chunkSize))
			if res.IsErr() {
				streamErr := res.Err()
				if streamErr.Closed() {
					return
				}
				hostErr, _ := streamErr.LastOperationFailed()
				yield(nil, fmt.Errorf("aio: chunks: %s", hostErr.ToDebugString()))
				return
			}
			data := res.OK().Slice()
			if len(data) == 0 {
				empty++
				if empty >= maxEmptyReadRetries {
					yield(nil, fmt.Errorf("aio: chunks: exceeded %d empty reads while stream reported ready", maxEmptyReadRetries))
					return
				}
				continue
			}
			empty = 0
			chunk := append([]byte(nil), data...)
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// DefaultChunks is Chunks with the module's default 8KiB chunk size.
func (a *AsyncInputStream) DefaultChunks(y *runtime.Yielder) iter.Seq2[[]byte, error] {
	return a.Chunks(y, defaultChunkSize)
}

// Bytes turns this stream into a lazy sequence of individual bytes, built
// on top of Chunks so the underlying reads still move in efficient
// batches.
func (a *AsyncInputStream) Bytes(y *runtime.Yielder) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for chunk, err := range a.DefaultChunks(y) {
			if err != nil {
				yield(0, err)
				return
			}
			for _, b := range chunk {
				if !yield(b, nil) {
					return
				}
			}
		}
	}
}
