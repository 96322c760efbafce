package httpx

import (
	"fmt"
	"iter"

	"github.com/badu/wstd/internal/wasip2/http/types"
	"github.com/badu/wstd/runtime"
)

// maxFrameSize bounds a single host read while draining an incoming body
// (spec.md §4.5.4).
const maxFrameSize = 64 * 1024

// incomingBodyFrames implements the incoming-body-as-frame-source two-state
// decoder: every data frame precedes the single optional trailer frame,
// after which the sequence ends (spec.md §4.5.4's ordering guarantee).
//
// consumed guards the "stream() at most once" invariant (spec.md §5):
// calling this twice against the same body is a programmer error.
func incomingBodyFrames(y *runtime.Yielder, body types.IncomingBody, consumed *bool) iter.Seq2[Frame, error] {
	if *consumed {
		panic("httpx: incoming body stream already taken")
	}
	*consumed = true

	streamRes := body.Stream()
	if streamRes.IsErr() {
		panic("httpx: incoming body stream already taken")
	}
	stream := *streamRes.OK()

	return func(yield func(Frame, error) bool) {
		var sub *runtime.AsyncPollable
		for {
			res := stream.Read(maxFrameSize)
			if res.IsErr() {
				streamErr := res.Err()
				if streamErr.Closed() {
					break
				}
				hostErr, _ := streamErr.LastOperationFailed()
				yield(Frame{}, fmt.Errorf("httpx: reading incoming body stream: %s", hostErr.ToDebugString()))
				return
			}
			data := res.OK().Slice()
			if len(data) == 0 {
				if sub == nil {
					s := runtime.Current().Schedule(stream.Subscribe())
					sub = &s
				}
				y.Await(sub.WaitFor())
				continue
			}
			chunk := append([]byte(nil), data...)
			if !yield(DataFrame(chunk), nil) {
				return
			}
		}
		if sub != nil {
			sub.Close()
		}
		stream.ResourceDrop()

		futureTrailers := types.IncomingBodyFinish(body)
		trailersSub := runtime.Current().Schedule(futureTrailers.Subscribe())
		y.Await(trailersSub.WaitFor())
		trailersSub.Close()

		trailers, err := decodeFutureTrailers(futureTrailers)
		if err != nil {
			yield(Frame{}, err)
			return
		}
		if trailers != nil {
			yield(TrailerFrame(trailers), nil)
		}
	}
}

// decodeFutureTrailers unwraps the doubly-nested future-trailers.get
// result (spec.md §6.1): the outer Result's Err means get() was somehow
// called a second time (a programmer error in this module, since every
// call site guards on having just awaited readiness once), the middle
// Result's Err is a host ErrorCode, and the Option is nil when the peer
// sent no trailers at all.
func decodeFutureTrailers(futureTrailers types.FutureTrailers) (*Header, error) {
	opt := futureTrailers.Get()
	if opt.None() {
		panic("httpx: future-trailers ready but Get returned None")
	}
	outer := *opt.Some()
	if outer.IsErr() {
		return nil, fmt.Errorf("httpx: future-trailers.get called twice")
	}
	middle := outer.OK()
	if middle.IsErr() {
		return nil, wrapf(hostError(middle.Err()), "receiving incoming trailers")
	}
	trailersOpt := middle.OK()
	if trailersOpt.None() {
		return nil, nil
	}
	return fieldsToHeader(*trailersOpt.Some()), nil
}
