package xtime

import (
	"time"

	"github.com/badu/wstd/internal/wasip2/clocks/monotonicclock"
	"github.com/badu/wstd/runtime"
)

// Timer is a one-shot async alarm (spec.md §4.10). The zero value, as
// produced by Never, never resolves.
type Timer struct {
	sub *runtime.AsyncPollable
}

// Never returns a Timer that never fires.
func Never() Timer { return Timer{} }

// At returns a Timer that fires at deadline.
func At(deadline Instant) Timer {
	sub := runtime.Current().Schedule(monotonicclock.SubscribeInstant(deadline.raw))
	return Timer{sub: &sub}
}

// After returns a Timer that fires once d has elapsed.
func After(d time.Duration) Timer {
	sub := runtime.Current().Schedule(monotonicclock.SubscribeDuration(monotonicclock.Duration(d)))
	return Timer{sub: &sub}
}

// Wait suspends until the timer fires and returns the observed Instant. A
// Timer returned by Never suspends its caller forever (spec.md §4.10).
func (t Timer) Wait(y *runtime.Yielder) Instant {
	if t.sub == nil {
		y.Await(runtime.PendingForever)
		panic("unreachable")
	}
	y.Await(t.sub.WaitFor())
	t.sub.Close()
	return Now()
}
