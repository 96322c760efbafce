package xtime

import (
	"iter"
	"time"

	"github.com/badu/wstd/runtime"
)

// Interval yields an Instant every d after the previous yield; the first
// item arrives after the initial delay (spec.md §4.10).
func Interval(y *runtime.Yielder, d time.Duration) iter.Seq[Instant] {
	return func(yield func(Instant) bool) {
		for {
			instant := After(d).Wait(y)
			if !yield(instant) {
				return
			}
		}
	}
}
