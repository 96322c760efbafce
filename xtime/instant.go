package xtime

import (
	"time"

	"github.com/badu/wstd/internal/wasip2/clocks/monotonicclock"
)

// Instant is a point on the host's monotonic timeline (spec.md §4.10).
type Instant struct {
	raw monotonicclock.Instant
}

// Now returns the current instant.
func Now() Instant {
	return Instant{raw: monotonicclock.Now()}
}

// DurationSince returns the duration elapsed between earlier and i. The
// result is negative if earlier is later than i.
func (i Instant) DurationSince(earlier Instant) time.Duration {
	return time.Duration(int64(i.raw) - int64(earlier.raw))
}

// Add returns the instant d after i.
func (i Instant) Add(d time.Duration) Instant {
	return Instant{raw: monotonicclock.Instant(int64(i.raw) + int64(d))}
}

// SystemTime is a wall-clock reading, useful for talking to entities
// outside this component instance (spec.md §4.10).
type SystemTime struct {
	seconds uint64
	nanos   uint32
}

// UnixEpoch is the zero value of the wall clock.
var UnixEpoch = SystemTime{}

// NowSystem returns the current wall-clock time.
func NowSystem() SystemTime {
	dt := wallClockNow()
	return SystemTime{seconds: dt.Seconds, nanos: dt.Nanoseconds}
}

// DurationSince returns the duration since earlier, or an error if earlier
// is later than t (the original crate reports this as SystemTimeError
// rather than a negative duration).
func (t SystemTime) DurationSince(earlier SystemTime) (time.Duration, error) {
	if t.seconds < earlier.seconds || (t.seconds == earlier.seconds && t.nanos < earlier.nanos) {
		return 0, errSystemTimeBeforeEarlier
	}
	secs := t.seconds - earlier.seconds
	var nanos int64
	if t.nanos >= earlier.nanos {
		nanos = int64(t.nanos - earlier.nanos)
	} else {
		secs--
		nanos = int64(t.nanos) + int64(time.Second) - int64(earlier.nanos)
	}
	return time.Duration(secs)*time.Second + time.Duration(nanos), nil
}
