// Package monotonicclock mirrors `wasi:clocks/monotonic-clock`.
package monotonicclock

import "github.com/badu/wstd/internal/wasip2/io/poll"

// Instant is a point in time, in nanoseconds, on an unspecified monotonic
// timeline.
type Instant uint64

// Duration is a count of nanoseconds.
type Duration uint64

// Now returns the current value of the monotonic clock.
//
//go:wasmimport wasi:clocks/monotonic-clock@0.2.0 now
//go:noescape
func Now() Instant

// SubscribeInstant returns a pollable that resolves when the clock reaches
// the given instant.
//
//go:wasmimport wasi:clocks/monotonic-clock@0.2.0 subscribe-instant
//go:noescape
func SubscribeInstant(when Instant) poll.Pollable

// SubscribeDuration returns a pollable that resolves after the given
// duration elapses, measured from the moment this function is called.
//
//go:wasmimport wasi:clocks/monotonic-clock@0.2.0 subscribe-duration
//go:noescape
func SubscribeDuration(d Duration) poll.Pollable
