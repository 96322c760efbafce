package xtime

import "errors"

// errSystemTimeBeforeEarlier is returned by SystemTime.DurationSince when
// the receiver predates the argument, mirroring the original crate's
// SystemTimeError (spec.md §4.10).
var errSystemTimeBeforeEarlier = errors.New("xtime: supplied instant is later than self")
