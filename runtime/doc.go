/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package runtime implements the single-threaded cooperative task scheduler
// and readiness reactor this module's async surface is built on
// (spec.md §4.1, §4.2).
//
// There is exactly one Reactor alive at a time, for the dynamic extent of a
// single BlockOn call. Tasks are plain Go functions taking a *Yielder, which
// is how they suspend on an Awaitable (a host pollable subscription, or
// another task's completion) without the caller needing a real OS thread per
// task: each Task runs on its own goroutine, but a two-channel rendezvous
// with the scheduler guarantees only one goroutine — the running task, or
// the driver loop itself — executes at any instant. That is what lets the
// reactor's bookkeeping (subscriptions, ready list) go without locks, exactly
// as spec.md §5 requires of a single-threaded cooperative runtime.
package runtime

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the *zap.Logger the reactor and its collaborators use
// for debug-level subscription/task lifecycle tracing. The default is a
// no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
