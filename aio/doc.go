/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package aio wraps the wasi:io/streams resources in the shapes this
// module's async surface is built on (spec.md §4.3, §4.4): a readable
// stream whose readiness is a runtime.Awaitable, a writable stream whose
// readiness likewise is, and a zero-copy splice path between the two.
package aio

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the *zap.Logger used to warn when a read stays ready
// with no data past maxEmptyReadRetries. The default is a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
