/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Package nett is the TCP surface built on wasi:sockets (spec.md §4.9): a
// TcpListener that binds and accepts, and a TcpStream that connects and
// splits into directionally-shutting-down halves.
package nett

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the *zap.Logger used for debug-level accept/connect
// lifecycle tracing. The default is a no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
