/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"unicode/utf8"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/aio"
	"github.com/badu/wstd/internal/wasip2/http/types"
	"github.com/badu/wstd/runtime"
)

type bodyKind uint8

const (
	bodyInMemory bodyKind = iota
	bodyIncoming
	bodyAdapted
)

// Body is the tagged union every Request/Response body is stored as
// (spec.md §3.4): an in-memory byte slice, a host incoming-body still to
// be read or streamed out, or an arbitrary frame-producing source.
type Body struct {
	kind bodyKind

	// bodyInMemory
	bytes    []byte
	trailers *Header

	// bodyIncoming
	incomingBody types.IncomingBody
	incomingHint BodyHint
	incomingRead bool // Stream() already taken (spec.md §5 "at most once")

	// bodyAdapted
	source FrameSource
}

// Empty returns a body with no content.
func Empty() Body {
	return Body{kind: bodyInMemory}
}

// FromBytes returns an InMemory body wrapping b.
func FromBytes(b []byte) Body {
	return Body{kind: bodyInMemory, bytes: b}
}

// FromString returns an InMemory body wrapping s.
func FromString(s string) Body {
	return Body{kind: bodyInMemory, bytes: []byte(s)}
}

// FromJSON serializes v and returns an InMemory body, or an error if v
// cannot be marshaled.
func FromJSON(v any) (Body, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return Body{}, wrapf(err, "encoding body as JSON")
	}
	return Body{kind: bodyInMemory, bytes: b}, nil
}

// FromReader returns an Adapted body that streams stream's chunks as data
// frames, with no trailers (spec.md §4.5.1's input-stream construction).
func FromReader(stream *aio.AsyncInputStream) Body {
	return Body{kind: bodyAdapted, source: func(y *runtime.Yielder) (Frame, bool, error) {
		buf := make([]byte, 8*1024)
		n, err := stream.Read(y, buf)
		if err != nil {
			// aio.AsyncInputStream.Read reports end of stream as io.EOF, the
			// Go-idiomatic signal for the crate's Ok(0): that is clean
			// termination, not a failure to surface through send/Contents.
			if errors.Is(err, io.EOF) {
				return Frame{}, false, nil
			}
			return Frame{}, false, wrapf(err, "reading adapted body source")
		}
		if n == 0 {
			return Frame{}, false, nil
		}
		return DataFrame(buf[:n]), true, nil
	}}
}

// FromFrameSource returns an Adapted body driven by an arbitrary frame
// generator, the general form of spec.md §4.5.1's "any frame-producing
// async body".
func FromFrameSource(source FrameSource) Body {
	return Body{kind: bodyAdapted, source: source}
}

// newIncoming wires up a body backed directly by a host incoming-body
// resource, as produced when decoding an incoming request or response.
func newIncoming(b types.IncomingBody, hint BodyHint) Body {
	return Body{kind: bodyIncoming, incomingBody: b, incomingHint: hint}
}

// ContentLength reports this body's known length, if any.
func (b *Body) ContentLength() (uint64, bool) {
	switch b.kind {
	case bodyInMemory:
		return uint64(len(b.bytes)), true
	case bodyIncoming:
		return b.incomingHint.ContentLength()
	default:
		return 0, false
	}
}

// Contents drains the body into memory in place and returns the bytes.
// Subsequent calls return the cached slice without re-reading (spec.md
// §4.5.2).
func (b *Body) Contents(y *runtime.Yielder) ([]byte, error) {
	switch b.kind {
	case bodyInMemory:
		return b.bytes, nil
	case bodyIncoming:
		data, trailers, err := b.drainIncoming(y)
		if err != nil {
			return nil, err
		}
		b.kind = bodyInMemory
		b.bytes = data
		b.trailers = trailers
		return b.bytes, nil
	case bodyAdapted:
		var data []byte
		var trailers *Header
		for {
			frame, ok, err := b.source(y)
			if err != nil {
				return nil, wrapf(err, "collecting adapted body")
			}
			if !ok {
				break
			}
			if frame.IsTrailers() {
				trailers = frame.Trailers()
				continue
			}
			data = append(data, frame.Data()...)
		}
		b.kind = bodyInMemory
		b.bytes = data
		b.trailers = trailers
		return b.bytes, nil
	default:
		panic("httpx: unreachable body kind")
	}
}

// StrContents is Contents, validated as UTF-8.
func (b *Body) StrContents(y *runtime.Yielder) (string, error) {
	data, err := b.Contents(y)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", wrapf(errors.New("invalid UTF-8"), "reading body contents as string")
	}
	return string(data), nil
}

// JSON decodes Contents into v.
func (b *Body) JSON(y *runtime.Yielder, v any) error {
	data, err := b.Contents(y)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return wrapf(err, "decoding body contents as JSON")
	}
	return nil
}

// drainIncoming reads the host incoming body to completion via its
// two-state frame decoder, concatenating data and keeping only the
// trailers (spec.md §4.5.4).
func (b *Body) drainIncoming(y *runtime.Yielder) ([]byte, *Header, error) {
	var data []byte
	var trailers *Header
	for frame, err := range incomingBodyFrames(y, b.incomingBody, &b.incomingRead) {
		if err != nil {
			return nil, nil, err
		}
		if frame.IsTrailers() {
			trailers = frame.Trailers()
			continue
		}
		data = append(data, frame.Data()...)
	}
	return data, trailers, nil
}

// send streams this body out through outgoingBody, per the three cases of
// spec.md §4.5.3. Finishing the outgoing body handle is this function's
// responsibility on every success path; on error the handle is
// intentionally left unfinished, which the host treats as a canceled
// response.
func (b *Body) send(y *runtime.Yielder, outgoingBody types.OutgoingBody) error {
	switch b.kind {
	case bodyIncoming:
		return b.sendIncoming(y, outgoingBody)
	case bodyInMemory:
		return b.sendInMemory(y, outgoingBody)
	case bodyAdapted:
		return b.sendAdapted(y, outgoingBody)
	default:
		panic("httpx: unreachable body kind")
	}
}

func (b *Body) openOutgoingStream(outgoingBody types.OutgoingBody) *aio.AsyncOutputStream {
	res := outgoingBody.Write()
	if res.IsErr() {
		panic("httpx: outgoing body already written")
	}
	return aio.NewAsyncOutputStream(*res.OK())
}

func (b *Body) finishOutgoing(outgoingBody types.OutgoingBody, trailers *Header) error {
	var wasiTrailers cm.Option[types.Trailers]
	if trailers != nil {
		fields, err := headerToFields(trailers)
		if err != nil {
			return wrapf(err, "converting trailers for outgoing body")
		}
		wasiTrailers = cm.Some(fields)
	}
	res := types.OutgoingBodyFinish(outgoingBody, wasiTrailers)
	if res.IsErr() {
		return wrapf(hostError(res.Err()), "finishing outgoing body")
	}
	return nil
}

func (b *Body) sendIncoming(y *runtime.Yielder, outgoingBody types.OutgoingBody) error {
	if b.incomingRead {
		panic("httpx: incoming body stream already taken")
	}
	b.incomingRead = true
	streamRes := b.incomingBody.Stream()
	if streamRes.IsErr() {
		panic("httpx: incoming body stream already taken")
	}
	inStream := aio.NewAsyncInputStream(*streamRes.OK())
	outStream := b.openOutgoingStream(outgoingBody)
	if _, err := inStream.CopyTo(y, outStream); err != nil {
		return wrapf(err, "copying incoming body stream to outgoing body stream")
	}
	inStream.Close()
	outStream.Close()

	futureTrailers := types.IncomingBodyFinish(b.incomingBody)
	sub := runtime.Current().Schedule(futureTrailers.Subscribe())
	y.Await(sub.WaitFor())
	sub.Close()

	trailers, err := decodeFutureTrailers(futureTrailers)
	if err != nil {
		return err
	}
	return b.finishOutgoing(outgoingBody, trailers)
}

func (b *Body) sendInMemory(y *runtime.Yielder, outgoingBody types.OutgoingBody) error {
	outStream := b.openOutgoingStream(outgoingBody)
	if err := outStream.WriteAll(y, b.bytes); err != nil {
		return wrapf(err, "writing in-memory body")
	}
	outStream.Close()
	return b.finishOutgoing(outgoingBody, b.trailers)
}

func (b *Body) sendAdapted(y *runtime.Yielder, outgoingBody types.OutgoingBody) error {
	outStream := b.openOutgoingStream(outgoingBody)
	var trailers *Header
	for {
		frame, ok, err := b.source(y)
		if err != nil {
			return wrapf(err, "sending adapted body")
		}
		if !ok {
			break
		}
		if frame.IsTrailers() {
			trailers = frame.Trailers()
			continue
		}
		if err := outStream.WriteAll(y, frame.Data()); err != nil {
			return wrapf(err, "writing adapted body frame")
		}
	}
	outStream.Close()
	return b.finishOutgoing(outgoingBody, trailers)
}
