package httpx

import (
	"errors"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/http/incominghandler"
	"github.com/badu/wstd/internal/wasip2/http/types"
	"github.com/badu/wstd/runtime"
)

// Responder is the write-once handle a server handler uses to commit its
// response for one incoming request (spec.md §4.8). It must be consumed
// exactly once, via either Respond or Fail: Uncommitted -> Committed ->
// Finished (spec.md §3.6). A second Respond/Fail call, in either order, is
// a programmer error and panics rather than setting the host outparam
// twice (spec.md §5).
type Responder struct {
	outparam  incominghandler.ResponseOutparam
	committed bool
}

// commit marks this Responder committed, panicking if it already was.
func (r *Responder) commit() {
	if r.committed {
		panic("httpx: Responder already committed a response")
	}
	r.committed = true
}

// NewResponder wraps a raw outparam handle. Serve uses it once per
// incoming request.
func NewResponder(outparam incominghandler.ResponseOutparam) *Responder {
	return &Responder{outparam: outparam}
}

// Respond commits response, sending status and headers immediately and then
// streaming the body. The outparam is set before the body begins sending,
// so the peer can start reading the head while the body is still in
// flight (spec.md §4.8).
func (r *Responder) Respond(y *runtime.Yielder, response *Response[Body]) error {
	wasiResp, err := encodeOutgoingResponse(response)
	if err != nil {
		return err
	}

	bodyRes := wasiResp.Body()
	if bodyRes.IsErr() {
		panic("httpx: outgoing response body already taken")
	}
	outgoingBody := *bodyRes.OK()

	r.commit()
	incominghandler.SetOK(r.outparam, wasiResp)
	logger.Debug("httpx: response committed")

	body := response.Body
	if err := body.send(y, outgoingBody); err != nil {
		return wrapf(err, "sending response body")
	}
	return nil
}

// Handler processes one decoded incoming request and produces the response
// to commit, or an error to fail with.
type Handler func(y *runtime.Yielder, req *Request[Body]) (*Response[Body], error)

// Serve decodes an incoming request, runs handler to completion inside a
// fresh BlockOn, and commits the result through responder. This is the Go
// shape of the original crate's `http_server` macro-generated main: decode,
// dispatch, respond-or-fail (spec.md §4.8). A server's main package calls
// this once per request from its hand-written wasmexport `handle` stub.
func Serve(ir types.IncomingRequest, outparam incominghandler.ResponseOutparam, handler Handler) {
	responder := NewResponder(outparam)
	runtime.BlockOn(func(y *runtime.Yielder) struct{} {
		req, err := decodeIncomingRequest(ir)
		if err != nil {
			responder.Fail(err)
			return struct{}{}
		}
		resp, err := handler(y, req)
		if err != nil {
			responder.Fail(err)
			return struct{}{}
		}
		if err := responder.Respond(y, resp); err != nil {
			logger.Error("httpx: response body send failed after commit")
		}
		return struct{}{}
	})
}

// Fail commits err as the response, surfacing it to the peer as a host
// ErrorCode. If err already carries one (from a prior httpx operation),
// that code is reused; otherwise it is reported as an internal error
// (spec.md §4.8).
func (r *Responder) Fail(err error) error {
	code := types.ErrorCodeInternalError(cm.Some(err.Error()))
	var he *Error
	if errors.As(err, &he) {
		if c, ok := he.HostErrorCode(); ok {
			code = c
		}
	}
	r.commit()
	incominghandler.SetErr(r.outparam, code)
	logger.Debug("httpx: response failed")
	return err
}
