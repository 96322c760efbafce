package httpx

import (
	"errors"
	"strconv"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/http/types"
)

func contentLengthString(n uint64) string { return strconv.FormatUint(n, 10) }

// encodeOutgoingRequest builds a host outgoing-request from req, per
// spec.md §4.6. Each host setter can reject the value it's given; a
// rejection surfaces as a structured error naming the offending field.
func encodeOutgoingRequest(req *Request[Body]) (types.OutgoingRequest, error) {
	fields, err := headerToFields(req.Headers)
	if err != nil {
		return 0, err
	}
	wasiReq := types.NewOutgoingRequest(fields)

	if res := wasiReq.SetMethod(methodToWasi(req.Method)); res.IsErr() {
		return 0, invalidMethod(req.Method)
	}

	scheme := req.Scheme
	if scheme == "" {
		scheme = SchemeHTTPS // default to secure when absent (spec.md §4.6)
	}
	if res := wasiReq.SetScheme(cm.Some(schemeToWasi(scheme))); res.IsErr() {
		return 0, invalidScheme(scheme)
	}

	if req.Authority != "" {
		if res := wasiReq.SetAuthority(cm.Some(req.Authority)); res.IsErr() {
			return 0, invalidAuthority(req.Authority, errors.New("rejected by host"))
		}
	}

	if req.Path != "" {
		if res := wasiReq.SetPathWithQuery(cm.Some(req.Path)); res.IsErr() {
			return 0, invalidPathAndQuery(req.Path, errors.New("rejected by host"))
		}
	}

	return wasiReq, nil
}

// decodeIncomingRequest converts a host incoming-request into a Request,
// wiring its body to the incoming-body child (spec.md §4.6). Construction
// always succeeds for well-formed host values; consuming the body twice
// is a programmer error and panics (spec.md §5).
func decodeIncomingRequest(ir types.IncomingRequest) (*Request[Body], error) {
	headers := fieldsToHeader(ir.Headers())
	hint, err := BodyHintFromHeaders(headers)
	if err != nil {
		return nil, err
	}

	var scheme, authority, path string
	if opt := ir.Scheme(); !opt.None() {
		scheme = schemeFromWasi(*opt.Some())
	}
	if opt := ir.Authority(); !opt.None() {
		authority = *opt.Some()
	}
	if opt := ir.PathWithQuery(); !opt.None() {
		path = *opt.Some()
	}

	consumeRes := ir.Consume()
	if consumeRes.IsErr() {
		panic("httpx: incoming request already consumed")
	}
	body := newIncoming(*consumeRes.OK(), hint)

	return &Request[Body]{
		Method:    methodFromWasi(ir.Method()),
		Scheme:    scheme,
		Authority: authority,
		Path:      path,
		Headers:   headers,
		Body:      body,
	}, nil
}

// decodeIncomingResponse converts a host incoming-response into a
// Response, wiring its body the same way decodeIncomingRequest does.
func decodeIncomingResponse(ir types.IncomingResponse) (*Response[Body], error) {
	headers := fieldsToHeader(ir.Headers())
	hint, err := BodyHintFromHeaders(headers)
	if err != nil {
		return nil, err
	}

	consumeRes := ir.Consume()
	if consumeRes.IsErr() {
		panic("httpx: incoming response already consumed")
	}
	body := newIncoming(*consumeRes.OK(), hint)

	return &Response[Body]{
		Status:  ir.Status(),
		Headers: headers,
		Body:    body,
	}, nil
}

// encodeOutgoingResponse builds a host outgoing-response from resp,
// auto-appending Content-Length when the body advertises a known length
// (spec.md §4.8).
func encodeOutgoingResponse(resp *Response[Body]) (types.OutgoingResponse, error) {
	headers := resp.Headers
	if headers == nil {
		headers = NewHeader()
	}
	if n, ok := resp.Body.ContentLength(); ok && headers.Get("Content-Length") == "" {
		headers = headers.Clone()
		headers.Set("Content-Length", contentLengthString(n))
	}

	fields, err := headerToFields(headers)
	if err != nil {
		return 0, err
	}
	wasiResp := types.NewOutgoingResponse(fields)
	if res := wasiResp.SetStatusCode(resp.Status); res.IsErr() {
		return 0, invalidStatus(resp.Status)
	}
	return wasiResp, nil
}
