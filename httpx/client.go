package httpx

import (
	"time"

	"go.bytecodealliance.org/cm"
	"go.uber.org/zap"

	"github.com/badu/wstd/internal/wasip2/http/outgoinghandler"
	"github.com/badu/wstd/internal/wasip2/http/types"
	"github.com/badu/wstd/runtime"
)

// Client sends outgoing HTTP requests through the host's outgoing-handler
// (spec.md §4.7). The zero value is ready to use.
type Client struct {
	connectTimeout      *time.Duration
	firstByteTimeout    *time.Duration
	betweenBytesTimeout *time.Duration
}

// NewClient returns a Client with no timeouts configured.
func NewClient() *Client { return &Client{} }

// SetConnectTimeout bounds how long the host may take to establish the
// underlying connection.
func (c *Client) SetConnectTimeout(d time.Duration) { c.connectTimeout = &d }

// SetFirstByteTimeout bounds how long the host may take to deliver the
// response head.
func (c *Client) SetFirstByteTimeout(d time.Duration) { c.firstByteTimeout = &d }

// SetBetweenBytesTimeout bounds the gap the host will tolerate between
// successive response body frames.
func (c *Client) SetBetweenBytesTimeout(d time.Duration) { c.betweenBytesTimeout = &d }

func (c *Client) wasiOptions() (cm.Option[types.RequestOptions], error) {
	if c.connectTimeout == nil && c.firstByteTimeout == nil && c.betweenBytesTimeout == nil {
		return cm.None[types.RequestOptions](), nil
	}
	opts := types.NewRequestOptions()
	if c.connectTimeout != nil {
		if res := opts.SetConnectTimeout(cm.Some(uint64(*c.connectTimeout))); res.IsErr() {
			return cm.Option[types.RequestOptions]{}, wrapf(errNotSupported, "setting connect timeout")
		}
	}
	if c.firstByteTimeout != nil {
		if res := opts.SetFirstByteTimeout(cm.Some(uint64(*c.firstByteTimeout))); res.IsErr() {
			return cm.Option[types.RequestOptions]{}, wrapf(errNotSupported, "setting first-byte timeout")
		}
	}
	if c.betweenBytesTimeout != nil {
		if res := opts.SetBetweenBytesTimeout(cm.Some(uint64(*c.betweenBytesTimeout))); res.IsErr() {
			return cm.Option[types.RequestOptions]{}, wrapf(errNotSupported, "setting between-bytes timeout")
		}
	}
	return cm.Some(opts), nil
}

// Send dispatches req and returns the decoded response, streaming the
// request body and awaiting the response head concurrently via a
// try-zip join: if either fails, the other's result is dropped and the
// first error observed is returned (spec.md §4.7).
func (c *Client) Send(y *runtime.Yielder, req *Request[Body]) (*Response[Body], error) {
	wasiReq, err := encodeOutgoingRequest(req)
	if err != nil {
		return nil, err
	}
	bodyRes := wasiReq.Body()
	if bodyRes.IsErr() {
		panic("httpx: outgoing request body already taken")
	}
	outgoingBody := *bodyRes.OK()

	options, err := c.wasiOptions()
	if err != nil {
		return nil, err
	}

	handleRes := outgoinghandler.Handle(wasiReq, options)
	if handleRes.IsErr() {
		return nil, wrapf(hostError(handleRes.Err()), "sending request")
	}
	future := *handleRes.OK()
	logger.Debug("httpx: request dispatched", zap.String("method", req.Method), zap.String("path", req.Path))

	body := req.Body
	_, resp, err := runtime.TryZip2(y,
		func(y *runtime.Yielder) (struct{}, error) {
			return struct{}{}, body.send(y, outgoingBody)
		},
		func(y *runtime.Yielder) (*Response[Body], error) {
			sub := runtime.Current().Schedule(future.Subscribe())
			y.Await(sub.WaitFor())
			sub.Close()
			return decodeFutureIncomingResponse(future)
		},
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func decodeFutureIncomingResponse(future types.FutureIncomingResponse) (*Response[Body], error) {
	opt := future.Get()
	if opt.None() {
		panic("httpx: future incoming response ready but Get returned None")
	}
	outer := *opt.Some()
	if outer.IsErr() {
		panic("httpx: future incoming response Get called twice")
	}
	inner := outer.OK()
	if inner.IsErr() {
		return nil, wrapf(hostError(inner.Err()), "sending request")
	}
	return decodeIncomingResponse(*inner.OK())
}
