// Package types mirrors the resource- and variant-heavy surface of
// `wasi:http/types`: methods, schemes, header fields, request/response
// resources, bodies and their trailers, and the http error-code enum.
//
// As with the sibling wasip2 packages, every exported handle is a bare
// numeric resource id and every host call is a `go:wasmimport` stub — this
// package only exists to give the rest of the module something concrete to
// compile against (spec.md treats the host interface itself as an external
// collaborator).
package types

import (
	"fmt"

	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/io/poll"
	"github.com/badu/wstd/internal/wasip2/io/streams"
)

// --- method ---

type MethodKind uint8

const (
	MethodKindGet MethodKind = iota
	MethodKindHead
	MethodKindPost
	MethodKindPut
	MethodKindDelete
	MethodKindConnect
	MethodKindOptions
	MethodKindTrace
	MethodKindPatch
	MethodKindOther
)

type Method struct {
	Kind  MethodKind
	Other string
}

func MethodGet() Method     { return Method{Kind: MethodKindGet} }
func MethodHead() Method    { return Method{Kind: MethodKindHead} }
func MethodPost() Method    { return Method{Kind: MethodKindPost} }
func MethodPut() Method     { return Method{Kind: MethodKindPut} }
func MethodDelete() Method  { return Method{Kind: MethodKindDelete} }
func MethodConnect() Method { return Method{Kind: MethodKindConnect} }
func MethodOptions() Method { return Method{Kind: MethodKindOptions} }
func MethodTrace() Method   { return Method{Kind: MethodKindTrace} }
func MethodPatch() Method   { return Method{Kind: MethodKindPatch} }
func MethodOther(s string) Method {
	return Method{Kind: MethodKindOther, Other: s}
}

func (m Method) String() string {
	switch m.Kind {
	case MethodKindGet:
		return "GET"
	case MethodKindHead:
		return "HEAD"
	case MethodKindPost:
		return "POST"
	case MethodKindPut:
		return "PUT"
	case MethodKindDelete:
		return "DELETE"
	case MethodKindConnect:
		return "CONNECT"
	case MethodKindOptions:
		return "OPTIONS"
	case MethodKindTrace:
		return "TRACE"
	case MethodKindPatch:
		return "PATCH"
	default:
		return m.Other
	}
}

// --- scheme ---

type SchemeKind uint8

const (
	SchemeKindHTTP SchemeKind = iota
	SchemeKindHTTPS
	SchemeKindOther
)

type Scheme struct {
	Kind  SchemeKind
	Other string
}

func SchemeHTTP() Scheme  { return Scheme{Kind: SchemeKindHTTP} }
func SchemeHTTPS() Scheme { return Scheme{Kind: SchemeKindHTTPS} }
func SchemeOther(s string) Scheme {
	return Scheme{Kind: SchemeKindOther, Other: s}
}

func (s Scheme) String() string {
	switch s.Kind {
	case SchemeKindHTTP:
		return "http"
	case SchemeKindHTTPS:
		return "https"
	default:
		return s.Other
	}
}

// --- fields (headers / trailers) ---

type FieldName = string
type FieldValue = cm.List[byte]

// FieldEntry is one (name, value) pair as returned by Fields.Entries.
type FieldEntry struct {
	F0 FieldName
	F1 FieldValue
}

// HeaderError is the error a Fields mutation can fail with.
type HeaderError string

func (e HeaderError) String() string { return string(e) }

// Fields is an owned handle to a host header/trailer-field-list resource.
type Fields uint32

//go:wasmimport wasi:http/types@0.2.0 [constructor]fields
//go:noescape
func NewFields() Fields

//go:wasmimport wasi:http/types@0.2.0 [method]fields.get
//go:noescape
func (f Fields) Get(name FieldName) cm.List[FieldValue]

//go:wasmimport wasi:http/types@0.2.0 [method]fields.set
//go:noescape
func (f Fields) Set(name FieldName, value cm.List[FieldValue]) cm.Result[struct{}, struct{}, HeaderError]

//go:wasmimport wasi:http/types@0.2.0 [method]fields.append
//go:noescape
func (f Fields) Append(name FieldName, value FieldValue) cm.Result[struct{}, struct{}, HeaderError]

//go:wasmimport wasi:http/types@0.2.0 [method]fields.delete
//go:noescape
func (f Fields) Delete(name FieldName) cm.Result[struct{}, struct{}, HeaderError]

//go:wasmimport wasi:http/types@0.2.0 [method]fields.entries
//go:noescape
func (f Fields) Entries() cm.List[FieldEntry]

//go:wasmimport wasi:http/types@0.2.0 [method]fields.clone
//go:noescape
func (f Fields) Clone() Fields

//go:wasmimport wasi:http/types@0.2.0 [resource-drop]fields
//go:noescape
func (f Fields) ResourceDrop()

type Trailers = Fields

// --- error-code ---

// ErrorCodeKind enumerates the subset of `wasi:http/types.error-code`
// variants this module distinguishes explicitly; everything else round-trips
// through Other, preserving the host's message.
type ErrorCodeKind uint8

const (
	ErrorCodeKindDNSTimeout ErrorCodeKind = iota
	ErrorCodeKindConnectionRefused
	ErrorCodeKindConnectionTimeout
	ErrorCodeKindConnectTimeout
	ErrorCodeKindFirstByteTimeout
	ErrorCodeKindBetweenBytesTimeout
	ErrorCodeKindHTTPRequestBodySize
	ErrorCodeKindHTTPResponseIncomplete
	ErrorCodeKindInternalError
	ErrorCodeKindOther
)

// ErrorCode is the tagged union `wasi:http/types.error-code`. Only
// InternalError carries a payload in this reduced model (the other
// payload-carrying variants of the full wit enum collapse into Other with
// their host-provided message preserved).
type ErrorCode struct {
	Kind    ErrorCodeKind
	Message cm.Option[string]
}

func ErrorCodeInternalError(msg cm.Option[string]) ErrorCode {
	return ErrorCode{Kind: ErrorCodeKindInternalError, Message: msg}
}

func ErrorCodeOther(name string) ErrorCode {
	return ErrorCode{Kind: ErrorCodeKindOther, Message: cm.Some(name)}
}

func (e ErrorCode) String() string {
	if e.Message.None() {
		return e.kindName()
	}
	return fmt.Sprintf("%s: %s", e.kindName(), *e.Message.Some())
}

func (e ErrorCode) kindName() string {
	switch e.Kind {
	case ErrorCodeKindDNSTimeout:
		return "DNS-timeout"
	case ErrorCodeKindConnectionRefused:
		return "connection-refused"
	case ErrorCodeKindConnectionTimeout:
		return "connection-timeout"
	case ErrorCodeKindConnectTimeout:
		return "connect-timeout"
	case ErrorCodeKindFirstByteTimeout:
		return "first-byte-timeout"
	case ErrorCodeKindBetweenBytesTimeout:
		return "between-bytes-timeout"
	case ErrorCodeKindHTTPRequestBodySize:
		return "HTTP-request-body-size"
	case ErrorCodeKindHTTPResponseIncomplete:
		return "HTTP-response-incomplete"
	case ErrorCodeKindInternalError:
		return "internal-error"
	default:
		return "other"
	}
}

// --- request options ---

// RequestOptions is an owned handle to a host request-options resource.
type RequestOptions uint32

//go:wasmimport wasi:http/types@0.2.0 [constructor]request-options
//go:noescape
func NewRequestOptions() RequestOptions

//go:wasmimport wasi:http/types@0.2.0 [method]request-options.set-connect-timeout
//go:noescape
func (r RequestOptions) SetConnectTimeout(d cm.Option[uint64]) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]request-options.set-first-byte-timeout
//go:noescape
func (r RequestOptions) SetFirstByteTimeout(d cm.Option[uint64]) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]request-options.set-between-bytes-timeout
//go:noescape
func (r RequestOptions) SetBetweenBytesTimeout(d cm.Option[uint64]) cm.Result[struct{}, struct{}, struct{}]

// --- bodies ---

// IncomingBody is an owned handle to a host incoming-body resource.
type IncomingBody uint32

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-body.stream
//go:noescape
func (b IncomingBody) Stream() cm.Result[streams.InputStream, streams.InputStream, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [static]incoming-body.finish
//go:noescape
func IncomingBodyFinish(b IncomingBody) FutureTrailers

// OutgoingBody is an owned handle to a host outgoing-body resource.
type OutgoingBody uint32

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-body.write
//go:noescape
func (b OutgoingBody) Write() cm.Result[streams.OutputStream, streams.OutputStream, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [static]outgoing-body.finish
//go:noescape
func OutgoingBodyFinish(b OutgoingBody, trailers cm.Option[Trailers]) cm.Result[struct{}, struct{}, ErrorCode]

// FutureTrailers is an owned handle to the future produced by
// IncomingBodyFinish; it resolves exactly once to the trailers the peer
// sent, if any.
type FutureTrailers uint32

//go:wasmimport wasi:http/types@0.2.0 [method]future-trailers.subscribe
//go:noescape
func (f FutureTrailers) Subscribe() poll.Pollable

// FutureTrailersResult is the doubly-wrapped result future-trailers.get
// resolves to: the outer Result's Err means "called get twice", the middle
// Result's Err is a host ErrorCode, and the Option is None when the peer
// sent no trailers at all.
type FutureTrailersResult = cm.Result[cm.Result[cm.Option[Trailers], cm.Option[Trailers], ErrorCode], cm.Result[cm.Option[Trailers], cm.Option[Trailers], ErrorCode], struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]future-trailers.get
//go:noescape
func (f FutureTrailers) Get() cm.Option[FutureTrailersResult]

// --- incoming request / response ---

// IncomingRequest is an owned handle to a host incoming-request resource,
// given to the component by the host's incoming-handler export.
type IncomingRequest uint32

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.method
//go:noescape
func (r IncomingRequest) Method() Method

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.path-with-query
//go:noescape
func (r IncomingRequest) PathWithQuery() cm.Option[string]

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.scheme
//go:noescape
func (r IncomingRequest) Scheme() cm.Option[Scheme]

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.authority
//go:noescape
func (r IncomingRequest) Authority() cm.Option[string]

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.headers
//go:noescape
func (r IncomingRequest) Headers() Fields

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-request.consume
//go:noescape
func (r IncomingRequest) Consume() cm.Result[IncomingBody, IncomingBody, struct{}]

// IncomingResponse is an owned handle to a host incoming-response resource.
type IncomingResponse uint32

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-response.status
//go:noescape
func (r IncomingResponse) Status() uint16

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-response.headers
//go:noescape
func (r IncomingResponse) Headers() Fields

//go:wasmimport wasi:http/types@0.2.0 [method]incoming-response.consume
//go:noescape
func (r IncomingResponse) Consume() cm.Result[IncomingBody, IncomingBody, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [resource-drop]incoming-response
//go:noescape
func (r IncomingResponse) ResourceDrop()

// --- outgoing request / response ---

// OutgoingRequest is an owned handle to a host outgoing-request resource,
// built by the guest before handing it to outgoing-handler.handle.
type OutgoingRequest uint32

//go:wasmimport wasi:http/types@0.2.0 [constructor]outgoing-request
//go:noescape
func NewOutgoingRequest(headers Fields) OutgoingRequest

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-request.set-method
//go:noescape
func (r OutgoingRequest) SetMethod(m Method) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-request.set-scheme
//go:noescape
func (r OutgoingRequest) SetScheme(s cm.Option[Scheme]) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-request.set-authority
//go:noescape
func (r OutgoingRequest) SetAuthority(a cm.Option[string]) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-request.set-path-with-query
//go:noescape
func (r OutgoingRequest) SetPathWithQuery(p cm.Option[string]) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-request.body
//go:noescape
func (r OutgoingRequest) Body() cm.Result[OutgoingBody, OutgoingBody, struct{}]

// OutgoingResponse is an owned handle to a host outgoing-response resource.
type OutgoingResponse uint32

//go:wasmimport wasi:http/types@0.2.0 [constructor]outgoing-response
//go:noescape
func NewOutgoingResponse(headers Fields) OutgoingResponse

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-response.set-status-code
//go:noescape
func (r OutgoingResponse) SetStatusCode(code uint16) cm.Result[struct{}, struct{}, struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]outgoing-response.body
//go:noescape
func (r OutgoingResponse) Body() cm.Result[OutgoingBody, OutgoingBody, struct{}]

// FutureIncomingResponse is an owned handle to the future returned by
// outgoing-handler.handle.
type FutureIncomingResponse uint32

//go:wasmimport wasi:http/types@0.2.0 [method]future-incoming-response.subscribe
//go:noescape
func (f FutureIncomingResponse) Subscribe() poll.Pollable

// FutureIncomingResponseResult mirrors the doubly-wrapped result
// future-incoming-response.get resolves to.
type FutureIncomingResponseResult = cm.Result[cm.Result[IncomingResponse, IncomingResponse, ErrorCode], cm.Result[IncomingResponse, IncomingResponse, ErrorCode], struct{}]

//go:wasmimport wasi:http/types@0.2.0 [method]future-incoming-response.get
//go:noescape
func (f FutureIncomingResponse) Get() cm.Option[FutureIncomingResponseResult]

//go:wasmimport wasi:http/types@0.2.0 [resource-drop]future-incoming-response
//go:noescape
func (f FutureIncomingResponse) ResourceDrop()
