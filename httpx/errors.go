package httpx

import (
	"errors"
	"fmt"

	"github.com/badu/wstd/internal/wasip2/http/types"
)

// Sentinel kinds for the structured validation failures spec.md §7 names.
// Each is wrapped with the offending value via Errorf so %w-chasing code
// (errors.Is) still finds the kind underneath the context.
var (
	ErrInvalidHeader        = errors.New("httpx: invalid header")
	ErrInvalidMethod        = errors.New("httpx: invalid method")
	ErrInvalidScheme        = errors.New("httpx: invalid scheme")
	ErrInvalidAuthority     = errors.New("httpx: invalid authority")
	ErrInvalidPathAndQuery  = errors.New("httpx: invalid path and query")
	ErrInvalidContentLength = errors.New("httpx: invalid content-length")
	ErrInvalidStatus        = errors.New("httpx: invalid status")
	ErrStreamClosed         = errors.New("httpx: stream closed")

	// errNotSupported is returned when the host rejects a request option it
	// cannot honor (spec.md §4.7).
	errNotSupported = errors.New("httpx: option not supported by host")
)

// Error is the opaque error type every public httpx operation returns,
// carrying a chain of context annotations the way the original crate's
// anyhow::Error does, plus an optional host ErrorCode for operations that
// failed on the host side (spec.md §7's HostError kind).
type Error struct {
	msg  string
	code *types.ErrorCode
	err  error
}

func (e *Error) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// HostErrorCode reports the host ErrorCode attached anywhere in this
// error's chain, if any.
func (e *Error) HostErrorCode() (types.ErrorCode, bool) {
	for cur := e; cur != nil; {
		if cur.code != nil {
			return *cur.code, true
		}
		var next *Error
		if !errors.As(cur.err, &next) {
			return types.ErrorCode{}, false
		}
		cur = next
	}
	return types.ErrorCode{}, false
}

// wrapf annotates err with a context message, matching anyhow's .context().
func wrapf(err error, format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...), err: err}
}

// hostError wraps a host ErrorCode as the root of an error chain.
func hostError(code types.ErrorCode) *Error {
	c := code
	return &Error{msg: "host error: " + code.String(), code: &c}
}

func invalidHeader(name string, cause error) *Error {
	return wrapf(fmt.Errorf("%w: %s: %w", ErrInvalidHeader, name, cause), "invalid header %q", name)
}

func invalidMethod(value string) *Error {
	return wrapf(fmt.Errorf("%w: %q", ErrInvalidMethod, value), "invalid method %q", value)
}

func invalidScheme(value string) *Error {
	return wrapf(fmt.Errorf("%w: %q", ErrInvalidScheme, value), "invalid scheme %q", value)
}

func invalidAuthority(value string, cause error) *Error {
	return wrapf(fmt.Errorf("%w: %q: %w", ErrInvalidAuthority, value, cause), "invalid authority %q", value)
}

func invalidPathAndQuery(value string, cause error) *Error {
	return wrapf(fmt.Errorf("%w: %q: %w", ErrInvalidPathAndQuery, value, cause), "invalid path and query %q", value)
}

func invalidContentLength(value string) *Error {
	return wrapf(fmt.Errorf("%w: %q", ErrInvalidContentLength, value), "invalid content-length %q", value)
}

func invalidStatus(code uint16) *Error {
	return wrapf(fmt.Errorf("%w: %d", ErrInvalidStatus, code), "invalid status %d", code)
}
