// Package incominghandler mirrors `wasi:http/incoming-handler`, the export
// the host calls into for every incoming request. `ResponseOutparam` is the
// write-once slot a guest server uses to commit its response (spec.md §3.6).
package incominghandler

import "github.com/badu/wstd/internal/wasip2/http/types"

// ResponseOutparam is the write-once handle through which a server commits
// either a response or an error code for one incoming request.
type ResponseOutparam uint32

// responseOutparamSet commits the outparam. Per spec.md §3.6 this may be
// called exactly once for a given ResponseOutparam.
//
//go:wasmimport wasi:http/incoming-handler@0.2.0 [static]response-outparam.set
//go:noescape
func responseOutparamSet(param ResponseOutparam, ok bool, response types.OutgoingResponse, errCode types.ErrorCode)

// SetOK commits a successful response.
func SetOK(param ResponseOutparam, response types.OutgoingResponse) {
	responseOutparamSet(param, true, response, types.ErrorCode{})
}

// SetErr commits a failure, to be surfaced to the peer as errCode.
func SetErr(param ResponseOutparam, errCode types.ErrorCode) {
	responseOutparamSet(param, false, types.OutgoingResponse(0), errCode)
}
