// Package outgoinghandler mirrors `wasi:http/outgoing-handler`.
package outgoinghandler

import (
	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/http/types"
)

// Handle starts sending an outgoing request, returning a future that
// resolves to the response once its head has arrived.
//
//go:wasmimport wasi:http/outgoing-handler@0.2.0 handle
//go:noescape
func Handle(request types.OutgoingRequest, options cm.Option[types.RequestOptions]) cm.Result[types.FutureIncomingResponse, types.FutureIncomingResponse, types.ErrorCode]
