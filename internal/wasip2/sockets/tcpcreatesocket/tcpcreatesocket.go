// Package tcpcreatesocket mirrors `wasi:sockets/tcp-create-socket`.
package tcpcreatesocket

import (
	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/sockets/network"
	"github.com/badu/wstd/internal/wasip2/sockets/tcp"
)

// CreateTCPSocket creates a new, unbound TCP socket for the given address
// family.
//
//go:wasmimport wasi:sockets/tcp-create-socket@0.2.0 create-tcp-socket
//go:noescape
func CreateTCPSocket(family network.IPAddressFamily) cm.Result[tcp.Socket, tcp.Socket, network.ErrorCode]
