// Package instancenetwork mirrors `wasi:sockets/instance-network`.
package instancenetwork

import "github.com/badu/wstd/internal/wasip2/sockets/network"

// InstanceNetwork returns the network capability implicitly granted to this
// component instance.
//
//go:wasmimport wasi:sockets/instance-network@0.2.0 instance-network
//go:noescape
func InstanceNetwork() network.Network
