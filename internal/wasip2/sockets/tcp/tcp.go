// Package tcp mirrors `wasi:sockets/tcp`.
package tcp

import (
	"go.bytecodealliance.org/cm"

	"github.com/badu/wstd/internal/wasip2/io/poll"
	"github.com/badu/wstd/internal/wasip2/io/streams"
	"github.com/badu/wstd/internal/wasip2/sockets/network"
)

// ShutdownType selects which half (or both) of a connection to shut down.
type ShutdownType uint8

const (
	ShutdownTypeReceive ShutdownType = iota
	ShutdownTypeSend
	ShutdownTypeBoth
)

// Socket is an owned handle to a host TCP socket resource.
type Socket uint32

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.start-bind
//go:noescape
func (s Socket) StartBind(net network.Network, localAddress network.IPSocketAddress) cm.Result[struct{}, struct{}, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.finish-bind
//go:noescape
func (s Socket) FinishBind() cm.Result[struct{}, struct{}, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.start-listen
//go:noescape
func (s Socket) StartListen() cm.Result[struct{}, struct{}, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.finish-listen
//go:noescape
func (s Socket) FinishListen() cm.Result[struct{}, struct{}, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.start-connect
//go:noescape
func (s Socket) StartConnect(net network.Network, remoteAddress network.IPSocketAddress) cm.Result[struct{}, struct{}, network.ErrorCode]

// connectStreams is the (input-stream, output-stream) pair `finish-connect`
// resolves to.
type connectStreams struct {
	Input  streams.InputStream
	Output streams.OutputStream
}

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.finish-connect
//go:noescape
func (s Socket) FinishConnect() cm.Result[connectStreams, connectStreams, network.ErrorCode]

// acceptResult is the (socket, input-stream, output-stream) tuple `accept`
// resolves to.
type acceptResult struct {
	Socket Socket
	Input  streams.InputStream
	Output streams.OutputStream
}

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.accept
//go:noescape
func (s Socket) Accept() cm.Result[acceptResult, acceptResult, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.shutdown
//go:noescape
func (s Socket) Shutdown(how ShutdownType) cm.Result[struct{}, struct{}, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.subscribe
//go:noescape
func (s Socket) Subscribe() poll.Pollable

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.local-address
//go:noescape
func (s Socket) LocalAddress() cm.Result[network.IPSocketAddress, network.IPSocketAddress, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [method]tcp-socket.remote-address
//go:noescape
func (s Socket) RemoteAddress() cm.Result[network.IPSocketAddress, network.IPSocketAddress, network.ErrorCode]

//go:wasmimport wasi:sockets/tcp@0.2.0 [resource-drop]tcp-socket
//go:noescape
func (s Socket) ResourceDrop()

// FinishConnectStreams unpacks FinishConnect's OK payload; a small ergonomic
// helper (not part of the wit signature, but matches the tuple-destructuring
// wit-bindgen-go performs at the call site).
func FinishConnectStreams(r connectStreams) (streams.InputStream, streams.OutputStream) {
	return r.Input, r.Output
}

// AcceptStreams unpacks Accept's OK payload.
func AcceptStreams(r acceptResult) (Socket, streams.InputStream, streams.OutputStream) {
	return r.Socket, r.Input, r.Output
}
