package nett

import (
	"net"

	"go.uber.org/zap"

	"github.com/badu/wstd/aio"
	"github.com/badu/wstd/internal/wasip2/io/streams"
	"github.com/badu/wstd/internal/wasip2/sockets/instancenetwork"
	"github.com/badu/wstd/internal/wasip2/sockets/network"
	"github.com/badu/wstd/internal/wasip2/sockets/tcp"
	"github.com/badu/wstd/internal/wasip2/sockets/tcpcreatesocket"
	"github.com/badu/wstd/runtime"
)

// TcpStream is a connected TCP socket, exposing both an AsyncInputStream
// and an AsyncOutputStream (spec.md §4.9).
type TcpStream struct {
	input  *aio.AsyncInputStream
	output *aio.AsyncOutputStream
	socket tcp.Socket
}

func newStream(input streams.InputStream, output streams.OutputStream, socket tcp.Socket) *TcpStream {
	return &TcpStream{
		input:  aio.NewAsyncInputStream(input),
		output: aio.NewAsyncOutputStream(output),
		socket: socket,
	}
}

// Connect resolves host (via the standard resolver) and attempts each
// address in turn, returning the first success or the last error
// observed, matching original_source's ToSocketAddrs loop (spec.md §4.9).
func Connect(y *runtime.Yielder, host string) (*TcpStream, error) {
	addrs, err := net.LookupHost(hostOnly(host))
	if err != nil {
		return nil, err
	}
	_, portStr, err := net.SplitHostPort(host)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for _, a := range addrs {
		stream, err := ConnectAddr(y, net.JoinHostPort(a, portStr))
		if err == nil {
			return stream, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = ErrNoAddresses
	}
	return nil, lastErr
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

// ConnectAddr establishes a connection to the exact address given. Only
// IPv4 is implemented; an IPv6 address returns ErrNotSupported, matching
// original_source's first cut (spec.md §4.9).
func ConnectAddr(y *runtime.Yielder, addr string) (*TcpStream, error) {
	ip, port, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	wasiAddr, isV6, err := addrToWasi(ip, port)
	if err != nil {
		return nil, err
	}
	if isV6 {
		return nil, ErrNotSupported
	}

	createRes := tcpcreatesocket.CreateTCPSocket(network.IPAddressFamilyIPv4)
	if createRes.IsErr() {
		return nil, hostErr(createRes.Err(), "creating socket")
	}
	socket := *createRes.OK()
	netw := instancenetwork.InstanceNetwork()

	if res := socket.StartConnect(netw, wasiAddr); res.IsErr() {
		return nil, hostErr(res.Err(), "connecting")
	}
	sub := runtime.Current().Schedule(socket.Subscribe())
	y.Await(sub.WaitFor())
	sub.Close()

	finishRes := socket.FinishConnect()
	if finishRes.IsErr() {
		return nil, hostErr(finishRes.Err(), "connecting")
	}
	input, output := tcp.FinishConnectStreams(*finishRes.OK())
	logger.Debug("nett: connected", zap.String("addr", addr))
	return newStream(input, output, socket), nil
}

// PeerAddr returns the remote address of this connection.
func (s *TcpStream) PeerAddr() (net.Addr, error) {
	res := s.socket.RemoteAddress()
	if res.IsErr() {
		return nil, hostErr(res.Err(), "remote address")
	}
	return addrFromWasi(*res.OK()), nil
}

// Read reads from the stream's input half.
func (s *TcpStream) Read(y *runtime.Yielder, buf []byte) (int, error) {
	return s.input.Read(y, buf)
}

// Write writes to the stream's output half.
func (s *TcpStream) Write(y *runtime.Yielder, buf []byte) (int, error) {
	return s.output.Write(y, buf)
}

// Flush flushes the stream's output half.
func (s *TcpStream) Flush(y *runtime.Yielder) error {
	return s.output.Flush(y)
}

// Close shuts down both halves of the connection and releases the socket,
// matching original_source's Drop impl (ShutdownType::Both).
func (s *TcpStream) Close() {
	s.socket.Shutdown(tcp.ShutdownTypeBoth)
	s.input.Close()
	s.output.Close()
	s.socket.ResourceDrop()
}

// Split returns independent read and write halves. Closing a half issues a
// directional shutdown for that half only (spec.md §4.9).
func (s *TcpStream) Split() (*ReadHalf, *WriteHalf) {
	return &ReadHalf{stream: s}, &WriteHalf{stream: s}
}

// ReadHalf is the read side of a split TcpStream.
type ReadHalf struct {
	stream *TcpStream
}

// Read reads from the underlying stream's input half.
func (r *ReadHalf) Read(y *runtime.Yielder, buf []byte) (int, error) {
	return r.stream.Read(y, buf)
}

// Close issues a Receive-direction shutdown, leaving the write half live.
func (r *ReadHalf) Close() {
	r.stream.socket.Shutdown(tcp.ShutdownTypeReceive)
}

// WriteHalf is the write side of a split TcpStream.
type WriteHalf struct {
	stream *TcpStream
}

// Write writes to the underlying stream's output half.
func (w *WriteHalf) Write(y *runtime.Yielder, buf []byte) (int, error) {
	return w.stream.Write(y, buf)
}

// Flush flushes the underlying stream's output half.
func (w *WriteHalf) Flush(y *runtime.Yielder) error {
	return w.stream.Flush(y)
}

// Close issues a Send-direction shutdown, leaving the read half live.
func (w *WriteHalf) Close() {
	w.stream.socket.Shutdown(tcp.ShutdownTypeSend)
}
