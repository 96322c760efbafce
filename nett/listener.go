package nett

import (
	"iter"
	"net"

	"go.uber.org/zap"

	"github.com/badu/wstd/internal/wasip2/sockets/instancenetwork"
	"github.com/badu/wstd/internal/wasip2/sockets/network"
	"github.com/badu/wstd/internal/wasip2/sockets/tcp"
	"github.com/badu/wstd/internal/wasip2/sockets/tcpcreatesocket"
	"github.com/badu/wstd/runtime"
)

// TcpListener is a bound, listening TCP socket (spec.md §4.9).
type TcpListener struct {
	socket tcp.Socket
	sub    runtime.AsyncPollable
}

// Bind creates a TcpListener bound to addr ("host:port") and ready to
// accept connections: create socket, start-bind, await readiness,
// finish-bind, start-listen, await readiness, finish-listen.
func Bind(y *runtime.Yielder, addr string) (*TcpListener, error) {
	ip, port, err := parseAddr(addr)
	if err != nil {
		return nil, err
	}
	wasiAddr, isV6, err := addrToWasi(ip, port)
	if err != nil {
		return nil, err
	}
	family := network.IPAddressFamilyIPv4
	if isV6 {
		family = network.IPAddressFamilyIPv6
	}

	createRes := tcpcreatesocket.CreateTCPSocket(family)
	if createRes.IsErr() {
		return nil, hostErr(createRes.Err(), "creating socket")
	}
	socket := *createRes.OK()
	netw := instancenetwork.InstanceNetwork()

	if res := socket.StartBind(netw, wasiAddr); res.IsErr() {
		return nil, hostErr(res.Err(), "binding")
	}
	sub := runtime.Current().Schedule(socket.Subscribe())
	y.Await(sub.WaitFor())
	if res := socket.FinishBind(); res.IsErr() {
		sub.Close()
		return nil, hostErr(res.Err(), "binding")
	}

	if res := socket.StartListen(); res.IsErr() {
		sub.Close()
		return nil, hostErr(res.Err(), "listening")
	}
	y.Await(sub.WaitFor())
	if res := socket.FinishListen(); res.IsErr() {
		sub.Close()
		return nil, hostErr(res.Err(), "listening")
	}

	logger.Debug("nett: listener bound", zap.String("addr", addr))
	return &TcpListener{socket: socket, sub: sub}, nil
}

// LocalAddr returns the address this listener is bound to.
func (l *TcpListener) LocalAddr() (net.Addr, error) {
	res := l.socket.LocalAddress()
	if res.IsErr() {
		return nil, hostErr(res.Err(), "local address")
	}
	return addrFromWasi(*res.OK()), nil
}

// Incoming returns a lazy sequence of accepted connections. The sequence
// never ends on its own; a yielded error does not stop iteration, matching
// the original crate's infinite-iterator shape (spec.md §4.9).
func (l *TcpListener) Incoming(y *runtime.Yielder) iter.Seq2[*TcpStream, error] {
	return func(yield func(*TcpStream, error) bool) {
		for {
			y.Await(l.sub.WaitFor())
			res := l.socket.Accept()
			if res.IsErr() {
				if !yield(nil, hostErr(res.Err(), "accepting")) {
					return
				}
				continue
			}
			socket, input, output := tcp.AcceptStreams(*res.OK())
			stream := newStream(input, output, socket)
			logger.Debug("nett: accepted connection")
			if !yield(stream, nil) {
				return
			}
		}
	}
}

// Close releases the listener's socket and subscription.
func (l *TcpListener) Close() {
	l.sub.Close()
	l.socket.ResourceDrop()
}
