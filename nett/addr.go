package nett

import (
	"fmt"
	"net"
	"strconv"

	"github.com/badu/wstd/internal/wasip2/sockets/network"
)

// parseAddr splits "host:port" into a net.IP and port, matching the std
// SocketAddr parse original_source performs before binding or connecting.
func parseAddr(addr string) (net.IP, uint16, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, 0, fmt.Errorf("nett: parsing address %q: %w", addr, err)
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		return nil, 0, fmt.Errorf("nett: parsing port in %q: %w", addr, err)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return nil, 0, fmt.Errorf("nett: parsing address %q: invalid IP", addr)
	}
	return ip, uint16(port), nil
}

func addrToWasi(ip net.IP, port uint16) (network.IPSocketAddress, bool, error) {
	if v4 := ip.To4(); v4 != nil {
		return network.IPSocketAddress{
			Kind: network.IPSocketAddressKindIPv4,
			V4: network.IPv4SocketAddress{
				Port:    port,
				Address: network.IPv4Address{v4[0], v4[1], v4[2], v4[3]},
			},
		}, false, nil
	}
	v6 := ip.To16()
	if v6 == nil {
		return network.IPSocketAddress{}, false, fmt.Errorf("nett: not an IPv4 or IPv6 address: %v", ip)
	}
	var segs network.IPv6Address
	for i := 0; i < 8; i++ {
		segs[i] = uint16(v6[2*i])<<8 | uint16(v6[2*i+1])
	}
	return network.IPSocketAddress{
		Kind: network.IPSocketAddressKindIPv6,
		V6:   network.IPv6SocketAddress{Port: port, Address: segs},
	}, true, nil
}

func addrFromWasi(a network.IPSocketAddress) *net.TCPAddr {
	if a.Kind == network.IPSocketAddressKindIPv4 {
		v4 := a.V4.Address
		return &net.TCPAddr{IP: net.IPv4(v4[0], v4[1], v4[2], v4[3]), Port: int(a.V4.Port)}
	}
	v6 := a.V6.Address
	ip := make(net.IP, 16)
	for i := 0; i < 8; i++ {
		ip[2*i] = byte(v6[i] >> 8)
		ip[2*i+1] = byte(v6[i])
	}
	return &net.TCPAddr{IP: ip, Port: int(a.V6.Port)}
}
