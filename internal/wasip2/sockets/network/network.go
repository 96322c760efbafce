// Package network mirrors `wasi:sockets/network`: address families, socket
// addresses, and the shared error-code enum used across the sockets
// interfaces.
package network

// IPAddressFamily selects which address family a socket is created for.
type IPAddressFamily uint8

const (
	IPAddressFamilyIPv4 IPAddressFamily = iota
	IPAddressFamilyIPv6
)

// IPv4Address is a 4-octet address.
type IPv4Address [4]uint8

// IPv6Address is an 8-segment address.
type IPv6Address [8]uint16

// IPv4SocketAddress pairs a port with an IPv4 address.
type IPv4SocketAddress struct {
	Port    uint16
	Address IPv4Address
}

// IPv6SocketAddress pairs a port with an IPv6 address, flow info and scope.
type IPv6SocketAddress struct {
	Port     uint16
	FlowInfo uint32
	Address  IPv6Address
	ScopeID  uint32
}

// IPSocketAddressKind discriminates the IPSocketAddress variant.
type IPSocketAddressKind uint8

const (
	IPSocketAddressKindIPv4 IPSocketAddressKind = iota
	IPSocketAddressKindIPv6
)

// IPSocketAddress is the tagged union of the two address families.
type IPSocketAddress struct {
	Kind IPSocketAddressKind
	V4   IPv4SocketAddress
	V6   IPv6SocketAddress
}

// ErrorCode is the error enum shared by wasi:sockets/* interfaces.
type ErrorCode string

func (e ErrorCode) String() string { return string(e) }

// Network is an owned handle to the host's network instance resource.
type Network uint32

//go:wasmimport wasi:sockets/network@0.2.0 [resource-drop]network
//go:noescape
func (n Network) ResourceDrop()
