package nett

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badu/wstd/internal/wasip2/sockets/network"
)

func TestParseAddrIPv4(t *testing.T) {
	ip, port, err := parseAddr("127.0.0.1:8080")
	require.NoError(t, err)
	assert.True(t, ip.Equal(net.ParseIP("127.0.0.1")))
	assert.Equal(t, uint16(8080), port)
}

func TestParseAddrIPv6(t *testing.T) {
	ip, port, err := parseAddr("[::1]:9090")
	require.NoError(t, err)
	assert.True(t, ip.Equal(net.ParseIP("::1")))
	assert.Equal(t, uint16(9090), port)
}

func TestParseAddrRejectsMissingPort(t *testing.T) {
	_, _, err := parseAddr("127.0.0.1")
	assert.Error(t, err)
}

func TestParseAddrRejectsInvalidIP(t *testing.T) {
	_, _, err := parseAddr("not-an-ip:80")
	assert.Error(t, err)
}

func TestAddrToWasiIPv4RoundTrips(t *testing.T) {
	ip := net.ParseIP("192.168.1.42")
	wasiAddr, isV6, err := addrToWasi(ip, 443)
	require.NoError(t, err)
	assert.False(t, isV6)
	assert.Equal(t, network.IPSocketAddressKindIPv4, wasiAddr.Kind)
	assert.Equal(t, network.IPv4Address{192, 168, 1, 42}, wasiAddr.V4.Address)
	assert.Equal(t, uint16(443), wasiAddr.V4.Port)

	back := addrFromWasi(wasiAddr)
	assert.True(t, back.IP.Equal(ip))
	assert.Equal(t, 443, back.Port)
}

func TestAddrToWasiIPv6RoundTrips(t *testing.T) {
	ip := net.ParseIP("2001:db8::1")
	wasiAddr, isV6, err := addrToWasi(ip, 1234)
	require.NoError(t, err)
	assert.True(t, isV6)
	assert.Equal(t, network.IPSocketAddressKindIPv6, wasiAddr.Kind)
	assert.Equal(t, uint16(1234), wasiAddr.V6.Port)

	back := addrFromWasi(wasiAddr)
	assert.True(t, back.IP.Equal(ip))
	assert.Equal(t, 1234, back.Port)
}
