package nett

import (
	"errors"
	"fmt"

	"github.com/badu/wstd/internal/wasip2/sockets/network"
)

// ErrNotSupported is returned by ConnectAddr for an IPv6 address; only IPv4
// connect is implemented, matching original_source's first cut (spec.md
// §4.9).
var ErrNotSupported = errors.New("nett: address family not supported")

// ErrNoAddresses is returned by Connect when the supplied host resolves to
// no addresses at all.
var ErrNoAddresses = errors.New("nett: could not resolve to any address")

func hostErr(code network.ErrorCode, op string) error {
	return fmt.Errorf("nett: %s: %s", op, code.String())
}
