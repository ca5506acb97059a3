package steam

import (
	"fmt"
	"net/netip"
)

// ParseAddr validates a directory address of the form a.b.c.d:port.
// Only IPv4 is accepted and the port must be in 1-65535.
func ParseAddr(addr string) (netip.AddrPort, error) {
	ap, err := netip.ParseAddrPort(addr)
	if err != nil {
		return netip.AddrPort{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, addr, err)
	}

	if !ap.Addr().Is4() {
		return netip.AddrPort{}, fmt.Errorf("%w: %q is not an IPv4 address", ErrInvalidAddress, addr)
	}

	if ap.Port() == 0 {
		return netip.AddrPort{}, fmt.Errorf("%w: %q has no port", ErrInvalidAddress, addr)
	}

	return ap, nil
}
