package tcp

import (
	"context"
	"net"
	"net/netip"
	"time"
)

// Dialer checks reachability by opening a TCP connection and closing it right away.
type Dialer struct {
	timeout time.Duration
}

// NewDialer returns a dialer bounding each attempt by timeout. Zero leaves it to the OS.
func NewDialer(timeout time.Duration) *Dialer {
	return &Dialer{timeout: timeout}
}

func (d *Dialer) Dial(ctx context.Context, addr netip.AddrPort) error {
	dialer := net.Dialer{Timeout: d.timeout}

	conn, err := dialer.DialContext(ctx, "tcp", addr.String())
	if err != nil {
		return err
	}

	return conn.Close()
}
