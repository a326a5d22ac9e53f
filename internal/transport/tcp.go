package transport

import (
	"context"
	"fmt"
	"net"
)

// TCP is the network endpoint collaborator: `-r host[:port]`, default port
// 23, adapted from the teacher's internal/ntrip.Client.Connect context idiom
// (there it dials HTTP; here it dials a raw TCP socket since the UBX session
// speaks the binary protocol directly, not HTTP).
type TCP struct {
	Addr string // "host:port"
	conn net.Conn
}

// NewTCP builds a TCP transport for addr, defaulting the port to 23 (telnet,
// the u-blox receiver's usual bare-TCP console port) when addr carries none.
func NewTCP(addr string) *TCP {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "23")
	}
	return &TCP{Addr: addr}
}

func (t *TCP) Connect(ctx context.Context) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", t.Addr)
	if err != nil {
		return fmt.Errorf("transport: dial %s: %w", t.Addr, err)
	}
	t.conn = conn
	return nil
}

func (t *TCP) Read(buf []byte) (int, error) {
	return t.conn.Read(buf)
}

func (t *TCP) Write(data []byte) (int, error) {
	return t.conn.Write(data)
}

func (t *TCP) Close() error {
	if t.conn == nil {
		return nil
	}
	return t.conn.Close()
}
