package transport

import (
	"context"
	"net"
	"testing"
	"time"
)

// startEchoListener grounds the TCP transport test on the teacher's
// httptest.NewServer pattern: a real loopback listener stands in for the
// receiver.
func startEchoListener(t *testing.T) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				buf := make([]byte, 256)
				for {
					n, err := c.Read(buf)
					if n > 0 {
						c.Write(buf[:n])
					}
					if err != nil {
						return
					}
				}
			}(conn)
		}
	}()
	return ln.Addr().String(), func() { ln.Close() }
}

func TestTCPConnectReadWrite(t *testing.T) {
	addr, stop := startEchoListener(t)
	defer stop()

	tr := NewTCP(addr)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := tr.Connect(ctx); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	defer tr.Close()

	msg := []byte("hello ubx")
	n, err := tr.Write(msg)
	if err != nil || n != len(msg) {
		t.Fatalf("Write: n=%d err=%v", n, err)
	}

	buf := make([]byte, 32)
	n, err = tr.Read(buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(buf[:n]) != string(msg) {
		t.Fatalf("Read = %q, want %q", buf[:n], msg)
	}
}

func TestTCPConnectDefaultsPort(t *testing.T) {
	tr := NewTCP("192.0.2.1")
	if tr.Addr != "192.0.2.1:23" {
		t.Fatalf("Addr = %q, want 192.0.2.1:23", tr.Addr)
	}
}

func TestTCPConnectKeepsExplicitPort(t *testing.T) {
	tr := NewTCP("192.0.2.1:9001")
	if tr.Addr != "192.0.2.1:9001" {
		t.Fatalf("Addr = %q, want 192.0.2.1:9001", tr.Addr)
	}
}

func TestTCPConnectFailureReturnsError(t *testing.T) {
	tr := NewTCP("127.0.0.1:1")
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	if err := tr.Connect(ctx); err == nil {
		t.Fatalf("expected a connection error dialing a closed port")
	}
}

func TestTCPCloseBeforeConnectIsNoop(t *testing.T) {
	tr := NewTCP("127.0.0.1:23")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close before Connect: %v", err)
	}
}
