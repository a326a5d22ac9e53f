// Package transport provides the byte-stream collaborators a session drives:
// a TCP endpoint and a UART endpoint, both exposing the same minimal surface
// so the session core never knows which one it is talking to.
package transport

import "context"

// Transport is what a session needs from a byte stream: a context-aware
// connect, a blocking read that returns a chunk (or io.EOF), a write, and a
// close. Grounded on the teacher's internal/ntrip.Client.Connect (context
// cancellation) and internal/port.SerialPort (Open/Read/Write/Close).
type Transport interface {
	Connect(ctx context.Context) error
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	Close() error
}
