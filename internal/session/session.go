// Package session drives a scripted UBX conversation over a transport: it
// translates a line-oriented configuration script into frames, writes them,
// and decodes the resulting byte stream back into typed messages, tracking
// how many requests remain unanswered.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bramburn/ubxconf/internal/transport"
	"github.com/bramburn/ubxconf/ubx"
)

// State is the session's sum-type-style lifecycle tag, re-architecting the
// original source's process-global session struct into an explicit value
// threaded through every callback (spec.md §9).
type State int

const (
	Idle State = iota
	Connecting
	Active
	Draining
	Failed
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Connecting:
		return "Connecting"
	case Active:
		return "Active"
	case Draining:
		return "Draining"
	case Failed:
		return "Failed"
	case Closed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// receiveBufferCapacity equals MinFrameLen+MaxPayloadLen, so a single
// maximal frame exactly fits, per spec.md §3's "Receive buffer" data
// model (≥1208 bytes).
const receiveBufferCapacity = 1208

// errTimeout is returned by Run when the session-wide deadline elapses
// before the script drains, matching the CLI's documented timeout exit code
// (spec.md §6).
var errTimeout = errors.New("session: timed out waiting for responses")

// Frame is what the session hands to OnFrame for every successfully decoded
// message.
type Frame = ubx.Frame

// Session is the explicit value owning a receive buffer, its transport, and
// its counters — no process-global state, per spec.md §9's re-architecture
// mandate. It is not safe for concurrent use: all methods are meant to be
// invoked from one event-loop goroutine, matching the cooperative
// single-threaded model of spec.md §5.
type Session struct {
	transport transport.Transport
	buf       *Buffer
	state     State

	requestsSent    uint64
	responsesSeen   uint64
	scriptExhausted bool

	// OnFrame, when set, is called for every frame VerifyTCP decodes with
	// StatusOK. It must not block.
	OnFrame func(*Frame)
	// OnLog, when set, receives one-line diagnostics (skip/illegal/malformed
	// events); the codec itself never logs (spec.md §7).
	OnLog func(string)

	sendBuf [ubx.MinFrameLen + ubx.MaxPayloadLen]byte
}

// New builds a Session bound to t; connect(host,port) is t's concern, not
// the session's (spec.md §4.8: "connect(host, port) — opens a byte stream;
// not in the core").
func New(t transport.Transport) *Session {
	return &Session{
		transport: t,
		buf:       NewBuffer(receiveBufferCapacity),
		state:     Idle,
	}
}

// State reports the session's current lifecycle state.
func (s *Session) State() State { return s.state }

// RequestsSent and ResponsesSeen expose the session counters (spec.md §3).
func (s *Session) RequestsSent() uint64  { return s.requestsSent }
func (s *Session) ResponsesSeen() uint64 { return s.responsesSeen }

// Connect opens the transport and moves Idle -> Connecting -> Active/Failed.
func (s *Session) Connect(ctx context.Context) error {
	s.state = Connecting
	if err := s.transport.Connect(ctx); err != nil {
		s.state = Failed
		return fmt.Errorf("session: connect: %w", err)
	}
	s.state = Active
	return nil
}

// OnConnect iterates script line-by-line, translates each via the hex or
// mnemonic forms, and writes the resulting frame, incrementing requestsSent
// per successfully encoded line (spec.md §4.8). Lines that begin with
// neither "!UBX" nor a recognized "CLASS-ID -" are silently ignored, as
// spec.md §6 requires.
func (s *Session) OnConnect(script io.Reader) error {
	scanner := bufio.NewScanner(script)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		n, ok, err := s.translateLine(line)
		if err != nil {
			if s.OnLog != nil {
				s.OnLog(fmt.Sprintf("session: skip %q: %v", line, err))
			}
			continue
		}
		if !ok {
			continue // recognized-as-ignorable, not an error
		}
		if _, err := s.transport.Write(s.sendBuf[:n]); err != nil {
			s.state = Failed
			return fmt.Errorf("session: write: %w", ubx.ErrTransport)
		}
		s.requestsSent++
	}
	s.scriptExhausted = true
	return scanner.Err()
}

// translateLine reports (bytesWritten, recognized, err). recognized is false
// for lines spec.md §6 says to ignore silently.
func (s *Session) translateLine(line string) (int, bool, error) {
	switch {
	case strings.HasPrefix(line, "!UBX"):
		n, err := ubx.TranslateMnemonicLine(s.sendBuf[:], line)
		return n, true, err
	case isHexLine(line):
		n, err := ubx.TranslateHexLine(s.sendBuf[:], line)
		return n, true, err
	default:
		return 0, false, nil
	}
}

// isHexLine recognizes "CLASS-ID - ..." whose CLASS-ID resolves to a known
// message, without parsing the hex bytes that follow, just enough to decide
// the line isn't silently-ignorable.
func isHexLine(line string) bool {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] != "-" {
		return false
	}
	_, _, err := ubx.ResolveClassID(fields[0])
	return err == nil
}

// OnBytes appends chunk to the receive buffer and drains as many frames as
// it can, per spec.md §4.8's "advance-to-header -> verify-frame" loop.
func (s *Session) OnBytes(chunk []byte) {
	s.buf.Append(chunk)
	for s.advance() {
	}
	s.maybeDrain()
}

// advance executes one header-scan/verify step. It reports whether another
// step might make progress (true) or the buffer is exhausted for now
// (false).
func (s *Session) advance() bool {
	data := s.buf.Bytes()
	if len(data) == 0 {
		return false
	}
	hdr := ubx.NextHeader(data)
	switch hdr.Status {
	case ubx.Fatal:
		return false
	case ubx.NeedMore:
		s.buf.Compact(hdr.Consumed)
		return false
	}
	s.buf.Compact(hdr.Consumed)

	res := ubx.VerifyTCP(s.buf.Bytes())
	switch res.Status {
	case ubx.StatusNeedMore:
		return false
	case ubx.StatusFatal:
		return false
	case ubx.StatusIllegal:
		if s.OnLog != nil {
			s.OnLog(fmt.Sprintf("session: illegal frame, dropping %d bytes", res.Consumed))
		}
		s.buf.Compact(res.Consumed)
		return true
	case ubx.StatusOK:
		s.buf.Compact(res.Consumed)
		if s.responsesSeen < s.requestsSent {
			s.responsesSeen++
		}
		if s.OnFrame != nil {
			s.OnFrame(res.Frame)
		}
		return true
	}
	return false
}

// maybeDrain moves Active -> Draining -> Closed once the script is
// exhausted and every outstanding request has been answered (spec.md §4.8's
// state diagram).
func (s *Session) maybeDrain() {
	if s.state != Active {
		return
	}
	if s.scriptExhausted && s.responsesSeen >= s.requestsSent {
		s.state = Draining
		s.state = Closed
	}
}

// OnClose transitions to Closed from any non-terminal state and releases the
// transport, matching spec.md §9's explicit-scoped-ownership mandate: the
// session owns its transport and releases it on every exit path.
func (s *Session) OnClose() error {
	if s.state == Closed || s.state == Failed {
		return nil
	}
	s.state = Closed
	return s.transport.Close()
}

// OnTimeout transitions Active -> Failed when the idle supervisor observes
// wall_clock >= start+timeout (spec.md §4.8).
func (s *Session) OnTimeout() error {
	if s.state == Closed || s.state == Failed {
		return nil
	}
	s.state = Failed
	return s.transport.Close()
}

// Run drives the session end to end: connect, send the script, then read
// chunks until the transport reports end-of-stream, the state reaches
// Closed, or timeout elapses with timeout > 0. It owns no goroutines beyond
// the caller's; reads block the calling goroutine, matching the teacher's
// port.SerialPort.Read/net.Conn.Read blocking-read idiom rather than
// introducing a reactor the rest of this toolkit doesn't need.
func (s *Session) Run(ctx context.Context, script io.Reader, timeout time.Duration) error {
	if err := s.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		if s.state == Closed || s.state == Failed {
			// OnClose does nothing in a terminal state, so release the
			// transport directly.
			s.transport.Close()
			return
		}
		s.OnClose()
	}()

	if err := s.OnConnect(script); err != nil {
		return fmt.Errorf("session: send script: %w", err)
	}

	deadline := time.Time{}
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	readBuf := make([]byte, 4096)
	for s.state == Active {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return fmt.Errorf("session: %w", errTimeout)
		}
		n, err := s.transport.Read(readBuf)
		if n > 0 {
			s.OnBytes(readBuf[:n])
		}
		if err != nil {
			if err == io.EOF {
				s.maybeDrain()
				if s.state == Active {
					// end-of-stream with outstanding requests: nothing more
					// will arrive.
					s.state = Closed
				}
				break
			}
			s.state = Failed
			return fmt.Errorf("session: read: %w", ubx.ErrTransport)
		}
	}
	return nil
}
