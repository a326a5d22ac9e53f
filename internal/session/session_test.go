package session

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport is the test-only Transport fake, grounded on the teacher's
// test.MockSerialPort: a connect flag, a queued read buffer, and a capture
// of everything written.
type fakeTransport struct {
	connectErr error
	connected  bool
	toRead     []byte
	written    [][]byte
	readCalls  int
}

func (f *fakeTransport) Connect(ctx context.Context) error {
	if f.connectErr != nil {
		return f.connectErr
	}
	f.connected = true
	return nil
}

func (f *fakeTransport) Read(buf []byte) (int, error) {
	f.readCalls++
	if len(f.toRead) == 0 {
		return 0, io.EOF
	}
	n := copy(buf, f.toRead)
	f.toRead = f.toRead[n:]
	return n, nil
}

func (f *fakeTransport) Write(data []byte) (int, error) {
	cp := append([]byte(nil), data...)
	f.written = append(f.written, cp)
	return len(data), nil
}

func (f *fakeTransport) Close() error {
	f.connected = false
	return nil
}

// monVerPoll is the well-known "!UBX MON-VER" poll frame
// (B5 62 0A 04 00 00 0E 34) used throughout spec.md §8's literal vectors,
// replayed here as a zero-length-payload response stand-in so the decoder
// has a concrete closed-universe frame to consume.
var monVerPoll = []byte{0xB5, 0x62, 0x0A, 0x04, 0x00, 0x00, 0x0E, 0x34}

func TestSessionConnectTransitionsToActive(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.Equal(t, Idle, s.State())

	err := s.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Active, s.State())
	assert.True(t, ft.connected)
}

func TestSessionConnectFailurePropagatesAndMarksFailed(t *testing.T) {
	ft := &fakeTransport{connectErr: assert.AnError}
	s := New(ft)

	err := s.Connect(context.Background())
	require.Error(t, err)
	assert.Equal(t, Failed, s.State())
}

func TestSessionOnConnectSendsRecognizedLinesOnly(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))

	script := strings.NewReader(strings.Join([]string{
		"!UBX MON-VER",
		"# a comment line, never recognized",
		"",
		"!UBX CFG-MSG 3 15 0 1 0 1 0 0",
	}, "\n"))

	err := s.OnConnect(script)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), s.RequestsSent())
	assert.Len(t, ft.written, 2)
}

func TestSessionOnConnectSkipsMalformedLineWithoutIncrementing(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))

	var logged []string
	s.OnLog = func(msg string) { logged = append(logged, msg) }

	script := strings.NewReader("!UBX CFG-MSG not-a-number\n!UBX MON-VER\n")
	err := s.OnConnect(script)
	require.NoError(t, err)

	assert.Equal(t, uint64(1), s.RequestsSent())
	assert.NotEmpty(t, logged)
}

func TestSessionOnBytesDecodesFrameAndIncrementsResponses(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))
	require.NoError(t, s.OnConnect(strings.NewReader("!UBX MON-VER\n")))
	require.Equal(t, uint64(1), s.RequestsSent())

	var got *Frame
	s.OnFrame = func(f *Frame) { got = f }

	s.OnBytes(monVerPoll)

	require.NotNil(t, got)
	assert.Equal(t, uint64(1), s.ResponsesSeen())
	assert.Equal(t, byte(0x0A), got.Class)
	assert.Equal(t, byte(0x04), got.ID)
}

func TestSessionOnBytesHandlesSplitFrameAcrossChunks(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))
	require.NoError(t, s.OnConnect(strings.NewReader("!UBX MON-VER\n")))

	var frames int
	s.OnFrame = func(f *Frame) { frames++ }

	s.OnBytes(monVerPoll[:4])
	assert.Equal(t, 0, frames)
	s.OnBytes(monVerPoll[4:])
	assert.Equal(t, 1, frames)
	assert.Equal(t, uint64(1), s.ResponsesSeen())
}

func TestSessionOnBytesDropsJunkBeforeSync(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))
	require.NoError(t, s.OnConnect(strings.NewReader("!UBX MON-VER\n")))

	junked := append([]byte{0x00, 0x11, 0x22}, monVerPoll...)

	var frames int
	s.OnFrame = func(f *Frame) { frames++ }
	s.OnBytes(junked)

	assert.Equal(t, 1, frames)
	assert.Equal(t, 0, s.buf.Len())
}

func TestSessionResponsesSeenNeverExceedsRequestsSent(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))
	// No script sent: requestsSent stays 0.

	s.OnBytes(monVerPoll)
	assert.Equal(t, uint64(0), s.ResponsesSeen())
}

func TestSessionOnCloseClosesTransportAndIsIdempotent(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))

	require.NoError(t, s.OnClose())
	assert.Equal(t, Closed, s.State())
	assert.False(t, ft.connected)

	// calling again must not panic or error
	require.NoError(t, s.OnClose())
}

func TestSessionOnTimeoutMarksFailedAndClosesTransport(t *testing.T) {
	ft := &fakeTransport{}
	s := New(ft)
	require.NoError(t, s.Connect(context.Background()))

	require.NoError(t, s.OnTimeout())
	assert.Equal(t, Failed, s.State())
	assert.False(t, ft.connected)
}

func TestSessionRunDrainsAfterScriptAndEOF(t *testing.T) {
	ft := &fakeTransport{toRead: monVerPoll}
	s := New(ft)

	err := s.Run(context.Background(), strings.NewReader("!UBX MON-VER\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, Closed, s.State())
	assert.Equal(t, uint64(1), s.RequestsSent())
	assert.Equal(t, uint64(1), s.ResponsesSeen())
}
