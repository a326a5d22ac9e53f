package transport

import "testing"

func TestNewSerialDefaultsBaudRate(t *testing.T) {
	s := NewSerial("/dev/ttyUSB0", 0)
	if s.BaudRate != defaultBaudRate {
		t.Fatalf("BaudRate = %d, want default %d", s.BaudRate, defaultBaudRate)
	}
}

func TestNewSerialKeepsExplicitBaudRate(t *testing.T) {
	s := NewSerial("/dev/ttyUSB0", 115200)
	if s.BaudRate != 115200 {
		t.Fatalf("BaudRate = %d, want 115200", s.BaudRate)
	}
}

func TestSerialCloseBeforeConnectIsNoop(t *testing.T) {
	s := NewSerial("/dev/ttyUSB0", 0)
	if err := s.Close(); err != nil {
		t.Fatalf("Close before Connect: %v", err)
	}
}

func TestSerialConnectToMissingPortFails(t *testing.T) {
	s := NewSerial("/dev/does-not-exist-ubxconf", 0)
	if err := s.Connect(nil); err == nil { // Connect ignores ctx, a real device is never reached here
		t.Fatalf("expected an error opening a nonexistent serial port")
	}
}
