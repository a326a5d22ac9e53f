package transport

import (
	"context"
	"fmt"
	"time"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// defaultBaudRate matches the teacher's internal/port.DefaultSerialConfig
// choice for its TOPGNSS target; NewSerial uses it when given a baud rate of
// 0, which is what the CLI always passes.
const defaultBaudRate = 38400

// Serial is the UART endpoint collaborator, adapted from the teacher's
// internal/port.GNSSSerialPort: same go.bug.st/serial dependency and
// Open/Read/Write/Close shape, generalized to this package's Transport
// interface and a context-aware Connect.
type Serial struct {
	PortName string
	BaudRate int
	port     serial.Port
}

// NewSerial builds a UART transport; baudRate of 0 uses defaultBaudRate.
func NewSerial(portName string, baudRate int) *Serial {
	if baudRate == 0 {
		baudRate = defaultBaudRate
	}
	return &Serial{PortName: portName, BaudRate: baudRate}
}

func (s *Serial) Connect(ctx context.Context) error {
	mode := &serial.Mode{BaudRate: s.BaudRate, DataBits: 8, Parity: serial.NoParity, StopBits: serial.OneStopBit}
	port, err := serial.Open(s.PortName, mode)
	if err != nil {
		return fmt.Errorf("transport: open %s: %w", s.PortName, err)
	}
	if err := port.SetReadTimeout(500 * time.Millisecond); err != nil {
		port.Close()
		return fmt.Errorf("transport: set read timeout on %s: %w", s.PortName, err)
	}
	s.port = port
	return nil
}

func (s *Serial) Read(buf []byte) (int, error) {
	return s.port.Read(buf)
}

func (s *Serial) Write(data []byte) (int, error) {
	return s.port.Write(data)
}

func (s *Serial) Close() error {
	if s.port == nil {
		return nil
	}
	return s.port.Close()
}

// ListPorts enumerates available serial devices, backing the CLI's -l
// diagnostic affordance. Adapted from GNSSSerialPort.ListPorts.
func ListPorts() ([]string, error) {
	details, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("transport: enumerate ports: %w", err)
	}
	names := make([]string, 0, len(details))
	for _, d := range details {
		names = append(names, d.Name)
	}
	return names, nil
}
