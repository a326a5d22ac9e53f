package main

import (
	"flag"
	"testing"
	"time"
)

func TestParseFlagsDefaults(t *testing.T) {
	fs := flag.NewFlagSet("ubxconf", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-r", "192.168.1.1"})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if cfg.remote != "192.168.1.1" {
		t.Errorf("remote = %q, want 192.168.1.1", cfg.remote)
	}
	if cfg.timeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s default", cfg.timeout)
	}
	if cfg.showHelp || cfg.showVer {
		t.Errorf("showHelp/showVer should default false")
	}
}

func TestParseFlagsAllSet(t *testing.T) {
	fs := flag.NewFlagSet("ubxconf", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{
		"-r", "gps.local:9001",
		"-e", "script.txt",
		"-d", "-",
		"-t", "0",
		"-v",
	})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if cfg.remote != "gps.local:9001" {
		t.Errorf("remote = %q, want gps.local:9001", cfg.remote)
	}
	if cfg.scriptFile != "script.txt" {
		t.Errorf("scriptFile = %q, want script.txt", cfg.scriptFile)
	}
	if cfg.dumpFile != "-" {
		t.Errorf("dumpFile = %q, want -", cfg.dumpFile)
	}
	if cfg.timeout != 0 {
		t.Errorf("timeout = %v, want 0 (no timeout)", cfg.timeout)
	}
	if !cfg.showVer {
		t.Errorf("showVer should be true")
	}
}

func TestParseFlagsRejectsUnknownFlag(t *testing.T) {
	fs := flag.NewFlagSet("ubxconf", flag.ContinueOnError)
	fs.SetOutput(discardWriter{})
	_, err := parseFlags(fs, []string{"-bogus"})
	if err == nil {
		t.Fatalf("expected an error for an unknown flag")
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestParseFlagsListPorts(t *testing.T) {
	fs := flag.NewFlagSet("ubxconf", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-l"})
	if err != nil {
		t.Fatalf("parseFlags returned error: %v", err)
	}
	if !cfg.listPorts {
		t.Errorf("listPorts should be true")
	}
}

func TestLooksLikeSerialPort(t *testing.T) {
	cases := []struct {
		remote string
		want   bool
	}{
		{"/dev/ttyUSB0", true},
		{"COM3", true},
		{"192.168.1.1", false},
		{"gps.local:9001", false},
	}
	for _, c := range cases {
		if got := looksLikeSerialPort(c.remote); got != c.want {
			t.Errorf("looksLikeSerialPort(%q) = %v, want %v", c.remote, got, c.want)
		}
	}
}
