// Command ubxconf drives a scripted UBX configuration session against a
// u-blox receiver over TCP or a binary dump file, grounded on the teacher's
// cmd/ntrip-client flag/context/signal shell.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bramburn/ubxconf/internal/session"
	"github.com/bramburn/ubxconf/internal/transport"
	"github.com/bramburn/ubxconf/ubx"
)

const version = "0.1.0"

type config struct {
	remote     string
	scriptFile string
	dumpFile   string
	timeout    time.Duration
	showHelp   bool
	showVer    bool
	listPorts  bool
}

// parseFlags parses args into a config, matching spec.md §6's CLI surface:
// -r host[:port], -e file, -d file (or "-" for stdin), -t seconds
// (0 = no timeout, default 30), -h, -v.
func parseFlags(fs *flag.FlagSet, args []string) (*config, error) {
	cfg := &config{}
	fs.StringVar(&cfg.remote, "r", "", "remote endpoint host[:port] (default port 23)")
	fs.StringVar(&cfg.scriptFile, "e", "", "script file of text commands")
	fs.StringVar(&cfg.dumpFile, "d", "", "decode a binary dump from file, or - for stdin")
	timeoutSeconds := fs.Int("t", 30, "idle timeout in seconds (0 = no timeout)")
	fs.BoolVar(&cfg.showHelp, "h", false, "show help")
	fs.BoolVar(&cfg.showVer, "v", false, "show version")
	fs.BoolVar(&cfg.listPorts, "l", false, "list available serial ports and exit")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.timeout = time.Duration(*timeoutSeconds) * time.Second
	return cfg, nil
}

// looksLikeSerialPort recognizes Unix device paths and Windows COM ports so
// -r can address either a UART or a TCP endpoint, generalizing spec.md §6's
// host[:port] surface to the serial transport the pack also supplies.
func looksLikeSerialPort(remote string) bool {
	return strings.HasPrefix(remote, "/dev/") || strings.HasPrefix(remote, "COM")
}

func main() {
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	cfg, err := parseFlags(fs, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if cfg.showHelp {
		fs.Usage()
		os.Exit(0)
	}
	if cfg.showVer {
		fmt.Println("ubxconf", version)
		os.Exit(0)
	}
	if cfg.listPorts {
		names, err := transport.ListPorts()
		if err != nil {
			fmt.Fprintln(os.Stderr, "ubxconf:", err)
			os.Exit(1)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		os.Exit(0)
	}

	if cfg.dumpFile != "" {
		os.Exit(runDecode(cfg))
	}

	os.Exit(runSession(cfg))
}

// runDecode feeds a binary dump (file or stdin) through the streaming
// decoder and prints one line per frame, matching spec.md §6's "-d file"
// offline-decode mode.
func runDecode(cfg *config) int {
	var r io.Reader
	if cfg.dumpFile == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(cfg.dumpFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ubxconf:", err)
			return 1
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ubxconf:", err)
		return 1
	}

	for len(data) > 0 {
		hdr := ubx.NextHeader(data)
		if hdr.Status == ubx.Fatal {
			return 1
		}
		data = data[hdr.Consumed:]
		if hdr.Status == ubx.NeedMore || len(data) == 0 {
			break
		}
		res := ubx.VerifyTCP(data)
		switch res.Status {
		case ubx.StatusOK:
			f := res.Frame
			fmt.Printf("%s class=%#02x id=%#02x len=%d\n", f.Mnemonic, f.Class, f.ID, len(f.Payload))
		case ubx.StatusIllegal:
			fmt.Fprintf(os.Stderr, "ubxconf: illegal frame at offset, dropping %d bytes\n", res.Consumed)
		case ubx.StatusNeedMore, ubx.StatusFatal:
			return 0
		}
		if res.Consumed <= 0 {
			break
		}
		data = data[res.Consumed:]
	}
	return 0
}

// runSession opens the remote endpoint, runs the script, and returns the
// process exit code: 0 on success (or when Run fails after an interrupt has
// cancelled its context), 1 on timeout and on any other session error, 2
// when -r is missing. No transport-specific error code is passed through.
func runSession(cfg *config) int {
	if cfg.remote == "" {
		fmt.Fprintln(os.Stderr, "ubxconf: -r host[:port] is required")
		return 2
	}

	var script io.Reader = os.Stdin
	if cfg.scriptFile != "" {
		f, err := os.Open(cfg.scriptFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "ubxconf:", err)
			return 1
		}
		defer f.Close()
		script = f
	}

	var t transport.Transport
	if looksLikeSerialPort(cfg.remote) {
		t = transport.NewSerial(cfg.remote, 0)
	} else {
		t = transport.NewTCP(cfg.remote)
	}
	s := session.New(t)
	s.OnLog = func(msg string) { fmt.Fprintln(os.Stderr, msg) }
	s.OnFrame = func(f *session.Frame) {
		fmt.Printf("%s class=%#02x id=%#02x len=%d\n", f.Mnemonic, f.Class, f.ID, len(f.Payload))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		cancel()
	}()

	err := s.Run(ctx, script, cfg.timeout)
	if err == nil {
		return 0
	}
	if ctx.Err() != nil {
		return 0
	}
	if s.State() == session.Failed {
		return 1
	}
	return 1
}
