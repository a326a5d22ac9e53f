// Package ubx implements the U-Blox GNSS receiver binary protocol: frame
// checksums, encoders, a streaming framer, a frame decoder, and the
// RTKLIB-style text translators that produce frames from mnemonic or hex
// configuration lines.
package ubx

import "errors"

// Error taxonomy. The codec reports these to its caller and never logs;
// the session driver decides what each one means for stream recovery.
var (
	// ErrBufferTooSmall is returned when an encoder's output buffer would
	// overflow, or a translator's scratch buffer cannot hold the argument
	// block.
	ErrBufferTooSmall = errors.New("ubx: buffer too small")

	// ErrInvalidArgument is returned when a text argument count or range
	// does not match the operation.
	ErrInvalidArgument = errors.New("ubx: invalid argument")

	// ErrNotFound is returned when a mnemonic does not resolve to a class
	// or id.
	ErrNotFound = errors.New("ubx: mnemonic not found")

	// ErrClassHasNoTable is returned by id lookups against a class whose
	// id table is not populated in this toolkit.
	ErrClassHasNoTable = errors.New("ubx: class has no id table")

	// ErrMalformed is returned when bytes do not start with the sync
	// prefix, or the checksum does not match.
	ErrMalformed = errors.New("ubx: malformed frame")

	// ErrUnsupportedMessage is returned by TranslateMnemonicLine when the
	// resolved class/id has no mnemonic-argument parser. The decoder does
	// not return it: VerifyTCP reports an unrecognized class/id as
	// StatusIllegal.
	ErrUnsupportedMessage = errors.New("ubx: unsupported message")

	// ErrTransport is returned (wrapped) by the session driver when a
	// transport read or write fails.
	ErrTransport = errors.New("ubx: transport error")
)
