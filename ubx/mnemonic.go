package ubx

import (
	"strconv"
	"strings"
)

// TranslateMnemonicLine parses a "!UBX CLASS-ID [args...]" configuration line
// into a complete frame written to buf, grounded on
// ublox_confline2bin_rtklibarg. Arguments are whitespace-separated and their
// meaning is dispatched per (class,id); messages with no registered
// mnemonic-argument parser report ErrUnsupportedMessage.
func TranslateMnemonicLine(buf []byte, line string) (int, error) {
	fields := fieldsWhitespace(line)
	if len(fields) < 2 || fields[0] != "!UBX" {
		return 0, ErrInvalidArgument
	}
	class, id, err := ResolveClassID(fields[1])
	if err != nil {
		return 0, err
	}
	args := strings.Join(fields[2:], " ")
	parse, ok := mnemonicParsers[ClassID(class, id)]
	if !ok {
		return 0, ErrUnsupportedMessage
	}
	return parse(buf, args)
}

func parseUintField(tok string, base int, bitSize int) (uint64, error) {
	n, err := strconv.ParseUint(tok, base, bitSize)
	if err != nil {
		return 0, ErrInvalidArgument
	}
	return n, nil
}

func parseMonVer(buf []byte, _ string) (int, error)  { return EncodeGetVersion(buf) }
func parseMonHW(buf []byte, _ string) (int, error)   { return EncodeGetHW(buf) }
func parseMonHW2(buf []byte, _ string) (int, error)  { return EncodeGetHW2(buf) }

// parseCFGMSG expects "msgClass msgID rate..." with 1 or 6 trailing decimal
// rate bytes, matching EncodeCFGMSG's argument-count decision (Open Question
// #3: the encoder rejects any count other than 1 or 6).
func parseCFGMSG(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	if len(toks) < 3 {
		return 0, ErrInvalidArgument
	}
	msgClass, err := parseUintField(toks[0], 0, 8)
	if err != nil {
		return 0, err
	}
	msgID, err := parseUintField(toks[1], 0, 8)
	if err != nil {
		return 0, err
	}
	rates := parseDecList(strings.Join(toks[2:], " "))
	return EncodeCFGMSG(buf, byte(msgClass), byte(msgID), rates)
}

// parseCFGPRT dispatches on argument count: zero args polls all ports, six
// args set a port's configuration, and any other non-zero count (one token
// or more) polls the single port named by the first token, grounded on
// ubloxcstr.c:794-828's loop over i<6 falling through to
// ublox_pkt_create_get_cfgprt for anything short of a full six-token set.
func parseCFGPRT(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	switch len(toks) {
	case 0:
		return EncodeGetCFGPRT(buf, 0xFF)
	case 1:
		portID, err := parseUintField(toks[0], 10, 8)
		if err != nil {
			return 0, err
		}
		return EncodeGetCFGPRT(buf, byte(portID))
	case 6:
		portID, err := parseUintField(toks[0], 10, 8)
		if err != nil {
			return 0, err
		}
		txReady, err := parseUintField(toks[1], 0, 16)
		if err != nil {
			return 0, err
		}
		mode, err := parseUintField(toks[2], 0, 32)
		if err != nil {
			return 0, err
		}
		baud, err := parseUintField(toks[3], 10, 32)
		if err != nil {
			return 0, err
		}
		inMask, err := parseUintField(toks[4], 0, 16)
		if err != nil {
			return 0, err
		}
		outMask, err := parseUintField(toks[5], 0, 16)
		if err != nil {
			return 0, err
		}
		return EncodeSetCFGPRT(buf, CFGPRTSet{
			PortID:       byte(portID),
			TxReady:      uint16(txReady),
			Mode:         uint32(mode),
			BaudRate:     uint32(baud),
			InPortoMask:  uint16(inMask),
			OutPortoMask: uint16(outMask),
		})
	default:
		// Any count other than 0, 1, or 6 still carries a port-id as its
		// first token; poll that port, matching the original's loop over
		// i<6 falling through to ublox_pkt_create_get_cfgprt(toks[0]) for a
		// non-six count.
		portID, err := parseUintField(toks[0], 10, 8)
		if err != nil {
			return 0, err
		}
		return EncodeGetCFGPRT(buf, byte(portID))
	}
}

// parseCFGRate dispatches on argument count: zero args polls, three set.
func parseCFGRate(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	switch len(toks) {
	case 0:
		return EncodeGetCFGRate(buf)
	case 3:
		measRate, err := parseUintField(toks[0], 10, 16)
		if err != nil {
			return 0, err
		}
		navRate, err := parseUintField(toks[1], 10, 16)
		if err != nil {
			return 0, err
		}
		timeRef, err := parseUintField(toks[2], 10, 16)
		if err != nil {
			return 0, err
		}
		return EncodeSetCFGRate(buf, uint16(measRate), uint16(navRate), uint16(timeRef))
	default:
		return 0, ErrInvalidArgument
	}
}

// parseCFGCFG expects exactly four decimals: "clearMask saveMask loadMask
// deviceMask", per spec.md §4.6.
func parseCFGCFG(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	if len(toks) != 4 {
		return 0, ErrInvalidArgument
	}
	clearMask, err := parseUintField(toks[0], 0, 32)
	if err != nil {
		return 0, err
	}
	saveMask, err := parseUintField(toks[1], 0, 32)
	if err != nil {
		return 0, err
	}
	loadMask, err := parseUintField(toks[2], 0, 32)
	if err != nil {
		return 0, err
	}
	deviceMask, err := parseUintField(toks[3], 0, 8)
	if err != nil {
		return 0, err
	}
	return EncodeSetCFGCFG(buf, uint32(clearMask), uint32(saveMask), uint32(loadMask), byte(deviceMask))
}

// parseCFGBDS implements Open Question #1's decision: scan the argument
// region (the text following the "CFG-BDS" mnemonic) for exactly six
// hex-or-decimal 32-bit words, rather than positioning the scan at the
// original source's p_end.
func parseCFGBDS(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	if len(toks) != 6 {
		return 0, ErrInvalidArgument
	}
	var w [6]uint32
	for i, t := range toks {
		v, err := parseUintField(t, 0, 32)
		if err != nil {
			return 0, err
		}
		w[i] = uint32(v)
	}
	return EncodeCFGBDS(buf, w[0], w[1], w[2], w[3], w[4], w[5])
}

// parseCFGGNSS expects "msgVer numTrkHw numTrkUse numBlocks" followed by
// numBlocks groups of exactly five decimals "gnssId resTrkCh maxTrkCh
// reserved1 flags" (reserved1 is read and discarded; the wire form zeros it),
// per spec.md §4.6.
func parseCFGGNSS(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	if len(toks) < 4 {
		return 0, ErrInvalidArgument
	}
	msgVer, err := parseUintField(toks[0], 10, 8)
	if err != nil {
		return 0, err
	}
	numHW, err := parseUintField(toks[1], 10, 8)
	if err != nil {
		return 0, err
	}
	numUse, err := parseUintField(toks[2], 10, 8)
	if err != nil {
		return 0, err
	}
	numBlocks, err := parseUintField(toks[3], 10, 8)
	if err != nil {
		return 0, err
	}
	if len(toks)-4 != int(numBlocks)*5 {
		return 0, ErrInvalidArgument
	}
	var blocks []CFGGNSSBlock
	for i := 4; i < len(toks); i += 5 {
		gnssID, err := parseUintField(toks[i], 10, 8)
		if err != nil {
			return 0, err
		}
		resTrkCh, err := parseUintField(toks[i+1], 10, 8)
		if err != nil {
			return 0, err
		}
		maxTrkCh, err := parseUintField(toks[i+2], 10, 8)
		if err != nil {
			return 0, err
		}
		if _, err := parseUintField(toks[i+3], 10, 8); err != nil { // reserved1
			return 0, err
		}
		flags, err := parseUintField(toks[i+4], 0, 32)
		if err != nil {
			return 0, err
		}
		blocks = append(blocks, CFGGNSSBlock{
			GNSSID:   byte(gnssID),
			ResTrkCh: byte(resTrkCh),
			MaxTrkCh: byte(maxTrkCh),
			Flags:    uint32(flags),
		})
	}
	return EncodeSetCFGGNSS(buf, byte(msgVer), byte(numHW), byte(numUse), blocks)
}

// parseUPDDownl implements Open Question #2's decision: scan exactly two
// leading decimal tokens (startAddr, flags), then parse the remainder as a
// decimal byte list forming the payload. Fewer than two leading tokens is
// ErrInvalidArgument.
func parseUPDDownl(buf []byte, args string) (int, error) {
	toks := fieldsWhitespace(args)
	if len(toks) < 2 {
		return 0, ErrInvalidArgument
	}
	startAddr, err := parseUintField(toks[0], 0, 32)
	if err != nil {
		return 0, err
	}
	flags, err := parseUintField(toks[1], 0, 32)
	if err != nil {
		return 0, err
	}
	data := parseDecList(strings.Join(toks[2:], " "))
	return EncodeUPDDownl(buf, uint32(startAddr), uint32(flags), data)
}

var mnemonicParsers = map[uint16]func([]byte, string) (int, error){
	idMonVer:   parseMonVer,
	idMonHW:    parseMonHW,
	idMonHW2:   parseMonHW2,
	idCfgMSG:   parseCFGMSG,
	idCfgPRT:   parseCFGPRT,
	idCfgRATE:  parseCFGRate,
	idCfgCFG:   parseCFGCFG,
	idCfgBDS:   parseCFGBDS,
	idCfgGNSS:  parseCFGGNSS,
	idUpdDownl: parseUPDDownl,
}
