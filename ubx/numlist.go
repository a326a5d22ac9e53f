package ubx

import "strconv"

// parseDecList tokenizes s on whitespace and parses each token as an
// unsigned decimal value truncated to a byte, grounded on
// cstrlist2array_dec_val.
func parseDecList(s string) []byte {
	return parseNumList(s, 10)
}

// parseHexList tokenizes s on whitespace and parses each token as an
// unsigned hexadecimal value truncated to a byte (no "0x" prefix expected),
// grounded on cstrlist2array_hex_val.
func parseHexList(s string) []byte {
	return parseNumList(s, 16)
}

// parseNumList mirrors cstrlist2array_dec_val/cstrlist2array_hex_val
// (ubloxcstr.c:452/489): each token is parsed and masked to 8 bits
// (`val & 0xFF`), so an out-of-range value like 256 truncates to 0 rather
// than erroring, and parsing stops at the first token that isn't a number
// (a trailing sscanf<=0 `break`, not a failure), returning whatever was
// written so far.
func parseNumList(s string, base int) []byte {
	fields := fieldsWhitespace(s)
	out := make([]byte, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, base, 64)
		if err != nil {
			break
		}
		out = append(out, byte(n&0xFF))
	}
	return out
}

// fieldsWhitespace splits on runs of spaces, tabs, CR and LF, like strings.Fields, kept
// local so the tokenizing rule used by both the dec/hex list parsers and the
// mnemonic-line translator stays in one place.
func fieldsWhitespace(s string) []string {
	var fields []string
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case ' ', '\t', '\r', '\n':
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}
