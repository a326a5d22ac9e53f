package ubx

import "strings"

// TranslateHexLine parses a "CLASS-ID - hh hh hh ..." configuration line into
// a complete frame written to buf, grounded on ublox_confline2bin_hex. The
// hex bytes following the literal "-" separator are class, id, lenLo, lenHi,
// then payload — i.e. everything between the sync prefix and the checksum —
// duplicating the mnemonic's (class,id) so the translator can cross-check
// the line against itself before trusting it.
func TranslateHexLine(buf []byte, line string) (int, error) {
	fields := fieldsWhitespace(line)
	if len(fields) < 2 || fields[1] != "-" {
		return 0, ErrInvalidArgument
	}
	class, id, err := ResolveClassID(fields[0])
	if err != nil {
		return 0, err
	}
	body := parseHexList(strings.Join(fields[2:], " "))
	if len(body) < HeaderLen-2 {
		return 0, ErrInvalidArgument
	}
	if body[0] != class || body[1] != id {
		return 0, ErrInvalidArgument
	}
	count := int(body[2]) | int(body[3])<<8
	payload := body[4:]
	if count != len(payload) {
		return 0, ErrInvalidArgument
	}
	if err := checkCap(buf, 8+len(payload)); err != nil {
		return 0, err
	}
	writeHeader(buf, class, id, len(payload))
	copy(buf[6:], payload)
	return finish(buf, len(payload)), nil
}
