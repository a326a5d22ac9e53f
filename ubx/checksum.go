package ubx

// SyncA and SyncB are the fixed two-byte sync prefix that opens every frame.
const (
	SyncA = 0xB5
	SyncB = 0x62

	// HeaderLen is the size of sync+class+id+length, before any payload.
	HeaderLen = 6
	// MinFrameLen is the smallest legal frame: header plus a 2-byte checksum.
	MinFrameLen = 8
	// MaxPayloadLen bounds payload size for frames this toolkit handles.
	MaxPayloadLen = 1200
)

// Checksum computes the 8-bit dual-accumulator checksum used by every UBX
// frame, over the given region (class, id, length, payload — never the sync
// bytes themselves). It is pure, runs in O(n) and never fails.
func Checksum(b []byte) (a, ck byte) {
	var accA, accB byte
	for _, x := range b {
		accA += x
		accB += accA
	}
	return accA, accB
}

// Verify reports whether frame is a well-formed, checksum-valid UBX frame:
// it starts with the sync prefix, is at least MinFrameLen bytes, its length
// field matches the actual payload size, and its trailing two bytes equal
// Checksum(frame[2:len-2]).
func Verify(frame []byte) error {
	if len(frame) < MinFrameLen {
		return ErrMalformed
	}
	if frame[0] != SyncA || frame[1] != SyncB {
		return ErrMalformed
	}
	count := int(frame[4]) | int(frame[5])<<8
	if len(frame) != MinFrameLen+count {
		return ErrMalformed
	}
	a, b := Checksum(frame[2 : 6+count])
	if frame[6+count] != a || frame[6+count+1] != b {
		return ErrMalformed
	}
	return nil
}
