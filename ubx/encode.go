package ubx

import "encoding/binary"

// writeHeader writes the sync prefix, class, id and little-endian payload
// length into buf[0:6]; buf must have room for 8+len(payload) bytes.
func writeHeader(buf []byte, class, id byte, payloadLen int) {
	buf[0] = SyncA
	buf[1] = SyncB
	buf[2] = class
	buf[3] = id
	binary.LittleEndian.PutUint16(buf[4:6], uint16(payloadLen))
}

// finish appends the checksum over buf[2:6+payloadLen] and returns the total
// frame length.
func finish(buf []byte, payloadLen int) int {
	a, b := Checksum(buf[2 : 6+payloadLen])
	buf[6+payloadLen] = a
	buf[6+payloadLen+1] = b
	return 8 + payloadLen
}

func checkCap(buf []byte, need int) error {
	if len(buf) < need {
		return ErrBufferTooSmall
	}
	return nil
}

// EncodeGetVersion writes a MON-VER poll frame (empty payload).
// Grounded on ublox_pkt_create_get_version.
func EncodeGetVersion(buf []byte) (int, error) {
	if err := checkCap(buf, MinFrameLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassMON, 0x04, 0)
	return finish(buf, 0), nil
}

// EncodeGetHW writes a MON-HW poll frame. Grounded on ublox_pkt_create_get_hw.
func EncodeGetHW(buf []byte) (int, error) {
	if err := checkCap(buf, MinFrameLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassMON, 0x09, 0)
	return finish(buf, 0), nil
}

// EncodeGetHW2 writes a MON-HW2 poll frame. Grounded on ublox_pkt_create_get_hw2.
func EncodeGetHW2(buf []byte) (int, error) {
	if err := checkCap(buf, MinFrameLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassMON, 0x0B, 0)
	return finish(buf, 0), nil
}

// EncodeCFGMSG writes a CFG-MSG set frame for the given message class/id and
// per-port rates. rates must have length 1 (single port) or 6 (all ports);
// any other length is ErrInvalidArgument. Grounded on
// ublox_pkt_create_set_cfgmsg.
func EncodeCFGMSG(buf []byte, msgClass, msgID byte, rates []byte) (int, error) {
	if len(rates) != 1 && len(rates) != 6 {
		return 0, ErrInvalidArgument
	}
	payloadLen := 2 + len(rates)
	if err := checkCap(buf, 8+payloadLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x01, payloadLen)
	buf[6] = msgClass
	buf[7] = msgID
	copy(buf[8:], rates)
	return finish(buf, payloadLen), nil
}

// EncodeGetCFGPRT writes a CFG-PRT poll frame. portID 0xFF polls all ports
// (empty payload); any other value polls a single port (1-byte payload).
// Grounded on ublox_pkt_create_get_cfgprt.
func EncodeGetCFGPRT(buf []byte, portID byte) (int, error) {
	if portID == 0xFF {
		if err := checkCap(buf, MinFrameLen); err != nil {
			return 0, err
		}
		writeHeader(buf, ClassCFG, 0x00, 0)
		return finish(buf, 0), nil
	}
	if err := checkCap(buf, 9); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x00, 1)
	buf[6] = portID
	return finish(buf, 1), nil
}

// CFGPRTSet holds the fields of a "set CFG-PRT" frame. Grounded on
// ublox_pkt_create_set_cfgprt.
type CFGPRTSet struct {
	PortID       byte
	TxReady      uint16
	Mode         uint32
	BaudRate     uint32
	InPortoMask  uint16
	OutPortoMask uint16
}

// EncodeSetCFGPRT writes a CFG-PRT set frame (20-byte payload).
func EncodeSetCFGPRT(buf []byte, s CFGPRTSet) (int, error) {
	if err := checkCap(buf, 8+20); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x00, 20)
	p := buf[6:]
	p[0] = s.PortID
	p[1] = 0
	binary.LittleEndian.PutUint16(p[2:4], s.TxReady)
	binary.LittleEndian.PutUint32(p[4:8], s.Mode)
	binary.LittleEndian.PutUint32(p[8:12], s.BaudRate)
	binary.LittleEndian.PutUint16(p[12:14], s.InPortoMask)
	binary.LittleEndian.PutUint16(p[14:16], s.OutPortoMask)
	p[16], p[17], p[18], p[19] = 0, 0, 0, 0
	return finish(buf, 20), nil
}

// EncodeGetCFGRate writes a CFG-RATE poll frame. Grounded on
// ublox_pkt_create_get_cfgrate.
func EncodeGetCFGRate(buf []byte) (int, error) {
	if err := checkCap(buf, MinFrameLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x08, 0)
	return finish(buf, 0), nil
}

// EncodeSetCFGRate writes a CFG-RATE set frame. Grounded on
// ublox_pkt_create_set_cfgrate.
func EncodeSetCFGRate(buf []byte, measRate, navRate, timeRef uint16) (int, error) {
	if err := checkCap(buf, 8+6); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x08, 6)
	p := buf[6:]
	binary.LittleEndian.PutUint16(p[0:2], measRate)
	binary.LittleEndian.PutUint16(p[2:4], navRate)
	binary.LittleEndian.PutUint16(p[4:6], timeRef)
	return finish(buf, 6), nil
}

// EncodeSetCFGCFG writes a CFG-CFG set frame. deviceMask of 0 omits the
// optional 13th byte, producing a 12-byte payload; any other value appends
// it. Grounded on ublox_pkt_create_set_cfgcfg.
func EncodeSetCFGCFG(buf []byte, clearMask, saveMask, loadMask uint32, deviceMask byte) (int, error) {
	payloadLen := 12
	if deviceMask != 0 {
		payloadLen = 13
	}
	if err := checkCap(buf, 8+payloadLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x09, payloadLen)
	p := buf[6:]
	binary.LittleEndian.PutUint32(p[0:4], clearMask)
	binary.LittleEndian.PutUint32(p[4:8], saveMask)
	binary.LittleEndian.PutUint32(p[8:12], loadMask)
	if deviceMask != 0 {
		p[12] = deviceMask
	}
	return finish(buf, payloadLen), nil
}

// EncodeCFGBDS writes a CFG-BDS frame: six 32-bit little-endian words.
// Grounded on ublox_pkt_create_cfg_bds.
func EncodeCFGBDS(buf []byte, w1, w2, w3, w4, w5, w6 uint32) (int, error) {
	const payloadLen = 24
	if err := checkCap(buf, 8+payloadLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x4A, payloadLen)
	p := buf[6:]
	for i, w := range [6]uint32{w1, w2, w3, w4, w5, w6} {
		binary.LittleEndian.PutUint32(p[i*4:i*4+4], w)
	}
	return finish(buf, payloadLen), nil
}

// CFGGNSSBlock is one 8-byte per-GNSS configuration block within a set
// CFG-GNSS frame.
type CFGGNSSBlock struct {
	GNSSID   byte
	ResTrkCh byte
	MaxTrkCh byte
	Flags    uint32
}

// EncodeSetCFGGNSS writes a CFG-GNSS set frame. Grounded on
// ublox_pkt_create_set_cfg_gnss.
func EncodeSetCFGGNSS(buf []byte, msgVer, numTrkChHw, numTrkChUse byte, blocks []CFGGNSSBlock) (int, error) {
	payloadLen := 4 + 8*len(blocks)
	if err := checkCap(buf, 8+payloadLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassCFG, 0x3E, payloadLen)
	p := buf[6:]
	p[0] = msgVer
	p[1] = numTrkChHw
	p[2] = numTrkChUse
	p[3] = byte(len(blocks))
	off := 4
	for _, b := range blocks {
		p[off+0] = b.GNSSID
		p[off+1] = b.ResTrkCh
		p[off+2] = b.MaxTrkCh
		p[off+3] = 0
		binary.LittleEndian.PutUint32(p[off+4:off+8], b.Flags)
		off += 8
	}
	return finish(buf, payloadLen), nil
}

// EncodeUPDDownl writes an UPD-DOWNL frame: startAddr, flags, then data.
// Grounded on ublox_pkt_create_upd_downl.
func EncodeUPDDownl(buf []byte, startAddr, flags uint32, data []byte) (int, error) {
	payloadLen := 8 + len(data)
	if err := checkCap(buf, 8+payloadLen); err != nil {
		return 0, err
	}
	writeHeader(buf, ClassUPD, 0x01, payloadLen)
	p := buf[6:]
	binary.LittleEndian.PutUint32(p[0:4], startAddr)
	binary.LittleEndian.PutUint32(p[4:8], flags)
	copy(p[8:], data)
	return finish(buf, payloadLen), nil
}
