package ubx

// Class codes, grounded on original_source/src/ubloxconn.h.
const (
	ClassNAV = 0x01
	ClassRXM = 0x02
	ClassTRK = 0x03
	ClassINF = 0x04
	ClassACK = 0x05
	ClassCFG = 0x06
	ClassUPD = 0x09
	ClassMON = 0x0A
	ClassAID = 0x0B
	ClassESF = 0x10
	ClassMGA = 0x13
	ClassTIM = 0x0D
	ClassLOG = 0x21
	ClassSEC = 0x27
	ClassHNR = 0x28
)

// ClassID packs an 8-bit class and id into the 16-bit message identity used
// throughout this package, matching UBLOX_CLASS_ID in the original source.
func ClassID(class, id byte) uint16 {
	return uint16(class)<<8 | uint16(id)
}

// SplitClassID is the inverse of ClassID.
func SplitClassID(classID uint16) (class, id byte) {
	return byte(classID >> 8), byte(classID)
}

// The closed universe of (class,id) message identities this toolkit knows
// how to encode or decode, named per the u-blox interface description.
const (
	idNavClock   = uint16(ClassNAV)<<8 | 0x22
	idNavPVT     = uint16(ClassNAV)<<8 | 0x07
	idNavSOL     = uint16(ClassNAV)<<8 | 0x06
	idNavStatus  = uint16(ClassNAV)<<8 | 0x03
	idNavSVInfo  = uint16(ClassNAV)<<8 | 0x30
	idNavTimeGPS = uint16(ClassNAV)<<8 | 0x20
	idNavVelNED  = uint16(ClassNAV)<<8 | 0x12

	idRxmRaw   = uint16(ClassRXM)<<8 | 0x10
	idRxmSFRB  = uint16(ClassRXM)<<8 | 0x11
	idRxmSFRBX = uint16(ClassRXM)<<8 | 0x13
	idRxmRawX  = uint16(ClassRXM)<<8 | 0x15

	idTrkD2    = uint16(ClassTRK)<<8 | 0x06
	idTrkD5    = uint16(ClassTRK)<<8 | 0x0A
	idTrkMeas  = uint16(ClassTRK)<<8 | 0x10
	idTrkSFRB  = uint16(ClassTRK)<<8 | 0x02
	idTrkSFRBX = uint16(ClassTRK)<<8 | 0x0F

	idAckNAK = uint16(ClassACK)<<8 | 0x00
	idAckACK = uint16(ClassACK)<<8 | 0x01

	idCfgANT       = uint16(ClassCFG)<<8 | 0x13
	idCfgBatch     = uint16(ClassCFG)<<8 | 0x93
	idCfgBDS       = uint16(ClassCFG)<<8 | 0x4A
	idCfgCFG       = uint16(ClassCFG)<<8 | 0x09
	idCfgDAT       = uint16(ClassCFG)<<8 | 0x06
	idCfgDGNSS     = uint16(ClassCFG)<<8 | 0x70
	idCfgDynSeed   = uint16(ClassCFG)<<8 | 0x85
	idCfgEKF       = uint16(ClassCFG)<<8 | 0x12
	idCfgESFGWT    = uint16(ClassCFG)<<8 | 0x29
	idCfgESRC      = uint16(ClassCFG)<<8 | 0x60
	idCfgFixSeed   = uint16(ClassCFG)<<8 | 0x84
	idCfgFXN       = uint16(ClassCFG)<<8 | 0x0E
	idCfgGeofence  = uint16(ClassCFG)<<8 | 0x69
	idCfgGNSS      = uint16(ClassCFG)<<8 | 0x3E
	idCfgHNR       = uint16(ClassCFG)<<8 | 0x5C
	idCfgINF       = uint16(ClassCFG)<<8 | 0x02
	idCfgITFM      = uint16(ClassCFG)<<8 | 0x39
	idCfgLogFilter = uint16(ClassCFG)<<8 | 0x47
	idCfgMSG       = uint16(ClassCFG)<<8 | 0x01
	idCfgNAV5      = uint16(ClassCFG)<<8 | 0x24
	idCfgNAVX5     = uint16(ClassCFG)<<8 | 0x23
	idCfgNMEA      = uint16(ClassCFG)<<8 | 0x17
	idCfgNVS       = uint16(ClassCFG)<<8 | 0x22
	idCfgODO       = uint16(ClassCFG)<<8 | 0x1E
	idCfgPM        = uint16(ClassCFG)<<8 | 0x32
	idCfgPM2       = uint16(ClassCFG)<<8 | 0x3B
	idCfgPMS       = uint16(ClassCFG)<<8 | 0x86
	idCfgPRT       = uint16(ClassCFG)<<8 | 0x00
	idCfgPWR       = uint16(ClassCFG)<<8 | 0x57
	idCfgRATE      = uint16(ClassCFG)<<8 | 0x08
	idCfgRINV      = uint16(ClassCFG)<<8 | 0x34
	idCfgRST       = uint16(ClassCFG)<<8 | 0x04
	idCfgRXM       = uint16(ClassCFG)<<8 | 0x11
	idCfgSBAS      = uint16(ClassCFG)<<8 | 0x16
	idCfgSMGR      = uint16(ClassCFG)<<8 | 0x62
	idCfgTMODE     = uint16(ClassCFG)<<8 | 0x1D
	idCfgTMODE2    = uint16(ClassCFG)<<8 | 0x3D
	idCfgTMODE3    = uint16(ClassCFG)<<8 | 0x71
	idCfgTP        = uint16(ClassCFG)<<8 | 0x07
	idCfgTP5       = uint16(ClassCFG)<<8 | 0x31
	idCfgUSB       = uint16(ClassCFG)<<8 | 0x1B

	idUpdDownl  = uint16(ClassUPD)<<8 | 0x01
	idUpdExec   = uint16(ClassUPD)<<8 | 0x03
	idUpdMemcpy = uint16(ClassUPD)<<8 | 0x04
	idUpdSOS    = uint16(ClassUPD)<<8 | 0x14
	idUpdUpload = uint16(ClassUPD)<<8 | 0x02

	idMonHW    = uint16(ClassMON)<<8 | 0x09
	idMonHW2   = uint16(ClassMON)<<8 | 0x0B
	idMonIO    = uint16(ClassMON)<<8 | 0x02
	idMonMsgPP = uint16(ClassMON)<<8 | 0x06
	idMonRxBuf = uint16(ClassMON)<<8 | 0x07
	idMonRxR   = uint16(ClassMON)<<8 | 0x21
	idMonTxBuf = uint16(ClassMON)<<8 | 0x08
	idMonVer   = uint16(ClassMON)<<8 | 0x04

	idTimTM2 = uint16(ClassTIM)<<8 | 0x03
)
