package ubx

import "sort"

// cstrVal mirrors the original source's cstr_val_t: a mnemonic paired with
// its numeric code, grounded on original_source/src/ubloxcstr.c.
type cstrVal struct {
	name string
	val  byte
}

// Sorted strictly by name; lookup is by binary search, as spec.md requires.
// Grounded on original_source/src/ubloxcstr.c's list_id_mon/cfg/trk/upd/nav
// and list_class tables.
var (
	listIDMon = []cstrVal{
		{"HW", 0x09},
		{"HW2", 0x0B},
		{"IO", 0x02},
		{"MSGPP", 0x06},
		{"RXBUF", 0x07},
		{"RXR", 0x21},
		{"TXBUF", 0x08},
		{"VER", 0x04},
	}

	listIDCfg = []cstrVal{
		{"ANT", 0x13},
		{"BATCH", 0x93},
		{"BDS", 0x4A},
		{"CFG", 0x09},
		{"DAT", 0x06},
		{"DGNSS", 0x70},
		{"DYNSEED", 0x85},
		{"EKF", 0x12},
		{"ESFGWT", 0x29},
		{"ESRC", 0x60},
		{"FIXSEED", 0x84},
		{"FXN", 0x0E},
		{"GEOFENCE", 0x69},
		{"GNSS", 0x3E},
		{"HNR", 0x5C},
		{"INF", 0x02},
		{"ITFM", 0x39},
		{"LOGFILTER", 0x47},
		{"MSG", 0x01},
		{"NAV5", 0x24},
		{"NAVX5", 0x23},
		{"NMEA", 0x17},
		{"NVS", 0x22},
		{"ODO", 0x1E},
		{"PM", 0x32},
		{"PM2", 0x3B},
		{"PMS", 0x86},
		{"PRT", 0x00},
		{"PWR", 0x57},
		{"RATE", 0x08},
		{"RINV", 0x34},
		{"RST", 0x04},
		{"RXM", 0x11},
		{"SBAS", 0x16},
		{"SMGR", 0x62},
		{"TMODE", 0x1D},
		{"TMODE2", 0x3D},
		{"TMODE3", 0x71},
		{"TP", 0x07},
		{"TP5", 0x31},
		{"USB", 0x1B},
	}

	listIDTrk = []cstrVal{
		{"D2", 0x06},
		{"D5", 0x0A},
		{"MEAS", 0x10},
		{"SFRB", 0x02},
		{"SFRBX", 0x0F},
	}

	listIDUpd = []cstrVal{
		{"DOWNL", 0x01},
		{"EXEC", 0x03},
		{"MEMCPY", 0x04},
		{"SOS", 0x14},
		{"UPLOAD", 0x02},
	}

	listIDNav = []cstrVal{
		{"CLOCK", 0x22},
		{"SVINFO", 0x30},
		{"TIMEBDS", 0x24},
		{"TIMEGAL", 0x25},
		{"TIMEGLO", 0x23},
		{"TIMEGPS", 0x20},
		{"TIMELS", 0x26},
		{"TIMEUTC", 0x21},
	}

	// listIDTim is SPEC_FULL.md's addition beyond the original source (which
	// defines no list_id_tim): spec.md's class/id universe names a TIM id
	// table, populated here with the u-blox protocol's published TIM message
	// ids (only TM2 appears in original_source/src/ubloxconn.h).
	listIDTim = []cstrVal{
		{"DOSC", 0x11},
		{"FCHG", 0x16},
		{"HOC", 0x17},
		{"SMEAS", 0x13},
		{"SVIN", 0x04},
		{"TM2", 0x03},
		{"TOS", 0x12},
		{"TP", 0x01},
		{"VCOCAL", 0x15},
		{"VRFY", 0x06},
	}

	// listClass adds TIM to the original source's list_class, per spec.md
	// §4.2's broader class table.
	listClass = []cstrVal{
		{"ACK", ClassACK},
		{"AID", ClassAID},
		{"CFG", ClassCFG},
		{"ESF", ClassESF},
		{"HNR", ClassHNR},
		{"INF", ClassINF},
		{"LOG", ClassLOG},
		{"MGA", ClassMGA},
		{"MON", ClassMON},
		{"NAV", ClassNAV},
		{"RXM", ClassRXM},
		{"SEC", ClassSEC},
		{"TIM", ClassTIM},
		{"TRK", ClassTRK},
		{"UPD", ClassUPD},
	}
)

// classIDTables mirrors the original source's ublox_class_id[] record array:
// a per-class id table, nil where the class has none populated, indexed
// alongside listClass.
var classIDTables = map[byte][]cstrVal{
	ClassCFG: listIDCfg,
	ClassMON: listIDMon,
	ClassNAV: listIDNav,
	ClassTIM: listIDTim,
	ClassTRK: listIDTrk,
	ClassUPD: listIDUpd,
}

func bsearch(table []cstrVal, name string) (byte, bool) {
	i := sort.Search(len(table), func(i int) bool { return table[i].name >= name })
	if i < len(table) && table[i].name == name {
		return table[i].val, true
	}
	return 0, false
}

// ClassCode resolves a class mnemonic (e.g. "CFG") to its numeric code.
func ClassCode(mnemonic string) (byte, error) {
	v, ok := bsearch(listClass, mnemonic)
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

// IDCode resolves a class-specific id mnemonic (e.g. "MSG" within CFG) to
// its numeric code. Classes with no populated id table report
// ErrClassHasNoTable.
func IDCode(class byte, mnemonic string) (byte, error) {
	table, ok := classIDTables[class]
	if !ok {
		return 0, ErrClassHasNoTable
	}
	v, ok := bsearch(table, mnemonic)
	if !ok {
		return 0, ErrNotFound
	}
	return v, nil
}

// ResolveClassID parses a "CLASS-ID" mnemonic pair (e.g. "CFG-MSG") into its
// numeric (class, id) codes, grounded on cstr2val_ublox_classid.
func ResolveClassID(s string) (class, id byte, err error) {
	dash := indexByte(s, '-')
	if dash < 0 {
		return 0, 0, ErrNotFound
	}
	class, err = ClassCode(s[:dash])
	if err != nil {
		return 0, 0, err
	}
	id, err = IDCode(class, s[dash+1:])
	if err != nil {
		return 0, 0, err
	}
	return class, id, nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func reverseLookup(table []cstrVal, val byte) (string, bool) {
	for _, e := range table {
		if e.val == val {
			return e.name, true
		}
	}
	return "", false
}

// MnemonicFor is the total reverse mapping of ResolveClassID: it returns the
// "CLASS-ID" label for a recognized pair, or "UNKNOWN_UBX_ID" otherwise,
// matching val2cstr_ublox_classid's default arm.
func MnemonicFor(class, id byte) string {
	className, ok := reverseLookup(listClass, class)
	if !ok {
		return "UNKNOWN_UBX_ID"
	}
	table, ok := classIDTables[class]
	if !ok {
		return "UNKNOWN_UBX_ID"
	}
	idName, ok := reverseLookup(table, id)
	if !ok {
		return "UNKNOWN_UBX_ID"
	}
	return className + "-" + idName
}

var portLabels = []string{"I2C", "UART1", "UART2", "USB", "SPI"}

// PortLabel is the total function mapping a CFG-PRT port id to its label,
// falling back to "UNKNOWN_PORT_ID" as val2cstr_ublox_portid does.
func PortLabel(id byte) string {
	if int(id) < len(portLabels) {
		return portLabels[id]
	}
	return "UNKNOWN_PORT_ID"
}

var gnssLabels = map[byte]string{
	0: "GPS",
	1: "SBS",
	2: "GAL",
	3: "CMP",
	5: "QZS",
	6: "GLO",
}

// GNSSLabel is the total function mapping a GNSS id to its label, falling
// back to "UNKNOWN_GNSS" as ublox_val2cstr_gnss does.
func GNSSLabel(id byte) string {
	if l, ok := gnssLabels[id]; ok {
		return l
	}
	return "UNKNOWN_GNSS"
}

// ValidateTables asserts that every name table is sorted and free of
// duplicate mnemonics, promoting the original source's "SHOULD assert sort
// order" into a hard startup guarantee a CLI can call before trusting
// lookups.
func ValidateTables() error {
	all := map[string][]cstrVal{
		"class": listClass,
		"cfg":   listIDCfg,
		"mon":   listIDMon,
		"nav":   listIDNav,
		"tim":   listIDTim,
		"trk":   listIDTrk,
		"upd":   listIDUpd,
	}
	for name, table := range all {
		if !sort.SliceIsSorted(table, func(i, j int) bool { return table[i].name < table[j].name }) {
			return &tableError{name, "not sorted"}
		}
		for i := 1; i < len(table); i++ {
			if table[i].name == table[i-1].name {
				return &tableError{name, "duplicate mnemonic " + table[i].name}
			}
		}
	}
	return nil
}

type tableError struct {
	table  string
	reason string
}

func (e *tableError) Error() string {
	return "ubx: name table " + e.table + ": " + e.reason
}
