package ubx

import "testing"

func TestValidateTables(t *testing.T) {
	if err := ValidateTables(); err != nil {
		t.Fatalf("ValidateTables() = %v, want nil", err)
	}
}

func TestResolveClassIDKnownPairs(t *testing.T) {
	cases := []struct {
		mnemonic   string
		class, id  byte
	}{
		{"CFG-MSG", ClassCFG, 0x01},
		{"MON-HW2", ClassMON, 0x0B},
		{"NAV-TIMEGLO", ClassNAV, 0x23},
		{"TRK-SFRB", ClassTRK, 0x02},
		{"UPD-DOWNL", ClassUPD, 0x01},
	}
	for _, c := range cases {
		class, id, err := ResolveClassID(c.mnemonic)
		if err != nil {
			t.Fatalf("ResolveClassID(%q) error = %v", c.mnemonic, err)
		}
		if class != c.class || id != c.id {
			t.Fatalf("ResolveClassID(%q) = (%02X,%02X), want (%02X,%02X)", c.mnemonic, class, id, c.class, c.id)
		}
		if got := MnemonicFor(class, id); got != c.mnemonic {
			t.Fatalf("MnemonicFor(%02X,%02X) = %q, want %q", class, id, got, c.mnemonic)
		}
	}
}

func TestResolveClassIDNotFound(t *testing.T) {
	if _, _, err := ResolveClassID("NAV-AOPSTATUS"); err != ErrNotFound {
		t.Fatalf("ResolveClassID(NAV-AOPSTATUS) error = %v, want ErrNotFound", err)
	}
}

func TestResolveClassIDMissingDash(t *testing.T) {
	if _, _, err := ResolveClassID("CFGMSG"); err != ErrNotFound {
		t.Fatalf("ResolveClassID(CFGMSG) error = %v, want ErrNotFound", err)
	}
}

func TestIDCodeUnpopulatedClass(t *testing.T) {
	if _, err := IDCode(ClassACK, "ACK"); err != ErrClassHasNoTable {
		t.Fatalf("IDCode(ACK,...) error = %v, want ErrClassHasNoTable", err)
	}
}

func TestMnemonicForUnknown(t *testing.T) {
	if got := MnemonicFor(0x7F, 0x7F); got != "UNKNOWN_UBX_ID" {
		t.Fatalf("MnemonicFor(unknown) = %q, want UNKNOWN_UBX_ID", got)
	}
}

func TestPortLabel(t *testing.T) {
	if got := PortLabel(1); got != "UART1" {
		t.Fatalf("PortLabel(1) = %q, want UART1", got)
	}
	if got := PortLabel(0xFF); got != "UNKNOWN_PORT_ID" {
		t.Fatalf("PortLabel(0xFF) = %q, want UNKNOWN_PORT_ID", got)
	}
}

func TestGNSSLabel(t *testing.T) {
	if got := GNSSLabel(6); got != "GLO" {
		t.Fatalf("GNSSLabel(6) = %q, want GLO", got)
	}
	if got := GNSSLabel(0x7F); got != "UNKNOWN_GNSS" {
		t.Fatalf("GNSSLabel(0x7F) = %q, want UNKNOWN_GNSS", got)
	}
}
