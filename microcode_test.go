package i8088

import "testing"

func TestMicrocodeLabels(t *testing.T) {
	tests := []struct {
		name  string
		value uint16
		want  string
	}{
		{"Jump", McJump, "JMP"},
		{"Return", McRtn, "RET"},
		{"Correction", McCorr, "COR"},
		{"None", McNone, "   "},
		{"Address", 0x0AB, "0AB"},
		{"LowAddress", 0x004, "004"},
		{"HighAddress", 0x1FF, "1FF"},
	}

	for _, tt := range tests {
		if got := microcodeLabel(tt.value); got != tt.want {
			t.Fatalf("%s: unexpected label: got %q want %q", tt.name, got, tt.want)
		}
	}
}

func TestMicrocodeOpLookup(t *testing.T) {
	if got := microcodeOp(0x000); got != microcodeSrc8088[0] {
		t.Fatalf("unexpected mnemonic for address 0: %q", got)
	}
}

func TestMicrocodeOpFallback(t *testing.T) {
	// Out-of-range lookups, including all sentinels, must render the
	// placeholder rather than failing.
	for _, v := range []uint16{uint16(len(microcodeSrc8088)), 0x1FF, McJump, McRtn, McCorr, McNone} {
		if got := microcodeOp(v); got != microcodeNul {
			t.Fatalf("value %03X: unexpected mnemonic: got %q want %q", v, got, microcodeNul)
		}
	}
}
