package i8088

import "testing"

func TestSegmentLabelSuppressedDuringT1(t *testing.T) {
	segments := []Segment{SegNone, SegES, SegSS, SegCS, SegDS}
	cycles := []TCycle{Tinit, Ti, T1, T2, T3, T4, Tw}

	for _, seg := range segments {
		for _, cycle := range cycles {
			cpu := NewCPU()
			cpu.BusSegment = seg
			cpu.TCycle = cycle

			got := cpu.segmentLabel()
			wantBlank := cycle == T1 || seg == SegNone
			if wantBlank && got != "  " {
				t.Fatalf("seg %v cycle %v: expected blank label, got %q", seg, cycle, got)
			}
			if !wantBlank && got != seg.String() {
				t.Fatalf("seg %v cycle %v: unexpected label: got %q want %q", seg, cycle, got, seg.String())
			}
		}
	}
}

func TestSegmentBusCodes(t *testing.T) {
	tests := []struct {
		seg  Segment
		want uint32
	}{
		{SegES, 0},
		{SegSS, 1},
		{SegCS, 2},
		{SegNone, 2},
		{SegDS, 3},
	}

	for _, tt := range tests {
		if got := tt.seg.busCode(); got != tt.want {
			t.Fatalf("unexpected bus code for %v: got %d want %d", tt.seg, got, tt.want)
		}
	}
}

func TestLatchSegmentStatus(t *testing.T) {
	cpu := NewCPU()
	cpu.AddressBus = 0x3FFFF // bits 16-17 set to a stale value
	cpu.BusSegment = SegES

	cpu.LatchSegmentStatus()
	if cpu.AddressBus != 0x0FFFF {
		t.Fatalf("unexpected address after latch: got %05X want 0FFFF", cpu.AddressBus)
	}
}

func TestLatchSegmentStatusIdempotent(t *testing.T) {
	cpu := NewCPU()
	cpu.AddressBus = 0x012F4
	cpu.BusSegment = SegDS

	cpu.LatchSegmentStatus()
	first := cpu.AddressBus
	cpu.LatchSegmentStatus()

	if cpu.AddressBus != first {
		t.Fatalf("latch is not idempotent: first %05X second %05X", first, cpu.AddressBus)
	}
	if first>>16&0x3 != 3 {
		t.Fatalf("unexpected segment bits: got %d want 3", first>>16&0x3)
	}
}

func TestLatchSegmentStatusHeldDuringALE(t *testing.T) {
	cpu := NewCPU()
	cpu.AddressBus = 0x3FFFF
	cpu.BusSegment = SegES
	cpu.I8288.ALE = true

	cpu.LatchSegmentStatus()
	if cpu.AddressBus != 0x3FFFF {
		t.Fatalf("address patched while ALE asserted: %05X", cpu.AddressBus)
	}
}

func TestT1SuppressesLabelButPatchesBits(t *testing.T) {
	cpu := NewCPU()
	cpu.TCycle = T1
	cpu.BusSegment = SegCS
	cpu.AddressBus = 0x012F4
	cpu.WaitStates = 0

	cpu.LatchSegmentStatus()

	if got := cpu.readyChar(); got != 'R' {
		t.Fatalf("unexpected ready char: got %q want 'R'", got)
	}
	if got := cpu.segmentLabel(); got != "  " {
		t.Fatalf("segment label not suppressed in T1: %q", got)
	}
	if got := cpu.AddressBus >> 16 & 0x3; got != 2 {
		t.Fatalf("unexpected segment bits: got %d want 2", got)
	}
}

func TestReadyCharWaitStates(t *testing.T) {
	cpu := NewCPU()
	cpu.WaitStates = 2
	if got := cpu.readyChar(); got != '.' {
		t.Fatalf("unexpected ready char with wait states: got %q want '.'", got)
	}
}
