package i8088

// Segment identifies the segment register driving the current bus
// access, as reported by the BIU. None covers cycles with no segment
// association (interrupt acknowledge, halt).
type Segment uint8

const (
	SegNone Segment = iota
	SegES
	SegSS
	SegCS
	SegDS
)

func (s Segment) String() string {
	switch s {
	case SegES:
		return "ES"
	case SegSS:
		return "SS"
	case SegCS:
		return "CS"
	case SegDS:
		return "DS"
	default:
		return "  "
	}
}

// busCode returns the 2-bit segment status code the 8088 multiplexes
// onto address lines A16/A17 after ALE: ES=0, SS=1, CS/None=2, DS=3.
func (s Segment) busCode() uint32 {
	switch s {
	case SegES:
		return 0
	case SegSS:
		return 1
	case SegDS:
		return 3
	default:
		return 2
	}
}

// segmentLabel returns the 2-char segment column. The segment status is
// multiplexed onto the bus after T1, so it is suppressed during T1 even
// when the indicator itself is set.
func (cpu *CPU) segmentLabel() string {
	if cpu.TCycle == T1 {
		return "  "
	}
	return cpu.BusSegment.String()
}

// LatchSegmentStatus back-patches bits 16-17 of the address bus with the
// segment status code once ALE has deasserted, modeling the segment
// status the 8088 multiplexes onto A16/A17 for the rest of the cycle.
// Bits 16-17 are fully overwritten, so the patch is idempotent.
//
// Must be called once per half-cycle, before any render call, so that no
// rendering path sees stale segment bits.
func (cpu *CPU) LatchSegmentStatus() {
	if cpu.I8288.ALE {
		return
	}
	cpu.AddressBus = (cpu.AddressBus & 0b1100_1111_1111_1111_1111) | (cpu.BusSegment.busCode() << 16)
}
