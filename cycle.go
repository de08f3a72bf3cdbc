package i8088

// TCycle identifies the clock phase of the current bus cycle. A nominal
// bus cycle runs T1..T4; Tw phases are inserted between T3 and T4 while
// the addressed device holds READY low.
type TCycle uint8

const (
	Tinit TCycle = iota // pre-reset, no cycle has run yet
	Ti                  // idle, bus not in a cycle
	T1
	T2
	T3
	T4
	Tw // inserted wait phase
)

func (t TCycle) String() string {
	switch t {
	case Tinit:
		return "Tx"
	case Ti:
		return "Ti"
	case T1:
		return "T1"
	case T2:
		return "T2"
	case T3:
		return "T3"
	case T4:
		return "T4"
	case Tw:
		return "Tw"
	default:
		return "T?"
	}
}

// Next advances the T-cycle sequence by one full clock. waitPending
// reports whether READY is still low at the end of T3/Tw, in which case
// a Tw phase is inserted instead of completing the cycle with T4.
//
// The driver keeps the bus in Ti by simply not advancing while no bus
// cycle is pending; once it advances out of Ti a new cycle starts at T1.
func (t TCycle) Next(waitPending bool) TCycle {
	switch t {
	case Tinit:
		return Ti
	case Ti:
		return T1
	case T1:
		return T2
	case T2:
		return T3
	case T3, Tw:
		if waitPending {
			return Tw
		}
		return T4
	case T4:
		return T1
	default:
		return Ti
	}
}
