package i8088

import "fmt"

// BiuStateKind enumerates who owns the bus interface unit. The three
// transitional kinds carry a countdown before the switch completes.
type BiuStateKind uint8

const (
	BiuIdle BiuStateKind = iota
	BiuPrefetch
	BiuEu
	BiuToIdle
	BiuToPrefetch
	BiuToEu
)

// BiuState is the BIU arbitration state. Delay is only meaningful for
// the transitional kinds and counts the full clocks remaining until the
// corresponding steady state is reached. The countdown is kept
// accessible for the external state-machine driver; rendering only
// distinguishes transitional from steady.
type BiuState struct {
	Kind  BiuStateKind
	Delay uint8
}

// Label returns the fixed 3-char display glyph. Transitional states use
// the '>' glyph set regardless of their remaining countdown.
func (s BiuState) Label() string {
	switch s.Kind {
	case BiuToIdle:
		return ">I "
	case BiuToPrefetch:
		return ">PF"
	case BiuToEu:
		return ">EU"
	case BiuIdle:
		return "I  "
	case BiuPrefetch:
		return "PF "
	case BiuEu:
		return "EU "
	default:
		return "?  "
	}
}

// Tick advances the arbitration countdown by one clock. Transitional
// states resolve to their steady state when the countdown expires;
// steady states are returned unchanged.
func (s BiuState) Tick() BiuState {
	switch s.Kind {
	case BiuToIdle, BiuToPrefetch, BiuToEu:
		if s.Delay > 1 {
			s.Delay--
			return s
		}
		return BiuState{Kind: s.resolved()}
	default:
		return s
	}
}

func (s BiuState) resolved() BiuStateKind {
	switch s.Kind {
	case BiuToIdle:
		return BiuIdle
	case BiuToPrefetch:
		return BiuPrefetch
	case BiuToEu:
		return BiuEu
	default:
		return s.Kind
	}
}

// FetchStateKind classifies the prefetcher's scheduling state.
type FetchStateKind uint8

const (
	FetchIdle FetchStateKind = iota
	FetchInProgress
	FetchScheduled // fetch scheduled, Delay clocks away
	FetchDelayed   // fetch delayed by EU bus contention
	FetchAborted   // scheduled fetch abandoned (queue flush)
	FetchSuspended
)

// FetchState is the prefetch scheduling state. Delay carries the clock
// count for the Scheduled/Delayed/Aborted kinds.
type FetchState struct {
	Kind  FetchStateKind
	Delay uint8
}

func (s FetchState) String() string {
	switch s.Kind {
	case FetchIdle:
		return "Idle"
	case FetchInProgress:
		return "InProgress"
	case FetchScheduled:
		return fmt.Sprintf("Scheduled(%d)", s.Delay)
	case FetchDelayed:
		return fmt.Sprintf("Delayed(%d)", s.Delay)
	case FetchAborted:
		return fmt.Sprintf("Aborted(%d)", s.Delay)
	case FetchSuspended:
		return "Suspended"
	default:
		return "Unknown"
	}
}
