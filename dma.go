package i8088

import "fmt"

// DmaStateKind enumerates the DMA/refresh arbitration handshake phases.
type DmaStateKind uint8

const (
	DmaIdle         DmaStateKind = iota
	DmaTimerTrigger              // periodic DRAM refresh request fired
	DmaDreq                      // DMA request raised
	DmaHrq                       // hold request presented to the CPU
	DmaHoldA                     // hold acknowledge, CPU has released the bus
	DmaOperating                 // transfer in progress, Count sub-states remain
)

// DmaState is the DMA controller's bus arbitration state. Count is only
// meaningful while Operating and runs 4 down to 1 across the four
// transfer sub-states.
type DmaState struct {
	Kind  DmaStateKind
	Count uint8
}

// Next advances the handshake by one clock in the fixed order
// Dreq -> Hrq -> HoldA -> Operating(4..1) -> Idle. TimerTrigger
// resolves to Dreq. Idle is held; the external driver raises
// TimerTrigger or Dreq out of Idle itself.
func (s DmaState) Next() DmaState {
	switch s.Kind {
	case DmaTimerTrigger:
		return DmaState{Kind: DmaDreq}
	case DmaDreq:
		return DmaState{Kind: DmaHrq}
	case DmaHrq:
		return DmaState{Kind: DmaHoldA}
	case DmaHoldA:
		return DmaState{Kind: DmaOperating, Count: 4}
	case DmaOperating:
		if s.Count > 1 {
			s.Count--
			return s
		}
		return DmaState{Kind: DmaIdle}
	default:
		return s
	}
}

// label renders the DMA column. Idle shows the outstanding DMA service
// count and the position within the refresh interval; Operating maps its
// countdown onto the S1..S4 transfer sub-state labels (the counter runs
// in reverse of the display order). "S?" is a defensive fallback for a
// countdown the handshake can never produce.
func (s DmaState) label(dmaCount uint16, refreshCycle uint16) string {
	switch s.Kind {
	case DmaIdle:
		return fmt.Sprintf("%02d %02d", dmaCount, refreshCycle)
	case DmaTimerTrigger:
		return "TIMR"
	case DmaDreq:
		return "DREQ"
	case DmaHrq:
		return "HRQ "
	case DmaHoldA:
		return "HLDA"
	case DmaOperating:
		switch s.Count {
		case 4:
			return "S1"
		case 3:
			return "S2"
		case 2:
			return "S3"
		case 1:
			return "S4"
		default:
			return "S?"
		}
	default:
		return "????"
	}
}
