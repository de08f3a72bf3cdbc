package i8088

import "fmt"

type (
	// SyncSource supplies the video subsystem's sync outputs for trace
	// emission. Implementations are polled once per half-cycle.
	SyncSource interface {
		GetSync() (vsync, hsync, displayEnable, border bool)
	}

	// Instruction is the symbolic form of a decoded instruction, supplied
	// by the surrounding decoder when the first byte of a new instruction
	// is read from the queue.
	Instruction interface {
		fmt.Stringer
		Len() int
	}

	// CPU is the per-half-cycle snapshot of the timing core: bus latches
	// plus the BIU, queue, DMA and microcode state machines. The
	// surrounding simulation owns and overwrites these fields every
	// half-clock; the rendering methods borrow them read-only, with the
	// single exception of LatchSegmentStatus.
	CPU struct {
		// Bus latches.
		AddressBus uint32 // 20-bit; bits 16-17 carry the segment status after ALE
		DataBus    uint8  // meaningful only while a read or write command is asserted
		I8288      I8288
		Ready      bool // raw READY line

		// Sequencing state.
		TCycle         TCycle
		BusSegment     Segment
		BusStatus      BusStatus // raw status for the current half-cycle
		BusStatusLatch BusStatus // status latched at the start of the bus cycle
		BiuState       BiuState
		FetchState     FetchState
		WaitStates     uint32 // wait states remaining in the current cycle

		// Prefetch queue activity.
		Queue         Queue
		LastQueueOp   QueueOp
		LastQueueByte uint8
		LastQueueLen  uint8

		// DMA/refresh arbitration.
		DmaState            DmaState
		DmaAen              bool // address enable, DMA controller owns the bus
		DramRefreshCycleNum uint16

		// Microcode trace.
		TraceInstr uint16 // control-store address or sentinel

		// Instruction boundary context, valid when LastQueueOp is QueueFirst.
		CS, IP uint16
		Instr  Instruction

		// Counters and timebase.
		CycleNum   uint64  // absolute clock count
		InstrCycle uint32  // clocks into the current instruction
		Intr       bool    // INTR line
		TStamp     float64 // timestamp of the rising edge, seconds
		TStepH     float64 // half-clock period, seconds

		Video SyncSource // nil when no video device is attached

		traceComments []string
	}
)

// NewCPU returns a snapshot in the pre-reset state with no microcode
// active.
func NewCPU() *CPU {
	return &CPU{
		TCycle:         Tinit,
		BusStatus:      BusPassive,
		BusStatusLatch: BusPassive,
		TraceInstr:     McNone,
	}
}

// TraceComment records a comment appended to the current half-cycle's
// trace lines, in recorded order.
func (cpu *CPU) TraceComment(c string) {
	cpu.traceComments = append(cpu.traceComments, c)
}

// ClearTraceComments drops all pending trace comments. The driver calls
// this after rendering each half-cycle.
func (cpu *CPU) ClearTraceComments() {
	cpu.traceComments = cpu.traceComments[:0]
}

// isLastWait reports whether this is the final phase before T4, i.e. no
// further wait states will be inserted.
func (cpu *CPU) isLastWait() bool {
	return (cpu.TCycle == T3 || cpu.TCycle == Tw) && cpu.WaitStates == 0
}

// readyChar derives the displayed ready indicator: 'R' unless wait
// states are still being inserted.
func (cpu *CPU) readyChar() byte {
	if cpu.WaitStates > 0 {
		return '.'
	}
	return 'R'
}

// syncBits polls the video sync outputs as 0/1 trace columns, all zero
// when no video device is attached.
func (cpu *CPU) syncBits() (vs, hs, den, brd int) {
	if cpu.Video == nil {
		return 0, 0, 0, 0
	}
	vsB, hsB, denB, brdB := cpu.Video.GetSync()
	return b2i(vsB), b2i(hsB), b2i(denB), b2i(brdB)
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
