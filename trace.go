package i8088

import (
	"fmt"
	"io"
)

// Column order of the hardware-validation trace. This layout is a
// compatibility contract with logic-analyzer import tooling; changing
// widths or order is a breaking format change.
const TraceCSVHeader = "Time(s),addr,clk,ready,qs,s,clk0,intr,dr0,vs,hs,den,brd"

// Import column spec for sigrok's CSV importer, matching TraceCSVHeader.
const TraceCSVImportSpec = "t,x20,l,l,x2,x3,l,l,l,l,l,l"

// TraceCSVLine appends two trace lines for the current bus cycle to w:
// one for the rising half at TStamp and one for the falling half at
// TStamp+TStepH. Both halves share the same address, queue, status, DMA
// and sync values; only the clock column differs. LatchSegmentStatus
// must have been called for this half-cycle first, so the address
// carries valid segment status bits.
func (cpu *CPU) TraceCSVLine(w io.Writer) error {
	q := uint8(cpu.LastQueueOp)
	s := uint8(cpu.BusStatus)
	vs, hs, den, brd := cpu.syncBits()

	ready := b2i(cpu.Ready)
	intr := b2i(cpu.Intr)
	dreq := b2i(cpu.DmaState.Kind == DmaDreq)

	_, err := fmt.Fprintf(w, "%v,%05X,1,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
		cpu.TStamp, cpu.AddressBus, ready, q, s, 0, intr, dreq, vs, hs, den, brd)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%v,%05X,0,%d,%d,%d,%d,%d,%d,%d,%d,%d,%d\n",
		cpu.TStamp+cpu.TStepH, cpu.AddressBus, ready, q, s, 0, intr, dreq, vs, hs, den, brd)
	return err
}
