package i8088

import (
	"fmt"
	"strings"
)

// SyntaxTokenKind types the columns of a token list so callers can
// filter or re-style them without parsing text.
type SyntaxTokenKind uint8

const (
	TokenText SyntaxTokenKind = iota
	TokenAddress
	TokenData
	TokenMnemonic
	TokenComment
)

// SyntaxToken is one labeled column of the structured rendering path.
// Column titles come positionally from CycleTraceHeader.
type SyntaxToken struct {
	Kind SyntaxTokenKind
	Text string
}

// cycleColumns holds the per-half-cycle column values shared by the text
// and token rendering paths, so the two can never disagree.
type cycleColumns struct {
	seg     string
	qOp     byte
	qPre    byte
	biu     string
	rs      byte
	aws     byte
	ws      byte
	ior     byte
	aiow    byte
	iow     byte
	bus     string
	t       string
	xfer    string
	qRead   string
	instr   string
	mcLabel string
	mcOp    string
	tx      byte
	ready   byte
	dma     string
}

func (cpu *CPU) columns(dmaCount uint16) cycleColumns {
	var col cycleColumns

	col.seg = cpu.segmentLabel()
	col.qOp = cpu.LastQueueOp.Code()

	col.qPre = ' '
	if cpu.Queue.HasPreload() {
		col.qPre = '*'
	}

	col.biu = cpu.BiuState.Label()

	col.rs = signalChar(cpu.I8288.MRDC, 'R')
	col.aws = signalChar(cpu.I8288.AMWC, 'A')
	col.ws = signalChar(cpu.I8288.MWTC, 'W')
	col.ior = signalChar(cpu.I8288.IORC, 'R')
	col.aiow = signalChar(cpu.I8288.AIOWC, 'A')
	col.iow = signalChar(cpu.I8288.IOWC, 'W')

	col.bus = cpu.BusStatusLatch.Label()
	col.t = cpu.TCycle.String()

	col.xfer = "      "
	if cpu.I8288.isReading() {
		col.xfer = fmt.Sprintf("<-r %02X", cpu.DataBus)
	} else if cpu.I8288.isWriting() {
		col.xfer = fmt.Sprintf("w-> %02X", cpu.DataBus)
	}

	col.qRead = "      "
	if cpu.LastQueueOp == QueueFirst || cpu.LastQueueOp == QueueSubsequent {
		col.qRead = fmt.Sprintf("<-q %02X", cpu.LastQueueByte)
	}

	if cpu.LastQueueOp == QueueFirst && cpu.Instr != nil {
		// First byte of an instruction read from the queue marks the
		// instruction boundary.
		col.instr = fmt.Sprintf("[%04X:%04X] %s (%d) ", cpu.CS, cpu.IP, cpu.Instr, cpu.Instr.Len())
	}

	col.mcLabel = microcodeLabel(cpu.TraceInstr)
	col.mcOp = microcodeOp(cpu.TraceInstr)

	col.tx = '.'
	if cpu.isLastWait() {
		col.tx = 'x'
	}

	col.ready = cpu.readyChar()
	col.dma = cpu.DmaState.label(dmaCount, cpu.DramRefreshCycleNum)

	return col
}

// CycleStateString renders the snapshot as one fixed-width trace line.
// The short format drops the absolute cycle counter, the last-wait
// indicator and the microcode mnemonic lookup. Pending trace comments
// are appended in recorded order.
func (cpu *CPU) CycleStateString(dmaCount uint16, short bool) string {
	col := cpu.columns(dmaCount)

	aleStr := "  "
	if cpu.I8288.ALE {
		aleStr = "A:"
	}

	var cycleStr string
	if short {
		cycleStr = fmt.Sprintf(
			"%04d %2s[%05X] %2s %c%d M:%c%c%c I:%c%c%c |%-5s| %-4s %2s %-6s | %-4s| %-14s| %c%d%c[%-8s] %s | %3s | %s",
			cpu.InstrCycle,
			aleStr,
			cpu.AddressBus,
			col.seg,
			col.ready,
			cpu.WaitStates,
			col.rs, col.aws, col.ws, col.ior, col.aiow, col.iow,
			col.dma,
			col.bus,
			col.t,
			col.xfer,
			col.biu,
			cpu.FetchState,
			col.qOp,
			cpu.LastQueueLen,
			col.qPre,
			cpu.Queue.String(),
			col.qRead,
			col.mcLabel,
			col.instr,
		)
	} else {
		cycleStr = fmt.Sprintf(
			"%08d:%04d %2s[%05X] %2s %c%d%c M:%c%c%c I:%c%c%c |%-5s|  | %-4s %2s %-6s | %-4s| %-14s| %c%d%c[%-8s] %s | %s: %s | %s",
			cpu.CycleNum,
			cpu.InstrCycle,
			aleStr,
			cpu.AddressBus,
			col.seg,
			col.ready,
			cpu.WaitStates,
			col.tx,
			col.rs, col.aws, col.ws, col.ior, col.aiow, col.iow,
			col.dma,
			col.bus,
			col.t,
			col.xfer,
			col.biu,
			cpu.FetchState,
			col.qOp,
			cpu.LastQueueLen,
			col.qPre,
			cpu.Queue.String(),
			col.qRead,
			col.mcLabel,
			col.mcOp,
			col.instr,
		)
	}

	var sb strings.Builder
	sb.WriteString(cycleStr)
	for _, c := range cpu.traceComments {
		fmt.Fprintf(&sb, "; %s", c)
	}

	return sb.String()
}

// CycleStateTokens renders the same columns as the long line as an
// ordered list of typed tokens, positionally aligned with
// CycleTraceHeader. The short flag is accepted for symmetry with
// CycleStateString; the token list always carries the full column set.
func (cpu *CPU) CycleStateTokens(dmaCount uint16, short bool) []SyntaxToken {
	col := cpu.columns(dmaCount)

	aleStr := " "
	if cpu.I8288.ALE {
		aleStr = "A"
	}

	var comments strings.Builder
	for _, c := range cpu.traceComments {
		fmt.Fprintf(&comments, "; %s", c)
	}

	signals := fmt.Sprintf("M:%c%c%c I:%c%c%c", col.rs, col.aws, col.ws, col.ior, col.aiow, col.iow)

	return []SyntaxToken{
		{TokenText, fmt.Sprintf("%04d", cpu.CycleNum)},
		{TokenText, fmt.Sprintf("%04d", cpu.InstrCycle)},
		{TokenText, aleStr},
		{TokenAddress, fmt.Sprintf("%05X", cpu.AddressBus)},
		{TokenText, col.seg},
		{TokenText, string(col.ready)},
		{TokenText, fmt.Sprintf("%d", cpu.WaitStates)},
		{TokenText, string(col.tx)},
		{TokenText, signals},
		{TokenText, col.dma},
		{TokenText, col.bus},
		{TokenText, col.t},
		{TokenData, col.xfer},
		{TokenText, col.biu},
		{TokenText, cpu.FetchState.String()},
		{TokenText, string(col.qOp)},
		{TokenText, fmt.Sprintf("%d", cpu.LastQueueLen)},
		{TokenData, cpu.Queue.String()},
		{TokenData, col.qRead},
		{TokenText, col.mcLabel},
		{TokenMnemonic, col.mcOp},
		{TokenMnemonic, col.instr},
		{TokenComment, comments.String()},
	}
}

// CycleTraceHeader returns the fixed-width column titles, positionally
// aligned with CycleStateTokens.
func (cpu *CPU) CycleTraceHeader() []string {
	return []string{
		"Cycle",
		"icyc",
		"ALE",
		"Addr  ",
		"Seg",
		"Rdy",
		"WS",
		"Tx",
		"8288       ",
		"DMA  ",
		"Bus ",
		"T ",
		"Xfer  ",
		"BIU",
		"Fetch       ",
		"Qop",
		"Ql",
		"Queue   ",
		"Qrd   ",
		"MCPC",
		"Microcode",
		"Instr                   ",
		"Comments",
	}
}
