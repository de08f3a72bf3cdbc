package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/pkg/profile"

	"github.com/mkost/i8088"
)

const (
	codeSegment = uint16(0x0100)
	startOffset = uint16(0x0010)
	clockHz     = 4_772_727.0 // 4.77 MHz PC/XT clock

	refreshInterval = 18 // clocks between DRAM refresh requests
)

// driver scripts a minimal BIU against the timing core: a straight-line
// run of NOP code fetches with queue activity, interleaved with periodic
// DRAM refresh DMA handshakes.
type driver struct {
	cpu      *i8088.CPU
	ip       uint16
	dmaCount uint16
}

func main() {
	cycles := flag.Int("cycles", 40, "number of full clock cycles to trace")
	short := flag.Bool("short", false, "use the compact line format")
	csvPath := flag.String("csv", "", "write a logic-analyzer CSV trace to `file`")
	cpuprofile := flag.Bool("cpuprofile", false, "write a CPU profile to the working directory")
	flag.Parse()

	if *cpuprofile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	var csv *bufio.Writer
	if *csvPath != "" {
		f, err := os.Create(*csvPath)
		if err != nil {
			log.Fatalf("failed to create CSV trace file: %v", err)
		}
		defer f.Close()
		csv = bufio.NewWriter(f)
		defer csv.Flush()
		fmt.Fprintln(csv, "# "+i8088.TraceCSVHeader)
	}

	cpu := i8088.NewCPU()
	cpu.Ready = true
	cpu.TStepH = 0.5 / clockHz
	cpu.CS = codeSegment
	cpu.BusSegment = i8088.SegCS
	cpu.BiuState = i8088.BiuState{Kind: i8088.BiuToPrefetch, Delay: 2}

	d := &driver{cpu: cpu, ip: startOffset}

	if !*short {
		fmt.Println(strings.Join(cpu.CycleTraceHeader(), " "))
	}

	for i := 0; i < *cycles; i++ {
		d.clock()

		cpu.LatchSegmentStatus()
		fmt.Println(cpu.CycleStateString(d.dmaCount, *short))
		cpu.ClearTraceComments()

		if csv != nil {
			if err := cpu.TraceCSVLine(csv); err != nil {
				log.Fatalf("failed to write CSV trace: %v", err)
			}
		}

		cpu.CycleNum++
		cpu.InstrCycle++
		cpu.TStamp += 2 * cpu.TStepH
	}
}

// clock advances the scripted machine by one full clock.
func (d *driver) clock() {
	cpu := d.cpu

	cpu.LastQueueOp = i8088.QueueIdle
	cpu.BiuState = cpu.BiuState.Tick()

	d.clockDma()

	cpu.TCycle = cpu.TCycle.Next(false)
	switch cpu.TCycle {
	case i8088.T1:
		cpu.I8288 = i8088.I8288{ALE: true}
		cpu.AddressBus = uint32(cpu.CS)<<4 + uint32(d.ip)
		cpu.BusStatus = i8088.BusCodeFetch
		cpu.BusStatusLatch = i8088.BusCodeFetch
		cpu.FetchState = i8088.FetchState{Kind: i8088.FetchInProgress}
	case i8088.T2:
		cpu.I8288 = i8088.I8288{MRDC: true}
	case i8088.T3:
		cpu.DataBus = 0x90 // NOP
	case i8088.T4:
		cpu.I8288 = i8088.I8288{}
		cpu.BusStatus = i8088.BusPassive
		cpu.FetchState = i8088.FetchState{Kind: i8088.FetchIdle}
		cpu.Queue.Push(cpu.DataBus)
		d.consume()
	}
}

// consume pops the next instruction byte from the queue, marking the
// instruction boundary for the tracer.
func (d *driver) consume() {
	cpu := d.cpu

	b, ok := cpu.Queue.Pop()
	if !ok {
		return
	}

	cpu.LastQueueOp = i8088.QueueFirst
	cpu.LastQueueByte = b
	cpu.LastQueueLen = uint8(cpu.Queue.Len())
	cpu.IP = d.ip
	d.ip++

	instr, err := i8088.DecodeInstruction([]byte{b})
	if err != nil {
		log.Fatalf("failed to decode fetched byte %02x: %v", b, err)
	}
	cpu.Instr = instr
}

// clockDma raises a refresh request every refreshInterval clocks and
// walks the handshake to completion.
func (d *driver) clockDma() {
	cpu := d.cpu

	cpu.DramRefreshCycleNum++
	if cpu.DramRefreshCycleNum >= refreshInterval && cpu.DmaState.Kind == i8088.DmaIdle {
		cpu.DramRefreshCycleNum = 0
		cpu.DmaState = i8088.DmaState{Kind: i8088.DmaTimerTrigger}
		return
	}

	prev := cpu.DmaState.Kind
	cpu.DmaState = cpu.DmaState.Next()
	cpu.DmaAen = cpu.DmaState.Kind == i8088.DmaOperating
	if prev == i8088.DmaOperating && cpu.DmaState.Kind == i8088.DmaIdle {
		d.dmaCount++
	}
}
