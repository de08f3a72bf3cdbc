package i8088

import "fmt"

// The microcode control store holds 512 words; trace values at or above
// microcodeLen are reserved sentinels classifying control flow rather
// than addressing a microinstruction.
const microcodeLen = 0x200

const (
	McJump uint16 = microcodeLen + iota // sequencer took a jump
	McRtn                               // subroutine return
	McCorr                              // cycle re-entry after a wait or prefix
	McNone                              // no microcode active this cycle
)

// microcodeLabel classifies a raw microcode trace value into the fixed
// 3-char control-flow column. Sentinels take priority; anything else is
// the raw control-store address in hex.
func microcodeLabel(v uint16) string {
	switch v {
	case McJump:
		return "JMP"
	case McRtn:
		return "RET"
	case McCorr:
		return "COR"
	case McNone:
		return "   "
	default:
		return fmt.Sprintf("%03X", v)
	}
}

const microcodeNul = "NUL"

// microcodeOp looks up the annotated source line for a control-store
// address. Addresses beyond the annotated portion of the store render
// the NUL placeholder; lookups never fail.
func microcodeOp(v uint16) string {
	if int(v) < len(microcodeSrc8088) {
		return microcodeSrc8088[v]
	}
	return microcodeNul
}

// Annotated register-transfer source for the low portion of the 8088
// control store. Entries follow the move/ALU/sequencer column layout of
// the published die-level disassembly.
var microcodeSrc8088 = [...]string{
	"Q->tmpaL    1  L8     2",      // 000
	"Q->tmpaH    0  ",              // 001
	"M->tmpb     1  XI tmpa, NX",   // 002
	"SIGMA->M    0  RNI F",         // 003
	"M->tmpa     1  XI tmpb",       // 004
	"SIGMA->R    0  RNI F",         // 005
	"Q->tmpbL    1  L8     7",      // 006
	"Q->tmpbH    0  ",              // 007
	"A->tmpa     1  XI tmpb, NX",   // 008
	"SIGMA->A    0  RNI F",         // 009
	"M->tmpb     0  ",              // 00a
	"R->tmpa     1  XI tmpa, NX",   // 00b
	"SIGMA->M    0  RNI F",         // 00c
	"IND->tmpa   1  INC tmpa",      // 00d
	"SIGMA->IND  0  ",              // 00e
	"OPR->M      0  RNI",           // 00f
	"M->OPR      1  W DS,P0 RNI",   // 010
	"IND->tmpc   1  DEC2 tmpc",     // 011
	"SIGMA->IND  0  ",              // 012
	"SP->tmpa    1  DEC2 tmpa",     // 013
	"SIGMA->SP   0  ",              // 014
	"M->OPR      1  W SS,P0 RNI",   // 015
	"OPR->M      1  R SS,P2",       // 016
	"SP->tmpa    1  INC2 tmpa",     // 017
	"SIGMA->SP   0  RNI",           // 018
	"Q->tmpbL    1  L8     1b",     // 019
	"Q->tmpbH    0  ",              // 01a
	"tmpb->PC    1  FLUSH RNI",     // 01b
	"PC->tmpa    1  DEC2 tmpc",     // 01c
	"SIGMA->IND  0  SUSP",          // 01d
	"tmpa->OPR   1  W SS,P0",       // 01e
	"tmpb->PC    1  FLUSH RNI",     // 01f
}
