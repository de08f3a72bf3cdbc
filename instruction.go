package i8088

import (
	"fmt"

	"golang.org/x/arch/x86/x86asm"
)

// DecodedInstruction is the default Instruction implementation, backed
// by the x86asm decoder running in 16-bit mode.
type DecodedInstruction struct {
	inst x86asm.Inst
}

// DecodeInstruction decodes the instruction starting at code[0] in
// 16-bit real mode. The surrounding execution model may substitute its
// own Instruction implementation; this one exists so drivers and tests
// have a real decoder without carrying instruction semantics.
func DecodeInstruction(code []byte) (DecodedInstruction, error) {
	inst, err := x86asm.Decode(code, 16)
	if err != nil {
		return DecodedInstruction{}, fmt.Errorf("decode instruction: %w", err)
	}
	return DecodedInstruction{inst: inst}, nil
}

func (d DecodedInstruction) String() string {
	return x86asm.IntelSyntax(d.inst, 0, nil)
}

// Len returns the instruction length in bytes.
func (d DecodedInstruction) Len() int {
	return d.inst.Len
}
