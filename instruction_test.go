package i8088

import "testing"

func TestDecodeInstructionNop(t *testing.T) {
	instr, err := DecodeInstruction([]byte{0x90})
	if err != nil {
		t.Fatalf("failed to decode NOP: %v", err)
	}

	if got := instr.String(); got != "nop" {
		t.Fatalf("unexpected mnemonic: got %q want %q", got, "nop")
	}
	if got := instr.Len(); got != 1 {
		t.Fatalf("unexpected length: got %d want 1", got)
	}
}

func TestDecodeInstructionMultiByte(t *testing.T) {
	// MOV AX, 0x1234
	instr, err := DecodeInstruction([]byte{0xB8, 0x34, 0x12})
	if err != nil {
		t.Fatalf("failed to decode MOV: %v", err)
	}

	if got := instr.Len(); got != 3 {
		t.Fatalf("unexpected length: got %d want 3", got)
	}
}

func TestDecodeInstructionTruncated(t *testing.T) {
	if _, err := DecodeInstruction([]byte{0xB8}); err == nil {
		t.Fatalf("expected decode error for truncated instruction")
	}
}
