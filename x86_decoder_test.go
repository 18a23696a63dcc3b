// x86_decoder_test.go - IA-32 decoder tests

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeText(t *testing.T, code []byte) (string, int) {
	t.Helper()
	dec := NewDecoder(DecoderConfig{})
	text, n, err := dec.DecodeAndFormat(code, 0)
	if err != nil {
		t.Fatalf("DecodeAndFormat(% X): %v", code, err)
	}
	return text, n
}

// ---------------------------------------------------------------------------
// Single-byte instructions
// ---------------------------------------------------------------------------

func TestDecodeSingleByte(t *testing.T) {
	tests := []struct {
		code byte
		want string
	}{
		{0xC3, "RETN"},
		{0xF4, "HLT"},
		{0x90, "NOP"},
		{0x60, "PUSHAD"},
		{0x98, "CWDE"},
		{0xCC, "INT"},
		{0xF8, "CLC"},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, tt := range tests {
		inst, err := dec.DecodeInstruction([]byte{tt.code}, 0)
		if err != nil {
			t.Errorf("%02X: %v", tt.code, err)
			continue
		}
		if inst.Length != 1 || inst.Operation.Mnemonic != tt.want {
			t.Errorf("%02X = %s len %d, want %s len 1", tt.code, inst.Operation.Mnemonic, inst.Length, tt.want)
		}
	}
}

func TestDecodeEveryBareOneByteEntry(t *testing.T) {
	seen := make(map[byte]bool)
	dec := NewDecoder(DecoderConfig{})
	for _, e := range x86Opcodes {
		if len(e.Seq) != 1 || seen[e.Seq[0]] {
			continue
		}
		seen[e.Seq[0]] = true
		if e.HasExt || len(e.Operands) > 0 {
			continue
		}
		inst, err := dec.DecodeInstruction(e.Seq, 0)
		if err != nil {
			t.Errorf("%02X %s: %v", e.Seq[0], e.Mnemonic, err)
			continue
		}
		if inst.Length != 1 || inst.Operation.Mnemonic != e.Mnemonic {
			t.Errorf("%02X = %s len %d, want %s len 1", e.Seq[0], inst.Operation.Mnemonic, inst.Length, e.Mnemonic)
		}
	}
	if len(seen) == 0 {
		t.Fatal("no one-byte entries in the opcode table")
	}
}

// ---------------------------------------------------------------------------
// Full instructions
// ---------------------------------------------------------------------------

func TestDecodeAndFormat(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want string
		n    int
	}{
		{"add reg reg", []byte{0x01, 0xC8}, "ADD EAX, ECX", 2},
		{"mov disp8 negative", []byte{0x8B, 0x45, 0x80}, "MOV EAX, [EBP + -80h]", 3},
		{"mov disp32 negative", []byte{0x8B, 0x85, 0x00, 0xFF, 0xFF, 0xFF}, "MOV EAX, [EBP + -100h]", 6},
		{"mov sib", []byte{0x8B, 0x04, 0xB3}, "MOV EAX, [EBX + ESI * 4]", 3},
		{"mov sib disp8", []byte{0x8B, 0x44, 0xB3, 0x10}, "MOV EAX, [EBX + ESI * 4 + 10h]", 4},
		{"mov absolute", []byte{0x8B, 0x05, 0x00, 0x10, 0x40, 0x00}, "MOV EAX, [401000h]", 6},
		{"mov sib no base no index", []byte{0x8B, 0x04, 0x25, 0x00, 0x10, 0x00, 0x00}, "MOV EAX, [1000h]", 7},
		{"mov sib no base", []byte{0x8B, 0x04, 0x0D, 0x00, 0x10, 0x00, 0x00}, "MOV EAX, [ECX + 1000h]", 7},
		{"lea esp base", []byte{0x8D, 0x44, 0x24, 0x08}, "LEA EAX, [ESP + 8h]", 4},
		{"mov imm32", []byte{0xB8, 0x78, 0x56, 0x34, 0x12}, "MOV EAX, +12345678h", 5},
		{"mov imm16", []byte{0x66, 0xB8, 0x34, 0x12}, "MOV AX, +1234h", 4},
		{"add imm8 signed", []byte{0x83, 0xC0, 0xF0}, "ADD EAX, +-10h", 3},
		{"mov moffs", []byte{0xA1, 0x00, 0x10, 0x40, 0x00}, "MOV EAX, 401000h", 5},
		{"call rel32", []byte{0xE8, 0x10, 0x00, 0x00, 0x00}, "CALL 10h", 5},
		{"jmp rel8", []byte{0xEB, 0xFE}, "JMP -2h", 2},
		{"jz rel32", []byte{0x0F, 0x84, 0x00, 0x01, 0x00, 0x00}, "JZ 100h", 6},
		{"call far", []byte{0x9A, 0x78, 0x56, 0x34, 0x12, 0x08, 0x00}, "CALLF 8h:12345678h", 7},
		{"retn imm16", []byte{0xC2, 0x08, 0x00}, "RETN +8h", 3},
		{"enter", []byte{0xC8, 0x10, 0x00, 0x01}, "ENTER +10h, +1h", 4},
		{"int", []byte{0xCD, 0x21}, "INT +21h", 2},
		{"in imm", []byte{0xE4, 0x60}, "IN AL, +60h", 2},
		{"in dx", []byte{0xEC}, "IN AL, DX", 1},
		{"shl cl", []byte{0xD3, 0xE0}, "SHL EAX, CL", 2},
		{"movzx", []byte{0x0F, 0xB6, 0xC1}, "MOVZX EAX, CL", 3},
		{"bswap", []byte{0x0F, 0xC9}, "BSWAP ECX", 2},
		{"xchg", []byte{0x91}, "XCHG ECX, EAX", 1},
		{"xchg 16", []byte{0x66, 0x91}, "XCHG CX, AX", 2},
		{"mov sreg", []byte{0x8C, 0xD8}, "MOV EAX, DS", 2},
		{"mov cr", []byte{0x0F, 0x20, 0xC0}, "MOV EAX, CR0", 3},
		{"movq mmx", []byte{0x0F, 0x6F, 0xC1}, "MOVQ MM0, MM1", 3},
		{"fchs", []byte{0xD9, 0xE0}, "FCHS", 2},
		{"lock", []byte{0xF0, 0x01, 0xC8}, "LOCK ADD EAX, ECX", 3},
		{"rep movs", []byte{0xF3, 0xA4}, "REPZ MOVS", 2},
		{"pause", []byte{0xF3, 0x90}, "PAUSE", 2},
		{"cbw", []byte{0x66, 0x98}, "CBW", 2},
		{"finit", []byte{0x9B, 0xDB, 0xE3}, "FINIT", 3},
		{"fninit", []byte{0xDB, 0xE3}, "FNINIT", 2},
		{"addr16 pair", []byte{0x67, 0x8B, 0x00}, "MOV EAX, [BX + SI]", 3},
		{"addr16 disp8", []byte{0x67, 0x8B, 0x46, 0xFE}, "MOV EAX, [BP + -2h]", 4},
		{"addr16 absolute", []byte{0x67, 0x8B, 0x06, 0x34, 0x12}, "MOV EAX, [1234h]", 5},
		{"segment override", []byte{0x2E, 0x8B, 0x00}, "CS MOV EAX, [EAX]", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n := decodeText(t, tt.code)
			if got != tt.want || n != tt.n {
				t.Errorf("% X = %q len %d, want %q len %d", tt.code, got, n, tt.want, tt.n)
			}
		})
	}
}

func TestDecodeOpcodeExtension(t *testing.T) {
	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0xF7, 0xD0}, "NOT"},
		{[]byte{0xF7, 0xD8}, "NEG"},
		{[]byte{0xF7, 0xE0}, "MUL"},
		{[]byte{0xF7, 0xF8}, "IDIV"},
		{[]byte{0x83, 0xF8, 0x01}, "CMP"},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, tt := range tests {
		inst, err := dec.DecodeInstruction(tt.code, 0)
		if err != nil {
			t.Fatalf("% X: %v", tt.code, err)
		}
		if inst.Operation.Mnemonic != tt.want {
			t.Errorf("% X = %s, want %s", tt.code, inst.Operation.Mnemonic, tt.want)
		}
		if inst.Length != len(tt.code) {
			t.Errorf("% X length = %d, want %d", tt.code, inst.Length, len(tt.code))
		}
	}
}

func TestDecodeTwoByteMap(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	inst, err := dec.DecodeInstruction([]byte{0x0F, 0x05}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Operation.Mnemonic != "LOADALL" || inst.Length != 2 {
		t.Errorf("0F 05 = %s len %d, want LOADALL len 2", inst.Operation.Mnemonic, inst.Length)
	}
}

func TestDecodeRegisterInOpcode(t *testing.T) {
	want := [8]string{"EAX", "ECX", "EDX", "EBX", "ESP", "EBP", "ESI", "EDI"}
	dec := NewDecoder(DecoderConfig{})
	for i := 0; i < 8; i++ {
		code := []byte{0x50 + byte(i)}
		inst, err := dec.DecodeInstruction(code, 0)
		if err != nil {
			t.Fatalf("%02X: %v", code[0], err)
		}
		if inst.Operation.Mnemonic != "PUSH" || inst.Length != 1 {
			t.Errorf("%02X = %s len %d, want PUSH len 1", code[0], inst.Operation.Mnemonic, inst.Length)
		}
		if len(inst.Operands) != 1 || inst.Operands[0].Text != want[i] {
			t.Errorf("%02X operands = %+v, want %s", code[0], inst.Operands, want[i])
		}
	}
}

func TestDecodeAtOffset(t *testing.T) {
	code := []byte{0x90, 0x90, 0x01, 0xC8, 0xC3}
	dec := NewDecoder(DecoderConfig{})
	inst, err := dec.DecodeInstruction(code, 2)
	if err != nil {
		t.Fatal(err)
	}
	if inst.Offset != 2 || inst.Length != 2 {
		t.Errorf("offset/length = %d/%d, want 2/2", inst.Offset, inst.Length)
	}
	if diff := cmp.Diff([]byte{0x01, 0xC8}, inst.Bytes); diff != "" {
		t.Errorf("bytes mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// Statelessness
// ---------------------------------------------------------------------------

func TestDecodeIdempotent(t *testing.T) {
	inputs := [][]byte{
		{0x66, 0xB8, 0x34, 0x12},
		{0xB8, 0x78, 0x56, 0x34, 0x12},
		{0x67, 0x8B, 0x46, 0xFE},
		{0xF3, 0x90},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, code := range inputs {
		first, err := dec.DecodeInstruction(code, 0)
		if err != nil {
			t.Fatalf("% X: %v", code, err)
		}
		second, err := dec.DecodeInstruction(code, 0)
		if err != nil {
			t.Fatalf("% X: %v", code, err)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("% X decoded differently (-first +second):\n%s", code, diff)
		}
	}

	// An operand-size override must not leak into the next instruction.
	a, _ := decodeText(t, []byte{0x66, 0xB8, 0x34, 0x12})
	b, _ := decodeText(t, []byte{0xB8, 0x78, 0x56, 0x34, 0x12})
	if a != "MOV AX, +1234h" || b != "MOV EAX, +12345678h" {
		t.Errorf("got %q then %q", a, b)
	}
}

func TestDecodeDoesNotMutateTable(t *testing.T) {
	idx := -1
	for i, e := range x86Opcodes {
		if len(e.Seq) == 1 && e.Seq[0] == 0x98 {
			idx = i
			break
		}
	}
	if idx < 0 {
		t.Fatal("no entry for 98")
	}
	before := x86Opcodes[idx].clone()

	dec := NewDecoder(DecoderConfig{})
	for i := 0; i < 2; i++ {
		inst, err := dec.DecodeInstruction([]byte{0x66, 0x98}, 0)
		if err != nil {
			t.Fatal(err)
		}
		inst.Operation.Operands = append(inst.Operation.Operands, OperandDesc{Method: MethodI})
		inst.Operation.Seq[0] = 0xFF
	}
	if diff := cmp.Diff(before, x86Opcodes[idx]); diff != "" {
		t.Fatalf("opcode table entry changed (-before +after):\n%s", diff)
	}
	text, _ := decodeText(t, []byte{0x98})
	if text != "CWDE" {
		t.Errorf("98 = %q, want CWDE", text)
	}
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestDecodeUnknownOpcode(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	inst, err := dec.DecodeInstruction([]byte{0x0F, 0x04}, 0)
	if inst != nil {
		t.Errorf("got partial result %+v", inst)
	}
	var unknown *UnknownOpcodeError
	if !errors.As(err, &unknown) {
		t.Fatalf("err = %v, want UnknownOpcodeError", err)
	}
	if unknown.Byte != 0x0F || unknown.Offset != 0 {
		t.Errorf("err = %+v, want byte 0F at 0", unknown)
	}

	_, err = dec.DecodeInstruction([]byte{0x66, 0x0F, 0x04}, 0)
	if !errors.As(err, &unknown) || unknown.Offset != 1 {
		t.Errorf("with prefix: err = %v, want UnknownOpcodeError at 1", err)
	}
}

// DA/DB /0-/3 and D9 /3 list the memory form first, so it is also chosen
// for mod = 3 and the register forms are never reported.
func TestDecodeX87SharedExtensionFirstDeclared(t *testing.T) {
	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0xDA, 0xC1}, "FIADD ECX"},
		{[]byte{0xD9, 0xD9}, "FSTP ECX"},
		{[]byte{0xDA, 0x01}, "FIADD [ECX]"},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, tt := range tests {
		got, n, err := dec.DecodeAndFormat(tt.code, 0)
		if err != nil {
			t.Errorf("% X: %v", tt.code, err)
			continue
		}
		if got != tt.want || n != 2 {
			t.Errorf("% X = %q len %d, want %q len 2", tt.code, got, n, tt.want)
		}
	}
}

func TestDecodePrefixedUnknownOpcode(t *testing.T) {
	tests := []struct {
		name   string
		code   []byte
		b      byte
		offset int
	}{
		{"segment then bad two-byte", []byte{0x2E, 0x0F, 0xFF}, 0x0F, 1},
		{"lock then bad extension", []byte{0xF0, 0xFF, 0xFF}, 0xFF, 1},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.DecodeInstruction(tt.code, 0)
			if inst != nil {
				t.Errorf("got partial result %s len %d", inst.Operation.Mnemonic, inst.Length)
			}
			var unknown *UnknownOpcodeError
			if !errors.As(err, &unknown) {
				t.Fatalf("err = %v, want UnknownOpcodeError", err)
			}
			if unknown.Byte != tt.b || unknown.Offset != tt.offset {
				t.Errorf("err = %+v, want byte %02X at %d", unknown, tt.b, tt.offset)
			}
		})
	}
}

func TestDecodeLonePrefix(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	for _, code := range [][]byte{{0x9B}, {0x2E}} {
		if inst, err := dec.DecodeInstruction(code, 0); err == nil {
			t.Errorf("% X decoded as %s", code, inst.Operation.Mnemonic)
		}
	}

	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0x9B}, "FWAIT"},
		{[]byte{0x2E, 0x0F, 0xFF}, "CS"},
		{[]byte{0xF0, 0xFF, 0xFF}, "LOCK"},
	}
	for _, tt := range tests {
		inst, err := dec.decodeStandalone(tt.code, 0)
		if err != nil {
			t.Errorf("% X: %v", tt.code, err)
			continue
		}
		if inst.Length != 1 || inst.Operation.Mnemonic != tt.want {
			t.Errorf("% X = %s len %d, want %s len 1", tt.code, inst.Operation.Mnemonic, inst.Length, tt.want)
		}
	}

	var unknown *UnknownOpcodeError
	if _, err := dec.decodeStandalone([]byte{0x0F, 0x04}, 0); !errors.As(err, &unknown) {
		t.Errorf("non-prefix byte: err = %v, want UnknownOpcodeError", err)
	}
}

func TestDecodeTruncated(t *testing.T) {
	tests := []struct {
		name string
		code []byte
	}{
		{"missing modrm", []byte{0x01}},
		{"missing extension modrm", []byte{0xF7}},
		{"two-byte map", []byte{0x0F}},
		{"short immediate", []byte{0xB8, 0x01, 0x02}},
		{"short displacement", []byte{0x8B, 0x05, 0x00, 0x10}},
		{"short rel32", []byte{0xE8, 0x00, 0x00}},
		{"missing sib", []byte{0x8B, 0x04}},
		{"lone size override", []byte{0x66}},
		{"lone fwait", []byte{0x9B}},
		{"segment then missing modrm", []byte{0x2E, 0x8B}},
	}

	dec := NewDecoder(DecoderConfig{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst, err := dec.DecodeInstruction(tt.code, 0)
			var trunc *TruncatedInstructionError
			if !errors.As(err, &trunc) {
				t.Fatalf("err = %v, want TruncatedInstructionError", err)
			}
			if inst != nil {
				t.Errorf("got partial result %+v", inst)
			}
		})
	}

	if _, err := dec.DecodeInstruction([]byte{0x90}, 1); err == nil {
		t.Error("offset past the end decoded")
	}
}

func TestDecodeInvalidNotation(t *testing.T) {
	dec := NewDecoder(DecoderConfig{Notation: "MASM"})
	var bad *InvalidNotationError

	if _, _, err := dec.DecodeAndFormat([]byte{0xC3}, 0); !errors.As(err, &bad) {
		t.Errorf("DecodeAndFormat err = %v, want InvalidNotationError", err)
	}
	if _, err := dec.DecodeInstruction([]byte{0xC3}, 0); !errors.As(err, &bad) {
		t.Errorf("DecodeInstruction err = %v, want InvalidNotationError", err)
	}
	if bad.Notation != "MASM" {
		t.Errorf("notation = %q, want MASM", bad.Notation)
	}
}

func TestDecodeATTNotation(t *testing.T) {
	dec := NewDecoder(DecoderConfig{Notation: NotationATT})
	inst, err := dec.DecodeInstruction([]byte{0x8B, 0x45, 0x80}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := inst.Operands[1].Text; got != "[EBP + -0x80]" {
		t.Errorf("operand = %q, want [EBP + -0x80]", got)
	}

	text, n, err := dec.DecodeAndFormat([]byte{0x8B, 0x45, 0x80}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if text != "" || n != 3 {
		t.Errorf("AT&T format = %q len %d, want empty len 3", text, n)
	}
}

func TestNewDecoderDefaultsToINT(t *testing.T) {
	if got := NewDecoder(DecoderConfig{}).Notation(); got != NotationINT {
		t.Errorf("notation = %q, want INT", got)
	}
}
