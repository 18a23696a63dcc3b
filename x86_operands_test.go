// x86_operands_test.go - Operand decoder tests

package main

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Numbers
// ---------------------------------------------------------------------------

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		v        int64
		notation Notation
		want     string
	}{
		{0, NotationINT, "0h"},
		{9, NotationINT, "9h"},
		{0x0A, NotationINT, "0Ah"},
		{0x80, NotationINT, "80h"},
		{-0x80, NotationINT, "-80h"},
		{0xFF, NotationINT, "0FFh"},
		{0x401000, NotationINT, "401000h"},
		{0xDEADBEEF, NotationINT, "0DEADBEEFh"},
		{255, NotationATT, "0xff"},
		{-16, NotationATT, "-0x10"},
		{0, NotationATT, "0x0"},
	}

	for _, tt := range tests {
		got, err := formatNumber(tt.v, tt.notation)
		if err != nil {
			t.Errorf("formatNumber(%d, %s): %v", tt.v, tt.notation, err)
			continue
		}
		if got != tt.want {
			t.Errorf("formatNumber(%d, %s) = %q, want %q", tt.v, tt.notation, got, tt.want)
		}
	}

	var bad *InvalidNotationError
	if _, err := formatNumber(1, "Intel"); !errors.As(err, &bad) {
		t.Errorf("err = %v, want InvalidNotationError", err)
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		v    int64
		want string
	}{
		{0x10, "+10h"},
		{-0x80, "+-80h"},
		{0, "+0h"},
	}
	for _, tt := range tests {
		got, err := formatSigned(tt.v, NotationINT)
		if err != nil || got != tt.want {
			t.Errorf("formatSigned(%d) = %q, %v; want %q", tt.v, got, err, tt.want)
		}
	}
}

func TestSignExtend(t *testing.T) {
	tests := []struct {
		v    uint64
		n    int
		want int64
	}{
		{0x7F, 1, 127},
		{0x80, 1, -128},
		{0xFF, 1, -1},
		{0x7FFF, 2, 32767},
		{0x8000, 2, -32768},
		{0xFFFFFF00, 4, -256},
		{0x00401000, 4, 0x401000},
	}
	for _, tt := range tests {
		if got := signExtend(tt.v, tt.n); got != tt.want {
			t.Errorf("signExtend(%#x, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestReadLE(t *testing.T) {
	buf := []byte{0x78, 0x56, 0x34, 0x12}
	v, err := readLE(buf, 0, 4)
	if err != nil || v != 0x12345678 {
		t.Errorf("readLE = %#x, %v; want 0x12345678", v, err)
	}
	var trunc *TruncatedInstructionError
	if _, err := readLE(buf, 2, 4); !errors.As(err, &trunc) {
		t.Errorf("err = %v, want TruncatedInstructionError", err)
	}
}

// ---------------------------------------------------------------------------
// Operands
// ---------------------------------------------------------------------------

func TestDecodeOperandMethods(t *testing.T) {
	bare := &OpcodeEntry{Seq: []byte{0x00}}
	tests := []struct {
		name  string
		buf   []byte
		desc  OperandDesc
		mode  modeConfig
		want  string
		share int
		own   int
	}{
		{"E register byte", []byte{0x00, 0xC1}, OperandDesc{Method: MethodE, Size: SizeB}, defaultMode(), "CL", 1, 0},
		{"E register word", []byte{0x00, 0xC1}, OperandDesc{Method: MethodE, Size: SizeW}, defaultMode(), "CX", 1, 0},
		{"E memory", []byte{0x00, 0x45, 0x80}, OperandDesc{Method: MethodE, Size: SizeVQP}, defaultMode(), "[EBP + -80h]", 2, 0},
		{"G operand size 16", []byte{0x00, 0xD8}, OperandDesc{Method: MethodG, Size: SizeVQP}, modeConfig{16, 32}, "BX", 1, 0},
		{"M register fallback", []byte{0x00, 0xC2}, OperandDesc{Method: MethodM}, defaultMode(), "EDX", 1, 0},
		{"S", []byte{0x00, 0xE0}, OperandDesc{Method: MethodS, Size: SizeW}, defaultMode(), "FS", 1, 0},
		{"C", []byte{0x00, 0xD8}, OperandDesc{Method: MethodC, Size: SizeD}, defaultMode(), "CR3", 1, 0},
		{"D", []byte{0x00, 0xF8}, OperandDesc{Method: MethodD, Size: SizeD}, defaultMode(), "DR7", 1, 0},
		{"T", []byte{0x00, 0xF0}, OperandDesc{Method: MethodT, Size: SizeD}, defaultMode(), "TR6", 1, 0},
		{"P", []byte{0x00, 0xD0}, OperandDesc{Method: MethodP, Size: SizeQ}, defaultMode(), "MM2", 1, 0},
		{"N", []byte{0x00, 0xD3}, OperandDesc{Method: MethodN, Size: SizeQ}, defaultMode(), "MM3", 1, 0},
		{"Q memory", []byte{0x00, 0x06}, OperandDesc{Method: MethodQ, Size: SizeQ}, defaultMode(), "[ESI]", 1, 0},
		{"V", []byte{0x00, 0xE8}, OperandDesc{Method: MethodV, Size: SizeDQ}, defaultMode(), "XMM5", 1, 0},
		{"U", []byte{0x00, 0xEF}, OperandDesc{Method: MethodU, Size: SizeDQ}, defaultMode(), "XMM7", 1, 0},
		{"W register", []byte{0x00, 0xC4}, OperandDesc{Method: MethodW, Size: SizePS}, defaultMode(), "XMM4", 1, 0},
		{"ES register", []byte{0x00, 0xC3}, OperandDesc{Method: MethodES, Size: SizeSR}, defaultMode(), "ST(3)", 1, 0},
		{"EST", []byte{0x00, 0xC9}, OperandDesc{Method: MethodEST}, defaultMode(), "ST(1)", 1, 0},
		{"fixed register", []byte{0x00}, OperandDesc{Method: MethodRegister, Size: SizeB, Reg: RegEAX}, defaultMode(), "AL", 0, 0},
		{"fixed segment", []byte{0x00}, OperandDesc{Method: MethodRegister, Size: SizeW, Reg: RegGS}, defaultMode(), "GS", 0, 0},
		{"I word", []byte{0x00, 0x34, 0x12}, OperandDesc{Method: MethodI, Size: SizeW}, defaultMode(), "+1234h", 0, 2},
		{"I operand size", []byte{0x00, 0xFE, 0xFF}, OperandDesc{Method: MethodI, Size: SizeVS}, modeConfig{16, 32}, "+-2h", 0, 2},
		{"J byte", []byte{0x00, 0x10}, OperandDesc{Method: MethodJ, Size: SizeBS}, defaultMode(), "10h", 0, 1},
		{"O address size 16", []byte{0x00, 0x00, 0x20}, OperandDesc{Method: MethodO, Size: SizeB}, modeConfig{32, 16}, "2000h", 0, 2},
		{"A operand size 16", []byte{0x00, 0x00, 0x01, 0x10, 0x00}, OperandDesc{Method: MethodA, Size: SizeP}, modeConfig{16, 32}, "10h:100h", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := decodeOperand(tt.buf, 1, 1, bare, tt.desc, tt.mode, NotationINT)
			if err != nil {
				t.Fatal(err)
			}
			if res.operand.Text != tt.want {
				t.Errorf("text = %q, want %q", res.operand.Text, tt.want)
			}
			if res.shared != tt.share || res.own != tt.own {
				t.Errorf("shared/own = %d/%d, want %d/%d", res.shared, res.own, tt.share, tt.own)
			}
		})
	}
}

func TestDecodeOperandZ(t *testing.T) {
	entry := &OpcodeEntry{Seq: []byte{0xB0}}
	res, err := decodeOperand([]byte{0xB3, 0x01}, 1, 1, entry, OperandDesc{Method: MethodZ, Size: SizeB}, defaultMode(), NotationINT)
	if err != nil {
		t.Fatal(err)
	}
	if res.operand.Text != "BL" || res.shared != 0 || res.own != 0 {
		t.Errorf("got %q shared %d own %d, want BL 0 0", res.operand.Text, res.shared, res.own)
	}
}

func TestDecodeOperandValue(t *testing.T) {
	res, err := decodeOperand([]byte{0xE8, 0xFB, 0xFF, 0xFF, 0xFF}, 1, 1, &OpcodeEntry{Seq: []byte{0xE8}},
		OperandDesc{Method: MethodJ, Size: SizeVDS}, defaultMode(), NotationINT)
	if err != nil {
		t.Fatal(err)
	}
	if res.operand.Value != -5 || res.operand.Method != MethodJ {
		t.Errorf("operand = %+v, want J value -5", res.operand)
	}
}

func TestDecodeOperandErrors(t *testing.T) {
	bare := &OpcodeEntry{Seq: []byte{0x00}}
	tests := []struct {
		name string
		buf  []byte
		desc OperandDesc
		want any
	}{
		{"H with quadword", []byte{0x00, 0xC0}, OperandDesc{Method: MethodH, Size: SizeQ}, &OperandSizeError{}},
		{"E register with packed tag", []byte{0x00, 0xC0}, OperandDesc{Method: MethodE, Size: SizePS}, &OperandSizeError{}},
		{"J with word", []byte{0x00, 0x00, 0x00}, OperandDesc{Method: MethodJ, Size: SizeW}, &OperandSizeError{}},
		{"A without pointer tag", []byte{0x00, 0x00}, OperandDesc{Method: MethodA, Size: SizeD}, &OperandSizeError{}},
		{"segment 6", []byte{0x00, 0xF0}, OperandDesc{Method: MethodS, Size: SizeW}, &RegisterModeError{}},
		{"missing modrm", []byte{0x00}, OperandDesc{Method: MethodG, Size: SizeB}, &TruncatedInstructionError{}},
		{"missing immediate", []byte{0x00, 0x01}, OperandDesc{Method: MethodI, Size: SizeW}, &TruncatedInstructionError{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeOperand(tt.buf, 1, 1, bare, tt.desc, defaultMode(), NotationINT)
			if err == nil {
				t.Fatal("no error")
			}
			switch tt.want.(type) {
			case *OperandSizeError:
				var e *OperandSizeError
				if !errors.As(err, &e) || e.Method != tt.desc.Method || e.Tag != tt.desc.Size {
					t.Errorf("err = %v, want OperandSizeError{%s, %s}", err, tt.desc.Method, tt.desc.Size)
				}
			case *RegisterModeError:
				var e *RegisterModeError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want RegisterModeError", err)
				}
			case *TruncatedInstructionError:
				var e *TruncatedInstructionError
				if !errors.As(err, &e) {
					t.Errorf("err = %v, want TruncatedInstructionError", err)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Memory forms
// ---------------------------------------------------------------------------

func TestDecodeMemory(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		mode modeConfig
		want string
		n    int
	}{
		{"base", []byte{0x03}, defaultMode(), "[EBX]", 0},
		{"disp8", []byte{0x43, 0x10}, defaultMode(), "[EBX + 10h]", 1},
		{"disp8 zero", []byte{0x43, 0x00}, defaultMode(), "[EBX + 0h]", 1},
		{"disp32", []byte{0x83, 0x00, 0x10, 0x00, 0x00}, defaultMode(), "[EBX + 1000h]", 4},
		{"absolute", []byte{0x05, 0xF0, 0xFF, 0xFF, 0xFF}, defaultMode(), "[-10h]", 4},
		{"sib scale 1", []byte{0x04, 0x0B}, defaultMode(), "[EBX + ECX]", 1},
		{"sib scale 8", []byte{0x04, 0xCB}, defaultMode(), "[EBX + ECX * 8]", 1},
		{"sib ebp base", []byte{0x44, 0x25, 0xF8}, defaultMode(), "[EBP + -8h]", 2},
		{"sib index only", []byte{0x04, 0x8D, 0x00, 0x20, 0x00, 0x00}, defaultMode(), "[ECX * 4 + 2000h]", 5},
		{"16 bit pair", []byte{0x01}, modeConfig{32, 16}, "[BX + DI]", 0},
		{"16 bit single", []byte{0x07}, modeConfig{32, 16}, "[BX]", 0},
		{"16 bit bp disp8", []byte{0x46, 0x04}, modeConfig{32, 16}, "[BP + 4h]", 1},
		{"16 bit disp16", []byte{0x80, 0x00, 0x80}, modeConfig{32, 16}, "[BX + SI + -8000h]", 2},
		{"16 bit absolute", []byte{0x06, 0x00, 0x01}, modeConfig{32, 16}, "[100h]", 2},
	}

	for _, tt := range tests {
		got, n, err := decodeMemory(tt.buf, 0, tt.mode, NotationINT)
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if got != tt.want || n != tt.n {
			t.Errorf("%s: got %q (+%d), want %q (+%d)", tt.name, got, n, tt.want, tt.n)
		}
	}
}
