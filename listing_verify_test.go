// listing_verify_test.go - x86asm length cross-check tests

package main

import (
	"context"
	"strings"
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

func TestVerifyLengthsAgree(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	lines, _, err := disassembleRange(context.Background(), dec, prologueCode, 0x401000, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n := verifyLengths(lines, prologueCode, 0x401000); n != 0 {
		t.Errorf("mismatches = %d, want 0", n)
		for _, l := range lines {
			if l.Comment != "" {
				t.Logf("%08X %s ; %s", l.Address, l.Mnemonic, l.Comment)
			}
		}
	}
}

func TestVerifyLengthsReportsMismatch(t *testing.T) {
	code := []byte{0xC3, 0x0F, 0x04}
	lines := []DisassembledLine{
		{Address: 0x100, Size: 2, Mnemonic: "RETN"},
		{Address: 0x101, Size: 2, Mnemonic: "???"},
	}
	if n := verifyLengths(lines, code, 0x100); n != 2 {
		t.Fatalf("mismatches = %d, want 2", n)
	}
	if lines[0].Comment != "x86asm: len 1 (RET)" {
		t.Errorf("comment = %q", lines[0].Comment)
	}
	if !strings.HasPrefix(lines[1].Comment, "x86asm: ") {
		t.Errorf("comment = %q", lines[1].Comment)
	}
}

func TestVerifyLengthsSkipsData(t *testing.T) {
	lines := []DisassembledLine{
		{Address: 0, Size: 1, Mnemonic: "db 0Fh"},
		{Address: 9, Size: 1, Mnemonic: "NOP"},
	}
	if n := verifyLengths(lines, []byte{0x0F}, 0); n != 0 {
		t.Errorf("mismatches = %d, want 0", n)
	}
}

// TestDecodeLengthMatchesX86asm compares instruction lengths for encodings
// both decoders understand the same way.
func TestDecodeLengthMatchesX86asm(t *testing.T) {
	codes := [][]byte{
		{0x01, 0xC8},
		{0x8B, 0x45, 0x80},
		{0x8B, 0x85, 0x00, 0xFF, 0xFF, 0xFF},
		{0x8B, 0x04, 0xB3},
		{0x8B, 0x44, 0xB3, 0x10},
		{0x8B, 0x05, 0x00, 0x10, 0x40, 0x00},
		{0x8B, 0x04, 0x25, 0x00, 0x10, 0x00, 0x00},
		{0x8D, 0x44, 0x24, 0x08},
		{0xB8, 0x78, 0x56, 0x34, 0x12},
		{0x66, 0xB8, 0x34, 0x12},
		{0x83, 0xC0, 0xF0},
		{0x81, 0xC1, 0x00, 0x01, 0x00, 0x00},
		{0xA1, 0x00, 0x10, 0x40, 0x00},
		{0xE8, 0x10, 0x00, 0x00, 0x00},
		{0xEB, 0xFE},
		{0x0F, 0x84, 0x00, 0x01, 0x00, 0x00},
		{0xC2, 0x08, 0x00},
		{0xC8, 0x10, 0x00, 0x01},
		{0xCD, 0x21},
		{0xD3, 0xE0},
		{0x0F, 0xB6, 0xC1},
		{0x0F, 0xC9},
		{0xF7, 0xD0},
		{0xF7, 0x05, 0x00, 0x10, 0x00, 0x00, 0x78, 0x56, 0x34, 0x12},
		{0xC7, 0x44, 0x24, 0x04, 0x01, 0x00, 0x00, 0x00},
		{0x67, 0x8B, 0x46, 0xFE},
		{0x67, 0x8B, 0x06, 0x34, 0x12},
		{0xF0, 0x01, 0xC8},
		{0xD9, 0xE0},
		{0xDD, 0x45, 0xF8},
		{0x0F, 0x6F, 0xC1},
	}
	dec := NewDecoder(DecoderConfig{})
	for _, code := range codes {
		inst, err := dec.DecodeInstruction(code, 0)
		if err != nil {
			t.Errorf("% X: %v", code, err)
			continue
		}
		ref, err := x86asm.Decode(code, 32)
		if err != nil {
			t.Errorf("% X: x86asm: %v", code, err)
			continue
		}
		if inst.Length != ref.Len {
			t.Errorf("% X: length %d, x86asm %d (%s)", code, inst.Length, ref.Len, ref.Op)
		}
	}
}
