// x86_matcher_test.go - Prefix scanner and opcode matcher tests

package main

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ---------------------------------------------------------------------------
// Prefix scanner
// ---------------------------------------------------------------------------

func TestScanPrefixes(t *testing.T) {
	tests := []struct {
		name   string
		buf    []byte
		offset int
		want   []byte
	}{
		{"none", []byte{0x90}, 0, nil},
		{"single", []byte{0xF0, 0x01, 0xC8}, 0, []byte{0xF0}},
		{"several", []byte{0x66, 0x67, 0x2E, 0x8B, 0x00}, 0, []byte{0x66, 0x67, 0x2E}},
		{"repeats kept", []byte{0x66, 0x66, 0x66, 0x90}, 0, []byte{0x66, 0x66, 0x66}},
		{"stops at end", []byte{0xF3, 0xF3}, 0, []byte{0xF3, 0xF3}},
		{"from offset", []byte{0x90, 0x3E, 0x90}, 1, []byte{0x3E}},
		{"past end", []byte{0x66}, 5, nil},
	}

	for _, tt := range tests {
		got := scanPrefixes(tt.buf, tt.offset)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: prefixes mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestByteAtSentinel(t *testing.T) {
	buf := []byte{0x26}
	if byteAt(buf, 0) != 0x26 {
		t.Errorf("byteAt(0) = %d, want 0x26", byteAt(buf, 0))
	}
	for _, i := range []int{-1, 1, 100} {
		if b := byteAt(buf, i); b != outOfRange || isPrefix(b) {
			t.Errorf("byteAt(%d) = %d, want sentinel", i, b)
		}
	}
}

func TestRemovePrefix(t *testing.T) {
	got := removePrefix([]byte{0x66, 0xF3, 0x66, 0x2E}, 0x66)
	if diff := cmp.Diff([]byte{0xF3, 0x2E}, got); diff != "" {
		t.Errorf("removePrefix mismatch (-want +got):\n%s", diff)
	}
}

// ---------------------------------------------------------------------------
// Matcher
// ---------------------------------------------------------------------------

func TestMatchOpcodeModeOverrides(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		mnemonic string
		mode     modeConfig
		left     []byte
	}{
		{"defaults", []byte{0xB8}, "MOV", modeConfig{32, 32}, []byte{}},
		{"operand size", []byte{0x66, 0xB8}, "MOV", modeConfig{16, 32}, []byte{}},
		{"address size", []byte{0x67, 0x8B}, "MOV", modeConfig{32, 16}, []byte{}},
		{"both", []byte{0x66, 0x67, 0x8B}, "MOV", modeConfig{16, 16}, []byte{}},
		{"entry rename", []byte{0x66, 0x98}, "CBW", modeConfig{16, 32}, []byte{}},
		{"rename only", []byte{0xF3, 0x90}, "PAUSE", modeConfig{32, 32}, []byte{}},
		{"unconsumed", []byte{0xF0, 0x2E, 0x01}, "ADD", modeConfig{32, 32}, []byte{0xF0, 0x2E}},
		{"repeated override", []byte{0x66, 0xF3, 0x66, 0xA5}, "MOVS", modeConfig{16, 32}, []byte{0xF3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefixes := scanPrefixes(tt.buf, 0)
			entry, left, mode, err := matchOpcode(tt.buf, 0, prefixes)
			if err != nil {
				t.Fatal(err)
			}
			if entry.Mnemonic != tt.mnemonic {
				t.Errorf("mnemonic = %s, want %s", entry.Mnemonic, tt.mnemonic)
			}
			if mode != tt.mode {
				t.Errorf("mode = %+v, want %+v", mode, tt.mode)
			}
			if diff := cmp.Diff(tt.left, left, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("remaining prefixes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchOpcodeDoesNotTouchCallerPrefixes(t *testing.T) {
	prefixes := []byte{0x66, 0xF0}
	buf := []byte{0x66, 0xF0, 0x01, 0xC8}
	if _, _, _, err := matchOpcode(buf, 0, prefixes); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{0x66, 0xF0}, prefixes); diff != "" {
		t.Errorf("caller slice changed (-want +got):\n%s", diff)
	}
}

func TestFindOpcodeTieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		mnemonic string
		seqLen   int
	}{
		{"plain beats register pattern", []byte{0x90}, "NOP", 1},
		{"register pattern", []byte{0x97}, "XCHG", 1},
		{"longest sequence", []byte{0xD9, 0xE0}, "FCHS", 2},
		{"extension when no literal", []byte{0xD9, 0x00}, "FLD", 1},
		{"first declared of duplicates", []byte{0x0F, 0x6F, 0xC1}, "MOVQ", 2},
		{"three byte map", []byte{0x0F, 0x01, 0xF9}, "RDTSCP", 3},
	}

	for _, tt := range tests {
		idx, _ := findOpcode(tt.buf, 0)
		if idx < 0 {
			t.Errorf("%s: no match", tt.name)
			continue
		}
		e := x86Opcodes[idx]
		if e.Mnemonic != tt.mnemonic || len(e.Seq) != tt.seqLen {
			t.Errorf("%s: got %s (%d bytes), want %s (%d bytes)", tt.name, e.Mnemonic, len(e.Seq), tt.mnemonic, tt.seqLen)
		}
	}
}

func TestMatchOpcodeErrors(t *testing.T) {
	_, _, _, err := matchOpcode([]byte{0x0F, 0x04}, 0, nil)
	var unknown *UnknownOpcodeError
	if !errors.As(err, &unknown) || unknown.Byte != 0x0F {
		t.Errorf("0F 04: err = %v, want UnknownOpcodeError", err)
	}

	_, _, _, err = matchOpcode([]byte{0xF7}, 0, nil)
	var trunc *TruncatedInstructionError
	if !errors.As(err, &trunc) {
		t.Errorf("F7: err = %v, want TruncatedInstructionError", err)
	}
}

func TestExtInSequence(t *testing.T) {
	tests := []struct {
		entry OpcodeEntry
		want  bool
	}{
		{OpcodeEntry{Seq: []byte{0xD9, 0xE0}, HasExt: true, Ext: 4}, true},
		{OpcodeEntry{Seq: []byte{0x0F, 0x01, 0xC1}, HasExt: true, Ext: 0}, true},
		{OpcodeEntry{Seq: []byte{0xF7}, HasExt: true, Ext: 2}, false},
		{OpcodeEntry{Seq: []byte{0x0F, 0x00}, HasExt: true, Ext: 0}, false},
		{OpcodeEntry{Seq: []byte{0xD9, 0xE0}}, false},
	}
	for _, tt := range tests {
		if got := tt.entry.extInSequence(); got != tt.want {
			t.Errorf("% X /%d: extInSequence = %v, want %v", tt.entry.Seq, tt.entry.Ext, got, tt.want)
		}
	}
}

func TestOpcodeTableSanity(t *testing.T) {
	if len(x86Opcodes) < 1000 {
		t.Fatalf("opcode table has %d entries", len(x86Opcodes))
	}
	for i, e := range x86Opcodes {
		if len(e.Seq) < 1 || len(e.Seq) > 3 {
			t.Errorf("entry %d %s: sequence length %d", i, e.Mnemonic, len(e.Seq))
		}
		if e.Mnemonic == "" {
			t.Errorf("entry %d: empty mnemonic", i)
		}
		if e.HasExt && e.Ext > 7 {
			t.Errorf("entry %d %s: extension %d", i, e.Mnemonic, e.Ext)
		}
		for _, op := range e.Operands {
			if op.Method == MethodRegister && int(op.Reg) >= len(x86Registers) {
				t.Errorf("entry %d %s: register %d", i, e.Mnemonic, op.Reg)
			}
		}
	}
}
