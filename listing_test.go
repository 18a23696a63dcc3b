// listing_test.go - Section listing tests

package main

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"rsc.io/diff"
)

var prologueCode = []byte{
	0x55,                         // PUSH EBP
	0x89, 0xE5,                   // MOV EBP, ESP
	0x8B, 0x45, 0x80,             // MOV EAX, [EBP + -80h]
	0xE8, 0x10, 0x00, 0x00, 0x00, // CALL 10h
	0xEB, 0xFE,                   // JMP -2h
	0x5D,                         // POP EBP
	0xC3,                         // RETN
	0x0F,                         // truncated two-byte opcode
}

const prologueListing = `
.text:
00401000  55                        PUSH EBP
00401001  89 E5                     MOV EBP, ESP
00401003  8B 45 80                  MOV EAX, [EBP + -80h]
00401006  E8 10 00 00 00            CALL 10h  ; -> 0x0040101B
0040100B  EB FE                     JMP -2h  ; -> 0x0040100B
0040100D  5D                        POP EBP
0040100E  C3                        RETN
0040100F  0F                        db 0Fh
`

func TestListingGolden(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	sections := []codeSection{{Name: ".text", Address: 0x401000, Data: prologueCode}}
	listings, err := disassembleSections(context.Background(), dec, sections, listingOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if listings[0].Bad != 1 {
		t.Errorf("bad bytes = %d, want 1", listings[0].Bad)
	}
	got := renderListing(listings)
	if got != prologueListing {
		t.Fatalf("listing:\n%s", diff.Format(got, prologueListing))
	}
}

func TestDisassembleRangeBranches(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	lines, _, err := disassembleRange(context.Background(), dec, prologueCode, 0x401000, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	var targets []uint64
	for _, l := range lines {
		if l.IsBranch {
			targets = append(targets, l.BranchTarget)
		}
	}
	if diff := cmp.Diff([]uint64{0x40101B, 0x40100B}, targets); diff != "" {
		t.Errorf("branch targets mismatch (-want +got):\n%s", diff)
	}
}

func TestDisassembleRangeWrapsTarget(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	lines, _, err := disassembleRange(context.Background(), dec, []byte{0xEB, 0xF0}, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !lines[0].IsBranch || lines[0].BranchTarget != 0xFFFFFFF2 {
		t.Errorf("target = 0x%X, want 0xFFFFFFF2", lines[0].BranchTarget)
	}
}

func TestDisassembleRangeBounds(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	base := uint64(0x401000)
	tests := []struct {
		name     string
		from, to uint64
		limit    int
		want     []uint64
	}{
		{"whole", 0, 0, 0, []uint64{0x401000, 0x401001, 0x401003, 0x401006, 0x40100B, 0x40100D, 0x40100E, 0x40100F}},
		{"limit", 0, 0, 2, []uint64{0x401000, 0x401001}},
		{"from", 0x40100D, 0, 0, []uint64{0x40100D, 0x40100E, 0x40100F}},
		{"to", 0, 0x401003, 0, []uint64{0x401000, 0x401001}},
		{"before base", 0, 0x400000, 0, nil},
		{"past end", 0x402000, 0, 0, nil},
	}
	for _, tt := range tests {
		lines, _, err := disassembleRange(context.Background(), dec, prologueCode, base, tt.from, tt.to, tt.limit)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		var got []uint64
		for _, l := range lines {
			got = append(got, l.Address)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s: addresses mismatch (-want +got):\n%s", tt.name, diff)
		}
	}
}

func TestDisassembleRangeResyncs(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	// 0F 04 has no entry; the 04 that follows is ADD AL, imm8.
	lines, bad, err := disassembleRange(context.Background(), dec, []byte{0x0F, 0x04, 0x01, 0x90}, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if bad != 1 || len(lines) != 3 {
		t.Fatalf("bad = %d, lines = %+v", bad, lines)
	}
	if lines[0].Mnemonic != "db 0Fh" || lines[1].Mnemonic != "ADD AL, +1h" || lines[2].Mnemonic != "NOP" {
		t.Errorf("lines = %q, %q, %q", lines[0].Mnemonic, lines[1].Mnemonic, lines[2].Mnemonic)
	}
}

func TestDisassembleRangeLonePrefix(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	// 2E 0F FF: nothing valid follows the override, so it stands alone.
	lines, bad, err := disassembleRange(context.Background(), dec, []byte{0x2E, 0x0F, 0xFF, 0x9B}, 0, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, l := range lines {
		got = append(got, l.Mnemonic)
	}
	want := []string{"CS", "db 0Fh", "db 0FFh", "FWAIT"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mnemonics mismatch (-want +got):\n%s", diff)
	}
	if bad != 2 {
		t.Errorf("bad = %d, want 2", bad)
	}
}

func TestDisassembleRangeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := disassembleRange(ctx, NewDecoder(DecoderConfig{}), prologueCode, 0, 0, 0, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestDisassembleSectionsInvalidNotation(t *testing.T) {
	dec := NewDecoder(DecoderConfig{Notation: "MASM"})
	sections := []codeSection{{Name: ".text", Data: []byte{0x90}}}
	_, err := disassembleSections(context.Background(), dec, sections, listingOptions{})
	var bad *InvalidNotationError
	if !errors.As(err, &bad) {
		t.Errorf("err = %v, want InvalidNotationError", err)
	}
}

func TestDisassembleSectionsKeepsOrder(t *testing.T) {
	dec := NewDecoder(DecoderConfig{})
	var sections []codeSection
	for i := 0; i < 16; i++ {
		code := make([]byte, 64*(i+1))
		for j := range code {
			code[j] = 0x90
		}
		sections = append(sections, codeSection{Name: strings.Repeat("s", i+1), Address: uint64(i) << 16, Data: code})
	}
	listings, err := disassembleSections(context.Background(), dec, sections, listingOptions{})
	if err != nil {
		t.Fatal(err)
	}
	for i, l := range listings {
		if l.Name != sections[i].Name || len(l.Lines) != len(sections[i].Data) {
			t.Errorf("listing %d = %s with %d lines", i, l.Name, len(l.Lines))
		}
	}
}

func TestAppendComment(t *testing.T) {
	var line DisassembledLine
	appendComment(&line, "")
	appendComment(&line, "first")
	appendComment(&line, "second")
	if line.Comment != "first; second" {
		t.Errorf("comment = %q", line.Comment)
	}
}
