// output_test.go - Listing rendering tests

package main

import (
	"bytes"
	"strings"
	"testing"

	"rsc.io/diff"
)

func TestFormatLine(t *testing.T) {
	tests := []struct {
		name  string
		line  DisassembledLine
		width int
		want  string
	}{
		{
			name: "plain",
			line: DisassembledLine{Address: 0x401000, HexBytes: "55", Mnemonic: "PUSH EBP"},
			want: "00401000  55                        PUSH EBP",
		},
		{
			name: "branch and comment",
			line: DisassembledLine{Address: 0x10, HexBytes: "EB FE", Mnemonic: "JMP -2h", IsBranch: true, BranchTarget: 0x10, Comment: "loop"},
			want: "00000010  EB FE                     JMP -2h  ; -> 0x00000010; loop",
		},
		{
			name:  "clipped comment",
			line:  DisassembledLine{Address: 0, HexBytes: "90", Mnemonic: "NOP", Comment: "abcdefghij"},
			width: 47,
			want:  "00000000  90                        NOP  ; abcd",
		},
		{
			name:  "no room for comment",
			line:  DisassembledLine{Address: 0, HexBytes: "90", Mnemonic: "NOP", Comment: "abc"},
			width: 40,
			want:  "00000000  90                        NOP",
		},
		{
			name: "empty text",
			line: DisassembledLine{Address: 0, HexBytes: "90"},
			want: "00000000  90",
		},
	}
	for _, tt := range tests {
		lw := &listingWriter{width: tt.width}
		if got := lw.formatLine(tt.line); got != tt.want {
			t.Errorf("%s:\n got %q\nwant %q", tt.name, got, tt.want)
		}
	}
}

func TestFormatLineColor(t *testing.T) {
	lw := &listingWriter{color: true}
	got := lw.formatLine(DisassembledLine{Address: 0, HexBytes: "0F", Mnemonic: "db 0Fh", Size: 1})
	if !strings.Contains(got, ansiData+"db 0Fh"+ansiReset) || !strings.HasPrefix(got, ansiAddress) {
		t.Errorf("coloured line = %q", got)
	}
	lw.color = false
	if got := lw.formatLine(DisassembledLine{HexBytes: "0F", Mnemonic: "db 0Fh", Size: 1}); strings.Contains(got, "\033") {
		t.Errorf("plain line has escapes: %q", got)
	}
}

func TestWriteSummary(t *testing.T) {
	img := &peImage{
		Machine:    0x14C,
		ImageBase:  0x400000,
		EntryPoint: 0x401000,
		Table: []sectionHeader{
			{Name: ".text", VirtualAddress: 0x1000, VirtualSize: 0x10, RawSize: 0x200, Characteristics: 0x60000020},
		},
	}
	var buf bytes.Buffer
	lw := newListingWriter(&buf, nil)
	if err := lw.writeSummary(img, "tiny.exe"); err != nil {
		t.Fatal(err)
	}
	want := `tiny.exe
  Machine:     0x014C
  Image base:  0x00400000
  Entry point: 0x00401000
  Sections:
    .text     VA 0x00001000  VSize 0x00000010  Raw 0x00000200  Flags 0x60000020
`
	if got := buf.String(); got != want {
		t.Errorf("summary:\n%s", diff.Format(got, want))
	}
}

func TestNewListingWriterHost(t *testing.T) {
	lw := newListingWriter(&bytes.Buffer{}, &TerminalHost{color: true, width: 80})
	if !lw.color || lw.width != 80 {
		t.Errorf("writer = %+v", lw)
	}
}

func TestColorModeValid(t *testing.T) {
	for _, m := range []colorMode{colorAuto, colorAlways, colorNever} {
		if !m.valid() {
			t.Errorf("%s rejected", m)
		}
	}
	if colorMode("rainbow").valid() {
		t.Error("rainbow accepted")
	}
}
