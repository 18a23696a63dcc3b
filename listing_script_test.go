// listing_script_test.go - Lua annotation hook tests

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const callScript = `
function annotate(address, hex, text)
	if string.sub(text, 1, 4) == "CALL" then
		return "call " .. hex .. " at " .. address
	end
	return nil
end
`

func TestAnnotatorString(t *testing.T) {
	a, err := newAnnotatorString(callScript)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	lines := []DisassembledLine{
		{Address: 0x401000, HexBytes: "55", Mnemonic: "PUSH EBP"},
		{Address: 0x401006, HexBytes: "E8 10 00 00 00", Mnemonic: "CALL 10h", Comment: "kept"},
	}
	if err := a.annotateAll(lines); err != nil {
		t.Fatal(err)
	}
	if lines[0].Comment != "" {
		t.Errorf("line 0 comment = %q, want none", lines[0].Comment)
	}
	if lines[1].Comment != "kept; call E8 10 00 00 00 at 4198406" {
		t.Errorf("line 1 comment = %q", lines[1].Comment)
	}
}

func TestAnnotatorFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hex.lua")
	src := "function annotate(address, hex, text) return hex end\n"
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	a, err := newAnnotatorFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()

	line := DisassembledLine{HexBytes: "C3", Mnemonic: "RETN"}
	if err := a.annotate(&line); err != nil {
		t.Fatal(err)
	}
	if line.Comment != "C3" {
		t.Errorf("comment = %q, want C3", line.Comment)
	}
}

func TestAnnotatorErrors(t *testing.T) {
	if _, err := newAnnotatorString("x = 1"); !errors.Is(err, errNoAnnotate) {
		t.Errorf("missing function: err = %v", err)
	}
	if _, err := newAnnotatorString("function annotate("); err == nil {
		t.Error("syntax error accepted")
	}
	if _, err := newAnnotatorFile(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing file accepted")
	}

	a, err := newAnnotatorString(`function annotate() error("boom") end`)
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if err := a.annotate(&DisassembledLine{}); err == nil {
		t.Error("runtime error not reported")
	}
}
