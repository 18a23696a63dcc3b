package main

import (
	"bytes"
	"context"
	"debug/pe"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rsc.io/diff"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_PEImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.exe")
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_CNT_CODE, prologueCode)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCLI(t, "-verify", path)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if !strings.Contains(out, "Entry point: 0x00401002") {
		t.Errorf("summary missing entry point:\n%s", out)
	}
	listing := out[strings.Index(out, "\n.text:"):]
	if listing != prologueListing {
		t.Errorf("listing:\n%s", diff.Format(listing, prologueListing))
	}
	if !strings.Contains(errOut, "1 undecodable bytes") {
		t.Errorf("stderr = %q", errOut)
	}
	if strings.Contains(errOut, "mismatches") {
		t.Errorf("unexpected x86asm mismatch: %q", errOut)
	}
}

func TestRun_RawWithScript(t *testing.T) {
	dir := t.TempDir()
	bin := filepath.Join(dir, "boot.bin")
	if err := os.WriteFile(bin, []byte{0x90, 0xC3}, 0644); err != nil {
		t.Fatal(err)
	}
	script := filepath.Join(dir, "ret.lua")
	src := `function annotate(a, h, t) if t == "RETN" then return "leave" end end`
	if err := os.WriteFile(script, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}

	code, out, errOut := runCLI(t, "-raw", "-base", "0x7C00", "-script", script, "-count", "5", bin)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	for _, want := range []string{
		"00007C00  90                        NOP\n",
		"00007C01  C3                        RETN  ; leave\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRun_RawWarnsOnPE(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.exe")
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_CNT_CODE, []byte{0xC3})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runCLI(t, "-raw", "-count", "1", path)
	if code != 0 || !strings.Contains(errOut, "looks like a PE image") {
		t.Errorf("exit %d, stderr %q", code, errOut)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	pePath := filepath.Join(dir, "tiny.exe")
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_CNT_CODE, []byte{0xC3})
	if err := os.WriteFile(pePath, data, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{filepath.Join(dir, "none.exe")}, "none.exe"},
		{"no input", nil, "no input file"},
		{"unselected sections", []string{"-sections", "CODE", pePath}, "no code section matches"},
		{"missing script", []string{"-script", filepath.Join(dir, "none.lua"), pePath}, "none.lua"},
	}
	for _, tt := range tests {
		code, _, errOut := runCLI(t, tt.args...)
		if code != 1 || !strings.Contains(errOut, tt.want) {
			t.Errorf("%s: exit %d, stderr %q", tt.name, code, errOut)
		}
	}
}

func TestRun_VersionAndHelp(t *testing.T) {
	code, out, _ := runCLI(t, "-version")
	if code != 0 || !strings.Contains(out, "disassemblr "+Version) || !strings.Contains(out, "decoder:ia32") {
		t.Errorf("version: exit %d\n%s", code, out)
	}
	code, _, errOut := runCLI(t, "-h")
	if code != 0 || !strings.Contains(errOut, "Usage:") {
		t.Errorf("help: exit %d, stderr %q", code, errOut)
	}
}

func TestRun_ATTWarns(t *testing.T) {
	bin := filepath.Join(t.TempDir(), "a.bin")
	if err := os.WriteFile(bin, []byte{0x90}, 0644); err != nil {
		t.Fatal(err)
	}
	code, _, errOut := runCLI(t, "-raw", "-notation", "AT&T", bin)
	if code != 0 || !strings.Contains(errOut, "AT&T") {
		t.Errorf("exit %d, stderr %q", code, errOut)
	}
}
