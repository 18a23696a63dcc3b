package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestGenerate_Entry(t *testing.T) {
	src := `[
  {"seq":["0F","A2"],"mnem":"CPUID"},
  {"seq":["F7"],"mnem":"NOT","ext":2,"operands":[{"a":"E","t":"vqp"}]},
  {"seq":["0F","6F"],"mnem":"MOVQ","instrExt":"mmx","operands":[{"a":"P","t":"q"},{"a":"Q","t":"q"}]},
  {"seq":["98"],"mnem":"CWDE","prefixes":{"66":{"mnem":"CBW","operandSize":16}}},
  {"seq":["06"],"mnem":"PUSH","operands":[{"r":11,"t":"w"}]}
]`
	out, err := generate([]byte(src), "table.json")
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	for _, want := range []string{
		"// Code generated by gen-opcodes from table.json; DO NOT EDIT.",
		`{Seq: []byte{0x0F, 0xA2}, Mnemonic: "CPUID"},`,
		`{Seq: []byte{0xF7}, Mnemonic: "NOT", HasExt: true, Ext: 2, Operands: []OperandDesc{{Method: MethodE, Size: SizeVQP}}},`,
		`{Seq: []byte{0x0F, 0x6F}, Mnemonic: "MOVQ", InstrExt: ExtMMX, Operands: []OperandDesc{{Method: MethodP, Size: SizeQ}, {Method: MethodQ, Size: SizeQ}}},`,
		`{Seq: []byte{0x98}, Mnemonic: "CWDE", Prefixes: []PrefixOverride{{Prefix: 0x66, Mnemonic: "CBW", OperandSize: 16}}},`,
		`{Seq: []byte{0x06}, Mnemonic: "PUSH", Operands: []OperandDesc{{Method: MethodRegister, Size: SizeW, Reg: RegES}}},`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %s\n%s", want, got)
		}
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad json", `[{`, "parse"},
		{"empty sequence", `[{"seq":[],"mnem":"X"}]`, "sequence length 0"},
		{"long sequence", `[{"seq":["0F","0F","0F","0F"],"mnem":"X"}]`, "sequence length 4"},
		{"no mnemonic", `[{"seq":["90"]}]`, "missing mnemonic"},
		{"bad byte", `[{"seq":["G0"],"mnem":"X"}]`, "bad byte"},
		{"extension range", `[{"seq":["F7"],"mnem":"X","ext":8}]`, "opcode extension 8"},
		{"size tag", `[{"seq":["90"],"mnem":"X","operands":[{"a":"E","t":"zz"}]}]`, "unknown size tag"},
		{"method", `[{"seq":["90"],"mnem":"X","operands":[{"a":"K","t":"b"}]}]`, "addressing method"},
		{"register", `[{"seq":["90"],"mnem":"X","operands":[{"r":14}]}]`, "register id 14"},
		{"empty operand", `[{"seq":["90"],"mnem":"X","operands":[{"t":"b"}]}]`, "neither method nor register"},
		{"instruction extension", `[{"seq":["90"],"mnem":"X","instrExt":"avx"}]`, "instruction extension"},
		{"prefix byte", `[{"seq":["90"],"mnem":"X","prefixes":{"zz":{"mnem":"Y"}}}]`, "bad byte"},
	}
	for _, tt := range tests {
		_, err := generate([]byte(tt.src), "t.json")
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: err = %v, want mention of %q", tt.name, err, tt.want)
		}
	}
}

func TestGenerate_RealTable(t *testing.T) {
	src, err := os.ReadFile("../../data/x86_opcodes.json")
	if err != nil {
		t.Fatal(err)
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(src, &entries); err != nil {
		t.Fatal(err)
	}
	out, err := generate(src, "data/x86_opcodes.json")
	if err != nil {
		t.Fatal(err)
	}
	if n := bytes.Count(out, []byte("{Seq: ")); n != len(entries) {
		t.Errorf("generated %d entries, want %d", n, len(entries))
	}
}
