package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"
)

type jsonOperand struct {
	A string `json:"a"`
	R *int   `json:"r"`
	T string `json:"t"`
}

type jsonOverride struct {
	Mnem        string `json:"mnem"`
	OperandSize int    `json:"operandSize"`
	AddressSize int    `json:"addressSize"`
}

type jsonEntry struct {
	Seq      []string                `json:"seq"`
	Mnem     string                  `json:"mnem"`
	Ext      *int                    `json:"ext"`
	InstrExt string                  `json:"instrExt"`
	Operands []jsonOperand           `json:"operands"`
	Prefixes map[string]jsonOverride `json:"prefixes"`
}

var methodConsts = map[string]string{
	"A": "MethodA", "C": "MethodC", "D": "MethodD", "E": "MethodE",
	"ES": "MethodES", "EST": "MethodEST", "G": "MethodG", "H": "MethodH",
	"I": "MethodI", "J": "MethodJ", "M": "MethodM", "N": "MethodN",
	"O": "MethodO", "P": "MethodP", "Q": "MethodQ", "R": "MethodR",
	"S": "MethodS", "T": "MethodT", "U": "MethodU", "V": "MethodV",
	"W": "MethodW", "Z": "MethodZ",
}

var sizeTags = []string{
	"a", "b", "bcd", "bs", "bss", "d", "di", "dq", "dqp", "dr", "e", "er",
	"p", "pd", "pi", "ps", "psq", "ptp", "q", "qi", "s", "sd", "sr", "ss",
	"st", "stx", "v", "vds", "vqp", "vs", "w", "wi",
}

var registerConsts = []string{
	"RegEAX", "RegECX", "RegEDX", "RegEBX", "RegESP", "RegEBP", "RegESI", "RegEDI",
	"RegCS", "RegDS", "RegSS", "RegES", "RegFS", "RegGS",
}

var instrExtConsts = map[string]string{
	"mmx": "ExtMMX", "sse1": "ExtSSE1", "sse2": "ExtSSE2", "sse3": "ExtSSE3",
	"ssse3": "ExtSSSE3", "sse41": "ExtSSE41", "sse42": "ExtSSE42",
	"vmx": "ExtVMX", "smx": "ExtSMX",
}

func sizeConst(tag string) (string, error) {
	if tag == "" {
		return "", nil
	}
	for _, t := range sizeTags {
		if t == tag {
			return "Size" + strings.ToUpper(t), nil
		}
	}
	return "", fmt.Errorf("unknown size tag %q", tag)
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad byte %q: %w", s, err)
	}
	return byte(v), nil
}

// generate renders the opcode table JSON as gofmt'ed Go source.
func generate(src []byte, source string) ([]byte, error) {
	var entries []jsonEntry
	if err := json.Unmarshal(src, &entries); err != nil {
		return nil, fmt.Errorf("parse %s: %w", source, err)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by gen-opcodes from %s; DO NOT EDIT.\n\n", source)
	b.WriteString("package main\n\n")
	b.WriteString("var x86Opcodes = []OpcodeEntry{\n")
	for i, e := range entries {
		line, err := renderEntry(e)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, e.Mnem, err)
		}
		b.WriteString("\t" + line + ",\n")
	}
	b.WriteString("}\n")

	out, err := format.Source(b.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format: %w", err)
	}
	return out, nil
}

func renderEntry(e jsonEntry) (string, error) {
	if len(e.Seq) == 0 || len(e.Seq) > 3 {
		return "", fmt.Errorf("sequence length %d", len(e.Seq))
	}
	if e.Mnem == "" {
		return "", fmt.Errorf("missing mnemonic")
	}

	seq := make([]string, len(e.Seq))
	for i, s := range e.Seq {
		v, err := parseByte(s)
		if err != nil {
			return "", err
		}
		seq[i] = fmt.Sprintf("0x%02X", v)
	}
	fields := []string{
		"Seq: []byte{" + strings.Join(seq, ", ") + "}",
		"Mnemonic: " + strconv.Quote(e.Mnem),
	}

	if e.Ext != nil {
		if *e.Ext < 0 || *e.Ext > 7 {
			return "", fmt.Errorf("opcode extension %d", *e.Ext)
		}
		fields = append(fields, "HasExt: true", fmt.Sprintf("Ext: %d", *e.Ext))
	}

	if e.InstrExt != "" {
		c, ok := instrExtConsts[e.InstrExt]
		if !ok {
			return "", fmt.Errorf("unknown instruction extension %q", e.InstrExt)
		}
		fields = append(fields, "InstrExt: "+c)
	}

	if len(e.Operands) > 0 {
		ops := make([]string, len(e.Operands))
		for i, op := range e.Operands {
			s, err := renderOperand(op)
			if err != nil {
				return "", err
			}
			ops[i] = s
		}
		fields = append(fields, "Operands: []OperandDesc{"+strings.Join(ops, ", ")+"}")
	}

	if len(e.Prefixes) > 0 {
		keys := make([]string, 0, len(e.Prefixes))
		for k := range e.Prefixes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		overrides := make([]string, 0, len(keys))
		for _, k := range keys {
			p, err := parseByte(k)
			if err != nil {
				return "", err
			}
			o := e.Prefixes[k]
			parts := []string{fmt.Sprintf("Prefix: 0x%02X", p)}
			if o.Mnem != "" {
				parts = append(parts, "Mnemonic: "+strconv.Quote(o.Mnem))
			}
			if o.OperandSize != 0 {
				parts = append(parts, fmt.Sprintf("OperandSize: %d", o.OperandSize))
			}
			if o.AddressSize != 0 {
				parts = append(parts, fmt.Sprintf("AddressSize: %d", o.AddressSize))
			}
			overrides = append(overrides, "{"+strings.Join(parts, ", ")+"}")
		}
		fields = append(fields, "Prefixes: []PrefixOverride{"+strings.Join(overrides, ", ")+"}")
	}

	return "{" + strings.Join(fields, ", ") + "}", nil
}

func renderOperand(op jsonOperand) (string, error) {
	size, err := sizeConst(op.T)
	if err != nil {
		return "", err
	}
	var parts []string
	switch {
	case op.R != nil:
		if *op.R < 0 || *op.R >= len(registerConsts) {
			return "", fmt.Errorf("register id %d", *op.R)
		}
		parts = append(parts, "Method: MethodRegister")
		if size != "" {
			parts = append(parts, "Size: "+size)
		}
		parts = append(parts, "Reg: "+registerConsts[*op.R])
	case op.A != "":
		m, ok := methodConsts[op.A]
		if !ok {
			return "", fmt.Errorf("unknown addressing method %q", op.A)
		}
		parts = append(parts, "Method: "+m)
		if size != "" {
			parts = append(parts, "Size: "+size)
		}
	default:
		return "", fmt.Errorf("operand has neither method nor register")
	}
	return "{" + strings.Join(parts, ", ") + "}", nil
}
