// x86_opcodes.go - Instruction table types for the IA-32 disassembler

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

//go:generate go run ./cmd/gen-opcodes -in data/x86_opcodes.json -out x86_opcode_table_gen.go

// AddrMethod is the addressing-method tag of an operand descriptor.
type AddrMethod uint8

const (
	MethodRegister AddrMethod = iota // fixed register implied by the opcode
	MethodA                          // direct far pointer
	MethodC                          // reg selects a control register
	MethodD                          // reg selects a debug register
	MethodE                          // ModR/M general register or memory
	MethodES                         // ModR/M x87 stack register or memory
	MethodEST                        // ModR/M x87 stack register
	MethodG                          // reg selects a general register
	MethodH                          // r/m selects a general register, mod ignored
	MethodI                          // immediate
	MethodJ                          // relative branch offset
	MethodM                          // ModR/M memory
	MethodN                          // r/m selects an MMX register
	MethodO                          // direct memory offset
	MethodP                          // reg selects an MMX register
	MethodQ                          // ModR/M MMX register or memory
	MethodR                          // r/m selects a general register
	MethodS                          // reg selects a segment register
	MethodT                          // reg selects a test register
	MethodU                          // r/m selects an XMM register
	MethodV                          // reg selects an XMM register
	MethodW                          // ModR/M XMM register or memory
	MethodZ                          // low 3 bits of the opcode select a general register
)

var addrMethodNames = [...]string{
	MethodRegister: "r",
	MethodA:        "A",
	MethodC:        "C",
	MethodD:        "D",
	MethodE:        "E",
	MethodES:       "ES",
	MethodEST:      "EST",
	MethodG:        "G",
	MethodH:        "H",
	MethodI:        "I",
	MethodJ:        "J",
	MethodM:        "M",
	MethodN:        "N",
	MethodO:        "O",
	MethodP:        "P",
	MethodQ:        "Q",
	MethodR:        "R",
	MethodS:        "S",
	MethodT:        "T",
	MethodU:        "U",
	MethodV:        "V",
	MethodW:        "W",
	MethodZ:        "Z",
}

func (m AddrMethod) String() string {
	if int(m) < len(addrMethodNames) {
		return addrMethodNames[m]
	}
	return "?"
}

// ownsBytes reports whether the operand is encoded in bytes of its own,
// placed after the shared region in descriptor order.
func (m AddrMethod) ownsBytes() bool {
	switch m {
	case MethodA, MethodI, MethodJ, MethodO:
		return true
	}
	return false
}

// SizeTag is the operand-size tag of an operand descriptor.
type SizeTag uint8

const (
	SizeNone SizeTag = iota
	SizeA
	SizeB
	SizeBCD
	SizeBS
	SizeBSS
	SizeD
	SizeDI
	SizeDQ
	SizeDQP
	SizeDR
	SizeE
	SizeER
	SizeP
	SizePD
	SizePI
	SizePS
	SizePSQ
	SizePTP
	SizeQ
	SizeQI
	SizeS
	SizeSD
	SizeSR
	SizeSS
	SizeST
	SizeSTX
	SizeV
	SizeVDS
	SizeVQP
	SizeVS
	SizeW
	SizeWI
)

var sizeTagNames = [...]string{
	SizeNone: "",
	SizeA:    "a",
	SizeB:    "b",
	SizeBCD:  "bcd",
	SizeBS:   "bs",
	SizeBSS:  "bss",
	SizeD:    "d",
	SizeDI:   "di",
	SizeDQ:   "dq",
	SizeDQP:  "dqp",
	SizeDR:   "dr",
	SizeE:    "e",
	SizeER:   "er",
	SizeP:    "p",
	SizePD:   "pd",
	SizePI:   "pi",
	SizePS:   "ps",
	SizePSQ:  "psq",
	SizePTP:  "ptp",
	SizeQ:    "q",
	SizeQI:   "qi",
	SizeS:    "s",
	SizeSD:   "sd",
	SizeSR:   "sr",
	SizeSS:   "ss",
	SizeST:   "st",
	SizeSTX:  "stx",
	SizeV:    "v",
	SizeVDS:  "vds",
	SizeVQP:  "vqp",
	SizeVS:   "vs",
	SizeW:    "w",
	SizeWI:   "wi",
}

func (s SizeTag) String() string {
	if int(s) < len(sizeTagNames) {
		return sizeTagNames[s]
	}
	return "?"
}

// generalWidth resolves the tag to a general-purpose register width in
// bits. Tags that only ever describe memory (or MMX/XMM data) report false.
func (s SizeTag) generalWidth(mode modeConfig) (int, bool) {
	switch s {
	case SizeB, SizeBS, SizeBSS:
		return 8, true
	case SizeW:
		return 16, true
	case SizeD, SizeDQP:
		return 32, true
	case SizeV, SizeVDS, SizeVQP, SizeVS, SizeNone:
		return mode.operandSize, true
	}
	return 0, false
}

// InstrExt names the instruction-set extension an entry belongs to.
type InstrExt string

const (
	ExtNone  InstrExt = ""
	ExtMMX   InstrExt = "mmx"
	ExtSSE1  InstrExt = "sse1"
	ExtSSE2  InstrExt = "sse2"
	ExtSSE3  InstrExt = "sse3"
	ExtSSSE3 InstrExt = "ssse3"
	ExtSSE41 InstrExt = "sse41"
	ExtSSE42 InstrExt = "sse42"
	ExtVMX   InstrExt = "vmx"
	ExtSMX   InstrExt = "smx"
)

// OperandDesc describes one operand of a table entry. With
// Method == MethodRegister the operand is the fixed register Reg.
type OperandDesc struct {
	Method AddrMethod
	Size   SizeTag
	Reg    RegisterID
}

// PrefixOverride is merged into a matched entry when its prefix byte was
// scanned in front of the opcode. Zero fields leave the entry unchanged.
type PrefixOverride struct {
	Prefix      byte
	Mnemonic    string
	OperandSize int
	AddressSize int
}

// OpcodeEntry is one row of the instruction table.
type OpcodeEntry struct {
	Seq      []byte
	Mnemonic string
	HasExt   bool
	Ext      byte // compared with the ModR/M reg field when HasExt
	InstrExt InstrExt
	Operands []OperandDesc
	Prefixes []PrefixOverride
}

// clone returns a deep copy so overrides never touch the shared table.
func (e *OpcodeEntry) clone() OpcodeEntry {
	c := *e
	c.Seq = append([]byte(nil), e.Seq...)
	if e.Operands != nil {
		c.Operands = append([]OperandDesc(nil), e.Operands...)
	}
	if e.Prefixes != nil {
		c.Prefixes = append([]PrefixOverride(nil), e.Prefixes...)
	}
	return c
}

// isRegisterPattern reports whether the entry encodes a register in the
// low 3 bits of its last sequence byte.
func (e *OpcodeEntry) isRegisterPattern() bool {
	n := 0
	for _, op := range e.Operands {
		if op.Method == MethodZ {
			n++
		}
	}
	return n == 1
}

// extInSequence reports whether the opcode extension is carried by a
// fixed ModR/M byte at the end of the sequence (D9 E0, 0F 01 C1, ...).
func (e *OpcodeEntry) extInSequence() bool {
	if !e.HasExt || len(e.Seq) < 2 {
		return false
	}
	last := e.Seq[len(e.Seq)-1]
	return last >= 0xC0 && modRMReg(last) == e.Ext
}

// PrefixEntry is a row of the legacy prefix table.
type PrefixEntry struct {
	Mnemonic    string
	OperandSize int
	AddressSize int
}

var x86Prefixes = map[byte]PrefixEntry{
	0x26: {Mnemonic: "ES"},
	0x2E: {Mnemonic: "CS"},
	0x36: {Mnemonic: "SS"},
	0x3E: {Mnemonic: "DS"},
	0x64: {Mnemonic: "FS"},
	0x65: {Mnemonic: "GS"},
	0x66: {OperandSize: 16},
	0x67: {AddressSize: 16},
	0x9B: {Mnemonic: "FWAIT"},
	0xF0: {Mnemonic: "LOCK"},
	0xF2: {Mnemonic: "REPNZ"},
	0xF3: {Mnemonic: "REPZ"},
}

// modeOverridePrefixes are consumed by every instruction they precede.
var modeOverridePrefixes = []byte{0x66, 0x67}
