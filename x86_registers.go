// x86_registers.go - Register tables for the IA-32 disassembler

package main

// RegisterID indexes the register descriptor table: 0-7 are the general
// purpose registers, 8-13 the segment registers.
type RegisterID uint8

const (
	RegEAX RegisterID = iota
	RegECX
	RegEDX
	RegEBX
	RegESP
	RegEBP
	RegESI
	RegEDI
	RegCS
	RegDS
	RegSS
	RegES
	RegFS
	RegGS
)

type regMode uint8

const (
	modeR8 regMode = iota
	modeR16
	modeR32
	modeMM
	modeXMM
)

// registerFile selects which name column a register operand draws from.
type registerFile uint8

const (
	fileGeneral registerFile = iota
	fileMMX
	fileXMM
)

func (f registerFile) String() string {
	switch f {
	case fileMMX:
		return "mmx"
	case fileXMM:
		return "xmm"
	}
	return "general"
}

// registerDesc holds the per-width names of one register. Segment
// registers only carry a 16-bit name.
type registerDesc struct {
	r8, r16, r32, mm, xmm string
}

var x86Registers = [...]registerDesc{
	RegEAX: {"AL", "AX", "EAX", "MM0", "XMM0"},
	RegECX: {"CL", "CX", "ECX", "MM1", "XMM1"},
	RegEDX: {"DL", "DX", "EDX", "MM2", "XMM2"},
	RegEBX: {"BL", "BX", "EBX", "MM3", "XMM3"},
	RegESP: {"AH", "SP", "ESP", "MM4", "XMM4"},
	RegEBP: {"CH", "BP", "EBP", "MM5", "XMM5"},
	RegESI: {"DH", "SI", "ESI", "MM6", "XMM6"},
	RegEDI: {"BH", "DI", "EDI", "MM7", "XMM7"},
	RegCS:  {r16: "CS"},
	RegDS:  {r16: "DS"},
	RegSS:  {r16: "SS"},
	RegES:  {r16: "ES"},
	RegFS:  {r16: "FS"},
	RegGS:  {r16: "GS"},
}

// Legacy 16-bit addressing, indexed by the r/m field.
var x86RegisterPairs = [8]string{
	"BX + SI", "BX + DI", "BP + SI", "BP + DI", "SI", "DI", "BP", "BX",
}

// Segment registers in ModR/M reg field order.
var x86SegmentOrder = [6]RegisterID{RegES, RegCS, RegSS, RegDS, RegFS, RegGS}

var x86ControlRegs = [8]string{"CR0", "CR1", "CR2", "CR3", "CR4", "CR5", "CR6", "CR7"}
var x86DebugRegs = [8]string{"DR0", "DR1", "DR2", "DR3", "DR4", "DR5", "DR6", "DR7"}
var x86TestRegs = [8]string{"TR0", "TR1", "TR2", "TR3", "TR4", "TR5", "TR6", "TR7"}
var x87StackRegs = [8]string{"ST(0)", "ST(1)", "ST(2)", "ST(3)", "ST(4)", "ST(5)", "ST(6)", "ST(7)"}

// registerMode picks the name column for a register of the given width
// in the given register file.
func registerMode(size int, file registerFile) (regMode, error) {
	switch file {
	case fileGeneral:
		switch size {
		case 8:
			return modeR8, nil
		case 16:
			return modeR16, nil
		case 32:
			return modeR32, nil
		}
	case fileMMX:
		if size == 64 {
			return modeMM, nil
		}
	case fileXMM:
		if size == 128 {
			return modeXMM, nil
		}
	}
	return 0, &RegisterModeError{Size: size, Extension: file.String()}
}

// registerName resolves a register id at a given width.
func registerName(id RegisterID, size int, file registerFile) (string, error) {
	if int(id) >= len(x86Registers) {
		return "", &RegisterModeError{Size: size, Extension: file.String()}
	}
	mode, err := registerMode(size, file)
	if err != nil {
		return "", err
	}
	d := x86Registers[id]
	var name string
	switch mode {
	case modeR8:
		name = d.r8
	case modeR16:
		name = d.r16
	case modeR32:
		name = d.r32
	case modeMM:
		name = d.mm
	case modeXMM:
		name = d.xmm
	}
	if name == "" {
		return "", &RegisterModeError{Size: size, Extension: file.String()}
	}
	return name, nil
}
