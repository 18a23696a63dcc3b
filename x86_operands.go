// x86_operands.go - Operand decoder for the IA-32 disassembler

package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Operand is one decoded operand. Text is the rendered form; Value holds
// the number behind immediates, branch offsets and direct addresses. A Raw
// operand has no Text and is rendered from Value by the formatter.
type Operand struct {
	Method AddrMethod
	Text   string
	Value  int64
	Raw    bool
}

type operandResult struct {
	operand Operand
	shared  int // bytes from the ModR/M byte on, shared with sibling operands
	own     int // bytes read at the own cursor
}

// readLE reads an n-byte little endian value at pos.
func readLE(buf []byte, pos, n int) (uint64, error) {
	if pos < 0 || pos+n > len(buf) {
		return 0, &TruncatedInstructionError{Offset: len(buf)}
	}
	var v uint64
	for i := n - 1; i >= 0; i-- {
		v = v<<8 | uint64(buf[pos+i])
	}
	return v, nil
}

// signExtend interprets the low n bytes of v as two's complement.
func signExtend(v uint64, n int) int64 {
	bits := uint(8 * n)
	if bits >= 64 {
		return int64(v)
	}
	if v > (uint64(1)<<bits)/2-1 {
		return int64(v) - int64(uint64(1)<<bits)
	}
	return int64(v)
}

func readSigned(buf []byte, pos, n int) (int64, error) {
	v, err := readLE(buf, pos, n)
	if err != nil {
		return 0, err
	}
	return signExtend(v, n), nil
}

// formatNumber renders v in the given notation: INT is uppercase hex with
// an h suffix and a leading 0 before a letter, AT&T is 0x-prefixed.
func formatNumber(v int64, notation Notation) (string, error) {
	var abs uint64
	if v < 0 {
		abs = uint64(-v)
	} else {
		abs = uint64(v)
	}
	digits := strconv.FormatUint(abs, 16)

	var s string
	switch notation {
	case NotationINT:
		s = strings.ToUpper(digits)
		if s[0] >= 'A' {
			s = "0" + s
		}
		s += "h"
	case NotationATT:
		s = "0x" + digits
	default:
		return "", &InvalidNotationError{Notation: notation}
	}
	if v < 0 {
		s = "-" + s
	}
	return s, nil
}

// formatSigned renders an immediate: "+" then the literal, whatever its sign.
func formatSigned(v int64, notation Notation) (string, error) {
	s, err := formatNumber(v, notation)
	if err != nil {
		return "", err
	}
	return "+" + s, nil
}

func immediateBytes(method AddrMethod, size SizeTag, mode modeConfig) (int, error) {
	switch size {
	case SizeB, SizeBS, SizeBSS:
		return 1, nil
	case SizeW:
		if method == MethodI {
			return 2, nil
		}
	case SizeV, SizeVS, SizeVQP, SizeVDS:
		return mode.operandSize / 8, nil
	}
	return 0, &OperandSizeError{Method: method, Tag: size}
}

// decodeOperand decodes one operand. shared is the position of the byte
// after the opcode sequence (the ModR/M byte when present), own the
// position of the operand's own bytes.
func decodeOperand(buf []byte, shared, own int, op *OpcodeEntry, desc OperandDesc, mode modeConfig, notation Notation) (operandResult, error) {
	res := operandResult{operand: Operand{Method: desc.Method}}

	switch desc.Method {
	case MethodRegister:
		width, ok := desc.Size.generalWidth(mode)
		if !ok {
			return res, &OperandSizeError{Method: desc.Method, Tag: desc.Size}
		}
		if desc.Reg >= RegCS {
			width = 16
		}
		name, err := registerName(desc.Reg, width, fileGeneral)
		if err != nil {
			return res, err
		}
		res.operand.Text = name
		return res, nil

	case MethodZ:
		width, ok := desc.Size.generalWidth(mode)
		if !ok {
			return res, &OperandSizeError{Method: desc.Method, Tag: desc.Size}
		}
		last := byteAt(buf, shared-1)
		if last == outOfRange {
			return res, &TruncatedInstructionError{Offset: len(buf)}
		}
		name, err := registerName(RegisterID(last&7), width, fileGeneral)
		if err != nil {
			return res, err
		}
		res.operand.Text = name
		return res, nil

	case MethodI, MethodJ:
		n, err := immediateBytes(desc.Method, desc.Size, mode)
		if err != nil {
			return res, err
		}
		v, err := readSigned(buf, own, n)
		if err != nil {
			return res, err
		}
		var text string
		if desc.Method == MethodI {
			text, err = formatSigned(v, notation)
		} else {
			text, err = formatNumber(v, notation)
		}
		if err != nil {
			return res, err
		}
		res.operand.Text, res.operand.Value, res.own = text, v, n
		return res, nil

	case MethodO:
		n := mode.addressSize / 8
		v, err := readSigned(buf, own, n)
		if err != nil {
			return res, err
		}
		text, err := formatNumber(v, notation)
		if err != nil {
			return res, err
		}
		res.operand.Text, res.operand.Value, res.own = text, v, n
		return res, nil

	case MethodA:
		if desc.Size != SizeP {
			return res, &OperandSizeError{Method: desc.Method, Tag: desc.Size}
		}
		n := mode.operandSize / 8
		off, err := readLE(buf, own, n)
		if err != nil {
			return res, err
		}
		sel, err := readLE(buf, own+n, 2)
		if err != nil {
			return res, err
		}
		offText, err := formatNumber(int64(off), notation)
		if err != nil {
			return res, err
		}
		selText, err := formatNumber(int64(sel), notation)
		if err != nil {
			return res, err
		}
		res.operand.Text, res.operand.Value, res.own = selText+":"+offText, int64(off), n+2
		return res, nil
	}

	// ModR/M family. A ModR/M byte fixed in the opcode sequence is not
	// counted again.
	pos := shared
	if op.extInSequence() {
		pos--
	}
	mb := byteAt(buf, pos)
	if mb == outOfRange {
		return res, &TruncatedInstructionError{Offset: len(buf)}
	}
	modrm := byte(mb)
	mod, reg, rm := modRMMod(modrm), modRMReg(modrm), modRMRM(modrm)
	if pos == shared {
		res.shared = 1
	}

	var text string
	var err error
	switch desc.Method {
	case MethodG:
		text, err = generalRegister(desc, reg, mode)
	case MethodR, MethodH:
		text, err = generalRegister(desc, rm, mode)
	case MethodC:
		text = x86ControlRegs[reg]
	case MethodD:
		text = x86DebugRegs[reg]
	case MethodT:
		text = x86TestRegs[reg]
	case MethodS:
		if int(reg) >= len(x86SegmentOrder) {
			return res, &RegisterModeError{Size: 16, Extension: "segment"}
		}
		text, err = registerName(x86SegmentOrder[reg], 16, fileGeneral)
	case MethodP:
		text, err = registerName(RegisterID(reg), 64, fileMMX)
	case MethodN:
		text, err = registerName(RegisterID(rm), 64, fileMMX)
	case MethodV:
		text, err = registerName(RegisterID(reg), 128, fileXMM)
	case MethodU:
		text, err = registerName(RegisterID(rm), 128, fileXMM)
	case MethodEST:
		text = x87StackRegs[rm]
	case MethodE, MethodM, MethodQ, MethodW, MethodES:
		if mod == 3 {
			text, err = rmRegister(desc, rm, mode)
			break
		}
		var n int
		text, n, err = decodeMemory(buf, pos, mode, notation)
		res.shared += n
	default:
		return res, &OperandSizeError{Method: desc.Method, Tag: desc.Size}
	}
	if err != nil {
		return res, err
	}
	res.operand.Text = text
	return res, nil
}

func generalRegister(desc OperandDesc, id byte, mode modeConfig) (string, error) {
	width, ok := desc.Size.generalWidth(mode)
	if !ok {
		return "", &OperandSizeError{Method: desc.Method, Tag: desc.Size}
	}
	return registerName(RegisterID(id), width, fileGeneral)
}

// rmRegister names the register form (mod == 3) of a register-or-memory
// operand.
func rmRegister(desc OperandDesc, rm byte, mode modeConfig) (string, error) {
	switch desc.Method {
	case MethodM:
		return registerName(RegisterID(rm), mode.operandSize, fileGeneral)
	case MethodQ:
		return registerName(RegisterID(rm), 64, fileMMX)
	case MethodW:
		return registerName(RegisterID(rm), 128, fileXMM)
	case MethodES:
		return x87StackRegs[rm], nil
	}
	return generalRegister(desc, rm, mode)
}

// decodeMemory renders the memory form of the ModR/M byte at pos and
// returns the number of SIB and displacement bytes that follow it.
func decodeMemory(buf []byte, pos int, mode modeConfig, notation Notation) (string, int, error) {
	modrm := buf[pos]
	mod, rm := modRMMod(modrm), modRMRM(modrm)
	next := pos + 1

	var terms []string
	dispSize := 0

	if mode.addressSize == 16 {
		switch {
		case mod == 0 && rm == 6:
			dispSize = 2
		default:
			terms = append(terms, x86RegisterPairs[rm])
		}
	} else {
		switch {
		case rm == 4:
			sb := byteAt(buf, next)
			if sb == outOfRange {
				return "", 0, &TruncatedInstructionError{Offset: len(buf)}
			}
			next++
			sib := byte(sb)
			scale, index, base := sib>>6, (sib>>3)&7, sib&7
			if base == 5 && mod == 0 {
				dispSize = 4
			} else {
				terms = append(terms, x86Registers[base].r32)
			}
			if index != 4 {
				t := x86Registers[index].r32
				if scale != 0 {
					t = fmt.Sprintf("%s * %d", t, 1<<scale)
				}
				terms = append(terms, t)
			}
		case rm == 5 && mod == 0:
			dispSize = 4
		default:
			terms = append(terms, x86Registers[rm].r32)
		}
	}

	switch mod {
	case 1:
		dispSize = 1
	case 2:
		dispSize = mode.addressSize / 8
	}

	expr := strings.Join(terms, " + ")
	if dispSize > 0 {
		disp, err := readSigned(buf, next, dispSize)
		if err != nil {
			return "", 0, err
		}
		next += dispSize
		lit, err := formatNumber(disp, notation)
		if err != nil {
			return "", 0, err
		}
		if expr == "" {
			expr = lit
		} else {
			expr += " + " + lit
		}
	}
	return "[" + expr + "]", next - pos - 1, nil
}
