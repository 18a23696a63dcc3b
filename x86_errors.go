// x86_errors.go - Decoder error types

package main

import "fmt"

// UnknownOpcodeError reports that no table entry matches at Offset.
type UnknownOpcodeError struct {
	Byte   byte
	Offset int
}

func (e *UnknownOpcodeError) Error() string {
	return fmt.Sprintf("unknown opcode 0x%02X at offset %d", e.Byte, e.Offset)
}

// OperandSizeError reports a size tag that the addressing method cannot use.
type OperandSizeError struct {
	Method AddrMethod
	Tag    SizeTag
}

func (e *OperandSizeError) Error() string {
	return fmt.Sprintf("unsupported operand size %q for addressing method %s", e.Tag.String(), e.Method)
}

// RegisterModeError reports a register width with no name in a register file.
type RegisterModeError struct {
	Size      int
	Extension string
}

func (e *RegisterModeError) Error() string {
	return fmt.Sprintf("no %d-bit register in the %s register file", e.Size, e.Extension)
}

// InvalidNotationError reports a notation other than INT or AT&T.
type InvalidNotationError struct {
	Notation Notation
}

func (e *InvalidNotationError) Error() string {
	return fmt.Sprintf("invalid notation %q", string(e.Notation))
}

// TruncatedInstructionError reports a read past the end of the buffer.
type TruncatedInstructionError struct {
	Offset int
}

func (e *TruncatedInstructionError) Error() string {
	return fmt.Sprintf("instruction truncated at offset %d", e.Offset)
}
