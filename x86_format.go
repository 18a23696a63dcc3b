// x86_format.go - Instruction text formatter

package main

import (
	"fmt"
	"strings"
)

// formatInstruction renders prefixes, mnemonic and operands of a decoded
// instruction. Only INT notation has a full-instruction form; AT&T
// renders as the empty string until operand ordering is defined for it.
func formatInstruction(inst *DecodedInstruction, notation Notation) (string, error) {
	switch notation {
	case NotationINT:
	case NotationATT:
		return "", nil
	default:
		return "", &InvalidNotationError{Notation: notation}
	}

	var sb strings.Builder
	for _, p := range inst.Prefixes {
		if p.Mnemonic == "" {
			continue
		}
		sb.WriteString(p.Mnemonic)
		sb.WriteByte(' ')
	}
	sb.WriteString(inst.Operation.Mnemonic)

	for i, op := range inst.Operands {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		if op.Raw {
			fmt.Fprintf(&sb, "0x%xh", op.Value)
			continue
		}
		sb.WriteString(op.Text)
	}
	return sb.String(), nil
}
