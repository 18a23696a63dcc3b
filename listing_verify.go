// listing_verify.go - Length cross-check against golang.org/x/arch

package main

import (
	"fmt"
	"strings"

	"golang.org/x/arch/x86/x86asm"
)

// verifyLengths re-decodes each line of a section listing with x86asm in
// 32-bit mode and comments every line whose length disagrees. It returns
// the number of disagreeing lines. db lines are skipped.
func verifyLengths(lines []DisassembledLine, code []byte, base uint64) int {
	mismatches := 0
	for i := range lines {
		line := &lines[i]
		if line.Address < base {
			continue
		}
		off := line.Address - base
		if off >= uint64(len(code)) || isDataLine(line) {
			continue
		}
		inst, err := x86asm.Decode(code[off:], 32)
		if err != nil {
			appendComment(line, fmt.Sprintf("x86asm: %v", err))
			mismatches++
			continue
		}
		if inst.Len != line.Size {
			appendComment(line, fmt.Sprintf("x86asm: len %d (%s)", inst.Len, inst.Op))
			mismatches++
		}
	}
	return mismatches
}

func isDataLine(line *DisassembledLine) bool {
	return line.Size == 1 && strings.HasPrefix(line.Mnemonic, "db ")
}
