// x86_matcher.go - Opcode matcher for the IA-32 disassembler

package main

// modeConfig is the operand/address size state of one instruction. A new
// value is built for every decode and passed down explicitly.
type modeConfig struct {
	operandSize int
	addressSize int
}

func defaultMode() modeConfig {
	return modeConfig{operandSize: 32, addressSize: 32}
}

func modRMMod(b byte) byte { return b >> 6 }
func modRMReg(b byte) byte { return (b >> 3) & 7 }
func modRMRM(b byte) byte  { return b & 7 }

type seqMatch uint8

const (
	seqMismatch seqMatch = iota
	seqMatched
	seqTruncated
)

// matchSequence compares an entry against the bytes at start, including
// the ModR/M reg check for entries with an opcode extension.
func matchSequence(e *OpcodeEntry, buf []byte, start int) seqMatch {
	last := len(e.Seq) - 1
	for j, want := range e.Seq {
		got := byteAt(buf, start+j)
		if got == outOfRange {
			return seqTruncated
		}
		if byte(got) == want {
			continue
		}
		if j == last && e.isRegisterPattern() && byte(got)&0xF8 == want {
			continue
		}
		return seqMismatch
	}
	if e.HasExt && !e.extInSequence() {
		modrm := byteAt(buf, start+len(e.Seq))
		if modrm == outOfRange {
			return seqTruncated
		}
		if modRMReg(byte(modrm)) != e.Ext {
			return seqMismatch
		}
	}
	return seqMatched
}

// findOpcode returns the index of the best entry for the bytes at start,
// or -1. Longer sequences win; among equal lengths the first declared
// entry wins unless it is a register pattern and a later one is not.
func findOpcode(buf []byte, start int) (best int, truncated bool) {
	best = -1
	for i := range x86Opcodes {
		e := &x86Opcodes[i]
		if best >= 0 {
			cur := &x86Opcodes[best]
			if len(e.Seq) < len(cur.Seq) {
				continue
			}
			if len(e.Seq) == len(cur.Seq) && (!cur.isRegisterPattern() || e.isRegisterPattern()) {
				continue
			}
		}
		switch matchSequence(e, buf, start) {
		case seqMatched:
			best = i
		case seqTruncated:
			truncated = true
		}
	}
	return best, truncated
}

// matchOpcode resolves the instruction following the scanned prefixes at
// offset. Prefixes consumed by the instruction are merged into the
// returned clone and removed from the returned prefix list.
func matchOpcode(buf []byte, offset int, prefixes []byte) (OpcodeEntry, []byte, modeConfig, error) {
	mode := defaultMode()
	start := offset + len(prefixes)

	best, truncated := findOpcode(buf, start)
	if best < 0 {
		if truncated || byteAt(buf, start) == outOfRange {
			return OpcodeEntry{}, prefixes, mode, &TruncatedInstructionError{Offset: len(buf)}
		}
		return OpcodeEntry{}, prefixes, mode, &UnknownOpcodeError{Byte: buf[start], Offset: start}
	}

	entry := x86Opcodes[best].clone()
	remaining := append([]byte(nil), prefixes...)

	for _, b := range modeOverridePrefixes {
		if !hasPrefix(remaining, b) {
			continue
		}
		p := x86Prefixes[b]
		applyOverride(&entry, &mode, PrefixOverride{
			Prefix:      b,
			Mnemonic:    p.Mnemonic,
			OperandSize: p.OperandSize,
			AddressSize: p.AddressSize,
		})
		remaining = removePrefix(remaining, b)
	}
	for _, o := range entry.Prefixes {
		if !hasPrefix(remaining, o.Prefix) && !hasPrefix(prefixes, o.Prefix) {
			continue
		}
		applyOverride(&entry, &mode, o)
		remaining = removePrefix(remaining, o.Prefix)
	}
	return entry, remaining, mode, nil
}

func applyOverride(e *OpcodeEntry, mode *modeConfig, o PrefixOverride) {
	if o.Mnemonic != "" {
		e.Mnemonic = o.Mnemonic
	}
	if o.OperandSize != 0 {
		mode.operandSize = o.OperandSize
	}
	if o.AddressSize != 0 {
		mode.addressSize = o.AddressSize
	}
}
