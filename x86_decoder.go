// x86_decoder.go - IA-32 instruction decoder API

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

// Notation selects how numbers and instructions are rendered.
type Notation string

const (
	NotationINT Notation = "INT"
	NotationATT Notation = "AT&T"
)

func (n Notation) valid() bool {
	return n == NotationINT || n == NotationATT
}

// DecoderConfig configures a Decoder. The zero value selects INT notation.
type DecoderConfig struct {
	Notation Notation
}

// Decoder decodes 16/32-bit x86 machine code. It holds no per-call state
// and may be shared between goroutines.
type Decoder struct {
	notation Notation
}

func NewDecoder(cfg DecoderConfig) *Decoder {
	n := cfg.Notation
	if n == "" {
		n = NotationINT
	}
	return &Decoder{notation: n}
}

func (d *Decoder) Notation() Notation { return d.notation }

// DecodedInstruction is the result of decoding one instruction. Bytes
// aliases nothing in the input buffer.
type DecodedInstruction struct {
	Offset    int
	Length    int
	Bytes     []byte
	Prefixes  []Prefix
	Operation OpcodeEntry
	Operands  []Operand
}

// DecodeInstruction decodes the instruction starting at offset.
func (d *Decoder) DecodeInstruction(buf []byte, offset int) (*DecodedInstruction, error) {
	if !d.notation.valid() {
		return nil, &InvalidNotationError{Notation: d.notation}
	}
	if offset < 0 || offset >= len(buf) {
		return nil, &TruncatedInstructionError{Offset: offset}
	}

	return d.decodeAt(buf, offset, scanPrefixes(buf, offset))
}

// decodeStandalone decodes the byte at offset as an opcode even when it
// is also a prefix, for callers recovering from a failed decode of a
// prefixed instruction (a lone FWAIT or segment override).
func (d *Decoder) decodeStandalone(buf []byte, offset int) (*DecodedInstruction, error) {
	if !d.notation.valid() {
		return nil, &InvalidNotationError{Notation: d.notation}
	}
	if offset < 0 || offset >= len(buf) {
		return nil, &TruncatedInstructionError{Offset: offset}
	}
	if !isPrefix(int(buf[offset])) {
		return nil, &UnknownOpcodeError{Byte: buf[offset], Offset: offset}
	}
	return d.decodeAt(buf, offset, nil)
}

func (d *Decoder) decodeAt(buf []byte, offset int, prefixes []byte) (*DecodedInstruction, error) {
	entry, remaining, mode, err := matchOpcode(buf, offset, prefixes)
	if err != nil {
		return nil, err
	}

	opEnd := offset + len(prefixes) + len(entry.Seq)
	operands, operandLen, err := decodeOperands(buf, opEnd, &entry, mode, d.notation)
	if err != nil {
		return nil, err
	}

	length := opEnd - offset + operandLen
	return &DecodedInstruction{
		Offset:    offset,
		Length:    length,
		Bytes:     append([]byte(nil), buf[offset:offset+length]...),
		Prefixes:  prefixRecords(remaining),
		Operation: entry,
		Operands:  operands,
	}, nil
}

// decodeOperands decodes the ModR/M family first, then the operands with
// bytes of their own in declaration order after the shared region.
func decodeOperands(buf []byte, opEnd int, entry *OpcodeEntry, mode modeConfig, notation Notation) ([]Operand, int, error) {
	if len(entry.Operands) == 0 && !entry.HasExt {
		return nil, 0, nil
	}
	operands := make([]Operand, len(entry.Operands))

	shared := 0
	if entry.HasExt && !entry.extInSequence() {
		shared = 1
	}
	for i, desc := range entry.Operands {
		if desc.Method.ownsBytes() {
			continue
		}
		res, err := decodeOperand(buf, opEnd, 0, entry, desc, mode, notation)
		if err != nil {
			return nil, 0, err
		}
		operands[i] = res.operand
		shared = max(shared, res.shared)
	}

	own := opEnd + shared
	ownLen := 0
	for i, desc := range entry.Operands {
		if !desc.Method.ownsBytes() {
			continue
		}
		res, err := decodeOperand(buf, opEnd, own+ownLen, entry, desc, mode, notation)
		if err != nil {
			return nil, 0, err
		}
		operands[i] = res.operand
		ownLen += res.own
	}
	if len(operands) == 0 {
		operands = nil
	}
	return operands, shared + ownLen, nil
}

// DecodeAndFormat decodes the instruction at offset and renders it.
func (d *Decoder) DecodeAndFormat(buf []byte, offset int) (string, int, error) {
	inst, err := d.DecodeInstruction(buf, offset)
	if err != nil {
		return "", 0, err
	}
	text, err := formatInstruction(inst, d.notation)
	if err != nil {
		return "", 0, err
	}
	return text, inst.Length, nil
}

// Format renders an instruction in the decoder's notation.
func (d *Decoder) Format(inst *DecodedInstruction) (string, error) {
	return formatInstruction(inst, d.notation)
}
