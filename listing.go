// listing.go - Section listing built on the IA-32 decoder

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

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// DisassembledLine represents one disassembled instruction.
type DisassembledLine struct {
	Address      uint64
	HexBytes     string
	Mnemonic     string
	Size         int
	IsBranch     bool
	BranchTarget uint64
	Comment      string
}

// sectionListing is the decoded form of one code section.
type sectionListing struct {
	Name  string
	Lines []DisassembledLine
	Bad   int // bytes emitted as db
}

// listingOptions bound a section walk. Zero From/To cover the whole section;
// Limit 0 means no instruction limit.
type listingOptions struct {
	From, To uint64
	Limit    int
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

// disassembleRange decodes code, loaded at base, between the absolute
// addresses from and to. Undecodable bytes become single-byte db lines.
func disassembleRange(ctx context.Context, dec *Decoder, code []byte, base, from, to uint64, limit int) ([]DisassembledLine, int, error) {
	start, end := 0, len(code)
	if from > base {
		start = int(min(from-base, uint64(len(code))))
	}
	if to != 0 {
		switch {
		case to <= base:
			end = 0
		case to-base < uint64(len(code)):
			end = int(to - base)
		}
	}

	var lines []DisassembledLine
	bad := 0
	for off := start; off < end; {
		if limit > 0 && len(lines) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return lines, bad, err
		}

		addr := base + uint64(off)
		inst, err := dec.DecodeInstruction(code[:end], off)
		if err != nil {
			// A prefix with nothing valid after it may be an instruction
			// of its own, such as FWAIT.
			inst, err = dec.decodeStandalone(code[:end], off)
		}
		if err != nil {
			var notation *InvalidNotationError
			if errors.As(err, &notation) {
				return nil, bad, err
			}
			lines = append(lines, DisassembledLine{
				Address:  addr,
				HexBytes: fmt.Sprintf("%02X", code[off]),
				Mnemonic: dataByte(code[off]),
				Size:     1,
			})
			bad++
			off++
			continue
		}

		text, err := dec.Format(inst)
		if err != nil {
			return nil, bad, err
		}
		line := DisassembledLine{
			Address:  addr,
			HexBytes: hexBytes(inst.Bytes),
			Mnemonic: text,
			Size:     inst.Length,
		}
		// Relative branches
		for i, desc := range inst.Operation.Operands {
			if desc.Method == MethodJ {
				line.IsBranch = true
				line.BranchTarget = uint64(int64(addr)+int64(inst.Length)+inst.Operands[i].Value) & 0xFFFFFFFF
				break
			}
		}
		lines = append(lines, line)
		off += inst.Length
	}
	return lines, bad, nil
}

// disassembleSections lists each section on its own goroutine. The result
// keeps the order of sections.
func disassembleSections(ctx context.Context, dec *Decoder, sections []codeSection, opts listingOptions) ([]sectionListing, error) {
	out := make([]sectionListing, len(sections))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, s := range sections {
		i, s := i, s
		g.Go(func() error {
			lines, bad, err := disassembleRange(ctx, dec, s.Data, s.Address, opts.From, opts.To, opts.Limit)
			if err != nil {
				return fmt.Errorf("section %s: %w", s.Name, err)
			}
			out[i] = sectionListing{Name: s.Name, Lines: lines, Bad: bad}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// dataByte renders a byte the decoder could not place.
func dataByte(b byte) string {
	v, _ := formatNumber(int64(b), NotationINT)
	return "db " + v
}

func appendComment(line *DisassembledLine, comment string) {
	if comment == "" {
		return
	}
	if line.Comment == "" {
		line.Comment = comment
		return
	}
	line.Comment += "; " + comment
}
