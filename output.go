// output.go - Listing and image summary rendering

package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	ansiReset   = "\033[0m"
	ansiAddress = "\033[38;2;255;170;147m"
	ansiHex     = "\033[38;2;128;128;128m"
	ansiComment = "\033[38;2;120;200;120m"
	ansiData    = "\033[38;2;255;80;80m"
	hexColumn   = 24
)

// listingWriter renders listings to w. width 0 disables comment clipping.
type listingWriter struct {
	w     io.Writer
	color bool
	width int
}

func newListingWriter(w io.Writer, host *TerminalHost) *listingWriter {
	lw := &listingWriter{w: w}
	if host != nil {
		lw.color = host.color
		lw.width = host.width
	}
	return lw
}

func (lw *listingWriter) paint(code, s string) string {
	if !lw.color || s == "" {
		return s
	}
	return code + s + ansiReset
}

// lineComment joins the branch target and any annotations.
func lineComment(line DisassembledLine) string {
	var parts []string
	if line.IsBranch {
		parts = append(parts, fmt.Sprintf("-> 0x%08X", line.BranchTarget))
	}
	if line.Comment != "" {
		parts = append(parts, line.Comment)
	}
	return strings.Join(parts, "; ")
}

// formatLine renders ADDRESS  HEX  TEXT  ; comment. The comment is cut to
// keep the line inside the writer's width.
func (lw *listingWriter) formatLine(line DisassembledLine) string {
	addr := fmt.Sprintf("%08X", line.Address)
	hex := fmt.Sprintf("%-*s", hexColumn, line.HexBytes)
	plain := addr + "  " + hex + "  " + line.Mnemonic

	comment := lineComment(line)
	if comment != "" {
		if lw.width > 0 {
			room := lw.width - len(plain) - 4
			if room < 1 {
				comment = ""
			} else if len(comment) > room {
				comment = comment[:room]
			}
		}
	}

	text := line.Mnemonic
	if isDataLine(&line) {
		text = lw.paint(ansiData, text)
	}
	out := lw.paint(ansiAddress, addr) + "  " + lw.paint(ansiHex, hex) + "  " + text
	if comment != "" {
		out += "  " + lw.paint(ansiComment, "; "+comment)
	}
	return strings.TrimRight(out, " ")
}

func (lw *listingWriter) writeSection(s sectionListing) error {
	if _, err := fmt.Fprintf(lw.w, "\n%s:\n", s.Name); err != nil {
		return err
	}
	for _, line := range s.Lines {
		if _, err := fmt.Fprintln(lw.w, lw.formatLine(line)); err != nil {
			return err
		}
	}
	return nil
}

// writeSummary prints the machine, image base, entry point and section
// table of img.
func (lw *listingWriter) writeSummary(img *peImage, source string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", source)
	fmt.Fprintf(&b, "  Machine:     0x%04X\n", img.Machine)
	fmt.Fprintf(&b, "  Image base:  0x%08X\n", img.ImageBase)
	fmt.Fprintf(&b, "  Entry point: 0x%08X\n", img.EntryPoint)
	fmt.Fprintf(&b, "  Sections:\n")
	for _, s := range img.Table {
		fmt.Fprintf(&b, "    %-8s  VA 0x%08X  VSize 0x%08X  Raw 0x%08X  Flags 0x%08X\n",
			s.Name, s.VirtualAddress, s.VirtualSize, s.RawSize, s.Characteristics)
	}
	_, err := io.WriteString(lw.w, b.String())
	return err
}

// renderListing renders every section without colour, for the clipboard.
func renderListing(listings []sectionListing) string {
	var b strings.Builder
	lw := &listingWriter{w: &b}
	for _, s := range listings {
		_ = lw.writeSection(s)
	}
	return b.String()
}
