package main

import (
	"os"

	"golang.org/x/term"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func (m colorMode) valid() bool {
	return m == colorAuto || m == colorAlways || m == colorNever
}

// TerminalHost describes the stream the listing is written to.
type TerminalHost struct {
	fd       int
	terminal bool
	color    bool
	width    int // 0 when unknown
}

// NewTerminalHost inspects f. Colour follows mode; auto enables it only
// when f is a terminal.
func NewTerminalHost(f *os.File, mode colorMode) *TerminalHost {
	h := &TerminalHost{fd: int(f.Fd())}
	h.terminal = term.IsTerminal(h.fd)
	if h.terminal {
		if w, _, err := term.GetSize(h.fd); err == nil && w > 0 {
			h.width = w
		}
	}
	switch mode {
	case colorAlways:
		h.color = true
	case colorAuto:
		h.color = h.terminal
	}
	return h
}
