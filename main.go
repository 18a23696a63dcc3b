// main.go - Command line entry point for the disassembler

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
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
)

func boilerPlate(w io.Writer) {
	fmt.Fprintln(w, "\033[38;2;255;20;147mdisassemblr\033[0m - 16/32-bit x86 disassembler")
	fmt.Fprintln(w, "(c) 2024 - 2026 Zayn Otley")
	fmt.Fprintln(w, "https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Fprintln(w, "License: GPLv3 or later")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one disassembly and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "disassemblr: %v\n", err)
		return 1
	}
	if cfg.ShowVersion {
		boilerPlate(stdout)
		fmt.Fprintln(stdout)
		printFeatures(stdout)
		return 0
	}
	if err := disassembleFile(ctx, cfg, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "disassemblr: %v\n", err)
		return 1
	}
	return 0
}

func loadImage(cfg *appConfig, stderr io.Writer) (*peImage, error) {
	if !cfg.Raw {
		return loadPEFile(cfg.Input)
	}
	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return nil, err
	}
	if isPEData(data) {
		fmt.Fprintf(stderr, "disassemblr: warning: %s looks like a PE image, listing it as flat code\n", cfg.Input)
	}
	return loadRawImage(data, cfg.Base), nil
}

func disassembleFile(ctx context.Context, cfg *appConfig, stdout, stderr io.Writer) error {
	img, err := loadImage(cfg, stderr)
	if err != nil {
		return err
	}

	var sections []codeSection
	for _, s := range img.Sections {
		if cfg.wantSection(s.Name) {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return fmt.Errorf("%s: no code section matches %v", cfg.Input, cfg.Sections)
	}

	notation := Notation(cfg.Notation)
	if notation == NotationATT {
		fmt.Fprintln(stderr, "disassemblr: warning: AT&T instruction text is not implemented, lines will be empty")
	}
	dec := NewDecoder(DecoderConfig{Notation: notation})

	listings, err := disassembleSections(ctx, dec, sections, listingOptions{Limit: cfg.Count})
	if err != nil {
		return err
	}

	if cfg.Verify {
		for i := range listings {
			n := verifyLengths(listings[i].Lines, sections[i].Data, sections[i].Address)
			if n > 0 {
				fmt.Fprintf(stderr, "disassemblr: %s: %d length mismatches against x86asm\n", listings[i].Name, n)
			}
		}
	}

	if cfg.Script != "" {
		a, err := newAnnotatorFile(cfg.Script)
		if err != nil {
			return err
		}
		defer a.Close()
		for i := range listings {
			if err := a.annotateAll(listings[i].Lines); err != nil {
				return err
			}
		}
	}

	var host *TerminalHost
	if f, ok := stdout.(*os.File); ok {
		host = NewTerminalHost(f, colorMode(cfg.Color))
	} else if colorMode(cfg.Color) == colorAlways {
		host = &TerminalHost{color: true}
	}
	lw := newListingWriter(stdout, host)
	if err := lw.writeSummary(img, cfg.Input); err != nil {
		return err
	}
	for _, l := range listings {
		if err := lw.writeSection(l); err != nil {
			return err
		}
		if l.Bad > 0 {
			fmt.Fprintf(stderr, "disassemblr: %s: %d undecodable bytes\n", l.Name, l.Bad)
		}
	}

	if cfg.Clipboard {
		if err := copyToClipboard(renderListing(listings)); err != nil {
			fmt.Fprintf(stderr, "disassemblr: warning: %v\n", err)
		}
	}
	return nil
}
