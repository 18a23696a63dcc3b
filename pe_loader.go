// pe_loader.go - PE32 image loader for the disassembler

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
	"bytes"
	"debug/pe"
	"errors"
	"fmt"
	"io"
	"os"
)

var errUnsupportedMachine = errors.New("unsupported machine")

// codeSection is a block of machine code and the address it loads at.
type codeSection struct {
	Name       string
	Address    uint64
	FileOffset uint32
	Data       []byte
}

// sectionHeader is one row of the image section table.
type sectionHeader struct {
	Name            string
	VirtualAddress  uint32
	VirtualSize     uint32
	RawSize         uint32
	Characteristics uint32
}

// peImage is the part of an executable the listing needs.
type peImage struct {
	Machine    uint16
	ImageBase  uint64
	EntryPoint uint64
	Table      []sectionHeader
	Sections   []codeSection
}

// loadPEFile opens path and loads its code sections.
func loadPEFile(path string) (*peImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := loadPESections(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// loadPESections parses an i386 PE image and collects its code sections.
func loadPESections(r io.ReaderAt) (*peImage, error) {
	f, err := pe.NewFile(r)
	if err != nil {
		return nil, fmt.Errorf("parse PE: %w", err)
	}
	defer f.Close()

	if f.Machine != pe.IMAGE_FILE_MACHINE_I386 {
		return nil, fmt.Errorf("%w 0x%04X, want i386 (0x014C)", errUnsupportedMachine, f.Machine)
	}
	oh, ok := f.OptionalHeader.(*pe.OptionalHeader32)
	if !ok {
		return nil, fmt.Errorf("parse PE: missing PE32 optional header")
	}

	img := &peImage{
		Machine:    f.Machine,
		ImageBase:  uint64(oh.ImageBase),
		EntryPoint: uint64(oh.ImageBase) + uint64(oh.AddressOfEntryPoint),
	}

	var code []*pe.Section
	for _, s := range f.Sections {
		img.Table = append(img.Table, sectionHeader{
			Name:            s.Name,
			VirtualAddress:  s.VirtualAddress,
			VirtualSize:     s.VirtualSize,
			RawSize:         s.Size,
			Characteristics: s.Characteristics,
		})
		if s.Characteristics&pe.IMAGE_SCN_CNT_CODE != 0 {
			code = append(code, s)
		}
	}
	if len(code) == 0 {
		if s := f.Section(".text"); s != nil {
			code = append(code, s)
		}
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("no code section")
	}

	for _, s := range code {
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("read section %s: %w", s.Name, err)
		}
		// Raw data is padded to the file alignment.
		if s.VirtualSize != 0 && int(s.VirtualSize) < len(data) {
			data = data[:s.VirtualSize]
		}
		img.Sections = append(img.Sections, codeSection{
			Name:       s.Name,
			Address:    img.ImageBase + uint64(s.VirtualAddress),
			FileOffset: s.Offset,
			Data:       data,
		})
	}
	return img, nil
}

// loadRawImage wraps a flat binary as a single code section at base.
func loadRawImage(data []byte, base uint64) *peImage {
	return &peImage{
		Machine:    pe.IMAGE_FILE_MACHINE_I386,
		ImageBase:  base,
		EntryPoint: base,
		Table: []sectionHeader{{
			Name:        "raw",
			VirtualSize: uint32(len(data)),
			RawSize:     uint32(len(data)),
		}},
		Sections: []codeSection{{Name: "raw", Address: base, Data: data}},
	}
}

// isPEData reports whether data starts with a DOS stub header.
func isPEData(data []byte) bool {
	return bytes.HasPrefix(data, []byte("MZ"))
}
