package main

import (
	"bytes"
	"debug/pe"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testImageBase = 0x00400000

// buildPE32 assembles a minimal PE32 image with one section holding code.
func buildPE32(t *testing.T, machine uint16, name string, characteristics uint32, code []byte) []byte {
	t.Helper()
	const (
		peOffset   = 0x40
		dataOffset = 0x200
		sectionRVA = 0x1000
	)

	var buf bytes.Buffer
	dos := make([]byte, peOffset)
	copy(dos, "MZ")
	binary.LittleEndian.PutUint32(dos[0x3C:], peOffset)
	buf.Write(dos)
	buf.WriteString("PE\x00\x00")

	var oh pe.OptionalHeader32
	fh := pe.FileHeader{
		Machine:              machine,
		NumberOfSections:     1,
		SizeOfOptionalHeader: uint16(binary.Size(oh)),
		Characteristics:      0x0102,
	}
	oh.Magic = 0x10B
	oh.AddressOfEntryPoint = sectionRVA + 2
	oh.ImageBase = testImageBase
	oh.SectionAlignment = 0x1000
	oh.FileAlignment = 0x200
	oh.SizeOfImage = 0x2000
	oh.SizeOfHeaders = dataOffset
	oh.Subsystem = 3
	oh.NumberOfRvaAndSizes = 16

	var sh pe.SectionHeader32
	copy(sh.Name[:], name)
	sh.VirtualSize = uint32(len(code))
	sh.VirtualAddress = sectionRVA
	sh.SizeOfRawData = 0x200
	sh.PointerToRawData = dataOffset
	sh.Characteristics = characteristics

	for _, v := range []any{fh, oh, sh} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			t.Fatal(err)
		}
	}
	buf.Write(make([]byte, dataOffset-buf.Len()))
	raw := make([]byte, 0x200)
	copy(raw, code)
	buf.Write(raw)
	return buf.Bytes()
}

func TestLoadPESections(t *testing.T) {
	code := []byte{0x55, 0x8B, 0xEC, 0xC3}
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_CNT_CODE|pe.IMAGE_SCN_MEM_EXECUTE, code)

	img, err := loadPESections(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if img.ImageBase != testImageBase || img.EntryPoint != testImageBase+0x1002 {
		t.Errorf("base/entry = %#x/%#x", img.ImageBase, img.EntryPoint)
	}
	if len(img.Table) != 1 || img.Table[0].Name != ".text" {
		t.Fatalf("section table = %+v", img.Table)
	}
	if len(img.Sections) != 1 {
		t.Fatalf("got %d code sections, want 1", len(img.Sections))
	}
	s := img.Sections[0]
	if s.Address != testImageBase+0x1000 || s.FileOffset != 0x200 {
		t.Errorf("address/offset = %#x/%#x", s.Address, s.FileOffset)
	}
	if !bytes.Equal(s.Data, code) {
		t.Errorf("data = % X, want % X", s.Data, code)
	}
}

func TestLoadPESectionsTextFallback(t *testing.T) {
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_MEM_READ, []byte{0xC3})
	img, err := loadPESections(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(img.Sections) != 1 || img.Sections[0].Name != ".text" {
		t.Errorf("sections = %+v", img.Sections)
	}

	data = buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".data", pe.IMAGE_SCN_MEM_READ, []byte{0xC3})
	if _, err := loadPESections(bytes.NewReader(data)); err == nil {
		t.Error("image without code loaded")
	}
}

func TestLoadPESectionsRejectsMachine(t *testing.T) {
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_AMD64, ".text", pe.IMAGE_SCN_CNT_CODE, []byte{0xC3})
	_, err := loadPESections(bytes.NewReader(data))
	if !errors.Is(err, errUnsupportedMachine) {
		t.Errorf("err = %v, want errUnsupportedMachine", err)
	}
}

func TestLoadPESectionsGarbage(t *testing.T) {
	if _, err := loadPESections(bytes.NewReader([]byte("not an executable"))); err == nil {
		t.Error("garbage parsed as PE")
	}
}

func TestLoadPEFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.exe")
	data := buildPE32(t, pe.IMAGE_FILE_MACHINE_I386, ".text", pe.IMAGE_SCN_CNT_CODE, []byte{0x90, 0xC3})
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	img, err := loadPEFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Sections[0].Data, []byte{0x90, 0xC3}) {
		t.Errorf("data = % X", img.Sections[0].Data)
	}
	if !isPEData(data) {
		t.Error("isPEData = false for a PE image")
	}
}

func TestLoadRawImage(t *testing.T) {
	img := loadRawImage([]byte{0x90, 0xC3}, 0x7C00)
	if len(img.Sections) != 1 || img.Sections[0].Address != 0x7C00 || len(img.Sections[0].Data) != 2 {
		t.Errorf("raw image = %+v", img)
	}
	if isPEData([]byte{0x90, 0xC3}) {
		t.Error("isPEData = true for flat code")
	}
}
