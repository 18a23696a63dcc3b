// gen-opcodes - Generate the x86 opcode table from its JSON description
//
// Usage: go run ./cmd/gen-opcodes -in data/x86_opcodes.json -out x86_opcode_table_gen.go

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	in := flag.String("in", "data/x86_opcodes.json", "Opcode table JSON")
	out := flag.String("out", "x86_opcode_table_gen.go", "Generated Go file")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gen-opcodes [-in table.json] [-out table_gen.go]\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	src, err := os.ReadFile(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	code, err := generate(src, filepath.ToSlash(*in))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, code, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", *out, err)
		os.Exit(1)
	}
}
