// listing_script.go - Lua annotation hook for listings

package main

import (
	"errors"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

var errNoAnnotate = errors.New("script does not define annotate(address, hex, text)")

// annotator runs a Lua script's annotate function over listing lines.
// An LState is not safe for concurrent use; call it from one goroutine.
type annotator struct {
	L  *lua.LState
	fn lua.LValue
}

func newAnnotatorFile(path string) (*annotator, error) {
	L := lua.NewState()
	if err := L.DoFile(path); err != nil {
		L.Close()
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return bindAnnotator(L)
}

func newAnnotatorString(src string) (*annotator, error) {
	L := lua.NewState()
	if err := L.DoString(src); err != nil {
		L.Close()
		return nil, fmt.Errorf("load script: %w", err)
	}
	return bindAnnotator(L)
}

func bindAnnotator(L *lua.LState) (*annotator, error) {
	fn := L.GetGlobal("annotate")
	if fn.Type() != lua.LTFunction {
		L.Close()
		return nil, errNoAnnotate
	}
	return &annotator{L: L, fn: fn}, nil
}

// annotate calls the script for one line. A string result becomes a
// comment; nil or any other type leaves the line alone.
func (a *annotator) annotate(line *DisassembledLine) error {
	err := a.L.CallByParam(lua.P{Fn: a.fn, NRet: 1, Protect: true},
		lua.LNumber(line.Address), lua.LString(line.HexBytes), lua.LString(line.Mnemonic))
	if err != nil {
		return fmt.Errorf("annotate 0x%08X: %w", line.Address, err)
	}
	ret := a.L.Get(-1)
	a.L.Pop(1)
	if s, ok := ret.(lua.LString); ok {
		appendComment(line, string(s))
	}
	return nil
}

func (a *annotator) annotateAll(lines []DisassembledLine) error {
	for i := range lines {
		if err := a.annotate(&lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (a *annotator) Close() {
	a.L.Close()
}
