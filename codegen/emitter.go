package codegen

import (
	"github.com/bxlang/bx/symtab"
	"github.com/bxlang/bx/tac"
)

// fragment is the result of lowering one expression: the temporary that
// holds its value, and (in the bottom-up discipline) the local list of
// instructions that compute it, pending commitment to the shared stream.
type fragment struct {
	temp string
	code []tac.Instruction
}

// emitter isolates the difference between the two lowering disciplines.
// The lowering driver is written once against this interface; only where
// instructions accumulate changes.
//
// Top-down: every instruction goes straight onto the shared sequence, so
// fragments carry only the value temporary.
//
// Bottom-up: each expression visit collects its instructions in its own
// fragment; parents adopt child fragments in evaluation order before
// appending their own instruction, and statements commit the assembled
// list. Each subtree's list is independently inspectable before
// commitment, which is the groundwork for a later peephole or scheduling
// pass.
type emitter interface {
	// push adds an instruction produced by the current node.
	push(f *fragment, ins tac.Instruction)

	// merge adopts a child fragment's pending instructions.
	merge(dst, child *fragment)

	// flush commits a fragment's pending instructions to the shared
	// sequence.
	flush(f *fragment)

	// read returns a temporary holding the variable's current value.
	read(f *fragment, sym *symtab.Symbol) string
}

type topDownEmitter struct {
	c *Compiler
}

func (e *topDownEmitter) push(f *fragment, ins tac.Instruction) {
	e.c.out = append(e.c.out, ins)
}

func (e *topDownEmitter) merge(dst, child *fragment) {
	// Children already emitted directly to the shared sequence.
}

func (e *topDownEmitter) flush(f *fragment) {
	// Nothing pending: push wrote to the shared sequence.
}

func (e *topDownEmitter) read(f *fragment, sym *symtab.Symbol) string {
	return sym.Temp
}

type bottomUpEmitter struct {
	c *Compiler
}

func (e *bottomUpEmitter) push(f *fragment, ins tac.Instruction) {
	f.code = append(f.code, ins)
}

func (e *bottomUpEmitter) merge(dst, child *fragment) {
	dst.code = append(dst.code, child.code...)
}

func (e *bottomUpEmitter) flush(f *fragment) {
	e.c.out = append(e.c.out, f.code...)
	f.code = nil
}

// read copies the variable into a fresh temporary so that every
// expression visit yields at least one instruction of its own.
func (e *bottomUpEmitter) read(f *fragment, sym *symtab.Symbol) string {
	temp := e.c.newTemp()
	e.push(f, tac.Instruction{
		Opcode: tac.Copy,
		Args:   []tac.Operand{tac.Temp(sym.Temp)},
		Result: temp,
	})
	return temp
}
