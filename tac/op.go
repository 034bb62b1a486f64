// Package tac defines the three-address code emitted by the compiler and
// consumed by machine-code backends.
//
// The instruction stream is linear: there are no explicit basic-block
// boundaries, only straight-line opcodes plus named-label jumps. A
// consuming backend performs its own label resolution and control-flow
// reconstruction before final code emission.
package tac

// Opcode indicates an operation to execute.
type Opcode string

const (
	// Execution
	Nop   Opcode = "nop"
	Print Opcode = "print"

	// Value movement
	Const Opcode = "const"
	Copy  Opcode = "copy"

	// Arithmetic and bitwise operations. Booleans are represented as the
	// integers 0 and 1, so And/Or double as the logical combining ops.
	Add Opcode = "add"
	Sub Opcode = "sub"
	Mul Opcode = "mul"
	Div Opcode = "div"
	Mod Opcode = "mod"
	And Opcode = "and"
	Or  Opcode = "or"
	Xor Opcode = "xor"
	Shl Opcode = "shl"
	Shr Opcode = "shr"
	Neg Opcode = "neg"
	Not Opcode = "not"

	// Control flow. Conditional jumps branch on the classification of
	// their first argument: zero, nonzero, or its sign relative to zero.
	// Operands are signed 64-bit values; a backend that cannot guarantee
	// overflow-free subtraction must lower the preceding sub plus jump
	// pair to a true comparison.
	Label Opcode = "label"
	Jmp   Opcode = "jmp"
	Jz    Opcode = "jz"
	Jnz   Opcode = "jnz"
	Jl    Opcode = "jl"
	Jle   Opcode = "jle"
	Jg    Opcode = "jg"
	Jge   Opcode = "jge"
)
