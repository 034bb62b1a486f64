package tac

import (
	"fmt"
	"strings"
)

// OperandKind distinguishes the two operand forms.
type OperandKind int

const (
	// NameOperand is a reference by name: a temporary or a label.
	NameOperand OperandKind = iota

	// LiteralOperand is an immediate signed 64-bit integer.
	LiteralOperand
)

// Operand is one argument of an instruction: either a name (temporary or
// label) or an integer literal.
type Operand struct {
	Kind  OperandKind
	Name  string
	Value int64
}

// Temp returns a name operand referencing a temporary.
func Temp(name string) Operand {
	return Operand{Kind: NameOperand, Name: name}
}

// Lbl returns a name operand referencing a label.
func Lbl(name string) Operand {
	return Operand{Kind: NameOperand, Name: name}
}

// Lit returns a literal operand.
func Lit(value int64) Operand {
	return Operand{Kind: LiteralOperand, Value: value}
}

func (o Operand) String() string {
	if o.Kind == LiteralOperand {
		return fmt.Sprintf("%d", o.Value)
	}
	return o.Name
}

// Instruction is one three-address instruction: an opcode, its ordered
// arguments, and an optional result temporary (empty when the
// instruction produces no value).
type Instruction struct {
	Opcode Opcode
	Args   []Operand
	Result string
}

func (i Instruction) String() string {
	if i.Opcode == Label && len(i.Args) == 1 {
		return i.Args[0].Name + ":"
	}
	args := make([]string, 0, len(i.Args))
	for _, a := range i.Args {
		args = append(args, a.String())
	}
	if i.Result != "" {
		return fmt.Sprintf("%s = %s %s", i.Result, i.Opcode, strings.Join(args, ", "))
	}
	if len(args) == 0 {
		return string(i.Opcode)
	}
	return fmt.Sprintf("%s %s", i.Opcode, strings.Join(args, ", "))
}

// Procedure is a named, ordered instruction sequence.
type Procedure struct {
	Name string
	Body []Instruction
}

// NewProcedure returns a Procedure with a normalized body: an empty
// sequence becomes a single nop so backends can assume a non-empty body.
func NewProcedure(name string, body []Instruction) Procedure {
	if len(body) == 0 {
		body = []Instruction{{Opcode: Nop}}
	}
	return Procedure{Name: name, Body: body}
}

// String returns a human-readable disassembly of the procedure.
func (p Procedure) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", p.Name)
	for _, ins := range p.Body {
		if ins.Opcode == Label {
			fmt.Fprintf(&b, "%s\n", ins)
		} else {
			fmt.Fprintf(&b, "  %s\n", ins)
		}
	}
	return b.String()
}

// Program is the full output of one compilation unit. ID uniquely
// identifies the compilation that produced it.
type Program struct {
	ID    string
	Procs []Procedure
}

func (p *Program) String() string {
	var b strings.Builder
	for _, proc := range p.Procs {
		b.WriteString(proc.String())
	}
	return b.String()
}
