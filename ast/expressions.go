package ast

import (
	"strconv"

	"github.com/bxlang/bx/token"
)

// Var is an expression that reads a variable.
type Var struct {
	Name *Name
}

func (e *Var) exprNode() {}

func (e *Var) Pos() token.Position { return e.Name.Pos() }
func (e *Var) End() token.Position { return e.Name.End() }
func (e *Var) String() string      { return e.Name.String() }

// NumberLit is an integer literal. Value is the parsed signed 64-bit
// value; literals that do not fit are reported at parse time and kept
// with a best-effort value rather than aborting the parse.
type NumberLit struct {
	LitPos token.Position
	Lit    string
	Value  int64
}

func (e *NumberLit) exprNode() {}

func (e *NumberLit) Pos() token.Position { return e.LitPos }
func (e *NumberLit) End() token.Position { return advance(e.LitPos, len(e.Lit)) }
func (e *NumberLit) String() string      { return strconv.FormatInt(e.Value, 10) }

// BoolLit is a "true" or "false" literal.
type BoolLit struct {
	LitPos token.Position
	Value  bool
}

func (e *BoolLit) exprNode() {}

func (e *BoolLit) Pos() token.Position { return e.LitPos }

func (e *BoolLit) End() token.Position {
	return advance(e.LitPos, len(e.String()))
}

func (e *BoolLit) String() string {
	if e.Value {
		return "true"
	}
	return "false"
}

// Unary is a prefix operator expression.
type Unary struct {
	OpPos   token.Position
	Op      Op
	Operand Expr
}

func (e *Unary) exprNode() {}

func (e *Unary) Pos() token.Position { return e.OpPos }
func (e *Unary) End() token.Position { return e.Operand.End() }
func (e *Unary) String() string      { return e.Op.Symbol() + e.Operand.String() }

// Binary is an infix operator expression.
type Binary struct {
	Left  Expr
	OpPos token.Position
	Op    Op
	Right Expr
}

func (e *Binary) exprNode() {}

func (e *Binary) Pos() token.Position { return e.Left.Pos() }
func (e *Binary) End() token.Position { return e.Right.End() }

func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Op.Symbol() + " " + e.Right.String() + ")"
}
