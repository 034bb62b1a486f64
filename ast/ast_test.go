package ast

import (
	"testing"

	"github.com/bxlang/bx/token"
	"github.com/stretchr/testify/require"
)

func pos(char, line, column int) token.Position {
	return token.Position{Char: char, Line: line, Column: column}
}

func TestStatementStrings(t *testing.T) {
	decl := &VarDecl{
		Name:     &Name{Value: "x"},
		Value:    &NumberLit{Lit: "42", Value: 42},
		DeclType: "int",
	}
	require.Equal(t, "var x = 42 : int;", decl.String())

	assign := &Assign{
		Name: &Name{Value: "x"},
		Value: &Binary{
			Left:  &Var{Name: &Name{Value: "x"}},
			Op:    OpAdd,
			Right: &NumberLit{Lit: "1", Value: 1},
		},
	}
	require.Equal(t, "x = (x + 1);", assign.String())

	print := &Print{Value: &Var{Name: &Name{Value: "x"}}}
	require.Equal(t, "print(x);", print.String())

	loop := &While{
		Cond: &BoolLit{Value: true},
		Body: &Block{Stmts: []Stmt{&Break{}}},
	}
	require.Equal(t, "while (true) { break; }", loop.String())

	cond := &If{
		Cond:        &BoolLit{Value: false},
		Consequence: &Block{Stmts: []Stmt{&Continue{}}},
		Alternative: &Block{},
	}
	require.Equal(t, "if (false) { continue; } else { }", cond.String())
}

func TestExpressionStrings(t *testing.T) {
	neg := &Unary{Op: OpNeg, Operand: &NumberLit{Lit: "5", Value: 5}}
	require.Equal(t, "-5", neg.String())

	not := &Unary{Op: OpNot, Operand: &BoolLit{Value: true}}
	require.Equal(t, "!true", not.String())

	cmp := &Binary{
		Left:  &Var{Name: &Name{Value: "a"}},
		Op:    OpLe,
		Right: &Var{Name: &Name{Value: "b"}},
	}
	require.Equal(t, "(a <= b)", cmp.String())
}

func TestOpSymbols(t *testing.T) {
	tests := []struct {
		op     Op
		symbol string
	}{
		{OpAdd, "+"},
		{OpMod, "%"},
		{OpShl, "<<"},
		{OpNe, "!="},
		{OpAnd, "&&"},
		{OpNeg, "-"},
		{OpBitNot, "~"},
		{OpNot, "!"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.symbol, tt.op.Symbol(), string(tt.op))
	}
}

func TestNodeRanges(t *testing.T) {
	// var x = 1;  (with ":" type elided from positions for brevity)
	decl := &VarDecl{
		VarPos:   pos(0, 0, 0),
		Name:     &Name{NamePos: pos(4, 0, 4), Value: "x"},
		Value:    &NumberLit{LitPos: pos(8, 0, 8), Lit: "1", Value: 1},
		DeclType: "int",
		Semi:     pos(15, 0, 15),
	}
	require.Equal(t, pos(0, 0, 0), decl.Pos())
	// End is one past the terminating semicolon.
	require.Equal(t, pos(16, 0, 16), decl.End())

	require.Equal(t, pos(4, 0, 4), decl.Name.Pos())
	require.Equal(t, pos(5, 0, 5), decl.Name.End())

	lit := decl.Value.(*NumberLit)
	require.Equal(t, pos(8, 0, 8), lit.Pos())
	require.Equal(t, pos(9, 0, 9), lit.End())

	truthy := &BoolLit{LitPos: pos(0, 2, 0), Value: false}
	require.Equal(t, pos(5, 2, 5), truthy.End())

	bin := &Binary{
		Left:  &NumberLit{LitPos: pos(0, 0, 0), Lit: "1", Value: 1},
		OpPos: pos(2, 0, 2),
		Op:    OpAdd,
		Right: &NumberLit{LitPos: pos(4, 0, 4), Lit: "23", Value: 23},
	}
	require.Equal(t, pos(0, 0, 0), bin.Pos())
	require.Equal(t, pos(6, 0, 6), bin.End())

	un := &Unary{OpPos: pos(0, 0, 0), Op: OpNeg, Operand: bin.Right}
	require.Equal(t, pos(0, 0, 0), un.Pos())
	require.Equal(t, bin.Right.End(), un.End())
}
