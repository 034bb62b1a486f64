package ast

import (
	"bytes"

	"github.com/bxlang/bx/token"
)

// VarDecl is a statement that declares a new variable with an explicit
// type annotation and an initial value: "var x = expr : int;".
type VarDecl struct {
	VarPos   token.Position // position of the "var" keyword
	Name     *Name
	Value    Expr
	DeclType string         // "int" or "bool"
	Semi     token.Position // position of the terminating ";"
}

func (s *VarDecl) stmtNode() {}

func (s *VarDecl) Pos() token.Position { return s.VarPos }
func (s *VarDecl) End() token.Position { return advance(s.Semi, 1) }

func (s *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	out.WriteString(s.Name.String())
	out.WriteString(" = ")
	out.WriteString(s.Value.String())
	out.WriteString(" : ")
	out.WriteString(s.DeclType)
	out.WriteString(";")
	return out.String()
}

// Assign is a statement that stores a new value into a declared variable.
type Assign struct {
	Name  *Name
	Value Expr
	Semi  token.Position
}

func (s *Assign) stmtNode() {}

func (s *Assign) Pos() token.Position { return s.Name.Pos() }
func (s *Assign) End() token.Position { return advance(s.Semi, 1) }

func (s *Assign) String() string {
	return s.Name.String() + " = " + s.Value.String() + ";"
}

// Print is a statement that prints an integer expression.
type Print struct {
	PrintPos token.Position
	Value    Expr
	Semi     token.Position
}

func (s *Print) stmtNode() {}

func (s *Print) Pos() token.Position { return s.PrintPos }
func (s *Print) End() token.Position { return advance(s.Semi, 1) }

func (s *Print) String() string {
	return "print(" + s.Value.String() + ");"
}

// Block is a brace-delimited, possibly empty list of statements. A block
// introduces its own lexical scope.
type Block struct {
	Lbrace token.Position
	Stmts  []Stmt
	Rbrace token.Position
}

func (s *Block) stmtNode() {}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return advance(s.Rbrace, 1) }

func (s *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, stmt := range s.Stmts {
		out.WriteString(stmt.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// If is a conditional statement. Alternative is nil, a *Block, or a
// nested *If (for "else if" chains).
type If struct {
	IfPos       token.Position
	Cond        Expr
	Consequence *Block
	Alternative Stmt
}

func (s *If) stmtNode() {}

func (s *If) Pos() token.Position { return s.IfPos }

func (s *If) End() token.Position {
	if s.Alternative != nil {
		return s.Alternative.End()
	}
	return s.Consequence.End()
}

func (s *If) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(s.Cond.String())
	out.WriteString(") ")
	out.WriteString(s.Consequence.String())
	if s.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(s.Alternative.String())
	}
	return out.String()
}

// While is a pre-tested loop statement.
type While struct {
	WhilePos token.Position
	Cond     Expr
	Body     *Block
}

func (s *While) stmtNode() {}

func (s *While) Pos() token.Position { return s.WhilePos }
func (s *While) End() token.Position { return s.Body.End() }

func (s *While) String() string {
	return "while (" + s.Cond.String() + ") " + s.Body.String()
}

// Break jumps past the end of the innermost enclosing loop.
type Break struct {
	BreakPos token.Position
	Semi     token.Position
}

func (s *Break) stmtNode() {}

func (s *Break) Pos() token.Position { return s.BreakPos }
func (s *Break) End() token.Position { return advance(s.Semi, 1) }
func (s *Break) String() string      { return "break;" }

// Continue jumps back to the condition of the innermost enclosing loop.
type Continue struct {
	ContinuePos token.Position
	Semi        token.Position
}

func (s *Continue) stmtNode() {}

func (s *Continue) Pos() token.Position { return s.ContinuePos }
func (s *Continue) End() token.Position { return advance(s.Semi, 1) }
func (s *Continue) String() string      { return "continue;" }
