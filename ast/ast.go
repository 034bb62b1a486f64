// Package ast defines the abstract syntax tree representation of BX code.
package ast

import "github.com/bxlang/bx/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value.
type Stmt interface {
	Node
	stmtNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions.
type Expr interface {
	Node
	exprNode()
}

// Name wraps an identifier and its position. It is used wherever an
// identifier is declared or referenced.
type Name struct {
	NamePos token.Position
	Value   string
}

func (n *Name) Pos() token.Position { return n.NamePos }
func (n *Name) End() token.Position { return advance(n.NamePos, len(n.Value)) }
func (n *Name) String() string      { return n.Value }

// Program is the root of the tree: the single implicit entry procedure
// holding the top-level block.
type Program struct {
	DefPos token.Position // position of the "def" keyword
	Main   *Block
}

func (p *Program) Pos() token.Position { return p.DefPos }
func (p *Program) End() token.Position { return p.Main.End() }
func (p *Program) String() string      { return "def main() " + p.Main.String() }

// advance returns the position n characters after p on the same line.
func advance(p token.Position, n int) token.Position {
	return token.Position{Char: p.Char + n, Line: p.Line, Column: p.Column + n}
}
