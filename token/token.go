// Package token defines language keywords and tokens used when lexing BX
// source code.
package token

import "fmt"

// Type describes the type of a token as a string.
type Type string

// Position points to a particular location in an input string.
type Position struct {
	Char   int // absolute character offset, 0-indexed
	Line   int // line number, 0-indexed
	Column int // column number, 0-indexed
}

// LineNumber returns the 1-indexed line number for this position in the input.
func (p Position) LineNumber() int {
	return p.Line + 1
}

// ColumnNumber returns the 1-indexed column number for this position in the input.
func (p Position) ColumnNumber() int {
	return p.Column + 1
}

// String returns the position as "line:column", both 1-indexed.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineNumber(), p.ColumnNumber())
}

// Token represents one token lexed from the input source code.
type Token struct {
	Type          Type
	Literal       string
	StartPosition Position
	EndPosition   Position
}

// Token types
const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	IDENT  = "IDENT"
	NUMBER = "NUMBER"

	// Keywords
	DEF      = "DEF"
	MAIN     = "MAIN"
	VAR      = "VAR"
	PRINT    = "PRINT"
	IF       = "IF"
	ELSE     = "ELSE"
	WHILE    = "WHILE"
	BREAK    = "BREAK"
	CONTINUE = "CONTINUE"
	INT      = "INT"
	BOOL     = "BOOL"
	TRUE     = "TRUE"
	FALSE    = "FALSE"

	// Punctuation
	LPAREN    = "("
	RPAREN    = ")"
	LBRACE    = "{"
	RBRACE    = "}"
	COLON     = ":"
	SEMICOLON = ";"
	ASSIGN    = "="

	// Operators
	PLUS      = "+"
	MINUS     = "-"
	ASTERISK  = "*"
	SLASH     = "/"
	MOD       = "%"
	AMPERSAND = "&"
	PIPE      = "|"
	CARET     = "^"
	LT_LT     = "<<"
	GT_GT     = ">>"
	EQ        = "=="
	NOT_EQ    = "!="
	LT        = "<"
	LT_EQUALS = "<="
	GT        = ">"
	GT_EQUALS = ">="
	AND       = "&&"
	OR        = "||"
	BANG      = "!"
	TILDE     = "~"
)

// Reserved keywords
var keywords = map[string]Type{
	"def":      DEF,
	"main":     MAIN,
	"var":      VAR,
	"print":    PRINT,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"int":      INT,
	"bool":     BOOL,
	"true":     TRUE,
	"false":    FALSE,
}

// LookupIdentifier is used to determine whether an identifier is a keyword.
func LookupIdentifier(identifier string) Type {
	if tok, ok := keywords[identifier]; ok {
		return tok
	}
	return IDENT
}
