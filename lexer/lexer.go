// Package lexer converts BX source text into a stream of tokens.
//
// The lexer never aborts: unrecognized characters are reported through the
// shared diagnostics reporter and skipped, so that a single bad character
// does not hide later problems. Line-trailing comments introduced by "//"
// are discarded and never tokenized.
package lexer

import (
	"sort"

	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/token"
)

// Lexer tokenizes an input program.
type Lexer struct {
	input    []rune
	pos      int
	bol      []int // offsets at which each line begins
	reporter *diag.Reporter
}

// New returns a Lexer for the given input. Lexical errors are reported
// to the supplied reporter.
func New(input string, reporter *diag.Reporter) *Lexer {
	return &Lexer{
		input:    []rune(input),
		bol:      []int{0},
		reporter: reporter,
	}
}

// positionAt converts an absolute character offset into a Position by
// locating the nearest line start that is not greater than the offset.
func (l *Lexer) positionAt(offset int) token.Position {
	line := sort.SearchInts(l.bol, offset+1) - 1
	return token.Position{
		Char:   offset,
		Line:   line,
		Column: offset - l.bol[line],
	}
}

// Tokenize consumes the entire input and returns all tokens, ending with
// a single EOF token.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	for {
		tok := l.Next()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

// Next returns the next token from the input.
func (l *Lexer) Next() token.Token {
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) {
			pos := l.positionAt(l.pos)
			return token.Token{Type: token.EOF, StartPosition: pos, EndPosition: pos}
		}
		ch := l.input[l.pos]
		switch {
		case ch == '/' && l.peekIs('/'):
			l.skipComment()
			continue
		case isLetter(ch):
			return l.readIdentifier()
		case isDigit(ch):
			return l.readNumber()
		default:
			tok, ok := l.readOperator()
			if ok {
				return tok
			}
			// Unrecognized character: report and skip, then keep lexing.
			start := l.positionAt(l.pos)
			l.pos++
			end := l.positionAt(l.pos)
			l.reporter.Errorf(diag.LexicalError, diag.NewRange(start, end),
				"illegal character: `%c' -- skipping", ch)
		}
	}
}

func (l *Lexer) peekIs(ch rune) bool {
	return l.pos+1 < len(l.input) && l.input[l.pos+1] == ch
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.bol = append(l.bol, l.pos)
		default:
			return
		}
	}
}

func (l *Lexer) skipComment() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) readIdentifier() token.Token {
	start := l.pos
	for l.pos < len(l.input) && (isLetter(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	literal := string(l.input[start:l.pos])
	return token.Token{
		Type:          token.LookupIdentifier(literal),
		Literal:       literal,
		StartPosition: l.positionAt(start),
		EndPosition:   l.positionAt(l.pos),
	}
}

// readNumber reads a number literal: "0" or a nonzero-leading digit
// run. A leading zero never extends the literal, so "007" lexes as
// three separate numbers and the parser rejects the sequence.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	if l.input[l.pos] == '0' {
		l.pos++
	} else {
		for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return token.Token{
		Type:          token.NUMBER,
		Literal:       string(l.input[start:l.pos]),
		StartPosition: l.positionAt(start),
		EndPosition:   l.positionAt(l.pos),
	}
}

// operators maps the two-character symbols first so that ">>" is not
// lexed as two ">" tokens.
var twoCharOperators = map[string]token.Type{
	"<<": token.LT_LT,
	">>": token.GT_GT,
	"==": token.EQ,
	"!=": token.NOT_EQ,
	"<=": token.LT_EQUALS,
	">=": token.GT_EQUALS,
	"&&": token.AND,
	"||": token.OR,
}

var oneCharOperators = map[rune]token.Type{
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	':': token.COLON,
	';': token.SEMICOLON,
	'=': token.ASSIGN,
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.ASTERISK,
	'/': token.SLASH,
	'%': token.MOD,
	'&': token.AMPERSAND,
	'|': token.PIPE,
	'^': token.CARET,
	'<': token.LT,
	'>': token.GT,
	'!': token.BANG,
	'~': token.TILDE,
}

func (l *Lexer) readOperator() (token.Token, bool) {
	start := l.pos
	if l.pos+1 < len(l.input) {
		pair := string(l.input[l.pos : l.pos+2])
		if typ, ok := twoCharOperators[pair]; ok {
			l.pos += 2
			return token.Token{
				Type:          typ,
				Literal:       pair,
				StartPosition: l.positionAt(start),
				EndPosition:   l.positionAt(l.pos),
			}, true
		}
	}
	if typ, ok := oneCharOperators[l.input[l.pos]]; ok {
		l.pos++
		return token.Token{
			Type:          typ,
			Literal:       string(l.input[start]),
			StartPosition: l.positionAt(start),
			EndPosition:   l.positionAt(l.pos),
		}, true
	}
	return token.Token{}, false
}

func isLetter(ch rune) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
