// Package parser is used to generate the abstract syntax tree (AST) for a
// BX program.
//
// A parser is created by calling New() with a lexer as input. The parser
// should then be used only once, by calling parser.Parse() to produce the
// AST. Syntax errors are reported through the shared diagnostics reporter;
// the parser synchronizes at statement boundaries so that several syntax
// errors can be surfaced in one run, but any syntax error makes the whole
// parse fail and the partial tree is discarded.
package parser

import (
	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/lexer"
	"github.com/bxlang/bx/token"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Parse is a shorthand to create a Lexer and Parser for the input and
// call Parse on that.
func Parse(input string, reporter *diag.Reporter) (*ast.Program, error) {
	return New(lexer.New(input, reporter), reporter).Parse()
}

// Parser object
type Parser struct {
	// l is our lexer
	l *lexer.Lexer

	// reporter collects diagnostics for the whole compilation
	reporter *diag.Reporter

	// prevToken holds the previous token, which we already processed.
	prevToken token.Token

	// curToken holds the current token from the lexer.
	curToken token.Token

	// peekToken holds the next token from the lexer.
	peekToken token.Token

	// prefixParseFns holds a map of parsing methods for
	// prefix-based syntax.
	prefixParseFns map[token.Type]prefixParseFn

	// infixParseFns holds a map of parsing methods for
	// infix-based syntax.
	infixParseFns map[token.Type]infixParseFn
}

// New returns a Parser for the program provided by the given Lexer.
func New(l *lexer.Lexer, reporter *diag.Reporter) *Parser {
	p := &Parser{
		l:              l,
		reporter:       reporter,
		prefixParseFns: map[token.Type]prefixParseFn{},
		infixParseFns:  map[token.Type]infixParseFn{},
	}

	// Prime the token pump
	p.nextToken() // makes curToken=<empty>, peekToken=token[0]
	p.nextToken() // makes curToken=token[0], peekToken=token[1]

	// Register prefix-functions
	p.registerPrefix(token.IDENT, p.parseVar)
	p.registerPrefix(token.NUMBER, p.parseNumber)
	p.registerPrefix(token.TRUE, p.parseBoolean)
	p.registerPrefix(token.FALSE, p.parseBoolean)
	p.registerPrefix(token.MINUS, p.parsePrefixExpr)
	p.registerPrefix(token.TILDE, p.parsePrefixExpr)
	p.registerPrefix(token.BANG, p.parsePrefixExpr)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpr)

	// Register infix functions
	p.registerInfix(token.PLUS, p.parseInfixExpr)
	p.registerInfix(token.MINUS, p.parseInfixExpr)
	p.registerInfix(token.ASTERISK, p.parseInfixExpr)
	p.registerInfix(token.SLASH, p.parseInfixExpr)
	p.registerInfix(token.MOD, p.parseInfixExpr)
	p.registerInfix(token.AMPERSAND, p.parseInfixExpr)
	p.registerInfix(token.PIPE, p.parseInfixExpr)
	p.registerInfix(token.CARET, p.parseInfixExpr)
	p.registerInfix(token.LT_LT, p.parseInfixExpr)
	p.registerInfix(token.GT_GT, p.parseInfixExpr)
	p.registerInfix(token.EQ, p.parseInfixExpr)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpr)
	p.registerInfix(token.LT, p.parseInfixExpr)
	p.registerInfix(token.LT_EQUALS, p.parseInfixExpr)
	p.registerInfix(token.GT, p.parseInfixExpr)
	p.registerInfix(token.GT_EQUALS, p.parseInfixExpr)
	p.registerInfix(token.AND, p.parseInfixExpr)
	p.registerInfix(token.OR, p.parseInfixExpr)

	return p
}

// Parse the program that is provided via the lexer. The whole parse runs
// under one reporter checkpoint: if any error was recorded, the returned
// tree must not be trusted and Parse returns nil with the accumulated
// errors instead.
func (p *Parser) Parse() (*ast.Program, error) {
	cp := p.reporter.Checkpoint()
	program := p.parseProgram()
	if cp.Failed() {
		return nil, p.reporter.Err()
	}
	return program, nil
}

// registerPrefix registers a function for handling prefix-based syntax.
func (p *Parser) registerPrefix(tokenType token.Type, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

// registerInfix registers a function for handling infix-based syntax.
func (p *Parser) registerInfix(tokenType token.Type, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

// nextToken moves to the next token from the lexer, updating all of
// prevToken, curToken, and peekToken.
func (p *Parser) nextToken() {
	p.prevToken = p.curToken
	p.curToken = p.peekToken
	p.peekToken = p.l.Next()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek advances to the next token if it has the expected type, and
// otherwise reports a syntax error positioned at the offending token.
func (p *Parser) expectPeek(context string, t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.tokenErrorf(p.peekToken, "expected `%s' in %s, got `%s'", t, context, describe(p.peekToken))
	return false
}

// tokenErrorf reports a syntax error at the given token, or as an
// "at end of file" diagnostic when the input is exhausted.
func (p *Parser) tokenErrorf(tok token.Token, format string, args ...interface{}) {
	if tok.Type == token.EOF {
		p.reporter.Errorf(diag.SyntaxError, diag.Range{}, "syntax error at end of file")
		return
	}
	p.reporter.Errorf(diag.SyntaxError, diag.TokenRange(tok), format, args...)
}

// describe returns a token's text for use in error messages.
func describe(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of file"
	}
	if tok.Literal != "" {
		return tok.Literal
	}
	return string(tok.Type)
}

// synchronize skips tokens after a syntax error until a likely statement
// boundary: it stops on a semicolon (which the caller consumes) or just
// before a closing brace or the end of input.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.SEMICOLON) &&
		!p.curTokenIs(token.RBRACE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// parseProgram parses the fixed entry point: def main() { ... }
func (p *Parser) parseProgram() *ast.Program {
	defPos := p.curToken.StartPosition
	if !p.curTokenIs(token.DEF) {
		p.tokenErrorf(p.curToken, "expected `def' at start of program, got `%s'", describe(p.curToken))
		return nil
	}
	if !p.expectPeek("program header", token.MAIN) {
		return nil
	}
	if !p.expectPeek("program header", token.LPAREN) {
		return nil
	}
	if !p.expectPeek("program header", token.RPAREN) {
		return nil
	}
	if !p.expectPeek("program header", token.LBRACE) {
		return nil
	}
	main := p.parseBlock()
	if main == nil {
		return nil
	}
	if !p.peekTokenIs(token.EOF) {
		p.tokenErrorf(p.peekToken, "unexpected input after end of main: `%s'", describe(p.peekToken))
	}
	return &ast.Program{DefPos: defPos, Main: main}
}
