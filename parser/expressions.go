package parser

import (
	"strconv"

	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/token"
)

// Expression parsing methods for the Parser. The parser maps surface
// lexical symbols to language-level operator tags here, exactly once, so
// downstream passes never see raw punctuation.

// unaryOps maps prefix operator tokens to operator tags.
var unaryOps = map[token.Type]ast.Op{
	token.MINUS: ast.OpNeg,
	token.TILDE: ast.OpBitNot,
	token.BANG:  ast.OpNot,
}

// binaryOps maps infix operator tokens to operator tags.
var binaryOps = map[token.Type]ast.Op{
	token.PLUS:      ast.OpAdd,
	token.MINUS:     ast.OpSub,
	token.ASTERISK:  ast.OpMul,
	token.SLASH:     ast.OpDiv,
	token.MOD:       ast.OpMod,
	token.AMPERSAND: ast.OpBitAnd,
	token.PIPE:      ast.OpBitOr,
	token.CARET:     ast.OpBitXor,
	token.LT_LT:     ast.OpShl,
	token.GT_GT:     ast.OpShr,
	token.EQ:        ast.OpEq,
	token.NOT_EQ:    ast.OpNe,
	token.LT:        ast.OpLt,
	token.LT_EQUALS: ast.OpLe,
	token.GT:        ast.OpGt,
	token.GT_EQUALS: ast.OpGe,
	token.AND:       ast.OpAnd,
	token.OR:        ast.OpOr,
}

// parseExpression is the core of the Pratt parser: it parses an
// expression whose operators all bind tighter than the given precedence.
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.tokenErrorf(p.curToken, "unexpected token `%s' in expression", describe(p.curToken))
		return nil
	}
	left := prefix()
	for left != nil && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseVar() ast.Expr {
	return &ast.Var{Name: p.newName(p.curToken)}
}

func (p *Parser) newName(tok token.Token) *ast.Name {
	return &ast.Name{NamePos: tok.StartPosition, Value: tok.Literal}
}

func (p *Parser) parseNumber() ast.Expr {
	tok := p.curToken
	value, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		// Out-of-range literals are reported but kept with a best-effort
		// value so the parse can continue.
		p.reporter.Errorf(diag.SyntaxError, diag.TokenRange(tok),
			"number `%s' does not fit in 64 bits -- skipping", tok.Literal)
	}
	return &ast.NumberLit{LitPos: tok.StartPosition, Lit: tok.Literal, Value: value}
}

func (p *Parser) parseBoolean() ast.Expr {
	return &ast.BoolLit{
		LitPos: p.curToken.StartPosition,
		Value:  p.curTokenIs(token.TRUE),
	}
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	opPos := p.curToken.StartPosition
	op, ok := unaryOps[p.curToken.Type]
	if !ok {
		p.tokenErrorf(p.curToken, "unknown unary operator `%s'", p.curToken.Literal)
		return nil
	}
	p.nextToken()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	return &ast.Unary{OpPos: opPos, Op: op, Operand: operand}
}

func (p *Parser) parseInfixExpr(left ast.Expr) ast.Expr {
	opTok := p.curToken
	op, ok := binaryOps[opTok.Type]
	if !ok {
		p.tokenErrorf(opTok, "unknown binary operator `%s'", opTok.Literal)
		return nil
	}
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	// Equality and relational comparisons are non-associative: chains
	// like a < b < c are rejected rather than silently grouped.
	if (precedence == EQUALITY || precedence == RELATIONAL) && p.peekPrecedence() == precedence {
		p.tokenErrorf(p.peekToken, "comparison operator `%s' is non-associative", p.peekToken.Literal)
		return nil
	}
	return &ast.Binary{Left: left, OpPos: opTok.StartPosition, Op: op, Right: right}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken() // move past '('
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek("grouped expression", token.RPAREN) {
		return nil
	}
	return expr
}
