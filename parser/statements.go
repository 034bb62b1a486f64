package parser

import (
	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/token"
)

// Statement parsing methods for the Parser. Every parse method leaves
// curToken positioned on the last token of the construct it parsed (the
// terminating semicolon or closing brace), so the block loop can advance
// uniformly.

func (p *Parser) parseStatement() ast.Stmt {
	switch p.curToken.Type {
	case token.VAR:
		return p.parseVarDecl()
	case token.IDENT:
		return p.parseAssign()
	case token.PRINT:
		return p.parsePrint()
	case token.LBRACE:
		return p.parseBlock()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.BREAK:
		return p.parseBreak()
	case token.CONTINUE:
		return p.parseContinue()
	default:
		p.tokenErrorf(p.curToken, "unexpected token `%s' at start of statement", describe(p.curToken))
		return nil
	}
}

// parseBlock parses a brace-delimited statement list. curToken must be
// the opening brace. After a failed statement the parser synchronizes to
// the next statement boundary and keeps collecting errors.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Lbrace: p.curToken.StartPosition}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
			p.nextToken()
			continue
		}
		p.synchronize()
		if p.curTokenIs(token.SEMICOLON) {
			p.nextToken()
		}
	}
	if !p.curTokenIs(token.RBRACE) {
		p.tokenErrorf(p.curToken, "expected `}' to close block")
	}
	block.Rbrace = p.curToken.StartPosition
	return block
}

// parseVarDecl parses: var IDENT = expr : TYPE ;
func (p *Parser) parseVarDecl() ast.Stmt {
	varPos := p.curToken.StartPosition
	if !p.expectPeek("variable declaration", token.IDENT) {
		return nil
	}
	name := p.newName(p.curToken)
	if !p.expectPeek("variable declaration", token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek("variable declaration", token.COLON) {
		return nil
	}
	if !p.peekTokenIs(token.INT) && !p.peekTokenIs(token.BOOL) {
		p.tokenErrorf(p.peekToken, "expected type `int' or `bool', got `%s'", describe(p.peekToken))
		return nil
	}
	p.nextToken()
	declType := p.curToken.Literal
	if !p.expectPeek("variable declaration", token.SEMICOLON) {
		return nil
	}
	return &ast.VarDecl{
		VarPos:   varPos,
		Name:     name,
		Value:    value,
		DeclType: declType,
		Semi:     p.curToken.StartPosition,
	}
}

// parseAssign parses: IDENT = expr ;
func (p *Parser) parseAssign() ast.Stmt {
	name := p.newName(p.curToken)
	if !p.expectPeek("assignment", token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek("assignment", token.SEMICOLON) {
		return nil
	}
	return &ast.Assign{Name: name, Value: value, Semi: p.curToken.StartPosition}
}

// parsePrint parses: print ( expr ) ;
func (p *Parser) parsePrint() ast.Stmt {
	printPos := p.curToken.StartPosition
	if !p.expectPeek("print statement", token.LPAREN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if value == nil {
		return nil
	}
	if !p.expectPeek("print statement", token.RPAREN) {
		return nil
	}
	if !p.expectPeek("print statement", token.SEMICOLON) {
		return nil
	}
	return &ast.Print{PrintPos: printPos, Value: value, Semi: p.curToken.StartPosition}
}

// parseIf parses: if ( expr ) block ( else ( block | if ... ) )?
func (p *Parser) parseIf() ast.Stmt {
	ifPos := p.curToken.StartPosition
	if !p.expectPeek("if statement", token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek("if statement", token.RPAREN) {
		return nil
	}
	if !p.expectPeek("if statement", token.LBRACE) {
		return nil
	}
	consequence := p.parseBlock()

	var alternative ast.Stmt
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		switch {
		case p.peekTokenIs(token.LBRACE):
			p.nextToken()
			alternative = p.parseBlock()
		case p.peekTokenIs(token.IF):
			p.nextToken()
			alternative = p.parseIf()
		default:
			p.tokenErrorf(p.peekToken, "expected `{' or `if' after `else', got `%s'", describe(p.peekToken))
			return nil
		}
		if alternative == nil {
			return nil
		}
	}
	return &ast.If{IfPos: ifPos, Cond: cond, Consequence: consequence, Alternative: alternative}
}

// parseWhile parses: while ( expr ) block
func (p *Parser) parseWhile() ast.Stmt {
	whilePos := p.curToken.StartPosition
	if !p.expectPeek("while statement", token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek("while statement", token.RPAREN) {
		return nil
	}
	if !p.expectPeek("while statement", token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return &ast.While{WhilePos: whilePos, Cond: cond, Body: body}
}

func (p *Parser) parseBreak() ast.Stmt {
	breakPos := p.curToken.StartPosition
	if !p.expectPeek("break statement", token.SEMICOLON) {
		return nil
	}
	return &ast.Break{BreakPos: breakPos, Semi: p.curToken.StartPosition}
}

func (p *Parser) parseContinue() ast.Stmt {
	continuePos := p.curToken.StartPosition
	if !p.expectPeek("continue statement", token.SEMICOLON) {
		return nil
	}
	return &ast.Continue{ContinuePos: continuePos, Semi: p.curToken.StartPosition}
}
