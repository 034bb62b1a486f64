package parser

import "github.com/bxlang/bx/token"

// Precedence order for operators, lowest binding first.
const (
	_ int = iota
	LOWEST
	BOOLOR     // ||
	BOOLAND    // &&
	BITOR      // |
	BITXOR     // ^
	BITAND     // &
	EQUALITY   // == or != (non-associative)
	RELATIONAL // < <= > >= (non-associative)
	SHIFT      // << or >>
	SUM        // + or -
	PRODUCT    // * / %
	PREFIX     // -x ~x !x
)

// Precedences for each token type
var precedences = map[token.Type]int{
	token.OR:        BOOLOR,
	token.AND:       BOOLAND,
	token.PIPE:      BITOR,
	token.CARET:     BITXOR,
	token.AMPERSAND: BITAND,
	token.EQ:        EQUALITY,
	token.NOT_EQ:    EQUALITY,
	token.LT:        RELATIONAL,
	token.LT_EQUALS: RELATIONAL,
	token.GT:        RELATIONAL,
	token.GT_EQUALS: RELATIONAL,
	token.LT_LT:     SHIFT,
	token.GT_GT:     SHIFT,
	token.PLUS:      SUM,
	token.MINUS:     SUM,
	token.ASTERISK:  PRODUCT,
	token.SLASH:     PRODUCT,
	token.MOD:       PRODUCT,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}
