package ast

// Op identifies an operator at the language level. The parser maps surface
// lexical symbols to these tags exactly once; later passes never see raw
// punctuation. The vocabulary is closed.
type Op string

const (
	// Binary operators
	OpAdd    Op = "addition"
	OpSub    Op = "subtraction"
	OpMul    Op = "multiplication"
	OpDiv    Op = "division"
	OpMod    Op = "modulus"
	OpBitAnd Op = "bitwise-and"
	OpBitOr  Op = "bitwise-or"
	OpBitXor Op = "bitwise-xor"
	OpShl    Op = "logical-left-shift"
	OpShr    Op = "logical-right-shift"
	OpEq     Op = "boolean-eq"
	OpNe     Op = "boolean-noneq"
	OpLt     Op = "boolean-less"
	OpLe     Op = "boolean-lesseq"
	OpGt     Op = "boolean-great"
	OpGe     Op = "boolean-greateq"
	OpAnd    Op = "boolean-and"
	OpOr     Op = "boolean-or"

	// Unary operators
	OpNeg    Op = "opposite"
	OpBitNot Op = "bitwise-negation"
	OpNot    Op = "boolean-not"
)

// symbols maps operator tags back to their surface spelling, for
// source-like String() rendering of expression nodes.
var symbols = map[Op]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpMod:    "%",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpBitXor: "^",
	OpShl:    "<<",
	OpShr:    ">>",
	OpEq:     "==",
	OpNe:     "!=",
	OpLt:     "<",
	OpLe:     "<=",
	OpGt:     ">",
	OpGe:     ">=",
	OpAnd:    "&&",
	OpOr:     "||",
	OpNeg:    "-",
	OpBitNot: "~",
	OpNot:    "!",
}

// Symbol returns the surface spelling of the operator.
func (op Op) Symbol() string {
	if s, ok := symbols[op]; ok {
		return s
	}
	return string(op)
}
