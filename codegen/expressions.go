package codegen

import (
	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/tac"
)

// binaryOpcodes maps straight-line binary operator tags to opcodes.
var binaryOpcodes = map[ast.Op]tac.Opcode{
	ast.OpAdd:    tac.Add,
	ast.OpSub:    tac.Sub,
	ast.OpMul:    tac.Mul,
	ast.OpDiv:    tac.Div,
	ast.OpMod:    tac.Mod,
	ast.OpBitAnd: tac.And,
	ast.OpBitOr:  tac.Or,
	ast.OpBitXor: tac.Xor,
	ast.OpShl:    tac.Shl,
	ast.OpShr:    tac.Shr,
}

// comparisonJumps maps comparison operator tags to the conditional jump
// taken on the sign class of the left-minus-right subtraction.
var comparisonJumps = map[ast.Op]tac.Opcode{
	ast.OpEq: tac.Jz,
	ast.OpNe: tac.Jnz,
	ast.OpLt: tac.Jl,
	ast.OpLe: tac.Jle,
	ast.OpGt: tac.Jg,
	ast.OpGe: tac.Jge,
}

// genExpr lowers one expression and returns its fragment. In the
// bottom-up discipline every expression must contribute at least one
// instruction of its own; an empty local list means a lowering bug.
func (c *Compiler) genExpr(expr ast.Expr) *fragment {
	f := c.lowerExpr(expr)
	if c.discipline == BottomUp && len(f.code) == 0 {
		c.internalf(nodeRange(expr),
			"expression %T lowered to an empty instruction list", expr)
	}
	return f
}

func (c *Compiler) lowerExpr(expr ast.Expr) *fragment {
	switch e := expr.(type) {
	case *ast.NumberLit:
		f := &fragment{}
		temp := c.newTemp()
		c.em.push(f, constInto(temp, e.Value))
		f.temp = temp
		return f
	case *ast.BoolLit:
		f := &fragment{}
		temp := c.newTemp()
		value := int64(0)
		if e.Value {
			value = 1
		}
		c.em.push(f, constInto(temp, value))
		f.temp = temp
		return f
	case *ast.Var:
		return c.lowerVar(e)
	case *ast.Unary:
		return c.lowerUnary(e)
	case *ast.Binary:
		return c.lowerBinary(e)
	default:
		c.internalf(nodeRange(expr), "expression %T has no lowering", expr)
		f := &fragment{}
		temp := c.newTemp()
		c.em.push(f, constInto(temp, 0))
		f.temp = temp
		return f
	}
}

func (c *Compiler) lowerVar(e *ast.Var) *fragment {
	f := &fragment{}
	sym, ok := c.scopes.Resolve(e.Name.Value)
	if !ok {
		// Recoverable when lowering an unchecked tree: default to zero so
		// the surrounding expression stays well formed.
		c.reporter.Errorf(diag.UndeclaredVariable, nodeRange(e),
			"undeclared usage of var `%s' -- skipping", e.Name.Value)
		temp := c.newTemp()
		c.em.push(f, constInto(temp, 0))
		f.temp = temp
		return f
	}
	f.temp = c.em.read(f, sym)
	return f
}

func (c *Compiler) lowerUnary(e *ast.Unary) *fragment {
	switch e.Op {
	case ast.OpNeg, ast.OpBitNot:
		operand := c.genExpr(e.Operand)
		f := &fragment{}
		c.em.merge(f, operand)
		opcode := tac.Neg
		if e.Op == ast.OpBitNot {
			opcode = tac.Not
		}
		result := c.newTemp()
		c.em.push(f, tac.Instruction{
			Opcode: opcode,
			Args:   []tac.Operand{tac.Temp(operand.temp)},
			Result: result,
		})
		f.temp = result
		return f
	case ast.OpNot:
		// Boolean not selects 0 or 1 by branching on the operand's
		// zero-ness, mirroring the comparison lowering rather than using
		// a dedicated opcode.
		operand := c.genExpr(e.Operand)
		f := &fragment{}
		c.em.merge(f, operand)
		f.temp = c.selectZeroOne(f, tac.Jz, operand.temp)
		return f
	default:
		c.internalf(nodeRange(e), "unknown unary operator `%s'", e.Op)
		return c.zeroFragment()
	}
}

func (c *Compiler) lowerBinary(e *ast.Binary) *fragment {
	if opcode, ok := binaryOpcodes[e.Op]; ok {
		left := c.genExpr(e.Left)
		right := c.genExpr(e.Right)
		f := &fragment{}
		c.em.merge(f, left)
		c.em.merge(f, right)
		result := c.newTemp()
		c.em.push(f, tac.Instruction{
			Opcode: opcode,
			Args:   []tac.Operand{tac.Temp(left.temp), tac.Temp(right.temp)},
			Result: result,
		})
		f.temp = result
		return f
	}
	if jumpOp, ok := comparisonJumps[e.Op]; ok {
		return c.lowerComparison(e, jumpOp)
	}
	switch e.Op {
	case ast.OpAnd:
		return c.lowerShortCircuit(e, true)
	case ast.OpOr:
		return c.lowerShortCircuit(e, false)
	default:
		c.internalf(nodeRange(e), "unknown binary operator `%s'", e.Op)
		return c.zeroFragment()
	}
}

// lowerComparison subtracts the operands and branches on the result's
// relation to zero, materializing 0 or 1 through the shared three-label
// select.
func (c *Compiler) lowerComparison(e *ast.Binary, jumpOp tac.Opcode) *fragment {
	left := c.genExpr(e.Left)
	right := c.genExpr(e.Right)
	f := &fragment{}
	c.em.merge(f, left)
	c.em.merge(f, right)
	diff := c.newTemp()
	c.em.push(f, tac.Instruction{
		Opcode: tac.Sub,
		Args:   []tac.Operand{tac.Temp(left.temp), tac.Temp(right.temp)},
		Result: diff,
	})
	f.temp = c.selectZeroOne(f, jumpOp, diff)
	return f
}

// selectZeroOne emits the three-label dance that turns a conditional
// jump into a 0/1 value: jump to the true label when the condition
// holds, fall through the false label to load 0, and join at the end.
func (c *Compiler) selectZeroOne(f *fragment, jumpOp tac.Opcode, operand string) string {
	labelTrue := c.newLabel()
	labelFalse := c.newLabel()
	labelEnd := c.newLabel()
	result := c.newTemp()
	c.em.push(f, tac.Instruction{
		Opcode: jumpOp,
		Args:   []tac.Operand{tac.Temp(operand), tac.Lbl(labelTrue)},
	})
	c.em.push(f, label(labelFalse))
	c.em.push(f, constInto(result, 0))
	c.em.push(f, jump(tac.Jmp, labelEnd))
	c.em.push(f, label(labelTrue))
	c.em.push(f, constInto(result, 1))
	c.em.push(f, label(labelEnd))
	return result
}

// lowerShortCircuit lowers && and ||. Two temporaries start at the
// operator's neutral value (1 for &&, 0 for ||). The left operand is
// copied into the first; if it already decides the result, a conditional
// jump skips over the right operand's instructions, making them
// unreachable at runtime even though they are always generated. The
// final value combines both temporaries with the corresponding logical
// instruction.
func (c *Compiler) lowerShortCircuit(e *ast.Binary, isAnd bool) *fragment {
	f := &fragment{}
	neutral := int64(0)
	combineOp := tac.Or
	if isAnd {
		neutral = 1
		combineOp = tac.And
	}
	first := c.newTemp()
	second := c.newTemp()
	c.em.push(f, constInto(first, neutral))
	c.em.push(f, constInto(second, neutral))

	left := c.genExpr(e.Left)
	c.em.merge(f, left)
	c.em.push(f, copyInto(first, left.temp))

	labelEnd := c.newLabel()
	if isAnd {
		c.em.push(f, jumpIfZero(first, labelEnd))
	} else {
		c.em.push(f, jumpIfNonzero(first, labelEnd))
	}

	right := c.genExpr(e.Right)
	c.em.merge(f, right)
	c.em.push(f, copyInto(second, right.temp))

	c.em.push(f, label(labelEnd))
	result := c.newTemp()
	c.em.push(f, tac.Instruction{
		Opcode: combineOp,
		Args:   []tac.Operand{tac.Temp(first), tac.Temp(second)},
		Result: result,
	})
	f.temp = result
	return f
}

func (c *Compiler) zeroFragment() *fragment {
	f := &fragment{}
	temp := c.newTemp()
	c.em.push(f, constInto(temp, 0))
	f.temp = temp
	return f
}
