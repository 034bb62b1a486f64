// Package semantic type-checks a parsed BX program.
//
// The checker walks the AST with a lexical scope stack, resolves the type
// of every expression, and validates operator and assignment
// compatibility. Resolved types are recorded in a side table keyed by
// expression identity rather than written into the tree, so the AST stays
// immutable after parsing. Every violation is reported through the shared
// diagnostics reporter and traversal continues, to surface as many
// diagnostics as possible in one run.
package semantic

import (
	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/symtab"
	"github.com/bxlang/bx/types"
)

// Info holds the results of type checking: the resolved type of every
// expression in the program.
type Info struct {
	exprTypes map[ast.Expr]types.Type
}

// TypeOf returns the resolved type of an expression. It returns
// types.Invalid for expressions the checker never visited.
func (i *Info) TypeOf(e ast.Expr) types.Type {
	return i.exprTypes[e]
}

// Check type-checks the program, reporting every violation through the
// reporter. The returned Info is always usable; callers gate on the
// reporter's error count.
func Check(program *ast.Program, reporter *diag.Reporter) *Info {
	c := &checker{
		reporter: reporter,
		scopes:   symtab.New(),
		info:     &Info{exprTypes: map[ast.Expr]types.Type{}},
	}
	if program != nil {
		c.checkBlock(program.Main)
	}
	return c.info
}

type checker struct {
	reporter *diag.Reporter
	scopes   *symtab.Table
	info     *Info
}

func nodeRange(n ast.Node) diag.Range {
	return diag.NewRange(n.Pos(), n.End())
}

// checkBlock pushes a scope, checks the statements, and pops the scope
// unconditionally so the stack stays balanced even after errors.
func (c *checker) checkBlock(block *ast.Block) {
	c.scopes.Push()
	defer c.scopes.Pop()
	for _, stmt := range block.Stmts {
		c.checkStmt(stmt)
	}
}

func (c *checker) checkStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(s)
	case *ast.Assign:
		c.checkAssign(s)
	case *ast.Print:
		valueType := c.checkExpr(s.Value)
		if valueType != types.Int && valueType != types.Error {
			c.reporter.Errorf(diag.TypeMismatch, nodeRange(s.Value),
				"print expects an `int' argument, got `%s'", valueType)
		}
	case *ast.Block:
		c.checkBlock(s)
	case *ast.If:
		c.checkCond(s.Cond)
		c.checkBlock(s.Consequence)
		if s.Alternative != nil {
			c.checkStmt(s.Alternative)
		}
	case *ast.While:
		c.checkCond(s.Cond)
		c.checkBlock(s.Body)
	case *ast.Break, *ast.Continue:
		// Loop-context validation happens during IR generation.
	default:
		c.reporter.Errorf(diag.InternalError, nodeRange(stmt),
			"statement %T has no type-checking rule", stmt)
	}
}

func (c *checker) checkVarDecl(s *ast.VarDecl) {
	// A redeclaration in the same scope leaves the original binding
	// intact and skips the whole declaration, initializer included.
	if c.scopes.DeclaredInCurrentScope(s.Name.Value) {
		c.reporter.Errorf(diag.DoubleDeclare, nodeRange(s),
			"double declare of var `%s' -- skipping", s.Name.Value)
		return
	}
	initType := c.checkExpr(s.Value)
	declType, ok := types.FromName(s.DeclType)
	if !ok {
		c.reporter.Errorf(diag.InternalError, nodeRange(s),
			"unknown declared type `%s'", s.DeclType)
		return
	}
	if initType != declType && initType != types.Error {
		c.reporter.Errorf(diag.TypeMismatch, nodeRange(s),
			"cannot initialize `%s' variable `%s' with `%s' value",
			declType, s.Name.Value, initType)
	}
	c.scopes.Declare(&symtab.Symbol{
		Name:      s.Name.Value,
		Type:      declType,
		DeclRange: nodeRange(s),
	})
}

func (c *checker) checkAssign(s *ast.Assign) {
	valueType := c.checkExpr(s.Value)
	sym, ok := c.scopes.Resolve(s.Name.Value)
	if !ok {
		c.reporter.Errorf(diag.UndeclaredVariable, nodeRange(s),
			"undeclared usage of var `%s' -- skipping", s.Name.Value)
		return
	}
	if valueType != sym.Type && valueType != types.Error {
		c.reporter.Errorf(diag.TypeMismatch, nodeRange(s),
			"cannot assign `%s' value to `%s' variable `%s'",
			valueType, sym.Type, s.Name.Value)
	}
}

func (c *checker) checkCond(cond ast.Expr) {
	condType := c.checkExpr(cond)
	if condType != types.Bool && condType != types.Error {
		c.reporter.Errorf(diag.TypeMismatch, nodeRange(cond),
			"condition must be `bool', got `%s'", condType)
	}
}

// checkExpr resolves and records the type of an expression. Expressions
// already containing an error-typed operand yield the error sentinel
// without a further report, so one mistake does not cascade.
func (c *checker) checkExpr(expr ast.Expr) types.Type {
	t := c.resolveExpr(expr)
	c.info.exprTypes[expr] = t
	return t
}

func (c *checker) resolveExpr(expr ast.Expr) types.Type {
	switch e := expr.(type) {
	case *ast.NumberLit:
		return types.Int
	case *ast.BoolLit:
		return types.Bool
	case *ast.Var:
		sym, ok := c.scopes.Resolve(e.Name.Value)
		if !ok {
			c.reporter.Errorf(diag.UndeclaredVariable, nodeRange(e),
				"undeclared usage of var `%s' -- skipping", e.Name.Value)
			return types.Error
		}
		return sym.Type
	case *ast.Unary:
		return c.resolveUnary(e)
	case *ast.Binary:
		return c.resolveBinary(e)
	default:
		c.reporter.Errorf(diag.InternalError, nodeRange(expr),
			"expression %T has no typing rule", expr)
		return types.Error
	}
}

func (c *checker) resolveUnary(e *ast.Unary) types.Type {
	operandType := c.checkExpr(e.Operand)
	if operandType == types.Error {
		return types.Error
	}
	var want types.Type
	switch e.Op {
	case ast.OpNeg, ast.OpBitNot:
		want = types.Int
	case ast.OpNot:
		want = types.Bool
	default:
		c.reporter.Errorf(diag.UnknownOperator, nodeRange(e),
			"unknown unary operator `%s'", e.Op)
		return types.Error
	}
	if operandType != want {
		c.reporter.Errorf(diag.InvalidOperatorOperands, nodeRange(e),
			"unary operator `%s' cannot be applied to type `%s'",
			e.Op.Symbol(), operandType)
		return types.Error
	}
	return want
}

func (c *checker) resolveBinary(e *ast.Binary) types.Type {
	leftType := c.checkExpr(e.Left)
	rightType := c.checkExpr(e.Right)
	if leftType == types.Error || rightType == types.Error {
		return types.Error
	}
	mismatch := func() types.Type {
		c.reporter.Errorf(diag.InvalidOperatorOperands, nodeRange(e),
			"binary operator `%s' cannot be applied to types `%s' and `%s'",
			e.Op.Symbol(), leftType, rightType)
		return types.Error
	}
	switch e.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpDiv, ast.OpMod,
		ast.OpBitAnd, ast.OpBitOr, ast.OpBitXor, ast.OpShl, ast.OpShr:
		if leftType != types.Int || rightType != types.Int {
			return mismatch()
		}
		return types.Int
	case ast.OpLt, ast.OpLe, ast.OpGt, ast.OpGe:
		if leftType != types.Int || rightType != types.Int {
			return mismatch()
		}
		return types.Bool
	case ast.OpEq, ast.OpNe:
		if leftType != rightType {
			return mismatch()
		}
		return types.Bool
	case ast.OpAnd, ast.OpOr:
		if leftType != types.Bool || rightType != types.Bool {
			return mismatch()
		}
		return types.Bool
	default:
		c.reporter.Errorf(diag.UnknownOperator, nodeRange(e),
			"unknown binary operator `%s'", e.Op)
		return types.Error
	}
}
