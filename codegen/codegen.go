// Package codegen lowers a type-checked BX syntax tree into three-address
// code.
//
// Two interchangeable emission disciplines are provided. Top-down keeps
// one shared growing instruction sequence that every visit appends to
// directly. Bottom-up builds a local instruction list per expression
// subtree and concatenates child lists before committing, keeping each
// subtree independently inspectable. Both produce semantically equivalent
// instruction streams; the control-flow, scoping, and short-circuit
// algorithms are shared.
//
// Recoverable semantic problems found during lowering (a break outside
// any loop, a redeclaration when running without the type-check gate) are
// reported through the diagnostics reporter and the offending construct
// is skipped. An AST shape with no defined lowering is an internal error:
// it means an earlier phase let through a node it should have rejected,
// so compilation is aborted.
package codegen

import (
	"errors"
	"fmt"

	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/symtab"
	"github.com/bxlang/bx/tac"
	"github.com/gofrs/uuid"
)

// ErrInternal marks compiler bugs surfaced during lowering, as opposed to
// problems with the program being compiled.
var ErrInternal = errors.New("internal compiler error")

// Discipline selects how emitted instructions are assembled.
type Discipline int

const (
	// TopDown appends every instruction directly to the shared sequence.
	TopDown Discipline = iota

	// BottomUp assembles per-subtree instruction lists and concatenates
	// them bottom-up before committing.
	BottomUp
)

func (d Discipline) String() string {
	if d == BottomUp {
		return "bottom-up"
	}
	return "top-down"
}

// Config holds code generator options.
type Config struct {
	// Discipline selects the emission discipline. Defaults to TopDown.
	Discipline Discipline

	// Reporter receives diagnostics. A fresh reporter is created when nil.
	Reporter *diag.Reporter
}

// Compiler lowers one compilation unit. All counters and stacks are
// private to the unit: a Compiler must not be reused across programs.
type Compiler struct {
	discipline Discipline
	reporter   *diag.Reporter
	em         emitter

	// out is the shared growing instruction sequence.
	out []tac.Instruction

	// scopes maps variable names to their storage temporaries, with the
	// same push/pop discipline the type checker uses.
	scopes *symtab.Table

	// loops tracks the (start, end) labels of enclosing loops for
	// break/continue resolution.
	loops []loopFrame

	// Independent monotonic counters. Uniqueness of the generated names
	// across the whole unit is a hard invariant the backend relies on.
	tempCount  int
	labelCount int

	// failure is set on the first internal error.
	failure error
}

type loopFrame struct {
	start string
	end   string
}

// New creates a Compiler. Pass nil for cfg to use defaults.
func New(cfg *Config) *Compiler {
	c := &Compiler{scopes: symtab.New()}
	if cfg != nil {
		c.discipline = cfg.Discipline
		c.reporter = cfg.Reporter
	}
	if c.reporter == nil {
		c.reporter = diag.NewReporter()
	}
	switch c.discipline {
	case BottomUp:
		c.em = &bottomUpEmitter{c: c}
	default:
		c.em = &topDownEmitter{c: c}
	}
	return c
}

// Compile lowers the program and returns the generated unit. Pass nil
// for cfg to use defaults.
func Compile(program *ast.Program, cfg *Config) (*tac.Program, error) {
	return New(cfg).Compile(program)
}

// Compile lowers the given program into a tac.Program holding the single
// "main" procedure.
func (c *Compiler) Compile(program *ast.Program) (*tac.Program, error) {
	if program == nil || program.Main == nil {
		return nil, fmt.Errorf("%w: no program to lower", ErrInternal)
	}
	c.genBlock(program.Main)
	if c.failure != nil {
		return nil, c.failure
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("generating unit id: %w", err)
	}
	return &tac.Program{
		ID:    id.String(),
		Procs: []tac.Procedure{tac.NewProcedure("main", c.out)},
	}, nil
}

// newTemp returns the next unique temporary name.
func (c *Compiler) newTemp() string {
	name := fmt.Sprintf("%%%d", c.tempCount)
	c.tempCount++
	return name
}

// newLabel returns the next unique label name.
func (c *Compiler) newLabel() string {
	name := fmt.Sprintf(".L%d", c.labelCount)
	c.labelCount++
	return name
}

// emit appends statement-level instructions directly to the shared
// sequence, in both disciplines.
func (c *Compiler) emit(ins ...tac.Instruction) {
	c.out = append(c.out, ins...)
}

func (c *Compiler) internalf(rng diag.Range, format string, args ...interface{}) {
	c.reporter.Errorf(diag.InternalError, rng, format, args...)
	if c.failure == nil {
		c.failure = fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, args...))
	}
}

func nodeRange(n ast.Node) diag.Range {
	return diag.NewRange(n.Pos(), n.End())
}

// genBlock lowers a block, pushing and popping a name scope exactly as
// the type checker does. The pop is unconditional so the scope stack
// stays balanced no matter what was reported inside.
func (c *Compiler) genBlock(block *ast.Block) {
	c.scopes.Push()
	defer c.scopes.Pop()
	for _, stmt := range block.Stmts {
		c.genStmt(stmt)
	}
}

func (c *Compiler) genStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.genVarDecl(s)
	case *ast.Assign:
		c.genAssign(s)
	case *ast.Print:
		f := c.genExpr(s.Value)
		c.em.flush(f)
		c.emit(tac.Instruction{Opcode: tac.Print, Args: []tac.Operand{tac.Temp(f.temp)}})
	case *ast.Block:
		c.genBlock(s)
	case *ast.If:
		c.genIf(s)
	case *ast.While:
		c.genWhile(s)
	case *ast.Break:
		if len(c.loops) == 0 {
			c.reporter.Errorf(diag.BreakOrContinueOutsideLoop, nodeRange(s),
				"break outside of a loop -- skipping")
			return
		}
		c.emit(jump(tac.Jmp, c.loops[len(c.loops)-1].end))
	case *ast.Continue:
		if len(c.loops) == 0 {
			c.reporter.Errorf(diag.BreakOrContinueOutsideLoop, nodeRange(s),
				"continue outside of a loop -- skipping")
			return
		}
		c.emit(jump(tac.Jmp, c.loops[len(c.loops)-1].start))
	default:
		c.internalf(nodeRange(stmt), "statement %T has no lowering", stmt)
	}
}

// genVarDecl evaluates the initializer, allocates a fresh storage
// temporary, and copies the value in. A same-scope redeclaration is
// reported and the whole statement is skipped, initializer included,
// leaving the original binding intact.
func (c *Compiler) genVarDecl(s *ast.VarDecl) {
	if c.scopes.DeclaredInCurrentScope(s.Name.Value) {
		c.reporter.Errorf(diag.DoubleDeclare, nodeRange(s),
			"double declare of var `%s' -- skipping", s.Name.Value)
		return
	}
	f := c.genExpr(s.Value)
	c.em.flush(f)
	storage := c.newTemp()
	c.scopes.Declare(&symtab.Symbol{
		Name:      s.Name.Value,
		Temp:      storage,
		DeclRange: nodeRange(s),
	})
	c.emit(copyInto(storage, f.temp))
}

func (c *Compiler) genAssign(s *ast.Assign) {
	sym, ok := c.scopes.Resolve(s.Name.Value)
	if !ok {
		c.reporter.Errorf(diag.UndeclaredVariable, nodeRange(s),
			"undeclared usage of var `%s' -- skipping", s.Name.Value)
		return
	}
	f := c.genExpr(s.Value)
	c.em.flush(f)
	c.emit(copyInto(sym.Temp, f.temp))
}

// genIf lowers a conditional: jump-if-zero over the consequence to the
// else label, with an unconditional jump past the alternative.
func (c *Compiler) genIf(s *ast.If) {
	cond := c.genExpr(s.Cond)
	c.em.flush(cond)
	labelElse := c.newLabel()
	labelEnd := c.newLabel()
	c.emit(jumpIfZero(cond.temp, labelElse))
	c.genBlock(s.Consequence)
	c.emit(jump(tac.Jmp, labelEnd))
	c.emit(label(labelElse))
	if s.Alternative != nil {
		c.genStmt(s.Alternative)
	}
	c.emit(label(labelEnd))
}

// genWhile lowers a loop: condition at the start label, jump-if-zero to
// the end label, body, jump back. The loop's labels are pushed for
// break/continue while the body is lowered.
func (c *Compiler) genWhile(s *ast.While) {
	labelStart := c.newLabel()
	labelEnd := c.newLabel()
	c.emit(label(labelStart))
	cond := c.genExpr(s.Cond)
	c.em.flush(cond)
	c.emit(jumpIfZero(cond.temp, labelEnd))
	c.loops = append(c.loops, loopFrame{start: labelStart, end: labelEnd})
	c.genBlock(s.Body)
	c.emit(jump(tac.Jmp, labelStart))
	c.emit(label(labelEnd))
	c.loops = c.loops[:len(c.loops)-1]
}

// Instruction construction helpers.

func copyInto(dst, src string) tac.Instruction {
	return tac.Instruction{Opcode: tac.Copy, Args: []tac.Operand{tac.Temp(src)}, Result: dst}
}

func constInto(dst string, value int64) tac.Instruction {
	return tac.Instruction{Opcode: tac.Const, Args: []tac.Operand{tac.Lit(value)}, Result: dst}
}

func label(name string) tac.Instruction {
	return tac.Instruction{Opcode: tac.Label, Args: []tac.Operand{tac.Lbl(name)}}
}

func jump(op tac.Opcode, target string) tac.Instruction {
	return tac.Instruction{Opcode: op, Args: []tac.Operand{tac.Lbl(target)}}
}

func jumpIfZero(temp, target string) tac.Instruction {
	return tac.Instruction{Opcode: tac.Jz, Args: []tac.Operand{tac.Temp(temp), tac.Lbl(target)}}
}

func jumpIfNonzero(temp, target string) tac.Instruction {
	return tac.Instruction{Opcode: tac.Jnz, Args: []tac.Operand{tac.Temp(temp), tac.Lbl(target)}}
}
