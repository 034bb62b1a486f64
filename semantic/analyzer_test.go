package semantic

import (
	"testing"

	"github.com/bxlang/bx/ast"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/parser"
	"github.com/bxlang/bx/types"
	"github.com/stretchr/testify/require"
)

// check parses the program body and type-checks it, returning the
// reporter with any accumulated diagnostics.
func check(t *testing.T, input string) (*Info, *diag.Reporter) {
	t.Helper()
	reporter := diag.NewReporter()
	program, err := parser.Parse(input, reporter)
	require.NoError(t, err)
	info := Check(program, reporter)
	return info, reporter
}

func TestWellTypedProgram(t *testing.T) {
	_, reporter := check(t, `def main() {
	var n = 10 : int;
	var even = (n % 2 == 0) : bool;
	var mask = (n & 7) | (1 << 2) : int;
	var inRange = (0 <= n) && (n < 100) : bool;
	if (even || !inRange) {
		n = -n + ~mask;
	} else {
		n = n * 2;
	}
	while (n > 0) {
		print(n);
		n = n - 1;
	}
}`)
	require.False(t, reporter.HasErrors())
	require.Equal(t, 0, reporter.WarningCount())
}

func TestAssignMismatch(t *testing.T) {
	_, reporter := check(t, "def main() { var x = 1 : int; x = true; }")
	require.Equal(t, 1, reporter.ErrorCount())
	d := reporter.Diagnostics()[0]
	require.Equal(t, diag.TypeMismatch, d.Kind)
	require.Contains(t, d.Message, "bool")
	require.Contains(t, d.Message, "int")
	require.Contains(t, d.Message, "`x'")
}

func TestDeclInitMismatch(t *testing.T) {
	_, reporter := check(t, "def main() { var x = true : int; }")
	require.Equal(t, 1, reporter.ErrorCount())
	require.Equal(t, diag.TypeMismatch, reporter.Diagnostics()[0].Kind)
}

func TestConditionMustBeBool(t *testing.T) {
	for _, input := range []string{
		"def main() { if (1) { } }",
		"def main() { while (0) { } }",
	} {
		_, reporter := check(t, input)
		require.Equal(t, 1, reporter.ErrorCount(), input)
		d := reporter.Diagnostics()[0]
		require.Equal(t, diag.TypeMismatch, d.Kind, input)
		require.Contains(t, d.Message, "condition must be `bool'", input)
	}
}

func TestPrintExpectsInt(t *testing.T) {
	_, reporter := check(t, "def main() { print(true); }")
	require.Equal(t, 1, reporter.ErrorCount())
	require.Equal(t, diag.TypeMismatch, reporter.Diagnostics()[0].Kind)
}

func TestOperatorOperands(t *testing.T) {
	tests := []struct {
		input string
		want  diag.Kind
	}{
		{"def main() { var b = !3 : bool; }", diag.InvalidOperatorOperands},
		{"def main() { var n = -true : int; }", diag.InvalidOperatorOperands},
		{"def main() { var n = ~false : int; }", diag.InvalidOperatorOperands},
		{"def main() { var n = true + 1 : int; }", diag.InvalidOperatorOperands},
		{"def main() { var n = true << 1 : int; }", diag.InvalidOperatorOperands},
		{"def main() { var b = true < false : bool; }", diag.InvalidOperatorOperands},
		{"def main() { var b = 1 == true : bool; }", diag.InvalidOperatorOperands},
		{"def main() { var b = 1 && true : bool; }", diag.InvalidOperatorOperands},
	}
	for _, tt := range tests {
		_, reporter := check(t, tt.input)
		require.Equal(t, 1, reporter.ErrorCount(), tt.input)
		require.Equal(t, tt.want, reporter.Diagnostics()[0].Kind, tt.input)
	}
}

func TestEqualityComparesLikeTypes(t *testing.T) {
	// Both int==int and bool==bool are legal; only mixing is not.
	_, reporter := check(t, `def main() {
	var a = (1 == 2) : bool;
	var b = (true != false) : bool;
}`)
	require.False(t, reporter.HasErrors())
}

func TestUndeclaredVariable(t *testing.T) {
	_, reporter := check(t, "def main() { y = 1; }")
	require.Equal(t, 1, reporter.ErrorCount())
	d := reporter.Diagnostics()[0]
	require.Equal(t, diag.UndeclaredVariable, d.Kind)
	require.Contains(t, d.Message, "`y'")
}

func TestErrorSentinelStopsCascades(t *testing.T) {
	// The undeclared variable is reported once; the surrounding addition,
	// comparison, and condition all absorb the error type silently.
	_, reporter := check(t, "def main() { if (y + 1 < 2) { } }")
	require.Equal(t, 1, reporter.ErrorCount())
	require.Equal(t, diag.UndeclaredVariable, reporter.Diagnostics()[0].Kind)
}

func TestDoubleDeclare(t *testing.T) {
	// The second declaration is reported exactly once and skipped whole:
	// its initializer references an undeclared name, yet no second
	// diagnostic appears.
	_, reporter := check(t, `def main() {
	var x = 1 : int;
	var x = z : int;
	print(x);
}`)
	require.Equal(t, 1, reporter.ErrorCount())
	require.Equal(t, diag.DoubleDeclare, reporter.Diagnostics()[0].Kind)
}

func TestShadowingIsLegal(t *testing.T) {
	_, reporter := check(t, `def main() {
	var x = 1 : int;
	{
		var x = true : bool;
		if (x) { print(1); }
	}
	print(x);
}`)
	require.False(t, reporter.HasErrors())
}

func TestScopeEndsAtBlockExit(t *testing.T) {
	_, reporter := check(t, "def main() { { var x = 1 : int; } print(x); }")
	require.Equal(t, 1, reporter.ErrorCount())
	require.Equal(t, diag.UndeclaredVariable, reporter.Diagnostics()[0].Kind)
}

func TestInfoRecordsExpressionTypes(t *testing.T) {
	reporter := diag.NewReporter()
	program, err := parser.Parse("def main() { var b = (1 < 2) : bool; }", reporter)
	require.NoError(t, err)
	info := Check(program, reporter)
	require.False(t, reporter.HasErrors())

	decl := program.Main.Stmts[0].(*ast.VarDecl)
	require.Equal(t, types.Bool, info.TypeOf(decl.Value))

	cmp := decl.Value.(*ast.Binary)
	require.Equal(t, types.Int, info.TypeOf(cmp.Left))
	require.Equal(t, types.Int, info.TypeOf(cmp.Right))

	// Expressions the checker never saw resolve to Invalid.
	require.Equal(t, types.Invalid, info.TypeOf(&ast.NumberLit{Lit: "0"}))
}

func TestTraversalContinuesAfterErrors(t *testing.T) {
	// One bad statement does not hide problems in later statements.
	_, reporter := check(t, `def main() {
	var x = true : int;
	var y = 1 : bool;
	print(false);
}`)
	require.Equal(t, 3, reporter.ErrorCount())
}
