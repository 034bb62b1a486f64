package diag

import (
	"testing"

	"github.com/bxlang/bx/token"
	"github.com/stretchr/testify/require"
)

func TestReporterCounts(t *testing.T) {
	r := NewReporter()
	require.False(t, r.HasErrors())
	require.Equal(t, 0, r.ErrorCount())

	r.Errorf(TypeMismatch, Range{}, "first")
	r.Warnf(TypeMismatch, Range{}, "just a warning")
	r.Errorf(SyntaxError, Range{}, "second")

	require.True(t, r.HasErrors())
	require.Equal(t, 2, r.ErrorCount())
	require.Equal(t, 1, r.WarningCount())
	require.Len(t, r.Diagnostics(), 3)
}

func TestDiagnosticsKeepReportOrder(t *testing.T) {
	r := NewReporter()
	r.Errorf(LexicalError, Range{}, "a")
	r.Errorf(SyntaxError, Range{}, "b")
	r.Errorf(TypeMismatch, Range{}, "c")

	kinds := make([]Kind, 0, 3)
	for _, d := range r.Diagnostics() {
		kinds = append(kinds, d.Kind)
	}
	require.Equal(t, []Kind{LexicalError, SyntaxError, TypeMismatch}, kinds)
}

func TestCheckpoint(t *testing.T) {
	r := NewReporter()
	r.Errorf(LexicalError, Range{}, "before")

	cp := r.Checkpoint()
	require.False(t, cp.Failed())
	require.Equal(t, 0, cp.NewErrors())

	// Warnings never trip a checkpoint.
	r.Warnf(TypeMismatch, Range{}, "harmless")
	require.False(t, cp.Failed())

	r.Errorf(SyntaxError, Range{}, "inside")
	r.Errorf(SyntaxError, Range{}, "also inside")
	require.True(t, cp.Failed())
	require.Equal(t, 2, cp.NewErrors())

	// A later checkpoint starts from the new baseline.
	cp2 := r.Checkpoint()
	require.False(t, cp2.Failed())
}

func TestErr(t *testing.T) {
	r := NewReporter()
	require.NoError(t, r.Err())

	// Warnings alone do not make Err non-nil.
	r.Warnf(TypeMismatch, Range{}, "only a warning")
	require.NoError(t, r.Err())

	r.Errorf(UndeclaredVariable, Range{}, "undeclared usage of var `x'")
	r.Errorf(TypeMismatch, Range{}, "cannot assign")
	err := r.Err()
	require.Error(t, err)
	require.Contains(t, err.Error(), "undeclared usage of var `x'")
	require.Contains(t, err.Error(), "cannot assign")
}

func TestDiagnosticError(t *testing.T) {
	withRange := Diagnostic{
		Kind:    TypeMismatch,
		Message: "cannot assign `bool' value to `int' variable `x'",
		Range: Range{
			Start: token.Position{Char: 4, Line: 0, Column: 4},
			End:   token.Position{Char: 5, Line: 0, Column: 5},
		},
	}
	require.Equal(t,
		"1:5: type mismatch: cannot assign `bool' value to `int' variable `x'",
		withRange.Error())

	fileLevel := Diagnostic{Kind: SyntaxError, Message: "syntax error at end of file"}
	require.Equal(t, "syntax error: syntax error at end of file", fileLevel.Error())
}

func TestRange(t *testing.T) {
	require.True(t, Range{}.IsZero())

	tok := token.Token{
		Type:          token.IDENT,
		Literal:       "x",
		StartPosition: token.Position{Char: 4, Line: 0, Column: 4},
		EndPosition:   token.Position{Char: 5, Line: 0, Column: 5},
	}
	r := TokenRange(tok)
	require.False(t, r.IsZero())
	require.Equal(t, tok.StartPosition, r.Start)
	require.Equal(t, tok.EndPosition, r.End)
	require.Equal(t, "1:5", r.String())
	require.Equal(t, "<file>", Range{}.String())
}
