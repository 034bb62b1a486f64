package diag

import (
	"strings"
	"testing"

	"github.com/bxlang/bx/token"
	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func TestFormatWithRange(t *testing.T) {
	color.NoColor = true

	source := "def main() {\n\tx = true;\n}"
	f := NewFormatter("demo.bx", source)
	d := Diagnostic{
		Kind:    TypeMismatch,
		Message: "cannot assign `bool' value to `int' variable `x'",
		Range: Range{
			Start: token.Position{Char: 14, Line: 1, Column: 1},
			End:   token.Position{Char: 23, Line: 1, Column: 10},
		},
	}

	out := f.Format(d)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Equal(t, "error[type mismatch]: cannot assign `bool' value to `int' variable `x'", lines[0])
	require.Equal(t, "  --> demo.bx:2:2", lines[1])
	require.Equal(t, "2 | \tx = true;", lines[2])
	require.Equal(t, strings.Repeat("^", 9), strings.TrimLeft(lines[3], " "))
}

func TestFormatFileLevel(t *testing.T) {
	color.NoColor = true

	f := NewFormatter("demo.bx", "def main() {")
	d := Diagnostic{Kind: SyntaxError, Message: "syntax error at end of file"}
	require.Equal(t, "error[syntax error]: syntax error at end of file\n", f.Format(d))
}

func TestFormatWithoutFilename(t *testing.T) {
	color.NoColor = true

	f := NewFormatter("", "x")
	d := Diagnostic{
		Kind:    LexicalError,
		Message: "illegal character: `$' -- skipping",
		Range: Range{
			Start: token.Position{Char: 0, Line: 0, Column: 0},
			End:   token.Position{Char: 1, Line: 0, Column: 1},
		},
	}
	require.Contains(t, f.Format(d), "--> 1:1")
}

func TestRenderWritesAllDiagnostics(t *testing.T) {
	color.NoColor = true

	r := NewReporter()
	r.Errorf(SyntaxError, Range{}, "first problem")
	r.Warnf(TypeMismatch, Range{}, "second problem")

	var b strings.Builder
	NewFormatter("demo.bx", "").Render(&b, r)
	out := b.String()
	require.Contains(t, out, "error[syntax error]: first problem")
	require.Contains(t, out, "warning[type mismatch]: second problem")
}
