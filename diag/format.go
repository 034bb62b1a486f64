package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colors used for diagnostic formatting. fatih/color disables itself
// automatically when the destination is not a terminal.
var (
	colorError   = color.New(color.FgRed, color.Bold)
	colorWarning = color.New(color.FgYellow, color.Bold)
	colorKind    = color.New(color.FgWhite, color.Bold)
	colorLoc     = color.New(color.FgCyan)
	colorLineNum = color.New(color.FgHiBlack)
	colorCaret   = color.New(color.FgHiRed, color.Bold)
)

// Formatter renders diagnostics for terminal display, with the relevant
// line of source code and a caret underline when a range is available.
type Formatter struct {
	filename string
	lines    []string
}

// NewFormatter returns a Formatter for the given source text. The
// filename may be empty, in which case locations are printed bare.
func NewFormatter(filename, source string) *Formatter {
	return &Formatter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders a single diagnostic as a multi-line string.
func (f *Formatter) Format(d Diagnostic) string {
	var b strings.Builder

	// Header: "error[type mismatch]: message"
	sev := colorError
	if d.Severity == Warning {
		sev = colorWarning
	}
	b.WriteString(sev.Sprint(d.Severity.String()))
	b.WriteString(colorKind.Sprintf("[%s]", d.Kind))
	b.WriteString(": ")
	b.WriteString(d.Message)
	b.WriteString("\n")

	if d.Range.IsZero() {
		return b.String()
	}

	// Location arrow: "  --> file.bx:10:5"
	loc := d.Range.Start.String()
	if f.filename != "" {
		loc = fmt.Sprintf("%s:%s", f.filename, loc)
	}
	b.WriteString("  ")
	b.WriteString(colorLoc.Sprintf("--> %s", loc))
	b.WriteString("\n")

	// Source line with caret underline.
	line := d.Range.Start.Line
	if line < 0 || line >= len(f.lines) {
		return b.String()
	}
	text := f.lines[line]
	num := fmt.Sprintf("%d", d.Range.Start.LineNumber())
	b.WriteString(colorLineNum.Sprintf("%s | ", num))
	b.WriteString(text)
	b.WriteString("\n")

	width := 1
	if d.Range.End.Line == d.Range.Start.Line && d.Range.End.Column > d.Range.Start.Column {
		width = d.Range.End.Column - d.Range.Start.Column
	}
	pad := strings.Repeat(" ", len(num)+3+d.Range.Start.Column)
	b.WriteString(pad)
	b.WriteString(colorCaret.Sprint(strings.Repeat("^", width)))
	b.WriteString("\n")
	return b.String()
}

// Render writes every recorded diagnostic to w using the formatter.
func (f *Formatter) Render(w io.Writer, r *Reporter) {
	for _, d := range r.Diagnostics() {
		fmt.Fprintln(w, f.Format(d))
	}
}
