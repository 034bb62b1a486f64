// Package diag accumulates compiler diagnostics tagged with source ranges.
//
// A single Reporter instance is shared by every phase of one compilation.
// Phases report errors as they encounter them and keep going; the driver
// inspects the error count between phases to decide whether compilation
// may proceed. A Checkpoint captures a baseline error count so a bounded
// operation (such as an entire parse) can ask whether it introduced any
// new errors, regardless of how the operation exits.
package diag

import (
	"fmt"

	"github.com/bxlang/bx/token"
	"github.com/hashicorp/go-multierror"
)

// Kind classifies a diagnostic. The set is closed: every diagnostic the
// compiler can produce belongs to exactly one of these kinds.
type Kind string

const (
	LexicalError               Kind = "lexical error"
	SyntaxError                Kind = "syntax error"
	UndeclaredVariable         Kind = "undeclared variable"
	DoubleDeclare              Kind = "double declare"
	TypeMismatch               Kind = "type mismatch"
	InvalidOperatorOperands    Kind = "invalid operator operands"
	BreakOrContinueOutsideLoop Kind = "break or continue outside loop"
	UnknownOperator            Kind = "unknown operator"
	InternalError              Kind = "internal error"
)

// Severity indicates how serious a diagnostic is.
type Severity int

const (
	Error Severity = iota
	Warning
)

func (s Severity) String() string {
	if s == Warning {
		return "warning"
	}
	return "error"
}

// Range is a source span from a start to an end position. The zero Range
// means the diagnostic applies to the file as a whole rather than to a
// particular location.
type Range struct {
	Start token.Position
	End   token.Position
}

// NewRange returns a Range spanning the two positions.
func NewRange(start, end token.Position) Range {
	return Range{Start: start, End: end}
}

// TokenRange returns the Range covered by a single token.
func TokenRange(tok token.Token) Range {
	return Range{Start: tok.StartPosition, End: tok.EndPosition}
}

// IsZero reports whether the range has not been set.
func (r Range) IsZero() bool {
	return r == Range{}
}

func (r Range) String() string {
	if r.IsZero() {
		return "<file>"
	}
	return r.Start.String()
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Message  string
	Range    Range
}

// Error implements the error interface so diagnostics can be aggregated
// with the rest of the program's error handling.
func (d Diagnostic) Error() string {
	if d.Range.IsZero() {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Range.Start.String(), d.Kind, d.Message)
}

// Reporter accumulates diagnostics for one compilation.
type Reporter struct {
	diagnostics []Diagnostic
	errorCount  int
	warnCount   int
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Errorf records an error diagnostic. A zero Range marks the diagnostic
// as file-level.
func (r *Reporter) Errorf(kind Kind, rng Range, format string, args ...interface{}) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Kind:     kind,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Range:    rng,
	})
	r.errorCount++
}

// Warnf records a warning diagnostic. Warnings never gate compilation.
func (r *Reporter) Warnf(kind Kind, rng Range, format string, args ...interface{}) {
	r.diagnostics = append(r.diagnostics, Diagnostic{
		Kind:     kind,
		Severity: Warning,
		Message:  fmt.Sprintf(format, args...),
		Range:    rng,
	})
	r.warnCount++
}

// ErrorCount returns the number of errors reported so far.
func (r *Reporter) ErrorCount() int {
	return r.errorCount
}

// WarningCount returns the number of warnings reported so far.
func (r *Reporter) WarningCount() int {
	return r.warnCount
}

// HasErrors reports whether any error has been recorded.
func (r *Reporter) HasErrors() bool {
	return r.errorCount > 0
}

// Diagnostics returns all recorded diagnostics in report order.
func (r *Reporter) Diagnostics() []Diagnostic {
	return r.diagnostics
}

// Err aggregates all error diagnostics into a single error value, or nil
// if no errors were reported. Warnings are not included.
func (r *Reporter) Err() error {
	var result *multierror.Error
	for _, d := range r.diagnostics {
		if d.Severity == Error {
			result = multierror.Append(result, d)
		}
	}
	return result.ErrorOrNil()
}

// Checkpoint captures the current error count as a baseline.
type Checkpoint struct {
	reporter *Reporter
	baseline int
}

// Checkpoint returns a Checkpoint holding the current error count.
func (r *Reporter) Checkpoint() Checkpoint {
	return Checkpoint{reporter: r, baseline: r.errorCount}
}

// Failed reports whether any new errors were recorded since the
// checkpoint was taken.
func (c Checkpoint) Failed() bool {
	return c.reporter.errorCount > c.baseline
}

// NewErrors returns the number of errors recorded since the checkpoint
// was taken.
func (c Checkpoint) NewErrors() int {
	return c.reporter.errorCount - c.baseline
}
