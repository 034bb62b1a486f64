// Package bx ties the compilation phases together: lexing, parsing, type
// checking, and three-address code generation.
//
// The pipeline is single threaded and synchronous. Each phase fully
// consumes its input before the next begins, and a phase only runs while
// the shared reporter's error count is zero: recoverable diagnostics
// never stop traversal inside a phase, but they do gate the hand-off to
// the next one.
package bx

import (
	"context"

	"github.com/bxlang/bx/codegen"
	"github.com/bxlang/bx/diag"
	"github.com/bxlang/bx/parser"
	"github.com/bxlang/bx/semantic"
	"github.com/bxlang/bx/tac"
	"github.com/rs/zerolog"
)

// Option is a configuration function for a compilation.
type Option func(*options)

type options struct {
	filename   string
	discipline codegen.Discipline
	reporter   *diag.Reporter
	logger     zerolog.Logger
}

func collectOptions(opts ...Option) *options {
	o := &options{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	if o.reporter == nil {
		o.reporter = diag.NewReporter()
	}
	return o
}

// WithFilename sets the filename of the source code being compiled. It
// is attached to every log event the compilation emits.
func WithFilename(filename string) Option {
	return func(o *options) {
		o.filename = filename
	}
}

// WithDiscipline selects the IR emission discipline.
func WithDiscipline(d codegen.Discipline) Option {
	return func(o *options) {
		o.discipline = d
	}
}

// WithReporter supplies the diagnostics reporter for the compilation.
// Callers that want to render diagnostics after a failed compile should
// pass their own reporter and inspect it afterwards.
func WithReporter(r *diag.Reporter) Option {
	return func(o *options) {
		o.reporter = r
	}
}

// WithLogger enables structured logging of phase progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Compile compiles BX source text to three-address code. On failure the
// returned error aggregates every diagnostic recorded before the
// pipeline stopped; the reporter passed via WithReporter holds the
// individual diagnostics with their source ranges.
func Compile(ctx context.Context, source string, opts ...Option) (*tac.Program, error) {
	o := collectOptions(opts...)
	log := o.logger
	if o.filename != "" {
		log = log.With().Str("filename", o.filename).Logger()
	}

	program, err := parser.Parse(source, o.reporter)
	if err != nil {
		log.Debug().Int("errors", o.reporter.ErrorCount()).Msg("parse failed")
		return nil, err
	}
	log.Debug().Msg("parse ok")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	semantic.Check(program, o.reporter)
	if o.reporter.HasErrors() {
		log.Debug().Int("errors", o.reporter.ErrorCount()).Msg("type check failed")
		return nil, o.reporter.Err()
	}
	log.Debug().Msg("type check ok")
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unit, err := codegen.Compile(program, &codegen.Config{
		Discipline: o.discipline,
		Reporter:   o.reporter,
	})
	if err != nil {
		return nil, err
	}
	if o.reporter.HasErrors() {
		log.Debug().Int("errors", o.reporter.ErrorCount()).Msg("lowering failed")
		return nil, o.reporter.Err()
	}
	log.Debug().
		Str("discipline", o.discipline.String()).
		Int("instructions", len(unit.Procs[0].Body)).
		Msg("lowering ok")
	return unit, nil
}
