// Package diagnostics defines the typed error kinds the toolchain reports
// at its boundaries, plus the CLI-facing rendering helper.
package diagnostics

import (
	"fmt"

	"go.uber.org/multierr"
)

// SpecLoadError reports a failure to load or parse a lexical-spec or
// grammar JSON file.
type SpecLoadError struct {
	Path string
	Err  error
}

func (e *SpecLoadError) Error() string {
	return fmt.Sprintf("spec load error: %s: %v", e.Path, e.Err)
}

func (e *SpecLoadError) Unwrap() error { return e.Err }

// RegexParseError names the offending token and what remained unparsed
// when a regex pattern failed to parse.
type RegexParseError struct {
	Pattern   string
	Token     string
	Remainder string
}

func (e *RegexParseError) Error() string {
	return fmt.Sprintf("regex parse error in %q: unexpected %q before %q", e.Pattern, e.Token, e.Remainder)
}

// LexicalError reports that no token definition matched a word during
// tokenization.
type LexicalError struct {
	Word   string
	Line   int
	Column int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at %d:%d: %q does not match any token", e.Line, e.Column, e.Word)
}

// SyntaxError reports that the LL(1) recognizer rejected the input, or
// that grammar normalization produced conflicts. Multiple causes are
// aggregated with multierr.
type SyntaxError struct {
	Context string
	Causes  error
}

func (e *SyntaxError) Error() string {
	if e.Causes == nil {
		return fmt.Sprintf("syntax error: %s", e.Context)
	}
	return fmt.Sprintf("syntax error: %s: %v", e.Context, e.Causes)
}

func (e *SyntaxError) Unwrap() error { return e.Causes }

// NewSyntaxError aggregates one or more causes into a single SyntaxError.
func NewSyntaxError(context string, causes ...error) *SyntaxError {
	return &SyntaxError{Context: context, Causes: multierr.Combine(causes...)}
}

// BuildFailure reports that the automaton or table construction pipeline
// could not complete, aggregating every underlying cause.
type BuildFailure struct {
	Stage  string
	Causes error
}

func (e *BuildFailure) Error() string {
	return fmt.Sprintf("build failure in %s: %v", e.Stage, e.Causes)
}

func (e *BuildFailure) Unwrap() error { return e.Causes }

// NewBuildFailure aggregates one or more causes into a single BuildFailure.
func NewBuildFailure(stage string, causes ...error) *BuildFailure {
	return &BuildFailure{Stage: stage, Causes: multierr.Combine(causes...)}
}
