package validate

import (
	"fmt"
	"strings"

	"github.com/shadowCow/langfuzz/ast"
)

// Kind names a category of validation problem.
type Kind string

const (
	KindDuplicateRule   Kind = "Duplicate rule"
	KindRuleNotDeclared Kind = "Rule not declared"
	KindInfiniteLoop    Kind = "Infinite loop detected in leftmost choice"
)

// Error is a single validation problem, carrying the offending rule
// name and the source offsets to report it at as structured fields
// rather than only prose.
type Error struct {
	Kind    Kind
	Rule    string
	Offsets ast.Offsets
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (at %d-%d)", e.Kind, e.Rule, e.Offsets.Start, e.Offsets.End)
}

// Errors collects every problem Validate can detect in one pass, the
// way ll1.GrammarNotLL1Error collects every LL(1) conflict rather than
// stopping at the first one.
type Errors struct {
	Problems []*Error
}

// Error implements the error interface.
func (e *Errors) Error() string {
	lines := make([]string, 0, len(e.Problems)+1)
	lines = append(lines, fmt.Sprintf("grammar failed validation: %d problem(s)", len(e.Problems)))
	for i, p := range e.Problems {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, p.Error()))
	}
	return strings.Join(lines, "\n")
}

// Unwrap exposes the collected problems for errors.As-style callers
// that want to inspect individual entries.
func (e *Errors) Unwrap() []error {
	out := make([]error, len(e.Problems))
	for i, p := range e.Problems {
		out[i] = p
	}
	return out
}
