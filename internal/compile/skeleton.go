// Package compile lowers a validated ast.Grammar into a cyclic graph
// of production nodes suitable for repeated lazy traversal. Each node
// exposes a single capability, Generate, that returns a fresh stream
// of sentence skeletons on every call, rather than a sprawling
// interface.
package compile

import "github.com/shadowCow/langfuzz/internal/stream"

// Fragment is one element of a Skeleton: either a literal string or a
// label placeholder standing in for "one occurrence of a yet-to-be-
// chosen value from the named rule".
type Fragment struct {
	Literal       string
	IsPlaceholder bool
	RuleName      string
}

// LiteralFragment builds a literal-text Fragment.
func LiteralFragment(s string) Fragment { return Fragment{Literal: s} }

// PlaceholderFragment builds a label-placeholder Fragment for the
// named rule.
func PlaceholderFragment(name string) Fragment {
	return Fragment{IsPlaceholder: true, RuleName: name}
}

// Skeleton is an ordered sequence of fragments — a sentence with its
// label placeholders not yet expanded.
type Skeleton []Fragment

// Concat returns a new Skeleton with suffix's fragments appended after
// s's.
func (s Skeleton) Concat(suffix Skeleton) Skeleton {
	out := make(Skeleton, 0, len(s)+len(suffix))
	out = append(out, s...)
	out = append(out, suffix...)
	return out
}

// Node is a compiled production. It's a sum type over {Literal,
// Sequence, Choice, LabeledProduction}, implemented by four concrete
// Go types: literalNode, sequenceNode, choiceNode, and ruleNode (which
// serves every rule and acts as LabeledProduction for labeled ones).
type Node interface {
	// Generate returns a fresh, single-pass stream of skeletons. When
	// expandLabels is false, a labeled rule's node yields a single
	// placeholder skeleton instead of expanding its body.
	Generate(expandLabels bool) stream.Source[Skeleton]
}
