package compile

import "github.com/shadowCow/langfuzz/internal/stream"

// literalNode emits exactly one skeleton, [text], then terminates.
type literalNode struct {
	text string
}

func (n *literalNode) Generate(bool) stream.Source[Skeleton] {
	emitted := false
	return stream.SourceFunc[Skeleton](func() (Skeleton, bool) {
		if emitted {
			return nil, false
		}
		emitted = true
		return Skeleton{LiteralFragment(n.text)}, true
	})
}

// sequenceNode concatenates its elements in order.
type sequenceNode struct {
	elems []Node
}

func (n *sequenceNode) Generate(expandLabels bool) stream.Source[Skeleton] {
	return generateSequence(n.elems, expandLabels)
}

// generateSequence implements Sequence semantics directly rather than
// building a chain of sequenceNode wrappers: zero elements
// yields the empty skeleton once, one element delegates, and more
// than one interleaves the head with the concatenation of the rest.
func generateSequence(elems []Node, expandLabels bool) stream.Source[Skeleton] {
	switch len(elems) {
	case 0:
		emitted := false
		return stream.SourceFunc[Skeleton](func() (Skeleton, bool) {
			if emitted {
				return nil, false
			}
			emitted = true
			return Skeleton{}, true
		})
	case 1:
		return elems[0].Generate(expandLabels)
	default:
		head := elems[0].Generate(expandLabels)
		tail := generateSequence(elems[1:], expandLabels)
		pairs := stream.EveryCombination(head, tail)
		return stream.Map(pairs, func(p stream.Pair[Skeleton, Skeleton]) Skeleton {
			return p.First.Concat(p.Second)
		})
	}
}

// choiceNode alternates among its options via round-robin fairness.
// options is mutable after construction so that the `*`/`+` unary
// rewrites (see build.go) can close a self-referential cycle through
// a choiceNode before its body is known.
type choiceNode struct {
	options []Node
}

func (n *choiceNode) Generate(expandLabels bool) stream.Source[Skeleton] {
	if len(n.options) == 1 {
		return n.options[0].Generate(expandLabels)
	}
	sources := make([]stream.Source[Skeleton], len(n.options))
	for i, opt := range n.options {
		opt := opt
		var src stream.Source[Skeleton]
		// Each option's stream is built on its first pull, so that
		// generating over a cyclic graph doesn't recurse forever.
		sources[i] = stream.SourceFunc[Skeleton](func() (Skeleton, bool) {
			if src == nil {
				src = opt.Generate(expandLabels)
			}
			return src.Next()
		})
	}
	return stream.RoundRobin(sources)
}

// ruleNode is the single shared node for a named rule: every RuleRef
// to that name resolves to the same *ruleNode, which is how cycles
// arise in the compiled graph. inner is filled in during the second
// compilation pass (see build.go), after every rule has already been
// interned — this is the "fillable slot" discipline that lets the
// graph close its cycles while staying otherwise immutable.
//
// A labeled rule's node doubles as the LabeledProduction wrapper: when
// expandLabels is false it yields a single placeholder skeleton
// instead of delegating to inner.
type ruleNode struct {
	name    string
	labeled bool
	inner   Node
}

func (n *ruleNode) Generate(expandLabels bool) stream.Source[Skeleton] {
	if n.labeled && !expandLabels {
		emitted := false
		return stream.SourceFunc[Skeleton](func() (Skeleton, bool) {
			if emitted {
				return nil, false
			}
			emitted = true
			return Skeleton{PlaceholderFragment(n.name)}, true
		})
	}
	return n.inner.Generate(expandLabels)
}

func emptySequenceNode() Node {
	return &sequenceNode{}
}
