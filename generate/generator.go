// Package generate is the top-level entry point: it validates a
// grammar, compiles it, and exposes the two-phase skeleton/label
// expansion pipeline as a plain pull iterator of strings.
package generate

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/shadowCow/langfuzz/ast"
	"github.com/shadowCow/langfuzz/internal/compile"
	"github.com/shadowCow/langfuzz/internal/labelling"
	"github.com/shadowCow/langfuzz/internal/stream"
	"github.com/shadowCow/langfuzz/internal/validate"
)

// Generator owns a compiled, read-only production graph and can hand
// out any number of independent string iterators over it: the graph
// is shareable, but each iterator owns its own cursors and buffers.
type Generator struct {
	graph  *compile.Graph
	logger *slog.Logger
}

// Option configures a Generator at construction time: a setter
// toggling an otherwise-silent pipeline's observability, expressed as
// a functional option instead of a post-construction mutator since a
// Generator is meant to be read-only after Try/Must returns.
type Option func(*Generator)

// WithTraceLogger attaches a logger that records compilation and
// skeleton/label-expansion decisions at debug level.
func WithTraceLogger(logger *slog.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// Try validates g and, if it passes, compiles it into a Generator,
// returning every collected problem as a *validate.Errors when it
// doesn't.
func Try(g *ast.Grammar, opts ...Option) (*Generator, error) {
	if err := validate.Validate(g); err != nil {
		return nil, err
	}
	gen := &Generator{graph: compile.Compile(g)}
	for _, opt := range opts {
		opt(gen)
	}
	if gen.logger != nil {
		gen.logger.Debug("grammar compiled", "name", g.Name, "rules", len(g.Rules))
	}
	return gen, nil
}

// Must is like Try but panics with the first collected validation
// error instead of returning it.
func Must(g *ast.Grammar, opts ...Option) *Generator {
	gen, err := Try(g, opts...)
	if err != nil {
		ve := err.(*validate.Errors)
		panic(ve.Problems[0])
	}
	return gen
}

// Strings returns a fresh, independent lazy iterator over every
// sentence the grammar produces, in a fixed deterministic order.
// Multiple calls are safe to use concurrently from separate
// goroutines; the returned iterator itself is not.
func (g *Generator) Strings() stream.Source[string] {
	skeletons := g.graph.Root.Generate(false)
	return &expander{graph: g.graph, logger: g.logger, skeletons: skeletons}
}

// Take pulls the first n strings, or fewer if the language is finite
// and exhausted first.
func (g *Generator) Take(n int) []string {
	return stream.Take(g.Strings(), n)
}

// TakeWhile pulls strings until pred returns false or the language is
// exhausted, not including the first rejected value.
func (g *Generator) TakeWhile(pred func(string) bool) []string {
	src := g.Strings()
	var out []string
	for {
		v, ok := src.Next()
		if !ok || !pred(v) {
			return out
		}
		out = append(out, v)
	}
}

// expander implements stream.Source[string] by pulling skeletons from
// the compiled graph (with labels left as placeholders) and flattening
// each one into zero or more fully-substituted strings.
// Skeletons without any placeholder flatten to exactly one string;
// ones with placeholders may fan out into many, so expander buffers
// the current skeleton's results and drains them before pulling the
// next skeleton.
type expander struct {
	graph     *compile.Graph
	logger    *slog.Logger
	skeletons stream.Source[compile.Skeleton]
	pending   []string
}

func (e *expander) Next() (string, bool) {
	for len(e.pending) == 0 {
		sk, ok := e.skeletons.Next()
		if !ok {
			return "", false
		}
		e.pending = e.expand(sk)
	}
	v := e.pending[0]
	e.pending = e.pending[1:]
	return v, true
}

// expand turns a single skeleton into every string it can substitute
// to, by expanding its label placeholders.
func (e *expander) expand(sk compile.Skeleton) []string {
	counts := make(map[string]int)
	var names []string
	for _, f := range sk {
		if !f.IsPlaceholder {
			continue
		}
		if _, seen := counts[f.RuleName]; !seen {
			names = append(names, f.RuleName)
		}
		counts[f.RuleName]++
	}

	if len(names) == 0 {
		return []string{flattenSkeleton(sk)}
	}
	sort.Strings(names)

	perName := make([]stream.Source[[]string], len(names))
	for i, name := range names {
		k := counts[name]
		values := e.labelValues(name, k)
		perName[i] = labelling.EveryLabelling(values, k)
	}

	combos := stream.EveryCombinationMany(perName)
	var out []string
	for {
		combo, ok := combos.Next()
		if !ok {
			break
		}
		assignment := make(map[string][]string, len(names))
		for i, name := range names {
			assignment[name] = combo[i]
		}
		out = append(out, substitute(sk, assignment))
	}
	return out
}

// labelValues pulls the first k (or fewer, if the rule's unlabeled
// expansion is exhausted first) concrete strings from name's
// fully-expanded generator, via a fresh iterator.
func (e *expander) labelValues(name string, k int) []string {
	node := e.graph.RuleNode(name)
	if node == nil {
		panic("generate: placeholder named an unknown rule " + name + "; this is a compiler/validator invariant, not a grammar error")
	}
	src := node.Generate(true)
	out := make([]string, 0, k)
	for i := 0; i < k; i++ {
		v, ok := src.Next()
		if !ok {
			if e.logger != nil {
				e.logger.Debug("label rule exhausted before k values", "rule", name, "k", k, "got", len(out))
			}
			break
		}
		out = append(out, flattenSkeleton(v))
	}
	return out
}

// substitute walks sk left to right, replacing the i-th occurrence of
// each placeholder name with the i-th element of assignment[name].
func substitute(sk compile.Skeleton, assignment map[string][]string) string {
	var b strings.Builder
	counters := make(map[string]int)
	for _, f := range sk {
		if !f.IsPlaceholder {
			b.WriteString(f.Literal)
			continue
		}
		i := counters[f.RuleName]
		b.WriteString(assignment[f.RuleName][i])
		counters[f.RuleName]++
	}
	return b.String()
}

func flattenSkeleton(sk compile.Skeleton) string {
	var b strings.Builder
	for _, f := range sk {
		b.WriteString(f.Literal)
	}
	return b.String()
}
