// Package validate checks a grammar for the two structural problems
// that would make enumeration unsafe or ill-defined: a reference to an
// undeclared rule, and a rule that can never terminate because every
// path through its leftmost choices recurses into itself without ever
// passing through a rule body that can match ε or a literal on its
// own. Both checks run over the whole grammar and collect every
// problem found rather than stopping at the first one.
package validate

import "github.com/shadowCow/langfuzz/ast"

// Validate runs every check against g and returns nil if the grammar
// is safe to compile, or a *Errors listing every problem otherwise.
func Validate(g *ast.Grammar) error {
	var problems []*Error

	declared := make(map[string]*ast.Rule, len(g.Rules))
	for _, r := range g.Rules {
		if _, seen := declared[r.Name]; seen {
			problems = append(problems, &Error{Kind: KindDuplicateRule, Rule: r.Name, Offsets: r.Offsets})
			continue
		}
		declared[r.Name] = r
	}

	for _, r := range g.Rules {
		problems = append(problems, checkReferences(r.Root, declared)...)
	}

	for _, r := range g.Rules {
		if rule, ok := declared[r.Name]; ok && rule == r {
			if p := checkTermination(r, declared); p != nil {
				problems = append(problems, p)
			}
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &Errors{Problems: problems}
}

// checkReferences walks p looking for RuleRefs that don't name a
// declared rule.
func checkReferences(p ast.Production, declared map[string]*ast.Rule) []*Error {
	switch v := p.(type) {
	case ast.Literal:
		return nil
	case ast.RuleRef:
		if _, ok := declared[v.Name]; !ok {
			return []*Error{{Kind: KindRuleNotDeclared, Rule: v.Name, Offsets: v.Offsets}}
		}
		return nil
	case ast.Sequence:
		var out []*Error
		for _, e := range v {
			out = append(out, checkReferences(e, declared)...)
		}
		return out
	case ast.Choice:
		var out []*Error
		for _, e := range v {
			out = append(out, checkReferences(e, declared)...)
		}
		return out
	case ast.Unary:
		return checkReferences(v.Inner, declared)
	default:
		return nil
	}
}

// checkTermination walks the leftmost choices reachable from start
// and reports a loop if the walk revisits a rule already on the
// current path before reaching one that terminates trivially.
//
// A production "terminates trivially" when it can be shown, without
// consulting any other rule, to match something grounded on a literal
// or ε: a Literal, an empty Sequence, a Choice with at least one
// trivially-terminating alternative (not necessarily the first — a
// rule with a `| ℇ` escape is safe even though its first alternative
// recurses), `*`/`?` (always, since both can match ε), or `+` whose
// inner production is itself trivial. A bare RuleRef is never trivial
// on its own; chasing it is exactly the cross-rule traversal this
// check performs.
//
// When a production is not trivially terminating, its leftmost edge
// is the rule to chase next: the first non-trivial element of a
// Sequence, the first alternative of a Choice (reachable only when no
// alternative is trivial), or the inner production of `+`.
func checkTermination(start *ast.Rule, declared map[string]*ast.Rule) *Error {
	visited := map[string]bool{start.Name: true}
	current := start

	for {
		if terminatesTrivially(current.Root) {
			return nil
		}
		name, ok := leftmostEdge(current.Root)
		if !ok {
			return nil
		}
		if visited[name] {
			return &Error{Kind: KindInfiniteLoop, Rule: start.Name, Offsets: start.Offsets}
		}
		visited[name] = true
		next, ok := declared[name]
		if !ok {
			// An undeclared reference is reported by checkReferences;
			// don't also claim a loop through a rule that doesn't exist.
			return nil
		}
		current = next
	}
}

func terminatesTrivially(p ast.Production) bool {
	switch v := p.(type) {
	case ast.Literal:
		return true
	case ast.RuleRef:
		return false
	case ast.Sequence:
		for _, e := range v {
			if !terminatesTrivially(e) {
				return false
			}
		}
		return true
	case ast.Choice:
		for _, e := range v {
			if terminatesTrivially(e) {
				return true
			}
		}
		return false
	case ast.Unary:
		switch v.Op {
		case ast.Star, ast.Optional:
			return true
		case ast.Plus:
			return terminatesTrivially(v.Inner)
		default:
			return false
		}
	default:
		return false
	}
}

// leftmostEdge is only meaningful when terminatesTrivially(p) is
// false; it returns the rule name that p's leftmost path depends on.
func leftmostEdge(p ast.Production) (string, bool) {
	switch v := p.(type) {
	case ast.RuleRef:
		return v.Name, true
	case ast.Sequence:
		for _, e := range v {
			if terminatesTrivially(e) {
				continue
			}
			return leftmostEdge(e)
		}
		return "", false
	case ast.Choice:
		if len(v) == 0 {
			return "", false
		}
		return leftmostEdge(v[0])
	case ast.Unary:
		if v.Op == ast.Plus {
			return leftmostEdge(v.Inner)
		}
		return "", false
	default:
		return "", false
	}
}
