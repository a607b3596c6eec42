package compile

import (
	"fmt"

	"github.com/shadowCow/langfuzz/ast"
)

// Graph is a compiled grammar: a cyclic node graph plus the rule it
// should be iterated from.
type Graph struct {
	Root  Node
	rules map[string]*ruleNode
}

// RuleNode returns the compiled node for a declared rule name, or nil
// if no such rule exists. Used by the generator to reopen a labeled
// rule's unlabeled expansion during label counting.
func (g *Graph) RuleNode(name string) Node {
	n, ok := g.rules[name]
	if !ok {
		return nil
	}
	return n
}

// InternalError signals a compiler invariant violation: a grammar that
// reached Compile without having passed internal/validate's checks
// first, or a grammar with no rules, which those checks accept.
// Compile panics with it; it is never returned.
type InternalError struct {
	msg string
}

func (e *InternalError) Error() string { return "compile: internal invariant violated: " + e.msg }

// Compile lowers a grammar's rules into a cyclic production graph.
// Compile assumes g has already passed internal/validate's checks: an
// unresolved rule reference or an unrecognized production/operator
// kind panics with *InternalError rather than returning an error,
// since both are validator responsibilities, not compiler ones.
//
// Construction is two-pass: first every rule name is interned
// with an empty *ruleNode, then each rule's body is compiled with
// RuleRef resolved against that table, so a rule may reference itself
// or any other rule (directly or transitively) and the resulting graph
// closes its cycles correctly.
func Compile(g *ast.Grammar) *Graph {
	rules := make(map[string]*ruleNode, len(g.Rules))
	for _, r := range g.Rules {
		rules[r.Name] = &ruleNode{name: r.Name, labeled: r.Labeled}
	}

	for _, r := range g.Rules {
		rules[r.Name].inner = compileProduction(r.Root, rules)
	}

	if len(g.Rules) == 0 {
		panic(&InternalError{msg: fmt.Sprintf("grammar %q has no rules", g.Name)})
	}

	root := rules[g.Rules[0].Name]
	return &Graph{Root: root, rules: rules}
}

// compileProduction lowers a single ast.Production, resolving RuleRef
// against the already-interned rules table and rewriting the `*`, `+`,
// `?` unary operators into Sequence/Choice form.
func compileProduction(p ast.Production, rules map[string]*ruleNode) Node {
	switch v := p.(type) {
	case ast.Literal:
		return &literalNode{text: string(v)}

	case ast.RuleRef:
		n, ok := rules[v.Name]
		if !ok {
			panic(&InternalError{msg: fmt.Sprintf("unresolved rule reference %q", v.Name)})
		}
		return n

	case ast.Sequence:
		elems := make([]Node, len(v))
		for i, e := range v {
			elems[i] = compileProduction(e, rules)
		}
		return &sequenceNode{elems: elems}

	case ast.Choice:
		opts := make([]Node, len(v))
		for i, e := range v {
			opts[i] = compileProduction(e, rules)
		}
		return &choiceNode{options: opts}

	case ast.Unary:
		inner := compileProduction(v.Inner, rules)
		switch v.Op {
		case ast.Star:
			return compileStar(inner)
		case ast.Plus:
			return compilePlus(inner)
		case ast.Optional:
			return compileOptional(inner)
		default:
			panic(&InternalError{msg: fmt.Sprintf("unknown unary operator %v", v.Op)})
		}

	default:
		panic(&InternalError{msg: fmt.Sprintf("unknown production type %T", p)})
	}
}

// compileStar rewrites X* into C where C = ε | X C: a choiceNode that
// is its own second alternative's tail, via the fillable-options
// discipline described in node.go.
func compileStar(inner Node) Node {
	c := &choiceNode{}
	body := &sequenceNode{elems: []Node{inner, c}}
	c.options = []Node{emptySequenceNode(), body}
	return c
}

// compilePlus rewrites X+ into S where S = X (ε | S).
func compilePlus(inner Node) Node {
	s := &sequenceNode{}
	tail := &choiceNode{options: []Node{emptySequenceNode(), s}}
	s.elems = []Node{inner, tail}
	return s
}

// compileOptional rewrites X? into Choice(ε, X).
func compileOptional(inner Node) Node {
	return &choiceNode{options: []Node{emptySequenceNode(), inner}}
}
