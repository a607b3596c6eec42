package ast

// The grammars below reproduce a set of canonical end-to-end scenarios
// verbatim. They serve as runnable documentation and as the backing
// data for this module's tests.

// ExampleAlternatingAOrBGrammar is scenario (a): foo = "a" | "b" foo;
// First 5 sentences: "a","ba","bba","bbba","bbbba".
func ExampleAlternatingAOrBGrammar() *Grammar {
	return &Grammar{
		Name: "alternating-a-or-b",
		Rules: []*Rule{
			{
				Name: "foo",
				Root: Choice{
					Literal("a"),
					Sequence{Literal("b"), RuleRef{Name: "foo"}},
				},
			},
		},
	}
}

// ExampleBOrCStarGrammar is scenario (b):
//
//	start = "a" bOrCStar;
//	bOrC = "b" | "c";
//	bOrCStar = ε | bOrC bOrCStar;
func ExampleBOrCStarGrammar() *Grammar {
	return &Grammar{
		Name: "b-or-c-star",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Sequence{Literal("a"), RuleRef{Name: "bOrCStar"}},
			},
			{
				Name: "bOrC",
				Root: Choice{Literal("b"), Literal("c")},
			},
			{
				Name: "bOrCStar",
				Root: Choice{
					Sequence{},
					Sequence{RuleRef{Name: "bOrC"}, RuleRef{Name: "bOrCStar"}},
				},
			},
		},
	}
}

// ExampleBalancedGrammar is scenario (c):
//
//	start = ε | "a" aStar "b" start;
//	aStar = ε | "a" aStar;
//
// First 4 sentences: "","ab","aab","abab"; index 12 (the 13th
// sentence) is "aaaabaab".
func ExampleBalancedGrammar() *Grammar {
	return &Grammar{
		Name: "balanced",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Choice{
					Sequence{},
					Sequence{
						Literal("a"),
						RuleRef{Name: "aStar"},
						Literal("b"),
						RuleRef{Name: "start"},
					},
				},
			},
			{
				Name: "aStar",
				Root: Choice{
					Sequence{},
					Sequence{Literal("a"), RuleRef{Name: "aStar"}},
				},
			},
		},
	}
}

// ExampleLabeledIdentifierGrammar is scenario (d):
//
//	start = ε | identifier start; identifier! = "a" | "b" | "c";
//
// First 10: "","a","aa","ab","aaa","aab","aba","abb","abc","aaaa".
func ExampleLabeledIdentifierGrammar() *Grammar {
	return &Grammar{
		Name: "labeled-identifier",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Choice{
					Sequence{},
					Sequence{RuleRef{Name: "identifier"}, RuleRef{Name: "start"}},
				},
			},
			{
				Name:    "identifier",
				Labeled: true,
				Root: Choice{
					Literal("a"),
					Literal("b"),
					Literal("c"),
				},
			},
		},
	}
}

// ExampleOperatorsGrammar is scenario (e):
//
//	start = "foo"* | start+ | "baz"? start? start* start+;
//
// First 10: "","","","foo","","baz","foofoo","","","foofoofoo".
func ExampleOperatorsGrammar() *Grammar {
	return &Grammar{
		Name: "operators",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Choice{
					Unary{Op: Star, Inner: Literal("foo")},
					Unary{Op: Plus, Inner: RuleRef{Name: "start"}},
					Sequence{
						Unary{Op: Optional, Inner: Literal("baz")},
						Unary{Op: Optional, Inner: RuleRef{Name: "start"}},
						Unary{Op: Star, Inner: RuleRef{Name: "start"}},
						Unary{Op: Plus, Inner: RuleRef{Name: "start"}},
					},
				},
			},
		},
	}
}

// LoopGrammar is the first validation fixture from scenario (f):
// Language "loop": start = start; — this must fail with "Infinite loop
// detected in leftmost choice".
func LoopGrammar() *Grammar {
	return &Grammar{
		Name: "loop",
		Rules: []*Rule{
			{Name: "start", Root: RuleRef{Name: "start"}},
		},
	}
}

// UndeclaredRuleGrammar is the second validation fixture from scenario
// (f): Language "x": start = honk; — this must fail with "Rule not
// declared".
func UndeclaredRuleGrammar() *Grammar {
	return &Grammar{
		Name: "x",
		Rules: []*Rule{
			{Name: "start", Root: RuleRef{Name: "honk"}},
		},
	}
}

// BareLeftRecursionGrammar is start = "a" start; with no alternative
// that can terminate without recursing — this must fail with
// "Infinite loop detected in leftmost choice" even though a literal
// precedes the recursive reference, because nothing about that rule
// can be shown to match ε or a bare literal without also needing
// start itself.
func BareLeftRecursionGrammar() *Grammar {
	return &Grammar{
		Name: "bare-left-recursion",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Sequence{Literal("a"), RuleRef{Name: "start"}},
			},
		},
	}
}

// EpsilonEscapedLeftRecursionGrammar is start = "a" start | ℇ; — this
// must validate cleanly, since the ℇ alternative lets the rule
// terminate without ever touching the recursive branch, even though
// that branch is textually "leftmost" by source position.
func EpsilonEscapedLeftRecursionGrammar() *Grammar {
	return &Grammar{
		Name: "epsilon-escaped-left-recursion",
		Rules: []*Rule{
			{
				Name: "start",
				Root: Choice{
					Sequence{Literal("a"), RuleRef{Name: "start"}},
					Sequence{},
				},
			},
		},
	}
}

// MutualCycleGrammar is a three-rule mutual cycle:
//
//	foo = "a" bar; bar = "b" baz; baz = "c" foo;
//
// None of the three rules can terminate without looping back through
// the other two, so all three must be reported.
func MutualCycleGrammar() *Grammar {
	return &Grammar{
		Name: "mutual-cycle",
		Rules: []*Rule{
			{Name: "foo", Root: Sequence{Literal("a"), RuleRef{Name: "bar"}}},
			{Name: "bar", Root: Sequence{Literal("b"), RuleRef{Name: "baz"}}},
			{Name: "baz", Root: Sequence{Literal("c"), RuleRef{Name: "foo"}}},
		},
	}
}

// DuplicateRuleGrammar declares "start" twice.
func DuplicateRuleGrammar() *Grammar {
	return &Grammar{
		Name: "duplicate-rule",
		Rules: []*Rule{
			{Name: "start", Root: Literal("a")},
			{Name: "start", Root: Literal("b")},
		},
	}
}
