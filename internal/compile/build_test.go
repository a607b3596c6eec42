package compile

import (
	"strings"
	"testing"

	"github.com/shadowCow/langfuzz/ast"
	"github.com/shadowCow/langfuzz/internal/stream"
	"github.com/stretchr/testify/require"
)

func flatten(s Skeleton) string {
	var b strings.Builder
	for _, f := range s {
		if f.IsPlaceholder {
			b.WriteString("{" + f.RuleName + "}")
		} else {
			b.WriteString(f.Literal)
		}
	}
	return b.String()
}

func take(t *testing.T, src stream.Source[Skeleton], n int) []string {
	t.Helper()
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		require.True(t, ok, "source exhausted early at %d", i)
		out = append(out, flatten(v))
	}
	return out
}

func TestCompileAlternatingAOrB(t *testing.T) {
	g := Compile(ast.ExampleAlternatingAOrBGrammar())
	got := take(t, g.Root.Generate(true), 5)
	require.Equal(t, []string{"a", "ba", "bba", "bbba", "bbbba"}, got)
}

func TestCompileBOrCStar(t *testing.T) {
	g := Compile(ast.ExampleBOrCStarGrammar())
	got := take(t, g.Root.Generate(true), 10)
	require.Equal(t, []string{
		"a", "ab", "ac", "abb", "acb", "abc", "acc", "abbb", "acbb", "abcb",
	}, got)
}

func TestCompileBalanced(t *testing.T) {
	g := Compile(ast.ExampleBalancedGrammar())
	got := take(t, g.Root.Generate(true), 4)
	require.Equal(t, []string{"", "ab", "aab", "abab"}, got)

	src := g.Root.Generate(true)
	var last string
	for i := 0; i < 13; i++ {
		v, ok := src.Next()
		require.True(t, ok)
		last = flatten(v)
	}
	require.Equal(t, "aaaabaab", last)
}

func TestCompileOperators(t *testing.T) {
	g := Compile(ast.ExampleOperatorsGrammar())
	got := take(t, g.Root.Generate(true), 10)
	require.Equal(t, []string{
		"", "", "", "foo", "", "baz", "foofoo", "", "", "foofoofoo",
	}, got)
}

func TestCompileLabeledRuleYieldsPlaceholderWhenNotExpanding(t *testing.T) {
	g := Compile(ast.ExampleLabeledIdentifierGrammar())
	identifier := g.RuleNode("identifier")
	require.NotNil(t, identifier)

	got := stream.Collect(identifier.Generate(false))
	require.Len(t, got, 1)
	require.Equal(t, "{identifier}", flatten(got[0]))

	// Expanding labels delegates straight through to the rule body.
	expanded := stream.Collect(identifier.Generate(true))
	require.Equal(t, []string{"a", "b", "c"}, func() []string {
		out := make([]string, len(expanded))
		for i, s := range expanded {
			out[i] = flatten(s)
		}
		return out
	}())
}

func TestCompileSequenceArities(t *testing.T) {
	t.Run("zero elements yields empty skeleton once", func(t *testing.T) {
		got := stream.Collect(generateSequence(nil, true))
		require.Equal(t, []Skeleton{{}}, got)
	})

	t.Run("one element delegates", func(t *testing.T) {
		n := &literalNode{text: "x"}
		got := take(t, generateSequence([]Node{n}, true), 1)
		require.Equal(t, []string{"x"}, got)
	})
}

func TestCompileChoiceRoundRobinOrder(t *testing.T) {
	c := &choiceNode{options: []Node{
		&literalNode{text: "1"},
		&literalNode{text: "2"},
	}}
	got := take(t, c.Generate(true), 2)
	require.Equal(t, []string{"1", "2"}, got)
}
