package generate

import (
	"testing"

	"github.com/shadowCow/langfuzz/ast"
	"github.com/shadowCow/langfuzz/internal/validate"
	"github.com/stretchr/testify/require"
)

func TestGeneratorScenarioA(t *testing.T) {
	gen, err := Try(ast.ExampleAlternatingAOrBGrammar())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "ba", "bba", "bbba", "bbbba"}, gen.Take(5))
}

func TestGeneratorScenarioB(t *testing.T) {
	gen, err := Try(ast.ExampleBOrCStarGrammar())
	require.NoError(t, err)
	require.Equal(t, []string{
		"a", "ab", "ac", "abb", "acb", "abc", "acc", "abbb", "acbb", "abcb",
	}, gen.Take(10))
}

func TestGeneratorScenarioC(t *testing.T) {
	gen, err := Try(ast.ExampleBalancedGrammar())
	require.NoError(t, err)
	require.Equal(t, []string{"", "ab", "aab", "abab"}, gen.Take(4))

	src := gen.Strings()
	var last string
	for i := 0; i < 13; i++ {
		v, ok := src.Next()
		require.True(t, ok)
		last = v
	}
	require.Equal(t, "aaaabaab", last)
}

// TestGeneratorScenarioD exercises the full label-expansion pipeline
// end to end: start = ε | identifier start; identifier! = "a"|"b"|"c".
func TestGeneratorScenarioD(t *testing.T) {
	gen, err := Try(ast.ExampleLabeledIdentifierGrammar())
	require.NoError(t, err)
	require.Equal(t, []string{
		"", "a", "aa", "ab", "aaa", "aab", "aba", "abb", "abc", "aaaa",
	}, gen.Take(10))
}

func TestGeneratorScenarioE(t *testing.T) {
	gen, err := Try(ast.ExampleOperatorsGrammar())
	require.NoError(t, err)
	require.Equal(t, []string{
		"", "", "", "foo", "", "baz", "foofoo", "", "", "foofoofoo",
	}, gen.Take(10))
}

func TestTryReturnsCollectedValidationErrors(t *testing.T) {
	gen, err := Try(ast.LoopGrammar())
	require.Nil(t, gen)
	require.Error(t, err)

	var ve *validate.Errors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Problems, 1)
	require.Equal(t, validate.KindInfiniteLoop, ve.Problems[0].Kind)
}

func TestMustPanicsOnInvalidGrammar(t *testing.T) {
	require.Panics(t, func() {
		Must(ast.UndeclaredRuleGrammar())
	})
}

func TestMustReturnsUsableGeneratorForValidGrammar(t *testing.T) {
	gen := Must(ast.ExampleAlternatingAOrBGrammar())
	require.Equal(t, []string{"a", "ba"}, gen.Take(2))
}

func TestTakeWhileStopsBeforeFirstRejected(t *testing.T) {
	gen, err := Try(ast.ExampleAlternatingAOrBGrammar())
	require.NoError(t, err)

	got := gen.TakeWhile(func(s string) bool { return len(s) <= 3 })
	require.Equal(t, []string{"a", "ba", "bba"}, got)
}

func TestMultipleStringIteratorsAreIndependent(t *testing.T) {
	gen, err := Try(ast.ExampleAlternatingAOrBGrammar())
	require.NoError(t, err)

	a := gen.Strings()
	b := gen.Strings()

	first, ok := a.Next()
	require.True(t, ok)
	require.Equal(t, "a", first)

	firstAgain, ok := b.Next()
	require.True(t, ok)
	require.Equal(t, "a", firstAgain, "a fresh iterator starts over regardless of a's progress")
}
