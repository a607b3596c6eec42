package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEveryCombinationNaturalsOrder(t *testing.T) {
	pairs := Collect(Take(EveryCombination(Naturals(1), Naturals(1)), 10))

	require.Equal(t, []Pair[int, int]{
		{1, 1}, {2, 1}, {1, 2}, {2, 2},
		{3, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}, {4, 1},
	}, pairs)
}

func TestEveryCombinationFiniteBoth(t *testing.T) {
	abc := func() Source[string] { return FromSlice([]string{"a", "b", "c"}) }

	got := Collect(EveryCombination(abc(), abc()))

	want := []Pair[string, string]{
		{"a", "a"}, {"b", "a"}, {"a", "b"}, {"b", "b"},
		{"c", "a"}, {"c", "b"}, {"a", "c"}, {"b", "c"}, {"c", "c"},
	}
	require.Equal(t, want, got)
}

func TestEveryCombinationStabilityUnderFiniteness(t *testing.T) {
	// One finite side must not stop the interleaving from delivering
	// every remaining cross-pair with the infinite side.
	finite := FromSlice([]int{1, 2})
	pairs := Take(EveryCombination(finite, Naturals(1)), 20)

	seen := map[int]bool{}
	for _, p := range pairs {
		require.Contains(t, []int{1, 2}, p.First)
		seen[p.Second] = true
	}
	require.GreaterOrEqual(t, len(seen), 5)
}

func TestEveryCombinationManyEmpty(t *testing.T) {
	got := Collect(EveryCombinationMany[int](nil))
	require.Equal(t, [][]int{{}}, got)
}

func TestEveryCombinationManySingleton(t *testing.T) {
	got := Collect(EveryCombinationMany([]Source[int]{FromSlice([]int{1, 2, 3})}))
	require.Equal(t, [][]int{{1}, {2}, {3}}, got)
}

func TestEveryCombinationManyCompleteness(t *testing.T) {
	streams := []Source[int]{
		FromSlice([]int{1, 2}),
		FromSlice([]int{10, 20}),
		FromSlice([]int{100, 200}),
	}
	got := Collect(EveryCombinationMany(streams))

	want := map[[3]int]bool{}
	for _, a := range []int{1, 2} {
		for _, b := range []int{10, 20} {
			for _, c := range []int{100, 200} {
				want[[3]int{a, b, c}] = true
			}
		}
	}
	require.Len(t, got, len(want))
	for _, tuple := range got {
		require.Len(t, tuple, 3)
		require.True(t, want[[3]int{tuple[0], tuple[1], tuple[2]}], "unexpected tuple %v", tuple)
	}
}
