// Package labelling implements the canonical labelling enumerator
// (everyLabelling in spec terms): given an alphabet of size m, it
// yields every length-k sequence over that alphabet that is canonical
// under first-occurrence renaming — the j-th distinct symbol to appear
// is always alphabet[j]. This enumerates set partitions of k indexed
// positions into at most m blocks, each partition represented by its
// first-occurrence labelling.
package labelling

import "github.com/shadowCow/langfuzz/internal/stream"

// EveryLabelling yields every canonical length-k sequence over
// alphabet, in lexicographic order of the underlying block-index
// sequence. The block index at position j is constrained to
// [0, min(maxBlockSoFar+1, len(alphabet)-1)], where maxBlockSoFar is
// the largest block index used at any earlier position (or -1 before
// the first position). If alphabet is empty, the result yields
// nothing (unless k is also 0, in which case the single empty
// sequence is canonical trivially). If k == 1, the result yields
// exactly [alphabet[0]].
func EveryLabelling(alphabet []string, k int) stream.Source[[]string] {
	m := len(alphabet)
	digits, ok := newDigitWalk(m, k)
	if !ok {
		return stream.FromSlice[[]string](nil)
	}

	exhausted := false
	first := true

	return stream.SourceFunc[[]string](func() ([]string, bool) {
		if exhausted {
			return nil, false
		}
		if first {
			first = false
		} else if !digits.advance() {
			exhausted = true
			return nil, false
		}
		return digits.symbols(alphabet), true
	})
}

// digitWalk performs the iterative depth-first walk over valid
// block-index sequences described in the package doc, maintaining
// just enough state to compute the next lexicographically-larger leaf
// without re-exploring earlier positions from scratch.
type digitWalk struct {
	m int
	k int

	// digits[p] is the block index currently assigned to position p.
	digits []int
	// maxBefore[p] is the largest block index used before position p
	// (so the maximum digits[p] may legally take is
	// min(maxBefore[p]+1, m-1)).
	maxBefore []int
}

// newDigitWalk builds a digitWalk positioned at the lexicographically
// smallest valid sequence (all zeros), or reports ok=false if no valid
// sequence of length k exists for alphabet size m (only possible when
// m == 0 and k > 0).
func newDigitWalk(m, k int) (*digitWalk, bool) {
	w := &digitWalk{
		m:         m,
		k:         k,
		digits:    make([]int, k),
		maxBefore: make([]int, k),
	}
	if !w.descendFrom(0, -1) {
		return nil, false
	}
	return w, true
}

// descendFrom fills positions [pos, k) with the smallest valid
// continuation (digit 0 at every position), given that maxBefore is
// the largest block index used anywhere before pos. Returns false if
// no valid digit exists at pos (only when m == 0).
func (w *digitWalk) descendFrom(pos, maxBefore int) bool {
	for p := pos; p < w.k; p++ {
		allowed := min(maxBefore+1, w.m-1)
		if allowed < 0 {
			return false
		}
		w.maxBefore[p] = maxBefore
		w.digits[p] = 0
		maxBefore = max(maxBefore, 0)
	}
	return true
}

// advance moves the walk to the next sequence in lexicographic order,
// backtracking from the last position until it finds one it can
// increment, then re-descending from there. Returns false once every
// valid sequence has been produced.
func (w *digitWalk) advance() bool {
	for p := w.k - 1; p >= 0; p-- {
		allowed := min(w.maxBefore[p]+1, w.m-1)
		if w.digits[p] >= allowed {
			continue
		}
		w.digits[p]++
		newMax := max(w.maxBefore[p], w.digits[p])
		if w.descendFrom(p+1, newMax) {
			return true
		}
	}
	return false
}

func (w *digitWalk) symbols(alphabet []string) []string {
	out := make([]string, w.k)
	for i, d := range w.digits {
		out[i] = alphabet[d]
	}
	return out
}
