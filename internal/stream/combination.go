package stream

// Pair is an ordered pair produced by EveryCombination.
type Pair[A, B any] struct {
	First  A
	Second B
}

// EveryCombination fairly interleaves two possibly-infinite streams,
// yielding every pair (a, b) in A×B exactly once, at an index bounded
// by a function of max(indexOf(a), indexOf(b)) — neither stream needs
// to be consumed to completion before pairs involving the other
// appear. If one stream ends, the remaining cross-pairs with the
// other stream's already-seen (and future) values are still produced.
//
// The emission order is a diagonal expansion over a growing frontier
// m = 0, 1, 2, …. At each step:
//
//  1. If A isn't exhausted, pull L[m]; if that succeeds, emit
//     (L[m], R[i]) for i = 0..m-1, stopping early if R runs out.
//  2. If B isn't exhausted, pull R[m]; if that succeeds, emit
//     (L[i], R[m]) for i = 0..m, stopping early if L runs out.
//
// This order is observable and must match exactly: for naturals from
// 1 interleaved with themselves, the first ten pairs are
// (1,1),(2,1),(1,2),(2,2),(3,1),(3,2),(1,3),(2,3),(3,3),(4,1).
func EveryCombination[A, B any](a Source[A], b Source[B]) Source[Pair[A, B]] {
	l := NewBuffered(a)
	r := NewBuffered(b)

	m := 0
	aDone, bDone := false, false
	var pending []Pair[A, B]

	return SourceFunc[Pair[A, B]](func() (Pair[A, B], bool) {
		for len(pending) == 0 {
			if aDone && bDone {
				var zero Pair[A, B]
				return zero, false
			}

			if !aDone {
				lv, ok := l.Get(m)
				if !ok {
					aDone = true
				} else {
					for i := 0; i < m; i++ {
						rv, ok := r.Get(i)
						if !ok {
							break
						}
						pending = append(pending, Pair[A, B]{First: lv, Second: rv})
					}
				}
			}

			if !bDone {
				rv, ok := r.Get(m)
				if !ok {
					bDone = true
				} else {
					for i := 0; i <= m; i++ {
						lv, ok := l.Get(i)
						if !ok {
							break
						}
						pending = append(pending, Pair[A, B]{First: lv, Second: rv})
					}
				}
			}

			m++
		}

		p := pending[0]
		pending = pending[1:]
		return p, true
	})
}

// EveryCombinationMany generalizes EveryCombination to N streams of
// the same element type, yielding every tuple (as a []T in element
// order) in the product with the same completeness and fairness
// guarantees. Defined recursively: zero streams yields exactly one
// empty tuple; one stream yields singleton tuples; otherwise the head
// stream is pair-interleaved with the n-ary interleaving of the rest,
// and each resulting pair is flattened by prepending.
func EveryCombinationMany[T any](streams []Source[T]) Source[[]T] {
	switch len(streams) {
	case 0:
		emitted := false
		return SourceFunc[[]T](func() ([]T, bool) {
			if emitted {
				return nil, false
			}
			emitted = true
			return []T{}, true
		})
	case 1:
		head := streams[0]
		return SourceFunc[[]T](func() ([]T, bool) {
			v, ok := head.Next()
			if !ok {
				return nil, false
			}
			return []T{v}, true
		})
	default:
		rest := EveryCombinationMany(streams[1:])
		paired := EveryCombination[T, []T](streams[0], rest)
		return SourceFunc[[]T](func() ([]T, bool) {
			p, ok := paired.Next()
			if !ok {
				return nil, false
			}
			out := make([]T, 0, len(p.Second)+1)
			out = append(out, p.First)
			out = append(out, p.Second...)
			return out, true
		})
	}
}
