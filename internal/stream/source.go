// Package stream implements the engine's lazy, pull-based sequences:
// a single-pass Source abstraction, a buffered replayable wrapper over
// it, and the pair/N-ary interleavers that fairly enumerate the
// product of streams. Everything here is single-threaded cooperative
// pull — there is no pre-emption and no background work; "suspension"
// is simply a consumer not calling Next.
package stream

// Source is a single-pass, pull-based producer of T. Next returns the
// next value and true, or the zero value and false once the source is
// exhausted. Calling Next again after it has returned false is
// permitted and must keep returning false.
type Source[T any] interface {
	Next() (T, bool)
}

// SourceFunc adapts a plain closure to the Source interface.
type SourceFunc[T any] func() (T, bool)

// Next implements Source.
func (f SourceFunc[T]) Next() (T, bool) { return f() }

// FromSlice returns a Source that yields each element of s in order,
// then terminates. Useful for building finite fixtures in tests.
func FromSlice[T any](s []T) Source[T] {
	i := 0
	return SourceFunc[T](func() (T, bool) {
		if i >= len(s) {
			var zero T
			return zero, false
		}
		v := s[i]
		i++
		return v, true
	})
}

// Naturals returns a Source yielding consecutive integers starting at
// from, without end. Used as the canonical "possibly-infinite" fixture
// in tests of the interleavers.
func Naturals(from int) Source[int] {
	n := from
	return SourceFunc[int](func() (int, bool) {
		v := n
		n++
		return v, true
	})
}

// Map returns a Source that lazily applies f to each value pulled from
// src.
func Map[A, B any](src Source[A], f func(A) B) Source[B] {
	return SourceFunc[B](func() (B, bool) {
		v, ok := src.Next()
		if !ok {
			var zero B
			return zero, false
		}
		return f(v), true
	})
}

// Collect drains src into a slice. Only safe for sources known to be
// finite (or bounded by the caller via Take); draining an infinite
// Source never returns.
func Collect[T any](src Source[T]) []T {
	var out []T
	for {
		v, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Take pulls up to n values from src and returns them, stopping early
// if src is exhausted first.
func Take[T any](src Source[T], n int) []T {
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, ok := src.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}
