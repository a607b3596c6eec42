package stream

// Buffered wraps a single-pass Source so that any number of
// independent consumers can read it from position 0 onward. Every
// value pulled from the underlying source is memoized the first time
// it's requested; later requests for the same index are served from
// the cache instead of re-pulling.
//
// Buffered is not safe for concurrent use: it mutates its internal
// cache on read, and the engine's concurrency model (see the package
// doc) assumes one generator state per goroutine.
type Buffered[T any] struct {
	source Source[T]
	values []T
	done   bool
}

// NewBuffered wraps source for replay.
func NewBuffered[T any](source Source[T]) *Buffered[T] {
	return &Buffered[T]{source: source}
}

// Get returns the i-th value pulled from the underlying source (0
// indexed), pulling further values from the source if index i hasn't
// been reached yet. ok is false once the source is known to have fewer
// than i+1 values.
func (b *Buffered[T]) Get(i int) (value T, ok bool) {
	for len(b.values) <= i {
		if b.done {
			var zero T
			return zero, false
		}
		v, ok := b.source.Next()
		if !ok {
			b.done = true
			var zero T
			return zero, false
		}
		b.values = append(b.values, v)
	}
	return b.values[i], true
}

// Iterator returns a fresh Source over b starting at position 0. The
// returned Source advances independently of any other iterator over
// b (and of b.Get callers): each maintains its own cursor, but all of
// them observe the same memoized values.
func (b *Buffered[T]) Iterator() Source[T] {
	pos := 0
	return SourceFunc[T](func() (T, bool) {
		v, ok := b.Get(pos)
		if ok {
			pos++
		}
		return v, ok
	})
}
