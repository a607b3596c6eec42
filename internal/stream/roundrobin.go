package stream

// RoundRobin merges several streams fairly by taking turns: on each
// cycle it pulls exactly one value from each still-live source, in
// the order given, and yields it immediately; a source that's
// exhausted is dropped from the rotation. RoundRobin terminates once
// every source has been dropped. This is the merge strategy a Choice
// production uses over its alternatives — simpler than
// EveryCombination because a choice isn't forming a product, just
// fairly visiting N streams.
func RoundRobin[T any](sources []Source[T]) Source[T] {
	live := make([]Source[T], len(sources))
	copy(live, sources)

	var pending []T
	idx := 0

	return SourceFunc[T](func() (T, bool) {
		for len(pending) == 0 {
			if len(live) == 0 {
				var zero T
				return zero, false
			}
			if idx >= len(live) {
				idx = 0
			}
			v, ok := live[idx].Next()
			if !ok {
				live = append(live[:idx], live[idx+1:]...)
				continue
			}
			pending = append(pending, v)
			idx++
		}
		v := pending[0]
		pending = pending[1:]
		return v, true
	})
}
