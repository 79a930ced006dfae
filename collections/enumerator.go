package collections

// Enumerator walks elements in a declared order. It is one-shot: once
// Next returns false it stays exhausted, and a fresh enumeration is
// requested from the owning collection, not by rewinding.
type Enumerator[V any] interface {
	Next() (V, bool)
}

type sliceEnumerator[V any] struct {
	entries []V
	cursor  int
	reverse bool
}

func newSliceEnumerator[V any](entries []V, reverse bool) Enumerator[V] {
	e := &sliceEnumerator[V]{
		entries: entries,
		reverse: reverse,
	}
	if reverse {
		e.cursor = len(entries) - 1
	}
	return e
}

func (e *sliceEnumerator[V]) Next() (v V, ok bool) {
	if e.reverse {
		if e.cursor < 0 {
			return v, false
		}
		ret := e.entries[e.cursor]
		e.cursor--
		return ret, true
	}
	if e.cursor >= len(e.entries) {
		return v, false
	}
	ret := e.entries[e.cursor]
	e.cursor++
	return ret, true
}
