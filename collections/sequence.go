package collections

import "golang.org/x/exp/slices"

// orderedSequence is the positional backing store. It never checks for
// duplicates; uniqueness is the owner's job.
type orderedSequence[V any] struct {
	entries []V
}

func newOrderedSequence[V any](capacity int) *orderedSequence[V] {
	return &orderedSequence[V]{
		entries: make([]V, 0, capacity),
	}
}

func (s *orderedSequence[V]) at(i int) V {
	checkIndex(i, len(s.entries))
	return s.entries[i]
}

func (s *orderedSequence[V]) append(v V) {
	s.entries = append(s.entries, v)
}

func (s *orderedSequence[V]) insert(i int, v V) {
	checkInsertIndex(i, len(s.entries))
	s.entries = slices.Insert(s.entries, i, v)
}

func (s *orderedSequence[V]) removeAt(i int) V {
	checkIndex(i, len(s.entries))
	v := s.entries[i]
	s.entries = slices.Delete(s.entries, i, i+1)
	return v
}

func (s *orderedSequence[V]) removeRange(r Range) {
	checkRange(r, len(s.entries))
	s.entries = slices.Delete(s.entries, r.Location, r.End())
}

func (s *orderedSequence[V]) set(i int, v V) {
	checkIndex(i, len(s.entries))
	s.entries[i] = v
}

func (s *orderedSequence[V]) swap(i, j int) {
	checkIndex(i, len(s.entries))
	checkIndex(j, len(s.entries))
	s.entries[i], s.entries[j] = s.entries[j], s.entries[i]
}

func (s *orderedSequence[V]) size() int {
	return len(s.entries)
}

func (s *orderedSequence[V]) clear() {
	s.entries = s.entries[:0]
}

// subrange returns a copy of the entries in r; callers may mutate it
// freely.
func (s *orderedSequence[V]) subrange(r Range) []V {
	checkRange(r, len(s.entries))
	return slices.Clone(s.entries[r.Location:r.End()])
}

// writeBack overwrites the entries in r with vs; len(vs) must equal
// r.Length.
func (s *orderedSequence[V]) writeBack(r Range, vs []V) {
	checkRange(r, len(s.entries))
	copy(s.entries[r.Location:r.End()], vs)
}

func (s *orderedSequence[V]) snapshot() []V {
	return slices.Clone(s.entries)
}
