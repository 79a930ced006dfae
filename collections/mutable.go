package collections

// MutableOrderedSet adds the in-place mutation contract on top of the
// read-only one. Every operation leaves the collection in a state where
// both backing structures describe the same elements; no intermediate
// state is observable.
type MutableOrderedSet[V any] interface {
	OrderedSet[V]

	// Add appends v unless an equal element is already present; it
	// reports whether the collection changed.
	Add(v V) bool
	AddEntries(vs ...V) int
	// Insert places v at position i, shifting later elements right;
	// i must be in [0, Size()], Size() meaning append. Inserting a
	// duplicate is a no-op.
	Insert(v V, i int) bool
	// InsertAt inserts vs[k] at position ix[k], pairing elements with
	// indexes in ascending index order; len(vs) must equal ix.Len().
	InsertAt(vs []V, ix *IndexSet) int
	// SetAt appends when i == Size(), otherwise overwrites position i
	// with Replace semantics.
	SetAt(i int, v V)
	// Replace overwrites position i with v. When v equals an element at
	// some other position the call is a no-op returning false, so
	// uniqueness is never violated. Replacing an element with an equal
	// value rewrites the stored element and returns true.
	Replace(i int, v V) bool
	RemoveAt(i int) V
	Remove(v V) bool
	RemoveEntries(vs ...V) int
	RemoveRange(r Range)
	RemoveIndexes(ix *IndexSet)
	Clear()
	Exchange(i, j int)
	// Move removes the elements at ix and reinserts them, in their
	// original relative order, starting at dest; dest addresses the
	// collection after removal.
	Move(ix *IndexSet, dest int)
	// Intersect retains only elements present in other, preserving the
	// relative order of retained elements.
	Intersect(other OrderedSet[V])
	IntersectSet(other Set[V])
	// Minus removes every element present in other.
	Minus(other OrderedSet[V])
	MinusSet(other Set[V])
	// Union appends, in other's order, every element of other not
	// already present; existing elements and positions are untouched.
	Union(other OrderedSet[V])
	UnionSet(other Set[V])
	// Sort and SortRange sort in place under cmp; both are stable.
	// SortRange touches only positions inside r.
	Sort(cmp Comparator[V])
	SortRange(r Range, cmp Comparator[V])
}

type mutableOrderedSet[R comparable, V any] struct {
	*orderedSet[R, V]
}

// NewMutableOrderedSet builds a mutable ordered set from vs with
// first-occurrence deduplication.
func NewMutableOrderedSet[R comparable, V any](f HashFunc[R, V], vs ...V) MutableOrderedSet[V] {
	return &mutableOrderedSet[R, V]{newOrderedSet(f, vs)}
}

func (s *mutableOrderedSet[R, V]) Add(v V) bool {
	return s.appendOne(v)
}

func (s *mutableOrderedSet[R, V]) AddEntries(vs ...V) int {
	added := 0
	for _, v := range vs {
		if s.appendOne(v) {
			added++
		}
	}
	return added
}

func (s *mutableOrderedSet[R, V]) Insert(v V, i int) bool {
	return s.insertOne(v, i)
}

func (s *mutableOrderedSet[R, V]) InsertAt(vs []V, ix *IndexSet) int {
	if len(vs) != ix.Len() {
		panic("collections: element count does not match index count")
	}
	inserted := 0
	for k, i := range ix.Entries() {
		if s.insertOne(vs[k], i) {
			inserted++
		}
	}
	return inserted
}

func (s *mutableOrderedSet[R, V]) SetAt(i int, v V) {
	checkInsertIndex(i, s.seq.size())
	if i == s.seq.size() {
		s.appendOne(v)
		return
	}
	s.Replace(i, v)
}

func (s *mutableOrderedSet[R, V]) Replace(i int, v V) bool {
	checkIndex(i, s.seq.size())
	if j := s.IndexOf(v); j != NotFound && j != i {
		return false
	}
	old := s.seq.at(i)
	s.index.remove(old)
	s.index.add(v)
	s.seq.set(i, v)
	return true
}

func (s *mutableOrderedSet[R, V]) RemoveAt(i int) V {
	return s.removeOne(i)
}

func (s *mutableOrderedSet[R, V]) Remove(v V) bool {
	i := s.IndexOf(v)
	if i == NotFound {
		return false
	}
	s.removeOne(i)
	return true
}

func (s *mutableOrderedSet[R, V]) RemoveEntries(vs ...V) int {
	removed := 0
	for _, v := range vs {
		if s.Remove(v) {
			removed++
		}
	}
	return removed
}

func (s *mutableOrderedSet[R, V]) RemoveRange(r Range) {
	checkRange(r, s.seq.size())
	for _, v := range s.seq.entries[r.Location:r.End()] {
		s.index.remove(v)
	}
	s.seq.removeRange(r)
}

func (s *mutableOrderedSet[R, V]) RemoveIndexes(ix *IndexSet) {
	ix.checkBounded(s.seq.size(), false)
	for _, i := range ix.Descending() {
		s.removeOne(i)
	}
}

func (s *mutableOrderedSet[R, V]) Clear() {
	s.index.clear()
	s.seq.clear()
}

func (s *mutableOrderedSet[R, V]) Exchange(i, j int) {
	s.seq.swap(i, j)
}

func (s *mutableOrderedSet[R, V]) Move(ix *IndexSet, dest int) {
	ix.checkBounded(s.seq.size(), false)
	moved := make([]V, 0, ix.Len())
	for _, i := range ix.Entries() {
		moved = append(moved, s.seq.at(i))
	}
	for _, i := range ix.Descending() {
		s.removeOne(i)
	}
	checkInsertIndex(dest, s.seq.size())
	for k, v := range moved {
		s.insertOne(v, dest+k)
	}
}

func (s *mutableOrderedSet[R, V]) Intersect(other OrderedSet[V]) {
	s.retainFunc(other.Contains)
}

func (s *mutableOrderedSet[R, V]) IntersectSet(other Set[V]) {
	s.retainFunc(other.Contains)
}

func (s *mutableOrderedSet[R, V]) Minus(other OrderedSet[V]) {
	s.retainFunc(func(v V) bool { return !other.Contains(v) })
}

func (s *mutableOrderedSet[R, V]) MinusSet(other Set[V]) {
	s.retainFunc(func(v V) bool { return !other.Contains(v) })
}

// retainFunc removes every element keep rejects, walking from the back
// so pending indexes stay valid and retained elements keep their
// relative order.
func (s *mutableOrderedSet[R, V]) retainFunc(keep func(V) bool) {
	for i := s.seq.size() - 1; i >= 0; i-- {
		if !keep(s.seq.at(i)) {
			s.removeOne(i)
		}
	}
}

func (s *mutableOrderedSet[R, V]) Union(other OrderedSet[V]) {
	for _, v := range other.Entries() {
		s.appendOne(v)
	}
}

func (s *mutableOrderedSet[R, V]) UnionSet(other Set[V]) {
	for _, v := range other.Entries() {
		s.appendOne(v)
	}
}

func (s *mutableOrderedSet[R, V]) Sort(cmp Comparator[V]) {
	s.SortRange(Range{0, s.seq.size()}, cmp)
}

func (s *mutableOrderedSet[R, V]) SortRange(r Range, cmp Comparator[V]) {
	sortRange(s.seq, r, cmp)
}
