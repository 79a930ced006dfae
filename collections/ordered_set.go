package collections

import "golang.org/x/exp/slices"

// CloneFunc duplicates a single element. A nil CloneFunc means shallow
// copying: element references are shared between the source and the
// copy, while backing storage is always independent.
type CloneFunc[V any] func(V) V

// OrderedSet is the read-only contract of a collection that enforces
// element uniqueness while preserving a deterministic linear order.
// Element equality is hash equality under the HashFunc supplied at
// construction.
type OrderedSet[V any] interface {
	Size() int
	// At returns the element at position i; i must be in [0, Size()).
	At(i int) V
	First() (V, bool)
	Last() (V, bool)
	// IndexOf returns the position of the first element equal to v, or
	// NotFound. The scan is linear; use Contains for pure membership.
	IndexOf(v V) int
	Contains(v V) bool
	// Equal is order-sensitive: both collections must hold equal
	// elements at every position.
	Equal(other OrderedSet[V]) bool
	Intersects(other OrderedSet[V]) bool
	IntersectsSet(other Set[V]) bool
	IsSubsetOf(other OrderedSet[V]) bool
	IsSubsetOfSet(other Set[V]) bool
	// Entries returns a snapshot of the elements in positional order.
	Entries() []V
	Enumerate() Enumerator[V]
	EnumerateReverse() Enumerator[V]
	IndexFunc(opts SearchOptions, pred func(i int, v V) bool) int
	IndexesFunc(opts SearchOptions, pred func(i int, v V) bool) *IndexSet
	IndexFuncIn(ix *IndexSet, opts SearchOptions, pred func(i int, v V) bool) int
	IndexesFuncIn(ix *IndexSet, opts SearchOptions, pred func(i int, v V) bool) *IndexSet
	// BinarySearch searches r, which the caller asserts is sorted under
	// cmp; no verification is performed.
	BinarySearch(v V, r Range, opts SearchOptions, cmp Comparator[V]) int
	// Sorted returns the elements sorted under cmp without touching the
	// receiver. The sort is stable.
	Sorted(cmp Comparator[V]) []V
	// ArrayView and SetView are live projections over the receiver's
	// backing data, not snapshots.
	ArrayView() Array[V]
	SetView() Set[V]
	Clone(clone CloneFunc[V]) OrderedSet[V]
	MutableClone(clone CloneFunc[V]) MutableOrderedSet[V]
	// CloneRange copies the sub-range r; r must lie within the receiver.
	CloneRange(r Range, clone CloneFunc[V]) MutableOrderedSet[V]

	sequence() *orderedSequence[V]
}

type orderedSet[R comparable, V any] struct {
	hashFunc HashFunc[R, V]
	index    *membershipIndex[R, V]
	seq      *orderedSequence[V]
}

// NewOrderedSet builds a read-only ordered set from vs, keeping the
// first occurrence of each element and preserving first-occurrence
// order.
func NewOrderedSet[R comparable, V any](f HashFunc[R, V], vs ...V) OrderedSet[V] {
	return newOrderedSet(f, vs)
}

// NewOrderedSetFromSet builds a mutable ordered set whose order is the
// order of s.Entries() at the time of the call.
func NewOrderedSetFromSet[R comparable, V any](f HashFunc[R, V], s Set[V]) MutableOrderedSet[V] {
	return &mutableOrderedSet[R, V]{newOrderedSet(f, s.Entries())}
}

func newOrderedSet[R comparable, V any](f HashFunc[R, V], vs []V) *orderedSet[R, V] {
	s := &orderedSet[R, V]{
		hashFunc: f,
		index:    newMembershipIndex(f),
		seq:      newOrderedSequence[V](len(vs)),
	}
	for _, v := range vs {
		s.appendOne(v)
	}
	return s
}

// appendOne adds v at the end unless an equal element is already
// present. Both backing structures are updated together.
func (s *orderedSet[R, V]) appendOne(v V) bool {
	if !s.index.add(v) {
		return false
	}
	s.seq.append(v)
	return true
}

func (s *orderedSet[R, V]) insertOne(v V, i int) bool {
	checkInsertIndex(i, s.seq.size())
	if !s.index.add(v) {
		return false
	}
	s.seq.insert(i, v)
	return true
}

func (s *orderedSet[R, V]) removeOne(i int) V {
	v := s.seq.removeAt(i)
	s.index.remove(v)
	return v
}

func (s *orderedSet[R, V]) sequence() *orderedSequence[V] {
	return s.seq
}

func (s *orderedSet[R, V]) Size() int {
	return s.seq.size()
}

func (s *orderedSet[R, V]) At(i int) V {
	return s.seq.at(i)
}

func (s *orderedSet[R, V]) First() (v V, ok bool) {
	if s.seq.size() == 0 {
		return v, false
	}
	return s.seq.at(0), true
}

func (s *orderedSet[R, V]) Last() (v V, ok bool) {
	n := s.seq.size()
	if n == 0 {
		return v, false
	}
	return s.seq.at(n - 1), true
}

func (s *orderedSet[R, V]) IndexOf(v V) int {
	hash := s.hashFunc(v)
	for i, e := range s.seq.entries {
		if s.hashFunc(e) == hash {
			return i
		}
	}
	return NotFound
}

func (s *orderedSet[R, V]) Contains(v V) bool {
	return s.index.contains(v)
}

func (s *orderedSet[R, V]) Equal(other OrderedSet[V]) bool {
	if other == nil {
		return false
	}
	otherSeq := other.sequence()
	if s.seq == otherSeq {
		return true
	}
	if s.seq.size() != otherSeq.size() {
		return false
	}
	for i, e := range s.seq.entries {
		if s.hashFunc(e) != s.hashFunc(otherSeq.entries[i]) {
			return false
		}
	}
	return true
}

func (s *orderedSet[R, V]) Intersects(other OrderedSet[V]) bool {
	if other.Size() < s.Size() {
		for _, v := range other.sequence().entries {
			if s.Contains(v) {
				return true
			}
		}
		return false
	}
	for _, v := range s.seq.entries {
		if other.Contains(v) {
			return true
		}
	}
	return false
}

func (s *orderedSet[R, V]) IntersectsSet(other Set[V]) bool {
	if other.Size() < s.Size() {
		for _, v := range other.Entries() {
			if s.Contains(v) {
				return true
			}
		}
		return false
	}
	for _, v := range s.seq.entries {
		if other.Contains(v) {
			return true
		}
	}
	return false
}

func (s *orderedSet[R, V]) IsSubsetOf(other OrderedSet[V]) bool {
	for _, v := range s.seq.entries {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *orderedSet[R, V]) IsSubsetOfSet(other Set[V]) bool {
	for _, v := range s.seq.entries {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

func (s *orderedSet[R, V]) Entries() []V {
	return s.seq.snapshot()
}

func (s *orderedSet[R, V]) Enumerate() Enumerator[V] {
	return newSliceEnumerator(s.seq.entries, false)
}

func (s *orderedSet[R, V]) EnumerateReverse() Enumerator[V] {
	return newSliceEnumerator(s.seq.entries, true)
}

func (s *orderedSet[R, V]) Sorted(cmp Comparator[V]) []V {
	arr := s.seq.snapshot()
	slices.SortStableFunc(arr, func(a, b V) bool {
		return cmp(a, b) < 0
	})
	return arr
}

func (s *orderedSet[R, V]) ArrayView() Array[V] {
	return &arrayView[R, V]{owner: s}
}

func (s *orderedSet[R, V]) SetView() Set[V] {
	return &setView[R, V]{owner: s}
}

func (s *orderedSet[R, V]) Clone(clone CloneFunc[V]) OrderedSet[V] {
	return s.cloneRange(Range{0, s.seq.size()}, clone)
}

func (s *orderedSet[R, V]) MutableClone(clone CloneFunc[V]) MutableOrderedSet[V] {
	return &mutableOrderedSet[R, V]{s.cloneRange(Range{0, s.seq.size()}, clone)}
}

func (s *orderedSet[R, V]) CloneRange(r Range, clone CloneFunc[V]) MutableOrderedSet[V] {
	return &mutableOrderedSet[R, V]{s.cloneRange(r, clone)}
}

func (s *orderedSet[R, V]) cloneRange(r Range, clone CloneFunc[V]) *orderedSet[R, V] {
	checkRange(r, s.seq.size())
	dup := &orderedSet[R, V]{
		hashFunc: s.hashFunc,
		index:    newMembershipIndex(s.hashFunc),
		seq:      newOrderedSequence[V](r.Length),
	}
	for _, v := range s.seq.entries[r.Location:r.End()] {
		if clone != nil {
			v = clone(v)
		}
		dup.appendOne(v)
	}
	return dup
}
