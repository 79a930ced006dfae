package collections

// SearchOptions tune predicate searches and binary searches.
type SearchOptions uint

const (
	// SearchReverse scans candidates from the highest index down.
	SearchReverse SearchOptions = 1 << iota
	// SearchUnordered waives the visiting-order guarantee: every
	// candidate is still visited at most once, but callers must not
	// rely on which matching index is reported first.
	SearchUnordered
	// SearchFirstEqual makes a binary search report the leftmost
	// element equal to the target.
	SearchFirstEqual
	// SearchInsertionIndex makes a binary search report the position
	// the target would be inserted at to keep the range sorted.
	SearchInsertionIndex
)

func (s *orderedSet[R, V]) IndexFunc(opts SearchOptions, pred func(i int, v V) bool) int {
	return s.searchIndexes(nil, opts, pred)
}

func (s *orderedSet[R, V]) IndexFuncIn(ix *IndexSet, opts SearchOptions, pred func(i int, v V) bool) int {
	ix.checkBounded(s.seq.size(), false)
	return s.searchIndexes(ix.Entries(), opts, pred)
}

func (s *orderedSet[R, V]) IndexesFunc(opts SearchOptions, pred func(i int, v V) bool) *IndexSet {
	return s.collectIndexes(nil, opts, pred)
}

func (s *orderedSet[R, V]) IndexesFuncIn(ix *IndexSet, opts SearchOptions, pred func(i int, v V) bool) *IndexSet {
	ix.checkBounded(s.seq.size(), false)
	return s.collectIndexes(ix.Entries(), opts, pred)
}

// searchIndexes returns the first candidate index satisfying pred, in
// the traversal order opts selects. A nil candidate list means every
// index. Unordered traversal currently walks ascending; only the
// visit-each-candidate-once guarantee is contractual.
func (s *orderedSet[R, V]) searchIndexes(candidates []int, opts SearchOptions, pred func(i int, v V) bool) int {
	n := s.candidateCount(candidates)
	for k := 0; k < n; k++ {
		i := s.candidateAt(candidates, k, opts)
		if pred(i, s.seq.at(i)) {
			return i
		}
	}
	return NotFound
}

func (s *orderedSet[R, V]) collectIndexes(candidates []int, opts SearchOptions, pred func(i int, v V) bool) *IndexSet {
	ret := NewIndexSet()
	n := s.candidateCount(candidates)
	for k := 0; k < n; k++ {
		i := s.candidateAt(candidates, k, opts)
		if pred(i, s.seq.at(i)) {
			ret.Add(i)
		}
	}
	return ret
}

func (s *orderedSet[R, V]) candidateCount(candidates []int) int {
	if candidates == nil {
		return s.seq.size()
	}
	return len(candidates)
}

func (s *orderedSet[R, V]) candidateAt(candidates []int, k int, opts SearchOptions) int {
	n := s.candidateCount(candidates)
	if opts&SearchReverse != 0 && opts&SearchUnordered == 0 {
		k = n - 1 - k
	}
	if candidates == nil {
		return k
	}
	return candidates[k]
}

// BinarySearch locates v inside r, which the caller asserts is sorted
// under cmp. Without SearchInsertionIndex a miss yields NotFound; with
// it, the insertion position is returned instead. The reported index is
// absolute, not relative to r.
func (s *orderedSet[R, V]) BinarySearch(v V, r Range, opts SearchOptions, cmp Comparator[V]) int {
	checkRange(r, s.seq.size())
	lo, hi := r.Location, r.End()
	found := NotFound
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		c := cmp(s.seq.at(mid), v)
		switch {
		case c < 0:
			lo = mid + 1
		case c > 0:
			hi = mid
		default:
			if opts&(SearchFirstEqual|SearchInsertionIndex) == 0 {
				return mid
			}
			found = mid
			hi = mid
		}
	}
	if opts&SearchInsertionIndex != 0 {
		return lo
	}
	if found != NotFound {
		return found
	}
	return NotFound
}
