package collections

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// IndexSet is an ordered, duplicate-free set of non-negative positions,
// used as the bulk-operation parameter type.
type IndexSet struct {
	indexes []int
}

func NewIndexSet(indexes ...int) *IndexSet {
	s := &IndexSet{
		indexes: make([]int, 0, len(indexes)),
	}
	for _, i := range indexes {
		s.Add(i)
	}
	return s
}

func NewIndexSetFromRange(r Range) *IndexSet {
	s := &IndexSet{
		indexes: make([]int, 0, r.Length),
	}
	for i := r.Location; i < r.End(); i++ {
		s.indexes = append(s.indexes, i)
	}
	return s
}

func (s *IndexSet) Add(i int) {
	if i < 0 {
		panic(fmt.Sprintf("collections: negative index %d", i))
	}
	pos, present := slices.BinarySearch(s.indexes, i)
	if !present {
		s.indexes = slices.Insert(s.indexes, pos, i)
	}
}

func (s *IndexSet) Contains(i int) bool {
	_, present := slices.BinarySearch(s.indexes, i)
	return present
}

func (s *IndexSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.indexes)
}

func (s *IndexSet) First() (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.indexes[0], true
}

func (s *IndexSet) Last() (int, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.indexes[len(s.indexes)-1], true
}

// Entries returns the indexes in ascending order.
func (s *IndexSet) Entries() []int {
	if s == nil {
		return nil
	}
	return slices.Clone(s.indexes)
}

// Descending returns the indexes from highest to lowest, the order bulk
// removal must process them in.
func (s *IndexSet) Descending() []int {
	if s == nil {
		return nil
	}
	arr := make([]int, 0, len(s.indexes))
	for i := len(s.indexes) - 1; i >= 0; i-- {
		arr = append(arr, s.indexes[i])
	}
	return arr
}

func (s *IndexSet) String() string {
	return fmt.Sprint(s.indexes)
}

// checkBounded validates every index against [0, size), or [0, size]
// when allowEnd permits append-style insertion.
func (s *IndexSet) checkBounded(size int, allowEnd bool) {
	if s.Len() == 0 {
		return
	}
	last := s.indexes[len(s.indexes)-1]
	if allowEnd {
		checkInsertIndex(last, size)
	} else {
		checkIndex(last, size)
	}
}
