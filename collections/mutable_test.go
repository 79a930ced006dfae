package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func TestMutableAddAndInsert(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string])
	require.Equal(t, true, s.Add("b"))
	require.Equal(t, true, s.Add("d"))
	require.Equal(t, false, s.Add("b"))
	require.Equal(t, true, s.Insert("a", 0))
	require.Equal(t, true, s.Insert("c", 2))
	require.Equal(t, []string{"a", "b", "c", "d"}, s.Entries())
	// duplicate insert is a silent no-op
	require.Equal(t, false, s.Insert("d", 0))
	require.Equal(t, []string{"a", "b", "c", "d"}, s.Entries())
	// inserting at Size() appends
	require.Equal(t, true, s.Insert("e", s.Size()))
	require.Equal(t, "e", s.At(4))
	require.Panics(t, func() { s.Insert("f", 7) })
	require.Panics(t, func() { s.Insert("f", -1) })
	requireInvariants[string](t, s)
}

func TestMutableAddEntries(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 1)
	require.Equal(t, 2, s.AddEntries(2, 1, 3, 2))
	require.Equal(t, []int{1, 2, 3}, s.Entries())
}

func TestMutableRemove(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b", "c", "d")
	require.Equal(t, "b", s.RemoveAt(1))
	require.Equal(t, []string{"a", "c", "d"}, s.Entries())
	require.Equal(t, false, s.Contains("b"))
	require.Equal(t, true, s.Remove("c"))
	require.Equal(t, false, s.Remove("zz"))
	require.Equal(t, []string{"a", "d"}, s.Entries())
	require.Panics(t, func() { s.RemoveAt(2) })
	requireInvariants[string](t, s)
}

func TestMutableRemoveBulk(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 0, 1, 2, 3, 4, 5)
	s.RemoveIndexes(NewIndexSet(1, 3, 5))
	require.Equal(t, []int{0, 2, 4}, s.Entries())
	require.Equal(t, 2, s.RemoveEntries(0, 4, 9))
	require.Equal(t, []int{2}, s.Entries())

	s = NewMutableOrderedSet(Identity[int], 0, 1, 2, 3, 4, 5)
	s.RemoveRange(Range{1, 3})
	require.Equal(t, []int{0, 4, 5}, s.Entries())
	require.Equal(t, false, s.Contains(2))
	require.Panics(t, func() { s.RemoveRange(Range{2, 5}) })

	s.Clear()
	require.Equal(t, 0, s.Size())
	require.Equal(t, false, s.Contains(0))
	requireInvariants[int](t, s)
}

func TestMutableReplacePolicy(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b", "c")
	// plain replacement
	require.Equal(t, true, s.Replace(1, "x"))
	require.Equal(t, []string{"a", "x", "c"}, s.Entries())
	require.Equal(t, false, s.Contains("b"))
	// replacing with a value equal to another member is refused
	require.Equal(t, false, s.Replace(0, "c"))
	require.Equal(t, []string{"a", "x", "c"}, s.Entries())
	// replacing an element with an equal value succeeds
	require.Equal(t, true, s.Replace(2, "c"))
	require.Equal(t, []string{"a", "x", "c"}, s.Entries())
	require.Panics(t, func() { s.Replace(3, "y") })
	requireInvariants[string](t, s)
}

func TestMutableSetAt(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b")
	s.SetAt(2, "c")
	require.Equal(t, []string{"a", "b", "c"}, s.Entries())
	s.SetAt(0, "z")
	require.Equal(t, []string{"z", "b", "c"}, s.Entries())
	require.Panics(t, func() { s.SetAt(4, "w") })
}

func TestMutableExchange(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b", "c")
	s.Exchange(0, 2)
	require.Equal(t, []string{"c", "b", "a"}, s.Entries())
	require.Panics(t, func() { s.Exchange(0, 3) })
}

func TestMutableMove(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b", "c", "d")
	s.Move(NewIndexSet(0, 2), 1)
	require.Equal(t, []string{"b", "a", "c", "d"}, s.Entries())
	requireInvariants[string](t, s)

	s = NewMutableOrderedSet(Identity[string], "a", "b", "c", "d")
	s.Move(NewIndexSet(1, 3), 0)
	require.Equal(t, []string{"b", "d", "a", "c"}, s.Entries())
	require.Equal(t, 4, s.Size())
	require.Panics(t, func() { s.Move(NewIndexSet(9), 0) })
}

func TestMutableInsertAt(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "b", "d")
	require.Equal(t, 2, s.InsertAt([]string{"a", "c"}, NewIndexSet(0, 2)))
	require.Equal(t, []string{"a", "b", "c", "d"}, s.Entries())
	// per-element duplicate skip
	require.Equal(t, 1, s.InsertAt([]string{"a", "e"}, NewIndexSet(0, 4)))
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, s.Entries())
	require.Panics(t, func() { s.InsertAt([]string{"x"}, NewIndexSet(0, 1)) })
	requireInvariants[string](t, s)
}

func TestMutableIntersect(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 5, 1, 4, 2, 3)
	other := NewOrderedSet(Identity[int], 2, 4, 8)
	s.Intersect(other)
	require.Equal(t, []int{4, 2}, s.Entries())
	// idempotent
	s.Intersect(other)
	require.Equal(t, []int{4, 2}, s.Entries())
	requireInvariants[int](t, s)

	s = NewMutableOrderedSet(Identity[int], 1, 2, 3)
	s.IntersectSet(NewHashSet(Identity[int], 3, 1))
	require.Equal(t, []int{1, 3}, s.Entries())
}

func TestMutableMinus(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 1, 2, 3, 4)
	s.Minus(NewOrderedSet(Identity[int], 2, 4, 6))
	require.Equal(t, []int{1, 3}, s.Entries())

	// removing all own elements empties the collection
	s = NewMutableOrderedSet(Identity[int], 1, 2, 3)
	s.MinusSet(NewHashSet(Identity[int], s.Entries()...))
	require.Equal(t, 0, s.Size())
	requireInvariants[int](t, s)
}

func TestMutableUnion(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 1, 2, 3)
	s.Union(NewOrderedSet(Identity[int], 5, 2, 4))
	require.Equal(t, []int{1, 2, 3, 5, 4}, s.Entries())

	// union with empty is identity
	before := s.Entries()
	s.Union(NewOrderedSet(Identity[int]))
	require.Equal(t, before, s.Entries())
	s.UnionSet(NewHashSet(Identity[int]))
	require.Equal(t, before, s.Entries())
	requireInvariants[int](t, s)
}

func TestMutableSortRangeScoped(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "c", "b", "a", "d")
	s.SortRange(Range{1, 2}, func(a, b string) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
	require.Equal(t, []string{"c", "a", "b", "d"}, s.Entries())
	require.Panics(t, func() { s.SortRange(Range{3, 2}, func(a, b string) int { return 0 }) })
}

func TestMutableSortFull(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int], 4, 1, 3, 2)
	s.Sort(intCmp)
	require.Equal(t, []int{1, 2, 3, 4}, s.Entries())
	requireInvariants[int](t, s)
}

func TestMutableSortStable(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	hash := func(v *Mock) string { return v.A }
	s := NewMutableOrderedSet(hash,
		&Mock{A: "x", B: 2},
		&Mock{A: "y", B: 1},
		&Mock{A: "z", B: 2},
		&Mock{A: "w", B: 1},
	)
	s.Sort(func(a, b *Mock) int { return a.B - b.B })
	require.Equal(t, []string{"y", "w", "x", "z"}, []string{s.At(0).A, s.At(1).A, s.At(2).A, s.At(3).A})
}

func TestBackingStructuresStaySynchronized(t *testing.T) {
	s := NewMutableOrderedSet(Identity[string], "a", "b", "c")
	impl := s.(*mutableOrderedSet[string, string])
	require.Equal(t, impl.seq.size(), impl.index.size())
	s.Add("d")
	s.Insert("e", 1)
	s.RemoveAt(0)
	s.Replace(2, "f")
	s.Remove("e")
	s.Union(NewOrderedSet(Identity[string], "g", "d"))
	require.Equal(t, impl.seq.size(), impl.index.size())
	s.Clear()
	require.Equal(t, 0, impl.seq.size())
	require.Equal(t, 0, impl.index.size())
}

func TestMutationStormKeepsInvariants(t *testing.T) {
	s := NewMutableOrderedSet(Identity[int])
	for i := 0; i < 50; i++ {
		s.Add(i % 20)
	}
	s.RemoveIndexes(NewIndexSet(0, 5, 10, 15))
	s.Insert(100, 3)
	s.Replace(0, 200)
	s.Exchange(1, 2)
	s.Move(NewIndexSet(0, 4, 8), 2)
	s.Union(NewOrderedSet(Identity[int], 300, 2, 400))
	s.Minus(NewOrderedSet(Identity[int], 7, 9))
	s.Sort(intCmp)
	require.Equal(t, s.Size(), len(s.Entries()))
	requireInvariants[int](t, s)
}
