package collections

import "golang.org/x/exp/slices"

// Comparator orders two elements: negative when a sorts before b, zero
// when they tie, positive when a sorts after b.
type Comparator[V any] func(a, b V) int

// sortRange extracts the entries in r, sorts them stably under cmp and
// writes them back at the same positions. Positions outside r are
// untouched, and membership is unaffected since the element set does
// not change.
func sortRange[V any](seq *orderedSequence[V], r Range, cmp Comparator[V]) {
	sub := seq.subrange(r)
	slices.SortStableFunc(sub, func(a, b V) bool {
		return cmp(a, b) < 0
	})
	seq.writeBack(r, sub)
}
