package collections

import "fmt"

// Range addresses a contiguous run of positions: [Location, Location+Length).
type Range struct {
	Location int
	Length   int
}

func NewRange(location, length int) Range {
	return Range{Location: location, Length: length}
}

func (r Range) End() int {
	return r.Location + r.Length
}

func (r Range) Contains(i int) bool {
	return i >= r.Location && i < r.End()
}

// checkIndex validates 0 <= i < size. Violations are programmer errors
// and abort the operation.
func checkIndex(i, size int) {
	if i < 0 || i >= size {
		panic(fmt.Sprintf("collections: index %d out of range [0, %d)", i, size))
	}
}

// checkInsertIndex validates 0 <= i <= size, allowing one past the end
// for append-style insertion.
func checkInsertIndex(i, size int) {
	if i < 0 || i > size {
		panic(fmt.Sprintf("collections: insertion index %d out of range [0, %d]", i, size))
	}
}

// checkRange validates that r lies entirely within a collection of the
// given size.
func checkRange(r Range, size int) {
	if r.Location < 0 || r.Length < 0 || r.End() > size {
		panic(fmt.Sprintf("collections: range [%d, %d) out of range [0, %d)", r.Location, r.End(), size))
	}
}
