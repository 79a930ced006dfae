package collections

// Set is an unordered collection of unique values. Entries must return
// the same order for the same build-up sequence so that constructing an
// ordered collection from a set is deterministic.
type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

// HashFunc reduces a value to a comparable key. Two values are
// considered equal iff their keys are equal.
type HashFunc[R comparable, V any] func(V) R

// Identity is the hash func for element types that are directly
// comparable.
func Identity[V comparable](v V) V {
	return v
}

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	order    []R
	hashFunc HashFunc[R, V]
}

func NewHashSet[R comparable, V any](f HashFunc[R, V], vs ...V) Set[V] {
	s := &hashSet[R, V]{
		entries:  make(map[R]V),
		order:    make([]R, 0, len(vs)),
		hashFunc: f,
	}
	for _, v := range vs {
		_ = s.Add(v)
	}
	return s
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return ErrValueExisted
	}
	s.entries[hash] = v
	s.order = append(s.order, hash)
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	for i, h := range s.order {
		if h == hash {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, len(s.order))
	for _, h := range s.order {
		arr = append(arr, s.entries[h])
	}
	return arr
}
