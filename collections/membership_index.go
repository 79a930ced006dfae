package collections

// membershipIndex answers containment queries in near-constant time. It
// carries no positional information; position lives in orderedSequence.
type membershipIndex[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashFunc[R, V]
}

func newMembershipIndex[R comparable, V any](f HashFunc[R, V]) *membershipIndex[R, V] {
	return &membershipIndex[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (m *membershipIndex[R, V]) contains(v V) bool {
	_, ok := m.entries[m.hashFunc(v)]
	return ok
}

func (m *membershipIndex[R, V]) add(v V) bool {
	hash := m.hashFunc(v)
	if _, ok := m.entries[hash]; ok {
		return false
	}
	m.entries[hash] = v
	return true
}

func (m *membershipIndex[R, V]) remove(v V) bool {
	hash := m.hashFunc(v)
	if _, ok := m.entries[hash]; !ok {
		return false
	}
	delete(m.entries, hash)
	return true
}

func (m *membershipIndex[R, V]) size() int {
	return len(m.entries)
}

func (m *membershipIndex[R, V]) clear() {
	m.entries = make(map[R]V)
}
