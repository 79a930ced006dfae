package collections

// Array is the read-only positional contract an ordered set can be
// viewed through.
type Array[V any] interface {
	Size() int
	At(i int) V
	First() (V, bool)
	Last() (V, bool)
	Entries() []V
	Enumerate() Enumerator[V]
}

// arrayView projects the owner's current contents as an array. It is
// live: mutations of the owner are visible through it.
type arrayView[R comparable, V any] struct {
	owner *orderedSet[R, V]
}

func (v *arrayView[R, V]) Size() int { return v.owner.Size() }

func (v *arrayView[R, V]) At(i int) V { return v.owner.At(i) }

func (v *arrayView[R, V]) First() (V, bool) { return v.owner.First() }

func (v *arrayView[R, V]) Last() (V, bool) { return v.owner.Last() }

func (v *arrayView[R, V]) Entries() []V { return v.owner.Entries() }

func (v *arrayView[R, V]) Enumerate() Enumerator[V] { return v.owner.Enumerate() }

// setView projects the owner's current contents as a Set. It is live
// and read-only; mutations must go through the owning mutable ordered
// set.
type setView[R comparable, V any] struct {
	owner *orderedSet[R, V]
}

func (v *setView[R, V]) Contains(e V) bool { return v.owner.Contains(e) }

func (v *setView[R, V]) Size() int { return v.owner.Size() }

func (v *setView[R, V]) Entries() []V { return v.owner.Entries() }

func (v *setView[R, V]) Add(V) error {
	return ErrReadOnlyView
}

func (v *setView[R, V]) Remove(V) error {
	return ErrReadOnlyView
}
