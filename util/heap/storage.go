package heap

// storage is a fixed-length backing array holding the tree nodes in
// items[0:size]. Slots past size are slack and always hold the zero value.
type storage[T any] struct {
	items []T
	size  int
}

func newStorage[T any](capacity int) storage[T] {
	return storage[T]{
		items: make([]T, capacity),
	}
}

// ensureCapacity doubles the backing array when every slot is in use. It is
// called before each insertion and never shrinks the array.
func (me *storage[T]) ensureCapacity() {
	if me.size < len(me.items) {
		return
	}

	items := make([]T, len(me.items)<<1)
	copy(items, me.items)
	me.items = items
}

func (me *storage[T]) append(value T) {
	me.ensureCapacity()
	me.items[me.size] = value
	me.size++
}

// replaceRootWithLast moves the last node into the root slot and returns the
// previous root.
func (me *storage[T]) replaceRootWithLast() (root T) {
	var zero T

	root = me.items[0]
	me.items[0] = me.items[me.size-1]
	me.items[me.size-1] = zero
	me.size--
	return root
}
