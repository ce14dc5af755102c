package heap

func leftChildIndex(parent int) int {
	return 2*parent + 1
}

func rightChildIndex(parent int) int {
	return 2*parent + 2
}

// parentIndex is only meaningful for child > 0; (0-1)/2 truncates to 0.
func parentIndex(child int) int {
	return (child - 1) / 2
}

func hasParent(index int) bool {
	return index > 0
}

func (me *storage[T]) hasLeftChild(index int) bool {
	return leftChildIndex(index) < me.size
}

func (me *storage[T]) hasRightChild(index int) bool {
	return rightChildIndex(index) < me.size
}

func (me *storage[T]) swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}
