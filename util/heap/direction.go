package heap

// Direction selects which end of the ordering sits at the root. The only
// implementations are Min and Max.
type Direction interface {
	// precedes reports whether a comparison result places the left operand
	// closer to the root than the right operand.
	precedes(comparison int) bool
	// follows reports whether a comparison result places the left operand
	// further from the root than the right operand.
	follows(comparison int) bool
}

// Min keeps the smallest element at the root.
type Min struct{}

func (Min) precedes(comparison int) bool { return comparison < 0 }
func (Min) follows(comparison int) bool  { return comparison > 0 }

// Max keeps the largest element at the root.
type Max struct{}

func (Max) precedes(comparison int) bool { return comparison > 0 }
func (Max) follows(comparison int) bool  { return comparison < 0 }

var (
	_ Direction = Min{}
	_ Direction = Max{}
)

// siftDown restores heap order after the root has been replaced. Equal
// elements are swapped downwards rather than left in place.
func (me *Heap[T, D]) siftDown() {
	var direction D

	index := 0
	for me.hasLeftChild(index) {
		preferredChild := leftChildIndex(index)
		if me.hasRightChild(index) &&
			direction.precedes(me.compare(me.items[rightChildIndex(index)], me.items[preferredChild])) {
			preferredChild = rightChildIndex(index)
		}

		if direction.precedes(me.compare(me.items[index], me.items[preferredChild])) {
			break
		}

		me.swap(index, preferredChild)
		index = preferredChild
	}
}

// siftUp restores heap order after a value was appended at the last slot.
func (me *Heap[T, D]) siftUp() {
	var direction D

	index := me.size - 1
	for hasParent(index) &&
		direction.follows(me.compare(me.items[parentIndex(index)], me.items[index])) {
		me.swap(parentIndex(index), index)
		index = parentIndex(index)
	}
}
