package heap

import (
	"iter"

	"github.com/navijation/njheap/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

const DefaultCapacity = 10

// Heap is a binary heap over a backing array that doubles when full. D
// chooses whether the smallest (Min) or largest (Max) element is at the root.
//
// A Heap is not safe for concurrent use. The zero value is not usable; build
// one with New, NewMinHeap or NewMaxHeap.
type Heap[T any, D Direction] struct {
	storage[T]
	compare func(a, b T) int
}

type Args[T any] struct {
	Compare  func(a, b T) int
	Capacity util.Optional[int]
}

func New[T any, D Direction](args Args[T]) (out Heap[T, D], _ error) {
	if args.Compare == nil {
		return out, ErrNilComparator
	}

	capacity := args.Capacity.Or(DefaultCapacity)
	if capacity <= 0 {
		return out, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}

	return Heap[T, D]{
		storage: newStorage[T](capacity),
		compare: args.Compare,
	}, nil
}

func NewMinHeap[T any](comparator func(a, b T) int) Heap[T, Min] {
	return Heap[T, Min]{
		storage: newStorage[T](DefaultCapacity),
		compare: comparator,
	}
}

func NewMaxHeap[T any](comparator func(a, b T) int) Heap[T, Max] {
	return Heap[T, Max]{
		storage: newStorage[T](DefaultCapacity),
		compare: comparator,
	}
}

func NewOrderedMinHeap[T constraints.Ordered]() Heap[T, Min] {
	return NewMinHeap(compareOrdered[T])
}

func NewOrderedMaxHeap[T constraints.Ordered]() Heap[T, Max] {
	return NewMaxHeap(compareOrdered[T])
}

// compareOrdered treats unordered pairs (NaN) as equal.
func compareOrdered[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (me *Heap[T, D]) Size() int {
	return me.size
}

// Cap returns the length of the backing array.
func (me *Heap[T, D]) Cap() int {
	return len(me.items)
}

func (me *Heap[T, D]) Peek() (out T, _ error) {
	if me.size == 0 {
		return out, emptyHeapError("Peek")
	}
	return me.items[0], nil
}

func (me *Heap[T, D]) Pop() (out T, _ error) {
	if me.size == 0 {
		return out, emptyHeapError("Pop")
	}

	out = me.replaceRootWithLast()
	me.siftDown()
	return out, nil
}

func (me *Heap[T, D]) Push(value T) {
	me.append(value)
	me.siftUp()
}

// Drain pops elements in heap order until the heap is empty or the consumer
// stops early. Elements that were not yielded remain in the heap.
func (me *Heap[T, D]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for me.size > 0 {
			value, _ := me.Pop()
			if !yield(value) {
				return
			}
		}
	}
}
