package heap

import (
	"cmp"
	"container/heap"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

var _ heap.Interface = (*heapWrapper[any])(nil)

// heapWrapper is a container/heap reference used to cross-check pop order.
type heapWrapper[T any] struct {
	comparator func(a, b T) int
	items      []T
}

func (me *heapWrapper[T]) Len() int {
	return len(me.items)
}

func (me *heapWrapper[T]) Swap(i, j int) {
	me.items[i], me.items[j] = me.items[j], me.items[i]
}

func (me *heapWrapper[T]) Less(i, j int) bool {
	return me.comparator(me.items[i], me.items[j]) < 0
}

// Pop implements heap.Interface.
func (me *heapWrapper[T]) Pop() any {
	out := me.items[len(me.items)-1]
	me.items = me.items[:len(me.items)-1]
	return out
}

// Push implements heap.Interface.
func (me *heapWrapper[T]) Push(x any) {
	me.items = append(me.items, x.(T))
}

func TestHeap_MatchesContainerHeap(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	reversed := func(a, b int) int { return cmp.Compare(b, a) }

	minHeap := NewMinHeap(cmp.Compare[int])
	maxHeap := NewMaxHeap(cmp.Compare[int])
	minReference := &heapWrapper[int]{comparator: cmp.Compare[int]}
	maxReference := &heapWrapper[int]{comparator: reversed}

	for range 5000 {
		if rng.IntN(5) < 2 && minHeap.Size() > 0 {
			gotMin, err := minHeap.Pop()
			require.NoError(t, err)
			require.Equal(t, heap.Pop(minReference).(int), gotMin)

			gotMax, err := maxHeap.Pop()
			require.NoError(t, err)
			require.Equal(t, heap.Pop(maxReference).(int), gotMax)
			continue
		}

		value := rng.IntN(1000)
		minHeap.Push(value)
		maxHeap.Push(value)
		heap.Push(minReference, value)
		heap.Push(maxReference, value)

		require.Equal(t, minReference.Len(), minHeap.Size())
		require.Equal(t, maxReference.Len(), maxHeap.Size())
	}
}
