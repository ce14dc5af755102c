package heap

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyHeap       = errors.New("heap is empty")
	ErrInvalidCapacity = errors.New("capacity must be positive")
	ErrNilComparator   = errors.New("comparator is required")
)

// EmptyHeapError is returned by Peek and Pop on an empty heap. Op names the
// operation that was attempted.
type EmptyHeapError struct {
	Op string
}

func (me *EmptyHeapError) Error() string {
	return fmt.Sprintf("cannot perform '%s' on an empty heap", me.Op)
}

func (me *EmptyHeapError) Is(target error) bool {
	return target == ErrEmptyHeap
}

func emptyHeapError(op string) error {
	return errors.WithStack(&EmptyHeapError{Op: op})
}
