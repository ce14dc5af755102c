package testing_util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireOrdered fails the test unless inOrder accepts compare(a, b) for every
// adjacent pair a, b of values.
func RequireOrdered[T any](
	t *testing.T, values []T, compare func(a, b T) int, inOrder func(comparison int) bool,
) {
	t.Helper()

	for i := 1; i < len(values); i++ {
		comparison := compare(values[i-1], values[i])
		require.Truef(t, inOrder(comparison),
			"values at %d and %d are out of order: %v, %v", i-1, i, values[i-1], values[i],
		)
	}
}

func Ascending(comparison int) bool {
	return comparison <= 0
}

func Descending(comparison int) bool {
	return comparison >= 0
}
