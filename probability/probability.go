package probability

import (
	"math"

	"github.com/pkg/errors"
)

var ErrInvalidArgument = errors.New("invalid argument")

// BinomialProbability returns the probability of exactly x successes in n
// independent trials that each succeed with probability p.
func BinomialProbability(n, x int, p float64) (float64, error) {
	switch {
	case n < 0:
		return 0, errors.Wrap(ErrInvalidArgument, "'n' must not be negative")
	case x < 0 || x > n:
		return 0, errors.Wrap(ErrInvalidArgument, "'x' must be between 0 and 'n' inclusive")
	case p < 0 || p > 1 || math.IsNaN(p):
		return 0, errors.Wrap(ErrInvalidArgument, "'p' must be between 0.0 and 1.0 inclusive")
	}

	combinations, err := Combination(n, x)
	if err != nil {
		return 0, err
	}

	return combinations * math.Pow(p, float64(x)) * math.Pow(1-p, float64(n-x)), nil
}

// Combination returns the number of distinct k-element subsets of n elements.
// n must be positive.
func Combination(n, k int) (float64, error) {
	switch {
	case n <= 0:
		return 0, errors.Wrap(ErrInvalidArgument, "'n' must be greater than 0")
	case k < 0 || k > n:
		return 0, errors.Wrap(ErrInvalidArgument, "'k' must be between 0 and 'n' inclusive")
	}

	numerator, denominator := 1.0, 1.0
	for i := k + 1; i <= n; i++ {
		numerator *= float64(i)
	}
	for i := 2; i <= n-k; i++ {
		denominator *= float64(i)
	}

	return numerator / denominator, nil
}
