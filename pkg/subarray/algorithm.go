package subarray

import (
	"errors"
	"fmt"
)

type Algorithm string

const (
	AlgorithmBruteForce Algorithm = "brute-force"
	AlgorithmKadane     Algorithm = "kadane"
)

// Func computes the maximum contiguous sum of a sequence.
type Func func(values []int64) int64

var ErrUnknownAlgorithm = errors.New("unknown max subarray algorithm")

var algorithms = map[Algorithm]Func{
	AlgorithmBruteForce: BruteForce,
	AlgorithmKadane:     Kadane,
}

func Lookup(algorithm Algorithm) (Func, error) {
	fn, exists := algorithms[algorithm]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algorithm)
	}
	return fn, nil
}

// Counterpart returns the algorithm used to cross-check results
// computed with the given one.
func Counterpart(algorithm Algorithm) Algorithm {
	if algorithm == AlgorithmKadane {
		return AlgorithmBruteForce
	}
	return AlgorithmKadane
}
