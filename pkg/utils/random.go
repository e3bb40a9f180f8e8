package utils

import "github.com/fr3shw3b/maxsubarray-bench/pkg/lcg"

// GeneratePseudoRandomSequence draws size values from gen, each mapped
// into [minVal, maxVal].
func GeneratePseudoRandomSequence(gen *lcg.Generator, size int, minVal int64, maxVal int64) []int64 {
	sequence := make([]int64, size)
	for i := range sequence {
		sequence[i] = MapToRange(gen.Next(), minVal, maxVal)
	}
	return sequence
}

// MapToRange expects minVal <= maxVal.
func MapToRange(value uint64, minVal int64, maxVal int64) int64 {
	// Unsigned subtraction gives the exact width even when
	// maxVal - minVal does not fit in an int64.
	span := uint64(maxVal) - uint64(minVal) + 1
	if span == 0 {
		// The range covers every int64.
		return minVal + int64(value)
	}
	return minVal + int64(value%span)
}
