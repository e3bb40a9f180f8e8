package subarray

import "math"

// NoSubarray is returned for an empty sequence, which has no
// non-empty contiguous run to sum.
const NoSubarray int64 = math.MinInt64

// BruteForce scans every (start, end) pair, extending a running sum
// from each start index. O(n²) time.
func BruteForce(values []int64) int64 {
	maxSum := NoSubarray
	for i := 0; i < len(values); i++ {
		var currentSum int64
		for j := i; j < len(values); j++ {
			currentSum += values[j]
			if currentSum > maxSum {
				maxSum = currentSum
			}
		}
	}
	return maxSum
}

// Kadane produces the same result as BruteForce in linear time.
func Kadane(values []int64) int64 {
	if len(values) == 0 {
		return NoSubarray
	}
	maxSum := values[0]
	currentSum := values[0]
	for _, value := range values[1:] {
		if currentSum < 0 {
			currentSum = value
		} else {
			currentSum += value
		}
		if currentSum > maxSum {
			maxSum = currentSum
		}
	}
	return maxSum
}
