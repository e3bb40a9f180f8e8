package bench

import (
	"fmt"

	"github.com/fr3shw3b/maxsubarray-bench/pkg/lcg"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/subarray"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Swapped in tests to exercise verification failures.
var lookupAlgorithm = subarray.Lookup

type runnerImpl struct {
	params *Params
	logger logrus.FieldLogger
}

func NewDefaultRunner(params *Params, logger logrus.FieldLogger) Runner {
	return &runnerImpl{
		params,
		logger,
	}
}

func (r *runnerImpl) Run() (Result, error) {
	if err := r.params.Validate(); err != nil {
		return Result{}, err
	}

	maxSum, err := lookupAlgorithm(r.params.Algorithm)
	if err != nil {
		return Result{}, err
	}
	var verifyWith subarray.Func
	if r.params.Verify {
		verifyWith, err = lookupAlgorithm(subarray.Counterpart(r.params.Algorithm))
		if err != nil {
			return Result{}, err
		}
	}

	// One seed generator persists across all trials. Each trial's
	// sequence comes from a fresh generator seeded with its next output.
	seeds := lcg.New(r.params.InitialSeed)
	result := Result{Trials: make([]TrialResult, 0, r.params.Trials)}
	for i := 0; i < r.params.Trials; i += 1 {
		seed := seeds.Next()
		sequence := utils.GeneratePseudoRandomSequence(
			lcg.New(seed),
			r.params.N,
			r.params.MinVal,
			r.params.MaxVal,
		)
		trial := TrialResult{
			Index:    i,
			Seed:     seed,
			MaxSum:   maxSum(sequence),
			Checksum: utils.CreateChecksum(sequence),
		}

		if verifyWith != nil {
			expected := verifyWith(sequence)
			if expected != trial.MaxSum {
				return Result{}, fmt.Errorf(
					"%w: trial %d (seed %d) produced %d with %s and %d with %s",
					ErrAlgorithmMismatch,
					i,
					seed,
					trial.MaxSum,
					r.params.Algorithm,
					expected,
					subarray.Counterpart(r.params.Algorithm),
				)
			}
		}

		r.logger.WithFields(logrus.Fields{
			"trial":    trial.Index,
			"seed":     trial.Seed,
			"maxSum":   trial.MaxSum,
			"checksum": trial.Checksum,
		}).Debug("trial complete")

		result.Total += trial.MaxSum
		result.Trials = append(result.Trials, trial)
	}

	r.logger.WithField("seedState", seeds.Value()).Debug("all trials complete")
	return result, nil
}

// MaxSubarraySum computes the brute-force maximum subarray sum of n values
// drawn from a generator seeded with seed and mapped into [minVal, maxVal].
// An n of 0 yields subarray.NoSubarray.
func MaxSubarraySum(n int, seed uint64, minVal int64, maxVal int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n must not be negative, received %d", ErrInvalidParameter, n)
	}
	if minVal > maxVal {
		return 0, fmt.Errorf(
			"%w: minVal (%d) must not be greater than maxVal (%d)",
			ErrInvalidParameter,
			minVal,
			maxVal,
		)
	}
	sequence := utils.GeneratePseudoRandomSequence(lcg.New(seed), n, minVal, maxVal)
	return subarray.BruteForce(sequence), nil
}

// TotalMaxSubarraySum sums MaxSubarraySum over DefaultTrials chained seeds.
func TotalMaxSubarraySum(n int, initialSeed uint64, minVal int64, maxVal int64) (int64, error) {
	params := DefaultParams()
	params.N = n
	params.InitialSeed = initialSeed
	params.MinVal = minVal
	params.MaxVal = maxVal

	result, err := NewDefaultRunner(params, discardLogger()).Run()
	if err != nil {
		return 0, err
	}
	return result.Total, nil
}
