package bench

import (
	"errors"
	"fmt"

	"github.com/fr3shw3b/maxsubarray-bench/pkg/subarray"
)

const (
	DefaultN           = 10000
	DefaultInitialSeed = 42
	DefaultMinVal      = -10
	DefaultMaxVal      = 10
	DefaultTrials      = 20
)

var (
	ErrInvalidParameter  = errors.New("invalid parameter")
	ErrAlgorithmMismatch = errors.New("max subarray algorithms disagree")
)

type Params struct {
	// Length of the random sequence for each trial.
	N           int
	InitialSeed uint64
	// Sums are int64 and are not checked for overflow, so
	// N * max(|MinVal|, |MaxVal|) must fit in an int64 for every trial
	// and Trials times that for the total.
	MinVal      int64
	MaxVal      int64
	Trials      int
	Algorithm   subarray.Algorithm
	// When set, every trial is recomputed with the counterpart
	// algorithm and any disagreement fails the run.
	Verify bool
}

func DefaultParams() *Params {
	return &Params{
		N:           DefaultN,
		InitialSeed: DefaultInitialSeed,
		MinVal:      DefaultMinVal,
		MaxVal:      DefaultMaxVal,
		Trials:      DefaultTrials,
		Algorithm:   subarray.AlgorithmBruteForce,
	}
}

func (p *Params) Validate() error {
	if p.N < 1 {
		return fmt.Errorf("%w: n must be at least 1, received %d", ErrInvalidParameter, p.N)
	}
	if p.MinVal > p.MaxVal {
		return fmt.Errorf(
			"%w: minVal (%d) must not be greater than maxVal (%d)",
			ErrInvalidParameter,
			p.MinVal,
			p.MaxVal,
		)
	}
	if p.Trials < 1 {
		return fmt.Errorf("%w: trials must be at least 1, received %d", ErrInvalidParameter, p.Trials)
	}
	if _, err := subarray.Lookup(p.Algorithm); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidParameter, err)
	}
	return nil
}
