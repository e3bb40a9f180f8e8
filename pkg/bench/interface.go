package bench

type Runner interface {
	// Runs every trial and returns the aggregated result.
	// Parameters are validated before any trial runs.
	Run() (Result, error)
}

type Result struct {
	Total  int64
	Trials []TrialResult
}

type TrialResult struct {
	Index int
	// The seed drawn from the chained seed generator for this trial.
	Seed   uint64
	MaxSum int64
	// Fingerprint of the random sequence the trial consumed.
	Checksum string
}
