package main

import (
	"log"
	"os"

	"github.com/fr3shw3b/maxsubarray-bench/internal/benchapp"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/bench"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/subarray"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:  "bench",
		Usage: "Sums the maximum subarray of LCG generated sequences across chained trials",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "n",
				Value: bench.DefaultN,
				Usage: "The number of random values generated for each trial",
			},
			&cli.Uint64Flag{
				Name:  "seed",
				Value: bench.DefaultInitialSeed,
				Usage: "The initial seed of the generator that seeds each trial",
			},
			&cli.Int64Flag{
				Name:  "min-val",
				Value: bench.DefaultMinVal,
				Usage: "The smallest value a generated number can take",
			},
			&cli.Int64Flag{
				Name:  "max-val",
				Value: bench.DefaultMaxVal,
				Usage: "The largest value a generated number can take",
			},
			&cli.IntFlag{
				Name:  "trials",
				Value: bench.DefaultTrials,
				Usage: "The number of trials to sum",
			},
			&cli.StringFlag{
				Name:  "algorithm",
				Value: string(subarray.AlgorithmBruteForce),
				Usage: "The max subarray algorithm, either brute-force or kadane",
			},
			&cli.BoolFlag{
				Name:  "verify",
				Usage: "Cross-check every trial against the other algorithm",
			},
		},
		Action: func(cCtx *cli.Context) error {
			return benchapp.Run(&bench.Params{
				N:           cCtx.Int("n"),
				InitialSeed: cCtx.Uint64("seed"),
				MinVal:      cCtx.Int64("min-val"),
				MaxVal:      cCtx.Int64("max-val"),
				Trials:      cCtx.Int("trials"),
				Algorithm:   subarray.Algorithm(cCtx.String("algorithm")),
				Verify:      cCtx.Bool("verify"),
			})
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
