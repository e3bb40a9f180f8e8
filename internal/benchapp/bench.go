package benchapp

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/fr3shw3b/maxsubarray-bench/pkg/bench"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/config"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func Run(params *bench.Params) error {
	err := godotenv.Load(".env.bench")
	// The env file is optional, the process environment and
	// defaults are enough to run.
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("Failed to load environment variables: ", err)
	}

	conf, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration for benchmark: ", err)
	}

	logger := createLogger(conf)
	runLogger := logger.WithField("runId", uuid.New().String())

	if conf.ReportHostInfo {
		reportHostInfo(runLogger)
	}

	runLogger.WithFields(logrus.Fields{
		"n":           params.N,
		"initialSeed": params.InitialSeed,
		"minVal":      params.MinVal,
		"maxVal":      params.MaxVal,
		"trials":      params.Trials,
		"algorithm":   params.Algorithm,
		"verify":      params.Verify,
	}).Info("starting max subarray benchmark")

	runner := bench.NewDefaultRunner(params, runLogger)

	start := time.Now()
	result, err := runner.Run()
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	runLogger.WithField("elapsed", elapsed).Info("benchmark complete")
	printResult(os.Stdout, params.Trials, result, elapsed)
	return nil
}

func createLogger(conf *config.Config) *logrus.Logger {
	logger := logrus.New()
	if conf.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		customFormatter := new(logrus.TextFormatter)
		customFormatter.TimestampFormat = "2006-01-02T15:04:05.999999999Z07:00"
		customFormatter.FullTimestamp = true
		logger.SetFormatter(customFormatter)
	}
	logLevel, err := logrus.ParseLevel(conf.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

func printResult(w io.Writer, trials int, result bench.Result, elapsed time.Duration) {
	fmt.Fprintf(w, "Total Maximum Subarray Sum (%d runs): %d\n", trials, result.Total)
	fmt.Fprintf(w, "Execution Time: %.6f seconds\n", elapsed.Seconds())
}
