package benchapp

import (
	"bytes"
	"testing"
	"time"

	"github.com/fr3shw3b/maxsubarray-bench/pkg/bench"
	"github.com/fr3shw3b/maxsubarray-bench/pkg/config"
	"github.com/sirupsen/logrus"
)

func Test_print_result_writes_total_and_elapsed_time(t *testing.T) {
	var out bytes.Buffer
	printResult(&out, 20, bench.Result{Total: 10980}, 1500*time.Millisecond)

	expected := "Total Maximum Subarray Sum (20 runs): 10980\n" +
		"Execution Time: 1.500000 seconds\n"
	if out.String() != expected {
		t.Errorf("expected output:\n%s\nreceived:\n%s", expected, out.String())
	}
}

func Test_logger_falls_back_to_info_for_unknown_level(t *testing.T) {
	logger := createLogger(&config.Config{LogLevel: "chatty", LogFormat: "text"})
	if logger.GetLevel() != logrus.InfoLevel {
		t.Error("expected info level, received: ", logger.GetLevel())
	}
	if _, isText := logger.Formatter.(*logrus.TextFormatter); !isText {
		t.Error("expected a text formatter")
	}
}

func Test_logger_uses_json_formatter_when_configured(t *testing.T) {
	logger := createLogger(&config.Config{LogLevel: "debug", LogFormat: "json"})
	if logger.GetLevel() != logrus.DebugLevel {
		t.Error("expected debug level, received: ", logger.GetLevel())
	}
	if _, isJSON := logger.Formatter.(*logrus.JSONFormatter); !isJSON {
		t.Error("expected a json formatter")
	}
}

func Test_run_returns_validation_errors(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	params := bench.DefaultParams()
	params.N = 0

	err := Run(params)
	if err == nil {
		t.Error("expected an error for a zero length sequence")
	}
}
