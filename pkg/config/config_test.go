package config

import (
	"os"
	"testing"
)

func Test_load_applies_defaults_when_env_is_unset(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_FORMAT", "REPORT_HOST_INFO"} {
		// Setenv restores the original value once the test completes.
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	conf, err := Load()
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if conf.LogLevel != "info" {
		t.Error("expected log level info, received: ", conf.LogLevel)
	}
	if conf.LogFormat != "text" {
		t.Error("expected log format text, received: ", conf.LogFormat)
	}
	if conf.ReportHostInfo {
		t.Error("expected host info reporting to be disabled by default")
	}
}

func Test_load_reads_values_from_env(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REPORT_HOST_INFO", "true")

	conf, err := Load()
	if err != nil {
		t.Error(err)
		t.FailNow()
	}

	if conf.LogLevel != "debug" || conf.LogFormat != "json" || !conf.ReportHostInfo {
		t.Error("expected config to reflect env, received: ", *conf)
	}
}

func Test_load_fails_for_malformed_bool(t *testing.T) {
	t.Setenv("REPORT_HOST_INFO", "sometimes")

	_, err := Load()
	if err == nil {
		t.Error("expected an error for a malformed REPORT_HOST_INFO value")
	}
}
