package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// Either "text" or "json".
	LogFormat      string `env:"LOG_FORMAT" envDefault:"text"`
	ReportHostInfo bool   `env:"REPORT_HOST_INFO" envDefault:"false"`
}

func Load() (*Config, error) {
	conf := &Config{}
	if err := env.Parse(conf); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return conf, nil
}
