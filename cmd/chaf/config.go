package main

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	"github.com/go-faster/yaml"
)

const defaultConfigName = "chaf.yml"

func loadConfig(name string) (cfg Config, _ error) {
	defer func() {
		// Environment variable has higher precedence.
		if lvl := os.Getenv("CHAF_LOG_LEVEL"); lvl != "" {
			cfg.LogLevel = lvl
		}
		cfg.setDefaults()
	}()

	if name == "" {
		name = defaultConfigName
		if _, err := os.Stat(name); err != nil {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(filepath.Clean(name))
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %q", name)
	}

	return cfg, nil
}

// Config is the chaf config.
type Config struct {
	Invert       bool   `json:"invert" yaml:"invert"`
	Report       bool   `json:"report" yaml:"report"`
	ReportFormat string `json:"report_format" yaml:"report_format"`
	Progress     bool   `json:"progress" yaml:"progress"`
	LogLevel     string `json:"log_level" yaml:"log_level"`
}

func (cfg *Config) setDefaults() {
	if cfg.ReportFormat == "" {
		cfg.ReportFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
}
