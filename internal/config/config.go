// Package config loads converter settings from a YAML file and the
// environment.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultOutputDir is used when neither the command line nor the
// configuration names an output directory.
const DefaultOutputDir = "./public/data"

// EnvPrefix prefixes every environment override, e.g. SCREENER_OUTPUT_DIR.
const EnvPrefix = "SCREENER"

// Config is the top-level converter configuration.
type Config struct {
	Output  Output  `yaml:"output"`
	Export  Export  `yaml:"export"`
	Logging Logging `yaml:"logging"`
}

// Output controls the JSON output.
type Output struct {
	Dir             string `yaml:"dir"`
	IncludeUnlisted bool   `yaml:"include_unlisted"`
	SkipEmpty       bool   `yaml:"skip_empty"`
}

// Export enables the optional tabular exports.
type Export struct {
	Parquet bool `yaml:"parquet"`
	SQLite  bool `yaml:"sqlite"`
}

// Logging configures console output and diagnostics.
type Logging struct {
	Level string `yaml:"level"`
	Quiet bool   `yaml:"quiet"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output:  Output{Dir: DefaultOutputDir},
		Logging: Logging{Level: "warn"},
	}
}

// Load reads the YAML file at path on top of the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides replaces fields whose SCREENER_* variable is set.
func applyEnvOverrides(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if v.IsSet("output_dir") {
		cfg.Output.Dir = v.GetString("output_dir")
	}
	if v.IsSet("include_unlisted") {
		cfg.Output.IncludeUnlisted = v.GetBool("include_unlisted")
	}
	if v.IsSet("skip_empty") {
		cfg.Output.SkipEmpty = v.GetBool("skip_empty")
	}
	if v.IsSet("parquet") {
		cfg.Export.Parquet = v.GetBool("parquet")
	}
	if v.IsSet("sqlite") {
		cfg.Export.SQLite = v.GetBool("sqlite")
	}
	if v.IsSet("log_level") {
		cfg.Logging.Level = v.GetString("log_level")
	}
	if v.IsSet("quiet") {
		cfg.Logging.Quiet = v.GetBool("quiet")
	}
}
