// Package config loads tool settings from an optional YAML file and the
// environment. Settings resolve in order: built-in defaults, then the
// config file, then environment variables; command-line flags are applied
// last by the caller.
package config

import (
	"fmt"
	"os"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/parse"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/scraper"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/storage"
	"gopkg.in/yaml.v3"
)

// Environment variables recognized by ApplyEnv.
const (
	EnvSourceURL  = "VLA_SOURCE_URL"
	EnvOutputFile = "VLA_OUTPUT_FILE"
)

// Config holds the tool settings.
type Config struct {
	SourceURL  string         `yaml:"source_url"`
	OutputFile string         `yaml:"output_file"`
	Parser     ParserSettings `yaml:"parser"`
}

// ParserSettings expose the column heuristics of the table parser.
type ParserSettings struct {
	UVMinColumn int     `yaml:"uvmin_column"`
	UVMaxColumn int     `yaml:"uvmax_column"`
	FluxFloor   float64 `yaml:"flux_floor"`
}

// Default returns the built-in settings.
func Default() Config {
	th := parse.DefaultThresholds()
	return Config{
		SourceURL:  scraper.CalibratorListURL,
		OutputFile: storage.DefaultOutputFile,
		Parser: ParserSettings{
			UVMinColumn: th.UVMinColumn,
			UVMaxColumn: th.UVMaxColumn,
			FluxFloor:   th.FluxFloor,
		},
	}
}

// Load reads a YAML config file over the defaults. Keys absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvSourceURL); v != "" {
		c.SourceURL = v
	}
	if v := os.Getenv(EnvOutputFile); v != "" {
		c.OutputFile = v
	}
}

// Thresholds converts the parser settings to parse thresholds.
func (c Config) Thresholds() parse.Thresholds {
	return parse.Thresholds{
		UVMinColumn: c.Parser.UVMinColumn,
		UVMaxColumn: c.Parser.UVMaxColumn,
		FluxFloor:   c.Parser.FluxFloor,
	}
}
