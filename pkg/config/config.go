// Package config provides configuration for the tabular CLI and library
// defaults.
//
// Configuration is organized into logical sections:
//   - Logging: level, encoding, development mode
//   - CSV: parsing and schema inference settings
//   - Encoder: which column types are treated as categorical
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/ajitpratap0/tabular/pkg/table"
)

// Config is the root configuration structure
type Config struct {
	// Logging controls the zap logger setup
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// CSV controls CSV parsing and schema inference
	CSV CSVConfig `yaml:"csv" json:"csv"`

	// Encoder controls categorical column selection
	Encoder EncoderConfig `yaml:"encoder" json:"encoder"`
}

// LoggingConfig contains logger settings
type LoggingConfig struct {
	// Level sets logging verbosity (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects json or console output
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables human-friendly output
	Development bool `yaml:"development" json:"development"`
}

// CSVConfig contains CSV parsing settings
type CSVConfig struct {
	// Delimiter is the field separator, a single character
	Delimiter string `yaml:"delimiter" json:"delimiter"`
	// HasHeader indicates the first row holds column names
	HasHeader bool `yaml:"has_header" json:"has_header"`
	// SampleSize limits rows inspected during schema inference (0 = all)
	SampleSize int `yaml:"sample_size" json:"sample_size"`
	// CategoricalMaxLevels bounds distinct values for a string column to
	// be treated as categorical (0 = never)
	CategoricalMaxLevels int `yaml:"categorical_max_levels" json:"categorical_max_levels"`
}

// EncoderConfig contains encoder settings
type EncoderConfig struct {
	// DTypes lists the column type tags selected for one-hot encoding
	DTypes []string `yaml:"dtypes" json:"dtypes"`
}

// New returns a Config with sensible defaults
func New() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "json",
		},
		CSV: CSVConfig{
			Delimiter:            ",",
			HasHeader:            true,
			SampleSize:           1000,
			CategoricalMaxLevels: 32,
		},
		Encoder: EncoderConfig{
			DTypes: []string{
				table.ColumnTypeString.String(),
				table.ColumnTypeCategorical.String(),
			},
		},
	}
}

// Validate validates the configuration for correctness
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Logging.Level)
	}
	if c.Logging.Encoding != "json" && c.Logging.Encoding != "console" {
		return fmt.Errorf("invalid log encoding %q", c.Logging.Encoding)
	}
	if utf8.RuneCountInString(c.CSV.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.CSV.Delimiter)
	}
	if c.CSV.SampleSize < 0 {
		return fmt.Errorf("sample_size cannot be negative")
	}
	if c.CSV.CategoricalMaxLevels < 0 {
		return fmt.Errorf("categorical_max_levels cannot be negative")
	}
	if len(c.Encoder.DTypes) == 0 {
		return fmt.Errorf("encoder dtypes cannot be empty")
	}
	for _, tag := range c.Encoder.DTypes {
		if _, err := table.ParseColumnType(tag); err != nil {
			return fmt.Errorf("invalid encoder dtype: %w", err)
		}
	}
	return nil
}

// DelimiterRune returns the configured delimiter as a rune
func (c *CSVConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// DTypeSelectors returns the configured dtypes as column types
func (c *EncoderConfig) DTypeSelectors() ([]table.ColumnType, error) {
	types := make([]table.ColumnType, 0, len(c.DTypes))
	for _, tag := range c.DTypes {
		t, err := table.ParseColumnType(tag)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}
