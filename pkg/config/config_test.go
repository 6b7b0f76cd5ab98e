package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/table"
)

func TestDefaultsValidate(t *testing.T) {
	cfg := New()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ',', cfg.CSV.DelimiterRune())

	types, err := cfg.Encoder.DTypeSelectors()
	require.NoError(t, err)
	assert.Equal(t, []table.ColumnType{table.ColumnTypeString, table.ColumnTypeCategorical}, types)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }},
		{"bad encoding", func(c *Config) { c.Logging.Encoding = "xml" }},
		{"long delimiter", func(c *Config) { c.CSV.Delimiter = ",," }},
		{"empty delimiter", func(c *Config) { c.CSV.Delimiter = "" }},
		{"negative sample", func(c *Config) { c.CSV.SampleSize = -1 }},
		{"negative levels", func(c *Config) { c.CSV.CategoricalMaxLevels = -1 }},
		{"no dtypes", func(c *Config) { c.Encoder.DTypes = nil }},
		{"bad dtype", func(c *Config) { c.Encoder.DTypes = []string{"object"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "logging:\n  level: debug\n  encoding: console\ncsv:\n  delimiter: \";\"\n  has_header: true\nencoder:\n  dtypes: [categorical]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg := New()
	require.NoError(t, Load(path, cfg))

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, ';', cfg.CSV.DelimiterRune())
	assert.Equal(t, []string{"categorical"}, cfg.Encoder.DTypes)
}

func TestLoadSubstitutesEnvVars(t *testing.T) {
	t.Setenv("TABULAR_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: ${TABULAR_LOG_LEVEL}\n"), 0o600))

	cfg := New()
	require.NoError(t, Load(path, cfg))
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := New()
	cfg.CSV.SampleSize = 250
	require.NoError(t, Save(path, cfg))

	loaded := &Config{}
	require.NoError(t, Load(path, loaded))
	assert.Equal(t, 250, loaded.CSV.SampleSize)
}

func TestLoadMissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "nope.yaml"), &Config{})
	assert.Error(t, err)
}
