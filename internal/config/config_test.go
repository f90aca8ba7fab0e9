package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fielddist/internal/errors"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fielddist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
input_path: data/split_test.csv
field: species_name
out_dir: data_exploration/test_split_distribution
output_name: test_split_species_distribution.csv
bar_title: "test_split_distribution"
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "data/split_test.csv", cfg.InputPath)
	assert.Equal(t, "species_name", cfg.Field)
	assert.Equal(t, "test_split_species_distribution.csv", cfg.OutputName)
	assert.Equal(t, "test_split_distribution", cfg.BarTitleTemplate)
	// unset template keeps the default
	assert.Equal(t, "Distribution of {column}", cfg.PieTitleTemplate)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{name: "complete", mutate: func(c *Config) {}, expectError: false},
		{name: "missing input", mutate: func(c *Config) { c.InputPath = "" }, expectError: true},
		{name: "missing field", mutate: func(c *Config) { c.Field = "" }, expectError: true},
		{name: "missing out dir", mutate: func(c *Config) { c.OutDir = "" }, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.InputPath = "data.csv"
			cfg.Field = "k"
			cfg.OutDir = "out"
			tt.mutate(&cfg)

			err := cfg.Validate()

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.HasCode(err, errors.CodeConfigInvalid))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTitleTemplates(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Distribution of species_name", cfg.BarTitle("species_name"))

	cfg.PieTitleTemplate = "Dataset split by {column} ({column})"
	assert.Equal(t, "Dataset split by k (k)", cfg.PieTitle("k"))

	cfg.BarTitleTemplate = "no placeholder"
	assert.Equal(t, "no placeholder", cfg.BarTitle("k"))
}
