package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"fielddist/internal/errors"
)

// Config is the explicit per-run configuration record. Callers construct
// one (or load it from a YAML file) and pass it into each operation;
// there are no module-level mutable defaults and no environment inputs.
type Config struct {
	// InputPath is the dataset to summarize: .csv, .xlsx, or .json.
	InputPath string `yaml:"input_path"`
	// Field is the column (tabular) or key (JSON) whose value
	// distribution is computed.
	Field string `yaml:"field"`
	// OutDir receives the summary table and both charts. Created if needed.
	OutDir string `yaml:"out_dir"`

	// OutputName is the summary CSV filename. Empty derives
	// "{stem}_{field}_distribution.csv" from the input.
	OutputName string `yaml:"output_name"`
	// PlotName is the bar chart filename. Empty derives it from the
	// summary filename with a .png extension.
	PlotName string `yaml:"plot_name"`
	// PieName is the pie chart filename. Empty derives it from the
	// summary filename with a .pie.png extension.
	PieName string `yaml:"pie_name"`

	// BarTitleTemplate and PieTitleTemplate are chart titles. A
	// "{column}" placeholder expands to the field name.
	BarTitleTemplate string `yaml:"bar_title"`
	PieTitleTemplate string `yaml:"pie_title"`
}

// Default returns a config with the title templates filled in; input
// path, field and output directory still have to be supplied.
func Default() Config {
	return Config{
		BarTitleTemplate: "Distribution of {column}",
		PieTitleTemplate: "Distribution of {column}",
	}
}

// Load reads a YAML config file and overlays it on Default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config file %s", path)
	}

	return cfg, cfg.Validate()
}

// Validate checks the required fields.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return errors.ConfigInvalid("input_path is required")
	}
	if c.Field == "" {
		return errors.ConfigInvalid("field is required")
	}
	if c.OutDir == "" {
		return errors.ConfigInvalid("out_dir is required")
	}
	return nil
}

// BarTitle expands the bar title template for the given field.
func (c Config) BarTitle(field string) string {
	return expandTemplate(c.BarTitleTemplate, field)
}

// PieTitle expands the pie title template for the given field.
func (c Config) PieTitle(field string) string {
	return expandTemplate(c.PieTitleTemplate, field)
}

func expandTemplate(template, field string) string {
	return strings.ReplaceAll(template, "{column}", field)
}
