package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"fielddist/adapters/jsondata"
	"fielddist/adapters/render"
	"fielddist/adapters/tabular"
	"fielddist/app"
	"fielddist/internal/config"
	"fielddist/ports"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "fielddist",
		Short: "Field value distribution summarizer and plotter",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newRunCmd(),
		newSummarizeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRunCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Compute a field distribution and render bar and pie charts",
		Long: `Compute the frequency distribution of one field across a dataset,
write the summary table, and render a bar chart and a pie chart from it.

Example: fielddist run --input data/split_test.csv --field species_name --out data_exploration`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, cfg)
			if err != nil {
				return err
			}

			svc := app.NewDistributionService(render.NewChartRenderer())
			outputs, err := svc.ComputeAndPlot(cmd.Context(), sourceFor(cfg.InputPath), cfg)
			if err != nil {
				return err
			}

			fmt.Println(outputs.SummaryPath)
			fmt.Println(outputs.BarPath)
			fmt.Println(outputs.PiePath)
			return nil
		},
	}

	bindConfigFlags(cmd, &cfg, &configPath)
	cmd.Flags().StringVar(&cfg.PlotName, "plot-name", "", "bar chart filename (default derived)")
	cmd.Flags().StringVar(&cfg.PieName, "pie-name", "", "pie chart filename (default derived)")
	cmd.Flags().StringVar(&cfg.BarTitleTemplate, "bar-title", cfg.BarTitleTemplate, "bar chart title ({column} expands to the field)")
	cmd.Flags().StringVar(&cfg.PieTitleTemplate, "pie-title", cfg.PieTitleTemplate, "pie chart title ({column} expands to the field)")

	return cmd
}

func newSummarizeCmd() *cobra.Command {
	var configPath string
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Compute a field distribution summary table only",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configPath, cfg)
			if err != nil {
				return err
			}

			svc := app.NewDistributionService(render.NewChartRenderer())
			path, err := svc.ComputeSummary(cmd.Context(), sourceFor(cfg.InputPath), cfg.Field, cfg.OutDir, cfg.OutputName)
			if err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}

	bindConfigFlags(cmd, &cfg, &configPath)

	return cmd
}

func bindConfigFlags(cmd *cobra.Command, cfg *config.Config, configPath *string) {
	cmd.Flags().StringVar(configPath, "config", "", "YAML config file (flags override it)")
	cmd.Flags().StringVar(&cfg.InputPath, "input", "", "input dataset (.csv, .xlsx or .json)")
	cmd.Flags().StringVar(&cfg.Field, "field", "", "column or key to compute the distribution over")
	cmd.Flags().StringVar(&cfg.OutDir, "out", "", "output directory")
	cmd.Flags().StringVar(&cfg.OutputName, "output-name", "", "summary CSV filename (default derived)")
}

// resolveConfig loads the YAML file when given, then overlays any flag
// values the user set on top of it.
func resolveConfig(configPath string, flags config.Config) (config.Config, error) {
	if configPath == "" {
		return flags, flags.Validate()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if flags.InputPath != "" {
		cfg.InputPath = flags.InputPath
	}
	if flags.Field != "" {
		cfg.Field = flags.Field
	}
	if flags.OutDir != "" {
		cfg.OutDir = flags.OutDir
	}
	if flags.OutputName != "" {
		cfg.OutputName = flags.OutputName
	}
	return cfg, cfg.Validate()
}

// sourceFor picks the record source by file extension.
func sourceFor(inputPath string) ports.ValueSource {
	if strings.ToLower(filepath.Ext(inputPath)) == ".json" {
		return jsondata.NewReader(inputPath)
	}
	return tabular.NewReader(inputPath)
}
