package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"fielddist/domain/distribution"
	"fielddist/internal/analysis"
	"fielddist/internal/config"
	"fielddist/ports"
)

// DistributionService runs the summarize-and-plot pipeline: aggregate a
// field's value distribution from a record source, persist the summary
// table, and render bar and pie charts from it. Every operation is a
// single synchronous pass with fail-fast validation; nothing is written
// until aggregation has succeeded in full.
type DistributionService struct {
	renderer ports.ChartRenderer
}

// NewDistributionService creates a distribution service.
func NewDistributionService(renderer ports.ChartRenderer) *DistributionService {
	return &DistributionService{renderer: renderer}
}

// Outputs holds the paths written by a combined run.
type Outputs struct {
	SummaryPath string
	BarPath     string
	PiePath     string
}

// ComputeSummary aggregates the distribution of field across src and
// writes the summary table to outDir (created if needed). outputName
// may be empty, deriving "{stem}_{field}_distribution.csv". Returns the
// path written.
func (s *DistributionService) ComputeSummary(ctx context.Context, src ports.ValueSource, field, outDir, outputName string) (string, error) {
	values, err := src.FieldValues(ctx, field)
	if err != nil {
		return "", err
	}
	summary := distribution.Build(field, values)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if outputName == "" {
		outputName = fmt.Sprintf("%s_%s_distribution.csv", src.Name(), field)
	}
	outPath := filepath.Join(outDir, outputName)

	if err := writeSummaryCSV(outPath, summary); err != nil {
		return "", err
	}

	log.Info().
		Str("component", "distribution").
		Str("source", src.Name()).
		Str("field", field).
		Int("records", summary.Total).
		Int("buckets", len(summary.Entries)).
		Str("path", outPath).
		Msg("summary written")

	return outPath, nil
}

// PlotBar renders a bar chart from a summary table written by
// ComputeSummary. valueColumn may be empty, defaulting to the summary's
// first column; outPNG may be empty, deriving the summary path with a
// .png extension. Returns the path written.
func (s *DistributionService) PlotBar(ctx context.Context, summaryPath, valueColumn, outPNG, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	summary, err := readSummaryCSV(summaryPath, valueColumn)
	if err != nil {
		return "", err
	}

	if outPNG == "" {
		outPNG = replaceExt(summaryPath, ".png")
	}
	if err := s.renderToFile(outPNG, func(f *os.File) error {
		return s.renderer.RenderBar(summary, title, f)
	}); err != nil {
		return "", err
	}

	log.Info().
		Str("component", "distribution").
		Str("path", outPNG).
		Msg("bar chart written")

	return outPNG, nil
}

// PlotPie renders a pie chart from a summary table written by
// ComputeSummary. Defaults mirror PlotBar, with a .pie.png extension.
func (s *DistributionService) PlotPie(ctx context.Context, summaryPath, valueColumn, outPNG, title string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	summary, err := readSummaryCSV(summaryPath, valueColumn)
	if err != nil {
		return "", err
	}

	if outPNG == "" {
		outPNG = replaceExt(summaryPath, ".pie.png")
	}
	if err := s.renderToFile(outPNG, func(f *os.File) error {
		return s.renderer.RenderPie(summary, title, f)
	}); err != nil {
		return "", err
	}

	log.Info().
		Str("component", "distribution").
		Str("path", outPNG).
		Msg("pie chart written")

	return outPNG, nil
}

// ComputeAndPlot runs ComputeSummary, PlotBar and PlotPie in sequence
// over the same summary table and returns all three paths.
func (s *DistributionService) ComputeAndPlot(ctx context.Context, src ports.ValueSource, cfg config.Config) (Outputs, error) {
	runID := uuid.NewString()
	runLog := log.With().Str("component", "distribution").Str("run_id", runID).Logger()
	runLog.Info().Str("source", src.Name()).Str("field", cfg.Field).Msg("run started")

	summaryPath, err := s.ComputeSummary(ctx, src, cfg.Field, cfg.OutDir, cfg.OutputName)
	if err != nil {
		return Outputs{}, err
	}

	if summary, err := readSummaryCSV(summaryPath, cfg.Field); err == nil {
		if profile, perr := analysis.Compute(summary); perr == nil {
			runLog.Info().
				Int("buckets", profile.Buckets).
				Float64("entropy", profile.Entropy).
				Float64("uniformity_p", profile.UniformityP).
				Msg("distribution profile")
		}
	}

	barPath := ""
	if cfg.PlotName != "" {
		barPath = filepath.Join(cfg.OutDir, cfg.PlotName)
	}
	barPath, err = s.PlotBar(ctx, summaryPath, cfg.Field, barPath, cfg.BarTitle(cfg.Field))
	if err != nil {
		return Outputs{}, err
	}

	piePath := ""
	if cfg.PieName != "" {
		piePath = filepath.Join(cfg.OutDir, cfg.PieName)
	}
	piePath, err = s.PlotPie(ctx, summaryPath, cfg.Field, piePath, cfg.PieTitle(cfg.Field))
	if err != nil {
		return Outputs{}, err
	}

	runLog.Info().Msg("run completed")

	return Outputs{
		SummaryPath: summaryPath,
		BarPath:     barPath,
		PiePath:     piePath,
	}, nil
}

// renderToFile writes a chart through render, removing the partial file
// when rendering fails.
func (s *DistributionService) renderToFile(path string, render func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
