package render

import (
	"io"

	"fielddist/domain/distribution"
)

// ChartRenderer renders distribution summaries as PNG charts.
type ChartRenderer struct{}

// NewChartRenderer creates a chart renderer.
func NewChartRenderer() *ChartRenderer {
	return &ChartRenderer{}
}

// RenderBar writes a PNG bar chart of value vs. count.
func (c *ChartRenderer) RenderBar(summary distribution.Summary, title string, w io.Writer) error {
	return renderBar(summary, title, w)
}

// RenderPie writes a PNG pie chart with a separate legend.
func (c *ChartRenderer) RenderPie(summary distribution.Summary, title string, w io.Writer) error {
	return renderPie(summary, title, w)
}
