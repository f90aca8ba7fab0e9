package ports

import (
	"io"

	"fielddist/domain/distribution"
)

// ChartRenderer renders a distribution summary as raster charts.
type ChartRenderer interface {
	// RenderBar writes a PNG bar chart of value vs. count, one bar per
	// distinct value with the count printed above it.
	RenderBar(summary distribution.Summary, title string, w io.Writer) error

	// RenderPie writes a PNG pie chart with one wedge per distinct value
	// sized by count, and a legend of "value (pct%)" rows.
	RenderPie(summary distribution.Summary, title string, w io.Writer) error
}
