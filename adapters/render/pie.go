package render

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"fielddist/domain/distribution"
	"fielddist/internal/errors"
)

const (
	pieChartWidth  = 1000
	pieChartHeight = 600
	legendSwatch   = 10
	legendPad      = 5
)

// renderPie draws a pie chart with one wedge per distinct value sized by
// count. Wedges carry no labels; a legend on the right lists each value
// with its percentage. When the total is zero the wedges degrade to equal
// slices and the legend falls back to bare value names.
func renderPie(summary distribution.Summary, title string, w io.Writer) error {
	if len(summary.Entries) == 0 {
		return errors.InternalError("cannot render pie chart: distribution has no entries")
	}

	values := make([]chart.Value, 0, len(summary.Entries))
	rows := make([]string, 0, len(summary.Entries))
	colors := make([]drawing.Color, 0, len(summary.Entries))
	for i, e := range summary.Entries {
		c := colorAt(i)
		size := float64(e.Count)
		if summary.Total == 0 {
			size = 1
		}
		values = append(values, chart.Value{
			Value: size,
			Style: chart.Style{FillColor: c, StrokeColor: c},
		})
		if summary.Total > 0 {
			pct := float64(e.Count) / float64(summary.Total) * 100.0
			rows = append(rows, fmt.Sprintf("%s (%.1f%%)", e.Value, pct))
		} else {
			rows = append(rows, e.Value)
		}
		colors = append(colors, c)
	}

	pc := chart.PieChart{
		Title:  title,
		Width:  pieChartWidth,
		Height: pieChartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 20, Right: 20, Bottom: 20},
		},
		Values: values,
	}
	pc.Elements = []chart.Renderable{wedgeLegend(summary.Field, rows, colors)}

	return pc.Render(chart.PNG, w)
}

// wedgeLegend draws a vertically centered legend along the right edge of
// the canvas: a colored swatch per wedge followed by its label row, with
// the field name as a heading. go-chart's built-in legend only attaches
// to series charts, so pie charts carry this renderable instead.
func wedgeLegend(heading string, rows []string, colors []drawing.Color) chart.Renderable {
	return func(r chart.Renderer, canvasBox chart.Box, defaults chart.Style) {
		style := chart.Style{
			Font:      defaults.Font,
			FontSize:  8,
			FontColor: chart.DefaultTextColor,
		}
		if style.Font == nil {
			font, err := chart.GetDefaultFont()
			if err != nil {
				return
			}
			style.Font = font
		}
		style.WriteTextOptionsToRenderer(r)

		maxWidth := r.MeasureText(heading).Width()
		rowHeight := 0
		for _, row := range rows {
			tb := r.MeasureText(row)
			if tb.Width() > maxWidth {
				maxWidth = tb.Width()
			}
			if tb.Height() > rowHeight {
				rowHeight = tb.Height()
			}
		}
		rowHeight += legendPad

		totalHeight := (len(rows) + 1) * rowHeight
		left := canvasBox.Right - maxWidth - legendSwatch - 3*legendPad
		y := canvasBox.Top + (canvasBox.Height()-totalHeight)/2 + rowHeight

		chart.Draw.Text(r, heading, left, y, style)
		y += rowHeight

		for i, row := range rows {
			chart.Draw.Box(r, chart.Box{
				Left:   left,
				Top:    y - legendSwatch,
				Right:  left + legendSwatch,
				Bottom: y,
			}, chart.Style{FillColor: colors[i], StrokeColor: colors[i]})
			chart.Draw.Text(r, row, left+legendSwatch+legendPad, y, style)
			y += rowHeight
		}
	}
}
