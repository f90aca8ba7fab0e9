package render

import (
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"fielddist/domain/distribution"
	"fielddist/internal/errors"
)

const (
	barChartWidth  = 1200
	barChartHeight = 400
)

// renderBar draws a bar chart of value vs. count: one bar per distinct
// value, the count printed above each bar, x-axis labels rotated for
// legibility.
func renderBar(summary distribution.Summary, title string, w io.Writer) error {
	if len(summary.Entries) == 0 {
		return errors.InternalError("cannot render bar chart: distribution has no entries")
	}

	bars := make([]chart.Value, 0, len(summary.Entries))
	maxCount := 0
	for i, e := range summary.Entries {
		c := colorAt(i)
		bars = append(bars, chart.Value{
			Value: float64(e.Count),
			Label: e.Value,
			Style: chart.Style{FillColor: c, StrokeColor: c},
		})
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}

	// headroom above the tallest bar so its count label stays inside the canvas
	yMax := math.Ceil(float64(maxCount) * 1.15)
	if yMax < 1 {
		yMax = 1
	}

	bc := chart.BarChart{
		Title:      title,
		Width:      barChartWidth,
		Height:     barChartHeight,
		BarWidth:   40,
		BarSpacing: 15,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 30},
		},
		XAxis: chart.Style{
			TextRotationDegrees: 60,
			FontSize:            8,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Bars: bars,
	}
	bc.Elements = []chart.Renderable{countLabels(bars, yMax)}

	return bc.Render(chart.PNG, w)
}

// countLabels places each bar's count above the bar. The bar layout is
// recovered from the adjusted canvas box: go-chart clamps the canvas to
// the total bar width, so every bar occupies an equal slot of it.
func countLabels(bars []chart.Value, yMax float64) chart.Renderable {
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

		yr := &chart.ContinuousRange{Min: 0, Max: yMax}
		yr.SetDomain(canvasBox.Height())

		slot := canvasBox.Width() / len(bars)
		for i, bar := range bars {
			label := strconv.Itoa(int(bar.Value))
			tb := r.MeasureText(label)
			x := canvasBox.Left + i*slot + slot/2 - tb.Width()/2
			y := canvasBox.Bottom - yr.Translate(bar.Value) - 4
			chart.Draw.Text(r, label, x, y, style)
		}
	}
}
