package render

import (
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default color palette for chart series.
var defaultColors = []string{
	"4F46E5", "10B981", "F59E0B", "EF4444", "8B5CF6",
	"06B6D4", "EC4899", "84CC16", "F97316", "6366F1",
}

func colorAt(i int) drawing.Color {
	return drawing.ColorFromHex(defaultColors[i%len(defaultColors)])
}
