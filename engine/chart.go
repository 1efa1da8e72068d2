package engine

import (
	"errors"
	"io"
	"math"

	"github.com/wcharczuk/go-chart/v2"
)

var ErrNothingToChart = errors.New("engine: no TOTAL rows to chart")

// RenderChart draws one bar per algorithm from the TOTAL rows of a benchmark,
// showing the overall compression ratio, as SVG.
func RenderChart(w io.Writer, rows []*BenchmarkRow) error {
	var bars []chart.Value
	top := 1.0
	for _, row := range rows {
		if !row.IsTotal {
			continue
		}
		bars = append(bars, chart.Value{Label: row.Algorithm, Value: row.Ratio})
		top = math.Max(top, row.Ratio)
	}
	if len(bars) == 0 {
		return ErrNothingToChart
	}

	graph := chart.BarChart{
		Title:    "Compression ratio (lower is better)",
		Width:    160 * max(len(bars), 4),
		Height:   480,
		BarWidth: 60,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top * 1.1},
		},
		Bars: bars,
	}
	return graph.Render(chart.SVG, w)
}
