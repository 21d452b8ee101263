// Package charts renders PNG line charts for price history and goal
// projections.
package charts

import (
	"errors"

	"github.com/vicanso/go-charts/v2"
)

// ErrNotEnoughPoints is returned when a series has fewer than two
// points, which cannot be drawn as a line.
var ErrNotEnoughPoints = errors.New("charts: need at least two points")

// Line renders a single-series line chart.
func Line(title, subtitle string, labels []string, values []float64) ([]byte, error) {
	if len(values) < 2 {
		return nil, ErrNotEnoughPoints
	}
	yMin, yMax := padRange(values)
	painter, err := charts.LineRender([][]float64{values},
		charts.TitleTextOptionFunc(title, subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(labels)}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

// MultiLine renders several named series on a shared y-axis with a
// legend.
func MultiLine(title, subtitle string, labels, names []string, values [][]float64) ([]byte, error) {
	if len(values) == 0 || len(names) != len(values) {
		return nil, errors.New("charts: names and series must align")
	}
	for _, v := range values {
		if len(v) < 2 {
			return nil, ErrNotEnoughPoints
		}
	}
	yMin, yMax := padRange(values...)

	seriesList := charts.NewSeriesListDataFromValues(values, charts.ChartTypeLine)
	for i := range seriesList {
		seriesList[i].Name = names[i]
	}
	painter, err := charts.Render(charts.ChartOption{SeriesList: seriesList},
		charts.TitleTextOptionFunc(title, subtitle),
		charts.XAxisOptionFunc(charts.XAxisOption{Data: labels, BoundaryGap: charts.FalseFlag(), SplitNumber: splitFor(labels)}),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax, DivideCount: 5}),
		charts.LegendOptionFunc(charts.LegendOption{Data: names}),
		charts.ThemeOptionFunc(charts.ThemeLight),
	)
	if err != nil {
		return nil, err
	}
	return painter.Bytes()
}

func splitFor(labels []string) int {
	split := 10
	if len(labels) < split {
		split = len(labels)
	}
	return split
}

// padRange widens the observed extremes so lines do not hug the frame.
func padRange(series ...[]float64) (float64, float64) {
	min, max := series[0][0], series[0][0]
	for _, vals := range series {
		for _, v := range vals {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	pad := (max - min) * 0.05
	if pad < max*0.002 {
		pad = max * 0.002
	}
	min -= pad
	if min < 0 {
		min = 0
	}
	max += pad
	return min, max
}
