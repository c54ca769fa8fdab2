package main

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ScenarioColumns lists the accepted names of the x-axis column. The benchmark
// programs write the header as "cenario".
var ScenarioColumns = []string{"scenario", "cenario"}

type ChartStyle struct {
	Width  float64 // inches
	Height float64 // inches
}

var DefaultChartStyle = ChartStyle{Width: 6.4, Height: 4.8}

var lineColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}

func scenarioColumn(table *Table) (string, bool) {
	for _, column := range ScenarioColumns {
		if table.Has(column) {
			return column, true
		}
	}
	return "", false
}

// Capitalize upper-cases the first rune of s and keeps the rest as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// GenerateCharts writes one <metric>.png line chart into dir for every metric
// present in table. Metrics missing from the table are skipped. Paths of the
// written files are returned in metric order.
func GenerateCharts(table *Table, metrics []string, label string, dir string, style ChartStyle) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %v: %w", dir, err)
	}
	files := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		if !table.Has(metric) {
			Logger.Debugf("metric %v is absent for %v, skip", metric, label)
			continue
		}
		filename := filepath.Join(dir, fmt.Sprintf("%v.png", metric))
		if err := renderChart(table, metric, label, filename, style); err != nil {
			return nil, fmt.Errorf("failed to render chart %v for %v: %w", metric, label, err)
		}
		Logger.Debugf("written chart %v", filename)
		files = append(files, filename)
	}
	return files, nil
}

func renderChart(table *Table, metric string, label string, filename string, style ChartStyle) error {
	scenario, ok := scenarioColumn(table)
	if !ok {
		return fmt.Errorf("no scenario column among %v", ScenarioColumns)
	}
	values, err := table.Floats(metric)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%v - %v", metric, Capitalize(label))
	p.X.Label.Text = "Scenario"
	p.Y.Label.Text = metric
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	points, segments := chartPoints(values)
	for _, segment := range segments {
		line, err := plotter.NewLine(segment)
		if err != nil {
			return err
		}
		line.Color = lineColor
		p.Add(line)
	}
	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return err
	}
	scatter.Shape = draw.CircleGlyph{}
	scatter.Color = lineColor
	scatter.Radius = vg.Points(3)
	p.Add(scatter)
	if table.Len() > 0 {
		p.NominalX(table.Column(scenario)...)
	}

	return p.Save(vg.Length(style.Width)*vg.Inch, vg.Length(style.Height)*vg.Inch, filename)
}

// chartPoints places every finite value at its row index. Segments are the
// runs of consecutive finite values, so a missing value leaves a gap in the
// line while the remaining points keep their scenario tick.
func chartPoints(values []float64) (plotter.XYs, []plotter.XYs) {
	points := make(plotter.XYs, 0, len(values))
	segments := make([]plotter.XYs, 0)
	var segment plotter.XYs
	for i, value := range values {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			if len(segment) > 0 {
				segments = append(segments, segment)
				segment = nil
			}
			continue
		}
		point := plotter.XY{X: float64(i), Y: value}
		points = append(points, point)
		segment = append(segment, point)
	}
	if len(segment) > 0 {
		segments = append(segments, segment)
	}
	return points, segments
}
