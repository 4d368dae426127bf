// ABOUTME: Line chart rendering of aggregate S/I/R series as PNG.
// ABOUTME: Susceptible orange, infected red, recovered green.

package render

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/flufighter/flufighter/backend/models"
)

var (
	colorSusceptible = drawing.Color{R: 255, G: 165, B: 0, A: 255}
	colorInfected    = drawing.Color{R: 214, G: 39, B: 40, A: 255}
	colorRecovered   = drawing.Color{R: 44, G: 160, B: 44, A: 255}
)

// Chart renders the three total series as a PNG line chart.
func Chart(title string, series models.TimeSeries, width, height int) ([]byte, error) {
	n := len(series.Infected)
	if n < 2 || len(series.Susceptible) != n || len(series.Recovered) != n {
		return nil, fmt.Errorf("cannot chart series of length %d", n)
	}

	days := make([]float64, n)
	for i := range days {
		days[i] = float64(i)
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "Days",
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name: "Population",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Susceptible",
				XValues: days,
				YValues: series.Susceptible,
				Style:   chart.Style{StrokeColor: colorSusceptible, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Infected",
				XValues: days,
				YValues: series.Infected,
				Style:   chart.Style{StrokeColor: colorInfected, StrokeWidth: 2.0},
			},
			chart.ContinuousSeries{
				Name:    "Recovered",
				XValues: days,
				YValues: series.Recovered,
				Style:   chart.Style{StrokeColor: colorRecovered, StrokeWidth: 2.0},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
