// Package render draws the dashboard's bar and pie charts with go-chart.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"

	"job-dash/internal/domain"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("no data to chart")

// Kind selects the chart type.
type Kind string

const (
	KindBar Kind = "bar"
	KindPie Kind = "pie"
)

// Format selects the output encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// Chart describes one chart on the visualizations page.
type Chart struct {
	ID     string
	Kind   Kind
	Title  string
	Values []domain.Count
}

const (
	chartHeight    = 420
	minChartWidth  = 640
	barWidth       = 48
	barSpacing     = 24
	maxLabelLength = 22
)

// Draw writes c to w in the given format.
func Draw(w io.Writer, c Chart, format Format) error {
	if len(c.Values) == 0 {
		return ErrNoData
	}
	provider, escape := chart.PNG, keepText
	if format == FormatSVG {
		// go-chart writes SVG text nodes verbatim.
		provider, escape = chart.SVG, html.EscapeString
	}

	switch c.Kind {
	case KindBar:
		return barChart(c, escape).Render(provider, w)
	case KindPie:
		return pieChart(c, escape).Render(provider, w)
	default:
		return fmt.Errorf("unknown chart kind %q", c.Kind)
	}
}

// Bytes renders c into memory.
func Bytes(c Chart, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := Draw(&buf, c, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func keepText(s string) string { return s }

func barChart(c Chart, escape func(string) string) chart.BarChart {
	bars := make([]chart.Value, len(c.Values))
	maxValue := 0.0
	for i, v := range c.Values {
		bars[i] = chart.Value{Value: float64(v.Count), Label: escape(shorten(v.Label))}
		maxValue = max(maxValue, float64(v.Count))
	}
	return chart.BarChart{
		Title:      escape(c.Title),
		Width:      max(minChartWidth, 96+len(bars)*(barWidth+barSpacing)),
		Height:     chartHeight,
		BarWidth:   barWidth,
		BarSpacing: barSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 24}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: niceMax(maxValue)},
		},
		Bars: bars,
	}
}

func pieChart(c Chart, escape func(string) string) chart.PieChart {
	values := make([]chart.Value, 0, len(c.Values))
	for _, v := range c.Values {
		if v.Count > 0 {
			values = append(values, chart.Value{Value: float64(v.Count), Label: escape(shorten(v.Label))})
		}
	}
	return chart.PieChart{
		Title:      escape(c.Title),
		Width:      minChartWidth,
		Height:     minChartWidth,
		Background: chart.Style{Padding: chart.Box{Top: 48}},
		Values:     values,
	}
}

// niceMax rounds up so the tallest bar sits below the top of the axis.
func niceMax(v float64) float64 {
	switch {
	case v < 1:
		return 1
	case v < 10:
		return v + 1
	default:
		return v * 1.1
	}
}

func shorten(label string) string {
	r := []rune(label)
	if len(r) <= maxLabelLength {
		return label
	}
	return string(r[:maxLabelLength-1]) + "…"
}
