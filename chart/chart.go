// Package chart builds the dashboard's charts with gonum/plot: the 12-month
// trend line chart and the district vs. state average bar chart.
package chart

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

// Colors of the dashboard palette.
var (
	Blue  = color.RGBA{R: 37, G: 99, B: 235, A: 255}
	Green = color.RGBA{R: 22, G: 163, B: 74, A: 255}
	Gray  = color.RGBA{R: 156, G: 163, B: 175, A: 255}
)

// Trend returns a line chart of workdays and households across the snapshot's
// twelve months.
func Trend(s metrics.Snapshot, lang i18n.Language) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = i18n.T(lang, i18n.MsgTrendTitle)
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	for _, series := range []struct {
		kind metrics.Kind
		clr  color.Color
	}{
		{metrics.Workdays, Blue},
		{metrics.Households, Green},
	} {
		pts := seriesXYs(s.Series(series.kind))
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("%s line: %w", series.kind, err)
		}
		line.Color = series.clr
		line.Width = vg.Points(2)

		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, fmt.Errorf("%s points: %w", series.kind, err)
		}
		scatter.Color = series.clr
		scatter.Radius = vg.Points(2.5)
		scatter.Shape = draw.CircleGlyph{}

		p.Add(line, scatter)
		p.Legend.Add(series.kind.Label(lang), line, scatter)
	}
	p.Legend.Top = true

	months := make(monthTicks, len(s.MonthlyData))
	for i, m := range s.MonthlyData {
		months[i] = m.Month
	}
	p.X.Tick.Marker = months
	p.X.Min = -0.5
	p.X.Max = float64(len(months)) - 0.5
	p.Y.Tick.Marker = compactTicks{}

	return p, nil
}

// Comparison returns a two-bar chart of the district value against the state
// average.
func Comparison(c metrics.Comparison, metricTitle string, lang i18n.Language) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = metricTitle + " " + i18n.T(lang, i18n.MsgVsStateAverage)
	p.Title.TextStyle.Font.Size = vg.Points(12)
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	width := vg.Points(40)
	district, err := plotter.NewBarChart(plotter.Values{float64(c.DistrictValue)}, width)
	if err != nil {
		return nil, fmt.Errorf("district bar: %w", err)
	}
	district.Color = Blue
	district.LineStyle.Width = 0

	state, err := plotter.NewBarChart(plotter.Values{float64(c.StateAverage)}, width)
	if err != nil {
		return nil, fmt.Errorf("state average bar: %w", err)
	}
	state.Color = Gray
	state.LineStyle.Width = 0
	state.XMin = 1

	p.Add(district, state)
	p.NominalX(i18n.T(lang, i18n.MsgYourDistrict), i18n.T(lang, i18n.MsgStateAverage))
	p.Y.Min = 0
	p.Y.Tick.Marker = compactTicks{}

	return p, nil
}

// WriteSVG renders p as an SVG document of the given size.
func WriteSVG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	c := vgsvg.New(width, height)
	p.Draw(draw.New(c))
	_, err := c.WriteTo(w)
	return err
}

func seriesXYs(vals []float64) plotter.XYs {
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i] = plotter.XY{X: float64(i), Y: v}
	}
	return pts
}

// monthTicks labels every index with its month name.
type monthTicks []string

func (mt monthTicks) Ticks(min, max float64) []plot.Tick {
	ticks := make([]plot.Tick, len(mt))
	for i, m := range mt {
		ticks[i] = plot.Tick{Value: float64(i), Label: m}
	}
	return ticks
}

// compactTicks are the default ticks with 12k / 1.2M labels.
type compactTicks struct{}

func (compactTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = metrics.FormatCompact(ticks[i].Value)
		}
	}
	return ticks
}
