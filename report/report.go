// Package report renders a district snapshot as a printable multi-page PDF.
package report

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/zalepa/ourvoice/chart"
	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

const (
	pageWidth  = 8.5 * vg.Inch
	pageHeight = 11 * vg.Inch
	pdfMargin  = 0.75 * vg.Inch

	rowHeight   = 0.45 * vg.Inch
	metricColW  = 2.1 * vg.Inch
	valueColW   = 1.1 * vg.Inch
	statusColW  = 0.9 * vg.Inch
	compareColW = 1.1 * vg.Inch
	chartHeight = 4.5 * vg.Inch
)

// PageCount is the number of pages every report has: the summary, the trend
// chart and one comparison chart per metric.
var PageCount = 2 + len(metrics.Kinds)

var (
	textGray = color.Gray{Y: 100}
	ruleGray = color.Gray{Y: 180}

	statusColors = map[metrics.Status]color.Color{
		metrics.Good:    color.RGBA{R: 22, G: 163, B: 74, A: 255},
		metrics.Average: color.RGBA{R: 202, G: 138, B: 4, A: 255},
		metrics.Poor:    color.RGBA{R: 220, G: 38, B: 38, A: 255},
	}
)

// Render writes the report for s to w as an unstamped PDF.
func Render(w io.Writer, s metrics.Snapshot, lang i18n.Language) error {
	c := vgpdf.New(pageWidth, pageHeight)

	drawSummaryPage(c, s, lang)

	c.NextPage()
	trend, err := chart.Trend(s, lang)
	if err != nil {
		return fmt.Errorf("trend chart: %w", err)
	}
	drawChartPage(c, trend)

	for _, k := range metrics.Kinds {
		c.NextPage()
		cmp, err := chart.Comparison(metrics.CompareToState(s, k), k.Label(lang), lang)
		if err != nil {
			return fmt.Errorf("%s comparison chart: %w", k, err)
		}
		drawChartPage(c, cmp)
	}

	_, err = c.WriteTo(w)
	return err
}

func drawSummaryPage(c *vgpdf.Canvas, s metrics.Snapshot, lang i18n.Language) {
	dc := draw.New(c)
	area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)
	usableW := pageWidth - 2*pdfMargin

	y := area.Max.Y - vg.Points(16)
	fillText(area, i18n.T(lang, i18n.MsgTitle), vg.Points(16), area.Min.X, y, color.Black)
	y -= 0.35 * vg.Inch
	fillText(area, fmt.Sprintf("%s, %s", s.Name, s.State), vg.Points(12), area.Min.X, y, color.Black)
	y -= 0.25 * vg.Inch
	fillText(area, i18n.T(lang, i18n.MsgLastUpdated)+" "+s.LastUpdated, vg.Points(9), area.Min.X, y, textGray)

	y -= 0.45 * vg.Inch
	x := area.Min.X
	for _, h := range []struct {
		key   string
		width vg.Length
	}{
		{i18n.MsgMetric, metricColW},
		{i18n.MsgThisMonth, valueColW},
		{i18n.MsgStatus, statusColW},
		{i18n.MsgVsStateAverage, compareColW},
		{i18n.MsgTrend, 0},
	} {
		fillText(area, i18n.T(lang, h.key), vg.Points(9), x, y, textGray)
		x += h.width
	}

	y -= vg.Points(6)
	strokeHLine(area, area.Min.X, area.Min.X+usableW, y, ruleGray)
	top := y - vg.Points(4)

	sparkX := area.Min.X + metricColW + valueColW + statusColW + compareColW
	sparkW := area.Min.X + usableW - sparkX

	for i, k := range metrics.Kinds {
		rowTop := top - vg.Length(i)*rowHeight
		ty := rowTop - rowHeight*0.6
		value := s.Value(k)
		status := metrics.Classify(value, k)
		cmp := metrics.CompareToState(s, k)

		x := area.Min.X
		fillText(area, k.Title(lang), vg.Points(10), x, ty, color.Black)
		x += metricColW
		fillText(area, metrics.FormatValue(value, k), vg.Points(10), x, ty, color.Black)
		x += valueColW
		fillText(area, status.Label(lang), vg.Points(10), x, ty, statusColors[status])
		x += statusColW
		fillText(area, signedPercent(cmp.PercentDiff), vg.Points(10), x, ty, color.Black)

		sparkY := rowTop - rowHeight + vg.Points(4)
		drawSparkline(draw.Canvas{
			Canvas: area.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: sparkX, Y: sparkY},
				Max: vg.Point{X: sparkX + sparkW, Y: sparkY + rowHeight - vg.Points(8)},
			},
		}, s.Series(k))
	}

	y = top - vg.Length(len(metrics.Kinds))*rowHeight - vg.Points(6)
	strokeHLine(area, area.Min.X, area.Min.X+usableW, y, ruleGray)

	y -= 0.35 * vg.Inch
	fillText(area, i18n.T(lang, i18n.MsgComparison), vg.Points(12), area.Min.X, y, color.Black)
	for _, k := range metrics.Kinds {
		y -= 0.3 * vg.Inch
		line := k.Label(lang) + ": " + metrics.CompareToState(s, k).Sentence(lang)
		fillText(area, line, vg.Points(10), area.Min.X, y, color.Black)
	}

	fillText(area, i18n.T(lang, i18n.MsgDataSource), vg.Points(8), area.Min.X, area.Min.Y, textGray)
}

func signedPercent(v float64) string {
	if v > 0 {
		return fmt.Sprintf("+%.1f%%", v)
	}
	return fmt.Sprintf("%.1f%%", v)
}

func drawChartPage(c *vgpdf.Canvas, p *plot.Plot) {
	dc := draw.New(c)
	area := draw.Crop(dc, pdfMargin, -pdfMargin, pdfMargin, -pdfMargin)
	area.Min.Y = area.Max.Y - chartHeight
	p.Draw(area)
}

func drawSparkline(c draw.Canvas, vals []float64) {
	if len(vals) < 2 {
		return
	}
	pts := make(plotter.XYs, len(vals))
	minY, maxY := vals[0], vals[0]
	for i, v := range vals {
		pts[i] = plotter.XY{X: float64(i), Y: v}
		minY = min(minY, v)
		maxY = max(maxY, v)
	}

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.Transparent

	line, err := plotter.NewLine(pts)
	if err != nil {
		return
	}
	line.Color = chart.Blue
	line.Width = vg.Points(1.5)
	p.Add(line)

	p.X.Min = 0
	p.X.Max = float64(len(vals) - 1)
	pad := (maxY - minY) * 0.1
	if pad == 0 {
		pad = 1
	}
	p.Y.Min = minY - pad
	p.Y.Max = maxY + pad

	p.Draw(c)
}

func fillText(c draw.Canvas, txt string, size vg.Length, x, y vg.Length, clr color.Color) {
	if txt == "" {
		return
	}
	sty := draw.TextStyle{
		Color:   clr,
		Font:    plot.DefaultFont,
		Handler: plot.DefaultTextHandler,
	}
	sty.Font.Size = size
	c.FillText(sty, vg.Point{X: x, Y: y}, txt)
}

func strokeHLine(c draw.Canvas, x0, x1, y vg.Length, clr color.Color) {
	c.StrokeLine2(draw.LineStyle{
		Color: clr,
		Width: vg.Points(0.5),
	}, x0, y, x1, y)
}
