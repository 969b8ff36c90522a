package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

const (
	chartHeight = 12
	chartCol    = 6
)

// renderDashboard writes the terminal version of the district dashboard.
func renderDashboard(w io.Writer, s metrics.Snapshot, lang i18n.Language) {
	fmt.Fprintln(w, i18n.T(lang, i18n.MsgTitle))
	fmt.Fprintf(w, "%s, %s\n", s.Name, s.State)
	fmt.Fprintf(w, "%s %s • %s\n\n", i18n.T(lang, i18n.MsgLastUpdated), s.LastUpdated, i18n.T(lang, i18n.MsgDataSource))

	titleWidth := 0
	for _, k := range metrics.Kinds {
		titleWidth = max(titleWidth, len([]rune(k.Title(lang))))
	}

	rowFmt := fmt.Sprintf("%%-%ds  %%14s   %%s\n", titleWidth)
	fmt.Fprintf(w, rowFmt, i18n.T(lang, i18n.MsgMetric), i18n.T(lang, i18n.MsgThisMonth), i18n.T(lang, i18n.MsgStatus))
	fmt.Fprintln(w, strings.Repeat("─", titleWidth+2+14+3+8))
	for _, k := range metrics.Kinds {
		v := s.Value(k)
		fmt.Fprintf(w, rowFmt, k.Title(lang), metrics.FormatValue(v, k), metrics.Classify(v, k).Label(lang))
	}

	fmt.Fprintf(w, "\n%s\n", i18n.T(lang, i18n.MsgComparison))
	for _, k := range metrics.Kinds {
		c := metrics.CompareToState(s, k)
		fmt.Fprintf(w, "  %s: %s (%s %s)\n", k.Label(lang), c.Sentence(lang),
			i18n.T(lang, i18n.MsgStateAverage), metrics.FormatValue(c.StateAverage, k))
	}

	fmt.Fprintf(w, "\n%s\n", i18n.T(lang, i18n.MsgTrendTitle))
	renderTrendTable(w, s, lang)
	fmt.Fprintln(w)

	months := make([]string, len(s.MonthlyData))
	for i, m := range s.MonthlyData {
		months[i] = m.Month
	}
	renderChart(w, metrics.Workdays.Label(lang), months, s.Series(metrics.Workdays))
}

func renderTrendTable(w io.Writer, s metrics.Snapshot, lang i18n.Language) {
	nameWidth := 10
	for _, k := range metrics.Kinds {
		nameWidth = max(nameWidth, len([]rune(k.Label(lang))))
	}
	rowFmt := fmt.Sprintf("%%-%ds  %%10s   %%s\n", nameWidth)

	span := ""
	if n := len(s.MonthlyData); n > 0 {
		span = s.MonthlyData[0].Month + "-" + s.MonthlyData[n-1].Month
	}
	fmt.Fprintf(w, rowFmt, i18n.T(lang, i18n.MsgMetric), i18n.T(lang, i18n.MsgThisMonth), span)
	fmt.Fprintln(w, strings.Repeat("─", nameWidth+2+10+3+len(s.MonthlyData)))
	for _, k := range metrics.Kinds {
		fmt.Fprintf(w, rowFmt, k.Label(lang), metrics.FormatIndian(s.Value(k)), sparkline(s.Series(k)))
	}
}

func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	n := len(blocks)

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	spread := hi - lo
	var sb strings.Builder
	for _, v := range values {
		idx := n / 2
		if spread > 0 {
			idx = min(int((v-lo)/spread*float64(n-1)), n-1)
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

// renderChart draws a dotted line chart of vals, one column per label.
func renderChart(w io.Writer, title string, labels []string, vals []float64) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)
	if len(vals) == 0 {
		fmt.Fprintln(w, "(no data)")
		return
	}

	nPoints := len(vals)
	minVal, maxVal := vals[0], vals[0]
	for _, v := range vals {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	valRange := maxVal - minVal
	if valRange == 0 {
		valRange = 1
		minVal -= 0.5
	}

	rows := make([]int, nPoints)
	for i, v := range vals {
		r := int(math.Round((v - minVal) / valRange * float64(chartHeight-1)))
		rows[i] = max(0, min(r, chartHeight-1))
	}

	totalWidth := nPoints * chartCol
	grid := make([][]rune, chartHeight)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", totalWidth))
	}

	for i := 0; i < nPoints; i++ {
		col := i*chartCol + chartCol/2
		grid[rows[i]][col] = '●'
		if i == nPoints-1 {
			continue
		}
		next := (i+1)*chartCol + chartCol/2
		for c := col + 1; c < next; c++ {
			t := float64(c-col) / float64(next-col)
			r := int(math.Round(float64(rows[i]) + t*float64(rows[i+1]-rows[i])))
			if grid[r][c] == ' ' {
				grid[r][c] = '·'
			}
		}
	}

	yLabels := make(map[int]string)
	for i := 0; i < 5; i++ {
		r := int(math.Round(float64(i) / 4.0 * float64(chartHeight-1)))
		yLabels[r] = metrics.FormatCompact(minVal + float64(r)/float64(chartHeight-1)*valRange)
	}

	for r := chartHeight - 1; r >= 0; r-- {
		fmt.Fprintf(w, "%8s │%s\n", yLabels[r], string(grid[r]))
	}
	fmt.Fprintf(w, "%8s └%s\n", "", strings.Repeat("─", totalWidth))

	xLine := []rune(strings.Repeat(" ", totalWidth))
	for i, l := range labels {
		if i >= nPoints {
			break
		}
		pos := max(0, i*chartCol+chartCol/2-len(l)/2)
		for j, ch := range []rune(l) {
			if pos+j < totalWidth {
				xLine[pos+j] = ch
			}
		}
	}
	fmt.Fprintf(w, "%8s  %s\n", "", strings.TrimRight(string(xLine), " "))
}
