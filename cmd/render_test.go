package cmd

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		input []float64
		want  string
	}{
		{nil, ""},
		{[]float64{0, 1, 2, 3, 4, 5, 6, 7}, "▁▂▃▄▅▆▇█"},
		{[]float64{7, 0}, "█▁"},
		{[]float64{5, 5, 5}, "▅▅▅"},
		{[]float64{100, 200}, "▁█"},
	}
	for _, tt := range tests {
		got := sparkline(tt.input)
		if got != tt.want {
			t.Errorf("sparkline(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderChart(t *testing.T) {
	var buf bytes.Buffer
	renderChart(&buf, "Workdays", []string{"Jan", "Feb", "Mar"}, []float64{8000, 12000, 10000})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// title, blank, grid rows, axis, month labels
	if want := 2 + chartHeight + 2; len(lines) != want {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), want, buf.String())
	}
	if lines[0] != "Workdays" {
		t.Errorf("title line = %q", lines[0])
	}
	if n := strings.Count(buf.String(), "●"); n != 3 {
		t.Errorf("got %d points, want 3", n)
	}
	// Highest value is on the top row, lowest on the bottom row.
	if !strings.Contains(lines[2], "●") || !strings.Contains(lines[2+chartHeight-1], "●") {
		t.Errorf("extremes not on the top and bottom rows:\n%s", buf.String())
	}
	last := lines[len(lines)-1]
	for _, m := range []string{"Jan", "Feb", "Mar"} {
		if !strings.Contains(last, m) {
			t.Errorf("x axis %q missing %s", last, m)
		}
	}
	if !strings.Contains(lines[2], "12k") {
		t.Errorf("top row %q should be labelled 12k", lines[2])
	}
}

func TestRenderChartFlatAndEmpty(t *testing.T) {
	var buf bytes.Buffer
	renderChart(&buf, "Flat", []string{"Jan", "Feb"}, []float64{5, 5})
	if n := strings.Count(buf.String(), "●"); n != 2 {
		t.Errorf("flat series drew %d points, want 2", n)
	}

	buf.Reset()
	renderChart(&buf, "Empty", nil, nil)
	if !strings.Contains(buf.String(), "(no data)") {
		t.Errorf("empty chart = %q", buf.String())
	}
}

func TestRenderDashboard(t *testing.T) {
	clock := metrics.ClockFunc(func() time.Time {
		return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	})
	s := metrics.NewSeededGenerator(3, clock).Generate("LKO", "Lucknow", "Uttar Pradesh")

	var buf bytes.Buffer
	renderDashboard(&buf, s, i18n.English)
	out := buf.String()

	for _, want := range []string{
		"Our Voice, Our Rights",
		"Lucknow, Uttar Pradesh",
		"Last updated on 19/10/2026",
		"Workdays Created",
		"Households Benefited",
		"Pending Payments",
		metrics.FormatValue(s.PendingPayments, metrics.Payments),
		metrics.Classify(s.WorkdaysCreated, metrics.Workdays).Label(i18n.English),
		metrics.CompareToState(s, metrics.Households).Sentence(i18n.English),
		"12-Month Performance Trend",
		sparkline(s.Series(metrics.Workdays)),
		"Jan-Dec",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestRenderDashboardHindi(t *testing.T) {
	s := metrics.NewSeededGenerator(3, nil).Generate("PAT", "Patna", "Bihar")

	var buf bytes.Buffer
	renderDashboard(&buf, s, i18n.Hindi)
	out := buf.String()
	for _, want := range []string{"हमारी आवाज़, हमारे अधिकार", "लंबित भुगतान", "12 महीने का प्रदर्शन रुझान"} {
		if !strings.Contains(out, want) {
			t.Errorf("Hindi dashboard missing %q", want)
		}
	}
}
