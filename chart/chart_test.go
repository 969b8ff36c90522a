package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gonum.org/v1/plot/vg"

	"github.com/zalepa/ourvoice/i18n"
	"github.com/zalepa/ourvoice/metrics"
)

func testSnapshot() metrics.Snapshot {
	clock := metrics.ClockFunc(func() time.Time {
		return time.Date(2026, time.October, 19, 0, 0, 0, 0, time.UTC)
	})
	return metrics.NewSeededGenerator(11, clock).Generate("LKO", "Lucknow", "Uttar Pradesh")
}

func TestTrend(t *testing.T) {
	p, err := Trend(testSnapshot(), i18n.English)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if p.Title.Text != "12-Month Performance Trend" {
		t.Errorf("title = %q", p.Title.Text)
	}
	if p.X.Min != -0.5 || p.X.Max != 11.5 {
		t.Errorf("x range = [%v, %v], want [-0.5, 11.5]", p.X.Min, p.X.Max)
	}

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	if len(ticks) != 12 {
		t.Fatalf("got %d month ticks, want 12", len(ticks))
	}
	for i, tk := range ticks {
		if tk.Label != metrics.Months[i] || tk.Value != float64(i) {
			t.Errorf("tick %d = %+v", i, tk)
		}
	}
}

func TestTrendHindiTitle(t *testing.T) {
	p, err := Trend(testSnapshot(), i18n.Hindi)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if p.Title.Text != "12 महीने का प्रदर्शन रुझान" {
		t.Errorf("title = %q", p.Title.Text)
	}
}

func TestTrendEmptySnapshot(t *testing.T) {
	p, err := Trend(metrics.Snapshot{}, i18n.English)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	if n := len(p.X.Tick.Marker.Ticks(0, 0)); n != 0 {
		t.Errorf("got %d ticks for empty snapshot", n)
	}
}

func TestComparison(t *testing.T) {
	c := metrics.Compare(metrics.Workdays, 11000, 9500)
	p, err := Comparison(c, metrics.Workdays.Label(i18n.English), i18n.English)
	if err != nil {
		t.Fatalf("Comparison: %v", err)
	}
	if p.Title.Text != "Workdays vs State Average" {
		t.Errorf("title = %q", p.Title.Text)
	}
	if p.Y.Min != 0 {
		t.Errorf("y min = %v, want 0", p.Y.Min)
	}
	if p.Y.Max < 11000 {
		t.Errorf("y max = %v, want at least the district value", p.Y.Max)
	}
}

func TestCompactTicks(t *testing.T) {
	for _, tk := range (compactTicks{}).Ticks(0, 250000) {
		if tk.Label == "" {
			continue
		}
		if want := metrics.FormatCompact(tk.Value); tk.Label != want {
			t.Errorf("tick %v label = %q, want %q", tk.Value, tk.Label, want)
		}
	}
}

func TestWriteSVG(t *testing.T) {
	p, err := Trend(testSnapshot(), i18n.English)
	if err != nil {
		t.Fatalf("Trend: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteSVG(&buf, p, 6*vg.Inch, 3*vg.Inch); err != nil {
		t.Fatalf("WriteSVG: %v", err)
	}
	svg := buf.String()
	for _, want := range []string{"<svg", ">Jan<", ">Dec<", ">Workdays<", ">Households<"} {
		if !strings.Contains(svg, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}
