package metrics

import "testing"

func TestFormatIndian(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "1,23,456"},
		{1234567, "12,34,567"},
		{12345678, "1,23,45,678"},
		{-50000, "-50,000"},
		{-1234567, "-12,34,567"},
	}
	for _, tt := range tests {
		got := FormatIndian(tt.input)
		if got != tt.want {
			t.Errorf("FormatIndian(%d) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	if got := FormatValue(150000, Payments); got != "1,50,000 ₹" {
		t.Errorf("FormatValue(150000, payments) = %q", got)
	}
	if got := FormatValue(9500, Workdays); got != "9,500" {
		t.Errorf("FormatValue(9500, workdays) = %q", got)
	}
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{950, "950"},
		{12000, "12k"},
		{12499, "12k"},
		{1250000, "1.2M"},
		{-3000, "-3k"},
	}
	for _, tt := range tests {
		got := FormatCompact(tt.input)
		if got != tt.want {
			t.Errorf("FormatCompact(%v) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
