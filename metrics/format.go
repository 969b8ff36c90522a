package metrics

import (
	"math"
	"strconv"
	"strings"
)

// FormatIndian groups digits the en-IN way: the last three digits, then
// pairs (12,34,567).
func FormatIndian(v int) string {
	s := strconv.FormatInt(int64(v), 10)
	if v < 0 {
		return "-" + groupIndian(s[1:])
	}
	return groupIndian(s)
}

func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	head, tail := s[:n-3], s[n-3:]

	var sb strings.Builder
	pre := len(head) % 2
	if pre > 0 {
		sb.WriteString(head[:pre])
	}
	for i := pre; i < len(head); i += 2 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(head[i : i+2])
	}
	sb.WriteByte(',')
	sb.WriteString(tail)
	return sb.String()
}

// FormatValue renders a metric value with its unit, e.g. "1,23,456 ₹".
func FormatValue(v int, kind Kind) string {
	if u := kind.Unit(); u != "" {
		return FormatIndian(v) + " " + u
	}
	return FormatIndian(v)
}

// FormatCompact renders an axis label: 950, 12k, 1.2M.
func FormatCompact(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case abs >= 1e3:
		return strconv.FormatFloat(v/1e3, 'f', 0, 64) + "k"
	default:
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
}
