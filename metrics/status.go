package metrics

import (
	"fmt"
	"strings"

	"github.com/zalepa/ourvoice/i18n"
)

// Kind names one of the three scheme metrics.
type Kind string

const (
	Workdays   Kind = "workdays"
	Households Kind = "households"
	Payments   Kind = "payments"
)

// Kinds lists the metrics in dashboard order.
var Kinds = []Kind{Workdays, Households, Payments}

// ParseKind validates a metric name from user input.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case Workdays, Households, Payments:
		return k, nil
	}
	return "", fmt.Errorf("unknown metric %q (want workdays, households or payments)", s)
}

// Title is the card title for the metric.
func (k Kind) Title(lang i18n.Language) string {
	switch k {
	case Payments:
		return i18n.T(lang, i18n.MsgPendingPayments)
	case Households:
		return i18n.T(lang, i18n.MsgHouseholds)
	default:
		return i18n.T(lang, i18n.MsgWorkdaysCreated)
	}
}

// Label is the short metric name used on charts and comparisons.
func (k Kind) Label(lang i18n.Language) string {
	switch k {
	case Payments:
		return i18n.T(lang, i18n.MsgPendingPayments)
	case Households:
		return i18n.T(lang, i18n.MsgHouseholdsShort)
	default:
		return i18n.T(lang, i18n.MsgWorkdays)
	}
}

// Unit is the suffix shown after values of the metric.
func (k Kind) Unit() string {
	if k == Payments {
		return "₹"
	}
	return ""
}

// Status is the display tier of a metric value.
type Status string

const (
	Good    Status = "good"
	Average Status = "average"
	Poor    Status = "poor"
)

// Classify places value in a tier. Pending payments are better when lower;
// workdays and households are better when higher.
func Classify(value int, kind Kind) Status {
	if kind == Payments {
		switch {
		case value < 100000:
			return Good
		case value < 200000:
			return Average
		default:
			return Poor
		}
	}
	switch {
	case value > 10000:
		return Good
	case value > 6000:
		return Average
	default:
		return Poor
	}
}

// Label is the localized tier name.
func (s Status) Label(lang i18n.Language) string {
	switch s {
	case Good:
		return i18n.T(lang, i18n.MsgStatusGood)
	case Average:
		return i18n.T(lang, i18n.MsgStatusAverage)
	default:
		return i18n.T(lang, i18n.MsgStatusPoor)
	}
}
