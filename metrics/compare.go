package metrics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zalepa/ourvoice/i18n"
)

// StateAverages are the reference figures a district is compared against.
var StateAverages = map[Kind]int{
	Workdays:   9500,
	Households: 4200,
	Payments:   120000,
}

// Comparison is a district value set against its state average.
type Comparison struct {
	Kind          Kind    `json:"kind"`
	DistrictValue int     `json:"districtValue"`
	StateAverage  int     `json:"stateAverage"`
	PercentDiff   float64 `json:"percentDiff"`
	Above         bool    `json:"above"`
}

// Compare computes the signed percentage difference of value from average,
// rounded to one decimal. A zero average gives a zero difference.
func Compare(kind Kind, value, average int) Comparison {
	c := Comparison{
		Kind:          kind,
		DistrictValue: value,
		StateAverage:  average,
		Above:         value > average,
	}
	if average != 0 {
		diff := float64(value-average) / float64(average) * 100
		c.PercentDiff = math.Round(diff*10) / 10
	}
	return c
}

// CompareToState compares the snapshot's current figure of kind with
// StateAverages.
func CompareToState(s Snapshot, kind Kind) Comparison {
	return Compare(kind, s.Value(kind), StateAverages[kind])
}

// Sentence renders the comparison the way the dashboard words it, e.g.
// "Your district is performing 12.3% above state average".
func (c Comparison) Sentence(lang i18n.Language) string {
	lead, dir := i18n.T(lang, i18n.MsgDistrictIs), i18n.T(lang, i18n.MsgBelow)
	if c.Above {
		lead, dir = i18n.T(lang, i18n.MsgPerforming), i18n.T(lang, i18n.MsgAbove)
	}
	pct := strconv.FormatFloat(math.Abs(c.PercentDiff), 'f', -1, 64)
	return fmt.Sprintf("%s %s%% %s %s", lead, pct, dir, i18n.T(lang, i18n.MsgStateAverageInline))
}
