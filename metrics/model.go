package metrics

// Months are the fixed labels of a snapshot's monthly series, January first.
var Months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyRecord holds one month of the three scheme metrics.
type MonthlyRecord struct {
	Month      string `json:"month"`
	Workdays   int    `json:"workdays"`
	Households int    `json:"households"`
	Payments   int    `json:"payments"`
}

// Value returns the record's metric of the given kind.
func (m MonthlyRecord) Value(kind Kind) int {
	switch kind {
	case Payments:
		return m.Payments
	case Households:
		return m.Households
	default:
		return m.Workdays
	}
}

// Snapshot is the generated view of one district: the current month's
// figures plus the full twelve-month series they were taken from.
type Snapshot struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	State               string          `json:"state"`
	WorkdaysCreated     int             `json:"workdaysCreated"`
	HouseholdsBenefited int             `json:"householdsBenefited"`
	PendingPayments     int             `json:"pendingPayments"`
	MonthlyData         []MonthlyRecord `json:"monthlyData"`
	LastUpdated         string          `json:"lastUpdated"`
}

// Value returns the current figure of the given kind.
func (s Snapshot) Value(kind Kind) int {
	switch kind {
	case Payments:
		return s.PendingPayments
	case Households:
		return s.HouseholdsBenefited
	default:
		return s.WorkdaysCreated
	}
}

// Series returns the twelve monthly values of the given kind.
func (s Snapshot) Series(kind Kind) []float64 {
	out := make([]float64, len(s.MonthlyData))
	for i, m := range s.MonthlyData {
		out[i] = float64(m.Value(kind))
	}
	return out
}
