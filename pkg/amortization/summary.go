package amortization

// Savings compares an accelerated schedule against its no-extra baseline.
type Savings struct {
	InterestSaved float64 `json:"interest_saved"`
	PeriodsSaved  int     `json:"periods_saved"`
}

// CompareSchedules reports how much interest and how many payments the
// accelerated schedule saves relative to baseline.
func CompareSchedules(baseline, accelerated *Result) Savings {
	if baseline == nil || accelerated == nil {
		return Savings{}
	}
	return Savings{
		InterestSaved: baseline.TotalInterest - accelerated.TotalInterest,
		PeriodsSaved:  baseline.PayoffPeriods() - accelerated.PayoffPeriods(),
	}
}
