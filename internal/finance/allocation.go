package finance

// Allocation is the percentage split of an investable amount across the
// three asset classes, summing to 100.
type Allocation struct {
	EquityPct float64 `json:"equity_pct"`
	DebtPct   float64 `json:"debt_pct"`
	GoldPct   float64 `json:"gold_pct"`
}

var allocations = map[RiskProfile]Allocation{
	RiskConservative: {EquityPct: 30, DebtPct: 60, GoldPct: 10},
	RiskModerate:     {EquityPct: 50, DebtPct: 40, GoldPct: 10},
	RiskAggressive:   {EquityPct: 70, DebtPct: 25, GoldPct: 5},
}

// AssetAllocation returns the equity/debt/gold split for a risk profile.
// Unknown profiles get the moderate split.
func AssetAllocation(profile RiskProfile) Allocation {
	if a, ok := allocations[profile]; ok {
		return a
	}
	return allocations[RiskModerate]
}

var stockSplits = map[RiskProfile]float64{
	RiskConservative: 0.3,
	RiskModerate:     0.5,
	RiskAggressive:   0.7,
}

// StockSplit returns the fraction of the equity sleeve invested in direct
// stocks for a risk profile; mutual funds take the remainder. Unknown
// profiles get the moderate split.
func StockSplit(profile RiskProfile) float64 {
	if f, ok := stockSplits[profile]; ok {
		return f
	}
	return stockSplits[RiskModerate]
}
