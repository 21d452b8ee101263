package ranking

import (
	"sort"

	"goalplanner/internal/finance"
)

// Weights is the per-feature weighting applied to the normalized feature
// row. Each profile's weights sum to 1.
type Weights struct {
	Return      float64 `json:"return"`
	Volatility  float64 `json:"volatility"`
	Sharpe      float64 `json:"sharpe"`
	MaxDrawdown float64 `json:"max_drawdown"`
}

var weightsByProfile = map[finance.RiskProfile]Weights{
	finance.RiskConservative: {Return: 0.2, Volatility: 0.4, Sharpe: 0.3, MaxDrawdown: 0.1},
	finance.RiskModerate:     {Return: 0.3, Volatility: 0.3, Sharpe: 0.3, MaxDrawdown: 0.1},
	finance.RiskAggressive:   {Return: 0.4, Volatility: 0.2, Sharpe: 0.3, MaxDrawdown: 0.1},
}

// WeightsFor returns the weight vector for a risk profile, falling back
// to the moderate weights for unknown profiles.
func WeightsFor(profile finance.RiskProfile) Weights {
	if w, ok := weightsByProfile[profile]; ok {
		return w
	}
	return weightsByProfile[finance.RiskModerate]
}

// Candidate pairs an instrument identifier with its closing-price series.
type Candidate struct {
	Symbol string
	Closes []float64
}

// RankedInstrument is one scored entry of the ranked result.
type RankedInstrument struct {
	Symbol  string  `json:"symbol"`
	Score   float64 `json:"score"`
	Metrics Metrics `json:"metrics"`
}

// Rank scores candidates for a risk profile and returns them in
// descending score order. Return and Sharpe are min-max normalized
// directly, volatility and max drawdown inverted so that lower raw
// values score higher. Candidates whose series cannot produce metrics
// are skipped. The sort is stable: ties keep input order.
func Rank(candidates []Candidate, profile finance.RiskProfile, riskFree float64) []RankedInstrument {
	ranked := make([]RankedInstrument, 0, len(candidates))
	for _, c := range candidates {
		m, err := ComputeMetrics(c.Closes, riskFree)
		if err != nil {
			continue
		}
		ranked = append(ranked, RankedInstrument{Symbol: c.Symbol, Metrics: m})
	}
	if len(ranked) == 0 {
		return ranked
	}

	column := func(pick func(Metrics) float64) []float64 {
		col := make([]float64, len(ranked))
		for i, r := range ranked {
			col[i] = pick(r.Metrics)
		}
		return col
	}
	returns := normalize(column(func(m Metrics) float64 { return m.AnnualizedReturn }))
	vols := normalize(column(func(m Metrics) float64 { return m.Volatility }))
	sharpes := normalize(column(func(m Metrics) float64 { return m.SharpeRatio }))
	drawdowns := normalize(column(func(m Metrics) float64 { return m.MaxDrawdown }))

	w := WeightsFor(profile)
	for i := range ranked {
		ranked[i].Score = w.Return*returns[i] +
			w.Volatility*(1-vols[i]) +
			w.Sharpe*sharpes[i] +
			w.MaxDrawdown*(1-drawdowns[i])
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// normalize min-max scales values into [0,1]. A column with no spread
// maps to the constant 0.5.
func normalize(values []float64) []float64 {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]float64, len(values))
	if min == max {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for i, v := range values {
		out[i] = (v - min) / (max - min)
	}
	return out
}
