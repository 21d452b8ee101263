// Package ranking scores candidate instruments from their historical
// price series: four return/risk features per series, min-max
// normalization across the candidate set, and a risk-profile-weighted
// ordering. Deterministic and free of side effects.
package ranking

import (
	"errors"
	"math"
)

// TradingDays is the annualization factor for daily return statistics.
const TradingDays = 252

// DefaultRiskFreeRate is the annual risk-free rate used by the
// Sharpe-like ratio when no override is configured.
const DefaultRiskFreeRate = 0.05

// ErrInsufficientData marks a price series too short to produce return
// statistics. Callers skip such candidates.
var ErrInsufficientData = errors.New("ranking: series needs at least 2 prices")

// Metrics is the feature row computed for one instrument.
type Metrics struct {
	AnnualizedReturn float64 `json:"annualized_return"`
	Volatility       float64 `json:"volatility"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	MaxDrawdown      float64 `json:"max_drawdown"`
}

// ComputeMetrics derives the feature row from a series of closing prices:
// annualized return (1+mean daily return)^252-1, annualized volatility
// (sample standard deviation * sqrt(252)), a Sharpe-like ratio over
// riskFree (0 when volatility is 0), and max drawdown (most negative
// price/runningMax - 1). A series with fewer than 2 prices returns
// ErrInsufficientData.
func ComputeMetrics(closes []float64, riskFree float64) (Metrics, error) {
	if len(closes) < 2 {
		return Metrics{}, ErrInsufficientData
	}

	returns := dailyReturns(closes)
	mean := meanOf(returns)

	annualized := math.Pow(1+mean, TradingDays) - 1
	volatility := sampleStd(returns, mean) * math.Sqrt(TradingDays)

	sharpe := 0.0
	if volatility != 0 {
		sharpe = (annualized - riskFree) / volatility
	}

	return Metrics{
		AnnualizedReturn: annualized,
		Volatility:       volatility,
		SharpeRatio:      sharpe,
		MaxDrawdown:      maxDrawdown(closes),
	}, nil
}

func dailyReturns(closes []float64) []float64 {
	returns := make([]float64, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns[i-1] = closes[i]/closes[i-1] - 1
	}
	return returns
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the N-1 standard deviation. A single observation has no
// spread, so it reports 0 rather than dividing by zero.
func sampleStd(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func maxDrawdown(closes []float64) float64 {
	runningMax := closes[0]
	minDD := 0.0
	for _, price := range closes {
		if price > runningMax {
			runningMax = price
		}
		if dd := price/runningMax - 1; dd < minDD {
			minDD = dd
		}
	}
	return minDD
}
