// Package finance implements the time-value-of-money arithmetic behind
// goal planning: inflation-adjusted future values, lump-sum and monthly
// contribution solves, growth projections, and ROI. All functions are
// pure, take rates as decimal fractions (0.05 = 5%), and are total over
// finite inputs — degenerate cases return a defined fallback instead of
// an error.
package finance

import "math"

// FutureValue grows presentValue at a compounding annual rate over the
// given number of years. A negative rate models deflation.
func FutureValue(presentValue, rate float64, years int) float64 {
	return presentValue * math.Pow(1+rate, float64(years))
}

// LumpSumRequired returns the one-time investment that compounds to
// futureValue at the given annual rate. With no time horizon or no
// positive return there is nothing to discount, so futureValue is
// returned unchanged.
func LumpSumRequired(futureValue, rate float64, years int) float64 {
	if years <= 0 || rate <= 0 {
		return futureValue
	}
	return futureValue / math.Pow(1+rate, float64(years))
}

// MonthlyRate converts an annual compounding rate to its equivalent
// monthly rate, (1+annual)^(1/12) - 1. The contribution solver and
// GrowthCurve share this derivation so their projections agree.
func MonthlyRate(annualRate float64) float64 {
	return math.Pow(1+annualRate, 1.0/12) - 1
}

// MonthlyContributionRequired solves the future-value-of-annuity equation
// for the fixed month-end payment that accumulates to futureValue over
// years at annualRate. Degenerate inputs fall back to an even split of
// futureValue over the months (or futureValue itself when years <= 0).
func MonthlyContributionRequired(futureValue, annualRate float64, years int) float64 {
	if years <= 0 || annualRate <= 0 {
		if years > 0 {
			return futureValue / (float64(years) * 12)
		}
		return futureValue
	}

	monthlyRate := MonthlyRate(annualRate)
	months := float64(years) * 12
	if monthlyRate == 0 {
		return futureValue / months
	}

	denom := math.Pow(1+monthlyRate, months) - 1
	if denom == 0 {
		return futureValue / months
	}
	return futureValue * monthlyRate / denom
}

// GrowthCurve projects year-end balances for an initial lump sum plus a
// fixed monthly contribution, compounding monthly at the rate derived by
// MonthlyRate. The result has length years+1; index 0 is the starting
// balance before any growth.
func GrowthCurve(initialLump, monthlyContribution, annualRate float64, years int) []float64 {
	monthlyRate := MonthlyRate(annualRate)

	balances := make([]float64, 0, years+1)
	balance := initialLump
	balances = append(balances, balance)

	for year := 0; year < years; year++ {
		for month := 0; month < 12; month++ {
			balance = balance*(1+monthlyRate) + monthlyContribution
		}
		balances = append(balances, balance)
	}
	return balances
}

// ROI returns the percentage return on totalInvested given finalValue,
// and 0 when nothing was invested.
func ROI(totalInvested, finalValue float64) float64 {
	if totalInvested == 0 {
		return 0
	}
	return (finalValue - totalInvested) / totalInvested * 100
}
