package services

import (
	"fmt"
	"time"

	"goalplanner/internal/charts"
	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/models"
)

// planService computes savings plans and growth projections. It holds
// no state beyond the rate defaults; every figure is derived on demand
// from the goal and the valuation functions.
type planService struct {
	goals            GoalServicer
	defaultInflation float64
	defaultReturn    float64
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(goals GoalServicer, defaultInflation, defaultReturn float64) PlanServicer {
	return &planService{
		goals:            goals,
		defaultInflation: defaultInflation,
		defaultReturn:    defaultReturn,
	}
}

// PlanForGoal computes the savings plan for a stored goal. Overrides
// replace the goal's own rates for this computation only.
func (s *planService) PlanForGoal(goalID string, overrides RateOverrides) (*Plan, error) {
	goal, err := s.goals.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}
	return computePlan(goal, overrides), nil
}

// Preview computes a plan from an inline goal payload without storing
// anything.
func (s *planService) Preview(input GoalInput) (*Plan, error) {
	goal, err := buildGoal(input, s.defaultInflation, s.defaultReturn)
	if err != nil {
		return nil, err
	}
	return computePlan(goal, RateOverrides{}), nil
}

// ProjectionForGoal computes the year-by-year growth projection for a
// stored goal.
func (s *planService) ProjectionForGoal(goalID string, overrides RateOverrides) (*Projection, error) {
	goal, err := s.goals.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}
	return computeProjection(goal, overrides), nil
}

// ProjectionChart renders the projection as a PNG line chart.
func (s *planService) ProjectionChart(goalID string, overrides RateOverrides) ([]byte, error) {
	goal, err := s.goals.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}
	projection := computeProjection(goal, overrides)

	labels := make([]string, len(projection.Points))
	goalValues := make([]float64, len(projection.Points))
	lumpValues := make([]float64, len(projection.Points))
	monthlyValues := make([]float64, len(projection.Points))
	for i, p := range projection.Points {
		labels[i] = fmt.Sprintf("%d", p.Year)
		goalValues[i] = p.GoalValue
		lumpValues[i] = p.LumpSumValue
		monthlyValues[i] = p.MonthlyValue
	}

	names := []string{"Goal Value", "One-time Investment", "Monthly Investment"}
	subtitle := fmt.Sprintf("Target %s in %d years", finance.FormatINR(projection.Plan.FutureValue), goal.Years)
	img, err := charts.MultiLine(goal.Name, subtitle, labels, names,
		[][]float64{goalValues, lumpValues, monthlyValues})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrChartRender, err)
	}
	return img, nil
}

// computePlan derives every plan figure from the goal. Rates are stored
// as annual percentages and converted to fractions here.
func computePlan(goal *models.Goal, overrides RateOverrides) *Plan {
	inflation := goal.InflationRate
	expectedReturn := goal.ExpectedReturn
	if overrides.InflationRate != nil {
		inflation = *overrides.InflationRate
	}
	if overrides.ExpectedReturn != nil {
		expectedReturn = *overrides.ExpectedReturn
	}

	futureValue := finance.FutureValue(goal.TargetAmount, inflation/100, goal.Years)
	amountNeeded := futureValue - goal.CurrentSavings
	if amountNeeded < 0 {
		amountNeeded = 0
	}
	lumpSum := finance.LumpSumRequired(amountNeeded, expectedReturn/100, goal.Years)
	monthly := finance.MonthlyContributionRequired(amountNeeded, expectedReturn/100, goal.Years)

	split := finance.StockSplit(goal.RiskProfile)
	stockAmount := amountNeeded * split
	fundAmount := amountNeeded * (1 - split)

	return &Plan{
		GoalID:         goal.ID,
		GoalName:       goal.Name,
		GoalType:       goal.Type,
		RiskProfile:    goal.RiskProfile,
		Years:          goal.Years,
		InflationRate:  inflation,
		ExpectedReturn: expectedReturn,

		TargetAmount:    goal.TargetAmount,
		FutureValue:     futureValue,
		CurrentSavings:  goal.CurrentSavings,
		AmountNeeded:    amountNeeded,
		LumpSumRequired: lumpSum,
		MonthlyRequired: monthly,

		AssetAllocation: finance.AssetAllocation(goal.RiskProfile),
		Stocks: SleeveAllocation{
			Pct:           split * 100,
			Amount:        stockAmount,
			AmountDisplay: finance.FormatINR(stockAmount),
		},
		MutualFunds: SleeveAllocation{
			Pct:           (1 - split) * 100,
			Amount:        fundAmount,
			AmountDisplay: finance.FormatINR(fundAmount),
		},

		Display: PlanDisplay{
			TargetAmount:    finance.FormatINR(goal.TargetAmount),
			FutureValue:     finance.FormatINR(futureValue),
			CurrentSavings:  finance.FormatINR(goal.CurrentSavings),
			AmountNeeded:    finance.FormatINR(amountNeeded),
			LumpSumRequired: finance.FormatINR(lumpSum),
			MonthlyRequired: finance.FormatINR(monthly),
		},
	}
}

// computeProjection tracks the inflating goal against both investment
// strategies, year by year, and compares their returns.
func computeProjection(goal *models.Goal, overrides RateOverrides) *Projection {
	plan := computePlan(goal, overrides)
	years := goal.Years
	returnFrac := plan.ExpectedReturn / 100

	lumpCurve := finance.GrowthCurve(goal.CurrentSavings+plan.LumpSumRequired, 0, returnFrac, years)
	monthlyCurve := finance.GrowthCurve(goal.CurrentSavings, plan.MonthlyRequired, returnFrac, years)

	startYear := time.Now().Year()
	points := make([]ProjectionPoint, 0, years+1)
	for i := 0; i <= years; i++ {
		points = append(points, ProjectionPoint{
			Year:         startYear + i,
			YearsElapsed: i,
			GoalValue:    finance.FutureValue(goal.TargetAmount, plan.InflationRate/100, i),
			LumpSumValue: lumpCurve[i],
			MonthlyValue: monthlyCurve[i],
		})
	}

	lumpInvested := plan.LumpSumRequired + goal.CurrentSavings
	monthlyInvested := plan.MonthlyRequired*12*float64(years) + goal.CurrentSavings
	comparison := []StrategyComparison{
		{
			Strategy:      "lump_sum",
			TotalInvested: lumpInvested,
			FinalValue:    lumpCurve[years],
			TotalReturns:  lumpCurve[years] - lumpInvested,
			ROIPct:        finance.ROI(lumpInvested, lumpCurve[years]),
		},
		{
			Strategy:      "monthly",
			TotalInvested: monthlyInvested,
			FinalValue:    monthlyCurve[years],
			TotalReturns:  monthlyCurve[years] - monthlyInvested,
			ROIPct:        finance.ROI(monthlyInvested, monthlyCurve[years]),
		},
	}

	return &Projection{
		GoalID:     goal.ID,
		GoalName:   goal.Name,
		Plan:       *plan,
		Points:     points,
		Comparison: comparison,
	}
}
