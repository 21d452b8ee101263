package services

import (
	"context"

	"goalplanner/internal/catalog"
	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/ranking"
)

// topPicks is how many instruments of each kind a recommendation keeps.
const topPicks = 5

// recommendationService ranks the catalog universes against live market
// data and splits the plan's sleeve amounts across the winners.
type recommendationService struct {
	goals    GoalServicer
	market   MarketDataServicer
	catalog  catalog.Catalog
	period   marketdata.Period
	riskFree float64
}

// NewRecommendationService creates a new RecommendationServicer.
func NewRecommendationService(goals GoalServicer, market MarketDataServicer, cat catalog.Catalog, period marketdata.Period, riskFree float64) RecommendationServicer {
	return &recommendationService{
		goals:    goals,
		market:   market,
		catalog:  cat,
		period:   period,
		riskFree: riskFree,
	}
}

// RecommendForGoal builds the full advice for a goal: the plan, the top
// ranked stocks and mutual funds for its risk profile, and how much of
// the needed amount lands on each pick. Instruments whose data could
// not be fetched are reported in Skipped rather than failing the call.
func (s *recommendationService) RecommendForGoal(ctx context.Context, goalID string, overrides RateOverrides) (*Recommendations, error) {
	goal, err := s.goals.GetGoalByID(goalID)
	if err != nil {
		return nil, err
	}
	plan := computePlan(goal, overrides)

	stocks, skippedStocks := s.rankUniverse(ctx, s.catalog.StockUniverse(goal.RiskProfile), goal.RiskProfile)
	funds, skippedFunds := s.rankUniverse(ctx, s.catalog.FundUniverse(goal.RiskProfile), goal.RiskProfile)

	return &Recommendations{
		GoalID:      goal.ID,
		RiskProfile: goal.RiskProfile,
		Plan:        *plan,
		Stocks:      buildRecommendationSet(marketdata.KindStock, plan, plan.Stocks, stocks),
		MutualFunds: buildRecommendationSet(marketdata.KindMutualFund, plan, plan.MutualFunds, funds),
		Skipped:     append(skippedStocks, skippedFunds...),
	}, nil
}

// rankUniverse fetches history for every instrument, ranks what came
// back, and keeps the top picks. Fetch failures surface as skipped
// symbols.
func (s *recommendationService) rankUniverse(ctx context.Context, universe []marketdata.Instrument, profile finance.RiskProfile) ([]ranking.RankedInstrument, []string) {
	series, fetchErrs := s.market.BatchHistory(ctx, universe, s.period)

	var skipped []string
	for _, fe := range fetchErrs {
		skipped = append(skipped, fe.Symbol)
	}

	candidates := make([]ranking.Candidate, 0, len(series))
	for _, sr := range series {
		candidates = append(candidates, ranking.Candidate{Symbol: sr.Symbol, Closes: sr.Closes()})
	}

	ranked := ranking.Rank(candidates, profile, s.riskFree)
	if len(ranked) > topPicks {
		ranked = ranked[:topPicks]
	}
	return ranked, skipped
}

// buildRecommendationSet splits one sleeve equally across the ranked
// picks and attaches per-instrument amounts for both strategies.
func buildRecommendationSet(kind marketdata.Kind, plan *Plan, sleeve SleeveAllocation, ranked []ranking.RankedInstrument) RecommendationSet {
	set := RecommendationSet{
		Kind:          kind,
		AllocationPct: sleeve.Pct,
		Total:         sleeve.Amount,
		TotalDisplay:  sleeve.AmountDisplay,
	}
	if len(ranked) == 0 {
		return set
	}

	weight := 1.0 / float64(len(ranked))
	sleeveFrac := sleeve.Pct / 100
	set.Instruments = make([]RecommendedInstrument, 0, len(ranked))
	for _, r := range ranked {
		amount := sleeve.Amount * weight
		set.Instruments = append(set.Instruments, RecommendedInstrument{
			Symbol:        r.Symbol,
			Kind:          kind,
			Score:         r.Score,
			Metrics:       r.Metrics,
			WeightPct:     weight * 100,
			Amount:        amount,
			AmountDisplay: finance.FormatINR(amount),
			OneTimeAmount: plan.LumpSumRequired * sleeveFrac * weight,
			MonthlyAmount: plan.MonthlyRequired * sleeveFrac * weight,
		})
	}
	return set
}
