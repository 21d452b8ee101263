package services

import (
	"context"

	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/models"
	"goalplanner/internal/pagination"
	"goalplanner/internal/ranking"
)

// GoalInput holds the writable fields of a goal. InflationRate and
// ExpectedReturn are annual percentages; nil selects the configured
// defaults. MonthlyExpenses and RetirementYears apply to retirement
// goals only.
type GoalInput struct {
	Name            string
	Type            models.GoalType
	TargetAmount    float64
	CurrentSavings  float64
	Years           int
	RiskProfile     finance.RiskProfile
	InflationRate   *float64
	ExpectedReturn  *float64
	MonthlyExpenses *float64
	RetirementYears *int
}

// GoalServicer defines the contract for goal-related business logic.
type GoalServicer interface {
	CreateGoal(input GoalInput) (*models.Goal, error)
	GetGoals(page pagination.PageRequest, goalType *models.GoalType) (*pagination.PageResponse[models.Goal], error)
	GetGoalByID(id string) (*models.Goal, error)
	UpdateGoal(id string, input GoalInput) (*models.Goal, error)
	DeleteGoal(id string) error
}

// RateOverrides carries optional per-request inflation and expected
// return rates, annual percentages. Nil fields keep the goal's own.
type RateOverrides struct {
	InflationRate  *float64
	ExpectedReturn *float64
}

// SleeveAllocation is the money assigned to one instrument kind within
// the amount still needed for a goal.
type SleeveAllocation struct {
	Pct           float64 `json:"pct"`
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
}

// PlanDisplay carries the INR-formatted rendering of the plan's amounts.
type PlanDisplay struct {
	TargetAmount    string `json:"target_amount"`
	FutureValue     string `json:"future_value"`
	CurrentSavings  string `json:"current_savings"`
	AmountNeeded    string `json:"amount_needed"`
	LumpSumRequired string `json:"lump_sum_required"`
	MonthlyRequired string `json:"monthly_required"`
}

// Plan is the computed savings plan for a goal: the inflated target,
// the gap to close and the two ways of closing it, plus how the money
// splits across asset classes.
type Plan struct {
	GoalID         string              `json:"goal_id,omitempty"`
	GoalName       string              `json:"goal_name,omitempty"`
	GoalType       models.GoalType     `json:"goal_type"`
	RiskProfile    finance.RiskProfile `json:"risk_profile"`
	Years          int                 `json:"years"`
	InflationRate  float64             `json:"inflation_rate"`
	ExpectedReturn float64             `json:"expected_return"`

	TargetAmount    float64 `json:"target_amount"`
	FutureValue     float64 `json:"future_value"`
	CurrentSavings  float64 `json:"current_savings"`
	AmountNeeded    float64 `json:"amount_needed"`
	LumpSumRequired float64 `json:"lump_sum_required"`
	MonthlyRequired float64 `json:"monthly_required"`

	AssetAllocation finance.Allocation `json:"asset_allocation"`
	Stocks          SleeveAllocation   `json:"stocks"`
	MutualFunds     SleeveAllocation   `json:"mutual_funds"`

	Display PlanDisplay `json:"display"`
}

// ProjectionPoint is one year of the growth projection.
type ProjectionPoint struct {
	Year         int     `json:"year"`
	YearsElapsed int     `json:"years_elapsed"`
	GoalValue    float64 `json:"goal_value"`
	LumpSumValue float64 `json:"lump_sum_value"`
	MonthlyValue float64 `json:"monthly_value"`
}

// StrategyComparison contrasts what a strategy costs with what it ends
// up worth.
type StrategyComparison struct {
	Strategy      string  `json:"strategy"`
	TotalInvested float64 `json:"total_invested"`
	FinalValue    float64 `json:"final_value"`
	TotalReturns  float64 `json:"total_returns"`
	ROIPct        float64 `json:"roi_pct"`
}

// Projection is the year-by-year view of a plan: the inflating goal
// against both investment strategies, with an ROI comparison.
type Projection struct {
	GoalID     string               `json:"goal_id,omitempty"`
	GoalName   string               `json:"goal_name,omitempty"`
	Plan       Plan                 `json:"plan"`
	Points     []ProjectionPoint    `json:"points"`
	Comparison []StrategyComparison `json:"comparison"`
}

// PlanServicer defines the contract for plan and projection computations.
type PlanServicer interface {
	PlanForGoal(goalID string, overrides RateOverrides) (*Plan, error)
	Preview(input GoalInput) (*Plan, error)
	ProjectionForGoal(goalID string, overrides RateOverrides) (*Projection, error)
	ProjectionChart(goalID string, overrides RateOverrides) ([]byte, error)
}

// RecommendedInstrument is one ranked pick with its share of the plan.
type RecommendedInstrument struct {
	Symbol        string          `json:"symbol"`
	Kind          marketdata.Kind `json:"kind"`
	Score         float64         `json:"score"`
	Metrics       ranking.Metrics `json:"metrics"`
	WeightPct     float64         `json:"weight_pct"`
	Amount        float64         `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
	OneTimeAmount float64         `json:"one_time_amount"`
	MonthlyAmount float64         `json:"monthly_amount"`
}

// RecommendationSet groups the picks of one instrument kind.
type RecommendationSet struct {
	Kind          marketdata.Kind         `json:"kind"`
	AllocationPct float64                 `json:"allocation_pct"`
	Total         float64                 `json:"total"`
	TotalDisplay  string                  `json:"total_display"`
	Instruments   []RecommendedInstrument `json:"instruments"`
}

// Recommendations is the full advice for a goal.
type Recommendations struct {
	GoalID      string              `json:"goal_id"`
	RiskProfile finance.RiskProfile `json:"risk_profile"`
	Plan        Plan                `json:"plan"`
	Stocks      RecommendationSet   `json:"stocks"`
	MutualFunds RecommendationSet   `json:"mutual_funds"`
	Skipped     []string            `json:"skipped,omitempty"`
}

// RecommendationServicer defines the contract for instrument advice.
type RecommendationServicer interface {
	RecommendForGoal(ctx context.Context, goalID string, overrides RateOverrides) (*Recommendations, error)
}

// InstrumentMetrics is the ranking feature row for one instrument plus
// the headline figures of the fetched window.
type InstrumentMetrics struct {
	Symbol         string            `json:"symbol"`
	Kind           marketdata.Kind   `json:"kind"`
	Period         marketdata.Period `json:"period"`
	Metrics        ranking.Metrics   `json:"metrics"`
	TotalReturnPct float64           `json:"total_return_pct"`
	LastClose      float64           `json:"last_close"`
}

// SectorPerformance is the average trailing-year return of one sector
// basket.
type SectorPerformance struct {
	Sector    string   `json:"sector"`
	ReturnPct float64  `json:"return_pct"`
	Symbols   []string `json:"symbols"`
}

// BenchmarkReport pairs the market benchmark's summary with its recent
// closes.
type BenchmarkReport struct {
	Summary marketdata.Summary `json:"summary"`
	Series  marketdata.Series  `json:"series"`
}

// MarketDataServicer defines the contract for market data operations.
type MarketDataServicer interface {
	History(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) (marketdata.Series, error)
	Summary(ctx context.Context, symbol string, kind marketdata.Kind) (marketdata.Summary, error)
	Metrics(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) (*InstrumentMetrics, error)
	PriceChart(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) ([]byte, error)
	SectorPerformance(ctx context.Context) ([]SectorPerformance, error)
	Benchmark(ctx context.Context) (*BenchmarkReport, error)
	BatchHistory(ctx context.Context, instruments []marketdata.Instrument, period marketdata.Period) ([]marketdata.Series, []*marketdata.FetchError)
}
