package models

import "goalplanner/internal/finance"

// GoalType classifies what a goal is saving toward
type GoalType string

const (
	GoalTypeMarriage       GoalType = "marriage"
	GoalTypeNewHouse       GoalType = "new_house"
	GoalTypeChildEducation GoalType = "child_education"
	GoalTypeRetirement     GoalType = "retirement"
	GoalTypeOther          GoalType = "other"
)

// Valid reports whether t is one of the supported goal types.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeMarriage, GoalTypeNewHouse, GoalTypeChildEducation, GoalTypeRetirement, GoalTypeOther:
		return true
	}
	return false
}

// Goal represents a financial goal being planned toward.
// TargetAmount is in today's money; inflation is applied when the plan
// is computed. For retirement goals the target is derived from monthly
// expenses and the expected years in retirement.
type Goal struct {
	Base
	Name           string              `gorm:"not null" json:"name"`
	Type           GoalType            `gorm:"not null" json:"type"`
	TargetAmount   float64             `gorm:"not null" json:"target_amount"`
	CurrentSavings float64             `gorm:"default:0" json:"current_savings"`
	Years          int                 `gorm:"not null" json:"years"`
	RiskProfile    finance.RiskProfile `gorm:"not null;default:moderate" json:"risk_profile"`
	InflationRate  float64             `json:"inflation_rate"`
	ExpectedReturn float64             `json:"expected_return"`

	// Retirement-only inputs, nil for every other goal type.
	MonthlyExpenses *float64 `json:"monthly_expenses,omitempty"`
	RetirementYears *int     `json:"retirement_years,omitempty"`
}

// IsRetirement reports whether the goal derives its target from
// retirement expenses.
func (g *Goal) IsRetirement() bool {
	return g.Type == GoalTypeRetirement
}
