package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"goalplanner/internal/finance"
	"goalplanner/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestGoal creates a moderate-risk marriage goal with sensible
// amounts.
func CreateTestGoal(t *testing.T, db *gorm.DB) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:           fmt.Sprintf("Test Goal %d", nextID()),
		Type:           models.GoalTypeMarriage,
		TargetAmount:   1_000_000,
		CurrentSavings: 100_000,
		Years:          5,
		RiskProfile:    finance.RiskModerate,
		InflationRate:  5.0,
		ExpectedReturn: 12.0,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestGoalWithProfile creates a goal with the given risk profile
// and horizon.
func CreateTestGoalWithProfile(t *testing.T, db *gorm.DB, profile finance.RiskProfile, years int) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		Name:           fmt.Sprintf("Test Goal %d", nextID()),
		Type:           models.GoalTypeNewHouse,
		TargetAmount:   2_500_000,
		CurrentSavings: 250_000,
		Years:          years,
		RiskProfile:    profile,
		InflationRate:  5.0,
		ExpectedReturn: 12.0,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}

// CreateTestRetirementGoal creates a retirement goal with the target
// derived from expenses, the way the goal service stores it.
func CreateTestRetirementGoal(t *testing.T, db *gorm.DB) *models.Goal {
	t.Helper()

	monthlyExpenses := 50_000.0
	retirementYears := 20

	goal := &models.Goal{
		Name:            fmt.Sprintf("Retirement %d", nextID()),
		Type:            models.GoalTypeRetirement,
		TargetAmount:    monthlyExpenses * 12 * float64(retirementYears),
		CurrentSavings:  500_000,
		Years:           25,
		RiskProfile:     finance.RiskConservative,
		InflationRate:   5.0,
		ExpectedReturn:  12.0,
		MonthlyExpenses: &monthlyExpenses,
		RetirementYears: &retirementYears,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test retirement goal: %v", err)
	}
	return goal
}
