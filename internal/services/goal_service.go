package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/models"
	"goalplanner/internal/pagination"
)

// goalService handles goal-related business logic.
type goalService struct {
	db               *gorm.DB
	defaultInflation float64
	defaultReturn    float64
}

// NewGoalService creates a new GoalServicer. The rates are the annual
// percentage defaults applied when a goal does not set its own.
func NewGoalService(db *gorm.DB, defaultInflation, defaultReturn float64) GoalServicer {
	return &goalService{
		db:               db,
		defaultInflation: defaultInflation,
		defaultReturn:    defaultReturn,
	}
}

// CreateGoal validates and stores a new goal. Retirement goals derive
// their target amount from monthly expenses and years in retirement.
func (s *goalService) CreateGoal(input GoalInput) (*models.Goal, error) {
	goal, err := buildGoal(input, s.defaultInflation, s.defaultReturn)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// GetGoals returns a paginated list of goals with an optional type filter.
func (s *goalService) GetGoals(page pagination.PageRequest, goalType *models.GoalType) (*pagination.PageResponse[models.Goal], error) {
	page.Defaults()

	base := s.db.Model(&models.Goal{})
	if goalType != nil {
		base = base.Where("type = ?", *goalType)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var goals []models.Goal
	if err := base.Scopes(pagination.Paginate(page)).Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(goals, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetGoalByID returns a goal by ID.
func (s *goalService) GetGoalByID(id string) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ?", id).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal replaces a goal's writable fields.
func (s *goalService) UpdateGoal(id string, input GoalInput) (*models.Goal, error) {
	goal, err := s.GetGoalByID(id)
	if err != nil {
		return nil, err
	}

	updated, err := buildGoal(input, s.defaultInflation, s.defaultReturn)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":             updated.Name,
		"type":             updated.Type,
		"target_amount":    updated.TargetAmount,
		"current_savings":  updated.CurrentSavings,
		"years":            updated.Years,
		"risk_profile":     updated.RiskProfile,
		"inflation_rate":   updated.InflationRate,
		"expected_return":  updated.ExpectedReturn,
		"monthly_expenses": updated.MonthlyExpenses,
		"retirement_years": updated.RetirementYears,
	}
	if err := s.db.Model(goal).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goal, nil
}

// DeleteGoal soft-deletes a goal.
func (s *goalService) DeleteGoal(id string) error {
	goal, err := s.GetGoalByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// buildGoal validates input and assembles an unsaved goal, applying
// rate defaults and the retirement target derivation. Shared with the
// plan preview, which computes from the same shape without persisting.
func buildGoal(input GoalInput, defaultInflation, defaultReturn float64) (*models.Goal, error) {
	if !input.Type.Valid() {
		return nil, apperrors.ErrInvalidGoalType
	}

	goal := &models.Goal{
		Name:           input.Name,
		Type:           input.Type,
		CurrentSavings: input.CurrentSavings,
		Years:          input.Years,
		RiskProfile:    finance.ParseRiskProfile(string(input.RiskProfile)),
		InflationRate:  defaultInflation,
		ExpectedReturn: defaultReturn,
	}
	if input.InflationRate != nil {
		goal.InflationRate = *input.InflationRate
	}
	if input.ExpectedReturn != nil {
		goal.ExpectedReturn = *input.ExpectedReturn
	}

	if input.Type == models.GoalTypeRetirement {
		if input.MonthlyExpenses == nil || *input.MonthlyExpenses <= 0 ||
			input.RetirementYears == nil || *input.RetirementYears <= 0 {
			return nil, apperrors.ErrRetirementInputs
		}
		goal.MonthlyExpenses = input.MonthlyExpenses
		goal.RetirementYears = input.RetirementYears
		goal.TargetAmount = *input.MonthlyExpenses * 12 * float64(*input.RetirementYears)
		return goal, nil
	}

	if input.TargetAmount <= 0 {
		return nil, apperrors.ErrTargetRequired
	}
	goal.TargetAmount = input.TargetAmount
	return goal, nil
}
