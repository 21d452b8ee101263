package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/models"
	"goalplanner/internal/pagination"
	"goalplanner/internal/services"
)

// GoalHandler handles goal-related requests.
type GoalHandler struct {
	goalService services.GoalServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// GoalRequest represents the payload for creating or replacing a goal.
// Retirement goals derive their target from monthly_expenses and
// retirement_years; every other type requires target_amount.
type GoalRequest struct {
	Name            string              `json:"name" binding:"required,min=1,max=100"`
	Type            models.GoalType     `json:"type" binding:"required,goal_type"`
	TargetAmount    float64             `json:"target_amount" binding:"omitempty,gt=0"`
	CurrentSavings  float64             `json:"current_savings" binding:"omitempty,gte=0"`
	Years           int                 `json:"years" binding:"required,min=1,max=60"`
	RiskProfile     finance.RiskProfile `json:"risk_profile" binding:"required,risk_profile"`
	InflationRate   *float64            `json:"inflation_rate" binding:"omitempty,gte=0,lte=30"`
	ExpectedReturn  *float64            `json:"expected_return" binding:"omitempty,gte=0,lte=50"`
	MonthlyExpenses *float64            `json:"monthly_expenses" binding:"omitempty,gt=0"`
	RetirementYears *int                `json:"retirement_years" binding:"omitempty,min=1,max=60"`
}

func (r GoalRequest) toInput() services.GoalInput {
	return services.GoalInput{
		Name:            r.Name,
		Type:            r.Type,
		TargetAmount:    r.TargetAmount,
		CurrentSavings:  r.CurrentSavings,
		Years:           r.Years,
		RiskProfile:     r.RiskProfile,
		InflationRate:   r.InflationRate,
		ExpectedReturn:  r.ExpectedReturn,
		MonthlyExpenses: r.MonthlyExpenses,
		RetirementYears: r.RetirementYears,
	}
}

// CreateGoal handles the creation of a new goal.
// @Summary     Create a goal
// @Description Create a new savings goal
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       request body GoalRequest true "Goal details"
// @Success     201 {object} models.Goal "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// GetGoals handles listing goals.
// @Summary     Get goals
// @Description Get a paginated list of goals
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       type      query string false "Filter by goal type"
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Goal] "Paginated goals"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals [get]
func (h *GoalHandler) GetGoals(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var goalType *models.GoalType
	if v := c.Query("type"); v != "" {
		t := models.GoalType(v)
		if !t.Valid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown goal type"))
			return
		}
		goalType = &t
	}

	result, err := h.goalService.GetGoals(page, goalType)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetGoal handles retrieving a specific goal.
// @Summary     Get goal by ID
// @Description Get a specific goal by ID
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} models.Goal "Goal details"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [get]
func (h *GoalHandler) GetGoal(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goal, err := h.goalService.GetGoalByID(goalID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// UpdateGoal handles replacing an existing goal.
// @Summary     Update goal
// @Description Replace an existing goal's definition
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id      path string      true "Goal ID"
// @Param       request body GoalRequest true "Updated goal details"
// @Success     200 {object} models.Goal "Updated goal"
// @Failure     400 {object} ErrorResponse "Invalid input or goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.UpdateGoal(goalID, req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles deleting a goal.
// @Summary     Delete goal
// @Description Delete a goal by ID (soft delete)
// @Tags        goals
// @Accept      json
// @Produce     json
// @Param       id path string true "Goal ID"
// @Success     200 {object} MessageResponse "Goal deleted"
// @Failure     400 {object} ErrorResponse "Invalid goal ID"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(goalID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
