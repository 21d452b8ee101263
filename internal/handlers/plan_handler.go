package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/services"
)

// PlanHandler handles savings plan and projection requests.
type PlanHandler struct {
	planService services.PlanServicer
}

// NewPlanHandler creates a new PlanHandler.
func NewPlanHandler(planService services.PlanServicer) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// GetPlan handles computing the savings plan for a goal.
// @Summary     Get savings plan
// @Description Compute the savings plan for a goal: inflated future value, required lump sum and monthly contribution, and the asset split
// @Tags        plans
// @Accept      json
// @Produce     json
// @Param       id              path  string  true  "Goal ID"
// @Param       inflation_rate  query number false "Override the goal's inflation rate (percent)"
// @Param       expected_return query number false "Override the goal's expected return (percent)"
// @Success     200 {object} services.Plan "Savings plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/plan [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overrides, err := parseRateOverrides(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.PlanForGoal(goalID, overrides)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// PreviewPlan handles computing a plan from an inline goal payload.
// @Summary     Preview a plan
// @Description Compute a savings plan from an inline goal definition without storing anything
// @Tags        plans
// @Accept      json
// @Produce     json
// @Param       request body GoalRequest true "Goal details"
// @Success     200 {object} services.Plan "Savings plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/preview [post]
func (h *PlanHandler) PreviewPlan(c *gin.Context) {
	var req GoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.Preview(req.toInput())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

// GetProjection handles computing the year-by-year growth projection.
// @Summary     Get growth projection
// @Description Project the goal value and both investment strategies year by year, with an ROI comparison
// @Tags        plans
// @Accept      json
// @Produce     json
// @Param       id              path  string  true  "Goal ID"
// @Param       inflation_rate  query number false "Override the goal's inflation rate (percent)"
// @Param       expected_return query number false "Override the goal's expected return (percent)"
// @Success     200 {object} services.Projection "Growth projection"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/projection [get]
func (h *PlanHandler) GetProjection(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overrides, err := parseRateOverrides(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	projection, err := h.planService.ProjectionForGoal(goalID, overrides)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"projection": projection})
}

// GetProjectionChart renders the growth projection as a PNG chart.
// @Summary     Get projection chart
// @Description Render the goal value and both investment strategies as a PNG line chart
// @Tags        plans
// @Produce     png
// @Param       id              path  string  true  "Goal ID"
// @Param       inflation_rate  query number false "Override the goal's inflation rate (percent)"
// @Param       expected_return query number false "Override the goal's expected return (percent)"
// @Success     200 {file} file "PNG chart"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Chart rendering failed"
// @Router      /goals/{id}/projection/chart [get]
func (h *PlanHandler) GetProjectionChart(c *gin.Context) {
	goalID, err := parseGoalID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	overrides, err := parseRateOverrides(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	img, err := h.planService.ProjectionChart(goalID, overrides)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}
