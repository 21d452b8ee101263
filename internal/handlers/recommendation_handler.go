package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goalplanner/internal/services"
)

// RecommendationHandler handles instrument recommendation requests.
type RecommendationHandler struct {
	recommendationService services.RecommendationServicer
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(recommendationService services.RecommendationServicer) *RecommendationHandler {
	return &RecommendationHandler{recommendationService: recommendationService}
}

// GetRecommendations handles ranking instruments for a goal.
// @Summary     Get recommendations
// @Description Rank the risk profile's stock and mutual fund universes against recent market data and split the plan's sleeve amounts across the top picks
// @Tags        recommendations
// @Accept      json
// @Produce     json
// @Param       id              path  string  true  "Goal ID"
// @Param       inflation_rate  query number false "Override the goal's inflation rate (percent)"
// @Param       expected_return query number false "Override the goal's expected return (percent)"
// @Success     200 {object} services.Recommendations "Ranked recommendations"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/recommendations [get]
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
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

	recommendations, err := h.recommendationService.RecommendForGoal(c.Request.Context(), goalID, overrides)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
}
