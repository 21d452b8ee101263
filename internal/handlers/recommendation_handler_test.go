package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/services"
)

// --- mock recommendation service ---

type mockRecommendationService struct {
	recommendForGoalFn func(ctx context.Context, goalID string, overrides services.RateOverrides) (*services.Recommendations, error)
}

var _ services.RecommendationServicer = (*mockRecommendationService)(nil)

func (m *mockRecommendationService) RecommendForGoal(ctx context.Context, goalID string, overrides services.RateOverrides) (*services.Recommendations, error) {
	if m.recommendForGoalFn != nil {
		return m.recommendForGoalFn(ctx, goalID, overrides)
	}
	return &services.Recommendations{}, nil
}

func setupRecommendationRouter(handler *RecommendationHandler) *gin.Engine {
	r := gin.New()
	r.GET("/goals/:id/recommendations", handler.GetRecommendations)
	return r
}

// --- tests ---

func TestRecommendationHandler_GetRecommendations(t *testing.T) {
	t.Run("returns 200 with recommendations", func(t *testing.T) {
		recSvc := &mockRecommendationService{
			recommendForGoalFn: func(_ context.Context, goalID string, _ services.RateOverrides) (*services.Recommendations, error) {
				return &services.Recommendations{
					GoalID:      goalID,
					RiskProfile: finance.RiskModerate,
					Stocks: services.RecommendationSet{
						Kind:          marketdata.KindStock,
						AllocationPct: 50,
						Instruments: []services.RecommendedInstrument{
							{Symbol: "RELIANCE.NS", Kind: marketdata.KindStock, WeightPct: 20},
						},
					},
					Skipped: []string{"MARUTI.NS"},
				}, nil
			},
		}
		r := setupRecommendationRouter(NewRecommendationHandler(recSvc))

		rec := doRequest(r, "GET", "/goals/"+testGoalID+"/recommendations", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)["recommendations"].(map[string]interface{})
		if result["goal_id"] != testGoalID {
			t.Errorf("expected goal id, got %v", result["goal_id"])
		}
		stocks := result["stocks"].(map[string]interface{})
		instruments := stocks["instruments"].([]interface{})
		if len(instruments) != 1 {
			t.Fatalf("expected 1 instrument, got %d", len(instruments))
		}
		skipped := result["skipped"].([]interface{})
		if len(skipped) != 1 || skipped[0] != "MARUTI.NS" {
			t.Errorf("expected skipped symbols, got %v", skipped)
		}
	})

	t.Run("parses rate overrides", func(t *testing.T) {
		var got services.RateOverrides
		recSvc := &mockRecommendationService{
			recommendForGoalFn: func(_ context.Context, _ string, overrides services.RateOverrides) (*services.Recommendations, error) {
				got = overrides
				return &services.Recommendations{}, nil
			},
		}
		r := setupRecommendationRouter(NewRecommendationHandler(recSvc))

		rec := doRequest(r, "GET", "/goals/"+testGoalID+"/recommendations?expected_return=9", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got.ExpectedReturn == nil || *got.ExpectedReturn != 9 {
			t.Errorf("expected return override 9, got %v", got.ExpectedReturn)
		}
	})

	t.Run("returns 400 on malformed ID", func(t *testing.T) {
		r := setupRecommendationRouter(NewRecommendationHandler(&mockRecommendationService{}))

		rec := doRequest(r, "GET", "/goals/xyz/recommendations", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 404 when the goal is missing", func(t *testing.T) {
		recSvc := &mockRecommendationService{
			recommendForGoalFn: func(context.Context, string, services.RateOverrides) (*services.Recommendations, error) {
				return nil, apperrors.ErrGoalNotFound
			},
		}
		r := setupRecommendationRouter(NewRecommendationHandler(recSvc))

		rec := doRequest(r, "GET", "/goals/"+testGoalID+"/recommendations", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "GOAL_NOT_FOUND")
	})
}
