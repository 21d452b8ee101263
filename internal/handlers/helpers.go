package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/logger"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/services"
	"goalplanner/internal/uuid"
)

// parseGoalID validates the goal UUID path parameter.
// Returns ErrInvalidInput if the parameter is not a valid UUID.
func parseGoalID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if !uuid.IsValid(id) {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid goal ID")
	}
	return id, nil
}

// parseRateOverrides reads the optional inflation_rate and
// expected_return query parameters used by the what-if sliders.
func parseRateOverrides(c *gin.Context) (services.RateOverrides, error) {
	var overrides services.RateOverrides

	if v := c.Query("inflation_rate"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return overrides, apperrors.WithMessage(apperrors.ErrInvalidInput, "inflation_rate must be a non-negative number")
		}
		overrides.InflationRate = &rate
	}
	if v := c.Query("expected_return"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil || rate < 0 {
			return overrides, apperrors.WithMessage(apperrors.ErrInvalidInput, "expected_return must be a non-negative number")
		}
		overrides.ExpectedReturn = &rate
	}
	return overrides, nil
}

// parsePeriod reads the optional period query parameter, falling back
// to the handler's configured default.
func parsePeriod(c *gin.Context, fallback marketdata.Period) (marketdata.Period, error) {
	period, err := marketdata.ParsePeriod(c.Query("period"), fallback)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrUnsupportedPeriod, err)
	}
	return period, nil
}

// parseKind reads the optional kind query parameter. Instruments are
// stocks unless stated otherwise.
func parseKind(c *gin.Context) (marketdata.Kind, error) {
	switch v := c.Query("kind"); v {
	case "", string(marketdata.KindStock):
		return marketdata.KindStock, nil
	case string(marketdata.KindMutualFund):
		return marketdata.KindMutualFund, nil
	case string(marketdata.KindIndex):
		return marketdata.KindIndex, nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "kind must be stock, mutual_fund or index")
	}
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message"`
}
