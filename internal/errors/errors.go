// Package errors provides custom error types for the goal planner API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Goal errors.
var (
	ErrGoalNotFound       = &AppError{Code: "GOAL_NOT_FOUND", Message: "Goal not found", StatusCode: http.StatusNotFound}
	ErrInvalidGoalType    = &AppError{Code: "INVALID_GOAL_TYPE", Message: "Unsupported goal type", StatusCode: http.StatusBadRequest}
	ErrRetirementInputs   = &AppError{Code: "RETIREMENT_INPUTS_REQUIRED", Message: "Retirement goals require monthly expenses and years in retirement", StatusCode: http.StatusBadRequest}
	ErrTargetRequired     = &AppError{Code: "TARGET_REQUIRED", Message: "A target amount is required for this goal type", StatusCode: http.StatusBadRequest}
	ErrInvalidRiskProfile = &AppError{Code: "INVALID_RISK_PROFILE", Message: "Unsupported risk profile", StatusCode: http.StatusBadRequest}
)

// Market data errors.
var (
	ErrInstrumentNotFound    = &AppError{Code: "INSTRUMENT_NOT_FOUND", Message: "Instrument not found", StatusCode: http.StatusNotFound}
	ErrMarketDataUnavailable = &AppError{Code: "MARKET_DATA_UNAVAILABLE", Message: "Market data is currently unavailable", StatusCode: http.StatusBadGateway}
	ErrInsufficientHistory   = &AppError{Code: "INSUFFICIENT_HISTORY", Message: "Not enough price history for this computation", StatusCode: http.StatusUnprocessableEntity}
	ErrUnsupportedPeriod     = &AppError{Code: "UNSUPPORTED_PERIOD", Message: "Unsupported history period", StatusCode: http.StatusBadRequest}
)

// Chart errors.
var (
	ErrChartRender = &AppError{Code: "CHART_RENDER_FAILED", Message: "Chart could not be rendered", StatusCode: http.StatusInternalServerError}
)
