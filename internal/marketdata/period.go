package marketdata

import (
	"fmt"
	"time"
)

// Period is a named lookback window for history fetches.
type Period string

const (
	Period1Month  Period = "1mo"
	Period3Months Period = "3mo"
	Period6Months Period = "6mo"
	Period1Year   Period = "1y"
	Period2Years  Period = "2y"
	Period5Years  Period = "5y"
)

// ParsePeriod validates a period string. An empty string resolves to the
// given fallback.
func ParsePeriod(s string, fallback Period) (Period, error) {
	if s == "" {
		return fallback, nil
	}
	p := Period(s)
	switch p {
	case Period1Month, Period3Months, Period6Months, Period1Year, Period2Years, Period5Years:
		return p, nil
	}
	return "", fmt.Errorf("unsupported period %q", s)
}

// Start returns the beginning of the lookback window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period1Month:
		return now.AddDate(0, -1, 0)
	case Period3Months:
		return now.AddDate(0, -3, 0)
	case Period6Months:
		return now.AddDate(0, -6, 0)
	case Period1Year:
		return now.AddDate(-1, 0, 0)
	case Period5Years:
		return now.AddDate(-5, 0, 0)
	default:
		return now.AddDate(-2, 0, 0)
	}
}
