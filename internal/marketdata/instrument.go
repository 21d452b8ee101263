// Package marketdata fetches historical prices and summaries for the
// instruments the planner recommends. Providers sit behind a common
// interface; batch fetches run concurrently and tolerate per-symbol
// failure so one bad identifier never aborts a ranking run.
package marketdata

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Kind tags the instrument variants the planner knows about.
type Kind string

const (
	KindStock      Kind = "stock"
	KindMutualFund Kind = "mutual_fund"
	KindIndex      Kind = "index"
)

// Instrument identifies one tradable by exchange symbol and kind.
type Instrument struct {
	Symbol string `json:"symbol"`
	Kind   Kind   `json:"kind"`
}

// Bar is one day of OHLCV data.
type Bar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume int64     `json:"volume"`
}

// Series is the ordered price history of one instrument.
type Series struct {
	Symbol string `json:"symbol"`
	Kind   Kind   `json:"kind"`
	Bars   []Bar  `json:"bars"`
}

// Closes extracts the closing prices in order.
func (s Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Validate checks the series contract: non-empty, strictly ascending
// dates, positive closes.
func (s Series) Validate() error {
	if len(s.Bars) == 0 {
		return fmt.Errorf("series %s: no bars", s.Symbol)
	}
	for i, b := range s.Bars {
		if b.Close <= 0 {
			return fmt.Errorf("series %s: non-positive close %v at %s",
				s.Symbol, b.Close, b.Date.Format("2006-01-02"))
		}
		if i > 0 && !s.Bars[i-1].Date.Before(b.Date) {
			return fmt.Errorf("series %s: bars out of order at %s",
				s.Symbol, b.Date.Format("2006-01-02"))
		}
	}
	return nil
}

// Summary is the shared informational shape for every instrument kind.
// Price-derived fields come from the instrument's own recent history.
type Summary struct {
	Symbol      string  `json:"symbol"`
	Kind        Kind    `json:"kind"`
	Name        string  `json:"name"`
	Exchange    string  `json:"exchange,omitempty"`
	Currency    string  `json:"currency,omitempty"`
	LastPrice   float64 `json:"last_price"`
	DayHigh     float64 `json:"day_high,omitempty"`
	DayLow      float64 `json:"day_low,omitempty"`
	Volume      int64   `json:"volume,omitempty"`
	High52Week  float64 `json:"high_52w,omitempty"`
	Low52Week   float64 `json:"low_52w,omitempty"`
	Return1YPct float64 `json:"return_1y_pct"`
	MarketState string  `json:"market_state,omitempty"`
}

// ErrSymbolNotFound marks a fetch that failed because the upstream has
// no listing for the symbol, as opposed to a transport failure.
var ErrSymbolNotFound = errors.New("marketdata: symbol not found")

// FetchError records a single instrument's fetch failure within a batch.
type FetchError struct {
	Symbol string
	Err    error
}

func (e FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e FetchError) Unwrap() error { return e.Err }

// NormalizeSymbol maps a bare identifier to its Yahoo form: indexes
// (^NSEI) and already-suffixed symbols pass through, everything else
// defaults to the NSE .NS suffix.
func NormalizeSymbol(symbol string) string {
	symbol = strings.TrimSpace(strings.ToUpper(symbol))
	if symbol == "" || strings.HasPrefix(symbol, "^") {
		return symbol
	}
	if strings.HasSuffix(symbol, ".NS") || strings.HasSuffix(symbol, ".BO") {
		return symbol
	}
	return symbol + ".NS"
}
