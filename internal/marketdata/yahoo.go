package marketdata

import (
	"context"
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// YahooProvider serves stock and index data from Yahoo Finance.
type YahooProvider struct{}

// NewYahooProvider creates the stock/index provider.
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{}
}

// Name implements Provider.
func (p *YahooProvider) Name() string { return "yahoo" }

// Supports implements Provider.
func (p *YahooProvider) Supports(kind Kind) bool {
	return kind == KindStock || kind == KindIndex
}

// History implements Provider using the chart API at a daily interval.
func (p *YahooProvider) History(_ context.Context, inst Instrument, period Period) (Series, error) {
	symbol := NormalizeSymbol(inst.Symbol)
	end := time.Now()
	start := period.Start(end)

	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	series := Series{Symbol: inst.Symbol, Kind: inst.Kind}
	iter := chart.Get(params)
	for iter.Next() {
		b := iter.Bar()
		closePrice := b.Close.InexactFloat64()
		if closePrice <= 0 {
			continue
		}
		series.Bars = append(series.Bars, Bar{
			Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  closePrice,
			Volume: int64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return Series{}, fmt.Errorf("yahoo chart %s: %w", symbol, err)
	}
	if err := series.Validate(); err != nil {
		return Series{}, err
	}
	return series, nil
}

// Summary implements Provider from the quote API plus a year of history
// for the price-derived fields.
func (p *YahooProvider) Summary(ctx context.Context, inst Instrument) (Summary, error) {
	symbol := NormalizeSymbol(inst.Symbol)
	q, err := quote.Get(symbol)
	if err != nil {
		return Summary{}, fmt.Errorf("yahoo quote %s: %w", symbol, err)
	}
	if q == nil {
		return Summary{}, fmt.Errorf("yahoo quote %s: %w", symbol, ErrSymbolNotFound)
	}

	s := Summary{
		Symbol:      inst.Symbol,
		Kind:        inst.Kind,
		Name:        q.ShortName,
		Exchange:    q.FullExchangeName,
		Currency:    q.CurrencyID,
		LastPrice:   q.RegularMarketPrice,
		DayHigh:     q.RegularMarketDayHigh,
		DayLow:      q.RegularMarketDayLow,
		Volume:      int64(q.RegularMarketVolume),
		MarketState: string(q.MarketState),
	}
	if hist, histErr := p.History(ctx, inst, Period1Year); histErr == nil {
		applySeriesStats(&s, hist)
	}
	return s, nil
}

// applySeriesStats derives the 52-week range and trailing return from a
// year of history.
func applySeriesStats(s *Summary, hist Series) {
	if len(hist.Bars) == 0 {
		return
	}
	closes := hist.Closes()
	high, low := closes[0], closes[0]
	for _, c := range closes[1:] {
		if c > high {
			high = c
		}
		if c < low {
			low = c
		}
	}
	s.High52Week = high
	s.Low52Week = low

	first, last := closes[0], closes[len(closes)-1]
	if first > 0 {
		s.Return1YPct = (last/first - 1) * 100
	}
	if s.LastPrice == 0 {
		s.LastPrice = last
	}
}
