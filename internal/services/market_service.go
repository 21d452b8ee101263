package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"goalplanner/internal/catalog"
	"goalplanner/internal/charts"
	apperrors "goalplanner/internal/errors"
	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/ranking"
)

// marketDataService exposes the provider client as domain operations.
type marketDataService struct {
	client   *marketdata.Client
	catalog  catalog.Catalog
	riskFree float64
}

// NewMarketDataService creates a new MarketDataServicer.
func NewMarketDataService(client *marketdata.Client, cat catalog.Catalog, riskFree float64) MarketDataServicer {
	return &marketDataService{client: client, catalog: cat, riskFree: riskFree}
}

// History returns the daily series for one instrument.
func (s *marketDataService) History(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) (marketdata.Series, error) {
	series, err := s.client.History(ctx, marketdata.Instrument{Symbol: symbol, Kind: kind}, period)
	if err != nil {
		return marketdata.Series{}, mapMarketError(err)
	}
	return series, nil
}

// Summary returns the current snapshot for one instrument.
func (s *marketDataService) Summary(ctx context.Context, symbol string, kind marketdata.Kind) (marketdata.Summary, error) {
	summary, err := s.client.Summary(ctx, marketdata.Instrument{Symbol: symbol, Kind: kind})
	if err != nil {
		return marketdata.Summary{}, mapMarketError(err)
	}
	return summary, nil
}

// Metrics computes the ranking feature row for one instrument over the
// requested window.
func (s *marketDataService) Metrics(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) (*InstrumentMetrics, error) {
	series, err := s.History(ctx, symbol, kind, period)
	if err != nil {
		return nil, err
	}

	closes := series.Closes()
	m, err := ranking.ComputeMetrics(closes, s.riskFree)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInsufficientHistory, err)
	}

	first, last := closes[0], closes[len(closes)-1]
	return &InstrumentMetrics{
		Symbol:         symbol,
		Kind:           kind,
		Period:         period,
		Metrics:        m,
		TotalReturnPct: (last/first - 1) * 100,
		LastClose:      last,
	}, nil
}

// PriceChart renders the instrument's closing prices as a PNG.
func (s *marketDataService) PriceChart(ctx context.Context, symbol string, kind marketdata.Kind, period marketdata.Period) ([]byte, error) {
	series, err := s.History(ctx, symbol, kind, period)
	if err != nil {
		return nil, err
	}

	closes := series.Closes()
	labels := make([]string, len(series.Bars))
	for i, b := range series.Bars {
		labels[i] = b.Date.Format("2006-01-02")
	}

	title := fmt.Sprintf("%s • %s", marketdata.NormalizeSymbol(symbol), period)
	subtitle := fmt.Sprintf("Last close %s", finance.FormatINR(closes[len(closes)-1]))
	img, err := charts.Line(title, subtitle, labels, closes)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrChartRender, err)
	}
	return img, nil
}

// SectorPerformance averages the trailing-year return of each sector
// basket, sorted best first. Constituents that cannot be fetched are
// simply left out of the average; a fully failed sector reports 0.
func (s *marketDataService) SectorPerformance(ctx context.Context) ([]SectorPerformance, error) {
	out := make([]SectorPerformance, 0, len(s.catalog.Sectors))
	for sector, symbols := range s.catalog.Sectors {
		series, _ := s.client.BatchHistory(ctx, s.catalog.SectorInstruments(sector), marketdata.Period1Year)

		var sum float64
		var n int
		for _, sr := range series {
			closes := sr.Closes()
			if len(closes) < 2 || closes[0] <= 0 {
				continue
			}
			sum += (closes[len(closes)-1]/closes[0] - 1) * 100
			n++
		}

		perf := SectorPerformance{Sector: sector, Symbols: symbols}
		if n > 0 {
			perf.ReturnPct = sum / float64(n)
		}
		out = append(out, perf)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].ReturnPct != out[j].ReturnPct {
			return out[i].ReturnPct > out[j].ReturnPct
		}
		return out[i].Sector < out[j].Sector
	})
	return out, nil
}

// Benchmark returns the market benchmark's summary and a year of closes.
func (s *marketDataService) Benchmark(ctx context.Context) (*BenchmarkReport, error) {
	inst := s.catalog.BenchmarkInstrument()

	summary, err := s.client.Summary(ctx, inst)
	if err != nil {
		return nil, mapMarketError(err)
	}
	series, err := s.client.History(ctx, inst, marketdata.Period1Year)
	if err != nil {
		return nil, mapMarketError(err)
	}
	return &BenchmarkReport{Summary: summary, Series: series}, nil
}

// BatchHistory fetches many instruments concurrently, tolerating
// per-symbol failure.
func (s *marketDataService) BatchHistory(ctx context.Context, instruments []marketdata.Instrument, period marketdata.Period) ([]marketdata.Series, []*marketdata.FetchError) {
	return s.client.BatchHistory(ctx, instruments, period)
}

// mapMarketError translates provider failures into API errors: unknown
// symbols are 404s, everything else is an upstream availability problem.
func mapMarketError(err error) error {
	if errors.Is(err, marketdata.ErrSymbolNotFound) {
		return apperrors.Wrap(apperrors.ErrInstrumentNotFound, err)
	}
	return apperrors.Wrap(apperrors.ErrMarketDataUnavailable, err)
}
