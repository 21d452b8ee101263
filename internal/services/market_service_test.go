package services

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"goalplanner/internal/catalog"
	"goalplanner/internal/marketdata"
	"goalplanner/internal/ranking"
	"goalplanner/internal/testutil"
)

// fakeProvider serves canned series and summaries by symbol. Symbols
// with neither an entry nor a forced error are unknown.
type fakeProvider struct {
	histories map[string]marketdata.Series
	summaries map[string]marketdata.Summary
	errs      map[string]error
}

var _ marketdata.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Supports(marketdata.Kind) bool { return true }

func (f *fakeProvider) History(_ context.Context, inst marketdata.Instrument, _ marketdata.Period) (marketdata.Series, error) {
	if err, ok := f.errs[inst.Symbol]; ok {
		return marketdata.Series{}, err
	}
	if series, ok := f.histories[inst.Symbol]; ok {
		return series, nil
	}
	return marketdata.Series{}, marketdata.ErrSymbolNotFound
}

func (f *fakeProvider) Summary(_ context.Context, inst marketdata.Instrument) (marketdata.Summary, error) {
	if err, ok := f.errs[inst.Symbol]; ok {
		return marketdata.Summary{}, err
	}
	if summary, ok := f.summaries[inst.Symbol]; ok {
		return summary, nil
	}
	return marketdata.Summary{}, marketdata.ErrSymbolNotFound
}

func newTestMarketService(fake *fakeProvider, cat catalog.Catalog) MarketDataServicer {
	client := marketdata.NewClient(0, fake)
	return NewMarketDataService(client, cat, 0.05)
}

func TestMarketServiceHistory(t *testing.T) {
	fake := &fakeProvider{
		histories: map[string]marketdata.Series{
			"TCS.NS": testSeries("TCS.NS", marketdata.KindStock, risingCloses(10)),
		},
		errs: map[string]error{
			"FLAKY.NS": errors.New("connection reset"),
		},
	}
	svc := newTestMarketService(fake, catalog.Default())
	ctx := context.Background()

	t.Run("returns the series", func(t *testing.T) {
		series, err := svc.History(ctx, "TCS.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertNoError(t, err)
		if series.Symbol != "TCS.NS" || len(series.Bars) != 10 {
			t.Errorf("unexpected series: %s with %d bars", series.Symbol, len(series.Bars))
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := svc.History(ctx, "NOPE.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertAppError(t, err, "INSTRUMENT_NOT_FOUND")
	})

	t.Run("upstream failure", func(t *testing.T) {
		_, err := svc.History(ctx, "FLAKY.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertAppError(t, err, "MARKET_DATA_UNAVAILABLE")
	})
}

func TestMarketServiceSummary(t *testing.T) {
	fake := &fakeProvider{
		summaries: map[string]marketdata.Summary{
			"INFY.NS": {Symbol: "INFY.NS", Name: "Infosys Limited", LastPrice: 1520.5},
		},
	}
	svc := newTestMarketService(fake, catalog.Default())
	ctx := context.Background()

	t.Run("returns the summary", func(t *testing.T) {
		summary, err := svc.Summary(ctx, "INFY.NS", marketdata.KindStock)
		testutil.AssertNoError(t, err)
		if summary.Name != "Infosys Limited" || summary.LastPrice != 1520.5 {
			t.Errorf("unexpected summary: %+v", summary)
		}
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := svc.Summary(ctx, "NOPE.NS", marketdata.KindStock)
		testutil.AssertAppError(t, err, "INSTRUMENT_NOT_FOUND")
	})
}

func TestMarketServiceMetrics(t *testing.T) {
	closes := risingCloses(40)
	fake := &fakeProvider{
		histories: map[string]marketdata.Series{
			"TCS.NS":  testSeries("TCS.NS", marketdata.KindStock, closes),
			"STUB.NS": testSeries("STUB.NS", marketdata.KindStock, []float64{100}),
		},
	}
	svc := newTestMarketService(fake, catalog.Default())
	ctx := context.Background()

	t.Run("computes the feature row", func(t *testing.T) {
		got, err := svc.Metrics(ctx, "TCS.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertNoError(t, err)

		want, err := ranking.ComputeMetrics(closes, 0.05)
		if err != nil {
			t.Fatalf("unexpected metrics error: %v", err)
		}
		if got.Metrics != want {
			t.Errorf("metrics = %+v, want %+v", got.Metrics, want)
		}

		first, last := closes[0], closes[len(closes)-1]
		if !within(got.TotalReturnPct, (last/first-1)*100, 1e-9) {
			t.Errorf("total return = %v", got.TotalReturnPct)
		}
		if got.LastClose != last {
			t.Errorf("last close = %v, want %v", got.LastClose, last)
		}
		if got.Period != marketdata.Period1Year {
			t.Errorf("period = %q", got.Period)
		}
	})

	t.Run("series too short", func(t *testing.T) {
		_, err := svc.Metrics(ctx, "STUB.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertAppError(t, err, "INSUFFICIENT_HISTORY")
	})

	t.Run("unknown symbol", func(t *testing.T) {
		_, err := svc.Metrics(ctx, "NOPE.NS", marketdata.KindStock, marketdata.Period1Year)
		testutil.AssertAppError(t, err, "INSTRUMENT_NOT_FOUND")
	})
}

func TestMarketServicePriceChart(t *testing.T) {
	fake := &fakeProvider{
		histories: map[string]marketdata.Series{
			"TCS.NS": testSeries("TCS.NS", marketdata.KindStock, risingCloses(30)),
		},
	}
	svc := newTestMarketService(fake, catalog.Default())

	img, err := svc.PriceChart(context.Background(), "TCS.NS", marketdata.KindStock, marketdata.Period6Months)
	testutil.AssertNoError(t, err)
	if !bytes.HasPrefix(img, []byte{0x89, 'P', 'N', 'G'}) {
		t.Error("expected PNG output")
	}
}

func TestMarketServiceSectorPerformance(t *testing.T) {
	cat := catalog.Default()
	cat.Sectors = map[string][]string{
		"IT":      {"TCS.NS", "INFY.NS"},
		"Banking": {"HDFCBANK.NS", "ICICIBANK.NS"},
		"Auto":    {"MARUTI.NS"},
		"Pharma":  {"CIPLA.NS"},
	}

	fake := &fakeProvider{
		histories: map[string]marketdata.Series{
			"TCS.NS":      testSeries("TCS.NS", marketdata.KindStock, []float64{100, 110, 120}),
			"INFY.NS":     testSeries("INFY.NS", marketdata.KindStock, []float64{200, 220, 240}),
			"HDFCBANK.NS": testSeries("HDFCBANK.NS", marketdata.KindStock, []float64{100, 105, 110}),
		},
		errs: map[string]error{
			"ICICIBANK.NS": errors.New("connection reset"),
		},
	}
	svc := newTestMarketService(fake, cat)

	perf, err := svc.SectorPerformance(context.Background())
	testutil.AssertNoError(t, err)

	if len(perf) != 4 {
		t.Fatalf("expected 4 sectors, got %d", len(perf))
	}

	if perf[0].Sector != "IT" || !within(perf[0].ReturnPct, 20, 1e-9) {
		t.Errorf("best sector = %s at %v, want IT at 20", perf[0].Sector, perf[0].ReturnPct)
	}
	if perf[1].Sector != "Banking" || !within(perf[1].ReturnPct, 10, 1e-9) {
		t.Errorf("second sector = %s at %v, want Banking at 10", perf[1].Sector, perf[1].ReturnPct)
	}

	// Auto and Pharma both have no data; ties order alphabetically.
	if perf[2].Sector != "Auto" || perf[2].ReturnPct != 0 {
		t.Errorf("third sector = %s at %v, want Auto at 0", perf[2].Sector, perf[2].ReturnPct)
	}
	if perf[3].Sector != "Pharma" || perf[3].ReturnPct != 0 {
		t.Errorf("fourth sector = %s at %v, want Pharma at 0", perf[3].Sector, perf[3].ReturnPct)
	}
}

func TestMarketServiceBenchmark(t *testing.T) {
	t.Run("assembles summary and series", func(t *testing.T) {
		fake := &fakeProvider{
			histories: map[string]marketdata.Series{
				"^NSEI": testSeries("^NSEI", marketdata.KindIndex, risingCloses(20)),
			},
			summaries: map[string]marketdata.Summary{
				"^NSEI": {Symbol: "^NSEI", Name: "NIFTY 50", LastPrice: 24500},
			},
		}
		svc := newTestMarketService(fake, catalog.Default())

		report, err := svc.Benchmark(context.Background())
		testutil.AssertNoError(t, err)
		if report.Summary.Name != "NIFTY 50" {
			t.Errorf("unexpected benchmark summary: %+v", report.Summary)
		}
		if len(report.Series.Bars) != 20 {
			t.Errorf("expected 20 bars, got %d", len(report.Series.Bars))
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		fake := &fakeProvider{
			errs: map[string]error{"^NSEI": errors.New("connection reset")},
		}
		svc := newTestMarketService(fake, catalog.Default())

		_, err := svc.Benchmark(context.Background())
		testutil.AssertAppError(t, err, "MARKET_DATA_UNAVAILABLE")
	})
}

func TestMarketServiceBatchHistory(t *testing.T) {
	fake := &fakeProvider{
		histories: map[string]marketdata.Series{
			"TCS.NS":  testSeries("TCS.NS", marketdata.KindStock, risingCloses(5)),
			"INFY.NS": testSeries("INFY.NS", marketdata.KindStock, risingCloses(5)),
		},
	}
	svc := newTestMarketService(fake, catalog.Default())

	instruments := []marketdata.Instrument{
		{Symbol: "TCS.NS", Kind: marketdata.KindStock},
		{Symbol: "NOPE.NS", Kind: marketdata.KindStock},
		{Symbol: "INFY.NS", Kind: marketdata.KindStock},
	}
	series, fetchErrs := svc.BatchHistory(context.Background(), instruments, marketdata.Period1Year)

	if len(series) != 2 || series[0].Symbol != "TCS.NS" || series[1].Symbol != "INFY.NS" {
		t.Errorf("unexpected series: %+v", series)
	}
	if len(fetchErrs) != 1 || fetchErrs[0].Symbol != "NOPE.NS" {
		t.Errorf("unexpected failures: %+v", fetchErrs)
	}
}
