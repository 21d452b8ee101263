package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const fundChartBody = `{
  "chart": {
    "result": [{
      "meta": {
        "currency": "INR",
        "symbol": "HDFCMQ.BO",
        "exchangeName": "BSE",
        "instrumentType": "MUTUALFUND",
        "regularMarketPrice": 112.4,
        "shortName": "HDFC Mid-Cap Opportunities"
      },
      "timestamp": [1704067200, 1704153600, 1704240000, 1704326400],
      "indicators": {
        "quote": [{
          "open": [100.0, 101.0, null, 103.0],
          "high": [101.0, 102.0, null, 104.0],
          "low": [99.0, 100.0, null, 102.0],
          "close": [100.5, 101.5, null, 103.5],
          "volume": [0, 0, null, 0]
        }]
      }
    }],
    "error": null
  }
}`

func newFundTestServer(t *testing.T, body string, status int) (*httptest.Server, *FundProvider) {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/v8/finance/chart/") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	p := NewFundProvider()
	p.http.SetBaseURL(ts.URL)
	return ts, p
}

func TestFundProviderHistory(t *testing.T) {
	_, p := newFundTestServer(t, fundChartBody, http.StatusOK)

	series, err := p.History(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund}, Period1Year)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.Symbol != "HDFCMQ.BO" {
		t.Errorf("expected symbol HDFCMQ.BO, got %s", series.Symbol)
	}
	if len(series.Bars) != 3 {
		t.Fatalf("expected 3 bars after dropping the null NAV, got %d", len(series.Bars))
	}
	wantCloses := []float64{100.5, 101.5, 103.5}
	for i, want := range wantCloses {
		if series.Bars[i].Close != want {
			t.Errorf("bar %d close = %v, want %v", i, series.Bars[i].Close, want)
		}
	}
	for i := 1; i < len(series.Bars); i++ {
		if !series.Bars[i].Date.After(series.Bars[i-1].Date) {
			t.Errorf("bars not chronological at index %d", i)
		}
	}
}

func TestFundProviderSummary(t *testing.T) {
	_, p := newFundTestServer(t, fundChartBody, http.StatusOK)

	s, err := p.Summary(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "HDFC Mid-Cap Opportunities" {
		t.Errorf("expected short name, got %q", s.Name)
	}
	if s.Currency != "INR" {
		t.Errorf("expected currency INR, got %q", s.Currency)
	}
	if s.LastPrice != 112.4 {
		t.Errorf("expected last price 112.4, got %v", s.LastPrice)
	}
	if s.High52Week != 103.5 || s.Low52Week != 100.5 {
		t.Errorf("expected 52w range [100.5, 103.5], got [%v, %v]", s.Low52Week, s.High52Week)
	}
	wantReturn := (103.5/100.5 - 1) * 100
	if diff := s.Return1YPct - wantReturn; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("expected 1y return %v, got %v", wantReturn, s.Return1YPct)
	}
}

func TestFundProviderErrors(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		_, p := newFundTestServer(t, `{"chart":{"result":null,"error":"bad"}}`, http.StatusInternalServerError)
		if _, err := p.History(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund}, Period1Year); err == nil {
			t.Error("expected error for 500 response")
		}
	})

	t.Run("empty result", func(t *testing.T) {
		_, p := newFundTestServer(t, `{"chart":{"result":[],"error":null}}`, http.StatusOK)
		if _, err := p.History(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund}, Period1Year); err == nil {
			t.Error("expected error for empty result")
		}
	})
}

func TestFundProviderSupports(t *testing.T) {
	p := NewFundProvider()
	if !p.Supports(KindMutualFund) {
		t.Error("expected mutual fund support")
	}
	if p.Supports(KindStock) {
		t.Error("did not expect stock support")
	}
}
