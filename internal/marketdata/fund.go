package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const yahooChartBaseURL = "https://query1.finance.yahoo.com"

// chartResponse mirrors the Yahoo v8 chart payload, trimmed to the
// fields the fund provider reads.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				ExchangeName       string  `json:"exchangeName"`
				InstrumentType     string  `json:"instrumentType"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ShortName          string  `json:"shortName"`
				LongName           string  `json:"longName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []float64 `json:"open"`
					High   []float64 `json:"high"`
					Low    []float64 `json:"low"`
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}

// FundProvider serves mutual funds from the Yahoo v8 chart endpoint,
// which carries the NAV history the quote API does not expose for
// Indian fund listings.
type FundProvider struct {
	http *resty.Client
}

// NewFundProvider creates the mutual-fund provider.
func NewFundProvider() *FundProvider {
	client := resty.New()
	client.SetBaseURL(yahooChartBaseURL)
	client.SetTimeout(15 * time.Second)
	client.SetHeader("User-Agent", "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36")
	return &FundProvider{http: client}
}

// Name implements Provider.
func (p *FundProvider) Name() string { return "yahoo-fund" }

// Supports implements Provider.
func (p *FundProvider) Supports(kind Kind) bool {
	return kind == KindMutualFund
}

func (p *FundProvider) fetchChart(ctx context.Context, symbol string, period Period) (*chartResponse, error) {
	var out chartResponse
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"range":    string(period),
			"interval": "1d",
		}).
		SetResult(&out).
		Get("/v8/finance/chart/" + symbol)
	if err != nil {
		return nil, fmt.Errorf("fund chart %s: %w", symbol, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("fund chart %s: %w", symbol, ErrSymbolNotFound)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fund chart %s: status %d", symbol, resp.StatusCode())
	}
	if len(out.Chart.Result) == 0 || len(out.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("fund chart %s: %w", symbol, ErrSymbolNotFound)
	}
	return &out, nil
}

// History implements Provider. Days Yahoo reports with a null or
// non-positive NAV are dropped.
func (p *FundProvider) History(ctx context.Context, inst Instrument, period Period) (Series, error) {
	symbol := NormalizeSymbol(inst.Symbol)
	out, err := p.fetchChart(ctx, symbol, period)
	if err != nil {
		return Series{}, err
	}

	result := out.Chart.Result[0]
	quotes := result.Indicators.Quote[0]
	series := Series{Symbol: inst.Symbol, Kind: inst.Kind}
	for i, ts := range result.Timestamp {
		if i >= len(quotes.Close) || quotes.Close[i] <= 0 {
			continue
		}
		bar := Bar{Date: time.Unix(ts, 0).UTC(), Close: quotes.Close[i]}
		if i < len(quotes.Open) {
			bar.Open = quotes.Open[i]
		}
		if i < len(quotes.High) {
			bar.High = quotes.High[i]
		}
		if i < len(quotes.Low) {
			bar.Low = quotes.Low[i]
		}
		if i < len(quotes.Volume) {
			bar.Volume = quotes.Volume[i]
		}
		series.Bars = append(series.Bars, bar)
	}
	if err := series.Validate(); err != nil {
		return Series{}, err
	}
	return series, nil
}

// Summary implements Provider from a year of NAV history and the chart
// meta block.
func (p *FundProvider) Summary(ctx context.Context, inst Instrument) (Summary, error) {
	symbol := NormalizeSymbol(inst.Symbol)
	out, err := p.fetchChart(ctx, symbol, Period1Year)
	if err != nil {
		return Summary{}, err
	}

	result := out.Chart.Result[0]
	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = inst.Symbol
	}

	s := Summary{
		Symbol:    inst.Symbol,
		Kind:      inst.Kind,
		Name:      name,
		Exchange:  result.Meta.ExchangeName,
		Currency:  result.Meta.Currency,
		LastPrice: result.Meta.RegularMarketPrice,
	}

	quotes := result.Indicators.Quote[0]
	hist := Series{Symbol: inst.Symbol, Kind: inst.Kind}
	for i, ts := range result.Timestamp {
		if i >= len(quotes.Close) || quotes.Close[i] <= 0 {
			continue
		}
		hist.Bars = append(hist.Bars, Bar{Date: time.Unix(ts, 0).UTC(), Close: quotes.Close[i]})
	}
	applySeriesStats(&s, hist)
	return s, nil
}
