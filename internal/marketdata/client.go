package marketdata

import (
	"context"
	"fmt"
	"sync"
	"time"

	"goalplanner/internal/logger"
)

// Client routes instruments to the provider that supports their kind
// and caches fetched history.
type Client struct {
	providers []Provider
	cache     *seriesCache
}

// NewClient builds a client over the given providers. Providers are
// consulted in order, first match by kind wins.
func NewClient(cacheTTL time.Duration, providers ...Provider) *Client {
	return &Client{
		providers: providers,
		cache:     newSeriesCache(cacheTTL),
	}
}

func (c *Client) providerFor(kind Kind) (Provider, error) {
	for _, p := range c.providers {
		if p.Supports(kind) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no provider for instrument kind %q", kind)
}

// History fetches the daily series for one instrument, serving from
// cache when a fresh entry exists.
func (c *Client) History(ctx context.Context, inst Instrument, period Period) (Series, error) {
	key := NormalizeSymbol(inst.Symbol) + "|" + string(period)
	if series, ok := c.cache.get(key); ok {
		return series, nil
	}

	provider, err := c.providerFor(inst.Kind)
	if err != nil {
		return Series{}, err
	}
	series, err := provider.History(ctx, inst, period)
	if err != nil {
		return Series{}, &FetchError{Symbol: inst.Symbol, Err: err}
	}
	c.cache.set(key, series)
	return series, nil
}

// Summary fetches the current snapshot for one instrument.
func (c *Client) Summary(ctx context.Context, inst Instrument) (Summary, error) {
	provider, err := c.providerFor(inst.Kind)
	if err != nil {
		return Summary{}, err
	}
	summary, err := provider.Summary(ctx, inst)
	if err != nil {
		return Summary{}, &FetchError{Symbol: inst.Symbol, Err: err}
	}
	return summary, nil
}

// BatchHistory fetches every instrument concurrently. The returned
// slice preserves input order with failed fetches removed; each
// failure is reported in the error slice and logged, never fatal.
func (c *Client) BatchHistory(ctx context.Context, instruments []Instrument, period Period) ([]Series, []*FetchError) {
	results := make([]*Series, len(instruments))
	failures := make([]*FetchError, len(instruments))

	var wg sync.WaitGroup
	for i, inst := range instruments {
		wg.Add(1)
		go func(i int, inst Instrument) {
			defer wg.Done()
			series, err := c.History(ctx, inst, period)
			if err != nil {
				fetchErr, ok := err.(*FetchError)
				if !ok {
					fetchErr = &FetchError{Symbol: inst.Symbol, Err: err}
				}
				failures[i] = fetchErr
				return
			}
			results[i] = &series
		}(i, inst)
	}
	wg.Wait()

	log := logger.Get()
	series := make([]Series, 0, len(instruments))
	var errs []*FetchError
	for i := range instruments {
		if failures[i] != nil {
			log.Warnw("market data fetch failed",
				"symbol", failures[i].Symbol,
				"error", failures[i].Err,
			)
			errs = append(errs, failures[i])
			continue
		}
		if results[i] != nil {
			series = append(series, *results[i])
		}
	}
	return series, errs
}
