package marketdata

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"
)

type stubProvider struct {
	kind Kind

	mu    sync.Mutex
	calls int
	fail  map[string]error
}

var _ Provider = (*stubProvider)(nil)

func (p *stubProvider) Name() string            { return "stub" }
func (p *stubProvider) Supports(kind Kind) bool { return kind == p.kind }

func (p *stubProvider) History(_ context.Context, inst Instrument, _ Period) (Series, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if err, ok := p.fail[inst.Symbol]; ok {
		return Series{}, err
	}
	return Series{
		Symbol: inst.Symbol,
		Kind:   inst.Kind,
		Bars: []Bar{
			{Date: day(0), Close: 100},
			{Date: day(1), Close: 101},
		},
	}, nil
}

func (p *stubProvider) Summary(_ context.Context, inst Instrument) (Summary, error) {
	if err, ok := p.fail[inst.Symbol]; ok {
		return Summary{}, err
	}
	return Summary{Symbol: inst.Symbol, Kind: inst.Kind, Name: "Stub " + inst.Symbol}, nil
}

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestClientHistoryCaching(t *testing.T) {
	stub := &stubProvider{kind: KindStock}
	client := NewClient(time.Hour, stub)
	inst := Instrument{Symbol: "TCS.NS", Kind: KindStock}

	for i := 0; i < 3; i++ {
		if _, err := client.History(context.Background(), inst, Period2Years); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := stub.callCount(); got != 1 {
		t.Errorf("expected 1 provider call for repeated fetches, got %d", got)
	}

	// A different period is a different cache entry.
	if _, err := client.History(context.Background(), inst, Period1Year); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := stub.callCount(); got != 2 {
		t.Errorf("expected 2 provider calls after new period, got %d", got)
	}
}

func TestClientHistoryCacheDisabled(t *testing.T) {
	stub := &stubProvider{kind: KindStock}
	client := NewClient(0, stub)
	inst := Instrument{Symbol: "TCS.NS", Kind: KindStock}

	for i := 0; i < 2; i++ {
		if _, err := client.History(context.Background(), inst, Period2Years); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if got := stub.callCount(); got != 2 {
		t.Errorf("expected 2 provider calls with caching disabled, got %d", got)
	}
}

func TestClientNoProviderForKind(t *testing.T) {
	client := NewClient(0, &stubProvider{kind: KindStock})
	_, err := client.History(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund}, Period1Year)
	if err == nil {
		t.Fatal("expected error when no provider supports the kind")
	}
}

func TestClientHistoryWrapsFetchError(t *testing.T) {
	cause := fmt.Errorf("connection reset")
	stub := &stubProvider{kind: KindStock, fail: map[string]error{"BAD.NS": cause}}
	client := NewClient(0, stub)

	_, err := client.History(context.Background(), Instrument{Symbol: "BAD.NS", Kind: KindStock}, Period2Years)
	if err == nil {
		t.Fatal("expected error")
	}
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
	if fetchErr.Symbol != "BAD.NS" {
		t.Errorf("expected symbol BAD.NS, got %s", fetchErr.Symbol)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestClientBatchHistory(t *testing.T) {
	stub := &stubProvider{
		kind: KindStock,
		fail: map[string]error{"BAD.NS": fmt.Errorf("upstream timeout")},
	}
	client := NewClient(0, stub)
	instruments := []Instrument{
		{Symbol: "AAA.NS", Kind: KindStock},
		{Symbol: "BAD.NS", Kind: KindStock},
		{Symbol: "CCC.NS", Kind: KindStock},
	}

	series, fetchErrs := client.BatchHistory(context.Background(), instruments, Period2Years)

	if len(series) != 2 {
		t.Fatalf("expected 2 series, got %d", len(series))
	}
	if series[0].Symbol != "AAA.NS" || series[1].Symbol != "CCC.NS" {
		t.Errorf("expected input order preserved, got %s then %s", series[0].Symbol, series[1].Symbol)
	}
	if len(fetchErrs) != 1 {
		t.Fatalf("expected 1 fetch error, got %d", len(fetchErrs))
	}
	if fetchErrs[0].Symbol != "BAD.NS" {
		t.Errorf("expected failure for BAD.NS, got %s", fetchErrs[0].Symbol)
	}
}

func TestClientBatchHistoryAllFail(t *testing.T) {
	stub := &stubProvider{
		kind: KindStock,
		fail: map[string]error{"A.NS": fmt.Errorf("a"), "B.NS": fmt.Errorf("b")},
	}
	client := NewClient(0, stub)
	instruments := []Instrument{
		{Symbol: "A.NS", Kind: KindStock},
		{Symbol: "B.NS", Kind: KindStock},
	}

	series, fetchErrs := client.BatchHistory(context.Background(), instruments, Period2Years)
	if len(series) != 0 {
		t.Errorf("expected no series, got %d", len(series))
	}
	if len(fetchErrs) != 2 {
		t.Errorf("expected 2 fetch errors, got %d", len(fetchErrs))
	}
}

func TestClientSummary(t *testing.T) {
	stub := &stubProvider{kind: KindMutualFund}
	client := NewClient(0, stub)

	s, err := client.Summary(context.Background(), Instrument{Symbol: "HDFCMQ.BO", Kind: KindMutualFund})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Stub HDFCMQ.BO" {
		t.Errorf("unexpected summary name %q", s.Name)
	}
}
