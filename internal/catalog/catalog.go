// Package catalog holds the instrument universes the recommendation and
// market endpoints draw from. The built-in tables cover NSE/BSE listings
// grouped by risk appetite; a JSON file can override any table at startup.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"goalplanner/internal/finance"
	"goalplanner/internal/marketdata"
)

// Catalog bundles the instrument tables the planner serves from.
type Catalog struct {
	Stocks      map[finance.RiskProfile][]string `json:"stocks"`
	MutualFunds map[finance.RiskProfile][]string `json:"mutual_funds"`
	Sectors     map[string][]string              `json:"sectors"`
	Benchmark   string                           `json:"benchmark"`
}

// Default returns the built-in NSE/BSE universes.
func Default() Catalog {
	return Catalog{
		Stocks: map[finance.RiskProfile][]string{
			finance.RiskConservative: {
				"TCS.NS",
				"HINDUNILVR.NS",
				"NESTLEIND.NS",
				"SUNPHARMA.NS",
				"BAJAJFINSV.NS",
				"HDFCBANK.NS",
				"ITC.NS",
				"ASIANPAINT.NS",
				"POWERGRID.NS",
				"NTPC.NS",
			},
			finance.RiskModerate: {
				"INFY.NS",
				"RELIANCE.NS",
				"HDFCBANK.NS",
				"ICICIBANK.NS",
				"KOTAKBANK.NS",
				"TCS.NS",
				"AXISBANK.NS",
				"MARUTI.NS",
				"HINDUNILVR.NS",
				"BAJAJFINSV.NS",
			},
			finance.RiskAggressive: {
				"RELIANCE.NS",
				"TATAMOTORS.NS",
				"TATASTEEL.NS",
				"JINDALSTEL.NS",
				"SBIN.NS",
				"LT.NS",
				"M&M.NS",
				"INDUSINDBK.NS",
				"ADANIPORTS.NS",
				"HINDALCO.NS",
			},
		},
		MutualFunds: map[finance.RiskProfile][]string{
			finance.RiskConservative: {
				"HDFCDBT.BO",
				"ICBPRUD.BO",
				"AXBBND.BO",
				"SMCBALQ.BO",
				"TBABRG.BO",
			},
			finance.RiskModerate: {
				"HDFCSF.BO",
				"ICBPBAQ.BO",
				"KOTBLD.BO",
				"UTSMCP.BO",
				"AXISMQ.BO",
			},
			finance.RiskAggressive: {
				"HDFCMQ.BO",
				"ICICGR.BO",
				"NIPPCQ.BO",
				"KOTSMQ.BO",
				"AXISSQ.BO",
			},
		},
		Sectors: map[string][]string{
			"IT":      {"TCS.NS", "INFY.NS", "WIPRO.NS", "HCLTECH.NS", "TECHM.NS"},
			"Banking": {"HDFCBANK.NS", "ICICIBANK.NS", "SBIN.NS", "KOTAKBANK.NS", "AXISBANK.NS"},
			"Pharma":  {"SUNPHARMA.NS", "DRREDDY.NS", "CIPLA.NS", "DIVISLAB.NS", "BIOCON.NS"},
			"Auto":    {"MARUTI.NS", "M&M.NS", "TATAMOTORS.NS", "HEROMOTOCO.NS", "BAJAJ-AUTO.NS"},
			"Energy":  {"RELIANCE.NS", "ONGC.NS", "NTPC.NS", "POWERGRID.NS", "BPCL.NS"},
		},
		Benchmark: "^NSEI",
	}
}

// Load builds a catalog from a JSON file, falling back to the defaults
// for any table the file omits. An empty path returns the defaults.
func Load(path string) (Catalog, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog: %w", err)
	}
	var file Catalog
	if err := json.Unmarshal(data, &file); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}

	if len(file.Stocks) > 0 {
		c.Stocks = file.Stocks
	}
	if len(file.MutualFunds) > 0 {
		c.MutualFunds = file.MutualFunds
	}
	if len(file.Sectors) > 0 {
		c.Sectors = file.Sectors
	}
	if file.Benchmark != "" {
		c.Benchmark = file.Benchmark
	}
	if err := c.validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

func (c Catalog) validate() error {
	for _, profile := range []finance.RiskProfile{finance.RiskConservative, finance.RiskModerate, finance.RiskAggressive} {
		if len(c.Stocks[profile]) == 0 {
			return fmt.Errorf("catalog: no stocks for profile %q", profile)
		}
		if len(c.MutualFunds[profile]) == 0 {
			return fmt.Errorf("catalog: no mutual funds for profile %q", profile)
		}
	}
	if c.Benchmark == "" {
		return fmt.Errorf("catalog: benchmark is required")
	}
	return nil
}

// StockUniverse returns the stock instruments for a profile. Unknown
// profiles fall back to the moderate table.
func (c Catalog) StockUniverse(profile finance.RiskProfile) []marketdata.Instrument {
	symbols, ok := c.Stocks[profile]
	if !ok {
		symbols = c.Stocks[finance.RiskModerate]
	}
	return toInstruments(symbols, marketdata.KindStock)
}

// FundUniverse returns the mutual fund instruments for a profile.
// Unknown profiles fall back to the moderate table.
func (c Catalog) FundUniverse(profile finance.RiskProfile) []marketdata.Instrument {
	symbols, ok := c.MutualFunds[profile]
	if !ok {
		symbols = c.MutualFunds[finance.RiskModerate]
	}
	return toInstruments(symbols, marketdata.KindMutualFund)
}

// SectorInstruments returns the constituents of one sector basket.
func (c Catalog) SectorInstruments(sector string) []marketdata.Instrument {
	return toInstruments(c.Sectors[sector], marketdata.KindStock)
}

// BenchmarkInstrument returns the market benchmark index.
func (c Catalog) BenchmarkInstrument() marketdata.Instrument {
	return marketdata.Instrument{Symbol: c.Benchmark, Kind: marketdata.KindIndex}
}

func toInstruments(symbols []string, kind marketdata.Kind) []marketdata.Instrument {
	instruments := make([]marketdata.Instrument, 0, len(symbols))
	for _, s := range symbols {
		instruments = append(instruments, marketdata.Instrument{Symbol: s, Kind: kind})
	}
	return instruments
}
