package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"goalplanner/internal/marketdata"
	"goalplanner/internal/services"
)

// MarketHandler handles market data requests.
type MarketHandler struct {
	marketService services.MarketDataServicer
	defaultPeriod marketdata.Period
}

// NewMarketHandler creates a new MarketHandler. defaultPeriod applies
// when a request does not name a history window.
func NewMarketHandler(marketService services.MarketDataServicer, defaultPeriod marketdata.Period) *MarketHandler {
	return &MarketHandler{marketService: marketService, defaultPeriod: defaultPeriod}
}

// GetHistory handles fetching an instrument's price history.
// @Summary     Get price history
// @Description Get the daily price series for an instrument
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       symbol path  string true  "Instrument symbol, e.g. TCS.NS"
// @Param       kind   query string false "Instrument kind: stock, mutual_fund or index (default stock)"
// @Param       period query string false "History window: 1mo, 3mo, 6mo, 1y, 2y or 5y"
// @Success     200 {object} marketdata.Series "Price history"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /market/instruments/{symbol}/history [get]
func (h *MarketHandler) GetHistory(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c, h.defaultPeriod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	series, err := h.marketService.History(c.Request.Context(), c.Param("symbol"), kind, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": series})
}

// GetSummary handles fetching an instrument's current snapshot.
// @Summary     Get instrument summary
// @Description Get the current snapshot for an instrument: name, last price, 52-week range and trailing return
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       symbol path  string true  "Instrument symbol, e.g. TCS.NS"
// @Param       kind   query string false "Instrument kind: stock, mutual_fund or index (default stock)"
// @Success     200 {object} marketdata.Summary "Instrument summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /market/instruments/{symbol}/summary [get]
func (h *MarketHandler) GetSummary(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.marketService.Summary(c.Request.Context(), c.Param("symbol"), kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetMetrics handles computing an instrument's ranking feature row.
// @Summary     Get instrument metrics
// @Description Compute annualized return, volatility, Sharpe-like ratio and max drawdown for an instrument
// @Tags        market
// @Accept      json
// @Produce     json
// @Param       symbol path  string true  "Instrument symbol, e.g. TCS.NS"
// @Param       kind   query string false "Instrument kind: stock, mutual_fund or index (default stock)"
// @Param       period query string false "History window: 1mo, 3mo, 6mo, 1y, 2y or 5y"
// @Success     200 {object} services.InstrumentMetrics "Instrument metrics"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     422 {object} ErrorResponse "Not enough history"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /market/instruments/{symbol}/metrics [get]
func (h *MarketHandler) GetMetrics(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c, h.defaultPeriod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	metrics, err := h.marketService.Metrics(c.Request.Context(), c.Param("symbol"), kind, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// GetChart renders an instrument's price history as a PNG chart.
// @Summary     Get price chart
// @Description Render the instrument's closing prices as a PNG line chart
// @Tags        market
// @Produce     png
// @Param       symbol path  string true  "Instrument symbol, e.g. TCS.NS"
// @Param       kind   query string false "Instrument kind: stock, mutual_fund or index (default stock)"
// @Param       period query string false "History window: 1mo, 3mo, 6mo, 1y, 2y or 5y"
// @Success     200 {file} file "PNG chart"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Instrument not found"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /market/instruments/{symbol}/chart [get]
func (h *MarketHandler) GetChart(c *gin.Context) {
	kind, err := parseKind(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	period, err := parsePeriod(c, h.defaultPeriod)
	if err != nil {
		respondWithError(c, err)
		return
	}

	img, err := h.marketService.PriceChart(c.Request.Context(), c.Param("symbol"), kind, period)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.Data(http.StatusOK, "image/png", img)
}

// GetSectors handles the sector performance overview.
// @Summary     Get sector performance
// @Description Get the average trailing-year return of each sector basket, best first
// @Tags        market
// @Accept      json
// @Produce     json
// @Success     200 {array} services.SectorPerformance "Sector performance"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /market/sectors [get]
func (h *MarketHandler) GetSectors(c *gin.Context) {
	sectors, err := h.marketService.SectorPerformance(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sectors": sectors})
}

// GetBenchmark handles fetching the market benchmark report.
// @Summary     Get benchmark
// @Description Get the NIFTY 50 summary and a year of closing prices
// @Tags        market
// @Accept      json
// @Produce     json
// @Success     200 {object} services.BenchmarkReport "Benchmark report"
// @Failure     502 {object} ErrorResponse "Market data unavailable"
// @Router      /market/benchmark [get]
func (h *MarketHandler) GetBenchmark(c *gin.Context) {
	report, err := h.marketService.Benchmark(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"benchmark": report})
}
