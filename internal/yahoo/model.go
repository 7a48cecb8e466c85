package yahoo

import "time"

// Response represents the raw JSON response structure from the Yahoo Finance
// chart API (v8). The structure includes:
//   - Chart.Result: Array of result objects (typically one element)
//   - Chart.Result[].Meta: Symbol metadata (name, currency, exchange)
//   - Chart.Result[].Timestamp: Unix timestamps for each data point
//   - Chart.Result[].Indicators: Price data arrays (open, close, high, low, volume)
//   - Chart.Error: Optional error message from the Yahoo API
type Response struct {
	Chart Chart `json:"chart"`
}

// Chart is the top-level container of a Yahoo Finance chart response.
type Chart struct {
	Result []Result `json:"result"`
	Error  *string  `json:"error"`
}

// Result holds the price data and metadata for one queried symbol.
type Result struct {
	Meta       Meta                `json:"meta"`
	Timestamp  []int64             `json:"timestamp"`
	Indicators IndicatorsContainer `json:"indicators"`
}

// Meta holds symbol metadata returned alongside the price data.
type Meta struct {
	Currency         string `json:"currency"`
	Symbol           string `json:"symbol"`
	ExchangeName     string `json:"exchangeName"`
	FullExchangeName string `json:"fullExchangeName"`
	LongName         string `json:"longName"`
	Shortname        string `json:"shortName"`
}

// IndicatorsContainer wraps the quote arrays of a chart result.
type IndicatorsContainer struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the raw OHLCV arrays. Values are pointers because Yahoo emits
// nulls for gaps on non-trading days.
type Quote struct {
	Open   []*float64 `json:"open"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
}

// PriceChart represents a parsed and structured price chart from Yahoo
// Finance. This is the application's internal representation after parsing
// the raw Response: symbol metadata plus a time-ordered series of daily
// price points with nulls already filtered out.
type PriceChart struct {
	Currency         string       `json:"currency"`
	Symbol           string       `json:"symbol"`
	ExchangeName     string       `json:"exchangeName"`
	FullExchangeName string       `json:"fullExchangeName"`
	LongName         string       `json:"longName"`
	Shortname        string       `json:"shortName"`
	Indicators       []Indicators `json:"indicators"`
}

// Indicators represents a single trading day's price data.
//
// Fields:
//   - Date: Trading date (midnight UTC)
//   - PriceClose: Closing price for the day
//   - Volume: Number of shares traded during the day
type Indicators struct {
	Date       time.Time
	PriceClose float64
	Volume     int64
}

// LatestClose returns the most recent closing price in the chart.
// The second return value is false when the chart holds no data points.
func (c PriceChart) LatestClose() (float64, bool) {
	if len(c.Indicators) == 0 {
		return 0, false
	}
	return c.Indicators[len(c.Indicators)-1].PriceClose, true
}
