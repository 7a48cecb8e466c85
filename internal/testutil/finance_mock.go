package testutil

import (
	"time"

	"tradingsim/internal/yahoo"
)

// MockFinanceClient is a mock implementation of the market.FinanceAPI
// interface for testing. It returns predefined data instead of making
// actual API calls.
type MockFinanceClient struct {
	// MockResponse is the response to return from query methods
	MockResponse yahoo.Response
	// MockError is the error to return from query methods
	MockError error
	// QueryCount tracks how many times a query method was called
	QueryCount int
}

// NewMockFinanceClient creates a mock with default test data: 5 days of
// historical prices ending yesterday.
func NewMockFinanceClient() *MockFinanceClient {
	return &MockFinanceClient{
		MockResponse: CreateMockYahooResponse(5),
	}
}

// QueryYahooFiveDaySymbol mocks the 5-day query with predefined test data.
func (m *MockFinanceClient) QueryYahooFiveDaySymbol(_ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.MockResponse, nil
}

// QueryYahooOneYearSymbol mocks the 1-year query with predefined test data.
func (m *MockFinanceClient) QueryYahooOneYearSymbol(_ string) (yahoo.Response, error) {
	m.QueryCount++
	if m.MockError != nil {
		return yahoo.Response{}, m.MockError
	}
	return m.MockResponse, nil
}

// ParseChart delegates to the real implementation since parsing is pure
// logic with no side effects.
func (m *MockFinanceClient) ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error) {
	client := yahoo.NewFinanceClient()
	return client.ParseChart(yahooResult)
}

// WithError configures the mock to return the specified error.
func (m *MockFinanceClient) WithError(err error) *MockFinanceClient {
	m.MockError = err
	return m
}

// WithResponse configures the mock to return the specified response.
func (m *MockFinanceClient) WithResponse(resp yahoo.Response) *MockFinanceClient {
	m.MockResponse = resp
	return m
}

// WithEmptyResponse configures the mock to return a response with no data.
func (m *MockFinanceClient) WithEmptyResponse() *MockFinanceClient {
	m.MockResponse = yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{},
		},
	}
	return m
}

// CreateMockYahooResponse creates a mock Yahoo Finance API response with
// `days` days of price data ending yesterday. Each day carries realistic
// OHLCV data; the close of day i is 100 + 0.5*i + 0.25.
func CreateMockYahooResponse(days int) yahoo.Response {
	now := time.Now().UTC()
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)

	timestamps := make([]int64, days)
	opens := make([]*float64, days)
	highs := make([]*float64, days)
	lows := make([]*float64, days)
	closes := make([]*float64, days)
	volumes := make([]*int64, days)

	basePrice := 100.0
	for i := 0; i < days; i++ {
		date := yesterday.AddDate(0, 0, -days+i+1)
		timestamps[i] = date.Unix()

		dayPrice := basePrice + float64(i)*0.5
		open := dayPrice
		high := dayPrice + 1.0
		low := dayPrice - 0.5
		closePrice := dayPrice + 0.25
		volume := int64(1000000 + i*10000)

		opens[i] = &open
		highs[i] = &high
		lows[i] = &low
		closes[i] = &closePrice
		volumes[i] = &volume
	}

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:           "TEST",
						Currency:         "USD",
						ExchangeName:     "NMS",
						FullExchangeName: "NASDAQ",
						LongName:         "Test Stock Inc.",
						Shortname:        "TEST",
					},
					Timestamp: timestamps,
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   opens,
								High:   highs,
								Low:    lows,
								Close:  closes,
								Volume: volumes,
							},
						},
					},
				},
			},
		},
	}
}

// CreateMockYahooResponseForDate creates a mock response with a single
// day's data at the given close price.
func CreateMockYahooResponseForDate(date time.Time, price float64) yahoo.Response {
	timestamp := date.Unix()
	volume := int64(1000000)

	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{
				{
					Meta: yahoo.Meta{
						Symbol:   "TEST",
						Currency: "USD",
					},
					Timestamp: []int64{timestamp},
					Indicators: yahoo.IndicatorsContainer{
						Quote: []yahoo.Quote{
							{
								Open:   []*float64{&price},
								High:   []*float64{&price},
								Low:    []*float64{&price},
								Close:  []*float64{&price},
								Volume: []*int64{&volume},
							},
						},
					},
				},
			},
		},
	}
}

// CreateMockYahooErrorResponse creates a mock response carrying a Yahoo API
// error message.
func CreateMockYahooErrorResponse(errorMsg string) yahoo.Response {
	return yahoo.Response{
		Chart: yahoo.Chart{
			Result: []yahoo.Result{},
			Error:  &errorMsg,
		},
	}
}
