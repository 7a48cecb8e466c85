// Package market provides current and historical price lookups for ticker
// symbols, including the reserved synthetic "RANDOM" symbol which never hits
// the external data source.
package market

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"tradingsim/internal/apperrors"
	"tradingsim/internal/yahoo"
)

// RandomSymbol is the reserved synthetic symbol. Its price is freshly
// randomized on every lookup and it has no price history.
const RandomSymbol = "RANDOM"

// FinanceAPI is the subset of the Yahoo Finance client used by the market
// service. It exists so tests can substitute a mock client.
type FinanceAPI interface {
	QueryYahooFiveDaySymbol(symbol string) (yahoo.Response, error)
	QueryYahooOneYearSymbol(symbol string) (yahoo.Response, error)
	ParseChart(yahooResult yahoo.Response) (yahoo.PriceChart, error)
}

// Quote is the current price of a symbol, rounded to 2 decimals.
type Quote struct {
	Symbol string  `json:"symbol"`
	Price  float64 `json:"price"`
}

// PricePoint is one (date, close) sample of a price series.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is an ordered sequence of daily closing prices.
type PriceSeries []PricePoint

// Service resolves symbol quotes and price histories. Failures are returned
// as apperrors sentinels so callers can tell "unavailable" from a legitimate
// zero price; the HTTP layer is the only place that collapses them.
type Service struct {
	finance FinanceAPI
	group   singleflight.Group
}

// NewService creates a market service backed by the given finance client.
func NewService(finance FinanceAPI) *Service {
	return &Service{finance: finance}
}

// Quote returns the current price for a symbol. Symbol matching is
// case-insensitive. For RandomSymbol the price is uniformly distributed in
// [90, 110] (100 ± 10%) and independently sampled per call. Concurrent
// lookups of the same real symbol share a single upstream fetch.
func (s *Service) Quote(symbol string) (Quote, error) {
	symbol = strings.ToUpper(symbol)
	if symbol == RandomSymbol {
		return Quote{Symbol: symbol, Price: randomPrice()}, nil
	}

	v, err, _ := s.group.Do("quote:"+symbol, func() (interface{}, error) {
		resp, err := s.finance.QueryYahooFiveDaySymbol(symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSymbolUnavailable, err)
		}
		chart, err := s.finance.ParseChart(resp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrNoPriceData, err)
		}
		price, ok := chart.LatestClose()
		if !ok {
			return nil, apperrors.ErrNoPriceData
		}
		return round2(price), nil
	})
	if err != nil {
		return Quote{Symbol: symbol}, err
	}
	return Quote{Symbol: symbol, Price: v.(float64)}, nil
}

// History returns one year of daily closes for a symbol. RandomSymbol has no
// meaningful history and yields an empty series with a nil error.
func (s *Service) History(symbol string) (PriceSeries, error) {
	symbol = strings.ToUpper(symbol)
	if symbol == RandomSymbol {
		return PriceSeries{}, nil
	}

	v, err, _ := s.group.Do("history:"+symbol, func() (interface{}, error) {
		resp, err := s.finance.QueryYahooOneYearSymbol(symbol)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrSymbolUnavailable, err)
		}
		chart, err := s.finance.ParseChart(resp)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrNoPriceData, err)
		}
		if len(chart.Indicators) == 0 {
			return nil, apperrors.ErrNoPriceData
		}
		series := make(PriceSeries, len(chart.Indicators))
		for i, ind := range chart.Indicators {
			series[i] = PricePoint{Date: ind.Date, Close: ind.PriceClose}
		}
		return series, nil
	})
	if err != nil {
		return PriceSeries{}, err
	}
	return v.(PriceSeries), nil
}

// randomPrice samples the synthetic price: 100 ± 10%, 2 decimals.
func randomPrice() float64 {
	return round2(100 * (1 + (rand.Float64()*0.2 - 0.1)))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
