package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tradingsim/internal/chart"
	"tradingsim/internal/market"
)

// StockHandler handles stock price and price-chart HTTP requests. Data
// source failures never surface as HTTP errors: the price endpoint answers
// with 0 and the chart endpoint with an empty chart, so the client can show
// "not found" rather than crash.
type StockHandler struct {
	market *market.Service
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(marketService *market.Service) *StockHandler {
	return &StockHandler{
		market: marketService,
	}
}

// PriceResponse is the body of a stock price lookup.
type PriceResponse struct {
	Price float64 `json:"price"`
}

// StockPrice handles GET requests for a symbol's current price.
//
// Endpoint: GET /get_stock_price/{symbol}
// Response: 200 OK with PriceResponse; price is 0 when the symbol is
// unavailable or has no data.
func (h *StockHandler) StockPrice(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.market.Quote(symbol)
	if err != nil {
		log.Printf("Error fetching price for %s: %v", strings.ToUpper(symbol), err)
		respondJSON(w, http.StatusOK, PriceResponse{Price: 0})
		return
	}

	respondJSON(w, http.StatusOK, PriceResponse{Price: quote.Price})
}

// StockPriceChart handles GET requests for a symbol's 1-year price chart.
//
// Endpoint: GET /get_stock_price_chart/{symbol}
// Response: 200 OK with ChartResponse; the chart is an empty string for the
// RANDOM symbol and for any fetch or render failure.
func (h *StockHandler) StockPriceChart(w http.ResponseWriter, r *http.Request) {
	symbol := strings.ToUpper(chi.URLParam(r, "symbol"))

	series, err := h.market.History(symbol)
	if err != nil {
		log.Printf("Error fetching 1y history for %s: %v", symbol, err)
		respondJSON(w, http.StatusOK, ChartResponse{Chart: ""})
		return
	}

	points := make([]chart.Point, len(series))
	for i, pt := range series {
		points[i] = chart.Point{X: float64(pt.Date.Unix()), Y: pt.Close}
	}

	encoded, err := chart.Line(
		fmt.Sprintf("%s Price History (1 Year)", symbol),
		"Date",
		"Price (USD)",
		points,
	)
	if err != nil {
		log.Printf("Error rendering price chart for %s: %v", symbol, err)
		encoded = ""
	}

	respondJSON(w, http.StatusOK, ChartResponse{Chart: encoded})
}
