package handlers

import (
	"log"
	"net/http"

	"tradingsim/internal/api/request"
	"tradingsim/internal/chart"
	"tradingsim/internal/history"
)

// PortfolioHandler handles portfolio performance-chart HTTP requests.
type PortfolioHandler struct {
	history *history.Log
}

// NewPortfolioHandler creates a new PortfolioHandler backed by the given
// performance history log.
func NewPortfolioHandler(historyLog *history.Log) *PortfolioHandler {
	return &PortfolioHandler{
		history: historyLog,
	}
}

// PortfolioChart handles POST requests carrying a portfolio snapshot. A
// valid snapshot appends exactly one sample to the performance history log
// and the full log is rendered as a chart. A malformed or missing body
// yields the empty-chart sentinel without touching the log.
//
// Endpoint: POST /get_portfolio_chart
// Response: 200 OK with ChartResponse
func (h *PortfolioHandler) PortfolioChart(w http.ResponseWriter, r *http.Request) {
	snapshot, err := request.ParsePortfolioSnapshot(r.Body)
	if err != nil {
		log.Printf("Rejected portfolio snapshot: %v", err)
		respondJSON(w, http.StatusOK, ChartResponse{Chart: ""})
		return
	}

	value, _ := snapshot.TotalValue().Float64()
	h.history.Append(value)

	samples := h.history.Samples()
	points := make([]chart.Point, len(samples))
	for i, s := range samples {
		points[i] = chart.Point{X: float64(s.Timestamp.Unix()), Y: s.TotalValue}
	}

	encoded, err := chart.PerformanceLine(
		"Portfolio Performance",
		"Time",
		"Portfolio Value (USD)",
		points,
	)
	if err != nil {
		log.Printf("Error rendering performance chart: %v", err)
		encoded = ""
	}

	respondJSON(w, http.StatusOK, ChartResponse{Chart: encoded})
}
