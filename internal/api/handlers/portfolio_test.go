package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradingsim/internal/history"
)

func postSnapshot(t *testing.T, handler *PortfolioHandler, body string) ChartResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/get_portfolio_chart", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.PortfolioChart(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var response ChartResponse
	//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
	json.NewDecoder(w.Body).Decode(&response)
	return response
}

func TestPortfolioHandler_PortfolioChart(t *testing.T) {
	validBody := `{"cash": 9000, "stocks": {"AAPL": {"quantity": 10, "avg_price": 100, "currentPrice": 110}}}`

	t.Run("appends exactly one sample per valid request", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		response := postSnapshot(t, handler, validBody)

		if log.Len() != 1 {
			t.Fatalf("Expected 1 sample, got %d", log.Len())
		}
		if got := log.Samples()[0].TotalValue; got != 10100 {
			t.Errorf("Expected sample value 10100, got %v", got)
		}
		if response.Chart == "" {
			t.Error("Expected a rendered chart for a single sample")
		}
	})

	t.Run("N valid calls produce N samples", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		for i := 0; i < 4; i++ {
			response := postSnapshot(t, handler, validBody)
			if response.Chart == "" {
				t.Errorf("Call %d: expected a chart", i+1)
			}
		}

		if log.Len() != 4 {
			t.Errorf("Expected 4 samples, got %d", log.Len())
		}
	})

	t.Run("values a snapshot without live prices via average price", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		postSnapshot(t, handler, `{"cash": 9000, "stocks": {"AAPL": {"quantity": 10, "avg_price": 100}}}`)

		if got := log.Samples()[0].TotalValue; got != 10000 {
			t.Errorf("Expected sample value 10000, got %v", got)
		}
	})

	t.Run("malformed body yields an empty chart and no sample", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		response := postSnapshot(t, handler, `{"cash": `)

		if response.Chart != "" {
			t.Errorf("Expected empty chart, got %d bytes", len(response.Chart))
		}
		if log.Len() != 0 {
			t.Errorf("Malformed body grew the history log to %d", log.Len())
		}
	})

	t.Run("empty object body is rejected without a sample", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		response := postSnapshot(t, handler, `{}`)

		if response.Chart != "" {
			t.Errorf("Expected empty chart, got %d bytes", len(response.Chart))
		}
		if log.Len() != 0 {
			t.Errorf("Empty body grew the history log to %d", log.Len())
		}
	})

	t.Run("missing body is rejected without a sample", func(t *testing.T) {
		log := history.NewLog(0)
		handler := NewPortfolioHandler(log)

		req := httptest.NewRequest(http.MethodPost, "/get_portfolio_chart", nil)
		w := httptest.NewRecorder()

		handler.PortfolioChart(w, req)

		var response ChartResponse
		//nolint:errcheck // Test assertion - decode failure would cause test to fail anyway
		json.NewDecoder(w.Body).Decode(&response)

		if response.Chart != "" {
			t.Errorf("Expected empty chart, got %d bytes", len(response.Chart))
		}
		if log.Len() != 0 {
			t.Errorf("Missing body grew the history log to %d", log.Len())
		}
	})
}
