// Package request contains request models and parsing for the HTTP API.
package request

import (
	"encoding/json"
	"fmt"
	"io"

	"tradingsim/internal/portfolio"
)

// ParsePortfolioSnapshot decodes the portfolio snapshot submitted with a
// performance-chart request. A missing, empty, or malformed body is an
// error; the handler answers those with the empty-chart sentinel.
func ParsePortfolioSnapshot(body io.Reader) (portfolio.Snapshot, error) {
	var snapshot portfolio.Snapshot
	if body == nil {
		return snapshot, fmt.Errorf("missing request body")
	}
	if err := json.NewDecoder(body).Decode(&snapshot); err != nil {
		return snapshot, fmt.Errorf("invalid snapshot body: %w", err)
	}
	// A body of {} or null carries no snapshot at all.
	if snapshot.Stocks == nil && snapshot.Cash.IsZero() {
		return snapshot, fmt.Errorf("empty snapshot")
	}
	return snapshot, nil
}
