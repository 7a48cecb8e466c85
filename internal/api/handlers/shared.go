package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// ChartResponse carries a base64-encoded PNG, or an empty string when no
// chart could be produced.
type ChartResponse struct {
	Chart string `json:"chart"`
}

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}
