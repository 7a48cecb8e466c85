// Package web serves the embedded browser client. The page holds the
// portfolio state locally and talks to the JSON endpoints; the server never
// stores it.
package web

import (
	"embed"
	"html/template"
	"log"
	"net/http"
)

//go:embed templates/index.html
var templates embed.FS

var page = template.Must(template.ParseFS(templates, "templates/index.html"))

// pageData feeds the initial client state into the template.
type pageData struct {
	StartingCash float64
}

// Home serves the trading simulator page.
//
// Endpoint: GET /
func Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, pageData{StartingCash: 10000}); err != nil {
		log.Printf("Failed to render page: %v", err)
	}
}
