package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"tradingsim/internal/api/handlers"
	custommiddleware "tradingsim/internal/api/middleware"
	"tradingsim/internal/config"
	"tradingsim/internal/history"
	"tradingsim/internal/market"
	"tradingsim/internal/web"
)

// NewRouter creates and configures the HTTP router
func NewRouter(marketService *market.Service, historyLog *history.Log, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// Browser client
	r.Get("/", web.Home)

	// Simulator routes, paths kept stable for the embedded client
	stockHandler := handlers.NewStockHandler(marketService)
	r.Get("/get_stock_price/{symbol}", stockHandler.StockPrice)
	r.Get("/get_stock_price_chart/{symbol}", stockHandler.StockPriceChart)

	portfolioHandler := handlers.NewPortfolioHandler(historyLog)
	r.Post("/get_portfolio_chart", portfolioHandler.PortfolioChart)

	// System namespace
	r.Route("/api/system", func(r chi.Router) {
		systemHandler := handlers.NewSystemHandler()
		r.Get("/health", systemHandler.Health)
	})

	return r
}
