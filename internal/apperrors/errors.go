package apperrors

import "errors"

// Market data errors distinguish a data source that could not be reached from
// one that answered with nothing. The HTTP layer collapses both to sentinel
// responses; everything above it keeps the distinction.
var (
	// ErrSymbolUnavailable indicates the market data source failed while
	// looking up a symbol (network error, malformed response, API error).
	ErrSymbolUnavailable = errors.New("symbol unavailable")

	// ErrNoPriceData indicates the data source answered but returned no
	// usable price data for the symbol.
	ErrNoPriceData = errors.New("no price data returned")
)

// Trading errors represent validation failures on portfolio operations.
// A failed operation never mutates the portfolio.
var (
	// ErrInvalidQuantity indicates a non-positive trade quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	// ErrPriceUnavailable indicates no positive trade price could be
	// resolved for the symbol.
	ErrPriceUnavailable = errors.New("price unavailable")

	// ErrInsufficientFunds indicates a buy whose cost exceeds available cash.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInsufficientShares indicates a sell of more shares than held.
	ErrInsufficientShares = errors.New("insufficient shares for sale")
)
