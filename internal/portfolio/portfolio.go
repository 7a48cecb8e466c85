// Package portfolio implements the paper-trading portfolio: cash plus a set
// of holdings, mutated only by buy and sell orders. The browser page keeps
// its own copy of this state machine; this package is the canonical
// statement of the trading rules and backs the server-side valuation of
// submitted snapshots.
package portfolio

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"tradingsim/internal/apperrors"
)

// Holding is a portfolio's position in one symbol.
type Holding struct {
	Symbol         string
	Quantity       int64
	AveragePrice   decimal.Decimal
	LastKnownPrice decimal.Decimal
}

// Value is the display value of the position: last-known price × quantity,
// falling back to the average price when no live price has been observed.
func (h Holding) Value() decimal.Decimal {
	price := h.LastKnownPrice
	if price.LessThanOrEqual(decimal.Zero) {
		price = h.AveragePrice
	}
	return price.Mul(decimal.NewFromInt(h.Quantity))
}

// Portfolio holds cash and positions. A holding exists only while its
// quantity is positive; selling a position down to zero removes it.
type Portfolio struct {
	cash     decimal.Decimal
	holdings map[string]*Holding
}

// New creates a portfolio with the given starting cash.
func New(cash decimal.Decimal) *Portfolio {
	return &Portfolio{
		cash:     cash,
		holdings: make(map[string]*Holding),
	}
}

// Cash returns the current cash balance.
func (p *Portfolio) Cash() decimal.Decimal {
	return p.cash
}

// Holding returns the position for a symbol, if any.
func (p *Portfolio) Holding(symbol string) (Holding, bool) {
	h, ok := p.holdings[strings.ToUpper(symbol)]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings returns all positions sorted by symbol.
func (p *Portfolio) Holdings() []Holding {
	out := make([]Holding, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Buy purchases quantity shares at the given price. It fails without
// mutating anything when the quantity is not positive, the price is not
// positive, or the cost exceeds available cash. On an existing holding the
// average price becomes the weighted mean of the old and new lots.
func (p *Portfolio) Buy(symbol string, quantity int64, price decimal.Decimal) error {
	symbol = strings.ToUpper(symbol)
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrPriceUnavailable
	}

	qty := decimal.NewFromInt(quantity)
	cost := price.Mul(qty)
	if cost.GreaterThan(p.cash) {
		return apperrors.ErrInsufficientFunds
	}

	p.cash = p.cash.Sub(cost)
	if h, ok := p.holdings[symbol]; ok {
		oldQty := decimal.NewFromInt(h.Quantity)
		newQty := oldQty.Add(qty)
		h.AveragePrice = oldQty.Mul(h.AveragePrice).Add(cost).Div(newQty)
		h.Quantity += quantity
		h.LastKnownPrice = price
	} else {
		p.holdings[symbol] = &Holding{
			Symbol:         symbol,
			Quantity:       quantity,
			AveragePrice:   price,
			LastKnownPrice: price,
		}
	}
	return nil
}

// Sell disposes of quantity shares at the given price. It fails without
// mutating anything when the quantity is not positive, the position does not
// cover it, or the price is not positive. The average price of the remaining
// shares is unchanged by a sell.
func (p *Portfolio) Sell(symbol string, quantity int64, price decimal.Decimal) error {
	symbol = strings.ToUpper(symbol)
	if quantity <= 0 {
		return apperrors.ErrInvalidQuantity
	}
	h, ok := p.holdings[symbol]
	if !ok || h.Quantity < quantity {
		return apperrors.ErrInsufficientShares
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return apperrors.ErrPriceUnavailable
	}

	p.cash = p.cash.Add(price.Mul(decimal.NewFromInt(quantity)))
	h.Quantity -= quantity
	h.LastKnownPrice = price
	if h.Quantity == 0 {
		delete(p.holdings, symbol)
	}
	return nil
}

// TotalValue is cash plus the display value of every holding, rounded to
// 2 decimals.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := p.cash
	for _, h := range p.holdings {
		total = total.Add(h.Value())
	}
	return total.Round(2)
}
