package portfolio

import "github.com/shopspring/decimal"

// Snapshot is the ephemeral portfolio state the browser submits with a
// performance-chart request. It is valued and discarded; the server never
// persists it.
type Snapshot struct {
	Cash   decimal.Decimal            `json:"cash"`
	Stocks map[string]SnapshotHolding `json:"stocks"`
}

// SnapshotHolding is the wire form of one position in a snapshot.
// CurrentPrice is optional; it is zero when the browser has not observed a
// live price for the symbol yet.
type SnapshotHolding struct {
	Quantity     int64           `json:"quantity"`
	AveragePrice decimal.Decimal `json:"avg_price"`
	CurrentPrice decimal.Decimal `json:"currentPrice"`
}

// TotalValue is cash plus quantity × price for every position, where price
// is the current price when known and the average price otherwise. The
// result is rounded to 2 decimals.
func (s Snapshot) TotalValue() decimal.Decimal {
	total := s.Cash
	for _, h := range s.Stocks {
		price := h.CurrentPrice
		if price.LessThanOrEqual(decimal.Zero) {
			price = h.AveragePrice
		}
		total = total.Add(price.Mul(decimal.NewFromInt(h.Quantity)))
	}
	return total.Round(2)
}
