package portfolio

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"tradingsim/internal/apperrors"
)

func dec(t *testing.T, v string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(v)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", v, err)
	}
	return d
}

// TestPortfolio_Buy tests the buy path of the trading state machine.
//
// WHY: Buys are the only way cash turns into positions, and the
// weighted-average cost rule is the one piece of non-trivial arithmetic in
// the system.
func TestPortfolio_Buy(t *testing.T) {
	t.Run("creates a new holding and deducts cash", func(t *testing.T) {
		p := New(dec(t, "10000"))

		if err := p.Buy("aapl", 10, dec(t, "100.00")); err != nil {
			t.Fatalf("Buy() returned unexpected error: %v", err)
		}

		if got := p.Cash(); !got.Equal(dec(t, "9000")) {
			t.Errorf("Expected cash 9000, got %s", got)
		}

		h, ok := p.Holding("AAPL")
		if !ok {
			t.Fatal("Expected holding for AAPL")
		}
		if h.Quantity != 10 {
			t.Errorf("Expected quantity 10, got %d", h.Quantity)
		}
		if !h.AveragePrice.Equal(dec(t, "100.00")) {
			t.Errorf("Expected average price 100.00, got %s", h.AveragePrice)
		}
		if !h.LastKnownPrice.Equal(dec(t, "100.00")) {
			t.Errorf("Expected last known price 100.00, got %s", h.LastKnownPrice)
		}
	})

	t.Run("recomputes average price as weighted mean of lots", func(t *testing.T) {
		p := New(dec(t, "10000"))

		if err := p.Buy("TSLA", 10, dec(t, "100")); err != nil {
			t.Fatalf("first Buy() failed: %v", err)
		}
		if err := p.Buy("TSLA", 5, dec(t, "130")); err != nil {
			t.Fatalf("second Buy() failed: %v", err)
		}

		h, _ := p.Holding("TSLA")
		if h.Quantity != 15 {
			t.Errorf("Expected quantity 15, got %d", h.Quantity)
		}
		// (10*100 + 5*130) / 15 = 110
		if !h.AveragePrice.Equal(dec(t, "110")) {
			t.Errorf("Expected average price 110, got %s", h.AveragePrice)
		}
		if !h.LastKnownPrice.Equal(dec(t, "130")) {
			t.Errorf("Expected last known price 130, got %s", h.LastKnownPrice)
		}
	})

	t.Run("fails without mutation on insufficient funds", func(t *testing.T) {
		p := New(dec(t, "500"))

		err := p.Buy("AAPL", 10, dec(t, "100"))
		if !errors.Is(err, apperrors.ErrInsufficientFunds) {
			t.Errorf("Expected ErrInsufficientFunds, got %v", err)
		}

		if got := p.Cash(); !got.Equal(dec(t, "500")) {
			t.Errorf("Cash changed on failed buy: %s", got)
		}
		if _, ok := p.Holding("AAPL"); ok {
			t.Error("Holding created on failed buy")
		}
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		p := New(dec(t, "10000"))

		if err := p.Buy("AAPL", 0, dec(t, "100")); !errors.Is(err, apperrors.ErrInvalidQuantity) {
			t.Errorf("Expected ErrInvalidQuantity for qty 0, got %v", err)
		}
		if err := p.Buy("AAPL", -3, dec(t, "100")); !errors.Is(err, apperrors.ErrInvalidQuantity) {
			t.Errorf("Expected ErrInvalidQuantity for qty -3, got %v", err)
		}
	})

	t.Run("rejects unresolvable price", func(t *testing.T) {
		p := New(dec(t, "10000"))

		if err := p.Buy("AAPL", 1, decimal.Zero); !errors.Is(err, apperrors.ErrPriceUnavailable) {
			t.Errorf("Expected ErrPriceUnavailable for price 0, got %v", err)
		}
		if got := p.Cash(); !got.Equal(dec(t, "10000")) {
			t.Errorf("Cash changed on failed buy: %s", got)
		}
	})
}

// TestPortfolio_Sell tests the sell path.
func TestPortfolio_Sell(t *testing.T) {
	t.Run("credits cash and leaves average price unchanged", func(t *testing.T) {
		p := New(dec(t, "10000"))
		if err := p.Buy("NVDA", 10, dec(t, "100")); err != nil {
			t.Fatalf("Buy() failed: %v", err)
		}

		if err := p.Sell("NVDA", 4, dec(t, "120")); err != nil {
			t.Fatalf("Sell() returned unexpected error: %v", err)
		}

		// 10000 - 1000 + 4*120 = 9480
		if got := p.Cash(); !got.Equal(dec(t, "9480")) {
			t.Errorf("Expected cash 9480, got %s", got)
		}

		h, _ := p.Holding("NVDA")
		if h.Quantity != 6 {
			t.Errorf("Expected quantity 6, got %d", h.Quantity)
		}
		if !h.AveragePrice.Equal(dec(t, "100")) {
			t.Errorf("Average price changed by sell: %s", h.AveragePrice)
		}
	})

	t.Run("removes the holding when sold down to zero", func(t *testing.T) {
		p := New(dec(t, "10000"))
		if err := p.Buy("NVDA", 10, dec(t, "100")); err != nil {
			t.Fatalf("Buy() failed: %v", err)
		}

		if err := p.Sell("NVDA", 10, dec(t, "100")); err != nil {
			t.Fatalf("Sell() returned unexpected error: %v", err)
		}

		if _, ok := p.Holding("NVDA"); ok {
			t.Error("Expected holding to be removed at zero quantity")
		}
		if got := len(p.Holdings()); got != 0 {
			t.Errorf("Expected empty portfolio, got %d holdings", got)
		}
	})

	t.Run("fails without mutation when selling more than held", func(t *testing.T) {
		p := New(dec(t, "10000"))
		if err := p.Buy("NVDA", 5, dec(t, "100")); err != nil {
			t.Fatalf("Buy() failed: %v", err)
		}

		err := p.Sell("NVDA", 6, dec(t, "100"))
		if !errors.Is(err, apperrors.ErrInsufficientShares) {
			t.Errorf("Expected ErrInsufficientShares, got %v", err)
		}

		h, _ := p.Holding("NVDA")
		if h.Quantity != 5 {
			t.Errorf("Quantity changed on failed sell: %d", h.Quantity)
		}
		if got := p.Cash(); !got.Equal(dec(t, "9500")) {
			t.Errorf("Cash changed on failed sell: %s", got)
		}
	})

	t.Run("fails when the symbol is not held", func(t *testing.T) {
		p := New(dec(t, "10000"))

		if err := p.Sell("MSFT", 1, dec(t, "100")); !errors.Is(err, apperrors.ErrInsufficientShares) {
			t.Errorf("Expected ErrInsufficientShares, got %v", err)
		}
	})
}

// TestPortfolio_BuySellRoundTrip verifies that buying and selling the same
// quantity at the same price returns cash to its pre-trade value.
func TestPortfolio_BuySellRoundTrip(t *testing.T) {
	p := New(dec(t, "10000"))

	if err := p.Buy("AAPL", 7, dec(t, "142.37")); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if err := p.Sell("AAPL", 7, dec(t, "142.37")); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}

	if got := p.Cash(); !got.Equal(dec(t, "10000")) {
		t.Errorf("Expected cash restored to 10000, got %s", got)
	}
	if got := len(p.Holdings()); got != 0 {
		t.Errorf("Expected empty portfolio, got %d holdings", got)
	}
}

// TestPortfolio_ExampleScenario walks the documented example: initial cash
// 10000, buy 10 at 100.00, sell 5 at 110.00.
func TestPortfolio_ExampleScenario(t *testing.T) {
	p := New(dec(t, "10000"))

	if err := p.Buy("RANDOM", 10, dec(t, "100.00")); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}
	if got := p.Cash(); !got.Equal(dec(t, "9000.00")) {
		t.Errorf("Expected cash 9000.00, got %s", got)
	}

	if err := p.Sell("RANDOM", 5, dec(t, "110.00")); err != nil {
		t.Fatalf("Sell() failed: %v", err)
	}
	if got := p.Cash(); !got.Equal(dec(t, "9550.00")) {
		t.Errorf("Expected cash 9550.00, got %s", got)
	}

	h, ok := p.Holding("RANDOM")
	if !ok {
		t.Fatal("Expected remaining RANDOM holding")
	}
	if h.Quantity != 5 {
		t.Errorf("Expected quantity 5, got %d", h.Quantity)
	}
	if !h.AveragePrice.Equal(dec(t, "100.00")) {
		t.Errorf("Expected average price 100.00 unchanged, got %s", h.AveragePrice)
	}
}

func TestHolding_Value(t *testing.T) {
	t.Run("uses last known price when present", func(t *testing.T) {
		h := Holding{Quantity: 3, AveragePrice: decimal.NewFromInt(50), LastKnownPrice: decimal.NewFromInt(60)}
		if got := h.Value(); !got.Equal(decimal.NewFromInt(180)) {
			t.Errorf("Expected value 180, got %s", got)
		}
	})

	t.Run("falls back to average price", func(t *testing.T) {
		h := Holding{Quantity: 3, AveragePrice: decimal.NewFromInt(50)}
		if got := h.Value(); !got.Equal(decimal.NewFromInt(150)) {
			t.Errorf("Expected value 150, got %s", got)
		}
	})
}

func TestPortfolio_TotalValue(t *testing.T) {
	p := New(dec(t, "1000"))
	if err := p.Buy("AAPL", 2, dec(t, "100.50")); err != nil {
		t.Fatalf("Buy() failed: %v", err)
	}

	// 1000 - 201 cash, plus 2*100.50 position value
	if got := p.TotalValue(); !got.Equal(dec(t, "1000.00")) {
		t.Errorf("Expected total value 1000.00, got %s", got)
	}
}
