package holdings

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value tied to a currency, used where amounts are
// shown to a human. Table cells and the JSON snapshot keep raw decimals.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal amount in major units.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Currency returns the ISO currency code.
func (m Money) Currency() string { return m.cur }

// Amount returns the raw decimal amount.
func (m Money) Amount() decimal.Decimal { return m.value }

// Add returns m+n. Currencies are expected to match; the first non-empty
// one wins, which keeps the zero value usable as an accumulator seed.
func (m Money) Add(n Money) Money {
	cur := m.cur
	if cur == "" {
		cur = n.cur
	}
	return Money{value: m.value.Add(n.value), cur: cur}
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool { return m.value.IsZero() }

// String renders the amount with its currency symbol and grouping, e.g.
// "¥17,000.00" or "$1,700.00".
func (m Money) String() string {
	cur := money.New(0, m.cur).Currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.Round(0).IntPart())
}

// SectionCurrency returns the settlement currency of a ledger section.
func SectionCurrency(s Section) string {
	switch s {
	case SectionUS:
		return "USD"
	case SectionHK:
		return "HKD"
	default:
		return "CNY"
	}
}
