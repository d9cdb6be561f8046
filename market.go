package holdings

import "github.com/shopspring/decimal"

// Quote is one fetched market quote. Fundamentals are zero when the
// provider does not carry them.
type Quote struct {
	Price     decimal.Decimal
	Change    decimal.Decimal
	ChangePct decimal.Decimal
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	PrevClose decimal.Decimal
	Source    string

	PETTM     decimal.Decimal
	PB        decimal.Decimal
	MarketCap decimal.Decimal
}

// Cache maps a security code to the quote fetched for it during one run.
// It is built once per run and read-only afterward. Keys are stored
// however the fetch layer returned them, which is not guaranteed to be a
// single normalization form: Lookup tries the variants.
type Cache map[string]Quote

// Lookup finds the quote for a ledger code, trying the raw code first,
// then its 6-digit (mainland-China) and 5-digit (Hong-Kong) zero-padded
// variants. A miss is not an error; callers leave the row unmodified.
func (c Cache) Lookup(code string) (Quote, bool) {
	if q, ok := c[code]; ok {
		return q, true
	}
	if q, ok := c[PadCode(code, 6)]; ok {
		return q, true
	}
	if q, ok := c[PadCode(code, 5)]; ok {
		return q, true
	}
	return Quote{}, false
}
