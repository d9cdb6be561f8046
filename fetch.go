package holdings

import "log"

// Quoter fetches the current quote for one security code. Providers live
// in their own packages (finnhub, eastmoney); the core only consumes this
// interface, so everything above it is testable without network access.
type Quoter interface {
	Quote(code string) (Quote, error)
}

// Fetcher aggregates the per-market providers used to build the run's
// price cache. A nil provider simply leaves that market unquoted.
type Fetcher struct {
	US   Quoter // US stocks and RSU underlyings
	CN   Quoter // A-shares and exchange-traded funds
	HK   Quoter // Hong-Kong stocks
	Fund Quoter // open-end fund NAV
}

// BuildCache fetches a quote for every distinct code in the records and
// returns the resulting cache. Provider failures are logged and degrade
// to cache misses; they never abort the run.
func (f *Fetcher) BuildCache(records []Record) Cache {
	cache := make(Cache)

	for _, rec := range records {
		provider, key, symbol := f.route(rec)
		if provider == nil || key == "" {
			continue
		}
		if _, done := cache[key]; done {
			continue
		}
		quote, err := provider.Quote(symbol)
		if err != nil {
			log.Printf("no quote for %s (%s): %v", rec.Code, rec.Section, err)
			continue
		}
		cache[key] = quote
	}
	return cache
}

// route picks the provider for a record, the cache key to store the quote
// under, and the symbol to query the provider with. The key follows the
// normalization convention of the record's market, which is why cache
// lookups must try padded variants.
func (f *Fetcher) route(rec Record) (provider Quoter, key, symbol string) {
	switch rec.Section {
	case SectionUS:
		if !IsUSTicker(rec.Code) {
			return nil, "", ""
		}
		// The cache key keeps the RSU prefix; the provider sees the
		// underlying ticker.
		return f.US, rec.Code, rec.Ticker
	case SectionHK:
		code := PadCode(rec.Code, 5)
		return f.HK, code, code
	case SectionFund:
		return f.Fund, rec.Code, rec.Code
	case SectionAShare:
		code := PadCode(rec.Code, 6)
		return f.CN, code, code
	default:
		return nil, "", ""
	}
}
