package holdings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Market venues a holding can settle on.
const (
	MarketUS   = "US"
	MarketCNSH = "CN_SH"
	MarketCNSZ = "CN_SZ"
	MarketHK   = "HK"
)

// SnapshotHolding is one normalized position in the exported snapshot.
type SnapshotHolding struct {
	Symbol       string          `json:"symbol"`
	Market       string          `json:"market"`
	Quantity     decimal.Decimal `json:"quantity"`
	AvgCostLocal decimal.Decimal `json:"avg_cost_local"`
	Currency     string          `json:"currency"`

	// Populated for US holdings only, from the ledger's own market-value
	// cell. No FX conversion happens anywhere in the export.
	MarketPrice    *decimal.Decimal `json:"market_price,omitempty"`
	MarketValueUSD *decimal.Decimal `json:"market_value_usd,omitempty"`
}

// Snapshot is the normalized export of the whole ledger document.
type Snapshot struct {
	SyncTimestamp string            `json:"sync_timestamp"`
	Holdings      []SnapshotHolding `json:"holdings"`
}

// ParseDocument decodes every data row of every section into records.
// It is a read-only pass: rows that fail to decode are skipped and the
// document is left untouched.
func ParseDocument(doc string) []Record {
	var records []Record
	var sc Scanner
	for _, line := range splitAfterLines(doc) {
		if sc.Scan(line) != LineRow {
			continue
		}
		if rec, ok := DecodeRow(sc.Section, sc.Header, line); ok {
			records = append(records, rec)
		}
	}
	return records
}

// CNMarket classifies a mainland-China code by its first digit: 6 and 9
// are Shanghai, 0 and 3 Shenzhen, 5 a Shanghai-listed fund/ETF, 1 a
// Shenzhen-listed one. The heuristic is intentionally coarse (it is
// ambiguous for Beijing-exchange codes) and everything else defaults to
// Shenzhen.
func CNMarket(code string) string {
	if code == "" {
		return MarketCNSZ
	}
	switch code[0] {
	case '6', '9', '5':
		return MarketCNSH
	default:
		return MarketCNSZ
	}
}

// NewSnapshot maps decoded records to the normalized snapshot schema.
// Market and currency derive solely from the record's section and, for
// mainland codes, the first-digit heuristic.
func NewSnapshot(records []Record, at time.Time) Snapshot {
	snap := Snapshot{
		SyncTimestamp: at.UTC().Format("2006-01-02T15:04:05Z"),
		Holdings:      make([]SnapshotHolding, 0, len(records)),
	}

	for _, rec := range records {
		h := SnapshotHolding{
			Symbol:       rec.Code,
			Quantity:     rec.Quantity,
			AvgCostLocal: rec.Cost,
		}
		switch rec.Section {
		case SectionUS:
			h.Market, h.Currency = MarketUS, "USD"
			value := rec.MarketValue
			h.MarketValueUSD = &value
			price := decimal.Zero
			if rec.Quantity.IsPositive() {
				price = value.Div(rec.Quantity)
			}
			h.MarketPrice = &price
		case SectionHK:
			h.Market, h.Currency = MarketHK, "HKD"
		default:
			h.Market, h.Currency = CNMarket(rec.Code), "CNY"
		}
		snap.Holdings = append(snap.Holdings, h)
	}
	return snap
}

// Export parses the document and writes the snapshot as indented JSON to
// path, creating parent directories as needed.
func Export(doc string, path string, at time.Time) error {
	snap := NewSnapshot(ParseDocument(doc), at)

	content, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode snapshot: %w", err)
	}
	content = append(content, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("cannot create output directory %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("cannot write snapshot %q: %w", path, err)
	}
	return nil
}
