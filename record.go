package holdings

import (
	"strings"
	"time"

	"github.com/SunnRayy/ai-investment-advisor/date"
	"github.com/shopspring/decimal"
)

// placeholder is the dash used in cells that carry no value yet.
const placeholder = "-"

// wanFactor converts between ten-thousand display units and absolute
// currency units.
var wanFactor = decimal.NewFromInt(10000)

// defaultBuyDate is the sentinel applied when the purchase-date cell is
// absent or a placeholder. It predates every tracked position.
func defaultBuyDate() date.Date { return date.New(2023, time.January, 1) }

// Record is one decoded table row.
type Record struct {
	Code        string
	Name        string
	Cost        decimal.Decimal
	Quantity    decimal.Decimal
	MarketValue decimal.Decimal // absolute currency units, zero when the cell is empty
	BuyDate     date.Date
	Section     Section

	// Ticker is the price-lookup symbol: the code with any RSU prefix
	// stripped. Code itself is never rewritten.
	Ticker string
	IsRSU  bool
}

// DecodeRow decodes a data row under the given header. The second return
// value is false when the row is not decodable; callers must then pass the
// row through unmodified.
func DecodeRow(sec Section, h Header, line string) (Record, bool) {
	cells := splitCells(line)
	if len(cells) < len(h) {
		return Record{}, false
	}

	ci := h.CodeIndex()
	if ci < 0 || ci >= len(cells) || cells[ci] == "" {
		return Record{}, false
	}

	rec := Record{Code: cells[ci], Section: sec}
	rec.Ticker, rec.IsRSU = SplitRSU(rec.Code)

	if i := h.NameIndex(); i >= 0 && i < len(cells) {
		rec.Name = cells[i]
	}

	var ok bool
	if rec.Cost, ok = cellDecimal(cells, h.CostIndex()); !ok {
		return Record{}, false
	}
	if rec.Quantity, ok = cellDecimal(cells, h.QuantityIndex()); !ok {
		return Record{}, false
	}
	if rec.MarketValue, ok = cellDecimal(cells, h.MarketValueIndex()); !ok {
		return Record{}, false
	}
	if h.WanMarketValue() {
		rec.MarketValue = rec.MarketValue.Mul(wanFactor)
	}

	rec.BuyDate = defaultBuyDate()
	if i := h.BuyDateIndex(); i >= 0 && i < len(cells) {
		if cell := cells[i]; cell != "" && cell != placeholder {
			if d, err := date.Parse(cell); err == nil {
				rec.BuyDate = d
			}
		}
	}

	return rec, true
}

// RewriteMarketValue renders value (in absolute currency units) into the
// row's market-value cell and returns the reassembled row. Every other
// cell is carried over as split. On any internal failure the original
// line is returned with ok=false: row mutation is strictly best-effort.
func RewriteMarketValue(h Header, line string, value decimal.Decimal) (rewritten string, ok bool) {
	cells := splitCells(line)
	idx := h.MarketValueIndex()
	if idx < 0 || idx >= len(cells) {
		return line, false
	}

	if h.WanMarketValue() {
		scaled := value.Div(wanFactor)
		// Small ten-thousand amounts keep two decimals; larger ones are
		// rendered as integers, matching the hand-kept document style.
		if scaled.LessThan(decimal.NewFromInt(100)) {
			cells[idx] = scaled.StringFixed(2)
		} else {
			cells[idx] = scaled.StringFixed(0)
		}
	} else {
		cells[idx] = value.StringFixed(2)
	}

	return "| " + strings.Join(cells, " | ") + " |\n", true
}

// cellDecimal parses the numeric cell at index i. A placeholder dash, a
// blank cell, or an absent column all coerce to zero. Thousands separators
// are tolerated. Anything else unparseable fails the whole row.
func cellDecimal(cells []string, i int) (decimal.Decimal, bool) {
	if i < 0 || i >= len(cells) {
		return decimal.Zero, true
	}
	cell := strings.ReplaceAll(cells[i], ",", "")
	if cell == "" || cell == placeholder {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(cell)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
