package holdings

import "strings"

// Column tokens as they appear in the ledger's table headers. Header text
// varies across sections (for example the market-value column carries a
// unit suffix), so roles are resolved by these tokens, never by position.
const (
	tokenCode        = "代码"   // security code (exact match)
	tokenName        = "名称"   // display name
	tokenCost        = "成本价"  // cost basis per share/unit
	tokenQuantity    = "数量"   // stock share count
	tokenShares      = "份额"   // fund unit count
	tokenMarketValue = "市值"   // market value, any unit suffix
	tokenBuyDate     = "买入日期" // purchase date
	tokenWan         = "万"    // ten-thousand unit annotation
)

// Header is the ordered column names of one table. Role indices must be
// re-derived for every table: column order and presence differ between
// sections.
type Header []string

// ParseHeader splits a header line into its trimmed cell names.
func ParseHeader(line string) Header {
	return Header(splitCells(line))
}

// CodeIndex returns the index of the code column, or -1.
func (h Header) CodeIndex() int {
	for i, name := range h {
		if name == tokenCode {
			return i
		}
	}
	return -1
}

// NameIndex returns the index of the display-name column, or -1.
func (h Header) NameIndex() int { return h.indexContaining(tokenName) }

// CostIndex returns the index of the cost-basis column, or -1.
func (h Header) CostIndex() int { return h.indexContaining(tokenCost) }

// BuyDateIndex returns the index of the purchase-date column, or -1.
func (h Header) BuyDateIndex() int { return h.indexContaining(tokenBuyDate) }

// QuantityIndex returns the index of the quantity column, or -1. Stock
// tables count 数量 (shares) while fund tables count 份额 (units).
func (h Header) QuantityIndex() int {
	for i, name := range h {
		if strings.Contains(name, tokenQuantity) || strings.Contains(name, tokenShares) {
			return i
		}
	}
	return -1
}

// MarketValueIndex returns the index of the market-value column, or -1.
// The header text varies by unit suffix (市值, 市值(万), 市值(万USD), ...),
// so a substring match is used.
func (h Header) MarketValueIndex() int { return h.indexContaining(tokenMarketValue) }

// WanMarketValue reports whether the market-value column is expressed in
// ten-thousand units.
func (h Header) WanMarketValue() bool {
	if i := h.MarketValueIndex(); i >= 0 {
		return strings.Contains(h[i], tokenWan)
	}
	return false
}

func (h Header) indexContaining(token string) int {
	for i, name := range h {
		if strings.Contains(name, token) {
			return i
		}
	}
	return -1
}

// splitCells splits a table line on the cell delimiter, discarding the
// empty fragments produced by the outer pipes and trimming each cell.
// Markdown tables are not column-width sensitive, so trimming is safe.
func splitCells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
