package holdings

import (
	"testing"

	"github.com/SunnRayy/ai-investment-advisor/date"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDecodeRowStock(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 市场 | 成本价 | 持仓数量 | 现价 | 市值 | 持仓占比 | 盈亏 |")
	rec, ok := DecodeRow(SectionAShare, h, "| 600519 | 贵州茅台 | 沪A | 1650.00 | 10 | 1700.00 | 17000.00 | 50% | +3.03% |")
	if !ok {
		t.Fatal("row did not decode")
	}
	if rec.Code != "600519" || rec.Name != "贵州茅台" {
		t.Errorf("code/name = %q/%q", rec.Code, rec.Name)
	}
	if !rec.Cost.Equal(dec("1650.00")) || !rec.Quantity.Equal(dec("10")) {
		t.Errorf("cost/quantity = %s/%s", rec.Cost, rec.Quantity)
	}
	if !rec.MarketValue.Equal(dec("17000.00")) {
		t.Errorf("market value = %s, want 17000.00", rec.MarketValue)
	}
	if !rec.BuyDate.Equal(date.New(2023, 1, 1)) {
		t.Errorf("buy date = %s, want default sentinel", rec.BuyDate)
	}
}

func TestDecodeRowFundUsesShareColumn(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 类型 | 成立日 | 成本价 | 持仓份额 | 净值 | 买入日期 |")
	rec, ok := DecodeRow(SectionFund, h, "| 110011 | 易方达中小盘 | 混合型 | 2008-01-01 | 2.500 | 1000.00 | 3.000 | 2024-05-06 |")
	if !ok {
		t.Fatal("row did not decode")
	}
	if !rec.Quantity.Equal(dec("1000.00")) {
		t.Errorf("quantity = %s, want 1000.00 (from 份额)", rec.Quantity)
	}
	if !rec.Cost.Equal(dec("2.500")) {
		t.Errorf("cost = %s, want 2.500", rec.Cost)
	}
	if !rec.BuyDate.Equal(date.New(2024, 5, 6)) {
		t.Errorf("buy date = %s, want 2024-05-06", rec.BuyDate)
	}
}

func TestDecodeRowUS(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 市场 | 成本价 | 持仓数量 | 市值(万USD) | 买入日期 |")

	rec, ok := DecodeRow(SectionUS, h, "| RSU_AMZN | Amazon | US | 0.00 | 50 | 0.65 | 2023-06-01 |")
	if !ok {
		t.Fatal("row did not decode")
	}
	if rec.Code != "RSU_AMZN" {
		t.Errorf("code = %q; the RSU prefix must be preserved", rec.Code)
	}
	if rec.Ticker != "AMZN" || !rec.IsRSU {
		t.Errorf("ticker/isRSU = %q/%v, want AMZN/true", rec.Ticker, rec.IsRSU)
	}
	// 万USD cell: 0.65 means 6500 USD.
	if !rec.MarketValue.Equal(dec("6500")) {
		t.Errorf("market value = %s, want 6500", rec.MarketValue)
	}
}

func TestDecodeRowPlaceholders(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 成本价 | 持仓数量 | 市值 | 买入日期 |")
	rec, ok := DecodeRow(SectionAShare, h, "| 000858 | 五粮液 | - |  | - | - |")
	if !ok {
		t.Fatal("placeholder row did not decode")
	}
	if !rec.Cost.IsZero() || !rec.Quantity.IsZero() || !rec.MarketValue.IsZero() {
		t.Errorf("placeholders must coerce to zero, got cost=%s qty=%s mv=%s", rec.Cost, rec.Quantity, rec.MarketValue)
	}
	if !rec.BuyDate.Equal(date.New(2023, 1, 1)) {
		t.Errorf("buy date = %s, want default sentinel", rec.BuyDate)
	}
}

func TestDecodeRowFailures(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 成本价 | 持仓数量 | 市值 |")
	tests := []struct {
		name string
		line string
	}{
		{"fewer cells than header", "| 600519 | 贵州茅台 | 1650.00 |"},
		{"unparseable quantity", "| 600519 | 贵州茅台 | 1650.00 | ten | 17000.00 |"},
		{"unparseable cost", "| 600519 | 贵州茅台 | n/a | 10 | 17000.00 |"},
		{"empty code", "|  | 贵州茅台 | 1650.00 | 10 | 17000.00 |"},
	}
	for _, tt := range tests {
		if _, ok := DecodeRow(SectionAShare, h, tt.line); ok {
			t.Errorf("%s: decoded, want failure", tt.name)
		}
	}
}

func TestDecodeRowThousandsSeparators(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 成本价 | 持仓数量 | 市值 |")
	rec, ok := DecodeRow(SectionAShare, h, "| 600519 | 贵州茅台 | 1,650.00 | 1,000 | 17,000.00 |")
	if !ok {
		t.Fatal("row did not decode")
	}
	if !rec.Quantity.Equal(dec("1000")) {
		t.Errorf("quantity = %s, want 1000", rec.Quantity)
	}
}

func TestRewriteMarketValueUnits(t *testing.T) {
	tests := []struct {
		name   string
		header string
		line   string
		value  string
		want   string
	}{
		{
			name:   "wan below 100 keeps two decimals",
			header: "| 代码 | 名称 | 市场 | 成本价 | 持仓数量 | 市值(万USD) | 买入日期 |",
			line:   "| AAPL | Apple | US | 150.00 | 10 | 0.00 | 2023-01-01 |",
			value:  "1700", // price 170 x qty 10
			want:   "| AAPL | Apple | US | 150.00 | 10 | 0.17 | 2023-01-01 |\n",
		},
		{
			name:   "wan at or above 100 renders as integer",
			header: "| 代码 | 名称 | 市场 | 成本价 | 持仓数量 | 市值(万USD) | 买入日期 |",
			line:   "| MSFT | Microsoft | US | 300.00 | 100 | 0.00 | 2023-01-01 |",
			value:  "1700000", // price 17000 x qty 100
			want:   "| MSFT | Microsoft | US | 300.00 | 100 | 170 | 2023-01-01 |\n",
		},
		{
			name:   "absolute units always two decimals",
			header: "| 代码 | 名称 | 成本价 | 持仓数量 | 市值 |",
			line:   "| 600519 | 贵州茅台 | 1650.00 | 10 | 16500.00 |",
			value:  "17000",
			want:   "| 600519 | 贵州茅台 | 1650.00 | 10 | 17000.00 |\n",
		},
	}
	for _, tt := range tests {
		h := ParseHeader(tt.header)
		got, ok := RewriteMarketValue(h, tt.line, dec(tt.value))
		if !ok {
			t.Errorf("%s: rewrite failed", tt.name)
			continue
		}
		if got != tt.want {
			t.Errorf("%s:\n got %q\nwant %q", tt.name, got, tt.want)
		}
	}
}

func TestRewriteMarketValueMissingColumn(t *testing.T) {
	h := ParseHeader("| 代码 | 名称 | 成本价 | 持仓数量 |")
	line := "| 600519 | 贵州茅台 | 1650.00 | 10 |"
	got, ok := RewriteMarketValue(h, line, dec("17000"))
	if ok {
		t.Error("rewrite without a market-value column must fail")
	}
	if got != line {
		t.Errorf("failed rewrite must return the original line, got %q", got)
	}
}
