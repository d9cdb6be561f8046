package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/shopspring/decimal"
)

func TestResolveHoldingsPath(t *testing.T) {
	t.Setenv("AIA_HOLDINGS", "")

	// Flag wins over everything.
	*holdingsFile = "/tmp/explicit.md"
	if got, err := ResolveHoldingsPath(); err != nil || got != "/tmp/explicit.md" {
		t.Errorf("ResolveHoldingsPath() = %q, %v", got, err)
	}
	*holdingsFile = ""

	// Then the environment.
	t.Setenv("AIA_HOLDINGS", "/tmp/env.md")
	if got, err := ResolveHoldingsPath(); err != nil || got != "/tmp/env.md" {
		t.Errorf("ResolveHoldingsPath() = %q, %v", got, err)
	}
	t.Setenv("AIA_HOLDINGS", "")

	// Then the standard locations relative to the working directory.
	dir := t.TempDir()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(oldwd) })
	if _, err := ResolveHoldingsPath(); err == nil {
		t.Error("expected an error with no ledger anywhere")
	}
	if err := os.MkdirAll(filepath.Join(dir, "Config"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Config", "Holdings.md"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if got, err := ResolveHoldingsPath(); err != nil || got != "Config/Holdings.md" {
		t.Errorf("ResolveHoldingsPath() = %q, %v", got, err)
	}
}

func TestUpdateSummary(t *testing.T) {
	records := []holdings.Record{
		{Code: "600519", Quantity: decimal.NewFromInt(10), Section: holdings.SectionAShare},
		{Code: "000858", Quantity: decimal.NewFromInt(100), Section: holdings.SectionAShare},
		{Code: "AAPL", Ticker: "AAPL", Quantity: decimal.NewFromInt(10), Section: holdings.SectionUS},
	}
	cache := holdings.Cache{
		"600519": {Price: decimal.RequireFromString("1700.00")},
		"AAPL":   {Price: decimal.RequireFromString("170.00")},
	}

	summary := updateSummary(records, cache)

	if !strings.Contains(summary, "| A-share | 2 | 1 |") {
		t.Errorf("summary missing the A-share line:\n%s", summary)
	}
	if !strings.Contains(summary, "| US | 1 | 1 |") {
		t.Errorf("summary missing the US line:\n%s", summary)
	}
	if strings.Contains(summary, "| HK |") {
		t.Errorf("summary must skip empty sections:\n%s", summary)
	}
	// 1700 x 10 in CNY.
	if !strings.Contains(summary, "17,000.00") {
		t.Errorf("summary missing the A-share market value:\n%s", summary)
	}
}
