// Package cmd implements the CLI application that maintains the holdings
// ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/SunnRayy/ai-investment-advisor/eastmoney"
	"github.com/SunnRayy/ai-investment-advisor/finnhub"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "ledger")
	c.Register(&exportCmd{}, "ledger")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var holdingsFile = flag.String("holdings-file", "", "Path to the Holdings.md ledger (default: discovered, see 'aia topic holdings-format')")
var finnhubKey = flag.String("finnhub-api-key", "", "Finnhub API key (default: FINNHUB_API_KEY environment variable)")

// Candidate ledger locations relative to the working directory, tried in
// order when no explicit path is given.
var defaultHoldingsPaths = []string{
	"股市信息/Config/Holdings.md",
	"Config/Holdings.md",
}

// ResolveHoldingsPath locates the ledger file: the -holdings-file flag,
// then $AIA_HOLDINGS, then the standard locations.
func ResolveHoldingsPath() (string, error) {
	if *holdingsFile != "" {
		return *holdingsFile, nil
	}
	if path := os.Getenv("AIA_HOLDINGS"); path != "" {
		return path, nil
	}
	for _, candidate := range defaultHoldingsPaths {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("holdings file not found; use -holdings-file or set AIA_HOLDINGS")
}

func finnhubAPIKey() string {
	if *finnhubKey != "" {
		return *finnhubKey
	}
	return os.Getenv("FINNHUB_API_KEY")
}

// NewFetcher wires the market-data providers. Without a Finnhub key the
// US market is left unquoted and those rows pass through unchanged.
func NewFetcher() *holdings.Fetcher {
	stocks := eastmoney.New()
	fetcher := &holdings.Fetcher{
		CN:   stocks,
		HK:   stocks,
		Fund: eastmoney.NewFund(),
	}
	if key := finnhubAPIKey(); key != "" {
		fetcher.US = finnhub.New(key)
	} else {
		fmt.Fprintln(os.Stderr, "warning: no Finnhub API key, skipping US quotes")
	}
	return fetcher
}
