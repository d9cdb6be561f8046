package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	dryRun bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh the market-value column of Holdings.md with live quotes"
}
func (*updateCmd) Usage() string {
	return `aia update [-n]

  Fetches live quotes for every holding and rewrites the market-value
  cell of each matched row in place. Rows without a matching quote are
  left untouched.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "fetch and report, but do not rewrite the ledger")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	path, err := ResolveHoldingsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	doc := string(content)

	records := holdings.ParseDocument(doc)
	cache := NewFetcher().BuildCache(records)

	if !c.dryRun {
		if err := holdings.UpdateFile(path, cache); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating ledger: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(updateSummary(records, cache))
	return subcommands.ExitSuccess
}

// updateSummary renders a per-section markdown recap of the run: how many
// positions matched a quote and their refreshed market value.
func updateSummary(records []holdings.Record, cache holdings.Cache) string {
	var b strings.Builder
	b.WriteString("# Holdings update\n\n")
	b.WriteString("| Section | Positions | Quoted | Market value |\n")
	b.WriteString("|---|---|---|---|\n")

	sections := []holdings.Section{
		holdings.SectionAShare, holdings.SectionHK, holdings.SectionFund, holdings.SectionUS,
	}
	for _, sec := range sections {
		var positions, quoted int
		total := holdings.Money{}
		for _, rec := range records {
			if rec.Section != sec {
				continue
			}
			positions++
			quote, ok := cache.Lookup(rec.Code)
			if !ok || !quote.Price.IsPositive() || !rec.Quantity.IsPositive() {
				continue
			}
			quoted++
			value := quote.Price.Mul(rec.Quantity)
			total = total.Add(holdings.M(value, holdings.SectionCurrency(sec)))
		}
		if positions == 0 {
			continue
		}
		value := "-"
		if !total.IsZero() {
			value = total.String()
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %s |\n", sec, positions, quoted, value)
	}
	return b.String()
}
