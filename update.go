package holdings

import (
	"fmt"
	"os"
	"strings"
)

// This file drives the in-place market-value update of the ledger document.

// UpdateDocument rewrites the market-value cell of every data row whose
// code has a quote in the cache. Every other byte of the document passes
// through unchanged. The transform never fails: a row that cannot be
// decoded, matched, or re-encoded is simply emitted as-is.
//
// Running the transform twice with the same cache yields byte-identical
// output: the new cell value is derived from the quote and the quantity,
// never from the previous cell content.
func UpdateDocument(doc string, cache Cache) string {
	var out strings.Builder
	out.Grow(len(doc))

	var sc Scanner
	for _, line := range splitAfterLines(doc) {
		if sc.Scan(line) != LineRow {
			out.WriteString(line)
			continue
		}
		out.WriteString(updateRow(sc, line, cache))
	}
	return out.String()
}

// updateRow returns the rewritten row, or the original line when anything
// along the decode/lookup/encode path falls through.
func updateRow(sc Scanner, line string, cache Cache) string {
	rec, ok := DecodeRow(sc.Section, sc.Header, line)
	if !ok {
		return line
	}
	quote, ok := cache.Lookup(rec.Code)
	if !ok {
		return line
	}
	if !rec.Quantity.IsPositive() || !quote.Price.IsPositive() {
		return line
	}

	value := quote.Price.Mul(rec.Quantity)
	rewritten, ok := RewriteMarketValue(sc.Header, line, value)
	if !ok {
		return line
	}
	return rewritten
}

// UpdateFile loads the ledger, applies UpdateDocument, and writes the full
// result back. The file is read entirely before any mutation and written
// in one call, so no reader observes a half-updated document. Only I/O
// failures are reported.
func UpdateFile(path string, cache Cache) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot load ledger %q: %w", path, err)
	}
	updated := UpdateDocument(string(content), cache)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return fmt.Errorf("cannot save ledger %q: %w", path, err)
	}
	return nil
}

// splitAfterLines splits the document into lines with their terminators
// attached, so untouched lines round-trip byte for byte.
func splitAfterLines(doc string) []string {
	lines := strings.SplitAfter(doc, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
