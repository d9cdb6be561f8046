// Package holdings maintains a personal investment ledger kept as a
// markdown document (Holdings.md).
//
// The document is split into asset-class sections (A-share, Hong-Kong,
// fund, US equity), each followed by a table with its own column layout
// and units. The package locates those tables, decodes their rows,
// enriches the market-value column with freshly fetched quotes, and can
// export the whole document as a normalized JSON snapshot.
//
// The parser is deliberately not a general markdown parser: it only
// understands the specific table shape this application produces, and it
// reproduces the historical tolerance of that format (malformed rows are
// passed through untouched rather than dropped or repaired).
package holdings
