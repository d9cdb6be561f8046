package holdings

import "strings"

// Section identifies one asset-class partition of the ledger document.
type Section int

const (
	// SectionOther is any part of the document outside a known section.
	SectionOther Section = iota
	// SectionAShare covers mainland-China stocks and exchange-traded funds.
	SectionAShare
	// SectionHK covers Hong-Kong listed stocks.
	SectionHK
	// SectionFund covers open-end mutual funds.
	SectionFund
	// SectionUS covers US stocks and RSU grants.
	SectionUS
)

// The section heading substrings as they appear in the ledger document.
const (
	markerAShare = "A股"
	markerHK     = "港股"
	markerFund   = "基金"
	markerUS     = "美股"
)

func (s Section) String() string {
	switch s {
	case SectionAShare:
		return "A-share"
	case SectionHK:
		return "HK"
	case SectionFund:
		return "fund"
	case SectionUS:
		return "US"
	default:
		return "other"
	}
}

// parseSection maps a secondary heading line to its section. Headings that
// name none of the four known sections map to SectionOther.
func parseSection(heading string) Section {
	switch {
	case strings.Contains(heading, markerAShare):
		return SectionAShare
	case strings.Contains(heading, markerHK):
		return SectionHK
	case strings.Contains(heading, markerFund):
		return SectionFund
	case strings.Contains(heading, markerUS):
		return SectionUS
	default:
		return SectionOther
	}
}
