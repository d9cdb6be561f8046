package holdings

import "strings"

// LineKind classifies one line of the ledger document.
type LineKind int

const (
	// LineText is prose, blank space, or anything else outside a table.
	LineText LineKind = iota
	// LineSection is a secondary heading introducing a section.
	LineSection
	// LineHeader is a table header row (contains the code column).
	LineHeader
	// LineSeparator is the dash-run row between a header and its data.
	LineSeparator
	// LineRow is a table data row under an active header.
	LineRow
)

const (
	headingMarker = "## "
	tableMarker   = "|"
	separatorRun  = "---"
)

// Scanner is a single-pass, line-oriented classifier for the ledger
// document. It tracks the active section and the header of the table
// currently being traversed. The zero value is ready to use.
//
// A heading line updates the section but deliberately does not clear the
// active header: only a line outside a table does. A document missing a
// blank line between two tables can therefore leak one table's header into
// the next section's rows. Downstream tooling tolerates that document
// shape, so the scanner keeps the behavior rather than fixing it.
type Scanner struct {
	Section Section
	Header  Header
}

// Scan classifies the next line and updates the scanner state.
func (s *Scanner) Scan(line string) LineKind {
	stripped := strings.TrimSpace(line)

	if strings.HasPrefix(stripped, headingMarker) {
		s.Section = parseSection(stripped)
		return LineSection
	}

	if strings.HasPrefix(stripped, tableMarker) {
		switch {
		case strings.Contains(stripped, separatorRun):
			// Structural, but it does not terminate the header.
			return LineSeparator
		case strings.Contains(stripped, tokenCode):
			s.Header = ParseHeader(stripped)
			return LineHeader
		case s.Header != nil:
			return LineRow
		default:
			// A pipe-prefixed line with no header in sight is inert text.
			return LineText
		}
	}

	// Anything else ends the current table block.
	s.Header = nil
	s.Section = SectionOther
	return LineText
}
