package holdings

import (
	"regexp"
	"strings"
)

// rsuPrefix marks a holding code as a restricted stock unit grant. The
// underlying ticker follows the prefix; the prefixed code stays in the
// ledger so a grant is never confused with a directly held position.
const rsuPrefix = "RSU_"

// usTickerRe matches US tickers: 1 to 5 capital letters with an optional
// dotted share class (BRK.B). CN-style numeric codes never match.
var usTickerRe = regexp.MustCompile(`^[A-Z]{1,5}(\.[A-Z])?$`)

// SplitRSU returns the underlying ticker of an RSU-prefixed code.
//
//	SplitRSU("RSU_AMZN") = ("AMZN", true)
//	SplitRSU("AAPL")     = ("AAPL", false)
func SplitRSU(code string) (underlying string, isRSU bool) {
	if rest, ok := strings.CutPrefix(code, rsuPrefix); ok {
		return rest, true
	}
	return code, false
}

// IsUSTicker reports whether code looks like a US ticker, after stripping
// an RSU prefix if present.
func IsUSTicker(code string) bool {
	if code == "" {
		return false
	}
	ticker, _ := SplitRSU(code)
	return usTickerRe.MatchString(strings.ToUpper(ticker))
}

// PadCode left-pads a purely numeric security code with zeros to the given
// width. It is how 5-digit Hong-Kong and 6-digit mainland-China lookup
// variants are derived. Non-numeric codes are returned unchanged, so the
// call is a safe no-op fallback rather than an error.
func PadCode(code string, width int) string {
	if code == "" {
		return code
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return code
		}
	}
	for len(code) < width {
		code = "0" + code
	}
	return code
}
