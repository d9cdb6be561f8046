package eastmoney

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/shopspring/decimal"
)

// FundClient fetches open-fund NAV estimates from fundgz. The endpoint
// answers JSONP, so the payload is unwrapped before decoding.
type FundClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewFund returns a fund client for the production endpoint.
func NewFund() *FundClient {
	return &FundClient{
		BaseURL:    DefaultFundBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

const (
	jsonpPrefix = "jsonpgz("
	jsonpSuffix = ");"
)

// Quote fetches the intraday NAV estimate for a fund code, falling back
// to the last committed unit NAV when no estimate is published.
func (c *FundClient) Quote(code string) (holdings.Quote, error) {
	if code == "" {
		return holdings.Quote{}, fmt.Errorf("fundgz: empty code")
	}

	addr := fmt.Sprintf("%s/js/%s.js", c.BaseURL, code)
	body, err := wget(c.HTTPClient, addr)
	if err != nil {
		return holdings.Quote{}, fmt.Errorf("fundgz: fund %s: %w", code, err)
	}

	payload := strings.TrimSpace(string(body))
	payload = strings.TrimPrefix(payload, jsonpPrefix)
	payload = strings.TrimSuffix(payload, jsonpSuffix)

	// {"fundcode":"110011","name":"...","dwjz":"2.9","gsz":"3.0","gszzl":"0.33","gztime":"..."}
	var fund struct {
		Code     string `json:"fundcode"`
		Name     string `json:"name"`
		UnitNAV  string `json:"dwjz"`  // last committed unit NAV
		Estimate string `json:"gsz"`   // intraday NAV estimate
		Change   string `json:"gszzl"` // estimate change percent
	}
	if err := json.Unmarshal([]byte(payload), &fund); err != nil {
		return holdings.Quote{}, fmt.Errorf("fundgz: fund %s: %w", code, err)
	}

	price, err := decimal.NewFromString(fund.Estimate)
	if err != nil || !price.IsPositive() {
		if price, err = decimal.NewFromString(fund.UnitNAV); err != nil {
			return holdings.Quote{}, fmt.Errorf("fundgz: no NAV for %s", code)
		}
	}
	if !price.IsPositive() {
		return holdings.Quote{}, fmt.Errorf("fundgz: no NAV for %s", code)
	}

	quote := holdings.Quote{Price: price, Source: "fundgz"}
	if pct, err := decimal.NewFromString(fund.Change); err == nil {
		quote.ChangePct = pct
	}
	return quote, nil
}
