// Package eastmoney fetches mainland-China and Hong-Kong quotes from the
// Eastmoney push2 API, and open-fund NAV estimates from the fundgz
// endpoint.
package eastmoney

import (
	"fmt"
	"net/http"
	"time"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/patrickmn/go-cache"
)

// Production endpoints.
const (
	DefaultBaseURL     = "https://push2.eastmoney.com"
	DefaultFundBaseURL = "https://fundgz.1234567.com.cn"
)

const quoteTTL = 60 * time.Second

// Client queries stock and ETF quotes. It serves A-shares, Shanghai and
// Shenzhen ETFs, and Hong-Kong stocks, routed by the code shape.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	quotes *cache.Cache
}

// New returns a client for the production endpoint.
func New() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		quotes:     cache.New(quoteTTL, 5*time.Minute),
	}
}

// secid maps a security code to the push2 market-prefixed id: 5-digit
// codes are Hong-Kong (market 116); 6-digit codes starting with 6, 9 or 5
// are Shanghai (market 1), everything else Shenzhen (market 0).
func secid(code string) string {
	if len(code) == 5 {
		return "116." + code
	}
	if code != "" {
		switch code[0] {
		case '6', '9', '5':
			return "1." + code
		}
	}
	return "0." + code
}

// Quote fetches the current quote for a stock or ETF code. The code is
// expected in its zero-padded form (6 digits CN, 5 digits HK).
func (c *Client) Quote(code string) (holdings.Quote, error) {
	if code == "" {
		return holdings.Quote{}, fmt.Errorf("eastmoney: empty code")
	}
	if c.quotes != nil {
		if cached, ok := c.quotes.Get(code); ok {
			return cached.(holdings.Quote), nil
		}
	}

	// fltt=2 asks for plain floats; suspended fields come back as "-".
	addr := fmt.Sprintf("%s/api/qt/stock/get?invt=2&fltt=2&secid=%s&fields=f43,f44,f45,f46,f60,f169,f170,f162,f167,f116",
		c.BaseURL, secid(code))

	var jobj any
	if err := jwget(c.HTTPClient, addr, &jobj); err != nil {
		return holdings.Quote{}, fmt.Errorf("eastmoney: quote %s: %w", code, err)
	}

	price, ok := jnum(jobj, "$.data.f43")
	if !ok || !price.IsPositive() {
		return holdings.Quote{}, fmt.Errorf("eastmoney: no quote for %s", code)
	}

	quote := holdings.Quote{Price: price, Source: "eastmoney"}
	quote.High, _ = jnum(jobj, "$.data.f44")
	quote.Low, _ = jnum(jobj, "$.data.f45")
	quote.Open, _ = jnum(jobj, "$.data.f46")
	quote.PrevClose, _ = jnum(jobj, "$.data.f60")
	quote.Change, _ = jnum(jobj, "$.data.f169")
	quote.ChangePct, _ = jnum(jobj, "$.data.f170")
	quote.PETTM, _ = jnum(jobj, "$.data.f162")
	quote.PB, _ = jnum(jobj, "$.data.f167")
	quote.MarketCap, _ = jnum(jobj, "$.data.f116")

	if c.quotes != nil {
		c.quotes.Set(code, quote, cache.DefaultExpiration)
	}
	return quote, nil
}
