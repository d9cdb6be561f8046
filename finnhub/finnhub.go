// Package finnhub fetches US stock quotes from the finnhub.io REST API.
package finnhub

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	holdings "github.com/SunnRayy/ai-investment-advisor"
	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://finnhub.io/api/v1"

// quoteTTL bounds how often the same symbol is re-fetched within a run.
const quoteTTL = 60 * time.Second

// Client queries finnhub. Quotes are cached in memory for a short TTL so
// that repeated lookups of the same symbol in one run cost one request.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client

	quotes *cache.Cache
}

// New returns a client for the production endpoint.
func New(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		quotes:     cache.New(quoteTTL, 5*time.Minute),
	}
}

// Quote fetches the current quote for a US ticker.
func (c *Client) Quote(symbol string) (holdings.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return holdings.Quote{}, fmt.Errorf("finnhub: empty symbol")
	}
	if c.quotes != nil {
		if cached, ok := c.quotes.Get(symbol); ok {
			return cached.(holdings.Quote), nil
		}
	}

	// https://finnhub.io/docs/api/quote
	addr := fmt.Sprintf("%s/quote?symbol=%s&token=%s", c.BaseURL, symbol, c.APIKey)
	var payload struct {
		Current   decimal.Decimal `json:"c"`
		Change    decimal.Decimal `json:"d"`
		ChangePct decimal.Decimal `json:"dp"`
		High      decimal.Decimal `json:"h"`
		Low       decimal.Decimal `json:"l"`
		Open      decimal.Decimal `json:"o"`
		PrevClose decimal.Decimal `json:"pc"`
	}
	if err := jwget(c.HTTPClient, addr, &payload); err != nil {
		return holdings.Quote{}, fmt.Errorf("finnhub: quote %s: %w", symbol, err)
	}
	if !payload.Current.IsPositive() {
		// Finnhub answers all-zero for unknown symbols.
		return holdings.Quote{}, fmt.Errorf("finnhub: no quote for %s", symbol)
	}

	quote := holdings.Quote{
		Price:     payload.Current,
		Change:    payload.Change,
		ChangePct: payload.ChangePct,
		Open:      payload.Open,
		High:      payload.High,
		Low:       payload.Low,
		PrevClose: payload.PrevClose,
		Source:    "finnhub",
	}
	c.fillFundamentals(symbol, &quote)

	if c.quotes != nil {
		c.quotes.Set(symbol, quote, cache.DefaultExpiration)
	}
	return quote, nil
}

// fillFundamentals adds pe/pb/market-cap from the basic metrics endpoint.
// Fundamentals are best-effort: a failure leaves them zero.
func (c *Client) fillFundamentals(symbol string, q *holdings.Quote) {
	addr := fmt.Sprintf("%s/stock/metric?symbol=%s&metric=all&token=%s", c.BaseURL, symbol, c.APIKey)
	var payload struct {
		Metric struct {
			PETTM     decimal.Decimal `json:"peTTM"`
			PB        decimal.Decimal `json:"pb"`
			MarketCap decimal.Decimal `json:"marketCapitalization"`
		} `json:"metric"`
	}
	if err := jwget(c.HTTPClient, addr, &payload); err != nil {
		return
	}
	q.PETTM = payload.Metric.PETTM
	q.PB = payload.Metric.PB
	q.MarketCap = payload.Metric.MarketCap
}
