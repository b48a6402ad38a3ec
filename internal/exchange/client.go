package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/frostguard/frostguard/internal/currency"
)

// Table holds the value of one unit of a base currency in every other currency.
type Table map[currency.Code]decimal.Decimal

var ErrMalformedResponse = errors.New("malformed exchange rate response")

// Client talks to an exchangerate-api compatible service:
// GET {baseURL}/{apiKey}/latest/{base} -> {"conversion_rates": {"BRL": 5.1, ...}}.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Result          string                     `json:"result"`
	ErrorType       string                     `json:"error-type"`
	ConversionRates map[string]decimal.Decimal `json:"conversion_rates"`
}

// Latest fetches the full conversion table for base.
func (c *Client) Latest(ctx context.Context, base currency.Code) (Table, error) {
	endpoint := fmt.Sprintf("%s/%s/latest/%s", c.baseURL, url.PathEscape(c.apiKey), url.PathEscape(string(base)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for base %s", resp.StatusCode, base)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if body.Result != "" && body.Result != "success" {
		return nil, fmt.Errorf("%w: result %q (%s)", ErrMalformedResponse, body.Result, body.ErrorType)
	}

	if len(body.ConversionRates) == 0 {
		return nil, fmt.Errorf("%w: no conversion rates", ErrMalformedResponse)
	}

	table := make(Table, len(body.ConversionRates))
	for code, rate := range body.ConversionRates {
		table[currency.Code(strings.ToUpper(code))] = rate
	}

	return table, nil
}
