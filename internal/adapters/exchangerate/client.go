package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	portssvc "github.com/SscSPs/currency_bar/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public exchangerate.host endpoint.
const DefaultBaseURL = "https://api.exchangerate.host"

// convertResponse mirrors the /convert payload. Only Result is used for conversion.
type convertResponse struct {
	Motd *struct {
		Msg string `json:"msg"`
		URL string `json:"url"`
	} `json:"motd"`
	Success *bool `json:"success"`
	Query   struct {
		From   string          `json:"from"`
		To     string          `json:"to"`
		Amount decimal.Decimal `json:"amount"`
	} `json:"query"`
	Info struct {
		Rate decimal.NullDecimal `json:"rate"`
	} `json:"info"`
	Historical bool                `json:"historical"`
	Date       string              `json:"date"`
	Result     decimal.NullDecimal `json:"result"`
}

// Client calls the exchange-rate service's convert endpoint.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	limiter *rate.Limiter
}

// Option is a functional option for configuring the client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

// WithAPIKey sends access_key with every request.
func WithAPIKey(key string) Option {
	return func(cl *Client) {
		cl.apiKey = key
	}
}

// WithRateLimit caps outbound requests per second. A non-positive value disables limiting.
func WithRateLimit(rps float64) Option {
	return func(cl *Client) {
		if rps <= 0 {
			cl.limiter = nil
			return
		}
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		cl.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// NewClient creates a client for baseURL (DefaultBaseURL when empty) with the given request timeout.
func NewClient(baseURL string, timeout time.Duration, options ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, option := range options {
		option(c)
	}
	return c
}

var _ portssvc.RateConverter = (*Client)(nil)

// Convert returns amount converted from one currency to another, rounded by the service to two places.
// A response without a result yields the original amount. Transport errors, non-200 responses,
// explicit service failures and undecodable bodies return an error wrapping apperrors.ErrConversionFailed.
func (c *Client) Convert(ctx context.Context, from, to string, amount decimal.Decimal) (decimal.Decimal, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return decimal.Zero, fmt.Errorf("%w: rate limiter: %v", apperrors.ErrConversionFailed, err)
		}
	}

	params := url.Values{}
	params.Add("from", from)
	params.Add("to", to)
	params.Add("amount", amount.String())
	params.Add("places", "2")
	if c.apiKey != "" {
		params.Add("access_key", c.apiKey)
	}
	reqURL := fmt.Sprintf("%s/convert?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrConversionFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to send request: %w", apperrors.ErrConversionFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, fmt.Errorf("%w: unexpected status code: %d", apperrors.ErrConversionFailed, resp.StatusCode)
	}

	var response convertResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode response: %v", apperrors.ErrConversionFailed, err)
	}
	if response.Success != nil && !*response.Success {
		return decimal.Zero, fmt.Errorf("%w: service reported failure for %s to %s", apperrors.ErrConversionFailed, from, to)
	}

	if !response.Result.Valid {
		return amount, nil
	}
	return response.Result.Decimal, nil
}
