package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/govalues/cash"
	"github.com/govalues/decimal"
)

// DefaultURL is the base URL of the Coinbase API.
const DefaultURL = "https://api.coinbase.com/v2"

// HTTPSource loads rates from an HTTP endpoint answering
// GET {url}/exchange-rates?currency=USD with a body like
//
//	{"data": {"currency": "USD", "rates": {"EUR": "0.91", "JPY": "151.2"}}}
//
// Rates are parsed as decimals, so no precision is lost to floats.
type HTTPSource struct {
	// url base API url
	url string

	client *http.Client
	logger log.Logger
}

// HTTPOption configures an HTTPSource.
type HTTPOption func(*HTTPSource)

// WithURL sets the base URL of the API.
func WithURL(u string) HTTPOption {
	return func(s *HTTPSource) {
		s.url = strings.TrimSuffix(u, "/")
	}
}

// WithClient sets the HTTP client used for requests.
func WithClient(c *http.Client) HTTPOption {
	return func(s *HTTPSource) {
		s.client = c
	}
}

// WithLogger sets the logger used to report requests and skipped rates.
func WithLogger(l log.Logger) HTTPOption {
	return func(s *HTTPSource) {
		s.logger = l
	}
}

// NewHTTPSource returns a source that queries [DefaultURL] with a
// 5 second timeout unless configured otherwise.
func NewHTTPSource(opts ...HTTPOption) *HTTPSource {
	s := &HTTPSource{
		url:    DefaultURL,
		client: &http.Client{Timeout: 5 * time.Second},
		logger: log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rates loads the current rates of the base currency.
// Rates that cannot be parsed as decimals are skipped.
func (s *HTTPSource) Rates(ctx context.Context, base cash.Currency) (Rates, error) {
	type response struct {
		Data struct {
			Currency string            `json:"currency"`
			Rates    map[string]string `json:"rates"` // maps currency codes to rates
		} `json:"data"`
	}

	u := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, url.QueryEscape(base.Code()))
	level.Debug(s.logger).Log("msg", "loading exchange rates", "currency", base, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("http get: unexpected status %v", resp.Status)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	if !strings.EqualFold(body.Data.Currency, base.Code()) {
		return nil, fmt.Errorf("rates are for %q, not %v", body.Data.Currency, base)
	}

	rates := make(Rates, len(body.Data.Rates))
	for code, v := range body.Data.Rates {
		d, err := decimal.Parse(v)
		if err != nil || !d.IsPos() {
			level.Debug(s.logger).Log("msg", "skipping rate", "currency", code, "rate", v, "err", err)
			continue
		}
		rates[strings.ToUpper(code)] = d
	}
	return rates, nil
}
