// Package prices fetches current token prices from the Jupiter price API.
package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
)

// Config holds price API settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client looks up spot prices by mint address. Callers must treat every price
// as optional: the returned map may be partial or empty, never nil.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a price API client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "prices",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Warn().Str("provider", name).Str("from", from.String()).Str("to", to.String()).
					Msg("circuit breaker state change")
			},
		}),
	}
}

// Fetch returns prices for the given mints. An empty mint set short-circuits
// to an empty map without touching the network (the upstream rejects empty
// ids queries). Any failure degrades to an empty map.
func (c *Client) Fetch(ctx context.Context, mints []string) map[string]float64 {
	if len(mints) == 0 {
		return map[string]float64{}
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx, mints)
	})
	if err != nil {
		metrics.RecordUpstream("prices", false)
		log.Warn().Err(err).Int("mints", len(mints)).Msg("price fetch failed, continuing without prices")
		return map[string]float64{}
	}

	metrics.RecordUpstream("prices", true)
	return out.(map[string]float64)
}

// priceEntry is one record in the API's data map. Prices arrive as decimal
// strings; entries for unknown mints come back as JSON null.
type priceEntry struct {
	ID    string `json:"id"`
	Price string `json:"price"`
}

func (c *Client) fetch(ctx context.Context, mints []string) (map[string]float64, error) {
	endpoint := fmt.Sprintf("%s?ids=%s", c.baseURL, url.QueryEscape(strings.Join(mints, ",")))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	var payload struct {
		Data map[string]*priceEntry `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode price response: %w", err)
	}

	result := make(map[string]float64, len(payload.Data))
	for mint, entry := range payload.Data {
		if entry == nil {
			continue
		}
		price, err := strconv.ParseFloat(entry.Price, 64)
		if err != nil {
			log.Debug().Str("mint", mint).Str("price", entry.Price).Msg("skipping unparseable price")
			continue
		}
		result[mint] = price
	}
	return result, nil
}
