// Package narratives fetches trend records from the upstream narrative feed.
package narratives

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker"

	"github.com/alphawatch/alphawatch/internal/models"
	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
)

// Config holds narrative feed settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Result is what a fetch always produces: a usable (possibly empty) narrative
// slice. When the feed is unreachable or returns garbage, Degraded is set and
// Reason says why — callers never see an error.
type Result struct {
	Narratives []models.Narrative
	Degraded   bool
	Reason     string
}

// Client polls the narrative feed. Failures degrade to an empty Result; there
// are no retries, and a tripped breaker skips the network call entirely.
type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

// NewClient creates a narrative feed client.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "narratives",
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

// Fetch returns the current narrative set.
func (c *Client) Fetch(ctx context.Context) Result {
	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		metrics.RecordUpstream("narratives", false)
		log.Warn().Err(err).Str("url", c.baseURL).Msg("narrative feed unavailable, returning empty set")
		return Result{Narratives: []models.Narrative{}, Degraded: true, Reason: err.Error()}
	}

	metrics.RecordUpstream("narratives", true)
	return Result{Narratives: out.([]models.Narrative)}
}

func (c *Client) fetch(ctx context.Context) ([]models.Narrative, error) {
	url := c.baseURL + "/narratives"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
		Narratives []models.Narrative `json:"narratives"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode narrative feed: %w", err)
	}

	if payload.Narratives == nil {
		payload.Narratives = []models.Narrative{}
	}
	return payload.Narratives, nil
}
