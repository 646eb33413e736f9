package narratives

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/narratives", r.URL.Path)
		w.Write([]byte(`{"narratives":[{"name":"DeFi","confidence":"HIGH","direction":"ACCELERATING","explanation":"x","supporting_signals":["a","b"]}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result := client.Fetch(context.Background())

	assert.False(t, result.Degraded)
	require.Len(t, result.Narratives, 1)
	assert.Equal(t, "DeFi", result.Narratives[0].Name)
	assert.Equal(t, []string{"a", "b"}, result.Narratives[0].SupportingSignals)
}

func TestFetch_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"narratives":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result := client.Fetch(context.Background())

	assert.False(t, result.Degraded)
	assert.NotNil(t, result.Narratives)
	assert.Empty(t, result.Narratives)
}

func TestFetch_MissingFieldDefaultsToEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result := client.Fetch(context.Background())

	assert.False(t, result.Degraded)
	assert.NotNil(t, result.Narratives)
	assert.Empty(t, result.Narratives)
}

func TestFetch_Non2xxDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result := client.Fetch(context.Background())

	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.Reason)
	assert.NotNil(t, result.Narratives)
	assert.Empty(t, result.Narratives)
}

func TestFetch_MalformedPayloadDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["not","an","object"]`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	result := client.Fetch(context.Background())

	assert.True(t, result.Degraded)
	assert.Empty(t, result.Narratives)
}

func TestFetch_UnreachableDegrades(t *testing.T) {
	// Grab a port that nothing listens on.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(Config{BaseURL: url, Timeout: 500 * time.Millisecond})
	result := client.Fetch(context.Background())

	assert.True(t, result.Degraded)
	assert.NotNil(t, result.Narratives)
	assert.Empty(t, result.Narratives)
}

func TestFetch_BreakerSkipsCallsWhenOpen(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL})
	for i := 0; i < 10; i++ {
		result := client.Fetch(context.Background())
		assert.True(t, result.Degraded)
	}

	// Breaker trips after 5 consecutive failures; the rest never hit the wire.
	assert.Equal(t, 5, hits)
}
