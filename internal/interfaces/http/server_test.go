package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphawatch/alphawatch/internal/interfaces/http/handlers"
	"github.com/alphawatch/alphawatch/internal/narratives"
	"github.com/alphawatch/alphawatch/internal/prices"
	"github.com/alphawatch/alphawatch/internal/scoring"
	"github.com/alphawatch/alphawatch/internal/tokens"
	"github.com/alphawatch/alphawatch/internal/wallet"
)

// newTestServer wires real components against dead upstreams so every
// endpoint exercises its degraded path.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	id, err := wallet.LoadIdentity("")
	require.NoError(t, err)

	table := tokens.Default()
	deps := handlers.Deps{
		Version:  "test",
		Feed:     narratives.NewClient(narratives.Config{BaseURL: "http://127.0.0.1:1", Timeout: 250 * time.Millisecond}),
		Prices:   prices.NewClient(prices.Config{BaseURL: "http://127.0.0.1:1", Timeout: 250 * time.Millisecond}),
		Wallet:   wallet.NewStatsClient("http://127.0.0.1:1", "devnet"),
		Identity: id,
		Scorer:   scoring.NewScorer(table),
		Table:    table,
	}

	srv, err := NewServer(ServerConfig{Host: "127.0.0.1", Port: 0}, handlers.NewHandlers(deps))
	require.NoError(t, err)
	return srv
}

func (s *Server) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServer_HealthRoute(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/health")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestServer_NarrativesDegradeTo200(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/narratives")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"narratives":[],"count":0}`, rec.Body.String())
}

func TestServer_AlphaDegradesTo200(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/alpha")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Count              int `json:"count"`
		AnalyzedNarratives int `json:"analyzed_narratives"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Zero(t, resp.Count)
	assert.Zero(t, resp.AnalyzedNarratives)
}

func TestServer_WalletErrorInline(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/wallet")

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Address string  `json:"address"`
		Balance float64 `json:"balance"`
		Error   string  `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Address)
	assert.Zero(t, resp.Balance)
	assert.NotEmpty(t, resp.Error)
}

func TestServer_UnknownRouteReturnsErrorEnvelope(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/nope")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "endpoint_not_found")
}

func TestServer_AnalyzeRequiresPost(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(http.MethodGet, "/analyze")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = srv.do(http.MethodPost, "/analyze")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_MetricsExposition(t *testing.T) {
	srv := newTestServer(t)
	rec := srv.do(http.MethodGet, "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEqual(t, "application/json", rec.Header().Get("Content-Type"))
}
