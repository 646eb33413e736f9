// Package http defines the JSON contracts served by the API.
package http

import (
	"time"

	"github.com/alphawatch/alphawatch/internal/models"
	"github.com/alphawatch/alphawatch/internal/report"
	"github.com/alphawatch/alphawatch/internal/wallet"
)

// ServiceInfoResponse describes the service on GET /.
type ServiceInfoResponse struct {
	Service     string   `json:"service"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Endpoints   []string `json:"endpoints"`
}

// HealthResponse reports liveness plus the service's own identity.
type HealthResponse struct {
	Status    string    `json:"status"`
	Wallet    string    `json:"wallet"`
	Timestamp time.Time `json:"timestamp"`
}

// NarrativesResponse is the unfiltered feed passthrough.
type NarrativesResponse struct {
	Narratives []models.Narrative `json:"narratives"`
	Count      int                `json:"count"`
}

// AlphaResponse carries the ranked, price-enriched opportunity list.
type AlphaResponse struct {
	Opportunities      []report.EnrichedOpportunity `json:"opportunities"`
	Count              int                          `json:"count"`
	AnalyzedNarratives int                          `json:"analyzed_narratives"`
	Timestamp          time.Time                    `json:"timestamp"`
}

// WalletResponse is a wallet snapshot. RPC failures surface in Error with a
// zeroed balance; the HTTP status stays 200.
type WalletResponse struct {
	wallet.Stats
	Error string `json:"error,omitempty"`
}

// PricesResponse maps every mint in the reference table to its price, with
// explicit nulls for prices the upstream could not supply.
type PricesResponse struct {
	Prices    map[string]*float64 `json:"prices"`
	Count     int                 `json:"count"`
	Timestamp time.Time           `json:"timestamp"`
}

// AnalyzeResponse is the composite report from the full pipeline.
type AnalyzeResponse struct {
	NarrativesAnalyzed int                          `json:"narratives_analyzed"`
	OpportunitiesFound int                          `json:"opportunities_found"`
	TopNarratives      []string                     `json:"top_narratives"`
	Opportunities      []report.EnrichedOpportunity `json:"opportunities"`
	Wallet             WalletResponse               `json:"wallet"`
	Summary            string                       `json:"summary"`
	Timestamp          time.Time                    `json:"timestamp"`
}

// ErrorResponse is the standardized error envelope (used for 404s and
// request-level failures only; upstream failures degrade inside their
// endpoint's normal response).
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Code      string    `json:"code"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}
