// Package handlers implements the HTTP endpoint handlers.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gagliardetto/solana-go"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
	"github.com/alphawatch/alphawatch/internal/narratives"
	"github.com/alphawatch/alphawatch/internal/scoring"
	"github.com/alphawatch/alphawatch/internal/tokens"
	"github.com/alphawatch/alphawatch/internal/wallet"
)

// NarrativeFetcher supplies the current narrative set. Implementations never
// fail; degraded fetches come back as an empty Result.
type NarrativeFetcher interface {
	Fetch(ctx context.Context) narratives.Result
}

// PriceFetcher supplies spot prices by mint. The returned map may be partial
// or empty.
type PriceFetcher interface {
	Fetch(ctx context.Context, mints []string) map[string]float64
}

// WalletStatser supplies wallet snapshots over RPC.
type WalletStatser interface {
	Stats(ctx context.Context, address solana.PublicKey) (wallet.Stats, error)
}

// Deps wires the handlers to the rest of the service.
type Deps struct {
	Version  string
	Feed     NarrativeFetcher
	Prices   PriceFetcher
	Wallet   WalletStatser
	Identity wallet.Identity
	Scorer   *scoring.Scorer
	Table    *tokens.Table
}

// Handlers manages all HTTP endpoint handlers.
type Handlers struct {
	deps Deps
}

// NewHandlers creates a new handlers instance.
func NewHandlers(deps Deps) *Handlers {
	return &Handlers{deps: deps}
}

// writeJSON writes JSON response with proper error handling
func (h *Handlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"json_encoding_failed"}`, http.StatusInternalServerError)
	}
}

// writeError writes standardized error response
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	requestID := r.Context().Value("request_id")
	if requestID == nil {
		requestID = "unknown"
	}

	errorResp := httpContracts.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Code:      code,
		RequestID: requestID.(string),
		Timestamp: time.Now().UTC(),
	}

	h.writeJSON(w, status, errorResp)
}

// NotFound handles 404 responses
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, http.StatusNotFound, "endpoint_not_found",
		"The requested endpoint does not exist")
}
