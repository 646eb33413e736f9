package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
)

// ServiceInfo handles GET / — a static description of the service. No I/O.
func (h *Handlers) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	response := httpContracts.ServiceInfoResponse{
		Service:     "alphawatch",
		Version:     h.deps.Version,
		Description: "Narrative-driven alpha scanner for Solana tokens",
		Endpoints: []string{
			"GET /",
			"GET /health",
			"GET /narratives",
			"GET /alpha",
			"GET /wallet",
			"GET /prices",
			"GET /metrics",
			"POST /analyze",
		},
	}

	h.writeJSON(w, http.StatusOK, response)
}

// Health handles GET /health endpoint
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	response := httpContracts.HealthResponse{
		Status:    "healthy",
		Wallet:    h.deps.Identity.Address.String(),
		Timestamp: time.Now().UTC(),
	}

	h.writeJSON(w, http.StatusOK, response)
}
