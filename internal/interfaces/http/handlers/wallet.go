package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
)

// Wallet handles GET /wallet. RPC failures surface inline as an error field
// with a zeroed balance — never a non-2xx status.
func (h *Handlers) Wallet(w http.ResponseWriter, r *http.Request) {
	stats, err := h.deps.Wallet.Stats(r.Context(), h.deps.Identity.Address)

	response := httpContracts.WalletResponse{Stats: stats}
	if err != nil {
		log.Warn().Err(err).Str("address", stats.Address).Msg("wallet query failed")
		response.Error = err.Error()
	}

	h.writeJSON(w, http.StatusOK, response)
}
