package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
	"github.com/alphawatch/alphawatch/internal/report"
)

// Prices handles GET /prices — current prices for every mint in the
// reference table.
func (h *Handlers) Prices(w http.ResponseWriter, r *http.Request) {
	mints := h.deps.Table.AllMints()
	priceMap := h.deps.Prices.Fetch(r.Context(), mints)

	response := httpContracts.PricesResponse{
		Prices:    report.PriceMap(mints, priceMap),
		Count:     len(mints),
		Timestamp: time.Now().UTC(),
	}

	h.writeJSON(w, http.StatusOK, response)
}
