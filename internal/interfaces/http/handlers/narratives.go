package handlers

import (
	"net/http"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
)

// Narratives handles GET /narratives — the upstream feed, unfiltered. A
// degraded feed still yields 200 with an empty list.
func (h *Handlers) Narratives(w http.ResponseWriter, r *http.Request) {
	result := h.deps.Feed.Fetch(r.Context())

	response := httpContracts.NarrativesResponse{
		Narratives: result.Narratives,
		Count:      len(result.Narratives),
	}

	h.writeJSON(w, http.StatusOK, response)
}
