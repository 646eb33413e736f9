package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
	"github.com/alphawatch/alphawatch/internal/report"
	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
)

// Alpha handles GET /alpha — fetch, score, enrich with prices.
func (h *Handlers) Alpha(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	feed := h.deps.Feed.Fetch(ctx)
	opps := h.deps.Scorer.Score(feed.Narratives)
	for _, opp := range opps {
		metrics.RecordOpportunity(opp.Action)
	}

	priceMap := h.deps.Prices.Fetch(ctx, report.Mints(opps))

	response := httpContracts.AlphaResponse{
		Opportunities:      report.Enrich(opps, priceMap),
		Count:              len(opps),
		AnalyzedNarratives: len(feed.Narratives),
		Timestamp:          time.Now().UTC(),
	}

	h.writeJSON(w, http.StatusOK, response)
}
