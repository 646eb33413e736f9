package handlers

import (
	"net/http"
	"time"

	httpContracts "github.com/alphawatch/alphawatch/internal/http"
	"github.com/alphawatch/alphawatch/internal/report"
	"github.com/alphawatch/alphawatch/internal/telemetry/metrics"
)

// topNarrativeCount is how many narrative labels the composite report lists.
const topNarrativeCount = 3

// Analyze handles POST /analyze — the full pipeline. The wallet snapshot is
// independent of the narrative→score→price chain, so it runs concurrently.
func (h *Handlers) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	walletCh := make(chan httpContracts.WalletResponse, 1)
	go func() {
		stats, err := h.deps.Wallet.Stats(ctx, h.deps.Identity.Address)
		resp := httpContracts.WalletResponse{Stats: stats}
		if err != nil {
			resp.Error = err.Error()
		}
		walletCh <- resp
	}()

	feed := h.deps.Feed.Fetch(ctx)
	opps := h.deps.Scorer.Score(feed.Narratives)
	for _, opp := range opps {
		metrics.RecordOpportunity(opp.Action)
	}

	priceMap := h.deps.Prices.Fetch(ctx, report.Mints(opps))

	response := httpContracts.AnalyzeResponse{
		NarrativesAnalyzed: len(feed.Narratives),
		OpportunitiesFound: len(opps),
		TopNarratives:      report.TopNarratives(feed.Narratives, topNarrativeCount),
		Opportunities:      report.Enrich(opps, priceMap),
		Wallet:             <-walletCh,
		Summary:            report.Summary(opps),
		Timestamp:          time.Now().UTC(),
	}

	h.writeJSON(w, http.StatusOK, response)
}
