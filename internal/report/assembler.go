// Package report combines scorer output with price data into the response
// shapes the API serves.
package report

import (
	"fmt"
	"math"
	"sort"

	"github.com/alphawatch/alphawatch/internal/models"
)

// noAlphaSummary is returned when the scorer produced nothing.
const noAlphaSummary = "No high-confidence opportunities detected. Market in consolidation."

// EnrichedOpportunity is an opportunity plus per-mint prices. Every mint the
// opportunity references appears in TokenPrices; a nil value marks a price
// the upstream could not supply (serialized as JSON null, never omitted).
type EnrichedOpportunity struct {
	models.Opportunity
	TokenPrices map[string]*float64 `json:"token_prices"`
}

// Enrich attaches prices to each opportunity's token set.
func Enrich(opps []models.Opportunity, prices map[string]float64) []EnrichedOpportunity {
	enriched := make([]EnrichedOpportunity, 0, len(opps))
	for _, opp := range opps {
		enriched = append(enriched, EnrichedOpportunity{
			Opportunity: opp,
			TokenPrices: PriceMap(opp.Tokens, prices),
		})
	}
	return enriched
}

// PriceMap builds the per-mint price view: every requested mint is present,
// with nil standing in for prices the upstream did not supply.
func PriceMap(mints []string, prices map[string]float64) map[string]*float64 {
	out := make(map[string]*float64, len(mints))
	for _, mint := range mints {
		if price, ok := prices[mint]; ok {
			p := price
			out[mint] = &p
		} else {
			out[mint] = nil
		}
	}
	return out
}

// Summary produces the one-line report headline. Opportunities are already
// sorted, so the first entry is the top pick.
func Summary(opps []models.Opportunity) string {
	if len(opps) == 0 {
		return noAlphaSummary
	}

	top := opps[0]
	return fmt.Sprintf("Top alpha: %s → %s (%d%% confidence)",
		top.Narrative, top.Action, int(math.Round(top.Confidence*100)))
}

// Mints collects the sorted, de-duplicated union of every mint referenced by
// the given opportunities (the set handed to the price client).
func Mints(opps []models.Opportunity) []string {
	seen := make(map[string]struct{})
	for _, opp := range opps {
		for _, mint := range opp.Tokens {
			seen[mint] = struct{}{}
		}
	}

	mints := make([]string, 0, len(seen))
	for mint := range seen {
		mints = append(mints, mint)
	}
	sort.Strings(mints)
	return mints
}

// TopNarratives labels the first n narratives as "{name} [{confidence}]" for
// the composite analysis report.
func TopNarratives(narratives []models.Narrative, n int) []string {
	if n > len(narratives) {
		n = len(narratives)
	}

	labels := make([]string, 0, n)
	for _, nar := range narratives[:n] {
		labels = append(labels, fmt.Sprintf("%s [%s]", nar.Name, nar.Confidence))
	}
	return labels
}
