// Package scoring turns narrative records into ranked trading opportunities.
// The rule table is static: every opportunity's action, confidence, risk and
// allocation follow directly from the narrative's (confidence, direction)
// pair, so scoring is a pure function over its input.
package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alphawatch/alphawatch/internal/models"
	"github.com/alphawatch/alphawatch/internal/tokens"
)

// Fixed confidence weights assigned by the rule table.
const (
	scoreAccumulate = 0.85
	scoreDCA        = 0.60
	scoreWatchlist  = 0.40
)

// Scorer evaluates narratives against the rule table and resolves token
// exposure through the reference table.
type Scorer struct {
	table *tokens.Table
}

// NewScorer creates a scorer backed by the given token reference table.
func NewScorer(table *tokens.Table) *Scorer {
	return &Scorer{table: table}
}

// Score maps narratives to opportunities. Rules are evaluated per narrative,
// first match wins:
//
//	HIGH   + ACCELERATING -> ACCUMULATE (0.85, MEDIUM risk)
//	MEDIUM + ACCELERATING -> DCA        (0.60, LOW risk)
//	MEDIUM + anything     -> WATCHLIST  (0.40, LOW risk)
//
// LOW or unrecognized confidence produces no opportunity. The result is
// stable-sorted by confidence descending, so equal-confidence entries keep
// their feed order.
func (s *Scorer) Score(narratives []models.Narrative) []models.Opportunity {
	opps := make([]models.Opportunity, 0, len(narratives))

	for _, n := range narratives {
		switch {
		case n.Confidence == models.ConfidenceHigh && n.Direction == models.DirectionAccelerating:
			opps = append(opps, models.Opportunity{
				Narrative: n.Name,
				Action:    models.ActionAccumulate,
				Tokens:    s.table.Lookup(n.Name),
				Reasoning: fmt.Sprintf("%s is a high-confidence accelerating narrative with %d supporting signals. %s",
					n.Name, len(n.SupportingSignals), n.Explanation),
				Confidence:          scoreAccumulate,
				Risk:                models.RiskMedium,
				SuggestedAllocation: "5-10% of portfolio",
			})

		case n.Confidence == models.ConfidenceMedium && n.Direction == models.DirectionAccelerating:
			opps = append(opps, models.Opportunity{
				Narrative:           n.Name,
				Action:              models.ActionDCA,
				Tokens:              s.table.Lookup(n.Name),
				Reasoning:           trendReasoning(n),
				Confidence:          scoreDCA,
				Risk:                models.RiskLow,
				SuggestedAllocation: "2-5% of portfolio",
			})

		case n.Confidence == models.ConfidenceMedium:
			opps = append(opps, models.Opportunity{
				Narrative:           n.Name,
				Action:              models.ActionWatchlist,
				Tokens:              s.table.Lookup(n.Name),
				Reasoning:           trendReasoning(n),
				Confidence:          scoreWatchlist,
				Risk:                models.RiskLow,
				SuggestedAllocation: "Watch only",
			})
		}
	}

	sort.SliceStable(opps, func(i, j int) bool {
		return opps[i].Confidence > opps[j].Confidence
	})

	return opps
}

func trendReasoning(n models.Narrative) string {
	return fmt.Sprintf("%s showing %s trend. %s", n.Name, strings.ToLower(n.Direction), n.Explanation)
}
