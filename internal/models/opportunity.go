package models

// Actions the scorer can recommend.
const (
	ActionAccumulate = "ACCUMULATE"
	ActionDCA        = "DCA"
	ActionWatchlist  = "WATCHLIST"
)

// Risk labels assigned by the rule table.
const (
	RiskLow    = "LOW"
	RiskMedium = "MEDIUM"
	RiskHigh   = "HIGH"
)

// Opportunity is a scored trading suggestion derived from one narrative.
// Created fresh per request, never persisted. Confidence and Risk are fully
// determined by the triggering narrative's (confidence, direction) pair.
type Opportunity struct {
	Narrative           string   `json:"narrative"`
	Action              string   `json:"action"`
	Tokens              []string `json:"tokens"`
	Reasoning           string   `json:"reasoning"`
	Confidence          float64  `json:"confidence"`
	Risk                string   `json:"risk"`
	SuggestedAllocation string   `json:"suggested_allocation"`
}
