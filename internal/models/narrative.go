package models

// Narrative confidence levels as emitted by the upstream feed.
const (
	ConfidenceHigh   = "HIGH"
	ConfidenceMedium = "MEDIUM"
	ConfidenceLow    = "LOW"
)

// DirectionAccelerating is the only direction the rule table treats specially.
const DirectionAccelerating = "ACCELERATING"

// Narrative is a single trend record from the upstream feed. Immutable once
// received; it lives for one request cycle.
type Narrative struct {
	Name              string   `json:"name"`
	Confidence        string   `json:"confidence"`
	Direction         string   `json:"direction"`
	Explanation       string   `json:"explanation"`
	SupportingSignals []string `json:"supporting_signals"`
}
