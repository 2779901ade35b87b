package models

// PhaseLabel is the coarse market-structure classification emitted by the
// phase heuristic. The heuristic is illustrative only; labels describe a
// tendency, they are not trade signals.
type PhaseLabel string

const (
	PhaseUnknown      PhaseLabel = "unknown"
	PhaseUpwardBias   PhaseLabel = "range-building upward bias (possible accumulation)"
	PhaseMarkup       PhaseLabel = "markup in progress"
	PhaseDownwardBias PhaseLabel = "range-building downward bias (possible distribution)"
	PhaseMarkdown     PhaseLabel = "markdown in progress"
	PhaseTradingRange PhaseLabel = "trading range (accumulation or distribution undetermined)"
)

// PhaseChangeEvent is published when a session's classification flips.
type PhaseChangeEvent struct {
	Symbol   string     `json:"symbol"`
	Interval string     `json:"interval"`
	From     PhaseLabel `json:"from"`
	To       PhaseLabel `json:"to"`
	At       int64      `json:"at"` // unix seconds
}
