package usecase

import "WyckoffLab/internal/domain/models"

const (
	phaseWindow  = 50 // minimum candles needed to classify
	recentWindow = 20 // tail compared against the 30 candles before it
)

// ClassifyPhase derives a coarse trend/phase label from the tail of a
// series. It compares the mean close of the last 20 candles against the 30
// before that, with a directional tally over the recent window breaking the
// trend into "range building" versus "trend in progress".
//
// Pure and deterministic: the same series always yields the same label.
// This is an illustrative heuristic for teaching, not a signal.
func ClassifyPhase(series []models.Candle) models.PhaseLabel {
	if len(series) < phaseWindow {
		return models.PhaseUnknown
	}

	tail := series[len(series)-phaseWindow:]
	earlier := tail[:phaseWindow-recentWindow]
	recent := tail[phaseWindow-recentWindow:]

	earlierAvg := avgClose(earlier)
	recentAvg := avgClose(recent)

	bias := 0
	for _, c := range recent {
		if c.Bullish() {
			bias++
		} else {
			bias--
		}
	}

	switch {
	case recentAvg > earlierAvg*1.02:
		if bias > 0 {
			return models.PhaseUpwardBias
		}
		return models.PhaseMarkup
	case recentAvg < earlierAvg*0.98:
		if bias < 0 {
			return models.PhaseDownwardBias
		}
		return models.PhaseMarkdown
	default:
		return models.PhaseTradingRange
	}
}

func avgClose(candles []models.Candle) float64 {
	if len(candles) == 0 {
		return 0
	}
	var sum float64
	for _, c := range candles {
		sum += c.Close
	}
	return sum / float64(len(candles))
}
