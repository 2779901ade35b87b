package usecase

import (
	"testing"

	"WyckoffLab/internal/domain/models"
)

// mkSeries builds a valid ascending series of n candles. The close of
// candle i is closes(i); open is the previous close so the body direction
// follows the close sequence.
func mkSeries(n int, closes func(i int) float64) []models.Candle {
	out := make([]models.Candle, n)
	prev := closes(0)
	for i := 0; i < n; i++ {
		c := closes(i)
		open := prev
		high := open
		if c > high {
			high = c
		}
		low := open
		if c < low {
			low = c
		}
		out[i] = models.Candle{
			Time:  int64(1700000000 + i*3600),
			Open:  open,
			High:  high + 0.5,
			Low:   low - 0.5,
			Close: c,
		}
		prev = c
	}
	return out
}

func TestClassifyPhaseTooShort(t *testing.T) {
	s := mkSeries(49, func(i int) float64 { return 100 })
	if got := ClassifyPhase(s); got != models.PhaseUnknown {
		t.Fatalf("expected unknown, got %q", got)
	}
}

func TestClassifyPhaseFlatSeries(t *testing.T) {
	s := mkSeries(200, func(i int) float64 { return 100 })
	if got := ClassifyPhase(s); got != models.PhaseTradingRange {
		t.Fatalf("expected trading range, got %q", got)
	}
}

func TestClassifyPhaseMarkup(t *testing.T) {
	// One jump up at the window boundary, then slowly declining closes: the
	// recent average sits well above the earlier one while most recent
	// candles close below their open.
	s := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 110 - float64(i-80)*0.1
	})
	if got := ClassifyPhase(s); got != models.PhaseMarkup {
		t.Fatalf("expected markup, got %q", got)
	}
}

func TestClassifyPhaseMarkdown(t *testing.T) {
	// Mirror of the markup case: a drop at the boundary followed by a slow
	// recovery keeps the recent average low with mostly bullish closes.
	s := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 90 + float64(i-80)*0.1
	})
	if got := ClassifyPhase(s); got != models.PhaseMarkdown {
		t.Fatalf("expected markdown, got %q", got)
	}
}

func TestClassifyPhaseUpwardBias(t *testing.T) {
	// Rising closes, every candle closing above its open.
	s := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 100 + float64(i-79)*1.5
	})
	if got := ClassifyPhase(s); got != models.PhaseUpwardBias {
		t.Fatalf("expected upward bias, got %q", got)
	}
}

func TestClassifyPhaseDownwardBias(t *testing.T) {
	// Falling closes, every candle closing below its open.
	s := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 100 - float64(i-79)*1.5
	})
	if got := ClassifyPhase(s); got != models.PhaseDownwardBias {
		t.Fatalf("expected downward bias, got %q", got)
	}
}

func TestClassifyPhaseThresholdBoundary(t *testing.T) {
	// Recent average just inside the +2% band stays a trading range.
	s := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 101.9
	})
	if got := ClassifyPhase(s); got != models.PhaseTradingRange {
		t.Fatalf("expected trading range inside band, got %q", got)
	}
}

func TestClassifyPhaseDeterministic(t *testing.T) {
	s := mkSeries(120, func(i int) float64 { return 100 + float64(i%7) })
	first := ClassifyPhase(s)
	for i := 0; i < 10; i++ {
		if got := ClassifyPhase(s); got != first {
			t.Fatalf("classification not deterministic: %q vs %q", got, first)
		}
	}
}

func TestClassifyPhaseUsesOnlyTail(t *testing.T) {
	// Two series that differ only before the 50-candle tail classify the same.
	a := mkSeries(200, func(i int) float64 {
		if i < 150 {
			return 500
		}
		return 100
	})
	b := mkSeries(200, func(i int) float64 {
		if i < 150 {
			return 5
		}
		return 100
	})
	// Align the boundary candle opens so the tails are identical.
	a[150].Open = 100
	a[150].High = 100.5
	a[150].Low = 99.5
	b[150].Open = 100
	b[150].High = 100.5
	b[150].Low = 99.5
	if ga, gb := ClassifyPhase(a), ClassifyPhase(b); ga != gb {
		t.Fatalf("head of series leaked into classification: %q vs %q", ga, gb)
	}
}
