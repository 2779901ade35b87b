package usecase

import (
	"errors"
	"testing"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
)

func TestSeriesStoreReplaceAndSnapshot(t *testing.T) {
	s := NewSeriesStore()
	series := mkSeries(60, func(i int) float64 { return 100 + float64(i) })

	if err := s.Replace("BTCUSDT", repository.Interval1h, series); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	if s.Len() != 60 {
		t.Fatalf("expected 60 candles, got %d", s.Len())
	}
	sym, iv := s.Key()
	if sym != "BTCUSDT" || iv != repository.Interval1h {
		t.Fatalf("unexpected key %s/%s", sym, iv)
	}
	if got := s.LastPrice(); got != series[len(series)-1].Close {
		t.Fatalf("unexpected last price %v", got)
	}

	// Mutating the snapshot must not affect the store.
	snap := s.Current()
	snap[0].Close = -1
	if s.Current()[0].Close == -1 {
		t.Fatalf("snapshot aliases internal storage")
	}
}

func TestSeriesStoreRejectsOutOfOrder(t *testing.T) {
	s := NewSeriesStore()
	good := mkSeries(60, func(i int) float64 { return 100 })
	if err := s.Replace("BTCUSDT", repository.Interval1h, good); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	bad := mkSeries(60, func(i int) float64 { return 100 })
	bad[10].Time = bad[9].Time // duplicate timestamp
	err := s.Replace("BTCUSDT", repository.Interval1h, bad)
	if !errors.Is(err, ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}

	// Prior series stays in place after the rejected batch.
	if s.Len() != 60 || s.Current()[10].Time == s.Current()[9].Time {
		t.Fatalf("rejected batch corrupted stored series")
	}
}

func TestSeriesStoreRejectsMalformedCandle(t *testing.T) {
	s := NewSeriesStore()
	bad := mkSeries(60, func(i int) float64 { return 100 })
	bad[5].High = bad[5].Low - 1
	if err := s.Replace("ETHUSDT", repository.Interval1m, bad); !errors.Is(err, ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("rejected batch must not install")
	}
}

func TestSeriesStoreEmpty(t *testing.T) {
	s := NewSeriesStore()
	if s.Len() != 0 {
		t.Fatalf("new store not empty")
	}
	if got := s.LastPrice(); got != 0 {
		t.Fatalf("expected 0 last price, got %v", got)
	}
	if got := s.Current(); len(got) != 0 {
		t.Fatalf("expected empty snapshot, got %d", len(got))
	}
}

func TestValidateSeriesEmptyOK(t *testing.T) {
	if err := ValidateSeries(nil); err != nil {
		t.Fatalf("empty series should validate: %v", err)
	}
	var one []models.Candle
	one = append(one, models.Candle{Time: 1, Open: 1, High: 2, Low: 0.5, Close: 1.5})
	if err := ValidateSeries(one); err != nil {
		t.Fatalf("single candle should validate: %v", err)
	}
}
