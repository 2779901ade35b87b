package usecase

import (
	"fmt"
	"sync"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
)

// SeriesStore holds the currently loaded candle series for one
// (symbol, interval) pair. The series is replaced wholesale on each refresh;
// individual candles are never mutated after insertion.
type SeriesStore struct {
	mu       sync.RWMutex
	symbol   string
	interval repository.Interval
	candles  []models.Candle
}

func NewSeriesStore() *SeriesStore {
	return &SeriesStore{}
}

// Replace validates and installs a new series. Validation failures reject
// the entire batch and leave the prior series untouched.
func (s *SeriesStore) Replace(symbol string, interval repository.Interval, candles []models.Candle) error {
	if err := ValidateSeries(candles); err != nil {
		return err
	}

	cp := make([]models.Candle, len(candles))
	copy(cp, candles)

	s.mu.Lock()
	s.symbol = symbol
	s.interval = interval
	s.candles = cp
	s.mu.Unlock()
	return nil
}

// Current returns a snapshot of the stored series, empty when nothing has
// been loaded yet.
func (s *SeriesStore) Current() []models.Candle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]models.Candle, len(s.candles))
	copy(cp, s.candles)
	return cp
}

// Key returns the (symbol, interval) pair the stored series belongs to.
func (s *SeriesStore) Key() (string, repository.Interval) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.symbol, s.interval
}

// Len returns the stored candle count.
func (s *SeriesStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.candles)
}

// LastPrice returns the close of the newest candle, 0 when empty.
func (s *SeriesStore) LastPrice() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.candles) == 0 {
		return 0
	}
	return s.candles[len(s.candles)-1].Close
}

// ValidateSeries checks per-candle OHLC bounds and strictly increasing,
// duplicate-free times.
func ValidateSeries(candles []models.Candle) error {
	for i, c := range candles {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSeries, err)
		}
		if i > 0 && c.Time <= candles[i-1].Time {
			return fmt.Errorf("%w: time not strictly increasing at index %d (%d <= %d)",
				ErrInvalidSeries, i, c.Time, candles[i-1].Time)
		}
	}
	return nil
}
