package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
	"WyckoffLab/pkg/cache"
)

func TestCandleServiceCachesResponses(t *testing.T) {
	series := mkSeries(60, func(i int) float64 { return 100 })
	var calls int64
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		atomic.AddInt64(&calls, 1)
		return series, nil
	})

	svc := NewCandleService(provider, cache.NewMemoryCache(), &fakeMetrics{}, testLogger(t), 200, time.Minute)

	first, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(first.Candles) != 60 || first.Phase != models.PhaseTradingRange {
		t.Fatalf("unexpected response %s %d", first.Phase, len(first.Candles))
	}
	if first.LastPrice != series[len(series)-1].Close {
		t.Fatalf("last price %v", first.LastPrice)
	}

	second, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h)
	if err != nil {
		t.Fatalf("cached get: %v", err)
	}
	if atomic.LoadInt64(&calls) != 1 {
		t.Fatalf("cache miss on repeat read, calls=%d", calls)
	}
	if len(second.Candles) != len(first.Candles) {
		t.Fatalf("cached response differs")
	}
}

func TestCandleServiceSeparateKeysPerSelection(t *testing.T) {
	var calls int64
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		atomic.AddInt64(&calls, 1)
		return mkSeries(60, func(i int) float64 { return 100 }), nil
	})

	svc := NewCandleService(provider, cache.NewMemoryCache(), &fakeMetrics{}, testLogger(t), 200, time.Minute)

	if _, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.Get(context.Background(), "ETHUSDT", repository.Interval1h); err != nil {
		t.Fatalf("get: %v", err)
	}
	if _, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval4h); err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := atomic.LoadInt64(&calls); got != 3 {
		t.Fatalf("expected 3 fetches for 3 selections, got %d", got)
	}
}

func TestCandleServiceProviderErrorNotCached(t *testing.T) {
	boom := errors.New("upstream down")
	var fail atomic.Bool
	fail.Store(true)
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		if fail.Load() {
			return nil, boom
		}
		return mkSeries(60, func(i int) float64 { return 100 }), nil
	})

	svc := NewCandleService(provider, cache.NewMemoryCache(), &fakeMetrics{}, testLogger(t), 200, time.Minute)

	if _, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}

	fail.Store(false)
	resp, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h)
	if err != nil {
		t.Fatalf("recovery get: %v", err)
	}
	if len(resp.Candles) != 60 {
		t.Fatalf("recovery returned %d candles", len(resp.Candles))
	}
}

func TestCandleServiceRejectsInvalidSeries(t *testing.T) {
	bad := mkSeries(60, func(i int) float64 { return 100 })
	bad[10].Time = bad[9].Time // out of order
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		return bad, nil
	})

	svc := NewCandleService(provider, cache.NewMemoryCache(), &fakeMetrics{}, testLogger(t), 200, time.Minute)
	if _, err := svc.Get(context.Background(), "BTCUSDT", repository.Interval1h); !errors.Is(err, ErrInvalidSeries) {
		t.Fatalf("expected ErrInvalidSeries, got %v", err)
	}
}
