package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"WyckoffLab/internal/chart"
	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
)

func newTestSession(t *testing.T, provider repository.MarketData) *ChartSession {
	t.Helper()
	deps := ChartSessionDeps{
		Provider: provider,
		Metrics:  &fakeMetrics{},
		Logger:   testLogger(t),
	}
	return NewChartSession(deps, "BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
}

func TestChartSessionSnapshotAfterStart(t *testing.T) {
	series := mkSeries(60, func(i int) float64 { return 100 })
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return series, nil
	})

	s := newTestSession(t, provider)
	ch := make(chan struct{}, 1)
	s.SetOnUpdate(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	s.Start(context.Background())
	defer s.Close()
	waitSignal(t, ch)

	snap := s.Snapshot()
	if len(snap.Series) != 60 {
		t.Fatalf("snapshot series len %d", len(snap.Series))
	}
	if snap.Surface.Width != defaultSurfaceWidth || snap.Surface.Height != defaultSurfaceHeight {
		t.Fatalf("unexpected surface %dx%d", snap.Surface.Width, snap.Surface.Height)
	}
	if snap.Surface.TimeMin != series[0].Time || snap.Surface.TimeMax != series[len(series)-1].Time {
		t.Fatalf("surface not fitted to series: %d-%d", snap.Surface.TimeMin, snap.Surface.TimeMax)
	}
	if snap.LastPrice != series[len(series)-1].Close {
		t.Fatalf("last price %v", snap.LastPrice)
	}
	if snap.Armed != "" {
		t.Fatalf("fresh session armed with %q", snap.Armed)
	}
}

func TestChartSessionClickPlacesArmedConcept(t *testing.T) {
	series := mkSeries(60, func(i int) float64 { return 100 })
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return series, nil
	})

	s := newTestSession(t, provider)
	ch := make(chan struct{}, 1)
	s.SetOnUpdate(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	s.Start(context.Background())
	defer s.Close()
	waitSignal(t, ch)

	// Fit the surface before mapping the click.
	snap := s.Snapshot()

	if err := s.Arm(models.ConceptSpring); err != nil {
		t.Fatalf("arm: %v", err)
	}
	marker, err := s.Click(float64(snap.Surface.Width)/2, float64(snap.Surface.Height)/2)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if marker.Concept != models.ConceptSpring {
		t.Fatalf("marker concept %q", marker.Concept)
	}
	if marker.Time < snap.Surface.TimeMin || marker.Time > snap.Surface.TimeMax {
		t.Fatalf("marker time %d outside %d-%d", marker.Time, snap.Surface.TimeMin, snap.Surface.TimeMax)
	}
	if marker.Price < snap.Surface.PriceMin || marker.Price > snap.Surface.PriceMax {
		t.Fatalf("marker price %v outside %v-%v", marker.Price, snap.Surface.PriceMin, snap.Surface.PriceMax)
	}

	// Arming is single shot.
	if _, err := s.Click(10, 10); !errors.Is(err, ErrNotArmed) {
		t.Fatalf("expected ErrNotArmed on second click, got %v", err)
	}
	if got := s.Snapshot().Markers; len(got) != 1 {
		t.Fatalf("expected 1 marker, got %d", len(got))
	}
}

func TestChartSessionClickBeforeSeriesLoads(t *testing.T) {
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return nil, context.DeadlineExceeded
	})

	s := newTestSession(t, provider)
	if err := s.Arm(models.ConceptSpring); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if _, err := s.Click(100, 100); !errors.Is(err, chart.ErrDegenerateSurface) {
		t.Fatalf("expected ErrDegenerateSurface, got %v", err)
	}
}

func TestChartSessionResizeRefits(t *testing.T) {
	series := mkSeries(60, func(i int) float64 { return 100 })
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return series, nil
	})

	s := newTestSession(t, provider)
	ch := make(chan struct{}, 1)
	s.SetOnUpdate(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	s.Start(context.Background())
	defer s.Close()
	waitSignal(t, ch)

	if err := s.Resize(1920, 1080); err != nil {
		t.Fatalf("resize: %v", err)
	}
	snap := s.Snapshot()
	if snap.Surface.Width != 1920 || snap.Surface.Height != 1080 {
		t.Fatalf("resize not applied: %dx%d", snap.Surface.Width, snap.Surface.Height)
	}
	if snap.Surface.TimeMin != series[0].Time {
		t.Fatalf("resize lost the series fit")
	}

	if err := s.Resize(0, 100); !errors.Is(err, chart.ErrDegenerateSurface) {
		t.Fatalf("expected ErrDegenerateSurface, got %v", err)
	}
}

func TestChartSessionMarkerLifecycle(t *testing.T) {
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return mkSeries(60, func(i int) float64 { return 100 }), nil
	})

	s := newTestSession(t, provider)

	if err := s.Arm(models.ConceptSC); err != nil {
		t.Fatalf("arm: %v", err)
	}
	first, err := s.PlaceAt(1700000000, 100)
	if err != nil {
		t.Fatalf("place: %v", err)
	}
	if err := s.Arm(models.ConceptAR); err != nil {
		t.Fatalf("arm: %v", err)
	}
	if _, err := s.PlaceAt(1700003600, 105); err != nil {
		t.Fatalf("place: %v", err)
	}

	s.RemoveMarker(first.ID)
	markers := s.Snapshot().Markers
	if len(markers) != 1 || markers[0].Concept != models.ConceptAR {
		t.Fatalf("remove left %+v", markers)
	}

	s.ClearMarkers()
	if got := s.Snapshot().Markers; len(got) != 0 {
		t.Fatalf("clear left %d markers", len(got))
	}
}

func TestChartSessionIDsUnique(t *testing.T) {
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return nil, nil
	})
	a := newTestSession(t, provider)
	b := newTestSession(t, provider)
	if a.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("session ids not unique: %q %q", a.ID(), b.ID())
	}
}
