package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
	applogger "WyckoffLab/pkg/logger"
)

type providerFunc func(ctx context.Context, symbol string, interval repository.Interval, limit int) ([]models.Candle, error)

func (f providerFunc) FetchCandles(ctx context.Context, symbol string, interval repository.Interval, limit int) ([]models.Candle, error) {
	return f(ctx, symbol, interval, limit)
}

type fakeMetrics struct {
	fetches       int64
	staleDiscards int64
}

func (m *fakeMetrics) RecordFetch(string, string, float64) { atomic.AddInt64(&m.fetches, 1) }
func (m *fakeMetrics) RecordStaleDiscard()                 { atomic.AddInt64(&m.staleDiscards, 1) }
func (m *fakeMetrics) RecordClassification(string)         {}
func (m *fakeMetrics) RecordMarkerPlaced(string)           {}
func (m *fakeMetrics) SessionOpened()                      {}
func (m *fakeMetrics) SessionClosed()                      {}
func (m *fakeMetrics) RecordError(string)                  {}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

// updates returns a channel signalled on every applied controller update.
func updates(ctl *RefreshController) chan struct{} {
	ch := make(chan struct{}, 16)
	ctl.SetOnUpdate(func() {
		select {
		case ch <- struct{}{}:
		default:
		}
	})
	return ch
}

func waitSignal(t *testing.T, ch chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for controller update")
	}
}

func TestRefreshControllerAppliesFetch(t *testing.T) {
	store := NewSeriesStore()
	series := mkSeries(60, func(i int) float64 { return 100 })
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return series, nil
	})

	ctl := NewRefreshController(provider, store, &fakeMetrics{}, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Refresh(context.Background())
	waitSignal(t, ch)

	if store.Len() != 60 {
		t.Fatalf("series not installed, len=%d", store.Len())
	}
	st := ctl.Status()
	if st.Fetching {
		t.Fatalf("still fetching after completion")
	}
	if st.LastError != "" {
		t.Fatalf("unexpected error %q", st.LastError)
	}
	if st.Phase != models.PhaseTradingRange {
		t.Fatalf("unexpected phase %q", st.Phase)
	}
}

func TestRefreshControllerFailureKeepsSeries(t *testing.T) {
	store := NewSeriesStore()
	good := mkSeries(60, func(i int) float64 { return 100 })
	var fail atomic.Bool
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		if fail.Load() {
			return nil, context.DeadlineExceeded
		}
		return good, nil
	})

	ctl := NewRefreshController(provider, store, &fakeMetrics{}, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	phase := ctl.Phase()

	fail.Store(true)
	ctl.Refresh(context.Background())
	waitSignal(t, ch)

	if store.Len() != 60 {
		t.Fatalf("failed fetch cleared the series")
	}
	st := ctl.Status()
	if st.LastError == "" {
		t.Fatalf("failure not surfaced in status")
	}
	if st.Phase != phase {
		t.Fatalf("failure changed phase from %q to %q", phase, st.Phase)
	}

	// A later success clears the error.
	fail.Store(false)
	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	if st := ctl.Status(); st.LastError != "" {
		t.Fatalf("recovered fetch left error %q", st.LastError)
	}
}

func TestRefreshControllerStaleDiscard(t *testing.T) {
	store := NewSeriesStore()
	oldSeries := mkSeries(60, func(i int) float64 { return 50 })
	newSeries := mkSeries(60, func(i int) float64 { return 200 })

	release := make(chan struct{})
	provider := providerFunc(func(ctx context.Context, symbol string, iv repository.Interval, limit int) ([]models.Candle, error) {
		if symbol == "BTCUSDT" {
			<-release
			return oldSeries, nil
		}
		return newSeries, nil
	})

	m := &fakeMetrics{}
	ctl := NewRefreshController(provider, store, m, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour, FetchTimeout: 5 * time.Second})
	ch := updates(ctl)

	// Slow fetch for the old selection is in flight when the user switches.
	ctl.Refresh(context.Background())
	ctl.SetParams(context.Background(), "ETHUSDT", repository.Interval1h)
	waitSignal(t, ch)

	if got := store.Current()[0].Close; got != 200 {
		t.Fatalf("new selection not applied, close=%v", got)
	}

	// The old response lands late and must be dropped.
	close(release)
	deadline := time.Now().Add(5 * time.Second)
	for atomic.LoadInt64(&m.staleDiscards) == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("stale fetch never discarded")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if got := store.Current()[0].Close; got != 200 {
		t.Fatalf("stale response overwrote the series, close=%v", got)
	}
	if sym, _ := store.Key(); sym != "ETHUSDT" {
		t.Fatalf("stale response changed the key to %s", sym)
	}
}

func TestRefreshControllerCoalescesManualTriggers(t *testing.T) {
	store := NewSeriesStore()
	series := mkSeries(60, func(i int) float64 { return 100 })

	var calls int64
	release := make(chan struct{})
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		atomic.AddInt64(&calls, 1)
		<-release
		return series, nil
	})

	ctl := NewRefreshController(provider, store, &fakeMetrics{}, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Refresh(context.Background())
	// Duplicate triggers while fetching with unchanged params are dropped.
	ctl.Refresh(context.Background())
	ctl.Refresh(context.Background())
	close(release)
	waitSignal(t, ch)

	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("expected 1 fetch, got %d", got)
	}
}

func TestRefreshControllerSetParamsSameSelectionNoop(t *testing.T) {
	store := NewSeriesStore()
	var calls int64
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		atomic.AddInt64(&calls, 1)
		return mkSeries(60, func(i int) float64 { return 100 }), nil
	})

	ctl := NewRefreshController(provider, store, &fakeMetrics{}, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	ctl.SetParams(context.Background(), "BTCUSDT", repository.Interval1h)

	time.Sleep(50 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != 1 {
		t.Fatalf("unchanged params triggered a fetch, calls=%d", got)
	}
}

func TestRefreshControllerStartStop(t *testing.T) {
	store := NewSeriesStore()
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		return mkSeries(60, func(i int) float64 { return 100 }), nil
	})

	ctl := NewRefreshController(provider, store, &fakeMetrics{}, nil, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Start(context.Background())
	waitSignal(t, ch)
	ctl.Stop()

	if store.Len() != 60 {
		t.Fatalf("initial fetch not applied before stop")
	}
}

type phaseRecord struct {
	label models.PhaseLabel
}

type fakeRecorder struct {
	mu      sync.Mutex
	records []phaseRecord
}

func (r *fakeRecorder) RecordPhase(_ context.Context, _ string, _ repository.Interval, label models.PhaseLabel, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, phaseRecord{label: label})
	return nil
}

func (r *fakeRecorder) Close() error { return nil }

func (r *fakeRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func TestRefreshControllerRecordsPhaseTransitions(t *testing.T) {
	store := NewSeriesStore()
	flat := mkSeries(60, func(i int) float64 { return 100 })
	rising := mkSeries(100, func(i int) float64 {
		if i < 80 {
			return 100
		}
		return 100 + float64(i-79)*1.5
	})

	var useRising atomic.Bool
	provider := providerFunc(func(context.Context, string, repository.Interval, int) ([]models.Candle, error) {
		if useRising.Load() {
			return rising, nil
		}
		return flat, nil
	})

	rec := &fakeRecorder{}
	ctl := NewRefreshController(provider, store, &fakeMetrics{}, rec, nil, testLogger(t),
		"BTCUSDT", repository.Interval1h, RefreshConfig{Period: time.Hour})
	ch := updates(ctl)

	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	first := rec.count() // unknown -> trading range

	useRising.Store(true)
	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	if rec.count() != first+1 {
		t.Fatalf("phase transition not recorded: %d -> %d", first, rec.count())
	}

	// Same label again records nothing.
	ctl.Refresh(context.Background())
	waitSignal(t, ch)
	if rec.count() != first+1 {
		t.Fatalf("unchanged phase recorded a transition")
	}
}
