package usecase

import (
	"context"
	"sync"
	"time"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
	applogger "WyckoffLab/pkg/logger"
)

// RefreshConfig tunes the polling behavior.
type RefreshConfig struct {
	Period       time.Duration // periodic refresh cadence
	FetchTimeout time.Duration // per-fetch deadline
	CandleLimit  int
}

// RefreshStatus is a snapshot of the controller state for rendering.
type RefreshStatus struct {
	Symbol      string              `json:"symbol"`
	Interval    repository.Interval `json:"interval"`
	Phase       models.PhaseLabel   `json:"phase"`
	Fetching    bool                `json:"fetching"`
	LastError   string              `json:"lastError,omitempty"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// RefreshController periodically pulls a fresh series from the market data
// provider into a SeriesStore and recomputes the phase label. Fetches run
// asynchronously so the rest of the session stays responsive.
//
// Stale-result handling uses a monotonically increasing generation counter:
// changing symbol or interval bumps the generation, and a completing fetch
// applies its result only if the generation it captured is still current.
// A response for an outdated selection is discarded, never applied.
type RefreshController struct {
	provider repository.MarketData
	store    *SeriesStore
	metrics  repository.Metrics
	recorder repository.PhaseRecorder
	events   repository.EventPublisher
	logger   *applogger.Logger
	cfg      RefreshConfig

	mu          sync.Mutex
	symbol      string
	interval    repository.Interval
	generation  uint64
	fetchSeq    uint64 // id of the most recently started fetch
	fetching    bool
	phase       models.PhaseLabel
	lastErr     error
	lastUpdated time.Time
	onUpdate    func()

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRefreshController(
	provider repository.MarketData,
	store *SeriesStore,
	metrics repository.Metrics,
	recorder repository.PhaseRecorder,
	events repository.EventPublisher,
	logger *applogger.Logger,
	symbol string,
	interval repository.Interval,
	cfg RefreshConfig,
) *RefreshController {
	if cfg.Period <= 0 {
		cfg.Period = 60 * time.Second
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 10 * time.Second
	}
	if cfg.CandleLimit <= 0 {
		cfg.CandleLimit = 200
	}
	return &RefreshController{
		provider: provider,
		store:    store,
		metrics:  metrics,
		recorder: recorder,
		events:   events,
		logger:   logger,
		cfg:      cfg,
		symbol:   symbol,
		interval: interval,
		phase:    models.PhaseUnknown,
	}
}

// SetOnUpdate registers a callback invoked after every applied state change
// (successful replace or recorded failure). Must be set before Start.
func (r *RefreshController) SetOnUpdate(fn func()) {
	r.mu.Lock()
	r.onUpdate = fn
	r.mu.Unlock()
}

// Start kicks off an immediate fetch and the periodic refresh loop.
func (r *RefreshController) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	r.Refresh(ctx)

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.Period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.Refresh(ctx)
			}
		}
	}()
}

// Stop cancels the periodic loop. In-flight fetches finish on their own
// deadline; their results are applied or discarded by generation as usual.
func (r *RefreshController) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// SetParams switches the (symbol, interval) selection. A change bumps the
// generation so any in-flight fetch for the old selection is discarded when
// it lands, and starts a fetch for the new selection immediately.
func (r *RefreshController) SetParams(ctx context.Context, symbol string, interval repository.Interval) {
	r.mu.Lock()
	if symbol == r.symbol && interval == r.interval {
		r.mu.Unlock()
		return
	}
	r.symbol = symbol
	r.interval = interval
	r.generation++
	gen := r.generation
	r.startFetchLocked(ctx, gen)
	r.mu.Unlock()
}

// Refresh requests a fetch for the current selection. Dropped when a fetch
// for the same selection is already in flight.
func (r *RefreshController) Refresh(ctx context.Context) {
	r.mu.Lock()
	if r.fetching {
		r.mu.Unlock()
		return
	}
	r.startFetchLocked(ctx, r.generation)
	r.mu.Unlock()
}

// Status returns a snapshot of the controller state.
func (r *RefreshController) Status() RefreshStatus {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := RefreshStatus{
		Symbol:      r.symbol,
		Interval:    r.interval,
		Phase:       r.phase,
		Fetching:    r.fetching,
		LastUpdated: r.lastUpdated,
	}
	if r.lastErr != nil {
		st.LastError = "data unavailable"
	}
	return st
}

// Phase returns the current classification.
func (r *RefreshController) Phase() models.PhaseLabel {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.phase
}

// startFetchLocked launches an async fetch. Caller holds the mutex.
func (r *RefreshController) startFetchLocked(ctx context.Context, gen uint64) {
	r.fetchSeq++
	seq := r.fetchSeq
	r.fetching = true
	symbol, interval := r.symbol, r.interval

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		fctx, cancel := context.WithTimeout(ctx, r.cfg.FetchTimeout)
		defer cancel()

		start := time.Now()
		candles, err := r.provider.FetchCandles(fctx, symbol, interval, r.cfg.CandleLimit)
		elapsed := time.Since(start)

		r.complete(ctx, gen, seq, symbol, interval, candles, err, elapsed)
	}()
}

// complete applies or discards one fetch result.
func (r *RefreshController) complete(ctx context.Context, gen, seq uint64, symbol string, interval repository.Interval, candles []models.Candle, err error, elapsed time.Duration) {
	r.mu.Lock()

	if seq == r.fetchSeq {
		r.fetching = false
	}

	if gen != r.generation {
		// Superseded selection: drop the result silently.
		r.mu.Unlock()
		r.metrics.RecordStaleDiscard()
		r.logger.Debug("stale fetch discarded",
			applogger.String("symbol", symbol),
			applogger.String("interval", string(interval)),
		)
		return
	}

	if err == nil {
		err = r.store.Replace(symbol, interval, candles)
	}

	if err != nil {
		r.lastErr = err
		onUpdate := r.onUpdate
		r.mu.Unlock()

		r.metrics.RecordFetch(symbol, "error", elapsed.Seconds())
		r.logger.Warn("candle fetch failed",
			applogger.String("symbol", symbol),
			applogger.String("interval", string(interval)),
			applogger.Error(err),
		)
		if onUpdate != nil {
			onUpdate()
		}
		return
	}

	prev := r.phase
	next := ClassifyPhase(candles)
	r.phase = next
	r.lastErr = nil
	r.lastUpdated = time.Now()
	onUpdate := r.onUpdate
	r.mu.Unlock()

	r.metrics.RecordFetch(symbol, "ok", elapsed.Seconds())
	r.metrics.RecordClassification(string(next))

	if next != prev {
		r.notifyPhaseChange(ctx, symbol, interval, prev, next)
	}
	if onUpdate != nil {
		onUpdate()
	}
}

func (r *RefreshController) notifyPhaseChange(ctx context.Context, symbol string, interval repository.Interval, from, to models.PhaseLabel) {
	now := time.Now()

	if r.recorder != nil {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := r.recorder.RecordPhase(rctx, symbol, interval, to, now); err != nil {
			r.metrics.RecordError("phase_recorder")
			r.logger.Warn("phase record failed", applogger.Error(err))
		}
	}

	if r.events != nil {
		ectx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		ev := models.PhaseChangeEvent{
			Symbol:   symbol,
			Interval: string(interval),
			From:     from,
			To:       to,
			At:       now.Unix(),
		}
		if err := r.events.PublishPhaseChange(ectx, ev); err != nil {
			r.metrics.RecordError("phase_events")
			r.logger.Warn("phase event publish failed", applogger.Error(err))
		}
	}
}
