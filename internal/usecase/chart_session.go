package usecase

import (
	"context"
	"sync"

	"WyckoffLab/internal/chart"
	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
	applogger "WyckoffLab/pkg/logger"

	"github.com/google/uuid"
)

const (
	defaultSurfaceWidth  = 960
	defaultSurfaceHeight = 480
)

// ChartSessionDeps bundles the collaborators every session shares.
type ChartSessionDeps struct {
	Provider repository.MarketData
	Metrics  repository.Metrics
	Recorder repository.PhaseRecorder
	Events   repository.EventPublisher
	Logger   *applogger.Logger
}

// ChartSnapshot is the full renderable state of one session.
type ChartSnapshot struct {
	Series    []models.Candle `json:"series"`
	Markers   []models.Marker `json:"markers"`
	Armed     models.Concept  `json:"armed,omitempty"`
	Surface   chart.Surface   `json:"surface"`
	LastPrice float64         `json:"lastPrice"`
	RefreshStatus
}

// ChartSession ties one connected client to its own series store, marker
// set, refresh controller, and chart surface. Sessions are independent:
// markers and armed state never leak between clients.
type ChartSession struct {
	id      string
	deps    ChartSessionDeps
	store   *SeriesStore
	markers *MarkerSet
	refresh *RefreshController
	metrics repository.Metrics

	mu      sync.Mutex
	surface chart.Surface
}

func NewChartSession(deps ChartSessionDeps, symbol string, interval repository.Interval, cfg RefreshConfig) *ChartSession {
	s := &ChartSession{
		id:      uuid.NewString(),
		deps:    deps,
		store:   NewSeriesStore(),
		markers: NewMarkerSet(),
		metrics: deps.Metrics,
		surface: chart.Surface{Width: defaultSurfaceWidth, Height: defaultSurfaceHeight},
	}
	s.refresh = NewRefreshController(
		deps.Provider, s.store, deps.Metrics, deps.Recorder, deps.Events,
		deps.Logger, symbol, interval, cfg,
	)
	return s
}

// ID returns the session identifier.
func (s *ChartSession) ID() string {
	return s.id
}

// SetOnUpdate registers the push callback. Must be called before Start.
func (s *ChartSession) SetOnUpdate(fn func()) {
	s.refresh.SetOnUpdate(fn)
}

// Start begins the refresh loop with an immediate fetch.
func (s *ChartSession) Start(ctx context.Context) {
	s.metrics.SessionOpened()
	s.refresh.Start(ctx)
}

// Close stops the refresh loop and releases the session.
func (s *ChartSession) Close() {
	s.refresh.Stop()
	s.metrics.SessionClosed()
}

// SetParams switches the session to a new (symbol, interval) selection.
func (s *ChartSession) SetParams(ctx context.Context, symbol string, interval repository.Interval) {
	s.refresh.SetParams(ctx, symbol, interval)
}

// Refresh requests an immediate fetch for the current selection.
func (s *ChartSession) Refresh(ctx context.Context) {
	s.refresh.Refresh(ctx)
}

// Arm selects the concept for the next click placement.
func (s *ChartSession) Arm(concept models.Concept) error {
	return s.markers.Arm(concept)
}

// Disarm cancels a pending placement.
func (s *ChartSession) Disarm() {
	s.markers.Disarm()
}

// Click maps a pixel coordinate through the surface and places the armed
// concept there. The session must have a fitted surface and an armed concept.
func (s *ChartSession) Click(x, y float64) (models.Marker, error) {
	s.mu.Lock()
	surface := s.surface
	s.mu.Unlock()

	if err := surface.FitError(); err != nil {
		return models.Marker{}, err
	}
	return s.place(surface.TimeAt(x), surface.PriceAt(y))
}

// PlaceAt places the armed concept directly at a domain coordinate.
func (s *ChartSession) PlaceAt(time int64, price float64) (models.Marker, error) {
	return s.place(time, price)
}

func (s *ChartSession) place(time int64, price float64) (models.Marker, error) {
	marker, err := s.markers.Place(time, price)
	if err != nil {
		return models.Marker{}, err
	}
	s.metrics.RecordMarkerPlaced(string(marker.Concept))
	return marker, nil
}

// RemoveMarker deletes one marker by id.
func (s *ChartSession) RemoveMarker(id string) {
	s.markers.Remove(id)
}

// ClearMarkers deletes all markers.
func (s *ChartSession) ClearMarkers() {
	s.markers.Clear()
}

// Resize updates the pixel dimensions and refits the surface to the
// currently loaded series.
func (s *ChartSession) Resize(width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	resized, err := s.surface.Resize(width, height)
	if err != nil {
		return err
	}
	s.surface = resized
	s.refitLocked()
	return nil
}

// Snapshot assembles the renderable state, refitting the surface to the
// current series first so markers and candles share one mapping.
func (s *ChartSession) Snapshot() ChartSnapshot {
	s.mu.Lock()
	s.refitLocked()
	surface := s.surface
	s.mu.Unlock()

	return ChartSnapshot{
		Series:        s.store.Current(),
		Markers:       s.markers.All(),
		Armed:         s.armedOrEmpty(),
		Surface:       surface,
		LastPrice:     s.store.LastPrice(),
		RefreshStatus: s.refresh.Status(),
	}
}

func (s *ChartSession) armedOrEmpty() models.Concept {
	if concept, ok := s.markers.Armed(); ok {
		return concept
	}
	return ""
}

// refitLocked refits the surface to the stored series when possible. Caller
// holds the mutex. A series too short to fit leaves the surface unchanged.
func (s *ChartSession) refitLocked() {
	fitted, err := s.surface.FitSeries(s.store.Current())
	if err == nil {
		s.surface = fitted
	}
}
