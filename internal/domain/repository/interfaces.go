package repository

import (
	"context"
	"time"

	"WyckoffLab/internal/domain/models"
)

// MarketData fetches an OHLC series from the upstream provider. A fetch
// either yields a fully valid, time-ascending series or an error; partial
// results are never returned.
type MarketData interface {
	FetchCandles(ctx context.Context, symbol string, interval Interval, limit int) ([]models.Candle, error)
}

// ProgressStore persists per-user lesson completion and quiz scores.
// Implementations must be safe for concurrent use; per-user last-write-wins.
type ProgressStore interface {
	Get(userID string) (*models.UserProgress, error)
	SetLessonCompletion(userID, lessonID string, completed bool) (*models.UserProgress, error)
	SetQuizScore(userID, quizID string, score int) (*models.UserProgress, error)
}

// IdentityProvider resolves a bearer credential to a user id.
// Returns an empty id (no error) when the credential is absent or invalid.
type IdentityProvider interface {
	CurrentUserID(ctx context.Context, token string) (string, error)
}

// PhaseRecorder archives phase transitions for later review.
type PhaseRecorder interface {
	RecordPhase(ctx context.Context, symbol string, interval Interval, label models.PhaseLabel, at time.Time) error
	Close() error
}

// EventPublisher emits phase-change events to an external feed.
type EventPublisher interface {
	PublishPhaseChange(ctx context.Context, ev models.PhaseChangeEvent) error
	Close() error
}

// Metrics records operational counters.
type Metrics interface {
	RecordFetch(symbol, result string, seconds float64)
	RecordStaleDiscard()
	RecordClassification(label string)
	RecordMarkerPlaced(concept string)
	SessionOpened()
	SessionClosed()
	RecordError(kind string)
}
