package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"WyckoffLab/internal/domain/models"
	"WyckoffLab/internal/domain/repository"
	"WyckoffLab/pkg/cache"
	applogger "WyckoffLab/pkg/logger"
)

// CandleService serves one-shot candle reads for the REST surface, with a
// short TTL cache in front of the provider so page loads do not hammer the
// upstream API.
type CandleService struct {
	provider repository.MarketData
	cache    cache.Service
	metrics  repository.Metrics
	logger   *applogger.Logger
	limit    int
	ttl      time.Duration
}

func NewCandleService(provider repository.MarketData, c cache.Service, metrics repository.Metrics, logger *applogger.Logger, limit int, ttl time.Duration) *CandleService {
	if limit <= 0 {
		limit = 200
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CandleService{
		provider: provider,
		cache:    c,
		metrics:  metrics,
		logger:   logger,
		limit:    limit,
		ttl:      ttl,
	}
}

// Get fetches, validates, and classifies a series for one selection.
func (s *CandleService) Get(ctx context.Context, symbol string, interval repository.Interval) (*models.CandlesResponse, error) {
	key := fmt.Sprintf("candles:%s:%s", symbol, interval)

	var cached models.CandlesResponse
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("candle cache read failed", applogger.Error(err))
	}

	start := time.Now()
	candles, err := s.provider.FetchCandles(ctx, symbol, interval, s.limit)
	if err == nil {
		err = ValidateSeries(candles)
	}
	if err != nil {
		s.metrics.RecordFetch(symbol, "error", time.Since(start).Seconds())
		return nil, err
	}
	s.metrics.RecordFetch(symbol, "ok", time.Since(start).Seconds())

	phase := ClassifyPhase(candles)
	s.metrics.RecordClassification(string(phase))

	resp := &models.CandlesResponse{
		Symbol:   symbol,
		Interval: string(interval),
		Candles:  candles,
		Phase:    phase,
	}
	if len(candles) > 0 {
		resp.LastPrice = candles[len(candles)-1].Close
	}

	if err := s.cache.Set(ctx, key, resp, s.ttl); err != nil {
		s.logger.Warn("candle cache write failed", applogger.Error(err))
	}
	return resp, nil
}
