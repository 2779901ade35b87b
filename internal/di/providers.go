package di

import (
	"fmt"
	"time"

	"WyckoffLab/internal/domain/repository"
	"WyckoffLab/internal/handler/api"
	internalrepo "WyckoffLab/internal/repository"
	"WyckoffLab/internal/service/auth"
	"WyckoffLab/internal/service/binance"
	"WyckoffLab/internal/service/ratelimit"
	"WyckoffLab/internal/usecase"
	"WyckoffLab/pkg/cache"
	pkgch "WyckoffLab/pkg/clickhouse"
	"WyckoffLab/pkg/config"
	pkgkafka "WyckoffLab/pkg/kafka"
	applogger "WyckoffLab/pkg/logger"
	"WyckoffLab/pkg/metrics"
	"WyckoffLab/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCache selects redis or in-memory caching per config.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Redis.Enabled {
		return cache.NewMemoryCache(), nil
	}
	c, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Redis.Host),
		cache.WithRedisPort(cfg.Redis.Port),
		cache.WithRedisPassword(cfg.Redis.Password),
		cache.WithRedisDB(cfg.Redis.DB),
		cache.WithRedisPrefix(cfg.Redis.Prefix),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return c, nil
}

// ProvideMarketData creates the Binance candle provider.
func ProvideMarketData(cfg *config.Config) repository.MarketData {
	return binance.New(cfg.Binance.BaseURL, cfg.Binance.Timeout)
}

// ProvideIdentityProvider selects the token verifier per config.
func ProvideIdentityProvider(cfg *config.Config, c cache.Service, l *applogger.Logger) repository.IdentityProvider {
	if !cfg.Auth.Enabled {
		return auth.NewStaticProvider()
	}
	return auth.NewGoogleVerifier(cfg.Auth.TokenInfoURL, cfg.Auth.SessionTTL, cfg.Auth.Timeout, c, l)
}

// ProvideProgressStore creates the file-backed progress store.
func ProvideProgressStore(cfg *config.Config, l *applogger.Logger) (repository.ProgressStore, error) {
	store, err := internalrepo.NewFileProgressStore(cfg.Progress.Path, l)
	if err != nil {
		return nil, fmt.Errorf("progress store: %w", err)
	}
	return store, nil
}

// ProvideKafkaProducer creates the producer, nil when events are disabled.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if !cfg.Events.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Events.Brokers),
		pkgkafka.WithCompression(cfg.Events.Compression),
		pkgkafka.WithBatchTimeout(cfg.Events.Linger),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideEventPublisher wraps the producer, noop when disabled. When active
// it also attaches the aggregated error-log collector to the logger so
// error batches ship to the log topic.
func ProvideEventPublisher(producer *pkgkafka.Producer, cfg *config.Config, l *applogger.Logger) repository.EventPublisher {
	if producer == nil {
		return internalrepo.NoopEventPublisher{}
	}
	l.AddCollector(&applogger.CollectionConfig{
		TimeInterval:   30 * time.Second,
		CountThreshold: 100,
		Topic:          cfg.Events.LogTopic,
		Publisher:      internalrepo.NewKafkaLogSink(producer),
	})
	return internalrepo.NewKafkaEventPublisher(producer, cfg.Events.Topic)
}

// ProvidePhaseRecorder creates the ClickHouse recorder, noop when disabled.
func ProvidePhaseRecorder(cfg *config.Config, l *applogger.Logger) (repository.PhaseRecorder, error) {
	if !cfg.Recorder.Enabled {
		return internalrepo.NoopPhaseRecorder{}, nil
	}
	chCfg := cfg.Recorder.ClickHouse
	client, err := pkgch.NewClient(
		pkgch.WithHost(chCfg.Host),
		pkgch.WithPort(chCfg.Port),
		pkgch.WithDatabase(cfg.Recorder.Database),
		pkgch.WithCredentials(chCfg.User, chCfg.Password),
		pkgch.WithMaxConnections(5, 2),
		pkgch.WithHTTP(chCfg.UseHTTP),
		pkgch.WithTimeouts(chCfg.DialTimeout, chCfg.ReadTimeout, chCfg.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	recorder, err := internalrepo.NewCHPhaseRecorder(client, cfg.Recorder.Database, cfg.Recorder.Table, l)
	if err != nil {
		_ = client.Close()
		return nil, err
	}
	return recorder, nil
}

// ProvideCandleService creates the cached one-shot candle reader.
func ProvideCandleService(
	provider repository.MarketData,
	c cache.Service,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.CandleService {
	return usecase.NewCandleService(provider, c, m, l, cfg.Binance.CandleLimit, cfg.Chart.CandleCacheTTL)
}

// ProvideProgressUsecase creates the progress use case.
func ProvideProgressUsecase(store repository.ProgressStore) *usecase.ProgressUsecase {
	return usecase.NewProgressUsecase(store)
}

// ProvideQuizUsecase creates the quiz grader.
func ProvideQuizUsecase() *usecase.QuizUsecase {
	return usecase.NewQuizUsecase()
}

// ProvideSessionDeps bundles the shared chart-session collaborators.
func ProvideSessionDeps(
	provider repository.MarketData,
	m repository.Metrics,
	recorder repository.PhaseRecorder,
	events repository.EventPublisher,
	l *applogger.Logger,
) usecase.ChartSessionDeps {
	return usecase.ChartSessionDeps{
		Provider: provider,
		Metrics:  m,
		Recorder: recorder,
		Events:   events,
		Logger:   l,
	}
}

// ProvideRouter assembles the API handlers.
func ProvideRouter(
	cfg *config.Config,
	l *applogger.Logger,
	identity repository.IdentityProvider,
	candles *usecase.CandleService,
	progress *usecase.ProgressUsecase,
	quizzes *usecase.QuizUsecase,
	deps usecase.ChartSessionDeps,
) *api.Router {
	refreshCfg := usecase.RefreshConfig{
		Period:       cfg.Chart.RefreshInterval,
		FetchTimeout: cfg.Binance.Timeout,
		CandleLimit:  cfg.Binance.CandleLimit,
	}
	return api.NewRouter(
		auth.Identify(identity),
		api.NewContentHandler(l),
		api.NewProgressHandler(l, progress, quizzes),
		api.NewChartHandler(l, candles, ratelimit.New(), cfg.Chart.RateCapacity, cfg.Chart.RateRefill),
		api.NewChartWSHandler(l, deps, refreshCfg),
	)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	router *api.Router,
	c cache.Service,
	recorder repository.PhaseRecorder,
	events repository.EventPublisher,
) *server.App {
	return server.New(cfg, l, router, c, recorder, events)
}
