package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Logger struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logger"`
	Binance struct {
		BaseURL     string        `yaml:"base_url"`
		Symbols     []string      `yaml:"symbols"`
		CandleLimit int           `yaml:"candle_limit"`
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"binance"`
	Chart struct {
		RefreshInterval time.Duration `yaml:"refresh_interval"`
		CandleCacheTTL  time.Duration `yaml:"candle_cache_ttl"`
		RateCapacity    float64       `yaml:"rate_capacity"`
		RateRefill      float64       `yaml:"rate_refill_per_sec"`
	} `yaml:"chart"`
	Auth struct {
		Enabled      bool          `yaml:"enabled"`
		TokenInfoURL string        `yaml:"tokeninfo_url"`
		SessionTTL   time.Duration `yaml:"session_ttl"`
		Timeout      time.Duration `yaml:"timeout"`
	} `yaml:"auth"`
	Progress struct {
		Path string `yaml:"path"`
	} `yaml:"progress"`
	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		Prefix   string `yaml:"prefix"`
	} `yaml:"redis"`
	Recorder struct {
		Enabled    bool   `yaml:"enabled"`
		Database   string `yaml:"database"`
		Table      string `yaml:"table"`
		ClickHouse struct {
			Host         string        `yaml:"host"`
			Port         int           `yaml:"port"`
			User         string        `yaml:"user"`
			Password     string        `yaml:"password"`
			UseHTTP      bool          `yaml:"use_http"`
			DialTimeout  time.Duration `yaml:"dial_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
		} `yaml:"clickhouse"`
	} `yaml:"recorder"`
	Events struct {
		Enabled     bool          `yaml:"enabled"`
		Brokers     []string      `yaml:"brokers"`
		Topic       string        `yaml:"topic"`
		LogTopic    string        `yaml:"log_topic"`
		Compression string        `yaml:"compression"`
		Linger      time.Duration `yaml:"linger"`
	} `yaml:"events"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		c.Binance.BaseURL = v
	}
	if v := os.Getenv("SYMBOLS"); v != "" {
		c.Binance.Symbols = strings.Split(v, ",")
	}
	if v := os.Getenv("PROGRESS_PATH"); v != "" {
		c.Progress.Path = v
	}
	if v := os.Getenv("REDIS_HOST"); v != "" {
		c.Redis.Host = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Events.Brokers = strings.Split(v, ",")
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Binance.BaseURL == "" {
		c.Binance.BaseURL = "https://api.binance.com"
	}
	if c.Binance.CandleLimit == 0 {
		c.Binance.CandleLimit = 200
	}
	if c.Binance.Timeout == 0 {
		c.Binance.Timeout = 10 * time.Second
	}
	if c.Chart.RefreshInterval == 0 {
		c.Chart.RefreshInterval = 60 * time.Second
	}
	if c.Chart.CandleCacheTTL == 0 {
		c.Chart.CandleCacheTTL = 30 * time.Second
	}
	if c.Chart.RateCapacity == 0 {
		c.Chart.RateCapacity = 10
	}
	if c.Chart.RateRefill == 0 {
		c.Chart.RateRefill = 2
	}
	if c.Auth.TokenInfoURL == "" {
		c.Auth.TokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"
	}
	if c.Auth.SessionTTL == 0 {
		c.Auth.SessionTTL = 30 * time.Minute
	}
	if c.Auth.Timeout == 0 {
		c.Auth.Timeout = 5 * time.Second
	}
	if c.Progress.Path == "" {
		c.Progress.Path = "data/progress.json"
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "console"
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
	if c.Recorder.Database == "" {
		c.Recorder.Database = "wyckofflab"
	}
	if c.Recorder.Table == "" {
		c.Recorder.Table = "phase_history"
	}
	if c.Events.Topic == "" {
		c.Events.Topic = "wyckofflab.phase_changes"
	}
	if c.Events.LogTopic == "" {
		c.Events.LogTopic = "wyckofflab.error_logs"
	}
	if c.Events.Compression == "" {
		c.Events.Compression = "gzip"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if len(c.Binance.Symbols) == 0 {
		return fmt.Errorf("binance.symbols cannot be empty")
	}
	if c.Binance.CandleLimit < 50 {
		return fmt.Errorf("binance.candle_limit must be at least 50, got %d", c.Binance.CandleLimit)
	}
	if c.Recorder.Enabled && c.Recorder.ClickHouse.Host == "" {
		return fmt.Errorf("recorder.clickhouse.host is required when recorder is enabled")
	}
	if c.Events.Enabled && len(c.Events.Brokers) == 0 {
		return fmt.Errorf("events.brokers is required when events are enabled")
	}
	return nil
}
