// Package binance implements the MarketData provider against the Binance
// spot REST API.
package binance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"WyckoffLab/internal/domain/models"
	drepo "WyckoffLab/internal/domain/repository"
)

const klinesPath = "/api/v3/klines"

// Client fetches OHLC series from the Binance klines endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Binance MarketData provider.
func New(baseURL string, timeout time.Duration) drepo.MarketData {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchCandles pulls up to limit klines for (symbol, interval). Any
// malformed row rejects the whole response; a partial series is never
// returned.
func (c *Client) FetchCandles(ctx context.Context, symbol string, interval drepo.Interval, limit int) ([]models.Candle, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("interval", string(interval))
	q.Set("limit", strconv.Itoa(limit))

	u := c.baseURL + klinesPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("binance request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("binance klines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("binance klines: status %d: %s", resp.StatusCode, body)
	}

	// Each kline row is a heterogeneous array:
	// [openTime(ms), "open", "high", "low", "close", "volume", ...]
	var rows [][]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("binance klines decode: %w", err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for i, row := range rows {
		candle, err := parseKline(row)
		if err != nil {
			return nil, fmt.Errorf("binance klines row %d: %w", i, err)
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func parseKline(row []json.RawMessage) (models.Candle, error) {
	if len(row) < 5 {
		return models.Candle{}, fmt.Errorf("short row: %d fields", len(row))
	}

	var openMs int64
	if err := json.Unmarshal(row[0], &openMs); err != nil {
		return models.Candle{}, fmt.Errorf("open time: %w", err)
	}

	prices := make([]float64, 4)
	for i := 0; i < 4; i++ {
		var s string
		if err := json.Unmarshal(row[i+1], &s); err != nil {
			return models.Candle{}, fmt.Errorf("price field %d: %w", i+1, err)
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return models.Candle{}, fmt.Errorf("price field %d: %w", i+1, err)
		}
		prices[i] = v
	}

	candle := models.Candle{
		Time:  openMs / 1000,
		Open:  prices[0],
		High:  prices[1],
		Low:   prices[2],
		Close: prices[3],
	}
	if err := candle.Validate(); err != nil {
		return models.Candle{}, err
	}
	return candle, nil
}
