package models

import (
	"fmt"
	"math"
)

// Candle is one OHLC sample over a fixed time bucket. Time is unix seconds.
type Candle struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool {
	return c.Close > c.Open
}

// Validate checks OHLC bounds: all fields finite and non-negative,
// low <= min(open, close) <= max(open, close) <= high.
func (c Candle) Validate() error {
	for _, v := range []float64{c.Open, c.High, c.Low, c.Close} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("candle t=%d: non-finite price", c.Time)
		}
		if v < 0 {
			return fmt.Errorf("candle t=%d: negative price", c.Time)
		}
	}
	lo := math.Min(c.Open, c.Close)
	hi := math.Max(c.Open, c.Close)
	if c.Low > lo || hi > c.High {
		return fmt.Errorf("candle t=%d: body outside low/high range", c.Time)
	}
	return nil
}
