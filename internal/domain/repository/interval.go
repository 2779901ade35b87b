package repository

// Interval is a candle bucket size accepted by the market data provider.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
)

// Intervals lists supported intervals in display order.
var Intervals = []Interval{Interval1m, Interval5m, Interval15m, Interval1h, Interval4h, Interval1d}

// IsValidInterval returns true if iv is a supported interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case Interval1m, Interval5m, Interval15m, Interval1h, Interval4h, Interval1d:
		return true
	default:
		return false
	}
}

// DefaultInterval returns the default interval.
func DefaultInterval() Interval { return Interval1h }

// NormalizeInterval converts a raw string to a valid interval (or default).
func NormalizeInterval(s string) Interval {
	if s == "" {
		return DefaultInterval()
	}
	// Accept the display form of the daily interval.
	if s == "1D" {
		return Interval1d
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv
	}
	return DefaultInterval()
}

// Seconds returns the bucket width in seconds.
func (iv Interval) Seconds() int64 {
	switch iv {
	case Interval1m:
		return 60
	case Interval5m:
		return 300
	case Interval15m:
		return 900
	case Interval1h:
		return 3600
	case Interval4h:
		return 14400
	case Interval1d:
		return 86400
	default:
		return 3600
	}
}
