// Package chart maps between pixel space and domain space for a rendered
// candle chart. The mapping is linear on both axes; callers fit it to the
// visible series and translate click coordinates back into (time, price).
package chart

import (
	"errors"

	"WyckoffLab/internal/domain/models"
)

// ErrDegenerateSurface marks a surface whose pixel or domain extent is zero,
// which would make the mapping non-invertible.
var ErrDegenerateSurface = errors.New("degenerate chart surface")

const priceMarginFrac = 0.05 // vertical headroom above and below the series

// Surface is a linear pixel-to-domain mapping for one viewport. X grows
// rightward with time, Y grows downward while price grows upward.
type Surface struct {
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	TimeMin  int64   `json:"timeMin"`
	TimeMax  int64   `json:"timeMax"`
	PriceMin float64 `json:"priceMin"`
	PriceMax float64 `json:"priceMax"`
}

// NewSurface builds a surface and rejects zero-extent dimensions or ranges.
func NewSurface(width, height int, timeMin, timeMax int64, priceMin, priceMax float64) (Surface, error) {
	s := Surface{
		Width:    width,
		Height:   height,
		TimeMin:  timeMin,
		TimeMax:  timeMax,
		PriceMin: priceMin,
		PriceMax: priceMax,
	}
	if err := s.validate(); err != nil {
		return Surface{}, err
	}
	return s, nil
}

func (s Surface) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return ErrDegenerateSurface
	}
	if s.TimeMax <= s.TimeMin {
		return ErrDegenerateSurface
	}
	if s.PriceMax <= s.PriceMin {
		return ErrDegenerateSurface
	}
	return nil
}

// FitError reports whether the surface is usable for coordinate mapping.
func (s Surface) FitError() error {
	return s.validate()
}

// FitSeries derives the domain ranges from a series: the full time span on X
// and the low/high envelope with 5% headroom on Y. The pixel size is kept.
func (s Surface) FitSeries(candles []models.Candle) (Surface, error) {
	if len(candles) < 2 {
		return Surface{}, ErrDegenerateSurface
	}

	lo, hi := candles[0].Low, candles[0].High
	for _, c := range candles[1:] {
		if c.Low < lo {
			lo = c.Low
		}
		if c.High > hi {
			hi = c.High
		}
	}

	margin := (hi - lo) * priceMarginFrac
	if margin == 0 {
		// Flat series still needs a usable vertical range.
		margin = lo * priceMarginFrac
		if margin == 0 {
			margin = 1
		}
	}

	fitted := Surface{
		Width:    s.Width,
		Height:   s.Height,
		TimeMin:  candles[0].Time,
		TimeMax:  candles[len(candles)-1].Time,
		PriceMin: lo - margin,
		PriceMax: hi + margin,
	}
	if err := fitted.validate(); err != nil {
		return Surface{}, err
	}
	return fitted, nil
}

// Resize returns a copy with new pixel dimensions, keeping the domain ranges.
func (s Surface) Resize(width, height int) (Surface, error) {
	s.Width = width
	s.Height = height
	if err := s.validate(); err != nil {
		return Surface{}, err
	}
	return s, nil
}

// TimeAt maps a pixel X to a time. Coordinates outside the viewport
// extrapolate along the same line.
func (s Surface) TimeAt(x float64) int64 {
	frac := x / float64(s.Width)
	return s.TimeMin + int64(frac*float64(s.TimeMax-s.TimeMin))
}

// PriceAt maps a pixel Y to a price; Y=0 is the top of the viewport.
func (s Surface) PriceAt(y float64) float64 {
	frac := 1 - y/float64(s.Height)
	return s.PriceMin + frac*(s.PriceMax-s.PriceMin)
}

// CoordOf maps a (time, price) point to pixel coordinates.
func (s Surface) CoordOf(time int64, price float64) (x, y float64) {
	x = float64(time-s.TimeMin) / float64(s.TimeMax-s.TimeMin) * float64(s.Width)
	y = (1 - (price-s.PriceMin)/(s.PriceMax-s.PriceMin)) * float64(s.Height)
	return x, y
}
