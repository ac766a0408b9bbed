package render

import (
	"math"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
)

// Candle is an aggregated bar placed in bitmap pixel space.
type Candle struct {
	Bar ohlc.BarItem

	Left   float64
	Right  float64
	Middle float64
	Body   float64

	High  float64
	Low   float64
	Open  float64
	Close float64

	// Top and Bottom are the body edges, Y its centre and Span its positive height.
	Top    float64
	Bottom float64
	Y      float64
	Span   float64
}

// Layout places the bars intersecting the visible range. Bars outside of it are dropped.
func Layout(bars []ohlc.BarItem, frame Frame, options ohlc.Options, p2c PriceToCoordinate) []Candle {
	if frame.VisibleRange == nil {
		return nil
	}
	hpr, vpr := frame.ratios()
	options = options.Normalized()

	slot := frame.BarSpacing * hpr
	body := slot * options.BarSpacing

	candles := make([]Candle, 0, len(bars))
	for _, bar := range bars {
		if !frame.VisibleRange.Intersects(bar.StartIndex, bar.EndIndex) {
			continue
		}

		span := body
		if n := bar.Len(); n > 1 {
			span = slot*float64(n) - (1-options.BarSpacing)*slot
		}
		left := bar.X*hpr - body/2

		c := Candle{
			Bar:    bar,
			Left:   left,
			Right:  left + span,
			Middle: left + span/2,
			Body:   body,
			High:   p2c(bar.High) * vpr,
			Low:    p2c(bar.Low) * vpr,
			Open:   p2c(bar.Open) * vpr,
			Close:  p2c(bar.Close) * vpr,
		}
		c.Top = math.Min(c.Open, c.Close)
		c.Bottom = math.Max(c.Open, c.Close)
		c.Span = math.Max(1, c.Bottom-c.Top)
		c.Y = (c.Top + c.Bottom) / 2

		candles = append(candles, c)
	}
	return candles
}

// WickWidth is the wick thickness in bitmap pixels for the given horizontal pixel ratio.
func WickWidth(hpr float64) float64 {
	return math.Max(1, math.Floor(hpr))
}
