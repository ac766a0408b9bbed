package ohlc

import "time"

// Overrides are the per-bar style values supplied by the source record. Nil or empty means
// the series configuration applies.
type Overrides struct {
	Shape     *Shape
	LineStyle *LineStyle
	LineWidth *int

	Color       string
	BorderColor string
	WickColor   string
}

// BarItem is one drawable unit: either a raw bar or the consolidation of a bucket of them.
// Prices stay in price space; the renderer converts them to pixels.
type BarItem struct {
	Time time.Time

	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	X    float64
	IsUp bool

	Color       string
	BorderColor string
	WickColor   string

	Shape     Shape
	LineStyle LineStyle
	LineWidth int

	StartIndex   int
	EndIndex     int
	IsInProgress bool
	NewBar       bool

	Overrides Overrides
}

// Len is the number of raw bars covered by the item.
func (b BarItem) Len() int {
	return b.EndIndex - b.StartIndex + 1
}

// IsBullish reports the raw direction used for trend grouping (close >= open).
func (b BarItem) IsBullish() bool {
	return b.Close >= b.Open
}
