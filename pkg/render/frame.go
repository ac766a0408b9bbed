package render

import "github.com/peter-kozarec/chandelier/pkg/ohlc"

// VisibleRange is the inclusive range of raw bar indices shown by the host.
type VisibleRange struct {
	From int
	To   int
}

// Intersects reports whether [start, end] overlaps the range.
func (r VisibleRange) Intersects(start, end int) bool {
	return start <= r.To && end >= r.From
}

// Frame carries what the host supplies for one paint call.
type Frame struct {
	Bars         []ohlc.Source
	BarSpacing   float64
	VisibleRange *VisibleRange

	HorizontalPixelRatio float64
	VerticalPixelRatio   float64
}

// PriceToCoordinate converts a price to a media (CSS pixel) y coordinate.
type PriceToCoordinate func(price float64) float64

func (f Frame) ratios() (hpr, vpr float64) {
	hpr, vpr = f.HorizontalPixelRatio, f.VerticalPixelRatio
	if hpr <= 0 {
		hpr = 1
	}
	if vpr <= 0 {
		vpr = 1
	}
	return hpr, vpr
}
