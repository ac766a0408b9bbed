package aggregate

import (
	"math"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
)

// Consolidate folds a bucket into a single BarItem. The bucket must not be empty.
func Consolidate(bucket []ohlc.BarItem, options ohlc.Options, isInProgress bool) ohlc.BarItem {
	if len(bucket) == 0 {
		panic("cannot consolidate an empty bucket")
	}

	first, last := bucket[0], bucket[len(bucket)-1]

	out := ohlc.BarItem{
		Time:         first.Time,
		Open:         first.Open,
		High:         first.High,
		Low:          first.Low,
		Close:        last.Close,
		X:            first.X,
		StartIndex:   first.StartIndex,
		EndIndex:     last.EndIndex,
		IsInProgress: isInProgress,
	}

	for _, item := range bucket {
		out.High = math.Max(out.High, item.High)
		out.Low = math.Min(out.Low, item.Low)
		if !math.IsNaN(item.Volume) {
			out.Volume += item.Volume
		}
		if item.NewBar {
			out.NewBar = true
		}
	}
	out.IsUp = out.Close > out.Open

	out.Color, out.BorderColor, out.WickColor = options.ResolveColors(bucket, out.IsUp)
	out.Shape = options.ResolveShape(bucket)
	out.LineStyle = options.ResolveLineStyle(bucket)
	out.LineWidth = options.ResolveLineWidth(bucket)

	out.Overrides = ohlc.Overrides{
		Shape:       ohlc.LastOverride(bucket, func(b ohlc.BarItem) *ohlc.Shape { return b.Overrides.Shape }),
		LineStyle:   ohlc.LastOverride(bucket, func(b ohlc.BarItem) *ohlc.LineStyle { return b.Overrides.LineStyle }),
		LineWidth:   ohlc.LastOverride(bucket, func(b ohlc.BarItem) *int { return b.Overrides.LineWidth }),
		Color:       ohlc.LastString(bucket, func(b ohlc.BarItem) string { return b.Overrides.Color }),
		BorderColor: ohlc.LastString(bucket, func(b ohlc.BarItem) string { return b.Overrides.BorderColor }),
		WickColor:   ohlc.LastString(bucket, func(b ohlc.BarItem) string { return b.Overrides.WickColor }),
	}

	return out
}
