package ohlc

import (
	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

// Source pairs a raw bar with the horizontal position assigned to it by the host.
type Source struct {
	Bar common.Bar
	X   float64
}

// NewItems builds one BarItem per source record. Index i of the result covers raw
// index i. A nil logger discards the diagnostics.
func NewItems(sources []Source, options Options, logger *zap.Logger) []BarItem {
	if logger == nil {
		logger = zap.NewNop()
	}
	items := make([]BarItem, len(sources))
	for i, src := range sources {
		items[i] = NewItem(src, i, options, logger)
	}
	return items
}

// NewItem converts a single source record. Numeric fields that cannot be represented fall
// back to 0 and unknown shape names fall back to ShapeRectangle.
func NewItem(src Source, index int, options Options, logger *zap.Logger) BarItem {
	bar := src.Bar

	item := BarItem{
		Time:       bar.TimeStamp,
		Open:       bar.Open.Float64OrZero(),
		High:       bar.High.Float64OrZero(),
		Low:        bar.Low.Float64OrZero(),
		Close:      bar.Close.Float64OrZero(),
		Volume:     bar.Volume.Float64OrZero(),
		X:          src.X,
		StartIndex: index,
		EndIndex:   index,
		NewBar:     bar.NewBar,
		Overrides: Overrides{
			Color:       bar.Color,
			BorderColor: bar.BorderColor,
			WickColor:   bar.WickColor,
		},
	}
	item.IsUp = item.Close > item.Open

	if bar.Shape != nil {
		shape, ok := ParseShape(*bar.Shape)
		if !ok && logger != nil {
			logger.Warn("unknown candle shape, using rectangle",
				zap.String("shape", *bar.Shape),
				zap.Int("index", index))
		}
		item.Overrides.Shape = &shape
	}
	if bar.LineStyle != nil {
		style := LineStyle(*bar.LineStyle)
		item.Overrides.LineStyle = &style
	}
	if bar.LineWidth != nil {
		width := *bar.LineWidth
		item.Overrides.LineWidth = &width
	}

	single := []BarItem{item}
	item.Shape = options.ResolveShape(single)
	item.LineStyle = options.ResolveLineStyle(single)
	item.LineWidth = options.ResolveLineWidth(single)
	item.Color = CoalesceString(bar.Color, options.Color, DefaultNeutralColor)
	item.BorderColor = CoalesceString(bar.BorderColor, options.BorderColor, DefaultNeutralColor)
	item.WickColor = CoalesceString(bar.WickColor, options.WickColor, DefaultNeutralColor)

	return item
}
