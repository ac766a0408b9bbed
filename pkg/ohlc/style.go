package ohlc

import "github.com/peter-kozarec/chandelier/pkg/utility/color"

// The resolvers below apply the fallback chain bar override -> series option -> built-in
// constant. Overrides are scanned left to right and the last one found wins.

func (o Options) ResolveShape(items []BarItem) Shape {
	return Coalesce(
		LastOverride(items, func(b BarItem) *Shape { return b.Overrides.Shape }),
		o.shapeDefault(),
		ptr(ShapeRectangle),
	)
}

func (o Options) ResolveLineStyle(items []BarItem) LineStyle {
	return Coalesce(
		LastOverride(items, func(b BarItem) *LineStyle { return b.Overrides.LineStyle }),
		&o.LineStyle,
		ptr(LineStyleSolid),
	)
}

func (o Options) ResolveLineWidth(items []BarItem) int {
	return Coalesce(
		LastOverride(items, func(b BarItem) *int { return b.Overrides.LineWidth }),
		o.lineWidthDefault(),
		ptr(DefaultLineWidth),
	)
}

// ResolveColors picks fill, border and wick colors for a unit with the given direction.
// The border falls back to the fill at full opacity and the wick falls back to the border.
func (o Options) ResolveColors(items []BarItem, isUp bool) (fill, border, wick string) {
	configFill, configBorder, configWick := o.DownColor, o.BorderDownColor, o.WickDownColor
	baseFill := o.DownBaseColor()
	if isUp {
		configFill, configBorder, configWick = o.UpColor, o.BorderUpColor, o.WickUpColor
		baseFill = o.UpBaseColor()
	}

	fill = CoalesceString(
		LastString(items, func(b BarItem) string { return b.Overrides.Color }),
		configFill,
		baseFill,
	)

	opaqueFill, err := color.SetOpacity(fill, 1)
	if err != nil {
		opaqueFill = fill
	}
	border = CoalesceString(
		LastString(items, func(b BarItem) string { return b.Overrides.BorderColor }),
		configBorder,
		opaqueFill,
	)

	wick = CoalesceString(
		LastString(items, func(b BarItem) string { return b.Overrides.WickColor }),
		configWick,
		border,
	)
	return fill, border, wick
}
