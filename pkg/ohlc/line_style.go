package ohlc

// LineStyle follows the numbering used by lightweight-charts hosts.
type LineStyle int

const (
	LineStyleSolid LineStyle = iota
	LineStyleDotted
	LineStyleDashed
	LineStyleLargeDashed
	LineStyleSparseDotted
)

// Dash returns the dash pattern for a stroke of the given width. Solid lines have no pattern.
func (s LineStyle) Dash(width float64) []float64 {
	switch s {
	case LineStyleDotted:
		return []float64{width, width}
	case LineStyleDashed:
		return []float64{2 * width, 2 * width}
	case LineStyleLargeDashed:
		return []float64{6 * width, 6 * width}
	case LineStyleSparseDotted:
		return []float64{width, 4 * width}
	default:
		return nil
	}
}
