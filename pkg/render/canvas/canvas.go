package canvas

import "math"

// Context is the subset of a 2D canvas used by the candle primitives. Coordinates are in
// bitmap pixels. The current path survives Fill and Stroke until the next BeginPath.
type Context interface {
	Save()
	Restore()

	SetFillColor(c string)
	SetStrokeColor(c string)
	SetLineWidth(w float64)
	SetLineDash(dash []float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	// Arc appends an elliptical arc around (cx, cy) starting at angle start and sweeping
	// sweep radians. Angles follow the canvas convention (0 points right, y grows down).
	Arc(cx, cy, rx, ry, start, sweep float64)
	Rect(x, y, w, h float64)
	RoundRect(x, y, w, h, r float64)
	ClosePath()

	Fill()
	Stroke()
}

// Ellipse appends a closed ellipse to the current path.
func Ellipse(ctx Context, cx, cy, rx, ry float64) {
	ctx.MoveTo(cx+rx, cy)
	ctx.Arc(cx, cy, rx, ry, 0, 2*math.Pi)
	ctx.ClosePath()
}

// normalizeRect flips negative extents so that (x, y) is the top left corner.
func normalizeRect(x, y, w, h float64) (float64, float64, float64, float64) {
	if w < 0 {
		x, w = x+w, -w
	}
	if h < 0 {
		y, h = y+h, -h
	}
	return x, y, w, h
}

// roundRectPath emits a rounded rectangle through the basic path operations of ctx. The
// radius is limited to half of the shorter side.
func roundRectPath(ctx Context, x, y, w, h, r float64) {
	x, y, w, h = normalizeRect(x, y, w, h)
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))

	ctx.MoveTo(x+r, y)
	ctx.LineTo(x+w-r, y)
	ctx.QuadraticCurveTo(x+w, y, x+w, y+r)
	ctx.LineTo(x+w, y+h-r)
	ctx.QuadraticCurveTo(x+w, y+h, x+w-r, y+h)
	ctx.LineTo(x+r, y+h)
	ctx.QuadraticCurveTo(x, y+h, x, y+h-r)
	ctx.LineTo(x, y+r)
	ctx.QuadraticCurveTo(x, y, x+r, y)
	ctx.ClosePath()
}
