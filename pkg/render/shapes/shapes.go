// Package shapes holds the candle body primitives. Every primitive receives bitmap pixel
// coordinates: left and right body edges, the vertical centre y and the positive vertical
// span of the body. Colors and line style are set by the caller.
package shapes

import (
	"math"

	"github.com/peter-kozarec/chandelier/pkg/render/canvas"
	"github.com/peter-kozarec/chandelier/pkg/utility/color"
)

const (
	slantFactor = 0.2
	cubeDepth   = 0.25
)

func bounds(y, span float64) (top, bottom float64) {
	return y - span/2, y + span/2
}

func paint(ctx canvas.Context) {
	ctx.Fill()
	ctx.Stroke()
}

func Rectangle(ctx canvas.Context, left, right, y, span float64) {
	top, _ := bounds(y, span)
	ctx.BeginPath()
	ctx.Rect(left, top, right-left, span)
	paint(ctx)
}

func Rounded(ctx canvas.Context, left, right, y, span, radius float64) {
	top, _ := bounds(y, span)
	ctx.BeginPath()
	ctx.RoundRect(left, top, right-left, span, radius)
	paint(ctx)
}

func Ellipse(ctx canvas.Context, left, right, middle, y, span float64) {
	ctx.BeginPath()
	canvas.Ellipse(ctx, middle, y, (right-left)/2, span/2)
	paint(ctx)
}

// Arrow draws the body with a head that reaches the high for rising units and the low for
// falling ones.
func Arrow(ctx canvas.Context, left, right, middle, y, span, high, low float64, isUp bool) {
	top, bottom := bounds(y, span)
	ctx.BeginPath()
	if isUp {
		ctx.MoveTo(left, bottom)
		ctx.LineTo(left, top)
		ctx.LineTo(middle, math.Min(high, top))
		ctx.LineTo(right, top)
		ctx.LineTo(right, bottom)
	} else {
		ctx.MoveTo(left, top)
		ctx.LineTo(right, top)
		ctx.LineTo(right, bottom)
		ctx.LineTo(middle, math.Max(low, bottom))
		ctx.LineTo(left, bottom)
	}
	ctx.ClosePath()
	paint(ctx)
}

// Cube draws a box with a visible top face and side face. The box front covers the body
// and a centre line covers the high/low extent since no wicks are drawn for it.
func Cube(ctx canvas.Context, left, right, y, span, high, low float64, fill, border string, isUp bool) {
	top, bottom := bounds(y, span)
	depth := (right - left) * cubeDepth
	front := right - depth

	ctx.SetStrokeColor(border)
	ctx.BeginPath()
	ctx.MoveTo(left+(front-left)/2, high)
	ctx.LineTo(left+(front-left)/2, low)
	ctx.Stroke()

	topFace, sideFace := fill, fill
	if c, err := color.Darken(fill, 0.2); err == nil {
		topFace = c
	}
	if c, err := color.Darken(fill, 0.4); err == nil {
		sideFace = c
	}
	if !isUp {
		topFace, sideFace = sideFace, topFace
	}

	ctx.SetFillColor(topFace)
	ctx.BeginPath()
	ctx.MoveTo(left, top)
	ctx.LineTo(left+depth, top-depth)
	ctx.LineTo(right, top-depth)
	ctx.LineTo(front, top)
	ctx.ClosePath()
	paint(ctx)

	ctx.SetFillColor(sideFace)
	ctx.BeginPath()
	ctx.MoveTo(front, top)
	ctx.LineTo(right, top-depth)
	ctx.LineTo(right, bottom-depth)
	ctx.LineTo(front, bottom)
	ctx.ClosePath()
	paint(ctx)

	ctx.SetFillColor(fill)
	ctx.BeginPath()
	ctx.Rect(left, top, front-left, span)
	paint(ctx)
}

// Polygon draws a hexagon whose tips sit halfway between the body and the extremes, where
// the shortened wicks end.
func Polygon(ctx canvas.Context, left, right, y, span, high, low float64) {
	top, bottom := bounds(y, span)
	middle := left + (right-left)/2
	ctx.BeginPath()
	ctx.MoveTo(left, top)
	ctx.LineTo(middle, (high+top)/2)
	ctx.LineTo(right, top)
	ctx.LineTo(right, bottom)
	ctx.LineTo(middle, (low+bottom)/2)
	ctx.LineTo(left, bottom)
	ctx.ClosePath()
	paint(ctx)
}

// Bar draws a classic OHLC bar: the high/low line with the open tick on the left and the
// close tick on the right.
func Bar(ctx canvas.Context, left, right, high, low, open, close float64) {
	middle := left + (right-left)/2
	ctx.BeginPath()
	ctx.MoveTo(middle, high)
	ctx.LineTo(middle, low)
	ctx.MoveTo(left, open)
	ctx.LineTo(middle, open)
	ctx.MoveTo(middle, close)
	ctx.LineTo(right, close)
	ctx.Stroke()
}

// Slanted draws a parallelogram leaning right for rising units and left for falling ones.
func Slanted(ctx canvas.Context, left, right, y, span float64, isUp bool) {
	top, bottom := bounds(y, span)
	skew := (right - left) * slantFactor
	if !isUp {
		skew = -skew
	}
	ctx.BeginPath()
	ctx.MoveTo(left-skew/2, bottom)
	ctx.LineTo(left+skew/2, top)
	ctx.LineTo(right+skew/2, top)
	ctx.LineTo(right-skew/2, bottom)
	ctx.ClosePath()
	paint(ctx)
}

// Wick draws a vertical rounded segment of the given width centred on x. Segments without
// positive height are skipped.
func Wick(ctx canvas.Context, x, top, bottom, width float64) {
	height := bottom - top
	if height <= 0 {
		return
	}
	ctx.BeginPath()
	ctx.RoundRect(x-math.Floor(width/2), top, width, height, width/2)
	paint(ctx)
}
