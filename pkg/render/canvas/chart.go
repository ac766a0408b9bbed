package canvas

import (
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/peter-kozarec/chandelier/pkg/utility/color"
)

const arcSegments = 48

type segmentKind int

const (
	segMove segmentKind = iota
	segLine
	segQuad
	segClose
)

type segment struct {
	kind segmentKind
	pts  [4]float64
}

type state struct {
	fill      drawing.Color
	stroke    drawing.Color
	lineWidth float64
	dash      []float64
}

// Chart draws on a go-chart renderer. go-chart consumes the path on every Fill and Stroke,
// so the path is kept here and replayed for each paint operation.
type Chart struct {
	r chart.Renderer

	current state
	stack   []state
	path    []segment
}

func NewChart(r chart.Renderer) *Chart {
	return &Chart{
		r:       r,
		current: state{lineWidth: 1},
	}
}

func (c *Chart) Save() {
	saved := c.current
	saved.dash = append([]float64(nil), c.current.dash...)
	c.stack = append(c.stack, saved)
}

func (c *Chart) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.current = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Chart) SetFillColor(s string)   { c.current.fill = toDrawing(s) }
func (c *Chart) SetStrokeColor(s string) { c.current.stroke = toDrawing(s) }

func (c *Chart) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) {
		c.current.lineWidth = w
	}
}

func (c *Chart) SetLineDash(dash []float64) {
	c.current.dash = append([]float64(nil), dash...)
}

func (c *Chart) BeginPath() {
	c.path = c.path[:0]
}

func (c *Chart) MoveTo(x, y float64) {
	c.path = append(c.path, segment{kind: segMove, pts: [4]float64{x, y}})
}

func (c *Chart) LineTo(x, y float64) {
	c.path = append(c.path, segment{kind: segLine, pts: [4]float64{x, y}})
}

func (c *Chart) QuadraticCurveTo(cx, cy, x, y float64) {
	c.path = append(c.path, segment{kind: segQuad, pts: [4]float64{cx, cy, x, y}})
}

// Arc is flattened into line segments.
func (c *Chart) Arc(cx, cy, rx, ry, start, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * arcSegments))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		x, y := cx+rx*math.Cos(a), cy+ry*math.Sin(a)
		if i == 0 && len(c.path) == 0 {
			c.MoveTo(x, y)
			continue
		}
		c.LineTo(x, y)
	}
}

func (c *Chart) Rect(x, y, w, h float64) {
	x, y, w, h = normalizeRect(x, y, w, h)
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *Chart) RoundRect(x, y, w, h, r float64) {
	roundRectPath(c, x, y, w, h, r)
}

func (c *Chart) ClosePath() {
	c.path = append(c.path, segment{kind: segClose})
}

func (c *Chart) Fill() {
	if len(c.path) == 0 || c.current.fill.A == 0 {
		return
	}
	c.r.ResetStyle()
	c.r.SetFillColor(c.current.fill)
	c.replay()
	c.r.Fill()
}

func (c *Chart) Stroke() {
	if len(c.path) == 0 || c.current.stroke.A == 0 {
		return
	}
	c.r.ResetStyle()
	c.r.SetStrokeColor(c.current.stroke)
	c.r.SetStrokeWidth(c.current.lineWidth)
	if len(c.current.dash) > 0 {
		c.r.SetStrokeDashArray(c.current.dash)
	}
	c.replay()
	c.r.Stroke()
}

func (c *Chart) replay() {
	for _, s := range c.path {
		switch s.kind {
		case segMove:
			c.r.MoveTo(px(s.pts[0]), px(s.pts[1]))
		case segLine:
			c.r.LineTo(px(s.pts[0]), px(s.pts[1]))
		case segQuad:
			c.r.QuadCurveTo(px(s.pts[0]), px(s.pts[1]), px(s.pts[2]), px(s.pts[3]))
		case segClose:
			c.r.Close()
		}
	}
}

func px(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Round(v))
}

// toDrawing converts a CSS color. Unparsable input becomes transparent.
func toDrawing(s string) drawing.Color {
	c, err := color.Parse(s)
	if err != nil {
		return drawing.Color{}
	}
	return c.Drawing()
}
