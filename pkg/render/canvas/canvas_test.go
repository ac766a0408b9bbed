package canvas

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"
)

func TestRoundRectPath(t *testing.T) {
	rec := NewRecorder()
	roundRectPath(rec, 10, 20, -6, 4, 5)

	moves := rec.Find("MoveTo")
	require.Len(t, moves, 1)
	// x flipped to 4, radius limited to min(6, 4) / 2
	assert.Equal(t, []float64{6, 20}, moves[0].Args)
	assert.Equal(t, 4, rec.Count("QuadraticCurveTo"))
	assert.Equal(t, 4, rec.Count("LineTo"))
	assert.Equal(t, 1, rec.Count("ClosePath"))
}

func TestEllipse(t *testing.T) {
	rec := NewRecorder()
	Ellipse(rec, 5, 6, 2, 3)

	arcs := rec.Find("Arc")
	require.Len(t, arcs, 1)
	assert.Equal(t, []float64{5, 6, 2, 3, 0, 2 * math.Pi}, arcs[0].Args)
}

func TestRecorder_State(t *testing.T) {
	rec := NewRecorder()
	rec.SetFillColor("#111111")
	rec.Save()
	rec.SetFillColor("#222222")
	rec.SetLineDash([]float64{1, 2})
	rec.Fill()
	rec.Restore()
	rec.Fill()

	fills := rec.Find("Fill")
	require.Len(t, fills, 2)
	assert.Equal(t, "#222222", fills[0].FillColor)
	assert.Equal(t, []float64{1, 2}, fills[0].LineDash)
	assert.Equal(t, 1, fills[0].Depth)
	assert.Equal(t, "#111111", fills[1].FillColor)
	assert.Empty(t, fills[1].LineDash)
	assert.True(t, rec.Balanced())

	rec.Reset()
	assert.Empty(t, rec.Ops)
}

func TestChart_State(t *testing.T) {
	c := NewChart(nil)
	c.SetLineWidth(3)
	c.SetLineDash([]float64{2, 2})
	c.Save()
	c.SetLineWidth(-1)
	assert.Equal(t, 3.0, c.current.lineWidth)
	c.SetLineWidth(5)
	c.SetLineDash(nil)
	c.Restore()

	assert.Equal(t, 3.0, c.current.lineWidth)
	assert.Equal(t, []float64{2, 2}, c.current.dash)

	c.Restore()
	assert.Equal(t, 3.0, c.current.lineWidth)
}

func TestChart_Path(t *testing.T) {
	c := NewChart(nil)
	c.BeginPath()
	c.Rect(0, 0, 10, 5)
	assert.Len(t, c.path, 5)

	c.Arc(0, 0, 4, 4, 0, math.Pi)
	assert.Len(t, c.path, 5+arcSegments/2+1)

	c.BeginPath()
	assert.Empty(t, c.path)

	// empty paths and transparent colors never reach the renderer
	c.Fill()
	c.Stroke()
}

func TestChart_Render(t *testing.T) {
	for _, provider := range []chart.RendererProvider{chart.PNG, chart.SVG} {
		r, err := provider(64, 64)
		require.NoError(t, err)

		c := NewChart(r)
		c.Save()
		c.SetFillColor("rgba(0, 103, 33, 0.5)")
		c.SetStrokeColor("#006721")
		c.SetLineWidth(2)
		c.SetLineDash([]float64{2, 2})
		c.BeginPath()
		c.RoundRect(8, 8, 40, 30, 4)
		c.Fill()
		c.Stroke()
		c.BeginPath()
		Ellipse(c, 32, 32, 10, 6)
		c.Fill()
		c.Restore()

		var buf bytes.Buffer
		require.NoError(t, r.Save(&buf))
		assert.NotZero(t, buf.Len())
	}
}
