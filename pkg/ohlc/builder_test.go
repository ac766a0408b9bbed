package ohlc

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

func createBar(open, high, low, close, volume float64) common.Bar {
	return common.Bar{
		TimeStamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Open:      fixed.FromFloat64(open),
		High:      fixed.FromFloat64(high),
		Low:       fixed.FromFloat64(low),
		Close:     fixed.FromFloat64(close),
		Volume:    fixed.FromFloat64(volume),
	}
}

func TestNewItems(t *testing.T) {
	ellipse := "ellipse"
	unknown := "star"
	dotted := int(LineStyleDotted)

	up := createBar(1, 3, 0.5, 2, 10)
	up.Shape = &ellipse
	up.LineStyle = &dotted
	down := createBar(2, 2.5, 0.5, 1, 20)
	down.Shape = &unknown
	flat := createBar(1, 1, 1, 1, math.NaN())
	flat.NewBar = true
	flat.Color = "#123456"

	items := NewItems([]Source{{Bar: up, X: 10}, {Bar: down, X: 20}, {Bar: flat, X: 30}}, DefaultOptions(), nil)
	require.Len(t, items, 3)

	for i, item := range items {
		assert.Equal(t, i, item.StartIndex)
		assert.Equal(t, i, item.EndIndex)
		assert.Equal(t, 1, item.Len())
	}

	assert.True(t, items[0].IsUp)
	assert.Equal(t, ShapeEllipse, items[0].Shape)
	assert.Equal(t, LineStyleDotted, items[0].LineStyle)
	assert.Equal(t, 10.0, items[0].X)
	assert.Equal(t, 3.0, items[0].High)

	assert.False(t, items[1].IsUp)
	assert.Equal(t, ShapeRectangle, items[1].Shape)
	require.NotNil(t, items[1].Overrides.Shape)

	assert.False(t, items[2].IsUp, "equal open and close is not up")
	assert.True(t, items[2].IsBullish())
	assert.True(t, items[2].NewBar)
	assert.Equal(t, 0.0, items[2].Volume)
	assert.Equal(t, ShapeRounded, items[2].Shape)
	assert.Equal(t, LineStyleSolid, items[2].LineStyle)
	assert.Equal(t, 1, items[2].LineWidth)
	assert.Equal(t, "#123456", items[2].Color)
	assert.Equal(t, DefaultNeutralColor, items[2].BorderColor)
}

func TestNewItems_Empty(t *testing.T) {
	assert.Empty(t, NewItems(nil, DefaultOptions(), nil))
}
