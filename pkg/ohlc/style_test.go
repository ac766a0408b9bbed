package ohlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemWithShape(shape *Shape) BarItem {
	return BarItem{Overrides: Overrides{Shape: shape}}
}

func TestCoalesce(t *testing.T) {
	one, two := 1, 2
	assert.Equal(t, 1, Coalesce[int](nil, &one, &two))
	assert.Equal(t, 2, Coalesce[int](nil, nil, &two))
	assert.Equal(t, 0, Coalesce[int](nil, nil))

	assert.Equal(t, "b", CoalesceString("", "b", "c"))
	assert.Equal(t, "", CoalesceString("", ""))
}

func TestOptions_ResolveShape(t *testing.T) {
	tests := []struct {
		name     string
		options  Options
		items    []BarItem
		expected Shape
	}{
		{
			name:     "last non-nil override wins",
			options:  DefaultOptions(),
			items:    []BarItem{itemWithShape(nil), itemWithShape(ptr(ShapeEllipse)), itemWithShape(nil)},
			expected: ShapeEllipse,
		},
		{
			name:     "later override replaces earlier",
			options:  DefaultOptions(),
			items:    []BarItem{itemWithShape(ptr(ShapeArrow)), itemWithShape(ptr(ShapeBar))},
			expected: ShapeBar,
		},
		{
			name:     "configuration default",
			options:  DefaultOptions(),
			items:    []BarItem{itemWithShape(nil)},
			expected: ShapeRounded,
		},
		{
			name:     "hardcoded fallback",
			options:  Options{},
			items:    []BarItem{itemWithShape(nil)},
			expected: ShapeRectangle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.options.ResolveShape(tt.items))
		})
	}
}

func TestOptions_ResolveLine(t *testing.T) {
	items := []BarItem{
		{Overrides: Overrides{LineWidth: ptr(3)}},
		{Overrides: Overrides{LineStyle: ptr(LineStyleDotted)}},
		{},
	}
	o := DefaultOptions()
	assert.Equal(t, LineStyleDotted, o.ResolveLineStyle(items))
	assert.Equal(t, 3, o.ResolveLineWidth(items))

	assert.Equal(t, LineStyleSolid, Options{}.ResolveLineStyle([]BarItem{{}}))
	assert.Equal(t, 1, Options{}.ResolveLineWidth([]BarItem{{}}))
}

func TestOptions_ResolveColors(t *testing.T) {
	t.Run("configured variants", func(t *testing.T) {
		fill, border, wick := DefaultOptions().ResolveColors([]BarItem{{}}, true)
		assert.Equal(t, DefaultUpColor, fill)
		assert.Equal(t, DefaultBorderUpColor, border)
		assert.Equal(t, DefaultBorderUpColor, wick)
	})

	t.Run("border falls back to opaque fill", func(t *testing.T) {
		o := Options{DownColor: "rgba(10, 20, 30, 0.2)"}
		fill, border, wick := o.ResolveColors([]BarItem{{}}, false)
		assert.Equal(t, "rgba(10, 20, 30, 0.2)", fill)
		assert.Equal(t, "rgba(10, 20, 30, 1)", border)
		assert.Equal(t, border, wick)
	})

	t.Run("unset options use defaults", func(t *testing.T) {
		fill, border, _ := Options{}.ResolveColors([]BarItem{{}}, false)
		assert.Equal(t, DefaultDownColor, fill)
		assert.Equal(t, "rgba(110, 0, 0, 1)", border)
	})

	t.Run("bar override", func(t *testing.T) {
		items := []BarItem{{Overrides: Overrides{WickColor: "#000000"}}, {}}
		_, _, wick := DefaultOptions().ResolveColors(items, true)
		assert.Equal(t, "#000000", wick)
	})
}
