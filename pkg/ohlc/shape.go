package ohlc

import "strings"

// Shape selects the drawing primitive used for a candle body.
type Shape string

const (
	ShapeRectangle Shape = "Rectangle"
	ShapeRounded   Shape = "Rounded"
	ShapeEllipse   Shape = "Ellipse"
	ShapeArrow     Shape = "Arrow"
	ShapeCube      Shape = "3d"
	ShapePolygon   Shape = "Polygon"
	ShapeBar       Shape = "Bar"
	ShapeSlanted   Shape = "Slanted"
)

// ShapeTraits describes what the renderer has to do around a body shape.
type ShapeTraits struct {
	// SupportsWicks is false for shapes that draw the high/low extent themselves.
	SupportsWicks bool
	// HalfWicks shortens both wicks to half the distance between the body and the extreme.
	HalfWicks bool
	// Directional shapes need the up/down flag or the high/low pixels.
	Directional bool
}

var shapeTraits = map[Shape]ShapeTraits{
	ShapeRectangle: {SupportsWicks: true},
	ShapeRounded:   {SupportsWicks: true},
	ShapeEllipse:   {SupportsWicks: true},
	ShapeArrow:     {SupportsWicks: true, Directional: true},
	ShapeCube:      {SupportsWicks: false, Directional: true},
	ShapePolygon:   {SupportsWicks: true, HalfWicks: true, Directional: true},
	ShapeBar:       {SupportsWicks: true, Directional: true},
	ShapeSlanted:   {SupportsWicks: true, Directional: true},
}

func (s Shape) IsValid() bool {
	_, ok := shapeTraits[s]
	return ok
}

// Traits returns the capability set of the shape. Unknown shapes get the rectangle traits.
func (s Shape) Traits() ShapeTraits {
	if t, ok := shapeTraits[s]; ok {
		return t
	}
	return shapeTraits[ShapeRectangle]
}

func (s Shape) String() string {
	return string(s)
}

// ParseShape matches the input case-insensitively. Unknown names yield ShapeRectangle and
// false so the caller can report them.
func ParseShape(input string) (Shape, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "rectangle":
		return ShapeRectangle, true
	case "rounded":
		return ShapeRounded, true
	case "ellipse":
		return ShapeEllipse, true
	case "arrow":
		return ShapeArrow, true
	case "3d":
		return ShapeCube, true
	case "polygon":
		return ShapePolygon, true
	case "bar":
		return ShapeBar, true
	case "slanted":
		return ShapeSlanted, true
	default:
		return ShapeRectangle, false
	}
}
