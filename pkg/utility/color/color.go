package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/mazznoer/csscolorparser"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrUnsupportedFormat = errors.New("unsupported color format")

// RGBA is a parsed CSS color. Channels are 0-255, alpha is 0-1.
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Parse reads any CSS color: hex, rgb(), rgba(), hsl(), named colors and "transparent".
func Parse(s string) (RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnsupportedFormat, s, err)
	}
	return RGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: clamp(c.A, 0, 1),
	}, nil
}

func (c RGBA) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Drawing converts the color to the go-chart representation.
func (c RGBA) Drawing() drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(c.A * 255))}
}

// SetOpacity replaces the alpha of the color and returns it in rgba() notation.
func SetOpacity(s string, opacity float64) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	c.A = clamp(opacity, 0, 1)
	return c.String(), nil
}

// Alpha returns the alpha channel of the color.
func Alpha(s string) (float64, error) {
	c, err := Parse(s)
	if err != nil {
		return 0, err
	}
	return c.A, nil
}

// Darken scales every channel by (1 - amount), keeping the alpha.
func Darken(s string, amount float64) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	f := 1 - clamp(amount, 0, 1)
	c.R = uint8(math.Round(float64(c.R) * f))
	c.G = uint8(math.Round(float64(c.G) * f))
	c.B = uint8(math.Round(float64(c.B) * f))
	return c.String(), nil
}

func channel(v float64) uint8 {
	return uint8(math.Round(clamp(v*255, 0, 255)))
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
