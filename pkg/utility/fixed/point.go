package fixed

import (
	"fmt"
	"math"

	"github.com/govalues/decimal"
)

var Zero = Point{}

// Point is an unsafe wrapper around decimal implementation. Arithmetic panics when the
// decimal reports an error, so callers must keep the operands within range.
type Point struct {
	v decimal.Decimal
}

func FromInt64(value int64, scale int) Point {
	return Point{must(decimal.New(value, scale))}
}

// FromFloat64 converts a float. Values without a decimal representation (NaN, infinities,
// magnitudes beyond 19 digits) become Zero.
func FromFloat64(value float64) Point {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Zero
	}
	d, err := decimal.NewFromFloat64(value)
	if err != nil {
		return Zero
	}
	return Point{d}
}

// Parse reads a decimal literal such as "1.23450". Empty input is a zero point.
func Parse(s string) (Point, error) {
	if s == "" {
		return Zero, nil
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return Zero, fmt.Errorf("unable to parse %q: %w", s, err)
	}
	return Point{d}, nil
}

func (p Point) String() string { return p.v.String() }

// Float64OrZero converts to float64, returning 0 when the value has no exact float form.
func (p Point) Float64OrZero() float64 {
	f, ok := p.v.Float64()
	if !ok {
		return 0
	}
	return f
}

func (p Point) Add(o Point) Point { return Point{must(p.v.Add(o.v))} }
func (p Point) Sub(o Point) Point { return Point{must(p.v.Sub(o.v))} }
func (p Point) Mul(o Point) Point { return Point{must(p.v.Mul(o.v))} }

func (p Point) Sqrt() Point { return Point{must(p.v.Sqrt())} }
func (p Point) Exp() Point  { return Point{must(p.v.Exp())} }

func (p Point) Gt(o Point) bool { return p.v.Cmp(o.v) > 0 }
func (p Point) Lt(o Point) bool { return p.v.Cmp(o.v) < 0 }

func (p Point) Rescale(scale int) Point { return Point{p.v.Rescale(scale)} }

func Max(a, b Point) Point {
	if a.Gt(b) {
		return a
	}
	return b
}

func Min(a, b Point) Point {
	if a.Lt(b) {
		return a
	}
	return b
}

func (p Point) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Point) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func must(v decimal.Decimal, err error) decimal.Decimal {
	if err == nil {
		return v
	}
	panic(err)
}
