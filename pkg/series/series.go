package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/ohlc"
	"github.com/peter-kozarec/chandelier/pkg/render"
	"github.com/peter-kozarec/chandelier/pkg/render/canvas"
)

var (
	_ chart.Series                = &Series{}
	_ chart.BoundedValuesProvider = &Series{}
)

var ErrNoBars = errors.New("series has no bars")

// Series hosts the candle renderer inside a go-chart chart. Bars are placed on the x axis by
// their index.
type Series struct {
	Name    string
	Style   chart.Style
	YAxis   chart.YAxisType
	Options ohlc.Options

	bars     []common.Bar
	renderer *render.Renderer
}

func New(name string, bars []common.Bar, options ohlc.Options, logger *zap.Logger) *Series {
	return &Series{
		Name:     name,
		YAxis:    chart.YAxisPrimary,
		Options:  options,
		bars:     bars,
		renderer: render.NewRenderer(logger),
	}
}

func (s *Series) GetName() string           { return s.Name }
func (s *Series) GetStyle() chart.Style     { return s.Style }
func (s *Series) GetYAxis() chart.YAxisType { return s.YAxis }
func (s *Series) Len() int                  { return len(s.bars) }
func (s *Series) Bars() []common.Bar        { return s.bars }

// GetBoundedValues reports the index with the high and low of the bar so that go-chart sizes
// the ranges around the full wick extent.
func (s *Series) GetBoundedValues(index int) (x, high, low float64) {
	bar := s.bars[index]
	return float64(index), bar.High.Float64OrZero(), bar.Low.Float64OrZero()
}

func (s *Series) Validate() error {
	if len(s.bars) == 0 {
		return ErrNoBars
	}
	mode := s.Options.Aggregation
	if mode != "" && mode != ohlc.AggregationNone && mode != ohlc.AggregationStatic && !mode.IsDynamic() {
		return fmt.Errorf("series %q: unknown aggregation mode %q", s.Name, mode)
	}
	return nil
}

func (s *Series) Render(r chart.Renderer, box chart.Box, xrange, yrange chart.Range, _ chart.Style) {
	frame := s.Frame(box, xrange)
	if len(frame.Bars) == 0 {
		return
	}
	p2c := func(price float64) float64 {
		return float64(box.Bottom - yrange.Translate(price))
	}
	options := s.Options
	s.renderer.Draw(canvas.NewChart(r), frame, &options, p2c)
}

// Frame derives the renderer input from the chart geometry: bar positions from the x range,
// spacing from its domain and the visible indices from its bounds.
func (s *Series) Frame(box chart.Box, xrange chart.Range) render.Frame {
	n := len(s.bars)
	if n == 0 {
		return render.Frame{}
	}

	sources := make([]ohlc.Source, n)
	for i, bar := range s.bars {
		sources[i] = ohlc.Source{
			Bar: bar,
			X:   float64(box.Left + xrange.Translate(float64(i))),
		}
	}

	spacing := float64(xrange.GetDomain()) / math.Max(xrange.GetDelta(), 1)
	from := max(0, int(math.Ceil(xrange.GetMin())))
	to := min(n-1, int(math.Floor(xrange.GetMax())))

	return render.Frame{
		Bars:                 sources,
		BarSpacing:           spacing,
		VisibleRange:         &render.VisibleRange{From: from, To: to},
		HorizontalPixelRatio: 1,
		VerticalPixelRatio:   1,
	}
}
