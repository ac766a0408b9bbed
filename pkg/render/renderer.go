package render

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
	"github.com/peter-kozarec/chandelier/pkg/render/canvas"
	"github.com/peter-kozarec/chandelier/pkg/render/shapes"
	"github.com/peter-kozarec/chandelier/pkg/tools/aggregate"
	"github.com/peter-kozarec/chandelier/pkg/tools/opacity"
)

// Renderer draws candles for one paint call at a time. It holds no per-frame state, so a
// single value may serve any number of sequential calls.
type Renderer struct {
	logger *zap.Logger
}

func NewRenderer(logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{logger: logger}
}

// Prepare builds, aggregates and colors the bars of the frame without drawing them.
func (r *Renderer) Prepare(frame Frame, options ohlc.Options) []ohlc.BarItem {
	options = options.Normalized()
	items := ohlc.NewItems(frame.Bars, options, r.logger)
	bars := aggregate.NewAggregator(options, r.logger).Aggregate(items)
	if options.VolumeOpacity {
		opacity.NewProcessor(options, r.logger).Apply(bars)
	}
	return bars
}

// Draw renders the frame onto ctx. Nothing is drawn when there are no bars, no options or
// no visible range.
func (r *Renderer) Draw(ctx canvas.Context, frame Frame, options *ohlc.Options, p2c PriceToCoordinate) {
	if len(frame.Bars) == 0 || options == nil || frame.VisibleRange == nil || p2c == nil {
		return
	}
	opts := options.Normalized()

	ctx.Save()
	defer ctx.Restore()

	bars := r.Prepare(frame, opts)
	candles := Layout(bars, frame, opts, p2c)

	hpr, _ := frame.ratios()
	r.drawWicks(ctx, candles, WickWidth(hpr))
	r.drawBodies(ctx, candles, opts)

	if ce := r.logger.Check(zap.DebugLevel, "frame rendered"); ce != nil {
		ce.Write(
			zap.String("frame", uuid.NewString()),
			zap.Int("bars", len(frame.Bars)),
			zap.Int("aggregated", len(bars)),
			zap.Int("drawn", len(candles)),
			zap.String("mode", string(opts.Aggregation)))
	}
}

func (r *Renderer) drawWicks(ctx canvas.Context, candles []Candle, width float64) {
	for _, c := range candles {
		traits := c.Bar.Shape.Traits()
		if !traits.SupportsWicks {
			continue
		}

		upperBottom, lowerTop := c.Top, c.Bottom
		if traits.HalfWicks {
			upperBottom = (c.High + c.Top) / 2
			lowerTop = (c.Low + c.Bottom) / 2
		}

		ctx.SetFillColor(c.Bar.Color)
		ctx.SetStrokeColor(ohlc.CoalesceString(c.Bar.WickColor, c.Bar.Color))
		ctx.SetLineWidth(1)
		ctx.SetLineDash(nil)
		shapes.Wick(ctx, c.Middle, c.High, upperBottom, width)
		shapes.Wick(ctx, c.Middle, lowerTop, c.Low, width)
	}
}

func (r *Renderer) drawBodies(ctx canvas.Context, candles []Candle, options ohlc.Options) {
	for _, c := range candles {
		bar := c.Bar
		fill := ohlc.CoalesceString(bar.Color, options.Color, ohlc.DefaultNeutralColor)
		border := ohlc.CoalesceString(bar.BorderColor, options.BorderColor, fill)
		width := float64(max(bar.LineWidth, 1))

		ctx.SetFillColor(fill)
		ctx.SetStrokeColor(border)
		ctx.SetLineWidth(width)
		ctx.SetLineDash(bar.LineStyle.Dash(width))

		switch bar.Shape {
		case ohlc.ShapeRectangle:
			shapes.Rectangle(ctx, c.Left, c.Right, c.Y, c.Span)
		case ohlc.ShapeRounded:
			shapes.Rounded(ctx, c.Left, c.Right, c.Y, c.Span, options.Radius)
		case ohlc.ShapeEllipse:
			shapes.Ellipse(ctx, c.Left, c.Right, c.Middle, c.Y, c.Span)
		case ohlc.ShapeArrow:
			shapes.Arrow(ctx, c.Left, c.Right, c.Middle, c.Y, c.Span, c.High, c.Low, bar.IsUp)
		case ohlc.ShapeCube:
			shapes.Cube(ctx, c.Left, c.Right, c.Y, c.Span, c.High, c.Low, fill, border, bar.IsUp)
		case ohlc.ShapePolygon:
			shapes.Polygon(ctx, c.Left, c.Right, c.Y, c.Span, c.High, c.Low)
		case ohlc.ShapeBar:
			shapes.Bar(ctx, c.Left, c.Right, c.High, c.Low, c.Open, c.Close)
		case ohlc.ShapeSlanted:
			shapes.Slanted(ctx, c.Left, c.Right, c.Y, c.Span, bar.IsUp)
		default:
			r.logger.Warn("unknown candle shape, drawing rectangle",
				zap.String("shape", bar.Shape.String()),
				zap.Int("start", bar.StartIndex))
			shapes.Rectangle(ctx, c.Left, c.Right, c.Y, c.Span)
		}
	}
}
