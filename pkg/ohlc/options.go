package ohlc

import "strings"

// AggregationMode selects how raw bars are grouped before drawing.
type AggregationMode string

const (
	// AggregationNone is the sentinel that disables dynamic grouping; static grouping with the
	// chandelier size still applies.
	AggregationNone        AggregationMode = "false"
	AggregationStatic      AggregationMode = "use Chandelier Size"
	AggregationTrend       AggregationMode = "trend"
	AggregationTrigger     AggregationMode = "trigger"
	AggregationVolumeTrend AggregationMode = "volume_trend"
)

// IsDynamic reports whether the mode builds variable-size buckets.
func (m AggregationMode) IsDynamic() bool {
	switch m {
	case AggregationTrend, AggregationTrigger, AggregationVolumeTrend:
		return true
	default:
		return false
	}
}

// ParseAggregationMode accepts the option values plus a few spellings used on command lines.
func ParseAggregationMode(s string) (AggregationMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "false", "none", "off":
		return AggregationNone, true
	case "use chandelier size", "static", "size":
		return AggregationStatic, true
	case "trend":
		return AggregationTrend, true
	case "trigger":
		return AggregationTrigger, true
	case "volume_trend", "volume-trend":
		return AggregationVolumeTrend, true
	default:
		return AggregationMode(s), false
	}
}

// OpacityMode selects the statistic the volume opacity pass compares each bar against.
type OpacityMode string

const (
	OpacityMax      OpacityMode = "/ max"
	OpacityPrevious OpacityMode = "> previous"
	OpacityAverage  OpacityMode = "> average"
)

// TriggerResult is returned by a dynamic trigger callback.
type TriggerResult struct {
	NewBar bool
}

// DynamicTrigger inspects the bucket under construction and the next bar and reports whether
// the bucket has to be closed before the next bar. The bucket must not be retained.
type DynamicTrigger func(bucket []BarItem, next BarItem) TriggerResult

const (
	DefaultUpColor         = "rgba(0, 103, 33, 0.33)"
	DefaultDownColor       = "rgba(110, 0, 0, 0.33)"
	DefaultBorderUpColor   = "#006721"
	DefaultBorderDownColor = "#6E0000"
	DefaultNeutralColor    = "rgba(0, 0, 0, 0)"

	DefaultBarSpacing    = 0.777
	DefaultLineWidth     = 1
	DefaultOpacityPeriod = 20
)

// Options is the series configuration read by the aggregator and the renderer. It is not
// modified during a render pass.
type Options struct {
	Aggregation    AggregationMode
	ChandelierSize int

	Color       string
	BorderColor string
	WickColor   string

	UpColor         string
	DownColor       string
	BorderUpColor   string
	BorderDownColor string
	WickUpColor     string
	WickDownColor   string

	Shape     Shape
	LineStyle LineStyle
	LineWidth int

	BarSpacing float64
	Radius     float64

	VolumeOpacity       bool
	VolumeOpacityMode   OpacityMode
	VolumeOpacityPeriod int
	MaxOpacity          float64

	DynamicTrigger DynamicTrigger
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Aggregation:    AggregationNone,
		ChandelierSize: 1,

		Color:       DefaultNeutralColor,
		BorderColor: DefaultNeutralColor,
		WickColor:   DefaultNeutralColor,

		UpColor:         DefaultUpColor,
		DownColor:       DefaultDownColor,
		BorderUpColor:   DefaultBorderUpColor,
		BorderDownColor: DefaultBorderDownColor,
		WickUpColor:     DefaultBorderUpColor,
		WickDownColor:   DefaultBorderDownColor,

		Shape:     ShapeRounded,
		LineStyle: LineStyleSolid,
		LineWidth: DefaultLineWidth,

		BarSpacing: DefaultBarSpacing,

		VolumeOpacityMode:   OpacityMax,
		VolumeOpacityPeriod: DefaultOpacityPeriod,
		MaxOpacity:          1,
	}
}

// NewOptions applies the given options on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func WithAggregation(mode AggregationMode) Option {
	return func(o *Options) { o.Aggregation = mode }
}

func WithChandelierSize(size int) Option {
	return func(o *Options) { o.ChandelierSize = size }
}

func WithShape(shape Shape) Option {
	return func(o *Options) { o.Shape = shape }
}

func WithLine(style LineStyle, width int) Option {
	return func(o *Options) {
		o.LineStyle = style
		o.LineWidth = width
	}
}

func WithColors(up, down string) Option {
	return func(o *Options) {
		o.UpColor = up
		o.DownColor = down
	}
}

func WithBorderColors(up, down string) Option {
	return func(o *Options) {
		o.BorderUpColor = up
		o.BorderDownColor = down
	}
}

func WithWickColors(up, down string) Option {
	return func(o *Options) {
		o.WickUpColor = up
		o.WickDownColor = down
	}
}

func WithBarSpacing(spacing float64) Option {
	return func(o *Options) { o.BarSpacing = spacing }
}

func WithRadius(radius float64) Option {
	return func(o *Options) { o.Radius = radius }
}

func WithVolumeOpacity(mode OpacityMode, period int, maxOpacity float64) Option {
	return func(o *Options) {
		o.VolumeOpacity = true
		o.VolumeOpacityMode = mode
		o.VolumeOpacityPeriod = period
		o.MaxOpacity = maxOpacity
	}
}

func WithDynamicTrigger(trigger DynamicTrigger) Option {
	return func(o *Options) { o.DynamicTrigger = trigger }
}

// Normalized returns a copy with configuration anomalies clamped to usable values.
func (o Options) Normalized() Options {
	if o.Aggregation == "" {
		o.Aggregation = AggregationNone
	}
	if o.ChandelierSize < 1 {
		o.ChandelierSize = 1
	}
	if o.BarSpacing <= 0 || o.BarSpacing > 1 {
		o.BarSpacing = DefaultBarSpacing
	}
	if o.Radius < 0 {
		o.Radius = 0
	}
	if o.LineWidth < 1 {
		o.LineWidth = DefaultLineWidth
	}
	if o.VolumeOpacityMode == "" {
		o.VolumeOpacityMode = OpacityMax
	}
	if o.VolumeOpacityPeriod < 1 {
		o.VolumeOpacityPeriod = 1
	}
	if o.MaxOpacity < 0 {
		o.MaxOpacity = 0
	}
	if o.MaxOpacity > 1 {
		o.MaxOpacity = 1
	}
	return o
}

// UpBaseColor is the fill used for rising units, falling back to the built-in default.
func (o Options) UpBaseColor() string {
	return CoalesceString(o.UpColor, DefaultUpColor)
}

// DownBaseColor is the fill used for falling units, falling back to the built-in default.
func (o Options) DownBaseColor() string {
	return CoalesceString(o.DownColor, DefaultDownColor)
}

func (o Options) shapeDefault() *Shape {
	if o.Shape == "" {
		return nil
	}
	return &o.Shape
}

func (o Options) lineWidthDefault() *int {
	if o.LineWidth < 1 {
		return nil
	}
	return &o.LineWidth
}
