package opacity

import (
	"math"

	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
	"github.com/peter-kozarec/chandelier/pkg/utility/circular"
	"github.com/peter-kozarec/chandelier/pkg/utility/color"
)

// Processor rewrites the fill alpha of aggregated bars from their volume relative to a
// trailing window of width period * chandelier size.
type Processor struct {
	logger  *zap.Logger
	options ohlc.Options
}

func NewProcessor(options ohlc.Options, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		logger:  logger,
		options: options.Normalized(),
	}
}

// windowWidth is period * chandelier size, capped at the number of bars since a wider
// window holds the same samples.
func (p *Processor) windowWidth(n int) uint {
	period, size := p.options.VolumeOpacityPeriod, p.options.ChandelierSize
	width := n
	if size <= n/period {
		width = period * size
	}
	return uint(max(width, 1))
}

// Opacities computes the target opacity of every bar without touching the bars.
func (p *Processor) Opacities(bars []ohlc.BarItem) []float64 {
	maxOpacity := p.options.MaxOpacity
	window := circular.NewWindow(p.windowWidth(len(bars)))
	out := make([]float64, len(bars))

	for i, bar := range bars {
		window.PushUpdate(bar.Volume)

		var op float64
		switch p.options.VolumeOpacityMode {
		case ohlc.OpacityMax:
			ratio := 1.0
			if m := window.Max(); m > 0 {
				ratio = bar.Volume / m
			}
			op = ratio * maxOpacity
		case ohlc.OpacityPrevious:
			if i == 0 || bars[i-1].Volume == 0 || bar.Volume > bars[i-1].Volume {
				op = maxOpacity
			}
		case ohlc.OpacityAverage:
			if avg := window.Mean(); avg > 0 && bar.Volume > avg {
				op = maxOpacity
			}
		}

		out[i] = math.Max(0, math.Min(maxOpacity, op))
	}
	return out
}

// Apply overwrites the Color of every bar with the up or down base color at the computed
// opacity. The pass is skipped entirely when it is disabled or a precondition fails; the
// result reports whether the bars were modified.
func (p *Processor) Apply(bars []ohlc.BarItem) bool {
	if !p.options.VolumeOpacity || len(bars) == 0 {
		return false
	}

	for i, bar := range bars {
		if math.IsNaN(bar.Volume) || math.IsInf(bar.Volume, 0) {
			p.logger.Warn("volume opacity skipped, bar without numeric volume", zap.Int("index", i))
			return false
		}
	}

	up, down := p.options.UpBaseColor(), p.options.DownBaseColor()
	for _, c := range []string{up, down} {
		alpha, err := color.Alpha(c)
		if err != nil {
			p.logger.Warn("volume opacity skipped, invalid base color", zap.String("color", c), zap.Error(err))
			return false
		}
		if alpha == 0 {
			p.logger.Warn("volume opacity skipped, base color is transparent", zap.String("color", c))
			return false
		}
	}

	opacities := p.Opacities(bars)
	for i := range bars {
		base := down
		if bars[i].IsUp {
			base = up
		}
		c, err := color.SetOpacity(base, opacities[i])
		if err != nil {
			continue
		}
		bars[i].Color = c
	}
	return true
}
