package synthetic

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

const (
	barGeneratorComponentName = "datasource.synthetic.generator"
)

var (
	pointFive = fixed.FromInt64(5, 1)
	ErrEof    = io.EOF
)

// BarGenerator produces OHLCV bars from a geometric brownian motion sampled stepsPerBar
// times inside every bar.
type BarGenerator struct {
	symbol string
	rng    *rand.Rand

	mu     fixed.Point
	sigma  fixed.Point
	deltaT fixed.Point
	bars   int64
	t      int64

	barInterval time.Duration
	stepsPerBar int

	avgVolume      fixed.Point
	volumeVariance float64

	sessionBars int

	deltaLogPre1 fixed.Point
	deltaLogPre2 fixed.Point

	lastTime  time.Time
	lastPrice fixed.Point

	normPriceDigits  int
	normVolumeDigits int
}

func NewBarGenerator(
	symbol string,
	rng *rand.Rand,
	startTime time.Time,
	startPrice, mu, sigma, deltaT fixed.Point,
	bars int64) *BarGenerator {

	return &BarGenerator{
		symbol: symbol,
		rng:    rng,

		mu:     mu,
		sigma:  sigma,
		deltaT: deltaT,
		bars:   bars,

		barInterval: time.Minute,
		stepsPerBar: 10,

		avgVolume:      fixed.FromInt64(100, 0),
		volumeVariance: 0.5,

		deltaLogPre1: mu.Sub(sigma.Mul(sigma).Mul(pointFive)).Mul(deltaT),
		deltaLogPre2: sigma.Mul(deltaT.Sqrt()),

		lastTime:  startTime,
		lastPrice: startPrice,

		normPriceDigits:  5,
		normVolumeDigits: 2,
	}
}

// SetBarParameters sets the bar spacing and the number of price steps per bar. deltaT is
// the length of a single step.
func (g *BarGenerator) SetBarParameters(interval time.Duration, stepsPerBar int) {
	g.barInterval = interval
	g.stepsPerBar = max(stepsPerBar, 1)
}

func (g *BarGenerator) SetVolumeParameters(avgVol fixed.Point, volVariance float64) {
	g.avgVolume = avgVol
	g.volumeVariance = volVariance
}

// SetSessionBars flags every n-th bar with NewBar so trigger based grouping has session
// boundaries to work with. Zero disables the flag.
func (g *BarGenerator) SetSessionBars(n int) {
	g.sessionBars = max(n, 0)
}

func (g *BarGenerator) SetPriceDigits(digits int) {
	g.normPriceDigits = digits
}

func (g *BarGenerator) SetVolumeDigits(digits int) {
	g.normVolumeDigits = digits
}

// GetNext returns the next bar or ErrEof after the configured number of bars.
func (g *BarGenerator) GetNext() (common.Bar, error) {
	var bar common.Bar

	if g.t >= g.bars {
		return bar, ErrEof
	}

	open := g.lastPrice
	high, low := open, open
	for range g.stepsPerBar {
		z := g.rng.NormFloat64()
		deltaLog := g.deltaLogPre1.Add(g.deltaLogPre2.Mul(fixed.FromFloat64(z)))
		g.lastPrice = g.lastPrice.Mul(deltaLog.Exp())

		high = fixed.Max(high, g.lastPrice)
		low = fixed.Min(low, g.lastPrice)
	}

	bar.Open = open.Rescale(g.normPriceDigits)
	bar.High = high.Rescale(g.normPriceDigits)
	bar.Low = low.Rescale(g.normPriceDigits)
	bar.Close = g.lastPrice.Rescale(g.normPriceDigits)
	bar.Volume = g.generateVolume().Rescale(g.normVolumeDigits)

	bar.TimeStamp = g.lastTime
	bar.NewBar = g.sessionBars > 0 && g.t > 0 && g.t%int64(g.sessionBars) == 0
	bar.Source = barGeneratorComponentName
	bar.Symbol = g.symbol

	g.lastTime = g.lastTime.Add(g.barInterval)
	g.t++

	return bar, nil
}

func (g *BarGenerator) generateVolume() fixed.Point {
	factor := 1.0 + g.rng.NormFloat64()*g.volumeVariance
	factor = math.Max(factor, 0.1)
	return g.avgVolume.Mul(fixed.FromFloat64(factor))
}
