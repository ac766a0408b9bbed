package synthetic

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

// NewEURUSDBarGenerator returns a generator of count one minute EURUSD-like bars starting at
// startTime. mu and sigma are annualised.
func NewEURUSDBarGenerator(symbol string, rng *rand.Rand, startTime time.Time, count int64, mu, sigma float64, logger *zap.Logger) *BarGenerator {

	const (
		eurUsdStartPrice = 1.0550

		barInterval = time.Minute
		stepsPerBar = 12

		avgVolumeUnits    = 250
		volumeVariability = 0.65

		sessionBars = 60

		normPriceDigits  = 5
		normVolumeDigits = 2
	)

	if logger == nil {
		logger = zap.NewNop()
	}

	secondsPerYear := 365.25 * 24 * 3600
	stepSeconds := barInterval.Seconds() / stepsPerBar
	deltaT := fixed.FromFloat64(stepSeconds / secondsPerYear)

	generator := NewBarGenerator(
		symbol,
		rng,
		startTime,
		fixed.FromFloat64(eurUsdStartPrice),
		fixed.FromFloat64(mu),
		fixed.FromFloat64(sigma),
		deltaT,
		count,
	)

	generator.SetBarParameters(barInterval, stepsPerBar)
	generator.SetVolumeParameters(fixed.FromInt64(avgVolumeUnits, 0), volumeVariability)
	generator.SetSessionBars(sessionBars)
	generator.SetPriceDigits(normPriceDigits)
	generator.SetVolumeDigits(normVolumeDigits)

	logger.Debug("EURUSD synthetic bar generator configuration",
		zap.Int64("bars", count),
		zap.Float64("mu_annual", mu),
		zap.Float64("sigma_annual", sigma),
		zap.Float64("start_price", eurUsdStartPrice),
		zap.Duration("bar_interval", barInterval),
		zap.Int("steps_per_bar", stepsPerBar),
		zap.Time("start_time", startTime),
	)

	return generator
}
