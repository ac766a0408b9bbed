package session

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

// Period is the length of a session. Sessions are aligned to UTC period boundaries.
type Period time.Duration

const (
	PeriodM5  = Period(5 * time.Minute)
	PeriodM15 = Period(15 * time.Minute)
	PeriodM30 = Period(30 * time.Minute)
	PeriodH1  = Period(time.Hour)
	PeriodH4  = Period(4 * time.Hour)
	PeriodD1  = Period(24 * time.Hour)
)

// ParsePeriod accepts the short period names (m5, h1, d1, ...) or any Go duration that
// divides a day.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m5":
		return PeriodM5, nil
	case "m15":
		return PeriodM15, nil
	case "m30":
		return PeriodM30, nil
	case "h1":
		return PeriodH1, nil
	case "h4":
		return PeriodH4, nil
	case "d1":
		return PeriodD1, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse session period %q: %w", s, err)
	}
	if d <= 0 || (24*time.Hour)%d != 0 {
		return 0, fmt.Errorf("session period %s does not divide a day", d)
	}
	return Period(d), nil
}

func (p Period) String() string {
	return time.Duration(p).String()
}

// Start returns the beginning of the session containing t.
func (p Period) Start(t time.Time) time.Time {
	return t.UTC().Truncate(time.Duration(p))
}

// Marker flags the first bar of every session with NewBar, which the trigger aggregation
// reads as a bucket boundary.
type Marker struct {
	logger *zap.Logger
	period Period
}

func NewMarker(period Period, logger *zap.Logger) *Marker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Marker{
		logger: logger,
		period: period,
	}
}

// Mark sets NewBar on every bar that opens a session other than its predecessor's and
// returns the number of flags set. Existing flags are kept. The first bar is never flagged.
func (m *Marker) Mark(bars []common.Bar) int {
	if m.period <= 0 || len(bars) < 2 {
		return 0
	}

	marked := 0
	current := m.period.Start(bars[0].TimeStamp)
	for i := 1; i < len(bars); i++ {
		start := m.period.Start(bars[i].TimeStamp)
		if start.Equal(current) {
			continue
		}
		current = start
		if !bars[i].NewBar {
			bars[i].NewBar = true
			marked++
		}
	}

	m.logger.Debug("sessions marked",
		zap.Stringer("period", m.period),
		zap.Int("bars", len(bars)),
		zap.Int("marked", marked))

	return marked
}
