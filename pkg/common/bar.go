package common

import (
	"time"

	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

// Bar is a raw OHLCV record as delivered by the host series. The optional fields override
// the series style for this single bar.
type Bar struct {
	Source    string      `json:"src,omitempty"`
	Symbol    string      `json:"symbol,omitempty"`
	TimeStamp time.Time   `json:"ts"`
	Open      fixed.Point `json:"open"`
	High      fixed.Point `json:"high"`
	Low       fixed.Point `json:"low"`
	Close     fixed.Point `json:"close"`
	Volume    fixed.Point `json:"volume"`

	NewBar      bool    `json:"newBar,omitempty"`
	Shape       *string `json:"shape,omitempty"`
	LineStyle   *int    `json:"lineStyle,omitempty"`
	LineWidth   *int    `json:"lineWidth,omitempty"`
	Color       string  `json:"color,omitempty"`
	BorderColor string  `json:"borderColor,omitempty"`
	WickColor   string  `json:"wickColor,omitempty"`
}

// IsWellFormed reports whether low <= min(open, close) <= max(open, close) <= high.
func (b Bar) IsWellFormed() bool {
	return !b.High.Lt(b.Low) &&
		!b.Open.Lt(b.Low) && !b.Open.Gt(b.High) &&
		!b.Close.Lt(b.Low) && !b.Close.Gt(b.High)
}
