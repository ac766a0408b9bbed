package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

var base = time.Date(2024, 1, 2, 9, 50, 0, 0, time.UTC)

func barsEvery(step time.Duration, n int) []common.Bar {
	bars := make([]common.Bar, n)
	for i := range bars {
		bars[i].TimeStamp = base.Add(time.Duration(i) * step)
	}
	return bars
}

func flags(bars []common.Bar) []bool {
	out := make([]bool, len(bars))
	for i, b := range bars {
		out[i] = b.NewBar
	}
	return out
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Period
		wantErr bool
	}{
		{name: "short name", in: "H1", want: PeriodH1},
		{name: "day", in: "d1", want: PeriodD1},
		{name: "duration", in: "10m", want: Period(10 * time.Minute)},
		{name: "does not divide a day", in: "7m", wantErr: true},
		{name: "negative", in: "-5m", wantErr: true},
		{name: "garbage", in: "weekly", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarker_Mark(t *testing.T) {
	tests := []struct {
		name       string
		period     Period
		bars       []common.Bar
		wantFlags  []bool
		wantMarked int
	}{
		{
			name:       "m5 over minute bars",
			period:     PeriodM5,
			bars:       barsEvery(2*time.Minute, 6),
			wantFlags:  []bool{false, false, false, true, false, true},
			wantMarked: 2,
		},
		{
			name:       "h1 boundary",
			period:     PeriodH1,
			bars:       barsEvery(5*time.Minute, 4),
			wantFlags:  []bool{false, false, true, false},
			wantMarked: 1,
		},
		{
			name:       "single bar",
			period:     PeriodH1,
			bars:       barsEvery(time.Minute, 1),
			wantFlags:  []bool{false},
			wantMarked: 0,
		},
		{
			name:       "zero period",
			period:     0,
			bars:       barsEvery(time.Hour, 3),
			wantFlags:  []bool{false, false, false},
			wantMarked: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marked := NewMarker(tt.period, nil).Mark(tt.bars)
			assert.Equal(t, tt.wantMarked, marked)
			assert.Equal(t, tt.wantFlags, flags(tt.bars))
		})
	}
}

func TestMarker_KeepsExistingFlags(t *testing.T) {
	bars := barsEvery(30*time.Minute, 4)
	bars[1].NewBar = true

	marked := NewMarker(PeriodH1, nil).Mark(bars)
	assert.Equal(t, 1, marked)
	assert.Equal(t, []bool{false, true, false, true}, flags(bars))
}
