package historical

import (
	"encoding/binary"
	"fmt"
	"io"
	"time"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

// BinaryBar is the on-disk record read through Source. Fields are stored in native byte
// order with the timestamp in unix nanoseconds.
type BinaryBar struct {
	TimeStamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

func (b BinaryBar) ToBar(bar *common.Bar) {
	bar.TimeStamp = time.Unix(0, b.TimeStamp).UTC()
	bar.Open = fixed.FromFloat64(b.Open)
	bar.High = fixed.FromFloat64(b.High)
	bar.Low = fixed.FromFloat64(b.Low)
	bar.Close = fixed.FromFloat64(b.Close)
	bar.Volume = fixed.FromFloat64(b.Volume)
}

func FromBar(bar common.Bar) BinaryBar {
	return BinaryBar{
		TimeStamp: bar.TimeStamp.UnixNano(),
		Open:      bar.Open.Float64OrZero(),
		High:      bar.High.Float64OrZero(),
		Low:       bar.Low.Float64OrZero(),
		Close:     bar.Close.Float64OrZero(),
		Volume:    bar.Volume.Float64OrZero(),
	}
}

// WriteBinary writes bars in the layout expected by Source[BinaryBar].
func WriteBinary(w io.Writer, bars []common.Bar) error {
	for i, bar := range bars {
		if err := binary.Write(w, binary.NativeEndian, FromBar(bar)); err != nil {
			return fmt.Errorf("unable to write bar %d: %w", i, err)
		}
	}
	return nil
}
