package historical

import (
	"fmt"
	"time"

	"github.com/parquet-go/parquet-go"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

const parquetComponentName = "datasource.historical.parquet"

// ParquetBar is the row layout of aggregate bar files: unix milliseconds and OHLCV.
type ParquetBar struct {
	Timestamp    int64   `parquet:"t"`
	Open         float64 `parquet:"o"`
	High         float64 `parquet:"h"`
	Low          float64 `parquet:"l"`
	Close        float64 `parquet:"c"`
	Volume       int64   `parquet:"v"`
	VWAP         float64 `parquet:"vw,optional"`
	Transactions int64   `parquet:"n,optional"`
}

func (p ParquetBar) ToBar() common.Bar {
	return common.Bar{
		Source:    parquetComponentName,
		TimeStamp: time.UnixMilli(p.Timestamp).UTC(),
		Open:      fixed.FromFloat64(p.Open),
		High:      fixed.FromFloat64(p.High),
		Low:       fixed.FromFloat64(p.Low),
		Close:     fixed.FromFloat64(p.Close),
		Volume:    fixed.FromInt64(p.Volume, 0),
	}
}

// ReadParquet loads every row of a parquet bar file.
func ReadParquet(path string) ([]common.Bar, error) {
	rows, err := parquet.ReadFile[ParquetBar](path)
	if err != nil {
		return nil, fmt.Errorf("unable to read parquet file %q: %w", path, err)
	}
	bars := make([]common.Bar, len(rows))
	for i, row := range rows {
		bars[i] = row.ToBar()
	}
	return bars, nil
}
