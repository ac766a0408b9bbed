package datasource

import (
	"context"
	"errors"
	"io"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

// BarDataSource yields bars one at a time and returns io.EOF once exhausted.
type BarDataSource interface {
	GetNext() (common.Bar, error)
}

// Collect pulls bars from ds until it is exhausted, limit bars were read or ctx is done.
// A limit below 1 means no limit.
func Collect(ctx context.Context, ds BarDataSource, limit int) ([]common.Bar, error) {
	var bars []common.Bar
	for limit < 1 || len(bars) < limit {
		if err := ctx.Err(); err != nil {
			return bars, err
		}

		bar, err := ds.GetNext()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return bars, err
		}
		bars = append(bars, bar)
	}
	return bars, nil
}
