package aggregate

import "github.com/peter-kozarec/chandelier/pkg/ohlc"

// breakFunc reports whether the non-empty bucket has to be closed before next is added.
type breakFunc func(bucket []ohlc.BarItem, next ohlc.BarItem) bool

func (a *Aggregator) scan(items []ohlc.BarItem, shouldBreak breakFunc) []ohlc.BarItem {
	out := make([]ohlc.BarItem, 0)
	var bucket []ohlc.BarItem

	for _, item := range items {
		if len(bucket) > 0 && shouldBreak(bucket, item) {
			out = append(out, Consolidate(bucket, a.options, false))
			bucket = nil
		}
		bucket = append(bucket, item)
	}
	if len(bucket) > 0 {
		out = append(out, Consolidate(bucket, a.options, false))
	}
	return out
}

func trendBreak(bucket []ohlc.BarItem, next ohlc.BarItem) bool {
	return bucket[0].IsBullish() != next.IsBullish()
}

func triggerBreak(trigger ohlc.DynamicTrigger) breakFunc {
	return func(bucket []ohlc.BarItem, next ohlc.BarItem) bool {
		if next.NewBar {
			return true
		}
		return trigger != nil && trigger(bucket, next).NewBar
	}
}

// volumeTrendBreak closes the bucket when the volume direction reverses. The direction
// compares the last bucket volume against the first one.
func volumeTrendBreak(bucket []ohlc.BarItem, next ohlc.BarItem) bool {
	first, last := bucket[0].Volume, bucket[len(bucket)-1].Volume
	if last >= first {
		return next.Volume < last
	}
	return next.Volume > last
}
