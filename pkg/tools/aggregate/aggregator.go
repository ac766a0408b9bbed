package aggregate

import (
	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
)

type handler func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem

// handlers maps every aggregation mode to the routine building its buckets.
var handlers = map[ohlc.AggregationMode]handler{
	ohlc.AggregationNone: func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem {
		return a.Static(items, a.options.ChandelierSize)
	},
	ohlc.AggregationStatic: func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem {
		return a.Static(items, a.options.ChandelierSize)
	},
	ohlc.AggregationTrend: func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem {
		return a.scan(items, trendBreak)
	},
	ohlc.AggregationTrigger: func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem {
		return a.scan(items, triggerBreak(a.options.DynamicTrigger))
	},
	ohlc.AggregationVolumeTrend: func(a *Aggregator, items []ohlc.BarItem) []ohlc.BarItem {
		return a.scan(items, volumeTrendBreak)
	},
}

// Aggregator groups raw BarItems into display units according to the configured mode.
// It keeps no state between calls.
type Aggregator struct {
	logger  *zap.Logger
	options ohlc.Options
}

func NewAggregator(options ohlc.Options, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		logger:  logger,
		options: options,
	}
}

// Aggregate runs the handler registered for the configured mode. An unset mode is the
// default "false" mode, so the options behave like Options.Normalized.
func (a *Aggregator) Aggregate(items []ohlc.BarItem) []ohlc.BarItem {
	mode := a.options.Aggregation
	if mode == "" {
		mode = ohlc.AggregationNone
	}
	return a.Dynamic(items, mode)
}

// Static partitions items into consecutive buckets of size items. The trailing bucket may
// be shorter, in which case it is marked in progress.
func (a *Aggregator) Static(items []ohlc.BarItem, size int) []ohlc.BarItem {
	if size < 1 {
		a.logger.Debug("invalid chandelier size, using 1", zap.Int("size", size))
		size = 1
	}
	if len(items) == 0 {
		return []ohlc.BarItem{}
	}

	out := make([]ohlc.BarItem, 0, len(items)/size+1)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		out = append(out, Consolidate(items[start:end], a.options, end-start < size))
	}
	return out
}

// Dynamic builds variable-size buckets with the predicate of the given mode. Non-dynamic
// modes delegate to Static.
func (a *Aggregator) Dynamic(items []ohlc.BarItem, mode ohlc.AggregationMode) []ohlc.BarItem {
	h, ok := handlers[mode]
	if !ok {
		a.logger.Warn("unknown aggregation mode", zap.String("mode", string(mode)))
		return []ohlc.BarItem{}
	}
	if len(items) == 0 {
		return []ohlc.BarItem{}
	}
	return h(a, items)
}
