package historical

import (
	"errors"
	"fmt"
	"time"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

const (
	invalidIndex           = -1
	barReaderComponentName = "datasource.historical.reader"
)

// BarReader iterates the bars of a binary source within [from, to].
type BarReader struct {
	source *Source[BinaryBar]

	symbol string
	from   int64
	to     int64
	idx    int64
}

func NewBarReader(source *Source[BinaryBar], symbol string, from, to time.Time) *BarReader {
	return &BarReader{
		source: source,
		symbol: symbol,
		from:   from.UnixNano(),
		to:     to.UnixNano(),
		idx:    invalidIndex,
	}
}

// GetNext returns the next bar in range or ErrEof once the range is exhausted.
func (r *BarReader) GetNext() (common.Bar, error) {
	var bar common.Bar
	var binBar BinaryBar

	if r.idx == invalidIndex {
		if err := r.lookupStartIndex(); err != nil {
			return bar, err
		}
	}

	if err := r.source.Read(r.idx, &binBar); err != nil {
		if errors.Is(err, ErrEof) {
			return bar, ErrEof
		}
		return bar, fmt.Errorf("error reading entry at index %d: %w", r.idx, err)
	}
	r.idx++

	if binBar.TimeStamp > r.to {
		return bar, ErrEof
	}

	binBar.ToBar(&bar)
	bar.Source = barReaderComponentName
	bar.Symbol = r.symbol

	return bar, nil
}

// ReadAll drains the reader.
func (r *BarReader) ReadAll() ([]common.Bar, error) {
	var bars []common.Bar
	for {
		bar, err := r.GetNext()
		if errors.Is(err, ErrEof) {
			return bars, nil
		}
		if err != nil {
			return nil, err
		}
		bars = append(bars, bar)
	}
}

// lookupStartIndex binary searches the first record not older than from.
func (r *BarReader) lookupStartIndex() error {
	entryCount, err := r.source.EntryCount()
	if err != nil {
		return fmt.Errorf("error getting entry count: %w", err)
	}
	if entryCount == 0 {
		return ErrEof
	}

	var entry BinaryBar
	low, high := int64(0), entryCount-1
	for low <= high {
		mid := (low + high) / 2
		if err := r.source.Read(mid, &entry); err != nil {
			return fmt.Errorf("error reading entry at index %d: %w", mid, err)
		}
		if entry.TimeStamp < r.from {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}

	if low >= entryCount {
		return ErrEof
	}
	r.idx = low
	return nil
}
