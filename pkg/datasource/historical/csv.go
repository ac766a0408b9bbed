package historical

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

const csvComponentName = "datasource.historical.csv"

var requiredColumns = []string{"time", "open", "high", "low", "close"}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ReadCSV parses bars from a headed CSV stream. Recognised columns are time, open, high,
// low, close, volume, shape, newbar, linestyle, linewidth, color, bordercolor and wickcolor;
// the first five are required. Empty numeric cells read as zero.
func ReadCSV(r io.Reader) ([]common.Bar, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("csv input is empty")
		}
		return nil, fmt.Errorf("unable to read csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := columns["time"]; !ok {
		if i, ok := columns["timestamp"]; ok {
			columns["time"] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("csv header is missing column %q", name)
		}
	}

	var bars []common.Bar
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return bars, nil
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read csv line %d: %w", line, err)
		}

		bar, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		bars = append(bars, bar)
	}
}

func parseRecord(record []string, columns map[string]int) (common.Bar, error) {
	field := func(name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	bar := common.Bar{Source: csvComponentName}

	ts, err := ParseTime(field("time"))
	if err != nil {
		return bar, err
	}
	bar.TimeStamp = ts

	prices := []struct {
		name string
		dst  *fixed.Point
	}{
		{"open", &bar.Open},
		{"high", &bar.High},
		{"low", &bar.Low},
		{"close", &bar.Close},
		{"volume", &bar.Volume},
	}
	for _, p := range prices {
		v, err := fixed.Parse(field(p.name))
		if err != nil {
			return bar, fmt.Errorf("column %s: %w", p.name, err)
		}
		*p.dst = v
	}

	if s := field("shape"); s != "" {
		bar.Shape = &s
	}
	if s := field("newbar"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return bar, fmt.Errorf("column newbar: %w", err)
		}
		bar.NewBar = v
	}
	for _, c := range []struct {
		name string
		dst  **int
	}{
		{"linestyle", &bar.LineStyle},
		{"linewidth", &bar.LineWidth},
	} {
		s := field(c.name)
		if s == "" {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return bar, fmt.Errorf("column %s: %w", c.name, err)
		}
		*c.dst = &v
	}
	bar.Color = field("color")
	bar.BorderColor = field("bordercolor")
	bar.WickColor = field("wickcolor")

	return bar, nil
}

// ParseTime accepts unix seconds, unix milliseconds and the usual ISO layouts.
func ParseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > 1e12 || n < -1e12 {
			return time.UnixMilli(n).UTC(), nil
		}
		return time.Unix(n, 0).UTC(), nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time %q", s)
}
