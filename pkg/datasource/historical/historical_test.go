package historical

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/utility/fixed"
)

var epoch = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

func createBars(n int) []common.Bar {
	bars := make([]common.Bar, n)
	for i := range bars {
		p := 100 + float64(i)
		bars[i] = common.Bar{
			TimeStamp: epoch.Add(time.Duration(i) * time.Minute),
			Open:      fixed.FromFloat64(p),
			High:      fixed.FromFloat64(p + 2),
			Low:       fixed.FromFloat64(p - 1),
			Close:     fixed.FromFloat64(p + 1),
			Volume:    fixed.FromFloat64(float64(10 * (i + 1))),
		}
	}
	return bars
}

func writeBinaryFile(t *testing.T, bars []common.Bar) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bars.bin")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteBinary(f, bars))
	require.NoError(t, f.Close())
	return path
}

func TestSource_Read(t *testing.T) {
	path := writeBinaryFile(t, createBars(4))

	source := NewSource[BinaryBar](path)
	require.NoError(t, source.Open())
	defer source.Close()

	count, err := source.EntryCount()
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)

	var entry BinaryBar
	require.NoError(t, source.Read(2, &entry))
	assert.Equal(t, 102.0, entry.Open)
	assert.Equal(t, 30.0, entry.Volume)
	assert.Equal(t, epoch.Add(2*time.Minute).UnixNano(), entry.TimeStamp)

	assert.ErrorIs(t, source.Read(4, &entry), ErrEof)
}

func TestSource_OpenMissing(t *testing.T) {
	source := NewSource[BinaryBar](filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, source.Open())

	var entry BinaryBar
	assert.Error(t, source.Read(0, &entry))
}

func TestBarReader_GetNext(t *testing.T) {
	tests := []struct {
		name     string
		from, to time.Time
		expected []float64
	}{
		{"full range", epoch, epoch.Add(time.Hour), []float64{100, 101, 102, 103, 104}},
		{"window", epoch.Add(time.Minute), epoch.Add(3 * time.Minute), []float64{101, 102, 103}},
		{"from between records", epoch.Add(90 * time.Second), epoch.Add(time.Hour), []float64{102, 103, 104}},
		{"after last record", epoch.Add(time.Hour), epoch.Add(2 * time.Hour), nil},
	}

	path := writeBinaryFile(t, createBars(5))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := NewSource[BinaryBar](path)
			require.NoError(t, source.Open())
			defer source.Close()

			bars, err := NewBarReader(source, "EURUSD", tt.from, tt.to).ReadAll()
			require.NoError(t, err)

			var opens []float64
			for _, bar := range bars {
				assert.Equal(t, "EURUSD", bar.Symbol)
				opens = append(opens, bar.Open.Float64OrZero())
			}
			assert.Equal(t, tt.expected, opens)
		})
	}
}

func TestReadCSV(t *testing.T) {
	input := strings.Join([]string{
		"time,open,high,low,close,volume,shape,newbar,linewidth",
		"2025-03-01T00:00:00Z,1.1000,1.1050,1.0990,1.1040,120,Ellipse,,",
		"1740787260,1.1040,1.1060,1.1000,1.1010,,,true,2",
		"2025-03-01 00:02:00,1.1010,1.1020,1.0950,1.0960,80,,false,",
	}, "\n")

	bars, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, bars, 3)

	assert.Equal(t, epoch, bars[0].TimeStamp)
	assert.Equal(t, epoch.Add(time.Minute), bars[1].TimeStamp)
	assert.Equal(t, epoch.Add(2*time.Minute), bars[2].TimeStamp)

	assert.Equal(t, "1.1050", bars[0].High.String())
	require.NotNil(t, bars[0].Shape)
	assert.Equal(t, "Ellipse", *bars[0].Shape)
	assert.True(t, bars[0].IsWellFormed())

	assert.Equal(t, "0", bars[1].Volume.String())
	assert.True(t, bars[1].NewBar)
	require.NotNil(t, bars[1].LineWidth)
	assert.Equal(t, 2, *bars[1].LineWidth)
	assert.Nil(t, bars[1].Shape)

	assert.False(t, bars[2].NewBar)
	assert.Nil(t, bars[2].LineWidth)
}

func TestReadCSV_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"missing column", "time,open,high,low\n1,1,1,1\n"},
		{"bad price", "time,open,high,low,close\n1,x,1,1,1\n"},
		{"bad time", "time,open,high,low,close\nyesterday,1,1,1,1\n"},
		{"bad flag", "time,open,high,low,close,newbar\n1,1,1,1,1,maybe\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParseTime(t *testing.T) {
	ms, err := ParseTime("1740787200000")
	require.NoError(t, err)
	assert.Equal(t, epoch, ms)

	day, err := ParseTime("2025-03-01")
	require.NoError(t, err)
	assert.Equal(t, epoch, day)

	_, err = ParseTime("")
	assert.Error(t, err)
}

func TestReadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bars.parquet")
	rows := []ParquetBar{
		{Timestamp: epoch.UnixMilli(), Open: 10, High: 12, Low: 9, Close: 11, Volume: 500},
		{Timestamp: epoch.Add(time.Minute).UnixMilli(), Open: 11, High: 11.5, Low: 10, Close: 10.5, Volume: 300},
	}
	require.NoError(t, parquet.WriteFile(path, rows))

	bars, err := ReadParquet(path)
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, epoch, bars[0].TimeStamp)
	assert.Equal(t, 11.5, bars[1].High.Float64OrZero())
	assert.Equal(t, 300.0, bars[1].Volume.Float64OrZero())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "bars.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("time,open,high,low,close\n1,1,2,0.5,1.5\n"), 0o600))
	bars, err := Load(csvPath, "XAUUSD")
	require.NoError(t, err)
	require.Len(t, bars, 1)
	assert.Equal(t, "XAUUSD", bars[0].Symbol)

	binPath := writeBinaryFile(t, createBars(3))
	bars, err = Load(binPath, "XAUUSD")
	require.NoError(t, err)
	assert.Len(t, bars, 3)

	_, err = Load(filepath.Join(dir, "bars.xlsx"), "XAUUSD")
	assert.Error(t, err)
}

func TestBinaryBar_ToBar(t *testing.T) {
	var bar common.Bar
	BinaryBar{
		TimeStamp: epoch.UnixNano(),
		Open:      1.25,
		High:      1e25,
		Low:       1.2,
		Close:     1.3,
		Volume:    -4e40,
	}.ToBar(&bar)

	assert.Equal(t, epoch, bar.TimeStamp)
	assert.Equal(t, "1.25", bar.Open.String())
	assert.Equal(t, "0", bar.High.String())
	assert.Equal(t, "0", bar.Volume.String())
}
