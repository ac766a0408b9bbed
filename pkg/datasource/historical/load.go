package historical

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/peter-kozarec/chandelier/pkg/common"
)

// Load reads a bar file, picking the format from the extension: .csv, .parquet, or .bin
// for the mmap record layout.
func Load(path, symbol string) ([]common.Bar, error) {
	var bars []common.Bar
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		bars, err = loadCSV(path)
	case ".parquet":
		bars, err = ReadParquet(path)
	case ".bin":
		bars, err = loadBinary(path, symbol)
	default:
		return nil, fmt.Errorf("unsupported bar file extension %q", ext)
	}
	if err != nil {
		return nil, err
	}

	for i := range bars {
		bars[i].Symbol = symbol
	}
	return bars, nil
}

func loadCSV(path string) ([]common.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open %q: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

func loadBinary(path, symbol string) ([]common.Bar, error) {
	source := NewSource[BinaryBar](path)
	if err := source.Open(); err != nil {
		return nil, err
	}
	defer source.Close()

	reader := &BarReader{
		source: source,
		symbol: symbol,
		from:   math.MinInt64,
		to:     math.MaxInt64,
		idx:    invalidIndex,
	}
	return reader.ReadAll()
}
