package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/peter-kozarec/chandelier/pkg/ohlc"
	"github.com/peter-kozarec/chandelier/pkg/tools/session"
)

const (
	Version = "v0.1.0"

	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFormat = "png"

	// SyntheticInput selects the generated EURUSD-like bars instead of a file.
	SyntheticInput    = "synthetic"
	DefaultSynthBars  = 500
	DefaultSynthSeed  = 1
	DefaultSynthSigma = 0.08
)

// Config is the resolved command line. Environment variables (optionally from a .env file)
// provide the defaults and flags override them.
type Config struct {
	In     string
	Out    string
	Symbol string
	Format string
	Width  int
	Height int

	Mode          ohlc.AggregationMode
	Size          int
	Shape         ohlc.Shape
	VolumeOpacity ohlc.OpacityMode
	MaxOpacity    float64

	Bars  int
	Seed  int64
	Sigma float64

	Session session.Period

	LogLevel string
}

func LoadConfig(args []string) (*Config, error) {
	_ = godotenv.Load()

	size, err := getEnvInt("CHANDELIER_SIZE", 1)
	if err != nil {
		return nil, err
	}
	maxOpacity, err := getEnvFloat("CHANDELIER_MAX_OPACITY", 1)
	if err != nil {
		return nil, err
	}

	var mode, shape, opacity, sessionPeriod string
	cfg := &Config{}

	fs := flag.NewFlagSet("chandelier", flag.ContinueOnError)
	fs.StringVar(&cfg.In, "in", getEnv("CHANDELIER_IN", ""), "bar file (.csv, .parquet or .bin) or synthetic")
	fs.StringVar(&cfg.Out, "out", getEnv("CHANDELIER_OUT", ""), "output image, defaults to the input name")
	fs.StringVar(&cfg.Symbol, "symbol", getEnv("CHANDELIER_SYMBOL", ""), "symbol attached to the bars")
	fs.StringVar(&cfg.Format, "format", getEnv("CHANDELIER_FORMAT", DefaultFormat), "png or svg")
	fs.IntVar(&cfg.Width, "width", DefaultWidth, "image width")
	fs.IntVar(&cfg.Height, "height", DefaultHeight, "image height")
	fs.StringVar(&mode, "mode", getEnv("CHANDELIER_MODE", string(ohlc.AggregationNone)), "aggregation: false, static, trend, trigger, volume_trend")
	fs.IntVar(&cfg.Size, "size", size, "chandelier size")
	fs.StringVar(&shape, "shape", getEnv("CHANDELIER_SHAPE", string(ohlc.ShapeRounded)), "candle shape")
	fs.StringVar(&opacity, "opacity", getEnv("CHANDELIER_VOLUME_OPACITY", ""), "volume opacity mode: max, previous, average")
	fs.Float64Var(&cfg.MaxOpacity, "max-opacity", maxOpacity, "maximum volume opacity")
	fs.IntVar(&cfg.Bars, "bars", 0, "number of bars to draw, the newest ones of a file or generated ones")
	fs.Int64Var(&cfg.Seed, "seed", DefaultSynthSeed, "synthetic random seed")
	fs.Float64Var(&cfg.Sigma, "sigma", DefaultSynthSigma, "synthetic annualised volatility")
	fs.StringVar(&sessionPeriod, "session", getEnv("CHANDELIER_SESSION", ""), "flag session starts as new bars (m5, h1, d1 or a duration)")
	fs.StringVar(&cfg.LogLevel, "log", getEnv("CHANDELIER_LOG", "info"), "log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.In == "" {
		return nil, fmt.Errorf("missing input file, use -in or CHANDELIER_IN")
	}

	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != "png" && cfg.Format != "svg" {
		return nil, fmt.Errorf("unsupported format %q", cfg.Format)
	}
	if cfg.Out == "" {
		cfg.Out = strings.TrimSuffix(cfg.In, filepath.Ext(cfg.In)) + "." + cfg.Format
	}
	if cfg.Bars < 0 {
		return nil, fmt.Errorf("invalid bar count %d", cfg.Bars)
	}
	if cfg.IsSynthetic() && cfg.Bars == 0 {
		cfg.Bars = DefaultSynthBars
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height)
	}

	var ok bool
	if cfg.Mode, ok = ohlc.ParseAggregationMode(mode); !ok {
		return nil, fmt.Errorf("unknown aggregation mode %q", mode)
	}
	if cfg.Shape, ok = ohlc.ParseShape(shape); !ok {
		return nil, fmt.Errorf("unknown shape %q", shape)
	}
	if cfg.VolumeOpacity, ok = parseOpacityMode(opacity); !ok {
		return nil, fmt.Errorf("unknown volume opacity mode %q", opacity)
	}
	if sessionPeriod != "" {
		if cfg.Session, err = session.ParsePeriod(sessionPeriod); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func (c *Config) IsSynthetic() bool {
	return strings.EqualFold(c.In, SyntheticInput)
}

// Options converts the command line into series options.
func (c *Config) Options() ohlc.Options {
	opts := []ohlc.Option{
		ohlc.WithAggregation(c.Mode),
		ohlc.WithChandelierSize(c.Size),
		ohlc.WithShape(c.Shape),
		ohlc.WithRadius(2),
	}
	if c.VolumeOpacity != "" {
		opts = append(opts, ohlc.WithVolumeOpacity(c.VolumeOpacity, ohlc.DefaultOpacityPeriod, c.MaxOpacity))
	}
	return ohlc.NewOptions(opts...).Normalized()
}

func parseOpacityMode(s string) (ohlc.OpacityMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "off", "false":
		return "", true
	case "max", string(ohlc.OpacityMax):
		return ohlc.OpacityMax, true
	case "previous", string(ohlc.OpacityPrevious):
		return ohlc.OpacityPrevious, true
	case "average", string(ohlc.OpacityAverage):
		return ohlc.OpacityAverage, true
	default:
		return "", false
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) (int, error) {
	s := getEnv(key, "")
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, def float64) (float64, error) {
	s := getEnv(key, "")
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}
