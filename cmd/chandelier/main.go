package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"go.uber.org/zap"

	"github.com/peter-kozarec/chandelier/internal/dbg"
	"github.com/peter-kozarec/chandelier/pkg/common"
	"github.com/peter-kozarec/chandelier/pkg/datasource"
	"github.com/peter-kozarec/chandelier/pkg/datasource/historical"
	"github.com/peter-kozarec/chandelier/pkg/datasource/synthetic"
	"github.com/peter-kozarec/chandelier/pkg/series"
	"github.com/peter-kozarec/chandelier/pkg/tools/session"
)

func main() {
	cfg, err := LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := dbg.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func(logger *zap.Logger) {
		_ = logger.Sync()
	}(logger)

	logger.Info(fmt.Sprintf("chandelier %s", Version))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("render failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("done", zap.String("out", cfg.Out))
}

func run(ctx context.Context, cfg *Config, logger *zap.Logger) error {
	bars, err := loadBars(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("bars loaded", zap.String("in", cfg.In), zap.Int("count", len(bars)))

	if cfg.Session > 0 {
		session.NewMarker(cfg.Session, logger).Mark(bars)
	}

	name := cfg.Symbol
	if name == "" {
		name = cfg.In
	}
	graph := chart.Chart{
		Title:  name,
		Width:  cfg.Width,
		Height: cfg.Height,
		Series: []chart.Series{series.New(name, bars, cfg.Options(), logger)},
	}

	provider := chart.PNG
	if cfg.Format == "svg" {
		provider = chart.SVG
	}

	f, err := os.Create(cfg.Out)
	if err != nil {
		return fmt.Errorf("unable to create %q: %w", cfg.Out, err)
	}
	if err := graph.Render(provider, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("unable to render chart: %w", err)
	}
	return f.Close()
}

func loadBars(ctx context.Context, cfg *Config, logger *zap.Logger) ([]common.Bar, error) {
	if cfg.IsSynthetic() {
		symbol := cfg.Symbol
		if symbol == "" {
			symbol = "EURUSD"
		}
		start := time.Now().UTC().Truncate(time.Minute).Add(-time.Duration(cfg.Bars) * time.Minute)
		generator := synthetic.NewEURUSDBarGenerator(symbol, rand.New(rand.NewSource(cfg.Seed)), start, int64(cfg.Bars), 0, cfg.Sigma, logger) // #nosec G404
		return datasource.Collect(ctx, generator, cfg.Bars)
	}

	bars, err := historical.Load(cfg.In, cfg.Symbol)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if cfg.Bars > 0 && cfg.Bars < len(bars) {
		bars = bars[len(bars)-cfg.Bars:]
	}
	return bars, nil
}
