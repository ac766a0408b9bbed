package dbg

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewDevLogger() *zap.Logger {
	return must(build(zap.NewDevelopmentConfig(), zapcore.DebugLevel))
}

func NewProdLogger() *zap.Logger {
	return must(build(zap.NewProductionConfig(), zapcore.InfoLevel))
}

// NewLogger picks the preset by level: debug uses the development console encoder, any
// other level the production JSON encoder.
func NewLogger(level string) (*zap.Logger, error) {
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zapcore.DebugLevel {
		return build(zap.NewDevelopmentConfig(), lvl)
	}
	return build(zap.NewProductionConfig(), lvl)
}

func build(cfg zap.Config, level zapcore.Level) (*zap.Logger, error) {
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	return cfg.Build()
}

func must(logger *zap.Logger, err error) *zap.Logger {
	if err != nil {
		panic(err)
	}
	return logger
}
