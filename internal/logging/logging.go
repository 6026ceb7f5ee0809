// Package logging builds the zap logger that serves as the operator channel.
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logging configuration
type Config struct {
	Level  string
	Format string // "json" or "console"
	Output string // "stdout", "stderr", or file path
}

// New creates a structured logger. The returned close func flushes the logger
// and releases the log file, if any.
func New(cfg Config) (*zap.Logger, func(), error) {
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level '%s': %w", cfg.Level, err)
	}

	var encoder zapcore.Encoder
	if cfg.Format == "json" {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	var (
		ws      zapcore.WriteSyncer
		closeFn = func() {}
	)
	switch cfg.Output {
	case "stderr", "":
		ws = zapcore.Lock(os.Stderr)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		file, err := os.OpenFile(cfg.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file '%s': %w", cfg.Output, err)
		}
		ws = zapcore.AddSync(file)
		closeFn = func() { file.Close() }
	}

	logger := zap.New(zapcore.NewCore(encoder, ws, level), zap.AddCaller())
	return logger, func() {
		_ = logger.Sync()
		closeFn()
	}, nil
}
