package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	Logger      *zap.SugaredLogger
	AtomicLevel zap.AtomicLevel
)

func init() {
	logger, level, err := NewLogger(StringEnv("LOG_LEVEL", "INFO"))
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}
	Logger, AtomicLevel = logger, level
}

// NewLogger builds a stderr console logger with its own level. An unparsable
// level falls back to INFO.
func NewLogger(logLevel string) (*zap.SugaredLogger, zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		log.Printf("failed to parse log level, fallback to INFO: %v", err)
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	config := zap.Config{
		Level:            level,
		Sampling:         &zap.SamplingConfig{Initial: 100, Thereafter: 100},
		Encoding:         "console",
		EncoderConfig:    consoleEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	logger, err := config.Build()
	if err != nil {
		return nil, level, err
	}
	return logger.Named("charts").Sugar(), level, nil
}

func consoleEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		MessageKey:     "M",
		LevelKey:       "L",
		TimeKey:        "T",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}
