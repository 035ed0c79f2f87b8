package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is shared by every package; redemption attempt logs hang off it,
// so the service tag keeps them findable when logs are aggregated.
var Logger, _ = zap.Config{
	Level:       zap.NewAtomicLevelAt(zapcore.InfoLevel),
	Development: false,
	Encoding:    "json",
	EncoderConfig: zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	},
	InitialFields:    map[string]any{"service": "campus_backend"},
	OutputPaths:      []string{"stdout"},
	ErrorOutputPaths: []string{"stderr"},
}.Build()
