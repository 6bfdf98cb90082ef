// Package log is the shared structured logger. Everything goes through one
// zap sugared logger so log lines stay machine-parseable JSON.
package log

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var base = mustBuild("info")

// Init replaces the default logger with one at the given level.
func Init(level string) {
	base = mustBuild(level)
}

func mustBuild(level string) *zap.SugaredLogger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l.Sugar()
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func Info(action string, kv ...any) { base.Infow(action, kv...) }

func Warn(action string, kv ...any) { base.Warnw(action, kv...) }

func Error(action string, err error, kv ...any) {
	base.Errorw(action, append(kv, "err", err)...)
}
