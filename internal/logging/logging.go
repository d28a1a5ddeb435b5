// Package logging builds the zap logger the CLI threads through the
// library packages.
package logging

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Style selects the log output format.
type Style string

const (
	StyleTerminal Style = "terminal"
	StyleJSON     Style = "json"
	StyleNoop     Style = "noop"
)

// New creates a zap logger for the given style and level. Empty values
// default to terminal output at info level; an unparseable level falls
// back to info rather than failing the command.
func New(style Style, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if level != "" {
		if parsed, err := zapcore.ParseLevel(level); err == nil {
			lvl = parsed
		}
	}

	var logger *zap.Logger
	var err error
	switch style {
	case StyleNoop:
		return zap.NewNop()
	case StyleJSON:
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	default:
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		logger, err = cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	}
	if err != nil {
		log.Printf("logger init failed, using no-op logger: %v", err)
		return zap.NewNop()
	}
	return logger
}
