// Package logging holds the process-wide sugared logger.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var log = zap.NewNop().Sugar()

// Options configures Init.
type Options struct {
	File  string // Rotating log file; empty logs to stderr
	Debug bool   // Enable debug level
}

// Init replaces the global logger. Until it is called, L returns a no-op
// logger.
func Init(opts Options) error {
	var ws zapcore.WriteSyncer
	if opts.File != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		})
	} else {
		ws = zapcore.Lock(os.Stderr)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		MessageKey:    "msg",
		StacktraceKey: "stack",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	log = zap.New(core, zap.AddCaller()).Sugar()
	return nil
}

// L returns the global logger.
func L() *zap.SugaredLogger {
	return log
}

// Named returns a child of the global logger.
func Named(name string) *zap.SugaredLogger {
	return log.Named(name)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}
