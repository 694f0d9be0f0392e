// Package logger holds the zap logger shared by the example programs
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logMu sync.RWMutex
	log   *zap.Logger
	sugar *zap.SugaredLogger
)

// InitProduction sets up a JSON production logger
func InitProduction() error {
	return initWith(zap.NewProductionConfig())
}

// InitDevelopment sets up a console logger with debug level enabled
func InitDevelopment() error {
	return initWith(zap.NewDevelopmentConfig())
}

func initWith(cfg zap.Config) error {
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()

	if err != nil {
		return err
	}

	setLogger(l)
	return nil
}

// setLogger replaces the package and zap global loggers
func setLogger(l *zap.Logger) {
	logMu.Lock()
	defer logMu.Unlock()

	zap.ReplaceGlobals(l)

	if log != nil {
		_ = log.Sync()
	}

	log = l
	sugar = l.Sugar()
}

// Log returns the logger, or zap's global no-op logger before initialization
func Log() *zap.Logger {
	logMu.RLock()
	defer logMu.RUnlock()

	if log != nil {
		return log
	}

	return zap.L()
}

// S returns the sugared logger
func S() *zap.SugaredLogger {
	logMu.RLock()
	defer logMu.RUnlock()

	if sugar != nil {
		return sugar
	}

	return zap.S()
}

// Sync flushes buffered log entries
func Sync() {
	logMu.RLock()
	defer logMu.RUnlock()

	if log != nil {
		_ = log.Sync()
	}
}
