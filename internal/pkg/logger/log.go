package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// GetLogger returns the process-wide logger. It logs at info level to
// stderr, EVDEV_DEBUG=1 in the environment switches it to debug.
func GetLogger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder

		level := zap.InfoLevel
		if os.Getenv("EVDEV_DEBUG") != "" {
			level = zap.DebugLevel
		}

		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(cfg),
			zapcore.Lock(os.Stderr),
			level,
		)
		logger = zap.New(core)
	})

	return logger
}
