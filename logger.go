package uzu

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// logger receives every condition the package reports: exhausted pools,
// ownership faults, anomalous input. Components capture it at construction
// unless given their own via an option.
var logger = newDefaultLogger()

// newDefaultLogger builds a console logger on stderr that only emits
// warnings and above, so a healthy frame loop stays quiet.
func newDefaultLogger() *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(enc),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zap.WarnLevel),
	)
	return zap.New(core).Named("uzu")
}

// SetLogger replaces the package logger. Passing nil silences reporting.
// Components created before the call keep the logger they were built with.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return logger
}
