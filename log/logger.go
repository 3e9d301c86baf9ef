// Package log builds the logr.Logger handed to the inventory and render
// packages.
package log

import (
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger returns a zap backed logger named name.
//
// DEV_MODE=true switches to a console encoder, LOG_LEVEL picks DEBUG or INFO
// and anything else means WARN. Debug traces from this module are logged at
// V(1), which zapr maps to zap's debug level.
func NewLogger(name string, values ...interface{}) logr.Logger {
	return NewLoggerTo(zapcore.Lock(os.Stderr), name, values...)
}

// NewLoggerTo is NewLogger writing to out.
func NewLoggerTo(out zapcore.WriteSyncer, name string, values ...interface{}) logr.Logger {
	var encoder zapcore.Encoder
	if strings.EqualFold(os.Getenv("DEV_MODE"), "true") {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.StacktraceKey = "trace"
		encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.StacktraceKey = "trace"
		encoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	core := zapcore.NewCore(encoder, out, level())
	zapLogger := zap.New(core, zap.AddStacktrace(zapcore.ErrorLevel))

	return zapr.NewLogger(zapLogger).WithName(name).WithValues(values...)
}

func level() zapcore.Level {
	logLvl := os.Getenv("LOG_LEVEL")
	if strings.EqualFold(logLvl, "DEBUG") {
		return zapcore.DebugLevel
	} else if strings.EqualFold(logLvl, "INFO") {
		return zapcore.InfoLevel
	}
	return zapcore.WarnLevel
}
