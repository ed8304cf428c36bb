package core

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

var loggerInstance Logger = *NewDevelopmentLogger() // default to development logger

// SetLogger sets the global logger instance
func SetLogger(logger Logger) {
	loggerInstance = logger
}

// GetLogger retrieves the global logger instance
func GetLogger() *Logger {
	return &loggerInstance
}

// Logger is a small leveled logger with attached context attributes.
// The actual output sink is pluggable via the handler function so that
// tests can capture log lines and production can route through zap.
type Logger struct {
	handlerFunc func(level string, msg string, attrs map[string]any)
	attrs       map[string]any
	sync        func() error
}

// NewLogger creates a Logger backed by an arbitrary handler function.
func NewLogger(handler func(level string, msg string, attrs map[string]any)) *Logger {
	return &Logger{
		handlerFunc: handler,
		attrs:       make(map[string]any),
	}
}

// NewDevelopmentLogger creates a logger with human-readable console output.
func NewDevelopmentLogger() *Logger {
	handler := func(level string, msg string, attrs map[string]any) {
		attrStr := ""
		for k, v := range attrs {
			attrStr += fmt.Sprintf(" %s=%v", k, v)
		}
		line := fmt.Sprintf("%s [%s] %s%s\n", time.Now().Format(time.RFC3339), level, msg, attrStr)
		if level == "FATAL" {
			fmt.Fprint(os.Stderr, line)
			os.Exit(1)
		}
		fmt.Print(line)
	}
	return NewLogger(handler)
}

// NewProductionLogger creates a logger that emits structured JSON via zap.
func NewProductionLogger() *Logger {
	zl, err := zap.NewProduction(zap.AddCallerSkip(2))
	if err != nil {
		return NewDevelopmentLogger()
	}
	handler := func(level string, msg string, attrs map[string]any) {
		fields := make([]zap.Field, 0, len(attrs))
		for k, v := range attrs {
			fields = append(fields, zap.Any(k, v))
		}
		switch level {
		case "DEBUG":
			zl.Debug(msg, fields...)
		case "WARN":
			zl.Warn(msg, fields...)
		case "ERROR":
			zl.Error(msg, fields...)
		case "FATAL":
			zl.Fatal(msg, fields...)
		default:
			zl.Info(msg, fields...)
		}
	}
	l := NewLogger(handler)
	l.sync = zl.Sync
	return l
}

func (l *Logger) log(level string, msg string, args ...any) {
	if l.handlerFunc == nil {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.handlerFunc(level, msg, l.attrs)
}

func (l *Logger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }
func (l *Logger) Fatal(msg string, args ...any) { l.log("FATAL", msg, args...) }

func (l *Logger) Debugf(format string, args ...any) { l.log("DEBUG", format, args...) }
func (l *Logger) Infof(format string, args ...any)  { l.log("INFO", format, args...) }
func (l *Logger) Warnf(format string, args ...any)  { l.log("WARN", format, args...) }
func (l *Logger) Errorf(format string, args ...any) { l.log("ERROR", format, args...) }
func (l *Logger) Fatalf(format string, args ...any) { l.log("FATAL", format, args...) }

// With returns a child logger carrying additional context attributes.
func (l *Logger) With(attrs map[string]any) *Logger {
	combined := make(map[string]any, len(l.attrs)+len(attrs))
	for k, v := range l.attrs {
		combined[k] = v
	}
	for k, v := range attrs {
		combined[k] = v
	}
	return &Logger{handlerFunc: l.handlerFunc, attrs: combined, sync: l.sync}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	if l.sync != nil {
		return l.sync()
	}
	return nil
}
