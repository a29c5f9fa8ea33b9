package logging

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// ParseLogLevel translates a string representation of a log level to its enum, ignoring case
func ParseLogLevel(level string) (int, error) {
	switch strings.ToUpper(level) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN":
		return WarnLevel, nil
	case "ERROR":
		return ErrorLevel, nil
	case "FATAL":
		return FatalLevel, nil
	default:
		return InfoLevel, fmt.Errorf("Unknown log level %s", level)
	}
}

// ToZapLevel translates a log level enum to a zap level. zap has no trace level, so trace maps to debug.
func ToZapLevel(level int) zapcore.Level {
	switch level {
	case TraceLevel, DebugLevel:
		return zapcore.DebugLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	case FatalLevel:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a zap Logger at the given level. format is either "json" or "console".
func New(level int, format string) (*zap.Logger, error) {
	var conf zap.Config
	switch format {
	case "json":
		conf = zap.NewProductionConfig()
	case "console", "":
		conf = zap.NewDevelopmentConfig()
		conf.DisableStacktrace = true
	default:
		return nil, fmt.Errorf("Unknown log format %s", format)
	}
	conf.Level = zap.NewAtomicLevelAt(ToZapLevel(level))
	conf.OutputPaths = []string{"stderr"}
	return conf.Build()
}

var (
	loggerLock sync.RWMutex
	logger     = zap.NewNop()
)

// Logger returns the package logger. It discards everything until SetLogger is called.
func Logger() *zap.Logger {
	loggerLock.RLock()
	defer loggerLock.RUnlock()
	return logger
}

// SetLogger replaces the package logger, returning a function which restores the previous one
func SetLogger(l *zap.Logger) (restore func()) {
	loggerLock.Lock()
	defer loggerLock.Unlock()
	previous := logger
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
	return func() {
		SetLogger(previous)
	}
}
