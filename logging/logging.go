// Package logging provides the leveled, structured logger used at the edges
// of the module: loading reference curves and the command-line tools. The
// numeric packages do not log.
package logging

import "sync"

// Level represents log levels.
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a level name to a Level. Unknown names give InfoLevel
// and false.
func ParseLevel(name string) (Level, bool) {
	for l := DebugLevel; l <= ErrorLevel; l++ {
		if l.String() == name {
			return l, true
		}
	}
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	}
	return InfoLevel, false
}

// Fields represents structured logging fields.
type Fields map[string]any

// Logger is the logging interface accepted throughout the module.
type Logger interface {
	Debug(msg string, fields ...Fields)
	Info(msg string, fields ...Fields)
	Warn(msg string, fields ...Fields)
	Error(err error, msg string, fields ...Fields)

	// WithFields returns a logger with preset fields.
	WithFields(fields Fields) Logger

	// SetLevel sets the minimum level that is written.
	SetLevel(level Level)
}

var (
	mu            sync.RWMutex
	defaultLogger Logger = NewDefaultLogger()
)

// SetDefault replaces the package logger. nil installs a NoOpLogger.
func SetDefault(logger Logger) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		defaultLogger = NoOpLogger{}
		return
	}
	defaultLogger = logger
}

// Default returns the package logger.
func Default() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// OrDefault returns l, or the package logger when l is nil.
func OrDefault(l Logger) Logger {
	if l == nil {
		return Default()
	}
	return l
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...Fields)        {}
func (NoOpLogger) Info(string, ...Fields)         {}
func (NoOpLogger) Warn(string, ...Fields)         {}
func (NoOpLogger) Error(error, string, ...Fields) {}
func (n NoOpLogger) WithFields(Fields) Logger     { return n }
func (NoOpLogger) SetLevel(Level)                 {}
