package util

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a logger configured the way ifplan processes log:
// stderr, info level, timestamped text. Components receive a *logrus.Entry
// derived from one of these at construction; there is no ambient logger
// inside the engine itself.
func NewLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return l
}

// Logger is the process-wide logger used by the CLI entry point.
var Logger = NewLogger()

// SetLogLevel sets the logging level
func SetLogLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger.SetLevel(lvl)
	return nil
}

// SetLogOutput sets the log output destination
func SetLogOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// SetJSONFormat enables JSON log format
func SetJSONFormat() {
	Logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02T15:04:05Z07:00",
	})
}

// WithDevice returns an entry of the process logger with device context
func WithDevice(device string) *logrus.Entry {
	return Logger.WithField("device", device)
}

// WithOperation returns an entry of the process logger with operation context
func WithOperation(operation string) *logrus.Entry {
	return Logger.WithField("operation", operation)
}

// Warnf logs a formatted warning message on the process logger
func Warnf(format string, args ...interface{}) {
	Logger.Warnf(format, args...)
}

// Errorf logs a formatted error message on the process logger
func Errorf(format string, args ...interface{}) {
	Logger.Errorf(format, args...)
}

// Infof logs a formatted info message on the process logger
func Infof(format string, args ...interface{}) {
	Logger.Infof(format, args...)
}

// Debugf logs a formatted debug message on the process logger
func Debugf(format string, args ...interface{}) {
	Logger.Debugf(format, args...)
}
