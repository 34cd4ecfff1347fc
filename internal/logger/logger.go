package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger interface for structured logging
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Warn(msg string, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Fatal(msg string, err error, fields ...interface{})
}

// logrusLogger implements Logger on top of logrus
type logrusLogger struct {
	log *logrus.Logger
}

// New creates the default structured logger
func New() Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}
	return &logrusLogger{log: log}
}

// toFields converts alternating key/value pairs into logrus fields.
// A trailing odd value is logged under "extra".
func toFields(kv []interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = "field"
		}
		fields[key] = kv[i+1]
	}
	if len(kv)%2 == 1 {
		fields["extra"] = kv[len(kv)-1]
	}
	return fields
}

// Info logs an info message
func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Info(msg)
}

// Error logs an error message
func (l *logrusLogger) Error(msg string, err error, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).WithError(err).Error(msg)
}

// Warn logs a warning message
func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Warn(msg)
}

// Debug logs a debug message
func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).Debug(msg)
}

// Fatal logs a fatal error and exits
func (l *logrusLogger) Fatal(msg string, err error, fields ...interface{}) {
	l.log.WithFields(toFields(fields)).WithError(err).Fatal(msg)
}
