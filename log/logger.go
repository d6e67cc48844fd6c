// Package log provides the structured logger used by every stageflow
// component. It wraps logrus with a small chainable interface so stages
// can attach their path and other fields to diagnostics.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

var (
	origLogger = logrus.New()
	baseLogger = logger{entry: logrus.NewEntry(origLogger)}
)

func init() {
	origLogger.Out = os.Stderr
	if lvl := os.Getenv("STAGEFLOW_LOG_LEVEL"); lvl != "" {
		SetLevel(lvl)
	}
}

// Logger is the interface for loggers used in stageflow components.
type Logger interface {
	Debugf(format string, args ...interface{})
	Debugln(args ...interface{})

	Infof(format string, args ...interface{})
	Infoln(args ...interface{})

	Errorf(format string, args ...interface{})
	Errorln(args ...interface{})

	With(key string, value interface{}) Logger
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) With(key string, value interface{}) Logger {
	return logger{l.entry.WithField(key, value)}
}

func (l logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l logger) Debugln(args ...interface{})               { l.entry.Debugln(args...) }

func (l logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l logger) Infoln(args ...interface{})               { l.entry.Infoln(args...) }

func (l logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l logger) Errorln(args ...interface{})               { l.entry.Errorln(args...) }

// With returns the base logger with the provided field attached.
func With(key string, value interface{}) Logger {
	return baseLogger.With(key, value)
}

// Debugf logs a message at level Debug on the base logger.
func Debugf(format string, args ...interface{}) { baseLogger.Debugf(format, args...) }

// Debugln logs a message at level Debug on the base logger.
func Debugln(args ...interface{}) { baseLogger.Debugln(args...) }

// Infof logs a message at level Info on the base logger.
func Infof(format string, args ...interface{}) { baseLogger.Infof(format, args...) }

// Infoln logs a message at level Info on the base logger.
func Infoln(args ...interface{}) { baseLogger.Infoln(args...) }

// Errorf logs a message at level Error on the base logger.
func Errorf(format string, args ...interface{}) { baseLogger.Errorf(format, args...) }

// Errorln logs a message at level Error on the base logger.
func Errorln(args ...interface{}) { baseLogger.Errorln(args...) }

// SetLevel adjusts the level of the base logger, unparseable levels are
// ignored and the current level retained.
func SetLevel(lvl string) {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		return
	}
	origLogger.Level = level
}

// Orig exposes the underlying logrus Logger for callers needing to redirect
// or silence output.
func Orig() *logrus.Logger {
	return origLogger
}
