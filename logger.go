package gamedraw

import (
	"io"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var loggerPtr atomic.Pointer[logrus.Logger]

func init() {
	loggerPtr.Store(newSilentLogger())
}

func newSilentLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// SetLogger configures the logger used by gamedraw and its engines.
// By default nothing is logged. Passing nil restores the silent logger.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *logrus.Logger) {
	if l == nil {
		l = newSilentLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. The engine packages call it so they
// share one configuration.
func Logger() *logrus.Logger {
	return loggerPtr.Load()
}
