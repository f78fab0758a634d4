package pattern

import "github.com/sirupsen/logrus"

// log is the package-level logger, following fisherprime-hierarchy's
// lexer convention of tracing each state transition at debug level. It
// is silent by default; SetLogger lets a caller raise the level or
// redirect output.
var log logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogger replaces the package-level logger used to trace parser state
// transitions.
func SetLogger(l logrus.FieldLogger) { log = l }
