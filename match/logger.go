package match

import "github.com/sirupsen/logrus"

// log is the package-level logger, tracing matcher descent at debug
// level: each token consumed, each byte tried, each capture bound or
// restored, and each branch pruned. Silent by default; SetLogger lets a
// caller raise the level or redirect output.
var log logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogger replaces the package-level logger used to trace matcher
// descent.
func SetLogger(l logrus.FieldLogger) { log = l }
