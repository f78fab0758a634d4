package trieql

import (
	"github.com/sirupsen/logrus"

	"github.com/trieql/trieql/match"
	"github.com/trieql/trieql/pattern"
)

// log is the package-level logger, following fisherprime-hierarchy's
// fLogger convention: a FieldLogger defaulting to a logrus instance at
// InfoLevel, swappable via SetLogger. Debug-level traces are emitted from the
// pattern cache and the prefilter decision path; they are silent unless
// the caller raises the level.
var log logrus.FieldLogger = newDefaultLogger()

func newDefaultLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetLogger replaces the package-level logger used for debug tracing of
// cache hits and prefilter decisions, and propagates the same
// logger to pattern.SetLogger and match.SetLogger, so a single call
// raises the level across parser state transitions and matcher descent
// too.
func SetLogger(l logrus.FieldLogger) {
	log = l
	pattern.SetLogger(l)
	match.SetLogger(l)
}
