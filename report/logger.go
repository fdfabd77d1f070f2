package report

import "github.com/sirupsen/logrus"

// Logger is a small logging interface for report sinks. It is a subset
// of logrus.FieldLogger, kept intentionally small so callers can adapt
// any backend without pulling logrus itself into their own code,
// following the same pattern as the teacher corpus's sql/log.Logger. The
// engine packages of this module do not take or log through a Logger.
type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
	WithError(err error) Logger
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
}

// Discard implements Logger and does nothing.
type Discard struct{}

var _ Logger = Discard{}

func (Discard) WithField(string, any) Logger     { return Discard{} }
func (Discard) WithFields(map[string]any) Logger { return Discard{} }
func (Discard) WithError(error) Logger           { return Discard{} }
func (Discard) Debug(...any)                     {}
func (Discard) Info(...any)                      {}
func (Discard) Warn(...any)                      {}

// Logrus adapts a *logrus.Entry (or *logrus.Logger, via its own Entry) to
// the Logger interface.
type Logrus struct{ Entry *logrus.Entry }

var _ Logger = Logrus{}

// NewLogrus wraps l in a Logrus adapter, pre-tagging every message with
// the given engine name.
func NewLogrus(l *logrus.Logger, engine string) Logrus {
	return Logrus{Entry: l.WithField("engine", engine)}
}

func (l Logrus) WithField(key string, value any) Logger {
	return Logrus{Entry: l.Entry.WithField(key, value)}
}

func (l Logrus) WithFields(fields map[string]any) Logger {
	return Logrus{Entry: l.Entry.WithFields(logrus.Fields(fields))}
}

func (l Logrus) WithError(err error) Logger {
	return Logrus{Entry: l.Entry.WithError(err)}
}

func (l Logrus) Debug(args ...any) { l.Entry.Debug(args...) }
func (l Logrus) Info(args ...any)  { l.Entry.Info(args...) }
func (l Logrus) Warn(args ...any)  { l.Entry.Warn(args...) }
