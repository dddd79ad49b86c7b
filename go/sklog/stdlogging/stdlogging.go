// Package stdlogging implements sklogimpl.Logger and logs to either stderr or stdout.
package stdlogging

import (
	logger "github.com/jcgregorio/logger"
	"go.skia.org/rpncalc/go/sklog/sklogimpl"
)

type stdlog struct {
	logger *logger.Logger
}

// New returns a sklogimpl.Logger that writes to a SyncWriter, such as
// os.Stdout or os.Stderr. Debug lines are dropped unless debug is true.
func New(dst logger.SyncWriter, debug bool) sklogimpl.Logger {
	return &stdlog{
		logger: logger.NewFromOptions(&logger.Options{
			SyncWriter:   dst,
			DepthDelta:   3,
			IncludeDebug: debug,
		}),
	}
}

// Log implements sklogimpl.Logger.
func (s *stdlog) Log(_ int, severity sklogimpl.Severity, format string, args ...interface{}) {
	l := s.logger
	if format == "" {
		switch severity {
		case sklogimpl.Debug:
			l.Debug(args...)
		case sklogimpl.Info:
			l.Info(args...)
		case sklogimpl.Warning:
			l.Warning(args...)
		case sklogimpl.Fatal:
			l.Fatal(args...)
		default:
			l.Error(args...)
		}
		return
	}
	switch severity {
	case sklogimpl.Debug:
		l.Debugf(format, args...)
	case sklogimpl.Info:
		l.Infof(format, args...)
	case sklogimpl.Warning:
		l.Warningf(format, args...)
	case sklogimpl.Fatal:
		l.Fatalf(format, args...)
	default:
		l.Errorf(format, args...)
	}
}

// Flush implements sklogimpl.Logger. Lines are written synchronously.
func (s *stdlog) Flush() {}

// nop discards everything.
type nop struct{}

// NewNop returns a sklogimpl.Logger that discards all lines.
func NewNop() sklogimpl.Logger {
	return nop{}
}

// Log implements sklogimpl.Logger.
func (nop) Log(int, sklogimpl.Severity, string, ...interface{}) {}

// Flush implements sklogimpl.Logger.
func (nop) Flush() {}
