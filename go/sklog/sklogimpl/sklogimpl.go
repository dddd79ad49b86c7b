// Package sklogimpl holds the logging backend that package sklog dispatches
// to. Only main packages and tests should need to import it, to swap the
// backend with SetLogger.
package sklogimpl

import (
	"fmt"
	"sync"
)

// Severity of a log line.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// String returns the upper-case name of the severity.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

// Logger is implemented by logging backends.
type Logger interface {
	// Log writes a single line. depth is the number of stack frames between
	// the original caller and Log. If format is empty the args are joined
	// as by fmt.Sprint, otherwise they are formatted as by fmt.Sprintf.
	Log(depth int, severity Severity, format string, args ...interface{})

	// Flush blocks until all buffered lines are written.
	Flush()
}

var (
	mutex  sync.RWMutex
	logger Logger
)

// SetLogger replaces the backend. Safe to call at any time.
func SetLogger(l Logger) {
	mutex.Lock()
	defer mutex.Unlock()
	logger = l
}

// Log forwards to the current backend. It is a no-op if no backend is set.
func Log(depth int, severity Severity, format string, args ...interface{}) {
	mutex.RLock()
	l := logger
	mutex.RUnlock()
	if l == nil {
		return
	}
	l.Log(depth+1, severity, format, args...)
}

// Flush flushes the current backend.
func Flush() {
	mutex.RLock()
	l := logger
	mutex.RUnlock()
	if l != nil {
		l.Flush()
	}
}
