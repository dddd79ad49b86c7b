// Package sklog defines the logging functions used throughout rpncalc. Lines
// go to whichever sklogimpl.Logger is installed; stderr without debug output
// is the default.
package sklog

import (
	"os"

	"go.skia.org/rpncalc/go/sklog/sklogimpl"
	"go.skia.org/rpncalc/go/sklog/stdlogging"
)

func init() {
	sklogimpl.SetLogger(stdlogging.New(os.Stderr, false))
}

// Debug formats its arguments as fmt.Sprint does. Debug lines are only
// written when the backend was created with debug output enabled.
func Debug(msg ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, "", msg...)
}

// Debugf formats its arguments as fmt.Sprintf does.
func Debugf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Debug, format, v...)
}

func Infof(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Info, format, v...)
}

func Errorf(format string, v ...interface{}) {
	sklogimpl.Log(1, sklogimpl.Error, format, v...)
}

// Flush blocks until buffered lines are written.
func Flush() {
	sklogimpl.Flush()
}
