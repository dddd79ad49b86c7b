// Package skerr provides errors that remember where they were created or
// wrapped, so that a message printed far from the failure still says where
// it came from.
package skerr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// StackTrace is a single frame of a call stack.
type StackTrace struct {
	File string
	Line int
}

// String returns "file.go:123".
func (st StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// ErrorWithContext wraps an error with the call stack at the point it was
// created or first wrapped, plus any context messages added by Wrapf.
type ErrorWithContext struct {
	// Wrapped is the original error. Never nil.
	Wrapped error
	// CallStack is the stack at the point the error was first wrapped.
	CallStack []StackTrace
	// Context holds messages from Wrapf, outermost first.
	Context []string
}

// Error implements the error interface.
func (err *ErrorWithContext) Error() string {
	var out strings.Builder
	for _, c := range err.Context {
		out.WriteString(c)
		out.WriteString(": ")
	}
	out.WriteString(err.Wrapped.Error())
	out.WriteString(". At")
	for _, st := range err.CallStack {
		out.WriteString(" ")
		out.WriteString(st.String())
	}
	return out.String()
}

// Unwrap returns the original error so that errors.Is and errors.As see
// through the context.
func (err *ErrorWithContext) Unwrap() error {
	return err.Wrapped
}

// CallStack returns at most height frames of the current goroutine's stack,
// skipping startAt frames above the caller of CallStack.
func CallStack(height, startAt int) []StackTrace {
	pcs := make([]uintptr, height)
	// +2 skips runtime.Callers and CallStack itself.
	n := runtime.Callers(startAt+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	rv := make([]StackTrace, 0, n)
	for {
		f, more := frames.Next()
		if f.File != "" {
			rv = append(rv, StackTrace{
				File: filepath.Join(filepath.Base(filepath.Dir(f.File)), filepath.Base(f.File)),
				Line: f.Line,
			})
		}
		if !more {
			break
		}
	}
	return rv
}

// Fmt is like fmt.Errorf, but records the call stack.
func Fmt(format string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(format, args...),
		CallStack: CallStack(5, 1),
	}
}

// Wrap records the call stack if err does not already carry one. Returns nil
// if err is nil.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	var ewc *ErrorWithContext
	if errors.As(err, &ewc) {
		return err
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
	}
}

// Wrapf adds a context message to err, recording the call stack if err does
// not already carry one. Returns nil if err is nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	if ewc, ok := err.(*ErrorWithContext); ok {
		return &ErrorWithContext{
			Wrapped:   ewc.Wrapped,
			CallStack: ewc.CallStack,
			Context:   append([]string{msg}, ewc.Context...),
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: CallStack(5, 1),
		Context:   []string{msg},
	}
}

// Unwrap returns the original error passed to Wrap or Wrapf, or err itself if
// it was never wrapped.
func Unwrap(err error) error {
	if ewc, ok := err.(*ErrorWithContext); ok {
		return ewc.Wrapped
	}
	return err
}
