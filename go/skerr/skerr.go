// Package skerr provides error wrapping that retains the call sites an error
// passed through on its way up the stack.
//
// Errors created by Fmt or wrapped by Wrap/Wrapf render as the original
// message followed by the chain of file:line locations, e.g.:
//
//	Failed to decode image: unexpected EOF. At imgutil.go:42 main.go:17
package skerr

import (
	"fmt"
	"runtime"
	"strings"
)

// StackTrace identifies a single call site.
type StackTrace struct {
	File string
	Line int
}

func (st StackTrace) String() string {
	return fmt.Sprintf("%s:%d", st.File, st.Line)
}

// ErrorWithContext is an error plus the locations that wrapped it and any
// additional context messages supplied via Wrapf.
type ErrorWithContext struct {
	// Wrapped is the original error.
	Wrapped error
	// CallStack is ordered with the most recent wrap first.
	CallStack []StackTrace
	// Context messages, most recent first.
	Context []string
}

// Error implements the error interface.
func (e *ErrorWithContext) Error() string {
	var sb strings.Builder
	for _, c := range e.Context {
		sb.WriteString(c)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Wrapped.Error())
	if len(e.CallStack) > 0 {
		sb.WriteString(". At")
		for _, st := range e.CallStack {
			sb.WriteString(" ")
			sb.WriteString(st.String())
		}
	}
	return sb.String()
}

// Unwrap supports errors.Is and errors.As.
func (e *ErrorWithContext) Unwrap() error {
	return e.Wrapped
}

// callSite returns the StackTrace of the caller skip+1 frames up.
func callSite(skip int) StackTrace {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return StackTrace{File: "???", Line: 0}
	}
	// Keep just the file name; full paths add noise without aiding debugging.
	if idx := strings.LastIndex(file, "/"); idx >= 0 {
		file = file[idx+1:]
	}
	return StackTrace{File: file, Line: line}
}

// Fmt creates a new error with the call site of the caller recorded.
func Fmt(fmtStr string, args ...interface{}) error {
	return &ErrorWithContext{
		Wrapped:   fmt.Errorf(fmtStr, args...),
		CallStack: []StackTrace{callSite(1)},
	}
}

// Wrap adds the caller's call site to err. If err is already an
// ErrorWithContext the call site is appended to its stack, otherwise err is
// wrapped. Wrap(nil) returns nil so it can be used on any return value.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if ewc, ok := err.(*ErrorWithContext); ok {
		return &ErrorWithContext{
			Wrapped:   ewc.Wrapped,
			CallStack: append([]StackTrace{callSite(1)}, ewc.CallStack...),
			Context:   ewc.Context,
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: []StackTrace{callSite(1)},
	}
}

// Wrapf is like Wrap but also prepends a formatted context message.
func Wrapf(err error, fmtStr string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(fmtStr, args...)
	if ewc, ok := err.(*ErrorWithContext); ok {
		return &ErrorWithContext{
			Wrapped:   ewc.Wrapped,
			CallStack: append([]StackTrace{callSite(1)}, ewc.CallStack...),
			Context:   append([]string{msg}, ewc.Context...),
		}
	}
	return &ErrorWithContext{
		Wrapped:   err,
		CallStack: []StackTrace{callSite(1)},
		Context:   []string{msg},
	}
}

// Unwrap returns the innermost error if err was created by this package,
// otherwise err itself.
func Unwrap(err error) error {
	if ewc, ok := err.(*ErrorWithContext); ok {
		return ewc.Wrapped
	}
	return err
}
