// Package sklogimpl holds the interface that logging backends must implement
// and the process-wide registered backend. It exists so that sklog and the
// backends can avoid a circular dependency.
package sklogimpl

import "sync/atomic"

// Severity identifies the log level.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is implemented by logging backends.
type Logger interface {
	// Log sends a log message at the given severity. If fmt is the empty
	// string the args are formatted as fmt.Sprint would, otherwise as
	// fmt.Sprintf. depth is the number of stack frames to skip when
	// reporting the log call site, with 0 meaning the caller of Log.
	Log(depth int, severity Severity, fmt string, args ...interface{})

	// Flush blocks until any buffered log lines have been written.
	Flush()
}

var logger atomic.Value

// SetLogger replaces the registered backend. Must be called before any
// logging occurs; sklog does this from an init function.
func SetLogger(l Logger) {
	logger.Store(&l)
}

// Log forwards to the registered backend.
func Log(depth int, severity Severity, fmt string, args ...interface{}) {
	(*logger.Load().(*Logger)).Log(depth+1, severity, fmt, args...)
}

// Flush forwards to the registered backend.
func Flush() {
	(*logger.Load().(*Logger)).Flush()
}
