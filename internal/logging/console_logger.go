package logging

import (
	"fmt"
	"io"
	"sync"
)

// ConsoleLogger writes log messages to an io.Writer.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	styles  Styles
	mu      sync.Mutex
}

// NewConsoleLoggerTo creates a ConsoleLogger writing to w, normally stderr.
// If verbose is false, Verbose() calls are no-ops.
// Prefixes are styled only when color is true.
func NewConsoleLoggerTo(w io.Writer, verbose, color bool) *ConsoleLogger {
	styles := PlainStyles()
	if color {
		styles = DefaultStyles()
	}
	return &ConsoleLogger{
		verbose: verbose,
		out:     w,
		styles:  styles,
	}
}

func (l *ConsoleLogger) write(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if prefix != "" {
		msg = prefix + " " + msg
	}
	fmt.Fprintln(l.out, msg)
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.styles.Verbose.Render("[VERBOSE]"), format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.styles.Error.Render("[ERROR]"), format, args)
}
