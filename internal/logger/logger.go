// Package logger is a small named, leveled logger over the standard log package.
package logger

import (
	"fmt"
	"io"
	"log"
)

// -----------------------------------------------------------------------------

// Logger writes "[name] LEVEL: message" lines. Debug lines are dropped unless
// the logger is verbose.
type Logger struct {
	name    string
	verbose bool
	logger  *log.Logger
}

// -----------------------------------------------------------------------------

// New creates a Logger writing to w.
func New(w io.Writer, name string, verbose bool) *Logger {
	return &Logger{
		name:    name,
		verbose: verbose,
		logger:  log.New(w, "", log.LstdFlags),
	}
}

// -----------------------------------------------------------------------------

// Debug logs diagnostic messages when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.print("DEBUG", format, args...)
}

// Info logs informational messages.
func (l *Logger) Info(format string, args ...interface{}) {
	l.print("INFO", format, args...)
}

// Warning logs recoverable problems.
func (l *Logger) Warning(format string, args ...interface{}) {
	l.print("WARNING", format, args...)
}

// Error logs failures.
func (l *Logger) Error(format string, args ...interface{}) {
	l.print("ERROR", format, args...)
}

func (l *Logger) print(level, format string, args ...interface{}) {
	l.logger.Printf("[%s] %s: %s", l.name, level, fmt.Sprintf(format, args...))
}
