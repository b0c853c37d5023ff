package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Logger defines the interface for logging messages.
type Logger interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Noop returns a do-nothing Logger (null object pattern).
func Noop() Logger { return &noopLogger{} }

type noopLogger struct{}

func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// StdLogger provides thread-safe leveled logging to an output writer.
type StdLogger struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool

	info  *color.Color
	warn  *color.Color
	error *color.Color
}

// NewStdLogger creates a new Logger that writes to the given writer.
// If quiet is true, Info messages are suppressed. Level tags are colored
// only when out is a terminal.
func NewStdLogger(out io.Writer, quiet bool) *StdLogger {
	l := &StdLogger{
		out:   out,
		quiet: quiet,
		info:  color.New(color.FgCyan),
		warn:  color.New(color.FgYellow),
		error: color.New(color.FgRed, color.Bold),
	}
	if !isTerminal(out) {
		l.info.DisableColor()
		l.warn.DisableColor()
		l.error.DisableColor()
	}
	return l
}

// Info logs an informational message with [INFO] prefix.
func (l *StdLogger) Info(format string, args ...any) {
	if l.quiet {
		return
	}
	l.write(l.info, "[INFO]", format, args...)
}

// Warn logs a warning with [WARN] prefix.
func (l *StdLogger) Warn(format string, args ...any) {
	l.write(l.warn, "[WARN]", format, args...)
}

// Error logs an error with [ERROR] prefix.
func (l *StdLogger) Error(format string, args ...any) {
	l.write(l.error, "[ERROR]", format, args...)
}

func (l *StdLogger) write(c *color.Color, tag, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.out, "%s %s\n", c.Sprint(tag), fmt.Sprintf(format, args...))
}

// isTerminal reports whether w is a terminal file.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// OpenFile opens path for appending and returns a Logger writing to it,
// along with a close function.
func OpenFile(path string, quiet bool) (*StdLogger, func() error, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return NewStdLogger(f, quiet), f.Close, nil
}
