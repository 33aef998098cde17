package calculation

import (
	"fmt"
	"os"
)

// Logger is a minimal logging interface for the simulation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger writes leveled lines to stderr. Debug output is gated on Verbose.
type StdLogger struct {
	Verbose bool
}

func (l StdLogger) Debugf(format string, args ...any) {
	if l.Verbose {
		fmt.Fprintf(os.Stderr, "DEBUG "+format+"\n", args...)
	}
}
func (l StdLogger) Infof(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "INFO "+format+"\n", args...)
}
func (l StdLogger) Warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "WARN "+format+"\n", args...)
}
func (l StdLogger) Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR "+format+"\n", args...)
}
