// Package log defines the logging seam used across the renderer, so
// callers can swap in a silent or test-capturing logger without touching
// render code.
package log

import (
	"log"
	"os"
)

// Logger is the minimal surface the renderer needs.
type Logger interface {
	Printf(format string, args ...any)
}

// Default returns a Logger backed by the standard library's log package,
// writing to stderr with a timestamp prefix.
func Default() Logger {
	return log.New(os.Stderr, "", log.LstdFlags)
}

// Nop is a Logger that discards everything, useful in tests.
type Nop struct{}

// Printf implements Logger.
func (Nop) Printf(string, ...any) {}
