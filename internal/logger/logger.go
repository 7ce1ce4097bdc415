// Package logger provides verbose logging for the restcall CLI.
// Verbosity is counted: -v enables info messages, -vv adds debug messages.
// Warnings are always printed. Everything goes to stderr so log output
// never mixes with response bodies on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Verbosity levels set from the --verbose flag count.
const (
	LevelQuiet = 0
	LevelInfo  = 1
	LevelDebug = 2
)

var (
	mu     sync.RWMutex
	level  int
	output io.Writer = os.Stderr
)

// SetLevel sets the verbosity level. Counts above LevelDebug are clamped.
func SetLevel(l int) {
	mu.Lock()
	defer mu.Unlock()
	if l > LevelDebug {
		l = LevelDebug
	}
	level = l
}

// Level returns the current verbosity level.
func Level() int {
	mu.RLock()
	defer mu.RUnlock()
	return level
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message at -vv and above.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= LevelDebug {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints a message at -v and above.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if level >= LevelInfo {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
}

// Warn prints a warning regardless of verbosity.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
}
