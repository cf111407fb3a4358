// Package logger provides verbose logging for the sbml2biopax CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow extraction and emission.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	base    = newLogger(os.Stderr, "level")
	section = newLogger(os.Stderr, "")
)

// newLogger builds a console logger writing "[LEVEL] message" lines.
// An empty levelKey drops the level prefix.
func newLogger(w io.Writer, levelKey string) *zap.Logger {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         levelKey,
		EncodeLevel:      bracketLevelEncoder,
		ConsoleSeparator: " ",
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)
	return zap.New(core)
}

func bracketLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	base = newLogger(w, "level")
	section = newLogger(w, "")
}

// Logger returns the structured logger behind the package functions.
// It is a no-op logger unless verbose mode is enabled.
func Logger() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return zap.NewNop()
	}
	return base
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Debug(fmt.Sprintf(format, args...))
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		section.Info(fmt.Sprintf("\n=== %s ===", name))
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Info(fmt.Sprintf(format, args...))
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		base.Warn(fmt.Sprintf(format, args...))
	}
}
