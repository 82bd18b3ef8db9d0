package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fatih/color" // Import the fatih/color package for colored console output
	"github.com/rs/zerolog"
)

var (
	mu      sync.Mutex
	out     io.Writer = color.Output
	fileLog *zerolog.Logger
	logFile *os.File
)

// Define colorized printing functions for different log levels using fatih/color.
// Each behaves like fmt.Printf; every line is also mirrored to the structured
// log file when one was opened by Init.

// Info logs informational messages in green color.
var Info = printer(color.New(color.FgGreen), zerolog.InfoLevel)

// Warn logs warning messages in bright magenta color.
var Warn = printer(color.New(color.FgHiMagenta), zerolog.WarnLevel)

// Error logs error messages in red color.
var Error = printer(color.New(color.FgRed), zerolog.ErrorLevel)

// Log prints step headings in bright blue.
var Log = printer(color.New(color.FgHiBlue), zerolog.InfoLevel)

// Msg prints raw command output without decoration.
var Msg = printer(color.New(color.Reset), zerolog.InfoLevel)

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is reassigned by Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init enables or disables debug logging and, when logPath is not empty,
// opens a JSON log file that receives a copy of every console line.
func Init(enableDebug bool, logPath string) error {
	if enableDebug {
		Debug = printer(color.New(color.FgCyan), zerolog.DebugLevel)
	} else {
		Debug = func(format string, a ...any) {}
	}

	if logPath == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	level := zerolog.InfoLevel
	if enableDebug {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(f).Level(level).With().Timestamp().Logger()

	mu.Lock()
	logFile = f
	fileLog = &l
	mu.Unlock()
	return nil
}

// Close flushes and closes the structured log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
		fileLog = nil
	}
}

// SetOutput redirects console output and returns a func restoring the previous writer.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	prev := out
	out = w
	mu.Unlock()
	return func() {
		mu.Lock()
		out = prev
		mu.Unlock()
	}
}

func printer(c *color.Color, level zerolog.Level) func(format string, a ...any) {
	return func(format string, a ...any) {
		mu.Lock()
		defer mu.Unlock()
		_, _ = c.Fprintf(out, format, a...)
		if fileLog != nil {
			fileLog.WithLevel(level).Msg(strings.TrimSpace(fmt.Sprintf(format, a...)))
		}
	}
}
