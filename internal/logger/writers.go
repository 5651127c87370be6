package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFormat represents available log formats
type LogFormat int

const (
	FormatJSON LogFormat = iota
	FormatConsole
	FormatText
)

// String returns string representation of LogFormat
func (lf LogFormat) String() string {
	switch lf {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseFormat parses a config string into a LogFormat, defaulting to console
func ParseFormat(formatStr string) LogFormat {
	switch formatStr {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatConsole
	}
}

// newConsoleWriter creates a human-readable writer for terminal output
func newConsoleWriter(output io.Writer, noColor bool) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        output,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}
}

// newFileWriter creates a rotating file writer for the configured log file
func newFileWriter(cfg FileLogConfig) io.Writer {
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		// Fall back to the bare path; lumberjack will surface the real error on write
		return &lumberjack.Logger{Filename: cfg.LogFile}
	}

	return &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.MaxLogSizeMB,
		MaxBackups: cfg.MaxLogBackups,
		LocalTime:  true,
	}
}
