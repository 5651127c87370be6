package logger

import (
	"io"
	stdlog "log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"serprank/internal/errorwrapper"
)

// New creates a zerolog logger from file-based configuration.
// Console output is always enabled; file output is enabled when
// LogFile is non-empty, rotated by lumberjack.
func New(cfg FileLogConfig) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, err
	}

	format := ParseFormat(strings.ToLower(cfg.LogFormat))

	writers := []io.Writer{createConsoleOutput(format)}
	if cfg.LogFile != "" {
		writers = append(writers, createFileOutput(format, cfg))
	}

	multi := zerolog.MultiLevelWriter(writers...)
	instance := zerolog.New(multi).
		Level(level).
		With().
		Timestamp().
		Logger()

	zerolog.SetGlobalLevel(level)

	// Route the standard log package through zerolog so stray
	// log.Print calls from dependencies stay structured
	stdlog.SetOutput(instance)
	stdlog.SetFlags(0)

	return instance, nil
}

func parseLevel(levelStr string) (zerolog.Level, error) {
	if levelStr == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(levelStr))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.WrapError(err, "invalid log level")
	}
	return level, nil
}

func createConsoleOutput(format LogFormat) io.Writer {
	if format == FormatJSON {
		return os.Stderr
	}
	return newConsoleWriter(os.Stderr, format == FormatText)
}

func createFileOutput(format LogFormat, cfg FileLogConfig) io.Writer {
	fileWriter := newFileWriter(cfg)
	if format == FormatJSON {
		return fileWriter
	}
	// Console and text formats are written to file without color codes
	return newConsoleWriter(fileWriter, true)
}
