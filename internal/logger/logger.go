package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger provides functionality for logging.
type Logger struct {
	*zerolog.Logger
}

// Options represents options for logger.
type Options struct {
	Level  string
	File   string
	Pretty bool
}

func newFileWriter(filename string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// New returns a logger writing to stdout and, if set, to a rotating log file.
func New(opts Options) (*Logger, error) {
	var console io.Writer = os.Stdout
	if opts.Pretty {
		console = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Stamp}
	}

	return newLogger(console, opts)
}

func newLogger(console io.Writer, opts Options) (*Logger, error) {
	writers := []io.Writer{console}
	if opts.File != "" {
		writers = append(writers, newFileWriter(opts.File))
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(opts.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	zl := zerolog.New(io.MultiWriter(writers...)).
		Level(level).
		With().Timestamp().Caller().
		Logger()

	return &Logger{&zl}, nil
}

// NewWithWriter returns a JSON logger writing only to w.
func NewWithWriter(w io.Writer, level string) (*Logger, error) {
	return newLogger(w, Options{Level: level})
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	zl := zerolog.Nop()
	return &Logger{&zl}
}
