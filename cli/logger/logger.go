package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options configures [New]. Fields carry a Log prefix because humacli
// flattens embedded options into one flag set shared with the server and
// store options.
type Options struct {
	LogLevel  string `doc:"log from debug, info, warn or error"`
	LogFile   string `doc:"append logs to file"`
	LogFormat string `doc:"format logs as text or json"         default:"text"`
	LogSource bool   `doc:"add source file and line to logs"`
}

// ParseLevel parses a level name. The empty string is the handler default.
func ParseLevel(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// New returns a logger configured by options. Invalid options are reset
// to their default and reported through the returned logger.
func New(options *Options) *slog.Logger {
	level, ok := ParseLevel(options.LogLevel)
	if !ok {
		options.LogLevel = ""
		logger := New(options)
		logger.Warn("could not parse logger level")
		return logger
	}
	opts := slog.HandlerOptions{Level: level, AddSource: options.LogSource}

	var output io.Writer
	switch options.LogFile {
	case "", "-":
		output = os.Stdout
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		var err error
		output, err = os.OpenFile(options.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
		if err != nil {
			options.LogFile = ""
			logger := New(options)
			logger.Warn("could not open logger file", "err", err)
			return logger
		}
	}

	return newWithWriter(options, output, &opts)
}

func newWithWriter(options *Options, output io.Writer, opts *slog.HandlerOptions) *slog.Logger {
	switch strings.ToLower(options.LogFormat) {
	case "json":
		return slog.New(slog.NewJSONHandler(output, opts))
	case "text":
		return slog.New(slog.NewTextHandler(output, opts))
	default:
		options.LogFormat = "text"
		logger := newWithWriter(options, output, opts)
		logger.Warn("could not parse logger format")
		return logger
	}
}
