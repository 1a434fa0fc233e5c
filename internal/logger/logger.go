package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: levels[opts.Level]}

	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, hopts)
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, hopts)
	}
	return &logger{Logger: slog.New(handler)}
}

func (l *logger) With(args ...any) Logger {
	return &logger{Logger: l.Logger.With(args...)}
}
