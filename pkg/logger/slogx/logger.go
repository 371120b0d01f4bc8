package slogx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

type Logger struct {
	handler slog.Handler
}

func New(handler slog.Handler) *Logger {
	return &Logger{handler: handler}
}

func (l *Logger) With(attrs ...slog.Attr) *Logger {
	return &Logger{handler: l.handler.WithAttrs(attrs)}
}

func (l *Logger) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelInfo, msg, attrs...)
}

func (l *Logger) Debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelDebug, msg, attrs...)
}

func (l *Logger) Warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelWarn, msg, attrs...)
}

func (l *Logger) Error(ctx context.Context, msg string, attrs ...slog.Attr) {
	l.Log(ctx, slog.LevelError, msg, attrs...)
}

func (l *Logger) Log(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	if !l.handler.Enabled(ctx, level) {
		return
	}

	rec := slog.NewRecord(time.Now(), level, msg, 0)
	rec.AddAttrs(attrs...)

	_ = l.handler.Handle(ctx, rec)
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}
