// Package slogcron lets github.com/robfig/cron/v3 log through log/slog.
package slogcron

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

type logger struct {
	l *slog.Logger
}

// New returns a cron.Logger writing to l. Cron's routine Info messages
// (schedule, wake, run) go to the debug level.
func New(l *slog.Logger) cron.Logger {
	return logger{l: l}
}

func (c logger) Info(msg string, keysAndValues ...any) {
	c.l.Log(context.Background(), slog.LevelDebug, msg, keysAndValues...)
}

func (c logger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Log(context.Background(), slog.LevelError, msg, append(keysAndValues, "error", err)...)
}
