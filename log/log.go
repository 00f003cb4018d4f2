// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log is a thin layer over log/slog. Packages declare
//
//	var logger = log.WithContext("pkg", "name")
//
// at init time; the handler is chosen later by the binary via SetDefault.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Logger writes leveled, structured records.
type Logger interface {
	With(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(level slog.Level) bool
}

var (
	level slog.LevelVar
	root  atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(slog.LevelInfo)
	root.Store(slog.New(DiscardHandler()))
}

// SetDefault installs h as the handler of every logger, including ones
// created earlier by WithContext.
func SetDefault(h slog.Handler) {
	root.Store(slog.New(h))
}

// SetLevel sets the minimum level of the handlers created by this package.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// LevelFromVerbosity maps a 0..5 verbosity (crit..trace) to a slog level.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// WithContext returns a logger carrying the given key/value pairs.
func WithContext(ctx ...any) Logger {
	return &logger{ctx: ctx}
}

type logger struct {
	ctx []any
}

func (l *logger) slog() *slog.Logger {
	r := root.Load()
	if len(l.ctx) == 0 {
		return r
	}
	return r.With(l.ctx...)
}

func (l *logger) With(ctx ...any) Logger {
	merged := make([]any, 0, len(l.ctx)+len(ctx))
	merged = append(merged, l.ctx...)
	return &logger{ctx: append(merged, ctx...)}
}

func (l *logger) Debug(msg string, ctx ...any) { l.slog().Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.slog().Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.slog().Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.slog().Error(msg, ctx...) }

func (l *logger) Enabled(lvl slog.Level) bool {
	return root.Load().Enabled(context.Background(), lvl)
}

// NewTerminalHandler returns a human readable handler. Colour is used only
// when w is a terminal.
func NewTerminalHandler(w io.Writer) slog.Handler {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      &level,
		TimeFormat: time.DateTime,
		NoColor:    noColor,
	})
}

// JSONHandler returns a handler writing one JSON object per record.
func JSONHandler(w io.Writer) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: &level})
}

type discardHandler struct{}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return discardHandler{}
}

func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
