// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Logger wraps slog.Logger with benchmark-specific helpers so every phase
// logs the same field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, logging is disabled.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON lines to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // unreachable level
	}))}
}

// WithRun tags every record with the run's size and density.
func (l *Logger) WithRun(cfg Config) *Logger {
	return &Logger{Logger: l.Logger.With("size", cfg.Size, "density", cfg.Density)}
}

// LogGenerate logs the random input generation.
func (l *Logger) LogGenerate(ctx context.Context, generated int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "generate failed", "error", err)
		return
	}
	l.DebugContext(ctx, "generate completed",
		"generated", generated,
		"took", took,
	)
}

// LogBuild logs the dense→CSR conversion.
func (l *Logger) LogBuild(ctx context.Context, nnz int, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "csr build failed", "error", err)
		return
	}
	l.InfoContext(ctx, "csr build completed",
		"nnz", nnz,
		"took", took,
	)
}

// LogKernel logs one timed product.
func (l *Logger) LogKernel(ctx context.Context, name string, best time.Duration, repeat int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "kernel failed",
			"kernel", name,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "kernel completed",
		"kernel", name,
		"best", best,
		"repeat", repeat,
	)
}

// LogCheck logs a result comparison; wrong results are warnings.
func (l *Logger) LogCheck(ctx context.Context, name string, ok bool, mismatches int, maxRel float64) {
	if !ok {
		l.WarnContext(ctx, "result is wrong",
			"kernel", name,
			"mismatches", mismatches,
			"max_rel_error", maxRel,
		)
		return
	}
	l.DebugContext(ctx, "result is ok",
		"kernel", name,
		"max_rel_error", maxRel,
	)
}

// LogSnapshot logs the snapshot round trip.
func (l *Logger) LogSnapshot(ctx context.Context, path string, size int64, took time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot failed",
			"path", path,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "snapshot verified",
		"path", path,
		"bytes", size,
		"took", took,
	)
}
