package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"performiq/config"
	deliverycontext "performiq/internal/delivery/context"
	"performiq/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger sends GORM output to slog. It prefers the scoped logger on the
// statement context, so a slow upsert issued during a sync carries the org
// and account it ran for.
type queryLogger struct {
	base        *slog.Logger
	level       logger.LogLevel
	slow        time.Duration
	logNotFound bool
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) logger.Interface {
	q := &queryLogger{base: base, level: logger.Warn}
	if cfg != nil {
		if cfg.Env.Debug {
			q.level = logger.Info
		}
		q.slow = cfg.Database.SlowQueryThreshold
		q.logNotFound = cfg.Database.LogRecordNotFound
	}

	return q
}

func (q *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	next := *q
	next.level = level

	return &next
}

func (q *queryLogger) Info(ctx context.Context, format string, args ...any) {
	q.printf(ctx, logger.Info, slog.LevelInfo, format, args)
}

func (q *queryLogger) Warn(ctx context.Context, format string, args ...any) {
	q.printf(ctx, logger.Warn, slog.LevelWarn, format, args)
}

func (q *queryLogger) Error(ctx context.Context, format string, args ...any) {
	q.printf(ctx, logger.Error, slog.LevelError, format, args)
}

// Trace logs at most one line per statement: failures first, then slow
// statements, then everything when the level is Info.
func (q *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRows func() (string, int64), err error) {
	log := q.scoped(ctx)
	if log == nil || q.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	var (
		level slog.Level
		msg   string
		extra slog.Attr
	)
	switch {
	case q.reportable(err):
		level, msg, extra = slog.LevelError, "Database query failed", slog.Any("error", err)
	case q.slow > 0 && elapsed > q.slow && q.level >= logger.Warn:
		level, msg, extra = slog.LevelWarn, "Slow database query", slog.Duration("threshold", q.slow)
	case q.level >= logger.Info:
		level, msg = slog.LevelInfo, "Database query"
	default:
		return
	}

	sql, rows := sqlAndRows()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if extra.Key != "" {
		attrs = append(attrs, extra)
	}

	log.LogAttrs(ctx, level, msg, attrs...)
}

func (q *queryLogger) reportable(err error) bool {
	if err == nil || q.level < logger.Error {
		return false
	}

	return q.logNotFound || !errors.Is(err, gorm.ErrRecordNotFound)
}

func (q *queryLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, format string, args []any) {
	log := q.scoped(ctx)
	if log == nil || q.level < threshold {
		return
	}

	log.LogAttrs(ctx, level, "Database message", slog.String("detail", fmt.Sprintf(format, args...)))
}

func (q *queryLogger) scoped(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, q.base)
}
