package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/botica"
)

// Ensure LoggingReportWriter implements botica.ReportWriter.
var _ botica.ReportWriter = (*LoggingReportWriter)(nil)

// LoggingReportWriter wraps a ReportWriter with debug logging.
type LoggingReportWriter struct {
	next   botica.ReportWriter
	logger *slog.Logger
	target string
}

// NewLoggingReportWriter creates a new LoggingReportWriter.
// The target names the destination (usually the output path) in log lines.
func NewLoggingReportWriter(next botica.ReportWriter, target string, logger *slog.Logger) *LoggingReportWriter {
	return &LoggingReportWriter{next: next, logger: logger, target: target}
}

// WriteReport delegates to the wrapped writer and logs the operation.
func (w *LoggingReportWriter) WriteReport(ctx context.Context, records []*botica.ProductRecord) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write report",
			"target", w.target,
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteReport(ctx, records)
}
