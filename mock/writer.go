package mock

import (
	"context"

	"github.com/fwojciec/botica"
)

var _ botica.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of botica.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, records []*botica.ProductRecord) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, records []*botica.ProductRecord) error {
	return w.WriteReportFn(ctx, records)
}
