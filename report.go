package botica

import "context"

// ReportWriter persists the harvested records as a table.
type ReportWriter interface {
	// WriteReport writes one row per record, in order, under ReportColumns headers.
	WriteReport(ctx context.Context, records []*ProductRecord) error
}
