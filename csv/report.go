// Package csv writes harvest reports as comma-separated values.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/fs"
)

// Ensure ReportWriter implements botica.ReportWriter.
var _ botica.ReportWriter = (*ReportWriter)(nil)

// utf8BOM lets spreadsheet applications detect the encoding.
const utf8BOM = "\ufeff"

// ReportWriter writes the report to a CSV file at Path.
type ReportWriter struct {
	Path string
}

// NewReportWriter creates a ReportWriter for path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{Path: path}
}

// WriteReport writes the header row followed by one row per record.
// The file is only replaced once every row has been written.
func (w *ReportWriter) WriteReport(ctx context.Context, records []*botica.ProductRecord) (err error) {
	f, err := fs.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.Path, err)
	}
	defer func() {
		if err != nil {
			_ = f.Abort()
		}
	}()

	if _, err := f.Write([]byte(utf8BOM)); err != nil {
		return err
	}

	cw := stdcsv.NewWriter(f)
	if err := cw.Write(botica.ReportColumns); err != nil {
		return err
	}
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	return f.Commit()
}
