// Package excelize writes harvest reports as Excel workbooks.
package excelize

import (
	"context"
	"fmt"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/fs"
	"github.com/xuri/excelize/v2"
)

// Ensure ReportWriter implements botica.ReportWriter.
var _ botica.ReportWriter = (*ReportWriter)(nil)

// SheetName is the worksheet holding the product rows.
const SheetName = "Productos"

// ReportWriter writes the report to an .xlsx workbook at Path.
// Prices are stored as numbers; every other cell is text.
type ReportWriter struct {
	Path string
}

// NewReportWriter creates a ReportWriter for path.
func NewReportWriter(path string) *ReportWriter {
	return &ReportWriter{Path: path}
}

// WriteReport builds the workbook in memory and writes it through a staging file.
func (w *ReportWriter) WriteReport(ctx context.Context, records []*botica.ProductRecord) (err error) {
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName(wb.GetSheetName(0), SheetName); err != nil {
		return err
	}

	header := make([]any, len(botica.ReportColumns))
	for i, c := range botica.ReportColumns {
		header[i] = c
	}
	if err := wb.SetSheetRow(SheetName, "A1", &header); err != nil {
		return err
	}
	bold, err := wb.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := wb.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}

	for i, r := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.Category,
			r.Name,
			r.PriceMin,
			r.PriceMax,
			r.URL,
			r.Registration,
			r.Composition,
			r.Description,
			r.Warnings,
			r.Contraindications,
		}
		if err := wb.SetSheetRow(SheetName, cell, &row); err != nil {
			return err
		}
	}

	if err := wb.SetColWidth(SheetName, "A", "B", 30); err != nil {
		return err
	}
	if err := wb.SetColWidth(SheetName, "E", "J", 40); err != nil {
		return err
	}

	f, err := fs.Create(w.Path)
	if err != nil {
		return fmt.Errorf("create %s: %w", w.Path, err)
	}
	if _, err := wb.WriteTo(f); err != nil {
		_ = f.Abort()
		return err
	}
	return f.Commit()
}
