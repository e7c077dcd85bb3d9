package main

import (
	"path/filepath"
	"strings"

	"github.com/fwojciec/botica"
	"github.com/fwojciec/botica/csv"
	"github.com/fwojciec/botica/excelize"
	"github.com/fwojciec/botica/sqlite"
)

type reportFormat int

const (
	formatXLSX reportFormat = iota
	formatCSV
	formatSQLite
)

// reportFormatFor selects the report sink from the output path extension.
func reportFormatFor(path string) (reportFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return formatXLSX, nil
	case ".csv":
		return formatCSV, nil
	case ".db", ".sqlite":
		return formatSQLite, nil
	default:
		return 0, botica.Errorf(botica.EINVALID, "unsupported output format %q (use .xlsx, .csv, .db or .sqlite)", path)
	}
}

// openReport creates the sink for format. The returned func releases it.
func openReport(format reportFormat, path string) (botica.ReportWriter, func() error, error) {
	noop := func() error { return nil }
	switch format {
	case formatCSV:
		return csv.NewReportWriter(path), noop, nil
	case formatSQLite:
		db := sqlite.NewDB(path)
		if err := db.Open(); err != nil {
			return nil, nil, err
		}
		return sqlite.NewReportWriter(db), db.Close, nil
	default:
		return excelize.NewReportWriter(path), noop, nil
	}
}
