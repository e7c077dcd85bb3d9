package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/botica"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ botica.ReportWriter = (*ReportWriter)(nil)

// Run describes one stored harvest.
type Run struct {
	ID          string
	CreatedAt   time.Time
	RecordCount int
}

// StoredProduct is a product row as persisted, with its run and row hash.
type StoredProduct struct {
	RunID    string
	Position int
	RowHash  string
	Record   botica.ProductRecord
}

// ReportWriter stores the report in the products table.
// Each write replaces the previous products under a new run id.
type ReportWriter struct {
	db *DB
}

// NewReportWriter creates a new ReportWriter.
func NewReportWriter(db *DB) *ReportWriter {
	return &ReportWriter{db: db}
}

// WriteReport records a new run and replaces the stored products with records
// in a single transaction.
func (w *ReportWriter) WriteReport(ctx context.Context, records []*botica.ProductRecord) error {
	tx, err := w.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs`); err != nil {
		return err
	}

	runID := uuid.New().String()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, created_at, record_count)
		VALUES (?, ?, ?)
	`, runID, time.Now().UTC().Format(time.RFC3339), len(records)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (run_id, position, category, name, price_label, price_min, price_max, url,
			registration, composition, description, warnings, contraindications, row_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, runID, i, r.Category, r.Name, r.PriceLabel, r.PriceMin, r.PriceMax, r.URL,
			r.Registration, r.Composition, r.Description, r.Warnings, r.Contraindications, hashRow(r.Row())); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LatestRun returns the most recently stored run.
func (db *DB) LatestRun(ctx context.Context) (*Run, error) {
	var run Run
	var createdAt string

	err := db.QueryRowContext(ctx, `
		SELECT id, created_at, record_count
		FROM runs
		ORDER BY created_at DESC
		LIMIT 1
	`).Scan(&run.ID, &createdAt, &run.RecordCount)
	if err == sql.ErrNoRows {
		return nil, botica.Errorf(botica.ENOTFOUND, "no stored run")
	}
	if err != nil {
		return nil, err
	}

	if run.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &run, nil
}

// Products returns the stored products in report order.
func (db *DB) Products(ctx context.Context) ([]*StoredProduct, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT run_id, position, category, name, price_label, price_min, price_max, url,
			registration, composition, description, warnings, contraindications, row_hash
		FROM products
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*StoredProduct
	for rows.Next() {
		var p StoredProduct
		r := &p.Record
		if err := rows.Scan(&p.RunID, &p.Position, &r.Category, &r.Name, &r.PriceLabel, &r.PriceMin, &r.PriceMax, &r.URL,
			&r.Registration, &r.Composition, &r.Description, &r.Warnings, &r.Contraindications, &p.RowHash); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}
