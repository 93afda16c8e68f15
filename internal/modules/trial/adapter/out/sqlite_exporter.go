package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"watersim/internal/modules/trial/domain"
	trialout "watersim/internal/modules/trial/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteExporter writes the results table into a fresh single-table database.
type SQLiteExporter struct{}

func NewSQLiteExporter() trialout.TableExporter {
	return &SQLiteExporter{}
}

func (e *SQLiteExporter) Export(ctx context.Context, path string, run domain.Run) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("replace sqlite export: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() { _ = db.Close() }()

	const ddl = `
CREATE TABLE trials (
  "Trial" INTEGER PRIMARY KEY,
  "Flow Type" TEXT NOT NULL,
  "Flow Rate (ml/s)" REAL NOT NULL,
  "Collected (ml)" REAL NOT NULL
);
`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create trials table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	const stmt = `INSERT INTO trials ("Trial", "Flow Type", "Flow Rate (ml/s)", "Collected (ml)") VALUES (?, ?, ?, ?)`
	for _, t := range run.Result.Trials {
		if _, err := tx.ExecContext(ctx, stmt, t.ID, string(t.Category), t.FlowRate, t.Collected); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert trial %d: %w", t.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
