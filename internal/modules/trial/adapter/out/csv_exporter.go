package out

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"watersim/internal/modules/trial/domain"
	trialout "watersim/internal/modules/trial/port/out"
)

type CSVExporter struct{}

func NewCSVExporter() trialout.TableExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(_ context.Context, path string, run domain.Run) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", cerr)
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(domain.Columns); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range run.Result.Trials {
		if err := writer.Write(textRow(t)); err != nil {
			return fmt.Errorf("write trial %d: %w", t.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
