package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"watersim/internal/modules/trial/domain"
	trialout "watersim/internal/modules/trial/port/out"
)

const xlsxSheet = "Sheet1"

type XLSXExporter struct{}

func NewXLSXExporter() trialout.TableExporter {
	return &XLSXExporter{}
}

func (e *XLSXExporter) Export(_ context.Context, path string, run domain.Run) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	header := make([]any, 0, len(domain.Columns))
	for _, col := range domain.Columns {
		header = append(header, col)
	}
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, t := range run.Result.Trials {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locate row %d: %w", i+2, err)
		}
		row := []any{t.ID, string(t.Category), t.FlowRate, t.Collected}
		if err := f.SetSheetRow(xlsxSheet, cell, &row); err != nil {
			return fmt.Errorf("write trial %d: %w", t.ID, err)
		}
	}
	if err := f.SetDocProps(&excelize.DocProperties{
		Title:       "Water collection experiment results",
		Subject:     "run " + run.ID,
		Keywords:    fmt.Sprintf("seed=%d", run.Seed),
		Creator:     "watersim",
		Description: fmt.Sprintf("mode=%s capacity=%g collection_time=%g", run.Config.Mode, run.Config.ContainerCapacity, run.Config.CollectionTime),
	}); err != nil {
		return fmt.Errorf("set document properties: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
