package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "watersim/internal/platform/errors"
)

type Format string

const (
	FormatXLSX   Format = "xlsx"
	FormatCSV    Format = "csv"
	FormatSQLite Format = "sqlite"
)

const DefaultExportPath = "water_collection_experiment_results.xlsx"

// Run is one generation together with what is needed to reproduce it.
type Run struct {
	ID     string
	Seed   uint64
	Config Config
	Result Result
}

// ResolveFormat picks the export format from an explicit name or, when
// empty, from the path extension.
func ResolveFormat(path, format string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	name := strings.ToLower(strings.TrimSpace(format))
	if name == "" {
		name = ext
	}
	switch name {
	case "xlsx":
		// The workbook writer picks its container from the extension.
		if ext != "xlsx" {
			return "", fmt.Errorf("%w: xlsx export needs a .xlsx path, got %q", apperrors.ErrUnsupportedFormat, path)
		}
		return FormatXLSX, nil
	case "csv":
		return FormatCSV, nil
	case "sqlite", "db", "sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("%w: export format %q (use xlsx, csv or sqlite)", apperrors.ErrUnsupportedFormat, name)
	}
}

// TimestampedPath inserts _YYYYMMDD_HHMMSS before the extension.
func TimestampedPath(path string, at time.Time) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + at.Format("20060102_150405") + ext
}
