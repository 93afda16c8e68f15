package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrExport            = errors.New("export failed")
	ErrUnsupportedFormat = errors.New("unsupported format")
)
