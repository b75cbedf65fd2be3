package fxaudit

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrEmptyCorpus indicates the workbook contains no formulas. Reports are
// undefined on an empty corpus, so analysis fails instead of emitting one.
var ErrEmptyCorpus = errors.New("no formulas found in workbook")

// AnalysisError represents a failure during one analysis stage.
type AnalysisError struct {
	Path  string
	Stage string // "extract", "aggregate", "report"
	Err   error
}

func (e *AnalysisError) Error() string {
	return fmt.Sprintf("analysis error for %q (%s): %v", e.Path, e.Stage, e.Err)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError creates a new AnalysisError.
func NewAnalysisError(path, stage string, err error) *AnalysisError {
	return &AnalysisError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
