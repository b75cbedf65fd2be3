package fxaudit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/aggregate"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/source"
)

// Analyzer runs the extract-classify-aggregate pipeline over one workbook
// at a time. Each Analyze call uses a fresh Aggregator, so concurrent runs
// on different workbooks never share state.
type Analyzer struct {
	opts   Options
	logger zerolog.Logger
}

// NewAnalyzer creates an Analyzer with the given options and logger.
func NewAnalyzer(opts Options, logger zerolog.Logger) *Analyzer {
	return &Analyzer{
		opts:   opts,
		logger: logger.With().Str("component", "analyzer").Logger(),
	}
}

// Analyze opens the workbook at path, classifies every formula cell, and
// returns the aggregated state. Fails without a partial result on a missing
// file, an unreadable workbook, or a workbook with zero formulas.
func (a *Analyzer) Analyze(path string) (*models.AnalysisState, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	agg := aggregate.New(filepath.Base(path))
	total := 0

	for _, sheetName := range f.GetSheetList() {
		records, err := source.ExtractSheet(f, sheetName, a.opts.ShouldIncludeValues())
		if err != nil {
			return nil, NewAnalysisError(path, "extract", err)
		}
		for _, rec := range records {
			res := agg.Add(rec)
			a.logger.Debug().
				Str("sheet", rec.Sheet).
				Str("cell", rec.Cell).
				Str("category", string(res.Category)).
				Msg("classified formula")
		}
		total += len(records)
		a.logger.Debug().Str("sheet", sheetName).Int("formulas", len(records)).Msg("sheet scanned")
	}

	if total == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCorpus, path)
	}

	state := agg.Snapshot()
	a.logger.Info().
		Str("book", state.BookName).
		Int("formulas", state.Total()).
		Int("sheets", len(state.SheetOrder)).
		Int("complex", state.Counts[models.CategoryComplex]).
		Int("medium", state.Counts[models.CategoryMedium]).
		Int("simple", state.Counts[models.CategorySimple]).
		Msg("analysis complete")
	return state, nil
}

// Analyze classifies every formula in the workbook at path using default
// wiring and no logging.
func Analyze(path string, opts Options) (*models.AnalysisState, error) {
	return NewAnalyzer(opts, zerolog.Nop()).Analyze(path)
}
