// Package aggregate accumulates classification results for one analysis run.
package aggregate

import (
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/classifier"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// Aggregator classifies records and accumulates them into an AnalysisState.
// It owns exactly one run: create a new Aggregator per workbook. Not safe
// for concurrent use.
type Aggregator struct {
	state *models.AnalysisState
}

// New returns an Aggregator with a fresh state for the named workbook.
func New(bookName string) *Aggregator {
	return &Aggregator{state: models.NewAnalysisState(bookName)}
}

// Add classifies one record and folds it into the running state. Records
// are kept in the order they are added, per category and per sheet, so
// report output is stable across runs on identical input.
func (a *Aggregator) Add(rec models.FormulaRecord) models.ClassificationResult {
	res := classifier.ClassifyRecord(rec)
	st := a.state

	st.Results = append(st.Results, res)
	st.Counts[res.Category]++
	st.ByCategory[res.Category] = append(st.ByCategory[res.Category], res)

	if _, seen := st.BySheet[rec.Sheet]; !seen {
		st.SheetOrder = append(st.SheetOrder, rec.Sheet)
	}
	st.BySheet[rec.Sheet] = append(st.BySheet[rec.Sheet], res)

	// Scan the same normalized text the classifier decided on.
	for _, name := range classifier.FunctionNames(classifier.Normalize(rec.Formula)) {
		st.Functions[name]++
	}

	return res
}

// AddAll folds a batch of records in order.
func (a *Aggregator) AddAll(recs []models.FormulaRecord) {
	for _, rec := range recs {
		a.Add(rec)
	}
}

// Snapshot returns a copy of the current state. Later Add calls do not
// mutate a snapshot already handed out.
func (a *Aggregator) Snapshot() *models.AnalysisState {
	st := a.state
	out := models.NewAnalysisState(st.BookName)

	out.Results = append(out.Results, st.Results...)
	out.SheetOrder = append(out.SheetOrder, st.SheetOrder...)
	for cat, n := range st.Counts {
		out.Counts[cat] = n
	}
	for cat, results := range st.ByCategory {
		out.ByCategory[cat] = append([]models.ClassificationResult(nil), results...)
	}
	for sheet, results := range st.BySheet {
		out.BySheet[sheet] = append([]models.ClassificationResult(nil), results...)
	}
	for name, n := range st.Functions {
		out.Functions[name] = n
	}
	return out
}
