// Package output renders an analysis state as JSON, CSV, and Markdown.
package output

import (
	"encoding/json"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// Report is the structured representation of one analysis run.
type Report struct {
	BookName      string            `json:"book_name"`
	TotalFormulas int               `json:"total_formulas"`
	Categories    []CategorySummary `json:"categories"`
	Sheets        []SheetSummary    `json:"sheets"`
	Functions     []FunctionUsage   `json:"functions"`
}

// CategorySummary holds one category's share of the corpus and its records.
type CategorySummary struct {
	Category models.Category `json:"category"`
	Count    int             `json:"count"`
	Percent  float64         `json:"percent"`
	Records  []RecordSummary `json:"records,omitempty"`
}

// RecordSummary is the reportable view of one classified formula.
type RecordSummary struct {
	Sheet         string `json:"sheet"`
	Cell          string `json:"cell"`
	Formula       string `json:"formula"`
	Value         string `json:"value,omitempty"`
	Length        int    `json:"length"`
	FunctionCount int    `json:"function_count"`
}

// SheetSummary holds per-sheet category counts.
type SheetSummary struct {
	Sheet   string `json:"sheet"`
	Total   int    `json:"total"`
	Simple  int    `json:"simple"`
	Medium  int    `json:"medium"`
	Complex int    `json:"complex"`
}

// FunctionUsage pairs a function name with its occurrence count.
type FunctionUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BuildReport derives the structured report from an analysis state. Record
// order inside each section follows discovery order.
func BuildReport(state *models.AnalysisState) Report {
	rep := Report{
		BookName:      state.BookName,
		TotalFormulas: state.Total(),
	}

	for _, cat := range models.Categories {
		summary := CategorySummary{
			Category: cat,
			Count:    state.Counts[cat],
			Percent:  state.Percent(cat),
		}
		for _, res := range state.ByCategory[cat] {
			summary.Records = append(summary.Records, newRecordSummary(res))
		}
		rep.Categories = append(rep.Categories, summary)
	}

	for _, sheet := range state.SheetOrder {
		summary := SheetSummary{Sheet: sheet}
		for _, res := range state.BySheet[sheet] {
			summary.Total++
			switch res.Category {
			case models.CategorySimple:
				summary.Simple++
			case models.CategoryMedium:
				summary.Medium++
			case models.CategoryComplex:
				summary.Complex++
			}
		}
		rep.Sheets = append(rep.Sheets, summary)
	}

	for _, name := range state.FunctionNames() {
		rep.Functions = append(rep.Functions, FunctionUsage{Name: name, Count: state.Functions[name]})
	}

	return rep
}

func newRecordSummary(res models.ClassificationResult) RecordSummary {
	return RecordSummary{
		Sheet:         res.Record.Sheet,
		Cell:          res.Record.Cell,
		Formula:       res.Record.Formula,
		Value:         res.Record.DisplayValue,
		Length:        res.Features.Length,
		FunctionCount: res.Features.FunctionCount,
	}
}

// ToJSON serializes the analysis state as a structured JSON report.
func ToJSON(state *models.AnalysisState, pretty bool) ([]byte, error) {
	rep := BuildReport(state)
	if pretty {
		return json.MarshalIndent(rep, "", "  ")
	}
	return json.Marshal(rep)
}
