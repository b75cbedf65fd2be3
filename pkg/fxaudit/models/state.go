package models

import (
	"math"
	"sort"
)

// AnalysisState is the aggregate of one analysis run. One state per run;
// it is never shared across runs.
type AnalysisState struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Results holds every classification in discovery order.
	Results []ClassificationResult `json:"results"`
	// Counts maps category to the number of formulas in it.
	Counts map[Category]int `json:"counts"`
	// ByCategory maps category to its results, in discovery order.
	ByCategory map[Category][]ClassificationResult `json:"-"`
	// BySheet maps sheet name to its results, in discovery order.
	BySheet map[string][]ClassificationResult `json:"-"`
	// SheetOrder lists sheet names in the order they were first seen.
	SheetOrder []string `json:"sheet_order"`
	// Functions tallies uppercase function names to their occurrence count.
	Functions map[string]int `json:"functions"`
}

// NewAnalysisState returns an empty state for one run over the named workbook.
func NewAnalysisState(bookName string) *AnalysisState {
	return &AnalysisState{
		BookName:   bookName,
		Counts:     make(map[Category]int),
		ByCategory: make(map[Category][]ClassificationResult),
		BySheet:    make(map[string][]ClassificationResult),
		Functions:  make(map[string]int),
	}
}

// Total returns the number of classified formulas.
func (s *AnalysisState) Total() int {
	return len(s.Results)
}

// Percent returns the share of the corpus in the given category, rounded
// to one decimal. Returns 0 on an empty corpus.
func (s *AnalysisState) Percent(cat Category) float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return math.Round(float64(s.Counts[cat])*1000/float64(total)) / 10
}

// FunctionNames returns the distinct function names observed, sorted.
func (s *AnalysisState) FunctionNames() []string {
	names := make([]string, 0, len(s.Functions))
	for name := range s.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
