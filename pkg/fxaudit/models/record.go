// Package models defines data structures for formula complexity analysis.
package models

// Category is the complexity bucket a formula falls into.
// Categories are nominal: they group formulas for reporting and carry no ordering.
type Category string

const (
	// CategorySimple marks formulas that are trivial to migrate or review.
	CategorySimple Category = "simple"
	// CategoryMedium marks formulas with moderate structural complexity.
	CategoryMedium Category = "medium"
	// CategoryComplex marks formulas with heavy nesting, lookups, or array logic.
	CategoryComplex Category = "complex"
)

// Categories lists all categories in report order.
var Categories = []Category{CategorySimple, CategoryMedium, CategoryComplex}

// FormulaRecord is one non-empty formula cell extracted from a workbook.
type FormulaRecord struct {
	// Sheet is the sheet name the cell belongs to.
	Sheet string `json:"sheet"`
	// Cell is the cell address, e.g. "B12".
	Cell string `json:"cell"`
	// Formula is the formula text as stored, without the leading "=".
	Formula string `json:"formula"`
	// DisplayValue is the cached cell value (optional).
	DisplayValue string `json:"display_value,omitempty"`
}

// FormulaFeatures holds the structural measurements taken from one formula.
// They are computed once per record and reused for both scoring and reporting.
type FormulaFeatures struct {
	// Length is the formula text length in characters.
	Length int `json:"length"`
	// FunctionCount is the number of function-call occurrences (NAME followed by "(").
	FunctionCount int `json:"function_count"`
	// ConditionalCount is the number of "IF(" occurrences, case-insensitive.
	ConditionalCount int `json:"conditional_count"`
	// CrossSheet reports whether the formula references another sheet.
	CrossSheet bool `json:"cross_sheet,omitempty"`
	// ComplexFunctions lists the distinct lookup/aggregate/error-wrap functions present.
	ComplexFunctions []string `json:"complex_functions,omitempty"`
	// LogicalCombinators counts the distinct AND/OR combinators present (0-2).
	LogicalCombinators int `json:"logical_combinators,omitempty"`
	// ArgSeparators is the number of commas in the formula text.
	ArgSeparators int `json:"arg_separators"`
}

// ClassificationResult pairs a record with its category and the features
// measured while deciding it.
type ClassificationResult struct {
	Record   FormulaRecord   `json:"record"`
	Category Category        `json:"category"`
	Features FormulaFeatures `json:"features"`
}
