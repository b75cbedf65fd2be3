// Package classifier decides how complex a spreadsheet formula is.
//
// Classification is a pure text decision in two layers: an ordered pattern
// library handles unambiguous shapes (any complex-indicating match wins
// before any simple-indicating match), and a weighted heuristic score covers
// everything else. Formulas are never parsed or evaluated, so classification
// is total: any string resolves to exactly one category.
package classifier

import (
	"strings"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// Normalize strips the leading "=" and surrounding whitespace so cached and
// raw formula variants classify identically.
func Normalize(formula string) string {
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(formula), "="))
}

// Score sums the weighted feature contributions. Each feature contributes
// at most once; callers depend on the exact weights, so change them with care.
func Score(f models.FormulaFeatures) int {
	score := 0

	switch {
	case f.FunctionCount > 3:
		score += 3
	case f.FunctionCount > 2:
		score += 2
	case f.FunctionCount >= 1:
		score += 1
	}

	switch {
	case f.ConditionalCount > 2:
		score += 3
	case f.ConditionalCount > 1:
		score += 2
	case f.ConditionalCount == 1:
		score += 1
	}

	if f.CrossSheet {
		score++
	}

	switch {
	case f.Length > 150:
		score += 3
	case f.Length > 100:
		score += 2
	case f.Length > 50:
		score += 1
	}

	score += len(f.ComplexFunctions)
	score += f.LogicalCombinators

	switch {
	case f.ArgSeparators > 5:
		score += 2
	case f.ArgSeparators > 3:
		score += 1
	}

	return score
}

// CategoryForScore maps a heuristic score to its category. Boundary values
// are exact: 5 is Complex, 2 is Medium.
func CategoryForScore(score int) models.Category {
	switch {
	case score >= 5:
		return models.CategoryComplex
	case score >= 2:
		return models.CategoryMedium
	default:
		return models.CategorySimple
	}
}

// Classify returns the category for a formula text. Pure and deterministic:
// the same input always yields the same category.
func Classify(formula string) models.Category {
	f := Normalize(formula)
	if cat, ok := ClassifyByPattern(f); ok {
		return cat
	}
	return CategoryForScore(Score(ExtractFeatures(f)))
}

// ClassifyRecord classifies a record and keeps the measured features so
// reporting never re-scans the formula with diverging results.
func ClassifyRecord(rec models.FormulaRecord) models.ClassificationResult {
	f := Normalize(rec.Formula)
	feats := ExtractFeatures(f)
	cat, ok := ClassifyByPattern(f)
	if !ok {
		cat = CategoryForScore(Score(feats))
	}
	return models.ClassificationResult{
		Record:   rec,
		Category: cat,
		Features: feats,
	}
}
