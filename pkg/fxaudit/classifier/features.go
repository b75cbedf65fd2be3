package classifier

import (
	"regexp"
	"strings"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// functionCallPattern matches a function name followed by an opening parenthesis.
var functionCallPattern = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_.]*)\(`)

// andPattern and orPattern match bare combinator calls. The word boundary
// keeps IFERROR( and FLOOR( from counting as combinators.
var (
	andPattern = regexp.MustCompile(`(?i)\bAND\(`)
	orPattern  = regexp.MustCompile(`(?i)\bOR\(`)
)

// complexFunctions are the lookup, match, conditional-aggregate, error-wrap,
// and subtotal functions that each add one point when present.
var complexFunctions = []string{
	"VLOOKUP(",
	"HLOOKUP(",
	"INDEX(",
	"MATCH(",
	"SUMIF(",
	"COUNTIF(",
	"IFERROR(",
	"SUBTOTAL(",
	"OFFSET(",
	"INDIRECT(",
}

// ExtractFeatures measures the structural features of a formula. It is a
// pure text scan: the formula is never parsed or validated.
func ExtractFeatures(formula string) models.FormulaFeatures {
	upper := strings.ToUpper(formula)

	var members []string
	for _, fn := range complexFunctions {
		if strings.Contains(upper, fn) {
			members = append(members, strings.TrimSuffix(fn, "("))
		}
	}

	combinators := 0
	if andPattern.MatchString(formula) {
		combinators++
	}
	if orPattern.MatchString(formula) {
		combinators++
	}

	return models.FormulaFeatures{
		Length:             len(formula),
		FunctionCount:      len(functionCallPattern.FindAllString(formula, -1)),
		ConditionalCount:   strings.Count(upper, "IF("),
		CrossSheet:         strings.Contains(formula, "!"),
		ComplexFunctions:   members,
		LogicalCombinators: combinators,
		ArgSeparators:      strings.Count(formula, ","),
	}
}

// FunctionNames returns every function-name token in the formula (text
// immediately preceding an opening parenthesis), uppercase-normalized, in
// order of appearance. Duplicates are kept so callers can tally usage.
func FunctionNames(formula string) []string {
	matches := functionCallPattern.FindAllStringSubmatch(formula, -1)
	if len(matches) == 0 {
		return nil
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.ToUpper(m[1]))
	}
	return names
}
