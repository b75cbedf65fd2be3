package classifier

import (
	"regexp"
	"strings"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// A rule pairs a predicate over the formula text with the category it
// decides. Rules are evaluated in order and the first match wins.
type rule struct {
	name  string
	match func(string) bool
	cat   models.Category
}

// Complex-indicating patterns. Any match decides Complex immediately, before
// any simple pattern is tried, so ambiguous formulas resolve Complex.
var (
	arrayAggregateRe = regexp.MustCompile(`(?i)\b(SUMPRODUCT|MMULT|TRANSPOSE|FREQUENCY)\(`)
	nestedLookupRe   = regexp.MustCompile(`(?i)\b(INDEX|VLOOKUP|HLOOKUP)\(.*\b(MATCH|VLOOKUP|INDIRECT)\(`)
	// Three or more chained conditional calls, e.g. IF(AND(...),...,IF(...)).
	chainedConditionalRe = regexp.MustCompile(`(?i)\b(IF|AND|OR)\(.*\b(IF|AND|OR)\(.*\b(IF|AND|OR)\(`)
	absoluteRangeRe      = regexp.MustCompile(`\$[A-Za-z]{1,3}\$[0-9]+:\$[A-Za-z]{1,3}\$[0-9]+`)
	arrayLiteralRe       = regexp.MustCompile(`\{.+\}`)
	textFunctionRe       = regexp.MustCompile(`(?i)\b(TEXT|CONCATENATE|CONCAT|LEFT|RIGHT|MID|SUBSTITUTE|TRIM|UPPER|LOWER)\(`)
	conditionalCallRe    = regexp.MustCompile(`(?i)\bIF\(`)
)

// Simple-indicating patterns. Anchored: they must cover the whole formula.
var (
	cellRefRe        = regexp.MustCompile(`^[A-Za-z]{1,3}[0-9]+$`)
	arithmeticRe     = regexp.MustCompile(`^[A-Za-z]{1,3}[0-9]+\s*[-+*/]\s*[A-Za-z]{1,3}[0-9]+$`)
	absoluteDivideRe = regexp.MustCompile(`^[A-Za-z]{1,3}[0-9]+\s*/\s*\$[A-Za-z]{1,3}\$[0-9]+$`)
	blankCheckRe     = regexp.MustCompile(`(?i)^IF\(ISBLANK\([A-Za-z]{1,3}[0-9]+\),\s*("[^"]*"|[A-Za-z]{1,3}[0-9]+|-?[0-9.]+)\s*,\s*("[^"]*"|[A-Za-z]{1,3}[0-9]+|-?[0-9.]+)\)$`)
	literalConcatRe  = regexp.MustCompile(`^([A-Za-z]{1,3}[0-9]+\s*&\s*"[^"]*"|"[^"]*"\s*&\s*[A-Za-z]{1,3}[0-9]+)$`)
	crossSheetRefRe  = regexp.MustCompile(`^'?[^'!\[\]]+'?!\$?[A-Za-z]{1,3}\$?[0-9]+$`)
	numericLiteralRe = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
	refTimesNumberRe = regexp.MustCompile(`^[A-Za-z]{1,3}[0-9]+\s*\*\s*-?[0-9]+(\.[0-9]+)?$`)
)

// patternRules holds all pattern rules in evaluation order: every
// complex-indicating rule strictly before any simple-indicating rule.
var patternRules = []rule{
	{"array-aggregate", arrayAggregateRe.MatchString, models.CategoryComplex},
	{"nested-lookup", nestedLookupRe.MatchString, models.CategoryComplex},
	{"chained-conditionals", chainedConditionalRe.MatchString, models.CategoryComplex},
	{"absolute-range", absoluteRangeRe.MatchString, models.CategoryComplex},
	{"array-literal", arrayLiteralRe.MatchString, models.CategoryComplex},
	{"text-conditional-chain", func(s string) bool {
		return textFunctionRe.MatchString(s) && conditionalCallRe.MatchString(s)
	}, models.CategoryComplex},
	{"concat-chain", func(s string) bool {
		return strings.Count(s, "&") >= 3
	}, models.CategoryComplex},

	{"cell-ref", cellRefRe.MatchString, models.CategorySimple},
	{"two-ref-arithmetic", arithmeticRe.MatchString, models.CategorySimple},
	{"absolute-divide", absoluteDivideRe.MatchString, models.CategorySimple},
	{"blank-check", blankCheckRe.MatchString, models.CategorySimple},
	{"literal-concat", literalConcatRe.MatchString, models.CategorySimple},
	{"cross-sheet-ref", crossSheetRefRe.MatchString, models.CategorySimple},
	{"numeric-literal", numericLiteralRe.MatchString, models.CategorySimple},
	{"ref-times-number", refTimesNumberRe.MatchString, models.CategorySimple},
}

// ClassifyByPattern runs the ordered pattern rules over the formula text.
// It reports false when no rule matches and the heuristic score decides.
func ClassifyByPattern(formula string) (models.Category, bool) {
	for _, r := range patternRules {
		if r.match(formula) {
			return r.cat, true
		}
	}
	return "", false
}
