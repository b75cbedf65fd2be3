package output

import (
	"fmt"
	"strings"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// Per-formula migration effort in hours, used for the phased estimates.
const (
	effortSimple  = 0.1
	effortMedium  = 0.5
	effortComplex = 2.0
)

var categoryTitles = map[models.Category]string{
	models.CategorySimple:  "Simple",
	models.CategoryMedium:  "Medium",
	models.CategoryComplex: "Complex",
}

// ToMarkdown renders the analysis state as a narrative report with summary,
// per-category, per-sheet, function-usage, and migration-effort sections.
func ToMarkdown(state *models.AnalysisState) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# Formula Complexity Report: %s\n\n", state.BookName)
	fmt.Fprintf(&b, "Total formulas analyzed: **%d** across %d sheet(s).\n\n", state.Total(), len(state.SheetOrder))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Category | Count | Share |\n")
	b.WriteString("|---|---|---|\n")
	for _, cat := range models.Categories {
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", categoryTitles[cat], state.Counts[cat], state.Percent(cat))
	}
	b.WriteString("\n")

	b.WriteString("## Formulas by category\n\n")
	for _, cat := range models.Categories {
		results := state.ByCategory[cat]
		fmt.Fprintf(&b, "### %s (%d)\n\n", categoryTitles[cat], len(results))
		if len(results) == 0 {
			b.WriteString("None.\n\n")
			continue
		}
		b.WriteString("| Sheet | Cell | Formula | Length | Functions |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, res := range results {
			fmt.Fprintf(&b, "| %s | %s | `%s` | %d | %d |\n",
				escapePipes(res.Record.Sheet),
				res.Record.Cell,
				escapePipes(res.Record.Formula),
				res.Features.Length,
				res.Features.FunctionCount)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Formulas by sheet\n\n")
	b.WriteString("| Sheet | Total | Simple | Medium | Complex |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, sheet := range state.SheetOrder {
		var simple, medium, complexCount int
		for _, res := range state.BySheet[sheet] {
			switch res.Category {
			case models.CategorySimple:
				simple++
			case models.CategoryMedium:
				medium++
			case models.CategoryComplex:
				complexCount++
			}
		}
		fmt.Fprintf(&b, "| %s | %d | %d | %d | %d |\n",
			escapePipes(sheet), len(state.BySheet[sheet]), simple, medium, complexCount)
	}
	b.WriteString("\n")

	b.WriteString("## Function usage\n\n")
	if len(state.Functions) == 0 {
		b.WriteString("No function calls found.\n\n")
	} else {
		b.WriteString("| Function | Occurrences |\n")
		b.WriteString("|---|---|\n")
		for _, name := range state.FunctionNames() {
			fmt.Fprintf(&b, "| %s | %d |\n", name, state.Functions[name])
		}
		b.WriteString("\n")
	}

	b.WriteString("## Migration effort estimate\n\n")
	simpleHours := float64(state.Counts[models.CategorySimple]) * effortSimple
	mediumHours := float64(state.Counts[models.CategoryMedium]) * effortMedium
	complexHours := float64(state.Counts[models.CategoryComplex]) * effortComplex
	b.WriteString("| Phase | Scope | Formulas | Estimated hours |\n")
	b.WriteString("|---|---|---|---|\n")
	fmt.Fprintf(&b, "| 1 | Simple formulas | %d | %.1f |\n", state.Counts[models.CategorySimple], simpleHours)
	fmt.Fprintf(&b, "| 2 | Medium formulas | %d | %.1f |\n", state.Counts[models.CategoryMedium], mediumHours)
	fmt.Fprintf(&b, "| 3 | Complex formulas | %d | %.1f |\n", state.Counts[models.CategoryComplex], complexHours)
	fmt.Fprintf(&b, "| - | Total | %d | %.1f |\n", state.Total(), simpleHours+mediumHours+complexHours)
	b.WriteString("\n")

	return []byte(b.String())
}

func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", "\\|")
}
