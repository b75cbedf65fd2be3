package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/aggregate"
	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

func testState() *models.AnalysisState {
	agg := aggregate.New("budget.xlsx")
	agg.AddAll([]models.FormulaRecord{
		{Sheet: "Input", Cell: "A1", Formula: "A1", DisplayValue: "10"},
		{Sheet: "Input", Cell: "B1", Formula: "VLOOKUP(A1,Table,2,FALSE)"},
		{Sheet: "Calc", Cell: "A1", Formula: "SUMPRODUCT(A1:A10,B1:B10)", DisplayValue: "120"},
		{Sheet: "Calc", Cell: "B2", Formula: "B1+C1"},
	})
	return agg.Snapshot()
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(testState(), false)
	require.NoError(t, err)

	var rep Report
	require.NoError(t, json.Unmarshal(data, &rep))

	assert.Equal(t, "budget.xlsx", rep.BookName)
	assert.Equal(t, 4, rep.TotalFormulas)

	require.Len(t, rep.Categories, 3)
	byCat := make(map[models.Category]CategorySummary)
	for _, c := range rep.Categories {
		byCat[c.Category] = c
	}
	assert.Equal(t, 2, byCat[models.CategorySimple].Count)
	assert.Equal(t, 1, byCat[models.CategoryMedium].Count)
	assert.Equal(t, 1, byCat[models.CategoryComplex].Count)
	assert.InDelta(t, 50.0, byCat[models.CategorySimple].Percent, 0.01)
	assert.InDelta(t, 25.0, byCat[models.CategoryComplex].Percent, 0.01)

	require.Len(t, rep.Sheets, 2)
	assert.Equal(t, "Input", rep.Sheets[0].Sheet)
	assert.Equal(t, 2, rep.Sheets[0].Total)

	require.Len(t, rep.Functions, 2)
	assert.Equal(t, "SUMPRODUCT", rep.Functions[0].Name)
	assert.Equal(t, "VLOOKUP", rep.Functions[1].Name)
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(testState(), true)
	require.NoError(t, err)
	assert.True(t, bytes.Contains(data, []byte("\n  ")))
}

func TestToCSV(t *testing.T) {
	data, err := ToCSV(testState())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5, "header plus one row per record")

	assert.Equal(t, csvHeader, rows[0])

	// Rows follow discovery order and carry category, length, function count.
	assert.Equal(t, []string{"Input", "A1", "simple", "A1", "2", "0", "10"}, rows[1])
	assert.Equal(t, "medium", rows[2][2])
	assert.Equal(t, "complex", rows[3][2])
	assert.Equal(t, "simple", rows[4][2])
}

func TestToMarkdown(t *testing.T) {
	md := string(ToMarkdown(testState()))

	assert.Contains(t, md, "# Formula Complexity Report: budget.xlsx")
	assert.Contains(t, md, "## Summary")
	assert.Contains(t, md, "## Formulas by category")
	assert.Contains(t, md, "## Formulas by sheet")
	assert.Contains(t, md, "## Function usage")
	assert.Contains(t, md, "## Migration effort estimate")
	assert.Contains(t, md, "| SUMPRODUCT | 1 |")
	assert.Contains(t, md, "| Simple | 2 | 50.0% |")
	// 2 simple * 0.1h + 1 medium * 0.5h + 1 complex * 2.0h
	assert.Contains(t, md, "| - | Total | 4 | 2.7 |")
}

func TestWriteReports(t *testing.T) {
	dir := t.TempDir()

	paths, err := WriteReports(testState(), dir, "budget_analysis", true)
	require.NoError(t, err)

	for _, path := range []string{paths.JSON, paths.CSV, paths.Markdown} {
		info, err := os.Stat(path)
		require.NoError(t, err, "expected artifact %s", path)
		assert.Greater(t, info.Size(), int64(0))
	}
}

func TestWriteReportsRemovesPartialArtifacts(t *testing.T) {
	dir := t.TempDir()

	// A directory squatting on the CSV path makes the second write fail
	// after the JSON artifact has already been written.
	require.NoError(t, os.Mkdir(filepath.Join(dir, "budget_analysis.csv"), 0755))

	_, err := WriteReports(testState(), dir, "budget_analysis", false)
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, "budget_analysis.json"))
	assert.True(t, os.IsNotExist(statErr), "JSON artifact must be removed when a later write fails")
	_, statErr = os.Stat(filepath.Join(dir, "budget_analysis.md"))
	assert.True(t, os.IsNotExist(statErr))
}
