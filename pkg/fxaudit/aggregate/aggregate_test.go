package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

func testRecords() []models.FormulaRecord {
	return []models.FormulaRecord{
		{Sheet: "Input", Cell: "A1", Formula: "A1"},
		{Sheet: "Input", Cell: "B1", Formula: "SUM(A1:A10)"},
		{Sheet: "Calc", Cell: "A1", Formula: "VLOOKUP(A1,Table,2,FALSE)"},
		{Sheet: "Input", Cell: "C1", Formula: "SUMPRODUCT(A1:A10,B1:B10)"},
		{Sheet: "Calc", Cell: "B2", Formula: "SUM(B1:B10)"},
	}
}

func TestAggregatorPartition(t *testing.T) {
	agg := New("book.xlsx")
	recs := testRecords()
	agg.AddAll(recs)
	state := agg.Snapshot()

	require.Equal(t, len(recs), state.Total())

	// The per-category sequences are disjoint and their union is the corpus.
	categorized := 0
	seen := make(map[string]bool)
	for _, cat := range models.Categories {
		categorized += len(state.ByCategory[cat])
		for _, res := range state.ByCategory[cat] {
			key := res.Record.Sheet + "!" + res.Record.Cell
			assert.False(t, seen[key], "record %s counted twice", key)
			seen[key] = true
		}
	}
	assert.Equal(t, len(recs), categorized)

	// Discovery order is preserved across the full result sequence.
	for i, res := range state.Results {
		assert.Equal(t, recs[i], res.Record)
	}
}

func TestAggregatorBySheet(t *testing.T) {
	agg := New("book.xlsx")
	agg.AddAll(testRecords())
	state := agg.Snapshot()

	assert.Equal(t, []string{"Input", "Calc"}, state.SheetOrder)
	require.Len(t, state.BySheet["Input"], 3)
	require.Len(t, state.BySheet["Calc"], 2)

	// Within a sheet, records stay in discovery order.
	assert.Equal(t, "A1", state.BySheet["Input"][0].Record.Cell)
	assert.Equal(t, "B1", state.BySheet["Input"][1].Record.Cell)
	assert.Equal(t, "C1", state.BySheet["Input"][2].Record.Cell)
}

func TestAggregatorFunctionTally(t *testing.T) {
	agg := New("book.xlsx")
	agg.AddAll([]models.FormulaRecord{
		{Sheet: "S", Cell: "A1", Formula: "SUM(A1:A2)"},
		{Sheet: "S", Cell: "A2", Formula: "IF(A1>0,1,0)"},
		{Sheet: "S", Cell: "A3", Formula: "sum(B1:B2)"},
	})
	state := agg.Snapshot()

	assert.Equal(t, []string{"IF", "SUM"}, state.FunctionNames())
	assert.Equal(t, 2, state.Functions["SUM"])
	assert.Equal(t, 1, state.Functions["IF"])
}

func TestAggregatorFunctionTallyNormalizesFormulas(t *testing.T) {
	agg := New("book.xlsx")
	agg.AddAll([]models.FormulaRecord{
		{Sheet: "S", Cell: "A1", Formula: "=SUM(A1:A2)"},
		{Sheet: "S", Cell: "A2", Formula: "  SUM(B1:B2)  "},
	})
	state := agg.Snapshot()

	assert.Equal(t, []string{"SUM"}, state.FunctionNames())
	assert.Equal(t, 2, state.Functions["SUM"])
}

func TestSnapshotIsolation(t *testing.T) {
	agg := New("book.xlsx")
	agg.Add(models.FormulaRecord{Sheet: "S", Cell: "A1", Formula: "A1"})
	first := agg.Snapshot()

	agg.Add(models.FormulaRecord{Sheet: "S", Cell: "A2", Formula: "SUMPRODUCT(A:A,B:B)"})

	assert.Equal(t, 1, first.Total())
	assert.Equal(t, 0, first.Counts[models.CategoryComplex])
	assert.Equal(t, 2, agg.Snapshot().Total())
}

func TestAggregatorCounts(t *testing.T) {
	agg := New("book.xlsx")
	agg.AddAll(testRecords())
	state := agg.Snapshot()

	// A1, SUM(A1:A10), SUM(B1:B10) are simple; the lookup is medium;
	// SUMPRODUCT is complex.
	assert.Equal(t, 3, state.Counts[models.CategorySimple])
	assert.Equal(t, 1, state.Counts[models.CategoryMedium])
	assert.Equal(t, 1, state.Counts[models.CategoryComplex])
}
