package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// csvHeader is the flat-row column layout, one row per classified formula.
var csvHeader = []string{"sheet", "cell", "category", "formula", "length", "function_count", "value"}

// ToCSV serializes the analysis state as delimited rows in discovery order.
func ToCSV(state *models.AnalysisState) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, res := range state.Results {
		row := []string{
			res.Record.Sheet,
			res.Record.Cell,
			string(res.Category),
			res.Record.Formula,
			strconv.Itoa(res.Features.Length),
			strconv.Itoa(res.Features.FunctionCount),
			res.Record.DisplayValue,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
