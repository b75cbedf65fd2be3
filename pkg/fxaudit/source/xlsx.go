// Package source extracts formula cells from workbook files.
package source

import (
	"github.com/xuri/excelize/v2"

	"github.com/fxaudit/fxaudit-go/pkg/fxaudit/models"
)

// ExtractFormulas walks every sheet in the workbook and returns one record
// per cell that carries a formula, in sheet order then row-major cell order.
// Cells without a formula are skipped.
func ExtractFormulas(f *excelize.File, includeValues bool) ([]models.FormulaRecord, error) {
	var records []models.FormulaRecord
	for _, sheetName := range f.GetSheetList() {
		recs, err := ExtractSheet(f, sheetName, includeValues)
		if err != nil {
			return nil, err
		}
		records = append(records, recs...)
	}
	return records, nil
}

// ExtractSheet returns the formula records of a single sheet.
func ExtractSheet(f *excelize.File, sheetName string, includeValues bool) ([]models.FormulaRecord, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var records []models.FormulaRecord
	for rowIdx, row := range rows {
		for colIdx := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				continue
			}
			formula, err := f.GetCellFormula(sheetName, cellName)
			if err != nil || formula == "" {
				continue
			}

			rec := models.FormulaRecord{
				Sheet:   sheetName,
				Cell:    cellName,
				Formula: formula,
			}
			if includeValues {
				if value, err := f.GetCellValue(sheetName, cellName); err == nil {
					rec.DisplayValue = value
				}
			}
			records = append(records, rec)
		}
	}

	return records, nil
}
