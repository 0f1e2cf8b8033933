// =============================================================================
// Ventas POS - XLSX Workbook Writer
// =============================================================================
//
// This module writes single-sheet workbooks: the stock export and the sale
// receipt. Callers lay out the rows; this module only knows about cells.
//
// CELL TYPES:
//   Values are written with their Go type (string, int, float64), so numbers
//   stay numeric in the spreadsheet. An empty row is left blank.
//
// =============================================================================

package xlsxwriter

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes rows to a new single-sheet workbook at path.
//
// PARAMETERS:
//   - path: The output file path (overwritten if it exists).
//   - sheet: The sheet name.
//   - rows: The rows, first row written to row 1.
func WriteFile(path, sheet string, rows [][]any) error {
	f, err := build(sheet, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// Write streams a new single-sheet workbook to w (e.g. an HTTP response).
func Write(w io.Writer, sheet string, rows [][]any) error {
	f, err := build(sheet, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// build creates the in-memory workbook.
func build(sheet string, rows [][]any) (*excelize.File, error) {
	f := excelize.NewFile()

	// A new workbook starts with "Sheet1"; rename it instead of adding one.
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	return f, nil
}
