// =============================================================================
// Ventas POS - XLSX Workbook Reader
// =============================================================================
//
// This module reads the first sheet of an XLSX workbook into rows of cells.
// It knows nothing about products: header detection and coercion happen in
// the catalog package.
//
// USED RANGE:
//   Rows start at the first used cell of the sheet, like the sheet's used
//   range: leading blank rows and leading blank columns are dropped, so a
//   table placed at B3 reads the same as one at A1.
//
// CELL VALUES:
//   Cells are read raw (RawCellValue), so a numeric cell formatted as
//   "$ 1.500,00" in the spreadsheet UI still reads as "1500". Text cells and
//   shared strings come back as entered.
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"io"
	"strings"

	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/xuri/excelize/v2"
)

// ReadFile opens the workbook at path and returns the rows of its first sheet.
//
// PARAMETERS:
//   - path: The path to the .xlsx file.
//
// RETURNS:
//   - The rows of the first sheet. An empty sheet yields no rows.
//   - An error if the file cannot be opened or read.
func ReadFile(path string) ([]types.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return firstSheetRows(f)
}

// Read parses a workbook from a stream (e.g. an HTTP upload).
func Read(r io.Reader) ([]types.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return firstSheetRows(f)
}

// firstSheetRows returns the rows of the first sheet of an open workbook.
func firstSheetRows(f *excelize.File) ([]types.Row, error) {
	// Only the first sheet is ever imported.
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil
	}

	raw, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read rows of sheet %q: %w", sheetName, err)
	}

	return usedRange(raw), nil
}

// usedRange drops the blank rows above and the blank columns left of the
// first used cell.
func usedRange(raw [][]string) []types.Row {
	top := 0
	for top < len(raw) && isBlankRow(raw[top]) {
		top++
	}
	raw = raw[top:]

	left := -1
	for _, r := range raw {
		for j, cell := range r {
			if strings.TrimSpace(cell) != "" {
				if left < 0 || j < left {
					left = j
				}
				break
			}
		}
	}
	left = max(left, 0)

	rows := make([]types.Row, len(raw))
	for i, r := range raw {
		if left >= len(r) {
			rows[i] = types.Row{}
			continue
		}
		rows[i] = types.Row(r[left:])
	}
	return rows
}

func isBlankRow(r []string) bool {
	for _, cell := range r {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
