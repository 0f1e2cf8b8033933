// =============================================================================
// Ventas POS - Catalog Importer
// =============================================================================
//
// This module turns the rows of an imported spreadsheet into a product list.
//
// IMPORT PIPELINE:
//   1. Read the workbook (xlsx: first sheet; csv: whole file) into rows
//   2. Take row 0 as the header row and resolve the five product columns
//   3. Coerce every data row into a Product
//   4. Drop rows that have neither a name nor a code
//
// ERROR HANDLING:
//   Data-shape problems never fail an import. Malformed numbers read as 0,
//   unknown headers fall back to the first column, and a sheet without a
//   header row is reported as "nothing to import". Only real I/O problems
//   (file missing, unsupported extension, corrupt workbook) are errors.
//
// =============================================================================

package catalog

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ginjaninja78/ventas-pos/internal/config"
	"github.com/ginjaninja78/ventas-pos/internal/csvparser"
	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/ginjaninja78/ventas-pos/internal/xlsxparser"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedFormat is returned for input files that are neither xlsx nor csv.
var ErrUnsupportedFormat = errors.New("unsupported spreadsheet format")

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Result is the outcome of importing one sheet.
type Result struct {
	// Products is the new catalog, in sheet order.
	Products []types.Product

	// Headers is the raw header row.
	Headers []string

	// Columns is the resolved field -> column mapping.
	Columns ColumnMap

	// RowsRead is the number of data rows after the header.
	RowsRead int

	// RowsDropped counts rows without name and code.
	RowsDropped int
}

// =============================================================================
// IMPORT
// =============================================================================

// Import converts sheet rows into products. Row 0 is the header row.
//
// RETURNS:
//   - The import result.
//   - false when the sheet has no usable header row; the caller must then
//     leave its catalog untouched.
func Import(rows []types.Row) (*Result, bool) {
	if len(rows) == 0 || isBlank(rows[0]) {
		return nil, false
	}

	headers := []string(rows[0])
	columns := ResolveColumns(headers)

	result := &Result{
		Products: make([]types.Product, 0, len(rows)-1),
		Headers:  headers,
		Columns:  columns,
		RowsRead: len(rows) - 1,
	}

	for _, row := range rows[1:] {
		p := types.Product{
			Code:         textCell(row, columns.Column(FieldCode)),
			Name:         textCell(row, columns.Column(FieldName)),
			Presentation: textCell(row, columns.Column(FieldPresentation)),
			UnitPrice:    ParseNumber(row.Cell(columns.Column(FieldUnitPrice))),
			StockQty:     ParseNumber(row.Cell(columns.Column(FieldStockQty))),
		}
		if p.Name == "" && p.Code == "" {
			result.RowsDropped++
			continue
		}
		result.Products = append(result.Products, p)
	}

	return result, true
}

// maxExponent bounds the decimal exponent of a parsed cell. Rendering a
// decimal allocates one digit per unit of exponent, so "1e999999999" must
// not get through.
const maxExponent = 30

// ParseNumber reads a numeric cell. The first decimal comma is replaced with
// a point before parsing; anything unparsable is 0, and so is anything with
// an exponent beyond maxExponent either way.
func ParseNumber(cell string) decimal.Decimal {
	s := strings.TrimSpace(strings.Replace(cell, ",", ".", 1))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero
	}
	return d
}

func textCell(row types.Row, i int) string {
	return strings.TrimSpace(row.Cell(i))
}

func isBlank(row types.Row) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// =============================================================================
// FILE READING
// =============================================================================

// Reader reads spreadsheet files into rows, choosing the parser by extension.
type Reader struct {
	csv config.CSVSettings
}

// NewReader creates a Reader. The CSV settings only apply to .csv inputs.
func NewReader(csvSettings config.CSVSettings) *Reader {
	return &Reader{csv: csvSettings}
}

// ReadFile reads the rows of the spreadsheet at path.
func (r *Reader) ReadFile(path string) ([]types.Row, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return xlsxparser.ReadFile(path)
	case ".csv":
		return csvparser.ReadFile(path, r.csv)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
}

// Read reads rows from an already opened stream. name is only used to pick
// the parser (e.g. the uploaded file name).
func (r *Reader) Read(name string, src io.Reader) ([]types.Row, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return xlsxparser.Read(src)
	case ".csv":
		return csvparser.Read(src, r.csv)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
}
