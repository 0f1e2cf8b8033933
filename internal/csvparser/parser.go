// =============================================================================
// Ventas POS - CSV Reader
// =============================================================================
//
// This module reads CSV exports of a catalog spreadsheet into rows of cells,
// so operators can import a "Save as CSV" file the same way as a workbook.
//
// FEATURES:
//   - Configurable delimiter (comma, semicolon, tab, pipe)
//   - Ragged rows (rows may have fewer cells than the header)
//   - Lazy quotes, for hand-edited files
//   - UTF-8 byte order mark removal (spreadsheet apps add it on export)
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/ventas-pos/internal/config"
	"github.com/ginjaninja78/ventas-pos/internal/types"
)

const utf8BOM = "\ufeff"

// ReadFile reads the CSV file at path.
func ReadFile(filePath string, settings config.CSVSettings) ([]types.Row, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Read(file, settings)
}

// Read parses CSV data from src.
//
// PARAMETERS:
//   - src: The CSV stream.
//   - settings: The CSV settings from the main configuration.
//
// RETURNS:
//   - All records as rows, header row included. An empty stream yields no rows.
//   - An error if the stream is not valid CSV.
func Read(src io.Reader, settings config.CSVSettings) ([]types.Row, error) {
	csvReader := csv.NewReader(bufio.NewReader(src))
	configureReader(csvReader, settings)

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	rows := make([]types.Row, len(records))
	for i, record := range records {
		rows[i] = types.Row(record)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}

	return rows, nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) {
	reader.Comma = Delimiter(settings.Delimiter)

	// Catalog exports are ragged: trailing empty cells are often omitted.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
}

// Delimiter maps a configured delimiter name to the rune used by the reader.
func Delimiter(value string) rune {
	switch value {
	case "\\t", "\t", "tab", "TAB":
		return '\t'
	case "|", "pipe", "PIPE":
		return '|'
	case ";", "semicolon":
		return ';'
	case "", ",", "comma":
		return ','
	default:
		return []rune(value)[0]
	}
}
