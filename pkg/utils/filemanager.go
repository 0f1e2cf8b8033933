// =============================================================================
// Ventas POS - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for the exports:
//   - Export directory management
//   - Export file naming
//
// FILE NAMES:
//   - Stock export: stock_actual_{YYYY-MM-DD}.xlsx
//   - Sale export:  venta_{ticketNumber}.xlsx
//
// An existing file with the same name is overwritten, the same way a browser
// download would replace it after confirmation.
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// File name formats of the exports.
const (
	StockExportFormat = "stock_actual_{date}.xlsx"
	SaleExportFormat  = "venta_{ticket}.xlsx"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager resolves export paths.
type FileManager struct {
	// ExportDir is the directory where exported workbooks are written.
	ExportDir string
}

// NewFileManager creates a new FileManager for the given export directory.
func NewFileManager(exportDir string) *FileManager {
	return &FileManager{ExportDir: exportDir}
}

// EnsureDirectories creates the export directory if it doesn't exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.ExportDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.ExportDir, err)
	}
	return nil
}

// StockExportPath returns the path of the stock export for the given day.
func (fm *FileManager) StockExportPath(now time.Time) string {
	return filepath.Join(fm.ExportDir, StockExportFileName(now))
}

// SaleExportPath returns the path of the receipt of the given ticket.
func (fm *FileManager) SaleExportPath(ticketNumber string) string {
	return filepath.Join(fm.ExportDir, SaleExportFileName(ticketNumber))
}

// =============================================================================
// OUTPUT FILE NAMING
// =============================================================================

// StockExportFileName returns "stock_actual_{YYYY-MM-DD}.xlsx".
func StockExportFileName(now time.Time) string {
	return GenerateOutputFileName(StockExportFormat, map[string]string{
		"date": now.Format("2006-01-02"),
	})
}

// SaleExportFileName returns "venta_{ticketNumber}.xlsx".
func SaleExportFileName(ticketNumber string) string {
	return GenerateOutputFileName(SaleExportFormat, map[string]string{
		"ticket": ticketNumber,
	})
}

// GenerateOutputFileName fills the placeholders of format.
//
// PARAMETERS:
//   - format: The format string, e.g. "venta_{ticket}.xlsx".
//   - params: Placeholder values, keyed without braces.
//
// RETURNS:
//   - The file name. Path separators in values are replaced with "_" since
//     ticket numbers are operator-editable, and ".xlsx" is appended if
//     missing.
func GenerateOutputFileName(format string, params map[string]string) string {
	result := format
	for key, value := range params {
		result = strings.ReplaceAll(result, "{"+key+"}", sanitize(value))
	}

	if !strings.HasSuffix(strings.ToLower(result), ".xlsx") {
		result += ".xlsx"
	}

	return result
}

func sanitize(value string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', 0:
			return '_'
		}
		return r
	}, value)
}

// =============================================================================
// UTILITY FUNCTIONS
// =============================================================================

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
