// =============================================================================
// Ventas POS - Import Command
// =============================================================================
//
// This file defines the 'import' command, which replaces the catalog with
// the products of a spreadsheet.
//
// COMMAND USAGE:
//   pos import <file.xlsx|file.csv>
//
// IMPORT PIPELINE:
//   1. Read the first sheet (xlsx) or the whole file (csv)
//   2. Resolve the code, name, presentation, price and stock columns from
//      the header row using the header synonym table
//   3. Coerce each data row into a product
//   4. Replace the catalog (no merge) and persist it
//
// A sheet without a header row imports nothing and leaves the catalog as is.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/ginjaninja78/ventas-pos/internal/catalog"
	"github.com/spf13/cobra"
)

// importCmd represents the 'import' command.
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the catalog with the products of a spreadsheet",
	Long: `The import command reads an .xlsx workbook (first sheet) or a .csv file.
Row 1 must hold the headers; columns are recognized by name in any order:

  code          Codigo, Código, SKU, Cod
  name          Articulo, Artículo, Nombre, Producto, Descripcion, Descripción
  presentation  Presentacion, Presentación, Formato
  price         Precio, PrecioUnitario, PU, Precio Unitario
  stock         Stock, Cantidad, Existencia

Unrecognized columns fall back to the first column. Numbers accept a decimal
comma; unreadable numbers import as 0. Rows without name and code are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

// runImport imports the file at path.
func runImport(cmd *cobra.Command, path string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	result, ok, err := s.app.ImportFile(path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "Nothing to import: the sheet has no header row.")
		return nil
	}

	fmt.Fprintln(out, "=== Catalog Import ===")
	for _, f := range catalog.Fields {
		col := result.Columns.Column(f)
		header := ""
		if col >= 0 && col < len(result.Headers) {
			header = result.Headers[col]
		}
		fmt.Fprintf(out, "  %-13s <- %q\n", f, header)
	}
	fmt.Fprintf(out, "Rows read:       %d\n", result.RowsRead)
	fmt.Fprintf(out, "Products:        %d\n", len(result.Products))
	fmt.Fprintf(out, "Skipped rows:    %d\n", result.RowsDropped)

	return nil
}
