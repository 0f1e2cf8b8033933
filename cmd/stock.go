// =============================================================================
// Ventas POS - Stock Commands
// =============================================================================
//
// COMMAND USAGE:
//   pos stock list [--query text]   List (and search) the catalog
//   pos stock export                Write stock_actual_<YYYY-MM-DD>.xlsx
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ginjaninja78/ventas-pos/internal/types"
	"github.com/spf13/cobra"
)

// query filters 'stock list' by code, name or presentation.
var query string

var stockCmd = &cobra.Command{
	Use:   "stock",
	Short: "Browse, search and export the catalog",
}

var stockListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products, optionally filtered by --query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		products := s.app.Products(query)
		out := cmd.OutOrStdout()
		if len(products) == 0 {
			fmt.Fprintln(out, "No products.")
			return nil
		}
		printProducts(out, products)
		return nil
	},
}

var stockExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to the export directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession()
		if err != nil {
			return err
		}
		defer s.close()

		path, err := s.app.ExportStock()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stock exported to %s\n", path)
		return nil
	},
}

func init() {
	stockListCmd.Flags().StringVarP(&query, "query", "q", "", "Search text (code, name or presentation)")

	stockCmd.AddCommand(stockListCmd, stockExportCmd)
	rootCmd.AddCommand(stockCmd)
}

// printProducts prints products as an aligned table.
func printProducts(out io.Writer, products []types.Product) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Código\tArtículo\tPresentación\tPrecio\tStock\t")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			p.Code, p.Name, p.Presentation, p.UnitPrice.StringFixed(2), p.StockQty.String())
	}
	tw.Flush()
}
