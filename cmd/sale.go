// =============================================================================
// Ventas POS - Sale Command
// =============================================================================
//
// COMMAND USAGE:
//   pos sale confirm
//
// Confirming writes venta_<ticket>.xlsx to the export directory, then clears
// the cart and the ticket number. Customer and notes are kept. With an empty
// cart nothing happens.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Confirm the current sale",
}

var saleConfirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Export the sale receipt and clear the cart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			sale, path, err := s.app.ConfirmSale()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if sale == nil {
				fmt.Fprintln(out, "No hay productos en el carrito.")
				return nil
			}

			fmt.Fprintln(out, "Venta confirmada.")
			fmt.Fprintf(out, "Ticket: %s\n", sale.TicketNumber)
			fmt.Fprintf(out, "Total:  %s\n", sale.Total.StringFixed(2))
			fmt.Fprintf(out, "File:   %s\n", path)
			return nil
		})
	},
}

func init() {
	saleCmd.AddCommand(saleConfirmCmd)
	rootCmd.AddCommand(saleCmd)
}
