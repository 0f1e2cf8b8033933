// =============================================================================
// Ventas POS - Cart Commands
// =============================================================================
//
// COMMAND USAGE:
//   pos cart show                 Show the cart, total and ticket
//   pos cart add <code>           Add one unit of a catalog product
//   pos cart inc <code> [--by n]  Increase a line's quantity
//   pos cart dec <code> [--by n]  Decrease a line's quantity (0 removes it)
//   pos cart remove <code>        Remove a line
//
// <code> is the product code, or its name for products without a code.
// inc, dec and remove ignore codes that are not in the cart.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ginjaninja78/ventas-pos/internal/app"
	"github.com/spf13/cobra"
)

// step is the quantity change of 'cart inc' and 'cart dec'.
var step int

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Build the cart of the current sale",
}

var cartShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the cart, its total and the ticket info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			printBilling(cmd.OutOrStdout(), s.app.Billing())
			return nil
		})
	},
}

var cartAddCmd = &cobra.Command{
	Use:   "add <code>",
	Short: "Add one unit of a catalog product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			if !s.app.AddToCart(args[0]) {
				return fmt.Errorf("product %q not found in the catalog", args[0])
			}
			printBilling(cmd.OutOrStdout(), s.app.Billing())
			return nil
		})
	},
}

var cartIncCmd = &cobra.Command{
	Use:   "inc <code>",
	Short: "Increase the quantity of a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeQuantity(cmd, args[0], step)
	},
}

var cartDecCmd = &cobra.Command{
	Use:   "dec <code>",
	Short: "Decrease the quantity of a cart line; reaching 0 removes it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeQuantity(cmd, args[0], -step)
	},
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove <code>",
	Short: "Remove a cart line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			s.app.RemoveFromCart(args[0])
			printBilling(cmd.OutOrStdout(), s.app.Billing())
			return nil
		})
	},
}

func init() {
	for _, c := range []*cobra.Command{cartIncCmd, cartDecCmd} {
		c.Flags().IntVar(&step, "by", 1, "Quantity to add or subtract")
	}

	cartCmd.AddCommand(cartShowCmd, cartAddCmd, cartIncCmd, cartDecCmd, cartRemoveCmd)
	rootCmd.AddCommand(cartCmd)
}

func changeQuantity(cmd *cobra.Command, code string, delta int) error {
	return withSession(func(s *session) error {
		s.app.ChangeQuantity(code, delta)
		printBilling(cmd.OutOrStdout(), s.app.Billing())
		return nil
	})
}

// withSession opens a session, runs fn and closes the session.
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()
	return fn(s)
}

// printBilling prints the billing view: ticket header, lines and total.
func printBilling(out io.Writer, view app.BillingView) {
	fmt.Fprintf(out, "Ticket:        %s\n", view.Ticket.Number)
	fmt.Fprintf(out, "Cliente:       %s\n", view.Ticket.Customer)
	if view.Ticket.Notes != "" {
		fmt.Fprintf(out, "Observaciones: %s\n", view.Ticket.Notes)
	}
	fmt.Fprintln(out)

	if len(view.Lines) == 0 {
		fmt.Fprintln(out, "No hay productos en el carrito.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Código\tArtículo\tCantidad\tPrecio\tSubtotal\t")
	for _, l := range view.Lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t\n",
			l.Code, l.Name, l.Quantity, l.UnitPrice.StringFixed(2), l.Subtotal().StringFixed(2))
	}
	tw.Flush()

	fmt.Fprintf(out, "\nTotal: %s (%d ítems)\n", view.Total.StringFixed(2), len(view.Lines))
}
