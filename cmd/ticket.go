// =============================================================================
// Ventas POS - Ticket Commands
// =============================================================================
//
// COMMAND USAGE:
//   pos ticket show
//   pos ticket set [--number N] [--customer NAME] [--notes TEXT]
//
// 'ticket show' generates a ticket number if the current ticket has none.
// 'ticket set' only changes the fields whose flags were given.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	ticketNumber   string
	ticketCustomer string
	ticketNotes    string
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Show or edit the ticket info of the current sale",
}

var ticketShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the ticket info",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withSession(func(s *session) error {
			info := s.app.Billing().Ticket
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Número:        %s\n", info.Number)
			fmt.Fprintf(out, "Cliente:       %s\n", info.Customer)
			fmt.Fprintf(out, "Observaciones: %s\n", info.Notes)
			return nil
		})
	},
}

var ticketSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Edit the ticket number, customer or notes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		if !flags.Changed("number") && !flags.Changed("customer") && !flags.Changed("notes") {
			return fmt.Errorf("nothing to set: use --number, --customer or --notes")
		}

		return withSession(func(s *session) error {
			info := s.app.Ticket()
			if flags.Changed("number") {
				info.Number = ticketNumber
			}
			if flags.Changed("customer") {
				info.Customer = ticketCustomer
			}
			if flags.Changed("notes") {
				info.Notes = ticketNotes
			}
			s.app.SetTicket(info)

			fmt.Fprintf(cmd.OutOrStdout(), "Ticket %s updated.\n", info.Number)
			return nil
		})
	},
}

func init() {
	ticketSetCmd.Flags().StringVar(&ticketNumber, "number", "", "Ticket number")
	ticketSetCmd.Flags().StringVar(&ticketCustomer, "customer", "", "Customer name")
	ticketSetCmd.Flags().StringVar(&ticketNotes, "notes", "", "Free-text notes")

	ticketCmd.AddCommand(ticketShowCmd, ticketSetCmd)
	rootCmd.AddCommand(ticketCmd)
}
